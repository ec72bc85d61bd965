package repository

import (
	"context"
	"sync"
	"time"
)

const (
	DefaultMemoryCacheSize = 1000
	memorySweepInterval    = time.Minute
)

type memoryEntry struct {
	value     string
	storedAt  time.Time
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// MemoryCache is the in-process CacheRepository used when no redis address is configured.
// It holds at most capacity entries; when full, expired entries go first, then the oldest.
type MemoryCache struct {
	mu       sync.Mutex
	capacity int
	data     map[string]memoryEntry
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

// NewMemoryCache creates the cache and starts a sweeper that drops expired entries
// every minute. Call Stop to end it.
func NewMemoryCache(capacity int) *MemoryCache {
	m := newMemoryCache(capacity, time.Now)
	go m.sweepLoop()
	return m
}

func newMemoryCache(capacity int, now func() time.Time) *MemoryCache {
	if capacity <= 0 {
		capacity = DefaultMemoryCacheSize
	}
	return &MemoryCache{
		capacity: capacity,
		data:     make(map[string]memoryEntry),
		now:      now,
		stop:     make(chan struct{}),
	}
}

func (m *MemoryCache) sweepLoop() {
	ticker := time.NewTicker(memorySweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.Sweep()
		case <-m.stop:
			return
		}
	}
}

// Stop ends the sweeper. It is safe to call more than once.
func (m *MemoryCache) Stop() {
	m.stopOnce.Do(func() { close(m.stop) })
}

// Sweep removes every expired entry.
func (m *MemoryCache) Sweep() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweepLocked(m.now())
}

func (m *MemoryCache) sweepLocked(now time.Time) {
	for key, entry := range m.data {
		if entry.expired(now) {
			delete(m.data, key)
		}
	}
}

func (m *MemoryCache) evictOldestLocked() {
	var (
		oldestKey string
		oldest    time.Time
		found     bool
	)
	for key, entry := range m.data {
		if !found || entry.storedAt.Before(oldest) {
			oldestKey, oldest, found = key, entry.storedAt, true
		}
	}
	if found {
		delete(m.data, oldestKey)
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.data[key]
	if !ok {
		return "", false
	}
	if entry.expired(m.now()) {
		delete(m.data, key)
		return "", false
	}
	return entry.value, true
}

// Set stores value; a zero ttl keeps it until it is evicted.
func (m *MemoryCache) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if _, exists := m.data[key]; !exists && len(m.data) >= m.capacity {
		m.sweepLocked(now)
		for len(m.data) >= m.capacity {
			m.evictOldestLocked()
		}
	}

	entry := memoryEntry{value: value, storedAt: now}
	if ttl > 0 {
		entry.expiresAt = now.Add(ttl)
	}
	m.data[key] = entry
	return nil
}

func (m *MemoryCache) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}
