package repository

import (
	"sync"

	"sip-planner/domain"
)

// HistoryRepositoryMemory is a bounded in-memory implementation of HistoryRepository.
// The oldest record is dropped once capacity is reached.
type HistoryRepositoryMemory struct {
	mu       sync.RWMutex
	capacity int
	data     []domain.Record
}

// NewHistoryRepositoryMemory creates a history that holds at most capacity records.
func NewHistoryRepositoryMemory(capacity int) *HistoryRepositoryMemory {
	if capacity <= 0 {
		capacity = 1
	}
	return &HistoryRepositoryMemory{
		capacity: capacity,
		data:     make([]domain.Record, 0, capacity),
	}
}

// Save appends the record.
func (r *HistoryRepositoryMemory) Save(record domain.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.data) == r.capacity {
		copy(r.data, r.data[1:])
		r.data = r.data[:len(r.data)-1]
	}
	r.data = append(r.data, record)
	return nil
}

// Recent returns up to limit records, newest first. A non-positive limit returns all of them.
func (r *HistoryRepositoryMemory) Recent(limit int) ([]domain.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 || limit > len(r.data) {
		limit = len(r.data)
	}
	out := make([]domain.Record, 0, limit)
	for i := len(r.data) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.data[i])
	}
	return out, nil
}
