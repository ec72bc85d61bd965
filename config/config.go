package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Addr        string
	RedisAddr   string
	CacheTTL    time.Duration
	CacheSize   int
	RateLimit   int
	RateWindow  time.Duration
	LogLevel    string
	LogFormat   string
	Currency    string
	HistorySize int
	OpenAIKey   string
	OpenAIURL   string
	OpenAIModel string
}

// Load reads .env (when present) and SIP_* environment variables on top of the defaults.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("SIP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("addr", ":8080")
	v.SetDefault("redis_addr", "")
	v.SetDefault("cache_ttl", 10*time.Minute)
	v.SetDefault("cache_size", 1000)
	v.SetDefault("rate_limit", 30)
	v.SetDefault("rate_window", time.Minute)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("currency", "₹")
	v.SetDefault("history_size", 100)
	v.SetDefault("openai_url", "")
	v.SetDefault("openai_model", "")

	// The API key keeps its conventional unprefixed name.
	_ = v.BindEnv("openai_api_key", "OPENAI_API_KEY")

	cfg := Config{
		Addr:        v.GetString("addr"),
		RedisAddr:   v.GetString("redis_addr"),
		CacheTTL:    v.GetDuration("cache_ttl"),
		CacheSize:   v.GetInt("cache_size"),
		RateLimit:   v.GetInt("rate_limit"),
		RateWindow:  v.GetDuration("rate_window"),
		LogLevel:    strings.ToLower(v.GetString("log_level")),
		LogFormat:   strings.ToLower(v.GetString("log_format")),
		Currency:    v.GetString("currency"),
		HistorySize: v.GetInt("history_size"),
		OpenAIKey:   v.GetString("openai_api_key"),
		OpenAIURL:   v.GetString("openai_url"),
		OpenAIModel: v.GetString("openai_model"),
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("config: SIP_ADDR must not be empty")
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("config: SIP_CACHE_TTL must not be negative, got %s", c.CacheTTL)
	}
	if c.CacheSize <= 0 {
		return fmt.Errorf("config: SIP_CACHE_SIZE must be positive, got %d", c.CacheSize)
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("config: SIP_RATE_LIMIT must be positive, got %d", c.RateLimit)
	}
	if c.RateWindow <= 0 {
		return fmt.Errorf("config: SIP_RATE_WINDOW must be positive, got %s", c.RateWindow)
	}
	if c.HistorySize <= 0 {
		return fmt.Errorf("config: SIP_HISTORY_SIZE must be positive, got %d", c.HistorySize)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("config: SIP_LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
	return nil
}
