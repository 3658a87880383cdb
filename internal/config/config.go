package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// HTTP Server
	Port string

	// Durable store selection
	DataBackend  string
	BoltDBPath   string
	SQLiteDBPath string

	// Category suggestion
	OpenAIAPIKey     string
	OpenAIBaseURL    string
	SuggestModel     string
	SuggestDebounce  time.Duration
	SuggestCacheSize int
	SuggestCacheTTL  time.Duration

	// AMQP (reminder alerts)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Reminder scheduler
	ReminderPollInterval time.Duration
	ReminderLookahead    time.Duration
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8082"),

		DataBackend:  getEnv("DATA_BACKEND", "bolt"),
		BoltDBPath:   getEnv("BOLT_DB_PATH", "./data/budgetwise.db"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/budgetwise.sqlite"),

		OpenAIAPIKey:     getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:    getEnv("OPENAI_BASE_URL", ""),
		SuggestModel:     getEnv("SUGGEST_MODEL", "gpt-4o-mini"),
		SuggestDebounce:  getEnvDuration("SUGGEST_DEBOUNCE", 500*time.Millisecond),
		SuggestCacheSize: getEnvInt("SUGGEST_CACHE_SIZE", 256),
		SuggestCacheTTL:  getEnvDuration("SUGGEST_CACHE_TTL", 15*time.Minute),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "budgetwise"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "reminder_alerts"),

		ReminderPollInterval: getEnvDuration("REMINDER_POLL_INTERVAL", 30*time.Second),
		ReminderLookahead:    getEnvDuration("REMINDER_LOOKAHEAD", 15*time.Minute),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.DataBackend {
	case "bolt":
		if c.BoltDBPath == "" {
			errs = append(errs, "bolt database path cannot be empty when using bolt backend")
		} else {
			errs = append(errs, ensureDir(c.BoltDBPath)...)
		}
	case "sqlite":
		if c.SQLiteDBPath == "" {
			errs = append(errs, "SQLite database path cannot be empty when using sqlite backend")
		} else {
			errs = append(errs, ensureDir(c.SQLiteDBPath)...)
		}
	case "memory":
		// Nothing to check: ephemeral.
	default:
		errs = append(errs, fmt.Sprintf("invalid data backend '%s': must be one of [bolt sqlite memory]", c.DataBackend))
	}

	if c.AMQPURL != "" {
		if parsed, err := url.Parse(c.AMQPURL); err != nil {
			errs = append(errs, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsed.Scheme != "amqp" && parsed.Scheme != "amqps" {
			errs = append(errs, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsed.Scheme))
		}
		if c.AMQPExchange == "" {
			errs = append(errs, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errs = append(errs, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if c.SuggestDebounce < 50*time.Millisecond || c.SuggestDebounce > 10*time.Second {
		errs = append(errs, fmt.Sprintf("invalid suggest debounce %v: must be between 50ms and 10s", c.SuggestDebounce))
	}
	if c.SuggestCacheSize < 1 {
		errs = append(errs, fmt.Sprintf("invalid suggest cache size %d: must be at least 1", c.SuggestCacheSize))
	}

	if c.ReminderPollInterval < time.Second {
		errs = append(errs, fmt.Sprintf("invalid reminder poll interval %v: must be at least 1 second", c.ReminderPollInterval))
	}
	if c.ReminderLookahead < c.ReminderPollInterval {
		errs = append(errs, fmt.Sprintf("invalid reminder lookahead %v: must be at least the poll interval", c.ReminderLookahead))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func ensureDir(path string) []string {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return []string{fmt.Sprintf("cannot create database directory '%s': %v", dir, err)}
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
