// Package backend selects and constructs the durable KV substrate the
// entity store persists into.
package backend

import (
	"fmt"

	"budgetwise/internal/config"
	"budgetwise/internal/storage"
)

// BackendType names a KV substrate.
type BackendType string

const (
	BoltBackend   BackendType = "bolt"
	SQLiteBackend BackendType = "sqlite"
	MemoryBackend BackendType = "memory"
)

func (bt BackendType) String() string { return string(bt) }

func (bt BackendType) IsValid() bool {
	switch bt {
	case BoltBackend, SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// CleanupFunc releases the backend's resources.
type CleanupFunc func() error

// BackendResult pairs the constructed KV store with its cleanup.
type BackendResult struct {
	KV      storage.KV
	Cleanup CleanupFunc
}

// Config holds what each substrate needs to come up.
type Config struct {
	Type BackendType

	BoltDBPath   string
	SQLiteDBPath string
}

// FromAppConfig projects the application config onto a backend config.
func FromAppConfig(appConfig *config.Config) (Config, error) {
	if appConfig == nil {
		return Config{}, fmt.Errorf("app config is nil")
	}

	backendType := BackendType(appConfig.DataBackend)
	if !backendType.IsValid() {
		return Config{}, fmt.Errorf("invalid backend type in config: %s", appConfig.DataBackend)
	}

	return Config{
		Type:         backendType,
		BoltDBPath:   appConfig.BoltDBPath,
		SQLiteDBPath: appConfig.SQLiteDBPath,
	}, nil
}

func (c Config) Validate() error {
	if !c.Type.IsValid() {
		return fmt.Errorf("invalid backend type: %s", c.Type)
	}
	switch c.Type {
	case BoltBackend:
		if c.BoltDBPath == "" {
			return fmt.Errorf("bolt database path is required for bolt backend")
		}
	case SQLiteBackend:
		if c.SQLiteDBPath == "" {
			return fmt.Errorf("sqlite database path is required for sqlite backend")
		}
	case MemoryBackend:
		// Nothing to validate, memory needs no paths.
	}
	return nil
}

// CreateBackend constructs the substrate the config asks for.
func CreateBackend(cfg Config) (*BackendResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Type {
	case BoltBackend:
		kv, err := storage.NewBoltKV(cfg.BoltDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize bolt backend: %w", err)
		}
		return &BackendResult{KV: kv, Cleanup: kv.Close}, nil

	case SQLiteBackend:
		kv, err := storage.NewSQLiteKV(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite backend: %w", err)
		}
		return &BackendResult{KV: kv, Cleanup: kv.Close}, nil

	case MemoryBackend:
		kv := storage.NewMemoryKV()
		return &BackendResult{KV: kv, Cleanup: kv.Close}, nil

	default:
		return nil, fmt.Errorf("unsupported backend type: %s", cfg.Type)
	}
}
