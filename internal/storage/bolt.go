package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	bolt "go.etcd.io/bbolt"
)

// bucketCollections holds every collection key; one bucket is enough for
// four keys.
const bucketCollections = "collections"

// BoltKV is the local-first durable store: a single-file bbolt database.
type BoltKV struct {
	db *bolt.DB
}

func NewBoltKV(dbPath string) (*BoltKV, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := bolt.Open(dbPath, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("open bolt database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketCollections))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}

	slog.Info("Opened bolt store", "path", dbPath)
	return &BoltKV{db: db}, nil
}

func (s *BoltKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if data := tx.Bucket([]byte(bucketCollections)).Get([]byte(key)); data != nil {
			value = append([]byte(nil), data...)
		}
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("bolt get %s: %w", key, err)
	}
	return value, value != nil, nil
}

func (s *BoltKV) Put(_ context.Context, key string, value []byte) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketCollections)).Put([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("bolt put %s: %w", key, err)
	}
	return nil
}

func (s *BoltKV) Close() error {
	return s.db.Close()
}
