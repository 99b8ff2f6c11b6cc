package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketName = []byte("popcorn")

const openTimeout = time.Second

// DB is a durable local key-value store backed by a bbolt file.
type DB struct {
	bolt *bolt.DB
	path string
}

// Open opens (or creates) the database at path, creating parent directories.
func Open(path string) (*DB, error) {
	if path == "" {
		return nil, fmt.Errorf("storage path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, fmt.Errorf("open storage %s: database is locked by another process", path)
		}
		return nil, fmt.Errorf("open storage %s: %w", path, err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init storage bucket: %w", err)
	}
	return &DB{bolt: db, path: path}, nil
}

// Path returns the database file location.
func (d *DB) Path() string {
	return d.path
}

// Put stores value under key, replacing any previous value.
func (d *DB) Put(key string, value []byte) error {
	if err := d.bolt.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), value)
	}); err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}
	return nil
}

// Get returns a copy of the value stored under key.
func (d *DB) Get(key string) ([]byte, bool, error) {
	var out []byte
	var found bool
	err := d.bolt.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketName).Get([]byte(key))
		if v == nil {
			return nil
		}
		found = true
		out = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("get %q: %w", key, err)
	}
	return out, found, nil
}

// Close releases the database file.
func (d *DB) Close() error {
	if d == nil || d.bolt == nil {
		return nil
	}
	return d.bolt.Close()
}
