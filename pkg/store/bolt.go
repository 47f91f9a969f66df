package store

import (
	"context"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

const recordBucket = "records"

// BoltStore persists records in a bbolt file with a single bucket.
type BoltStore struct {
	db *bolt.DB
}

// OpenBolt opens (or creates) the record database at path.
func OpenBolt(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open record db %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(recordBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init record bucket: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// Get implements Store.
func (b *BoltStore) Get(_ context.Context, key string) ([]byte, error) {
	var out []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket([]byte(recordBucket)).Get([]byte(key))
		if data != nil {
			// Bolt memory is only valid inside the transaction.
			out = make([]byte, len(data))
			copy(out, data)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Set implements Store.
func (b *BoltStore) Set(_ context.Context, key string, data []byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(recordBucket)).Put([]byte(key), data)
	})
}

// Remove implements Store.
func (b *BoltStore) Remove(_ context.Context, key string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(recordBucket)).Delete([]byte(key))
	})
}

// Close implements Store.
func (b *BoltStore) Close() error {
	return b.db.Close()
}
