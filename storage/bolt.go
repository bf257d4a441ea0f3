// MIT License
//
// Copyright (c) 2024-2026 EdgeLite Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package storage

import (
	"context"
	"fmt"
	"os"
	"time"

	bbolt "go.etcd.io/bbolt"
)

const boltFileMode os.FileMode = 0o600

var defaultBoltOptions = &bbolt.Options{Timeout: 5 * time.Second, NoGrowSync: true}

// BoltFactory persists object data in a single bbolt database, one bucket per
// object key.
//
// Concurrency:
//   - bbolt provides single-writer/multi-reader semantics, which is enough
//     here because each handle is owned by exactly one object instance.
//
// Acquisitions with persist=false are routed to an embedded in-memory factory
// so a single BoltFactory can serve a mixed configuration.
type BoltFactory struct {
	db       *bbolt.DB
	path     string
	fallback *MemoryFactory
}

var _ Factory = (*BoltFactory)(nil)

// NewBoltFactory opens (or creates) the database file at path. The database is
// configured with a short open timeout to avoid blocking on locked files.
// Closing the factory closes the underlying database.
func NewBoltFactory(path string) (*BoltFactory, error) {
	optionsCopy := *defaultBoltOptions
	db, err := bbolt.Open(path, boltFileMode, &optionsCopy)
	if err != nil {
		return nil, fmt.Errorf("storage: opening boltdb: %w", err)
	}
	return &BoltFactory{
		db:       db,
		path:     path,
		fallback: NewMemoryFactory(),
	}, nil
}

// Storage implements Factory.
func (f *BoltFactory) Storage(ctx context.Context, key string, persist bool) (Handle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !persist {
		return f.fallback.Storage(ctx, key, persist)
	}

	bucket := []byte(key)
	if err := f.db.Update(func(tx *bbolt.Tx) error {
		_, e := tx.CreateBucketIfNotExists(bucket)
		return e
	}); err != nil {
		return nil, fmt.Errorf("storage: initializing bucket %q: %w", key, err)
	}
	return &boltHandle{db: f.db, bucket: bucket}, nil
}

// Path returns the database file location.
func (f *BoltFactory) Path() string {
	return f.path
}

// Close closes the underlying database.
func (f *BoltFactory) Close() error {
	return f.db.Close()
}

// boltHandle scopes reads and writes to one object's bucket.
type boltHandle struct {
	db     *bbolt.DB
	bucket []byte
}

var _ Handle = (*boltHandle)(nil)

// Get implements Handle.
func (h *boltHandle) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var value []byte
	err := h.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(h.bucket)
		if bucket == nil {
			return ErrKeyNotFound
		}
		stored := bucket.Get([]byte(key))
		if stored == nil {
			return ErrKeyNotFound
		}
		value = make([]byte, len(stored))
		copy(value, stored)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Put implements Handle.
func (h *boltHandle) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return h.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(h.bucket)
		if err != nil {
			return err
		}
		return bucket.Put([]byte(key), value)
	})
}

// Delete implements Handle.
func (h *boltHandle) Delete(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	existed := false
	err := h.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(h.bucket)
		if bucket == nil {
			return nil
		}
		existed = bucket.Get([]byte(key)) != nil
		return bucket.Delete([]byte(key))
	})
	return existed, err
}
