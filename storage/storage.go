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

// Package storage defines the per-object storage collaborator consumed by the
// lifecycle core, together with an in-memory factory and a bbolt-backed one.
//
// The core calls Factory.Storage at most once per object key per generation;
// the returned Handle is owned exclusively by the object instance that
// requested it.
package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Handle.Get when the key has no value.
var ErrKeyNotFound = errors.New("storage: key not found")

// Handle is the private key-value storage of a single durable object.
type Handle interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error
	// Delete removes the value stored under key and reports whether a value
	// was present.
	Delete(ctx context.Context, key string) (bool, error)
}

// Factory yields the storage handle dedicated to one durable object.
//
// The key is the kind-qualified identifier string of the object; it doubles as
// the storage partition key. The persist flag selects durable media when the
// factory supports it.
type Factory interface {
	Storage(ctx context.Context, key string, persist bool) (Handle, error)
}
