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
	"sync"

	"github.com/edgelite/durable/internal/syncmap"
)

// MemoryFactory keeps every object's data in process memory. Data written by
// one generation is visible to the next acquisition of the same key, which is
// how a hot reload keeps object state without touching disk. The persist flag
// is accepted and ignored.
type MemoryFactory struct {
	stores *syncmap.Map[string, *memoryHandle]
}

var _ Factory = (*MemoryFactory)(nil)

// NewMemoryFactory creates an empty in-memory storage factory.
func NewMemoryFactory() *MemoryFactory {
	return &MemoryFactory{
		stores: syncmap.New[string, *memoryHandle](),
	}
}

// Storage implements Factory.
func (f *MemoryFactory) Storage(ctx context.Context, key string, _ bool) (Handle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	handle, _ := f.stores.GetOrSet(key, newMemoryHandle())
	return handle, nil
}

// memoryHandle is a mutex-guarded byte map.
type memoryHandle struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ Handle = (*memoryHandle)(nil)

func newMemoryHandle() *memoryHandle {
	return &memoryHandle{data: make(map[string][]byte)}
}

// Get implements Handle.
func (h *memoryHandle) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	value, ok := h.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Put implements Handle.
func (h *memoryHandle) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	h.mu.Lock()
	h.data[key] = stored
	h.mu.Unlock()
	return nil
}

// Delete implements Handle.
func (h *memoryHandle) Delete(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	_, ok := h.data[key]
	delete(h.data, key)
	return ok, nil
}
