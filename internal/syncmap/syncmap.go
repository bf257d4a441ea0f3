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

// Package syncmap provides a generic concurrency-safe map whose atomic
// get-or-insert and compare-and-delete operations make it suitable as a
// de-duplicating cache of in-flight work.
package syncmap

import "sync"

// Map is a generic, concurrency-safe map guarded by a read-write mutex.
//
// K is the key type and must be comparable. V is the value type; it must be
// comparable so that CompareAndDelete can match entries by identity.
type Map[K comparable, V comparable] struct {
	mu   sync.RWMutex
	data map[K]V
}

// New creates an empty Map.
func New[K comparable, V comparable]() *Map[K, V] {
	return &Map[K, V]{
		data: make(map[K]V),
	}
}

// Get returns the value stored under k. The second return value reports
// whether the key was present.
func (m *Map[K, V]) Get(k K) (V, bool) {
	m.mu.RLock()
	val, ok := m.data[k]
	m.mu.RUnlock()
	return val, ok
}

// GetOrSet stores v under k unless the key is already present. It returns the
// value now associated with k and whether that value was already there.
//
// The check and the insert happen under a single critical section, so exactly
// one caller ever observes loaded == false for a given key.
func (m *Map[K, V]) GetOrSet(k K, v V) (actual V, loaded bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.data[k]; ok {
		return existing, true
	}
	m.data[k] = v
	return v, false
}

// Delete removes the entry stored under k, if any.
func (m *Map[K, V]) Delete(k K) {
	m.mu.Lock()
	delete(m.data, k)
	m.mu.Unlock()
}

// CompareAndDelete removes the entry stored under k only when its current
// value equals v. It reports whether an entry was removed. This prevents a
// stale owner from evicting an entry that has since been replaced.
func (m *Map[K, V]) CompareAndDelete(k K, v V) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.data[k]; ok && existing == v {
		delete(m.data, k)
		return true
	}
	return false
}

// Reset drops every entry at once.
func (m *Map[K, V]) Reset() {
	m.mu.Lock()
	m.data = make(map[K]V)
	m.mu.Unlock()
}

// Len returns the number of entries currently stored.
func (m *Map[K, V]) Len() int {
	m.mu.RLock()
	l := len(m.data)
	m.mu.RUnlock()
	return l
}

// Range calls f for every entry. The iteration order is not specified.
func (m *Map[K, V]) Range(f func(K, V)) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for k, v := range m.data {
		f(k, v)
	}
}
