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

package object

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edgelite/durable/log"
	"github.com/edgelite/durable/storage"
)

const mainScript = "/srv/worker.js"

// counterObject is the user class used throughout the tests. It keeps its
// count in the object's private storage so state survives reloads.
type counterObject struct {
	state *ObjectState
	env   Bindings
	mu    sync.Mutex
}

func counterConstructor(state *ObjectState, env Bindings) (any, error) {
	return &counterObject{state: state, env: env}, nil
}

func (c *counterObject) Increment(ctx context.Context) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	value := 0
	raw, err := c.state.Storage().Get(ctx, "count")
	switch {
	case err == nil:
		value, _ = strconv.Atoi(string(raw))
	case errors.Is(err, storage.ErrKeyNotFound):
	default:
		return 0, err
	}

	value++
	if err := c.state.Storage().Put(ctx, "count", []byte(strconv.Itoa(value))); err != nil {
		return 0, err
	}
	return value, nil
}

// countingFactory wraps the in-memory factory and records how many times
// storage was acquired per object key.
type countingFactory struct {
	inner storage.Factory
	mu    sync.Mutex
	calls map[string]int
}

func newCountingFactory() *countingFactory {
	return &countingFactory{
		inner: storage.NewMemoryFactory(),
		calls: make(map[string]int),
	}
}

func (f *countingFactory) Storage(ctx context.Context, key string, persist bool) (storage.Handle, error) {
	f.mu.Lock()
	f.calls[key]++
	f.mu.Unlock()
	return f.inner.Storage(ctx, key, persist)
}

func (f *countingFactory) count(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[key]
}

// flakyFactory fails a configured number of acquisitions before delegating.
type flakyFactory struct {
	inner     storage.Factory
	mu        sync.Mutex
	remaining int
	attempts  int
}

var errStorageUnavailable = errors.New("storage unavailable")

func newFlakyFactory(failures int) *flakyFactory {
	return &flakyFactory{
		inner:     storage.NewMemoryFactory(),
		remaining: failures,
	}
}

func (f *flakyFactory) Storage(ctx context.Context, key string, persist bool) (storage.Handle, error) {
	f.mu.Lock()
	f.attempts++
	if f.remaining > 0 {
		f.remaining--
		f.mu.Unlock()
		return nil, errStorageUnavailable
	}
	f.mu.Unlock()
	return f.inner.Storage(ctx, key, persist)
}

// blockingFactory parks every acquisition until released, then fails it.
// It lets a test attach several callers to one in-flight construction.
type blockingFactory struct {
	entered chan struct{}
	release chan struct{}
}

func newBlockingFactory() *blockingFactory {
	return &blockingFactory{
		entered: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
}

func (f *blockingFactory) Storage(ctx context.Context, _ string, _ bool) (storage.Handle, error) {
	select {
	case f.entered <- struct{}{}:
	default:
	}
	select {
	case <-f.release:
		return nil, errStorageUnavailable
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func newTestManager(t *testing.T, definitions map[string]Definition, opts ...Option) *Manager {
	t.Helper()
	processed, err := ProcessObjects(definitions)
	require.NoError(t, err)
	options := append([]Option{WithLogger(log.DiscardLogger)}, opts...)
	return NewManager(processed, options...)
}

// counterExports is the module set of a build whose main script exports
// CounterClass.
func counterExports() StaticExports {
	return StaticExports{
		mainScript: Members{"CounterClass": counterConstructor},
	}
}

func reloadCounter(t *testing.T, manager *Manager, bindings Bindings) {
	t.Helper()
	require.NoError(t, manager.Reload(counterExports(), bindings, mainScript))
}
