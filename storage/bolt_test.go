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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoltFactory(t *testing.T) *BoltFactory {
	t.Helper()
	factory, err := NewBoltFactory(filepath.Join(t.TempDir(), "objects.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, factory.Close())
	})
	return factory
}

func TestBoltFactory(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		factory := newTestBoltFactory(t)
		handle, err := factory.Storage(ctx, "Counter:abc", true)
		require.NoError(t, err)

		require.NoError(t, handle.Put(ctx, "count", []byte("41")))
		value, err := handle.Get(ctx, "count")
		require.NoError(t, err)
		assert.Equal(t, []byte("41"), value)

		existed, err := handle.Delete(ctx, "count")
		require.NoError(t, err)
		assert.True(t, existed)

		_, err = handle.Get(ctx, "count")
		assert.ErrorIs(t, err, ErrKeyNotFound)
	})

	t.Run("buckets are partitioned per object key", func(t *testing.T) {
		factory := newTestBoltFactory(t)
		a, err := factory.Storage(ctx, "Counter:a", true)
		require.NoError(t, err)
		b, err := factory.Storage(ctx, "Counter:b", true)
		require.NoError(t, err)

		require.NoError(t, a.Put(ctx, "count", []byte("1")))
		_, err = b.Get(ctx, "count")
		assert.ErrorIs(t, err, ErrKeyNotFound)
	})

	t.Run("data survives re-acquisition", func(t *testing.T) {
		factory := newTestBoltFactory(t)
		first, err := factory.Storage(ctx, "Counter:abc", true)
		require.NoError(t, err)
		require.NoError(t, first.Put(ctx, "count", []byte("7")))

		second, err := factory.Storage(ctx, "Counter:abc", true)
		require.NoError(t, err)
		value, err := second.Get(ctx, "count")
		require.NoError(t, err)
		assert.Equal(t, []byte("7"), value)
	})

	t.Run("persist false falls back to memory", func(t *testing.T) {
		factory := newTestBoltFactory(t)
		handle, err := factory.Storage(ctx, "Counter:abc", false)
		require.NoError(t, err)

		require.NoError(t, handle.Put(ctx, "count", []byte("1")))
		_, isMemory := handle.(*memoryHandle)
		assert.True(t, isMemory)
	})

	t.Run("delete of a missing key reports false", func(t *testing.T) {
		factory := newTestBoltFactory(t)
		handle, err := factory.Storage(ctx, "Counter:abc", true)
		require.NoError(t, err)

		existed, err := handle.Delete(ctx, "absent")
		require.NoError(t, err)
		assert.False(t, existed)
	})

	t.Run("canceled context is honored", func(t *testing.T) {
		factory := newTestBoltFactory(t)
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := factory.Storage(canceled, "Counter:abc", true)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
