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

package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormattedSentinels(t *testing.T) {
	t.Run("script not found names kind and path", func(t *testing.T) {
		err := NewErrScriptNotFound("Counter", "/srv/worker.js")
		assert.ErrorIs(t, err, ErrScriptNotFound)
		assert.Contains(t, err.Error(), "Counter")
		assert.Contains(t, err.Error(), "/srv/worker.js")
	})

	t.Run("class not found names kind and class", func(t *testing.T) {
		err := NewErrClassNotFound("Counter", "CounterClass")
		assert.ErrorIs(t, err, ErrClassNotFound)
		assert.Contains(t, err.Error(), "Counter")
		assert.Contains(t, err.Error(), "CounterClass")
	})

	t.Run("kind not configured", func(t *testing.T) {
		err := NewErrKindNotConfigured("Missing")
		assert.ErrorIs(t, err, ErrKindNotConfigured)
		assert.Contains(t, err.Error(), "Missing")
	})

	t.Run("kind mismatch names both kinds", func(t *testing.T) {
		err := NewErrKindMismatch("Counter", "Chat")
		assert.ErrorIs(t, err, ErrKindMismatch)
		assert.Contains(t, err.Error(), "Counter")
		assert.Contains(t, err.Error(), "Chat")
	})

	t.Run("invalid object identifier wraps the cause", func(t *testing.T) {
		cause := errors.New("not hexadecimal")
		err := NewErrInvalidObjectID(cause)
		assert.ErrorIs(t, err, ErrInvalidObjectID)
		assert.ErrorIs(t, err, cause)
	})
}

func TestInternalError(t *testing.T) {
	cause := NewErrConstructorNotRegistered("Counter")
	err := NewInternalError(cause)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "internal error")
	assert.ErrorIs(t, err, ErrConstructorNotRegistered)

	var internal *InternalError
	assert.ErrorAs(t, error(err), &internal)
}
