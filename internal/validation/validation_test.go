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

package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChain(t *testing.T) {
	t.Run("empty chain passes", func(t *testing.T) {
		assert.NoError(t, New().Validate())
	})

	t.Run("collects all violations by default", func(t *testing.T) {
		err := New().
			AddAssertion(false, "first").
			AddAssertion(false, "second").
			Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "first")
		assert.Contains(t, err.Error(), "second")
	})

	t.Run("fail fast stops at the first violation", func(t *testing.T) {
		err := New(FailFast()).
			AddAssertion(false, "first").
			AddAssertion(false, "second").
			Validate()
		require.Error(t, err)
		assert.Equal(t, "first", err.Error())
	})

	t.Run("all errors option", func(t *testing.T) {
		err := New(AllErrors()).
			AddAssertion(true, "first").
			AddAssertion(false, "second").
			Validate()
		require.Error(t, err)
		assert.Equal(t, "second", err.Error())
	})
}

func TestEmptyStringValidator(t *testing.T) {
	assert.Error(t, NewEmptyStringValidator("name", "").Validate())
	assert.NoError(t, NewEmptyStringValidator("name", "value").Validate())
}

func TestPatternValidator(t *testing.T) {
	t.Run("match passes", func(t *testing.T) {
		assert.NoError(t, NewPatternValidator("^[a-z]+$", "abc", nil).Validate())
	})

	t.Run("mismatch returns default error", func(t *testing.T) {
		err := NewPatternValidator("^[a-z]+$", "ABC", nil).Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid value")
	})

	t.Run("mismatch returns custom error", func(t *testing.T) {
		custom := errors.New("bad token")
		err := NewPatternValidator("^[a-z]+$", "ABC", custom).Validate()
		assert.ErrorIs(t, err, custom)
	})

	t.Run("invalid pattern is reported", func(t *testing.T) {
		assert.Error(t, NewPatternValidator("([", "abc", nil).Validate())
	})
}
