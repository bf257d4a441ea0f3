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
)

// inflight is a single-assignment cell holding an instance construction that
// may or may not have completed yet. It is registered in the instance table
// before any asynchronous work starts, so every concurrent caller for the
// same identifier awaits the same construction instead of starting another.
type inflight struct {
	done     chan struct{}
	instance *Instance
	err      error
}

func newInflight() *inflight {
	return &inflight{
		done: make(chan struct{}),
	}
}

// succeed completes the cell with an instance. Must be called at most once.
func (c *inflight) succeed(instance *Instance) {
	c.instance = instance
	close(c.done)
}

// fail completes the cell with an error. Must be called at most once.
func (c *inflight) fail(err error) {
	c.err = err
	close(c.done)
}

// await blocks until the cell is completed or ctx is done. A caller that
// abandons the wait does not affect the shared construction.
func (c *inflight) await(ctx context.Context) (*Instance, error) {
	select {
	case <-c.done:
		return c.instance, c.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
