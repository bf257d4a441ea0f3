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
	"sync"
)

// reloadGate is the single-slot coordination gate between configuration
// epochs. It is closed while the user code is being rebuilt and open once a
// complete constructor registry and bindings context are installed.
//
// Behavior:
//   - The gate starts closed; the very first reload opens it.
//   - close() arms a fresh pending gate; open() releases every waiter,
//     current and future, until the next close().
//   - Only one gate is ever pending at a time: reload is a global,
//     serialized event in the simulator.
//   - After opening, checks are effectively free (a closed channel read).
//   - Disposal never opens the gate; a suspended caller is released only by
//     its own context.
//
// Every close advances an epoch. A caller that passed the gate can later ask
// whether its epoch is still the current open one, which is how the Manager
// detects a reload racing the registration of an in-flight construction.
type reloadGate struct {
	mu     sync.Mutex
	ready  chan struct{}
	epoch  uint64
	opened bool
}

func newReloadGate() *reloadGate {
	return &reloadGate{
		ready: make(chan struct{}),
	}
}

// open releases all callers currently suspended on await and all future
// callers until the next close. Idempotent while open.
func (g *reloadGate) open() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.opened {
		return
	}
	g.opened = true
	close(g.ready)
}

// close arms a new pending gate and advances the epoch. Any caller entering
// await after this point suspends until the matching open. Idempotent while
// closed.
func (g *reloadGate) close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.opened {
		return
	}
	g.opened = false
	g.epoch++
	g.ready = make(chan struct{})
}

// await suspends until the current gate is open or ctx is done. It returns
// the epoch the gate was observed open at, so the caller can detect a close
// racing its next step with sameEpoch.
func (g *reloadGate) await(ctx context.Context) (uint64, error) {
	for {
		g.mu.Lock()
		if g.opened {
			epoch := g.epoch
			g.mu.Unlock()
			return epoch, nil
		}
		ready := g.ready
		g.mu.Unlock()

		select {
		case <-ready:
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}
}

// sameEpoch reports whether the gate is still open at the given epoch, that
// is, no close has happened since the await that observed it.
func (g *reloadGate) sameEpoch(epoch uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.opened && g.epoch == epoch
}
