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
	"github.com/edgelite/durable/storage"
)

// ObjectState is what a constructor receives: the identifier of the instance
// being built and its dedicated storage handle. The handle is owned
// exclusively by this instance.
type ObjectState struct {
	id      *ID
	storage storage.Handle
}

func newObjectState(id *ID, handle storage.Handle) *ObjectState {
	return &ObjectState{
		id:      id,
		storage: handle,
	}
}

// ID returns the identifier of the object instance.
func (s *ObjectState) ID() *ID {
	return s.id
}

// Storage returns the private storage handle of the object instance.
func (s *ObjectState) Storage() storage.Handle {
	return s.storage
}

// Instance is the single live incarnation of a durable object within one
// generation: its state plus the user object built by the registered
// constructor. Instances are owned by the Manager and become collectible when
// the instance table is cleared at the start of the next generation.
type Instance struct {
	state  *ObjectState
	object any
}

// State returns the object state the instance was built with.
func (i *Instance) State() *ObjectState {
	return i.state
}

// ID returns the identifier of the instance.
func (i *Instance) ID() *ID {
	return i.state.ID()
}

// Storage returns the private storage handle of the instance.
func (i *Instance) Storage() storage.Handle {
	return i.state.Storage()
}

// Object returns the user object built by the configured constructor.
func (i *Instance) Object() any {
	return i.object
}
