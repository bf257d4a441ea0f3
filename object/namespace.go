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
	"strings"

	gerrors "github.com/edgelite/durable/errors"
	"github.com/edgelite/durable/storage"
)

// Namespace is the per-object-kind façade handed to user code as the value of
// the configured binding. It is stateless beyond its captured kind name and
// storage factory; it exists so unrelated object kinds cannot be confused
// even when their raw identifier tokens collide.
type Namespace struct {
	manager *Manager
	factory storage.Factory
	kind    string
}

// Kind returns the object-kind name the namespace is bound to.
func (n *Namespace) Kind() string {
	return n.kind
}

// NewUniqueID generates a fresh random identifier within the namespace's kind.
func (n *Namespace) NewUniqueID() *ID {
	return newID(n.kind, uniqueToken())
}

// IDFromName derives the stable identifier for a well-known name. The same
// name always maps to the same identifier within a kind, while the same name
// under a different kind maps to a different one.
func (n *Namespace) IDFromName(name string) *ID {
	return newID(n.kind, nameToken(n.kind, name))
}

// IDFromString reconstructs an identifier from a previously obtained token.
// Malformed tokens are rejected.
func (n *Namespace) IDFromString(token string) (*ID, error) {
	id := newID(n.kind, strings.TrimSpace(token))
	if err := id.Validate(); err != nil {
		return nil, gerrors.NewErrInvalidObjectID(err)
	}
	return id, nil
}

// Get returns the single live instance addressed by id, creating it if
// needed. Identifiers belonging to another kind are rejected before touching
// the instance table.
func (n *Namespace) Get(ctx context.Context, id *ID) (*Instance, error) {
	if id == nil {
		return nil, gerrors.NewErrInvalidObjectID(errors.New("identifier is nil"))
	}
	if id.Kind() != n.kind {
		return nil, gerrors.NewErrKindMismatch(n.kind, id.Kind())
	}
	return n.manager.GetInstance(ctx, n.factory, id)
}
