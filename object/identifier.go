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
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/zeebo/xxh3"

	"github.com/edgelite/durable/internal/validation"
)

const (
	idSeparator = ":"
	// idTokenLength is the length of the hex token carried by every ID.
	idTokenLength  = 32
	idTokenPattern = "^[0-9a-f]{32}$"
)

// ID uniquely identifies a durable object instance within the simulator.
//
// It consists of:
//   - kind: the object-kind name the identifier belongs to.
//   - value: an opaque 128-bit token, hex encoded.
//
// The string form "kind:value" doubles as the instance-table key and the
// storage-partition key, so identifiers of different kinds never collide even
// when their raw tokens are equal. IDs are immutable and safe for concurrent
// use; they are never reused across object kinds.
type ID struct {
	kind  string // object-kind name
	value string // opaque hex token, unique within the kind
}

// ensure ID implements the validation.Validator interface
var _ validation.Validator = (*ID)(nil)

func newID(kind, value string) *ID {
	return &ID{
		kind:  kind,
		value: value,
	}
}

// Kind returns the object-kind name the identifier belongs to.
func (id *ID) Kind() string {
	return id.kind
}

// Value returns the opaque hex token of the identifier.
func (id *ID) Value() string {
	return id.value
}

// String returns the formatted string representation of the ID as "kind:value".
//
// It is the cache key of the instance table and the storage-partition key.
func (id *ID) String() string {
	if id == nil {
		return ""
	}
	return fmt.Sprintf("%s%s%s", id.kind, idSeparator, id.value)
}

// Equal checks whether this ID is equal to another.
//
// Two IDs are equal exactly when their string forms are equal.
// Returns false if the other is nil.
func (id *ID) Equal(other *ID) bool {
	if other == nil {
		return false
	}
	return id.kind == other.kind && id.value == other.value
}

// Validate implements validation.Validator.
func (id *ID) Validate() error {
	customErr := errors.New("token must be a 32-character lowercase hex string")
	return validation.
		New(validation.FailFast()).
		AddValidator(validation.NewEmptyStringValidator("kind", id.Kind())).
		AddAssertion(len(id.Value()) == idTokenLength, "token has the wrong length").
		AddValidator(validation.NewPatternValidator(idTokenPattern, id.Value(), customErr)).
		Validate()
}

// uniqueToken returns a fresh random identifier token.
func uniqueToken() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}

// nameToken derives a stable identifier token from a kind-qualified name.
// The same (kind, name) pair always yields the same token; distinct kinds
// with identical names yield distinct tokens.
func nameToken(kind, name string) string {
	sum := xxh3.Hash128([]byte(kind + "/" + name)).Bytes()
	return hex.EncodeToString(sum[:])
}
