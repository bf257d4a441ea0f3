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

// Package errors defines the sentinel errors surfaced by the durable object
// lifecycle core.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrScriptNotFound is returned during a reload when the script expected
	// to export an object kind's class cannot be located in the built module set.
	// The reload attempt is aborted; the process keeps serving the previous
	// generation.
	ErrScriptNotFound = errors.New("script not found")

	// ErrClassNotFound is returned during a reload when the script is found
	// but does not export the configured class name.
	ErrClassNotFound = errors.New("class not found")

	// ErrKindNotConfigured is returned when a namespace is requested for an
	// object kind that is absent from the processed configuration.
	ErrKindNotConfigured = errors.New("object kind is not configured")

	// ErrKindMismatch is returned when an identifier belonging to one object
	// kind is presented to a namespace of another kind.
	ErrKindMismatch = errors.New("object identifier belongs to another kind")

	// ErrInvalidObjectID is returned when an object identifier is malformed.
	ErrInvalidObjectID = errors.New("invalid object identifier")

	// ErrConstructorNotRegistered indicates that a constructor was absent from
	// the registry after a successful reload. Reload validates every configured
	// object kind, so hitting this is a logic defect, not a user error; it is
	// always surfaced wrapped in an InternalError.
	ErrConstructorNotRegistered = errors.New("object constructor is not registered")
)

// NewErrScriptNotFound formats an ErrScriptNotFound naming the object kind and
// the script path that failed to resolve.
func NewErrScriptNotFound(kind, path string) error {
	return fmt.Errorf("object=(%s) script=(%s) %w", kind, path, ErrScriptNotFound)
}

// NewErrClassNotFound formats an ErrClassNotFound naming the object kind and
// the missing class.
func NewErrClassNotFound(kind, className string) error {
	return fmt.Errorf("object=(%s) class=(%s) %w", kind, className, ErrClassNotFound)
}

// NewErrKindNotConfigured formats an ErrKindNotConfigured with the given kind.
func NewErrKindNotConfigured(kind string) error {
	return fmt.Errorf("object=(%s) %w", kind, ErrKindNotConfigured)
}

// NewErrKindMismatch formats an ErrKindMismatch with the expected and actual kinds.
func NewErrKindMismatch(want, got string) error {
	return fmt.Errorf("namespace=(%s) identifier kind=(%s) %w", want, got, ErrKindMismatch)
}

// NewErrInvalidObjectID formats an ErrInvalidObjectID with the underlying cause.
func NewErrInvalidObjectID(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidObjectID, err)
}

// NewErrConstructorNotRegistered formats an ErrConstructorNotRegistered with
// the given kind.
func NewErrConstructorNotRegistered(kind string) error {
	return fmt.Errorf("object=(%s) %w", kind, ErrConstructorNotRegistered)
}

// InternalError marks a failure caused by an internal-consistency defect
// rather than by user input. Callers should treat it as a bug to report, not
// a condition to handle.
type InternalError struct {
	err error
}

// enforce compilation error
var _ error = (*InternalError)(nil)

// NewInternalError returns an instance of InternalError.
func NewInternalError(err error) *InternalError {
	return &InternalError{
		err: fmt.Errorf("internal error: %w", err),
	}
}

// Error implements the standard error interface.
func (i *InternalError) Error() string {
	return i.err.Error()
}

func (i *InternalError) Unwrap() error {
	return i.err
}
