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

// Bindings is the environment every instantiated object receives: an opaque
// mapping of names to values. It is captured by a successful reload and
// replaced atomically on the next one; the Manager never mutates it.
type Bindings map[string]any

// Constructor builds one user object instance. The state carries the
// identifier and the dedicated storage handle; env is the bindings context of
// the generation the instance belongs to. What the returned value is able to
// do is the concern of the request-dispatch layer, not of this package.
type Constructor func(state *ObjectState, env Bindings) (any, error)

// Members is the set of exported names of one built script.
type Members map[string]Constructor

// Exports gives access to the exported members of the most recent script
// build. It is consulted only during Reload; absence of a script is a normal,
// checked outcome.
type Exports interface {
	// Get returns the exported members of the script at the given path. The
	// second return value reports whether the script exists in the build.
	Get(scriptPath string) (Members, bool)
}

// StaticExports is a map-backed Exports implementation, keyed by script path.
type StaticExports map[string]Members

var _ Exports = (StaticExports)(nil)

// Get implements Exports.
func (s StaticExports) Get(scriptPath string) (Members, bool) {
	members, ok := s[scriptPath]
	return members, ok
}
