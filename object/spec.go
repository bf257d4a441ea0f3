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
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/edgelite/durable/internal/validation"
)

const kindNamePattern = "^[a-zA-Z0-9][a-zA-Z0-9-_\\.]*$"

// Definition is the raw configuration of one object kind: the exported class
// to instantiate and, optionally, the script exporting it. When ScriptPath is
// empty the main script of the build is used. Translation from any external
// configuration format into this shape happens upstream.
type Definition struct {
	ClassName  string
	ScriptPath string
}

// ProcessedObject is the normalized form of one configured object kind. The
// processed list is built once at startup and read-only for the process
// lifetime; reloads re-resolve constructors against it but never change it.
type ProcessedObject struct {
	Name       string
	ClassName  string
	ScriptPath string
}

// ProcessObjects translates the raw object-kind mapping into the normalized
// list the Manager consumes. Kind names and class names are validated; the
// result is sorted by kind name so the outcome is deterministic.
func ProcessObjects(definitions map[string]Definition) ([]ProcessedObject, error) {
	processed := make([]ProcessedObject, 0, len(definitions))
	for name, definition := range definitions {
		if err := validateKindName(name); err != nil {
			return nil, fmt.Errorf("object=(%s): %w", name, err)
		}
		if err := validation.NewEmptyStringValidator("className", definition.ClassName).Validate(); err != nil {
			return nil, fmt.Errorf("object=(%s): %w", name, err)
		}
		processed = append(processed, ProcessedObject{
			Name:       name,
			ClassName:  definition.ClassName,
			ScriptPath: definition.ScriptPath,
		})
	}

	sort.Slice(processed, func(i, j int) bool {
		return processed[i].Name < processed[j].Name
	})
	return processed, nil
}

// validateKindName checks an object-kind name against the naming rules.
func validateKindName(name string) error {
	customErr := errors.New("must contain only word characters (i.e. [a-zA-Z0-9] plus non-leading '-' or '_')")
	return validation.
		New(validation.FailFast()).
		AddValidator(validation.NewEmptyStringValidator("name", name)).
		AddAssertion(len(name) <= 255, "object kind name is too long. Maximum length is 255").
		AddValidator(validation.NewPatternValidator(kindNamePattern, strings.TrimSpace(name), customErr)).
		Validate()
}
