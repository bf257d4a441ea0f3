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
	"fmt"
	"regexp"
)

// patternValidator matches a string value against a regular expression.
type patternValidator struct {
	pattern   string
	value     string
	customErr error
}

var _ Validator = (*patternValidator)(nil)

// NewPatternValidator creates a validator that matches value against pattern.
// When customErr is set it is returned verbatim on mismatch.
func NewPatternValidator(pattern, value string, customErr error) Validator {
	return &patternValidator{pattern: pattern, value: value, customErr: customErr}
}

// Validate implements Validator.
func (v *patternValidator) Validate() error {
	matched, err := regexp.MatchString(v.pattern, v.value)
	if err != nil {
		return err
	}
	if !matched {
		if v.customErr != nil {
			return v.customErr
		}
		return fmt.Errorf("invalid value [%s], must match %s", v.value, v.pattern)
	}
	return nil
}
