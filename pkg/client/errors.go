/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package client

import (
	"errors"
	"fmt"
)

var (
	// ErrResponseNotSet is returned when a wrapper carries no raw response.
	ErrResponseNotSet = errors.New("response cannot be nil")

	// ErrEmptyBody is wrapped by a DecodeError when there was nothing to decode.
	ErrEmptyBody = errors.New("response body is empty")
)

// DecodeError is returned when a response body cannot be mapped to the
// requested type.
type DecodeError struct {
	// Type is the name of the type decoding was attempted into.
	Type string
	// Body is the raw response text.
	Body string
	// Err is the underlying cause.
	Err error
}

func (e *DecodeError) Error() string {
	if errors.Is(e.Err, ErrEmptyBody) {
		return fmt.Sprintf("response body is empty; cannot map to %s", e.Type)
	}

	return fmt.Sprintf("failed to map response body to %s: %v. Raw response: %s", e.Type, e.Err, e.Body)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// StatusMismatchError reports that the service answered with a different
// status code than the test expected.
type StatusMismatchError struct {
	Expected int
	Actual   int
	Body     string
	TraceID  string
}

func (e *StatusMismatchError) Error() string {
	return fmt.Sprintf("response status code differs. Expected: %d, Actual: %d, body: %s (trace ID: %s)", e.Expected, e.Actual, e.Body, e.TraceID)
}

// IsStatusMismatch reports whether err is, or wraps, a status mismatch.
func IsStatusMismatch(err error) bool {
	var target *StatusMismatchError
	return errors.As(err, &target)
}

// IsDecodeError reports whether err is, or wraps, a decode failure.
func IsDecodeError(err error) bool {
	var target *DecodeError
	return errors.As(err, &target)
}
