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
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"reflect"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// Wrapper is anything carrying a raw response, every Response[T] satisfies it
// regardless of T.
type Wrapper interface {
	Raw() (*resty.Response, error)
}

// Response wraps exactly one HTTP response together with the type a
// successful body is expected to decode into.
type Response[T any] struct {
	raw *resty.Response
}

// NewResponse wraps a raw response.
func NewResponse[T any](raw *resty.Response) *Response[T] {
	return &Response[T]{
		raw: raw,
	}
}

// Raw returns the underlying response.
func (r *Response[T]) Raw() (*resty.Response, error) {
	if r == nil || r.raw == nil {
		return nil, ErrResponseNotSet
	}

	return r.raw, nil
}

// StatusCode returns the HTTP status code, or zero when there is no response.
func (r *Response[T]) StatusCode() int {
	if r == nil || r.raw == nil {
		return 0
	}

	return r.raw.StatusCode()
}

// BodyAsString returns the raw body text.
func (r *Response[T]) BodyAsString() string {
	if r == nil || r.raw == nil {
		return ""
	}

	return string(r.raw.Body())
}

// Header returns the response headers.
func (r *Response[T]) Header() http.Header {
	if r == nil || r.raw == nil {
		return http.Header{}
	}

	return r.raw.Header()
}

// Duration is the time the call took.
func (r *Response[T]) Duration() time.Duration {
	if r == nil || r.raw == nil {
		return 0
	}

	return r.raw.Time()
}

// TraceID returns the W3C trace ID that was sent with the request.
func (r *Response[T]) TraceID() string {
	if r == nil || r.raw == nil || r.raw.Request == nil {
		return ""
	}

	return traceID(r.raw.Request.Header.Get(traceParentHeader))
}

// ExpectStatus returns a *StatusMismatchError carrying both codes when the
// response status differs from the expected one.
func (r *Response[T]) ExpectStatus(code int) error {
	raw, err := r.Raw()
	if err != nil {
		return err
	}

	if raw.StatusCode() != code {
		return &StatusMismatchError{
			Expected: code,
			Actual:   raw.StatusCode(),
			Body:     string(raw.Body()),
			TraceID:  r.TraceID(),
		}
	}

	return nil
}

// Expect checks the status code then decodes the body.
func (r *Response[T]) Expect(code int) (*T, error) {
	if err := r.ExpectStatus(code); err != nil {
		return nil, err
	}

	return r.ReadEntity()
}

// ReadEntity decodes the body into T. It may be called any number of times,
// each call parses the same bytes again.
func (r *Response[T]) ReadEntity() (*T, error) {
	return ReadAs[T](r)
}

// SchemaValidator checks a response against a service description.
type SchemaValidator interface {
	ValidateResponse(ctx context.Context, req *http.Request, status int, header http.Header, body []byte) error
}

// MatchesSchema validates the response against the operation it answered.
func (r *Response[T]) MatchesSchema(ctx context.Context, v SchemaValidator) error {
	raw, err := r.Raw()
	if err != nil {
		return err
	}

	var req *http.Request

	if raw.Request != nil {
		req = raw.Request.RawRequest
	}

	return v.ValidateResponse(ctx, req, raw.StatusCode(), raw.Header(), raw.Body())
}

// Field looks a value up in the JSON body by gjson path.
func (r *Response[T]) Field(path string) gjson.Result {
	if r == nil || r.raw == nil {
		return gjson.Result{}
	}

	return gjson.GetBytes(r.raw.Body(), path)
}

// ReadError decodes an error body. It is kept apart from ReadEntity so one
// endpoint can answer different failures with different schemas.
func ReadError[E any](w Wrapper) (*E, error) {
	return ReadAs[E](w)
}

// ReadAs decodes the body of any wrapped response into E.
func ReadAs[E any](w Wrapper) (*E, error) {
	raw, err := w.Raw()
	if err != nil {
		return nil, err
	}

	return decode[E](raw.Body())
}

func decode[E any](body []byte) (*E, error) {
	name := reflect.TypeFor[E]().String()

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, &DecodeError{
			Type: name,
			Body: string(body),
			Err:  ErrEmptyBody,
		}
	}

	var out E

	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &DecodeError{
			Type: name,
			Body: string(body),
			Err:  err,
		}
	}

	return &out, nil
}
