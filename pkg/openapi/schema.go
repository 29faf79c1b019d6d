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

package openapi

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
)

//go:embed player.spec.yaml
var spec []byte

var ErrNoRequest = errors.New("response carries no request to match a route with")

// Spec returns the parsed Player service description.
func Spec() (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(spec)
	if err != nil {
		return nil, fmt.Errorf("loading player spec: %w", err)
	}

	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("validating player spec: %w", err)
	}

	return doc, nil
}

// LoadSpec fetches a service description from a location, e.g. the swagger
// document a deployment publishes.
func LoadSpec(ctx context.Context, location *url.URL) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx
	loader.IsExternalRefsAllowed = true

	doc, err := loader.LoadFromURI(location)
	if err != nil {
		return nil, fmt.Errorf("loading spec from %s: %w", location, err)
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validating spec from %s: %w", location, err)
	}

	return doc, nil
}

// Validator checks service responses against the Player service description.
type Validator struct {
	doc      *openapi3.T
	router   routers.Router
	basePath string
}

type ValidatorOption func(*Validator)

// WithDocument validates against the given description rather than the
// embedded one.
func WithDocument(doc *openapi3.T) ValidatorOption {
	return func(v *Validator) {
		v.doc = doc
	}
}

// WithBasePath strips a prefix from request paths before routing, for services
// mounted below the root of their host.
func WithBasePath(basePath string) ValidatorOption {
	return func(v *Validator) {
		v.basePath = strings.TrimSuffix(basePath, "/")
	}
}

func NewValidator(opts ...ValidatorOption) (*Validator, error) {
	v := &Validator{}

	for _, opt := range opts {
		opt(v)
	}

	if v.doc == nil {
		doc, err := Spec()
		if err != nil {
			return nil, err
		}

		v.doc = doc
	}

	router, err := gorillamux.NewRouter(v.doc)
	if err != nil {
		return nil, fmt.Errorf("building router: %w", err)
	}

	v.router = router

	return v, nil
}

// ValidateResponse matches the request to an operation and checks the
// response status, headers and body against it.
func (v *Validator) ValidateResponse(ctx context.Context, req *http.Request, status int, header http.Header, body []byte) error {
	if req == nil {
		return ErrNoRequest
	}

	// Route on the path alone, the service host is irrelevant.
	routed := req.Clone(ctx)
	routed.URL.Scheme = ""
	routed.URL.Host = ""
	routed.Host = ""
	routed.URL.Path = strings.TrimPrefix(routed.URL.Path, v.basePath)
	routed.URL.RawPath = ""

	route, pathParams, err := v.router.FindRoute(routed)
	if err != nil {
		return fmt.Errorf("finding route for %s %s: %w", req.Method, req.URL.Path, err)
	}

	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request:    routed,
			PathParams: pathParams,
			Route:      route,
		},
		Status: status,
		Header: header,
		Options: &openapi3filter.Options{
			IncludeResponseStatus: true,
			MultiError:            true,
		},
	}

	input.SetBodyBytes(body)

	if err := openapi3filter.ValidateResponse(ctx, input); err != nil {
		return fmt.Errorf("response to %s %s does not match schema: %w", req.Method, req.URL.Path, err)
	}

	return nil
}
