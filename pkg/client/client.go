/*
Copyright 2024-2025 the Unikorn Authors.
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
	"context"
	"fmt"
	"net/http"
	"reflect"

	"github.com/go-logr/logr"
	"github.com/go-resty/resty/v2"
	"github.com/oapi-codegen/runtime"
)

// Client holds a request specification built once from a Configuration and
// reused for every call. Domain clients embed one rather than extending it.
type Client struct {
	configuration Configuration
	rest          *resty.Client
	options       options
}

type options struct {
	httpClient      *http.Client
	logger          logr.Logger
	requestLogging  bool
	responseLogging bool
}

// Option customises a Client.
type Option func(*options)

// WithHTTPClient runs requests through the given client, e.g. one created by
// httptest.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithLogger sets the logger used when the request context carries none.
func WithLogger(logger logr.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRequestLogging logs method, URL, status, duration and trace context of
// every call.
func WithRequestLogging(enabled bool) Option {
	return func(o *options) {
		o.requestLogging = enabled
	}
}

// WithResponseLogging additionally logs response bodies.
func WithResponseLogging(enabled bool) Option {
	return func(o *options) {
		o.responseLogging = enabled
	}
}

// New resolves the request specification for the lifetime of the client.
func New(configuration Configuration, opts ...Option) *Client {
	o := options{
		logger: logr.Discard(),
	}

	for _, opt := range opts {
		opt(&o)
	}

	rest := resty.New()
	if o.httpClient != nil {
		rest = resty.NewWithClient(o.httpClient)
	}

	rest.SetBaseURL(configuration.ServicePath())
	rest.SetHeaders(configuration.Headers())
	rest.SetLogger(&restyLogger{log: o.logger})

	if contentType := configuration.ContentType(); contentType != "" {
		rest.SetHeader("Content-Type", contentType)
	}

	c := &Client{
		configuration: configuration,
		rest:          rest,
		options:       o,
	}

	rest.OnBeforeRequest(c.injectTraceContext)
	rest.OnAfterResponse(c.logResponse)
	rest.OnError(c.logError)

	return c
}

// Configuration returns the configuration the client was built from.
func (c *Client) Configuration() Configuration {
	return c.configuration
}

func (c *Client) logger(ctx context.Context) logr.Logger {
	if log, err := logr.FromContext(ctx); err == nil {
		return log
	}

	return c.options.logger
}

func (c *Client) injectTraceContext(_ *resty.Client, req *resty.Request) error {
	req.SetHeader(traceParentHeader, newTraceParent())
	req.SetHeader(traceStateHeader, traceState)

	return nil
}

func (c *Client) logResponse(_ *resty.Client, resp *resty.Response) error {
	req := resp.Request
	log := c.logger(req.Context())
	traceParent := req.Header.Get(traceParentHeader)

	if c.options.requestLogging {
		log.Info("request complete", "method", req.Method, "url", req.URL, "status", resp.StatusCode(), "duration", resp.Time(), "traceparent", traceParent)
	}

	if c.options.responseLogging && len(resp.Body()) > 0 {
		log.Info("response body", "method", req.Method, "url", req.URL, "body", string(resp.Body()))
	}

	return nil
}

func (c *Client) logError(req *resty.Request, err error) {
	traceParent := req.Header.Get(traceParentHeader)

	c.logger(req.Context()).Error(err, "http request failed", "method", req.Method, "url", req.URL, "traceparent", traceParent, "traceID", traceID(traceParent))
}

// RequestOptions binds parameters and a payload to a single call. Path
// parameters fill {name} placeholders in the path. Nil values are skipped.
type RequestOptions struct {
	PathParams  map[string]any
	QueryParams map[string]any
	Headers     map[string]any
	Body        any
}

func isNil(value any) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)

	//nolint:exhaustive
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return v.IsNil()
	}

	return false
}

// styleParams renders parameter values the way an OpenAPI generated client
// would for the given location.
func styleParams(params map[string]any, location runtime.ParamLocation) (map[string]string, error) {
	out := make(map[string]string, len(params))

	for name, value := range params {
		if isNil(value) {
			continue
		}

		styled, err := runtime.StyleParamWithLocation("simple", false, name, location, value)
		if err != nil {
			return nil, fmt.Errorf("styling parameter %s: %w", name, err)
		}

		out[name] = styled
	}

	return out, nil
}

func (c *Client) execute(ctx context.Context, method, path string, opts RequestOptions) (*resty.Response, error) {
	pathParams, err := styleParams(opts.PathParams, runtime.ParamLocationPath)
	if err != nil {
		return nil, err
	}

	// resty escapes query values itself.
	queryParams, err := styleParams(opts.QueryParams, runtime.ParamLocationUndefined)
	if err != nil {
		return nil, err
	}

	headers, err := styleParams(opts.Headers, runtime.ParamLocationHeader)
	if err != nil {
		return nil, err
	}

	req := c.rest.R().
		SetContext(ctx).
		SetRawPathParams(pathParams).
		SetQueryParams(queryParams).
		SetHeaders(headers)

	if opts.Body != nil {
		req.SetBody(opts.Body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("%s %s: http request failed: %w", method, path, err)
	}

	return resp, nil
}

// Do performs a call and wraps the response for decoding into F.
func Do[F any](ctx context.Context, c *Client, method, path string, opts RequestOptions) (*Response[F], error) {
	raw, err := c.execute(ctx, method, path, opts)
	if err != nil {
		return nil, err
	}

	return NewResponse[F](raw), nil
}

func Get[F any](ctx context.Context, c *Client, path string) (*Response[F], error) {
	return Do[F](ctx, c, http.MethodGet, path, RequestOptions{})
}

func GetWithParams[F any](ctx context.Context, c *Client, path string, pathParams, queryParams map[string]any) (*Response[F], error) {
	return Do[F](ctx, c, http.MethodGet, path, RequestOptions{
		PathParams:  pathParams,
		QueryParams: queryParams,
	})
}

func Post[F any](ctx context.Context, c *Client, path string, payload any) (*Response[F], error) {
	return Do[F](ctx, c, http.MethodPost, path, RequestOptions{
		Body: payload,
	})
}

func Patch[F any](ctx context.Context, c *Client, path string, pathParams map[string]any, payload any) (*Response[F], error) {
	return Do[F](ctx, c, http.MethodPatch, path, RequestOptions{
		PathParams: pathParams,
		Body:       payload,
	})
}

// Delete returns the raw response, deletions are usually answered without a
// body so there is nothing to decode.
func (c *Client) Delete(ctx context.Context, path string, pathParams map[string]any, payload any) (*resty.Response, error) {
	return c.execute(ctx, http.MethodDelete, path, RequestOptions{
		PathParams: pathParams,
		Body:       payload,
	})
}

// restyLogger forwards resty's own diagnostics to logr.
type restyLogger struct {
	log logr.Logger
}

func (l *restyLogger) Errorf(format string, v ...any) {
	l.log.Error(fmt.Errorf(format, v...), "resty")
}

func (l *restyLogger) Warnf(format string, v ...any) {
	l.log.Info(fmt.Sprintf(format, v...), "source", "resty")
}

func (l *restyLogger) Debugf(format string, v ...any) {
	l.log.V(1).Info(fmt.Sprintf(format, v...), "source", "resty")
}
