// Package apiclient is the single chokepoint for network I/O against the
// Hire Caliber API. It joins paths onto a fixed base path, applies default
// headers and request interceptors, and normalizes failures so callers never
// inspect net/http internals.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"
)

// BasePath prefixes every request path.
const BasePath = "/api"

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 10 << 20

// RequestInterceptor runs on every outgoing request before it is sent.
// Returning an error aborts the request.
type RequestInterceptor func(*http.Request) error

// Config configures a Client.
type Config struct {
	// ServerURL is the scheme and host of the backend, e.g. http://localhost:8000.
	ServerURL  string
	Timeout    time.Duration
	Headers    map[string]string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client issues JSON requests against the API.
type Client struct {
	baseURL      string
	http         *http.Client
	headers      http.Header
	interceptors []RequestInterceptor
	logger       *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithRequestInterceptor appends fn to the request interceptor chain.
func WithRequestInterceptor(fn RequestInterceptor) Option {
	return func(c *Client) {
		c.interceptors = append(c.interceptors, fn)
	}
}

// New creates a Client from cfg.
func New(cfg Config, opts ...Option) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.ServerURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid server URL %q", cfg.ServerURL)
	}
	base.Path = strings.TrimRight(base.Path, "/") + BasePath

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("Accept", "application/json")
	for k, v := range cfg.Headers {
		headers.Set(k, v)
	}

	c := &Client{
		baseURL:      base.String(),
		http:         httpClient,
		headers:      headers,
		interceptors: []RequestInterceptor{attachCredentials},
		logger:       logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// attachCredentials is where an Authorization header will be set once the
// backend issues tokens. It passes every request through unchanged.
func attachCredentials(*http.Request) error {
	return nil
}

// Get performs a GET request and returns the response payload.
func (c *Client) Get(ctx context.Context, path string) (json.RawMessage, error) {
	return c.doJSON(ctx, http.MethodGet, path, nil)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.doJSON(ctx, http.MethodPost, path, body)
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.doJSON(ctx, http.MethodPut, path, body)
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.doJSON(ctx, http.MethodPatch, path, body)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (json.RawMessage, error) {
	return c.doJSON(ctx, http.MethodDelete, path, nil)
}

// FilePart is one file in a multipart upload.
type FilePart struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// PostMultipart uploads part under field as multipart/form-data. The JSON
// accept header is kept; only the content type is overridden.
func (c *Client) PostMultipart(ctx context.Context, path, field string, part FilePart) (json.RawMessage, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, part.Filename))
	contentType := part.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h.Set("Content-Type", contentType)

	w, err := mw.CreatePart(h)
	if err != nil {
		return nil, c.transportError(http.MethodPost, path, err)
	}
	if _, err := io.Copy(w, part.Content); err != nil {
		return nil, c.transportError(http.MethodPost, path, fmt.Errorf("failed to read %s: %w", part.Filename, err))
	}
	if err := mw.Close(); err != nil {
		return nil, c.transportError(http.MethodPost, path, err)
	}

	return c.do(ctx, http.MethodPost, path, &buf, mw.FormDataContentType())
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, c.transportError(method, path, fmt.Errorf("failed to encode request body: %w", err))
		}
		reader = bytes.NewReader(data)
	}
	return c.do(ctx, method, path, reader, "")
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (json.RawMessage, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, method, c.resolve(path), body)
	if err != nil {
		return nil, c.transportError(method, path, err)
	}
	for k, v := range c.headers {
		req.Header[k] = append([]string(nil), v...)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	for _, intercept := range c.interceptors {
		if err := intercept(req); err != nil {
			return nil, c.transportError(method, path, err)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("api request failed", "method", method, "path", path, "error", err, "duration", time.Since(start))
		return nil, c.transportError(method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, c.transportError(method, path, fmt.Errorf("failed to read response body: %w", err))
	}

	c.logger.Debug("api request", "method", method, "path", path, "status", resp.StatusCode, "duration", time.Since(start))

	if err := normalizeResponse(method, path, resp, data); err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	return json.RawMessage(data), nil
}

// normalizeResponse turns a non-2xx response into an error. A 401 is
// returned raw.
func normalizeResponse(method, path string, resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return &UnauthorizedError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Header:     resp.Header.Clone(),
			Body:       body,
		}
	}
	msg := detailMessage(body)
	if msg == "" {
		msg = DefaultErrorMessage
	}
	return &Error{
		Method:     method,
		Path:       path,
		StatusCode: resp.StatusCode,
		Message:    msg,
		Body:       body,
	}
}

func (c *Client) transportError(method, path string, cause error) error {
	return &Error{
		Method:  method,
		Path:    path,
		Message: DefaultErrorMessage,
		Cause:   cause,
	}
}

// resolve joins an already-escaped path onto the base URL.
func (c *Client) resolve(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}
