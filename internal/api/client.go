package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 60 * time.Second

// Client talks to the studydesk backend. Credentials travel as session
// cookies held in the client's jar.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	jar     *cookiejar.Jar
	cache   *Cache
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the transport client. Its Jar is overwritten.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(client *Client) {
		copied := *httpClient
		client.http = &copied
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(client *Client) {
		if logger != nil {
			client.logger = logger
		}
	}
}

// New creates a Client for baseURL, e.g. "https://example.com/api".
func New(baseURL string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("parse api url: unsupported scheme %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("parse api url: missing host in %q", baseURL)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	client := &Client{
		baseURL: parsed,
		http:    &http.Client{Timeout: defaultTimeout},
		cache:   NewCache(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(client)
	}
	client.jar = jar
	client.http.Jar = jar
	return client, nil
}

// BaseURL returns the backend root.
func (client *Client) BaseURL() string {
	return client.baseURL.String()
}

// Cookies returns the session cookies held for the backend.
func (client *Client) Cookies() []*http.Cookie {
	return client.jar.Cookies(client.baseURL)
}

// SetCookies restores previously saved session cookies.
func (client *Client) SetCookies(cookies []*http.Cookie) {
	if len(cookies) == 0 {
		return
	}
	client.jar.SetCookies(client.baseURL, cookies)
}

// ResetSession drops cookies and cached responses.
func (client *Client) ResetSession() {
	jar, err := cookiejar.New(nil)
	if err == nil {
		client.jar = jar
		client.http.Jar = jar
	}
	client.cache.Clear()
}

// Invalidate drops cached reads under tags so the next call refetches.
// Changes made by other clients only show up after this.
func (client *Client) Invalidate(tags ...Tag) {
	for _, tag := range tags {
		client.cache.Invalidate(tag)
	}
}

// envelope is the backend's response wrapper.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

type request struct {
	method      string
	path        string
	body        io.Reader
	contentType string
	// provides marks a cacheable read; invalidates lists tags a mutation drops.
	provides    Tag
	invalidates []Tag
}

func (client *Client) getJSON(ctx context.Context, tag Tag, path string, out any) error {
	return client.do(ctx, request{method: http.MethodGet, path: path, provides: tag}, out)
}

func (client *Client) sendJSON(ctx context.Context, method, path string, in, out any, invalidates ...Tag) error {
	req := request{method: method, path: path, invalidates: invalidates}
	if in != nil {
		body, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		req.body = bytes.NewReader(body)
		req.contentType = "application/json"
	}
	return client.do(ctx, req, out)
}

func (client *Client) do(ctx context.Context, req request, out any) error {
	cacheKey := req.method + " " + req.path
	if req.provides != "" {
		if cached, ok := client.cache.Get(cacheKey); ok {
			return decodeData(cached, out)
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, client.endpoint(req.path), req.body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.contentType != "" {
		httpReq.Header.Set("Content-Type", req.contentType)
	}

	start := time.Now()
	resp, err := client.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.method, req.path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	client.logger.Debug("api request",
		"method", req.method,
		"path", req.path,
		"status", resp.StatusCode,
		"latency", time.Since(start).Round(time.Millisecond),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: errorMessage(raw)}
	}

	for _, tag := range req.invalidates {
		client.cache.Invalidate(tag)
	}

	data, err := unwrap(raw)
	if err != nil {
		return err
	}
	if req.provides != "" {
		client.cache.Put(cacheKey, req.provides, data)
	}
	return decodeData(data, out)
}

func (client *Client) endpoint(path string) string {
	return client.baseURL.String() + path
}

// unwrap returns the "data" member of an envelope, or the whole body when
// the backend answered with a bare value.
func unwrap(raw []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if trimmed[0] != '{' {
		return json.RawMessage(trimmed), nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if data, ok := fields["data"]; ok && !bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return data, nil
	}
	return json.RawMessage(trimmed), nil
}

func decodeData(data json.RawMessage, out any) error {
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func errorMessage(raw []byte) string {
	var body envelope
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		return body.Message
	}
	text := strings.TrimSpace(string(raw))
	if len(text) > 200 {
		text = text[:200]
	}
	return text
}

var errEmptyID = errors.New("id is required")
