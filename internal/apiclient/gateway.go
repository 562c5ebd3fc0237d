package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Config is passed explicitly to every client; nothing is read from process
// globals.
type Config struct {
	BaseURL    string
	Token      string
	Headers    map[string]string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Gateway performs exactly one HTTP round trip per call. It does not retry,
// cache, deduplicate or log.
type Gateway struct {
	baseURL string
	headers http.Header
	client  *http.Client
}

func NewGateway(cfg Config) *Gateway {
	client := cfg.HTTPClient
	if client == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}

	headers := make(http.Header)
	for k, v := range cfg.Headers {
		headers.Set(k, v)
	}
	if cfg.Token != "" {
		headers.Set("Authorization", "Bearer "+cfg.Token)
	}

	return &Gateway{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		headers: headers,
		client:  client,
	}
}

type requestOptions struct {
	method  string
	headers http.Header
	body    any
	hasBody bool
}

type RequestOption func(*requestOptions)

func WithMethod(method string) RequestOption {
	return func(o *requestOptions) {
		o.method = method
	}
}

func WithHeader(key, value string) RequestOption {
	return func(o *requestOptions) {
		o.headers.Set(key, value)
	}
}

// WithBody serializes v as the JSON request body.
func WithBody(v any) RequestOption {
	return func(o *requestOptions) {
		o.body = v
		o.hasBody = true
	}
}

// Do issues the request and decodes a 2xx JSON body into T. Any other outcome
// is returned as *Error.
func Do[T any](ctx context.Context, g *Gateway, endpoint string, opts ...RequestOption) (T, error) {
	var out T

	o := &requestOptions{method: http.MethodGet, headers: make(http.Header)}
	for _, opt := range opts {
		opt(o)
	}

	var body io.Reader
	if o.hasBody {
		payload, err := json.Marshal(o.body)
		if err != nil {
			return out, &Error{Message: fmt.Sprintf("failed to encode request body: %v", err), Err: err}
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, o.method, g.baseURL+endpoint, body)
	if err != nil {
		return out, &Error{Message: fmt.Sprintf("failed to create request: %v", err), Err: err}
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range g.headers {
		req.Header[k] = v
	}
	for k, v := range o.headers {
		req.Header[k] = v
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return out, &Error{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return out, &Error{Status: resp.StatusCode, Message: fmt.Sprintf("failed to read response: %v", err), Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return out, &Error{Status: resp.StatusCode, Message: failureMessage(resp.StatusCode, raw)}
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return out, nil
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		return out, &Error{Status: resp.StatusCode, Message: fmt.Sprintf("failed to decode response: %v", err), Err: err}
	}

	return out, nil
}

// failureMessage extracts {"error": "..."} from a failed response. A body that
// is not JSON yields the generic message; JSON without a usable error field
// yields the status line.
func failureMessage(status int, raw []byte) string {
	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fallbackMessage
	}

	if obj, ok := payload.(map[string]any); ok {
		if msg, ok := obj["error"].(string); ok && msg != "" {
			return msg
		}
	}

	return statusMessage(status)
}
