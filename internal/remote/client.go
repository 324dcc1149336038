// Package remote talks to the generation backend: a single unauthenticated
// GET per prompt, answered with a small JSON document.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/apex/log"

	"github.com/mithrel/gyani/pkg/api"
)

const (
	// DefaultBaseURL is the hosted backend.
	DefaultBaseURL = "https://gyani-ai-backend.onrender.com"

	// MaxResponseSize caps how much of a response body is read.
	MaxResponseSize = 10 * 1024 * 1024
)

// Client performs generation requests against BaseURL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        log.Interface
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client. The timeout passed to
// New is applied on top of it.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l log.Interface) Option {
	return func(c *Client) { c.log = l }
}

// New returns a client for baseURL. A zero timeout means requests are bounded
// only by their context.
func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		log:        log.Log,
	}
	for _, o := range opts {
		o(c)
	}
	if timeout > 0 {
		hc := *c.httpClient
		hc.Timeout = timeout
		c.httpClient = &hc
	}
	return c
}

// BaseURL returns the endpoint root without a trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// URL builds the request URL for req. The prompt parameter comes first.
func (c *Client) URL(req api.GenerationRequest) string {
	return c.baseURL + "/ai?prompt=" + EncodeComponent(req.Prompt) + "&model=" + EncodeComponent(req.Model)
}

type generateResponse struct {
	Response *string `json:"response"`
	Error    any     `json:"error"`
}

// Generate sends req and returns the generated text. Errors are always one
// of *TransportError, *HTTPError or *APIError.
func (c *Client) Generate(ctx context.Context, req api.GenerationRequest) (string, error) {
	ll := c.log.WithFields(log.Fields{
		"model":  req.Model,
		"prompt": req.Fingerprint(),
	})
	start := time.Now()

	body, code, err := c.execRequest(ctx, c.URL(req))
	if err != nil {
		ll.WithError(err).Warn("generate: request failed")
		return "", err
	}
	ll = ll.WithFields(log.Fields{"status": code, "took": time.Since(start).Round(time.Millisecond)})
	if code < 200 || code > 299 {
		ll.Warn("generate: non-2xx status")
		return "", &HTTPError{Status: code}
	}

	var out generateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		ll.WithError(err).Warn("generate: decode failed")
		return "", &TransportError{Op: "decode response", Err: err}
	}
	if msg, ok := errorMessage(out.Error); ok {
		ll.WithField("error", msg).Warn("generate: backend reported error")
		return "", &APIError{Message: msg}
	}
	if out.Response == nil {
		ll.Warn("generate: response field missing")
		return "", &TransportError{Op: "decode response", Err: errors.New(`missing "response" field`)}
	}
	ll.WithField("bytes", len(*out.Response)).Debug("generate: ok")
	return *out.Response, nil
}

func (c *Client) execRequest(ctx context.Context, url string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, &TransportError{Op: "build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	// the status decides the outcome of a non-2xx response; its body is never read
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp.StatusCode, nil
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize+1))
	if err != nil {
		return nil, resp.StatusCode, &TransportError{Op: "read response", Err: err}
	}
	if len(b) > MaxResponseSize {
		return nil, resp.StatusCode, &TransportError{
			Op:  "read response",
			Err: fmt.Errorf("body exceeds %d bytes", MaxResponseSize),
		}
	}
	return b, resp.StatusCode, nil
}

// errorMessage reports whether the decoded "error" value is set in the
// truthy sense: a non-empty string, true, a non-zero number or any object.
func errorMessage(v any) (string, bool) {
	switch e := v.(type) {
	case nil:
		return "", false
	case string:
		return e, e != ""
	case bool:
		return "true", e
	case float64:
		return fmt.Sprint(e), e != 0
	default:
		b, _ := json.Marshal(e)
		return string(b), true
	}
}
