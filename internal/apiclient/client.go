// Package apiclient fetches entity collections from the OctoFit REST API.
package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/octofit/pkg/types"
)

// Client issues collection GETs against one API host.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger routes fetch traces to l.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// New builds a Client for baseURL. A zero timeout means requests are never
// cut short by the client.
func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the collection URL for path, e.g. {base}/api/activities/.
func (c *Client) Endpoint(path string) string {
	return fmt.Sprintf("%s/api/%s/", c.baseURL, strings.Trim(path, "/"))
}

// FetchCollection issues one GET for the collection at path and returns the
// normalized entities. Failures wrap ErrTransport, ErrDecode or are a
// *types.StatusError.
func (c *Client) FetchCollection(ctx context.Context, path string) ([]types.Entity, error) {
	endpoint := c.Endpoint(path)
	c.logger.Printf("fetching %s from %s", path, endpoint)

	start := time.Now()
	entities, err := c.fetch(ctx, endpoint)
	observeFetch(path, err, time.Since(start))
	if err != nil {
		c.logger.Printf("error fetching %s: %v", path, err)
		return nil, err
	}

	c.logger.Printf("%s response: %d record(s)", path, len(entities))
	return entities, nil
}

func (c *Client) fetch(ctx context.Context, endpoint string) ([]types.Entity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &types.StatusError{Code: resp.StatusCode}
	}

	return Decode(resp.Body)
}

// Decode parses a collection body and normalizes it. The body must hold
// exactly one JSON value.
func Decode(r io.Reader) ([]types.Entity, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var body any
	if err := dec.Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrDecode, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after JSON body", types.ErrDecode)
	}
	return Normalize(body), nil
}

// Normalize resolves the collection inside a decoded body. An object with a
// truthy "results" field yields that field; anything else is taken as the
// collection itself. A resolved value that is not an array yields an empty
// collection. Array elements that are not objects become empty entities.
func Normalize(body any) []types.Entity {
	resolved := body
	if obj, ok := body.(map[string]any); ok {
		if results, ok := obj["results"]; ok && types.Truthy(results) {
			resolved = results
		}
	}

	items, ok := resolved.([]any)
	if !ok {
		return []types.Entity{}
	}

	out := make([]types.Entity, 0, len(items))
	for _, item := range items {
		obj, _ := item.(map[string]any)
		if obj == nil {
			obj = map[string]any{}
		}
		out = append(out, types.Entity(obj))
	}
	return out
}
