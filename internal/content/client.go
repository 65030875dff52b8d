// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package content is the read-only client for the headless content store.
// It issues parameterized GROQ queries over HTTP and decodes the JSON
// result envelope into the typed records in internal/models. There are no
// retries and no deduplication of concurrent identical queries — a failed
// upstream call surfaces to the caller as a wrapped error.
package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"steelgate/internal/metrics"
)

// defaultTimeout bounds every query round-trip so a slow content store
// cannot stall a page render indefinitely.
const defaultTimeout = 10 * time.Second

// Client queries one project/dataset of the content store.
type Client struct {
	apiURL     string
	projectID  string
	dataset    string
	apiVersion string
	client     *http.Client
}

// New creates a content store client. apiURL is the API origin
// (e.g. "https://<project>.api.sanity.io" or a proxy in front of it).
func New(apiURL, projectID, dataset, apiVersion string) *Client {
	return &Client{
		apiURL:     apiURL,
		projectID:  projectID,
		dataset:    dataset,
		apiVersion: apiVersion,
		client:     &http.Client{Timeout: defaultTimeout},
	}
}

// SetHTTPClient replaces the underlying HTTP client. Used by tests to point
// the client at an httptest server with custom transport settings.
func (c *Client) SetHTTPClient(hc *http.Client) {
	c.client = hc
}

// envelope is the store's query response wrapper.
type envelope struct {
	Result json.RawMessage `json:"result"`
}

// Fetch executes a GROQ query with optional parameter bindings and decodes
// the result into out. Parameters are JSON-encoded and sent as $name query
// string values, matching the store's HTTP query API.
func (c *Client) Fetch(ctx context.Context, query string, params map[string]string, out any) error {
	err := c.fetch(ctx, query, params, out)
	if err != nil {
		metrics.ObserveContentQuery("error")
	} else {
		metrics.ObserveContentQuery("ok")
	}
	return err
}

func (c *Client) fetch(ctx context.Context, query string, params map[string]string, out any) error {
	endpoint := fmt.Sprintf("%s/v%s/data/query/%s", c.apiURL, c.apiVersion, c.dataset)

	q := url.Values{}
	q.Set("query", query)
	for name, value := range params {
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("content encode param %s: %w", name, err)
		}
		q.Set("$"+name, string(encoded))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("content request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("content query: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("content read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("content store error (status %d): %s", resp.StatusCode, truncate(body, 200))
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("content unmarshal envelope: %w", err)
	}

	// A query that matched nothing returns "null"; leave out at its zero
	// value so callers see nil slices and nil pointers uniformly.
	if len(env.Result) == 0 || string(env.Result) == "null" {
		return nil
	}

	if err := json.Unmarshal(env.Result, out); err != nil {
		return fmt.Errorf("content unmarshal result: %w", err)
	}
	return nil
}

// truncate shortens an upstream error body for log-friendly messages.
func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
