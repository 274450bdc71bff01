// Package store is a thin client for the external generic resource store: a
// json-server style REST API exposing one endpoint set per collection. The
// store offers no transactions, no uniqueness and no range filters; anything
// smarter than field-equality filtering happens in the repositories above.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"slotbook/internal/infra"
	"slotbook/internal/pkg/config"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(cfg config.StoreConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

// List fetches a collection, optionally narrowed by field-equality filters.
func (c *Client) List(ctx context.Context, collection string, filter url.Values, out any) error {
	path := "/" + collection
	if len(filter) > 0 {
		path += "?" + filter.Encode()
	}
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Get(ctx context.Context, collection, id string, out any) error {
	return c.do(ctx, http.MethodGet, "/"+collection+"/"+url.PathEscape(id), nil, out)
}

// Create posts a new resource; the store assigns the id and echoes the body.
func (c *Client) Create(ctx context.Context, collection string, payload, out any) error {
	return c.do(ctx, http.MethodPost, "/"+collection, payload, out)
}

// Update sends a partial body; only the provided fields change.
func (c *Client) Update(ctx context.Context, collection, id string, payload, out any) error {
	return c.do(ctx, http.MethodPut, "/"+collection+"/"+url.PathEscape(id), payload, out)
}

func (c *Client) Delete(ctx context.Context, collection, id string) error {
	return c.do(ctx, http.MethodDelete, "/"+collection+"/"+url.PathEscape(id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return infra.WrapStoreErr(c.logger, infra.KindDecode, "failed to encode request body", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return infra.WrapStoreErr(c.logger, infra.KindTransport, "failed to build store request", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return infra.WrapStoreErr(c.logger, infra.KindTransport, "store request failed", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return infra.WrapStoreErr(c.logger, infra.KindNotFound, method+" "+path+" returned not found", nil)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return infra.WrapStoreErr(c.logger, infra.KindStoreFailure, method+" "+path+" returned status "+resp.Status, nil)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return infra.WrapStoreErr(c.logger, infra.KindDecode, "failed to decode store response", err)
	}
	return nil
}
