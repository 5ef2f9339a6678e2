// Package client is a typed wrapper around the todo REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

var ErrNotFound = errors.New("todo not found")

// Todo mirrors the wire representation of a record. Timestamps stay plain
// strings; the client only displays them.
type Todo struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
	Completed   bool   `json:"completed"`
}

type CreateRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
}

type PatchRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

type Client struct {
	logger  zerolog.Logger
	baseURL string
	http    *http.Client
}

func New(logger zerolog.Logger, baseURL string, timeout time.Duration) *Client {
	return &Client{
		logger:  logger,
		baseURL: baseURL,
		http: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) List(ctx context.Context) ([]Todo, error) {
	var todos []Todo
	err := c.do(ctx, http.MethodGet, "/api/todos", nil, &todos)
	if err != nil {
		return nil, err
	}
	return todos, nil
}

func (c *Client) Get(ctx context.Context, id string) (Todo, error) {
	var todo Todo
	err := c.do(ctx, http.MethodGet, "/api/todos/"+id, nil, &todo)
	return todo, err
}

func (c *Client) Create(ctx context.Context, req CreateRequest) (Todo, error) {
	var todo Todo
	err := c.do(ctx, http.MethodPost, "/api/todos", req, &todo)
	return todo, err
}

func (c *Client) Patch(ctx context.Context, id string, req PatchRequest) (Todo, error) {
	var todo Todo
	err := c.do(ctx, http.MethodPatch, "/api/todos/"+id, req, &todo)
	return todo, err
}

func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/todos/"+id, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Buffer
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(encoded)
	} else {
		reqBody = new(bytes.Buffer)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error().
			Err(err).
			Str("method", method).
			Str("path", path).
			Msg("request failed")
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		c.logger.Error().
			Int("status", resp.StatusCode).
			Str("method", method).
			Str("path", path).
			Msg("unexpected status")
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
