package twitch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

// dataList is the standard Helix response wrapper.
type dataList[T any] struct {
	Data       []T `json:"data"`
	Pagination *struct {
		Cursor string `json:"cursor,omitempty"`
	} `json:"pagination"`
}

// getAll fetches every page of a list endpoint, following the pagination
// cursor until the service stops returning one.
func getAll[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var collected []T
	cursor := ""

	for {
		query := url.Values{}
		if cursor != "" {
			query.Set("after", cursor)
		}

		resp, err := c.send(ctx, http.MethodGet, path, query, nil)
		if err != nil {
			return nil, err
		}

		var page dataList[T]
		err = json.NewDecoder(resp.Body).Decode(&page)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("parsing response: %w", err)
		}

		collected = append(collected, page.Data...)

		if page.Pagination == nil {
			return nil, ErrNoPagination
		}
		if page.Pagination.Cursor == "" {
			return collected, nil
		}
		cursor = page.Pagination.Cursor
	}
}

// post sends one object and returns the single record the service created.
func post[T any](ctx context.Context, c *Client, path string, body any) (*T, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	resp, err := c.send(ctx, http.MethodPost, path, nil, payload)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result dataList[T]
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}
	if len(result.Data) == 0 {
		return nil, fmt.Errorf("data missing in response")
	}
	return &result.Data[0], nil
}

// delete removes the object with the given id.
func (c *Client) delete(ctx context.Context, path, id string) error {
	query := url.Values{}
	query.Set("id", id)

	resp, err := c.send(ctx, http.MethodDelete, path, query, nil)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// send performs one request with the auth headers every Helix call needs and
// maps error statuses to the client error taxonomy.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, body []byte) (*http.Response, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Client-Id", c.clientID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reaching twitch: %w", err)
	}

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		c.logger.Error("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", detail))

		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return nil, ErrUnauthorized
		case http.StatusForbidden:
			return nil, ErrForbidden
		default:
			return nil, fmt.Errorf("%s %s: status code %d", method, path, resp.StatusCode)
		}
	}
	return resp, nil
}
