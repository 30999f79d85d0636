package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/config"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const maxBodySize = 1 << 20

// Client talks to the storefront backend. It never retries; callers decide.
type Client struct {
	logger   *slog.Logger
	baseURL  string
	http     *http.Client
	validate *validator.Validate
}

func New(logger *slog.Logger, cfg config.Client) *Client {
	httpClient := &http.Client{
		Timeout:   cfg.Timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	return NewWithHTTPClient(logger, cfg.BaseURL, httpClient)
}

func NewWithHTTPClient(logger *slog.Logger, baseURL string, httpClient *http.Client) *Client {
	return &Client{
		logger:   logger.With(slog.String("component", "api_client")),
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     httpClient,
		validate: validator.New(),
	}
}

// errorMapper turns a non-2xx response into a typed error.
type errorMapper func(status int, body errorResponse) error

func networkError(status int, body errorResponse) error {
	return &entities.NetworkError{Status: status, Code: body.Code, Message: body.Message}
}

func (c *Client) do(ctx context.Context, method, path string, header http.Header, in, out any, mapErr errorMapper) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, values := range header {
		req.Header[key] = values
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return &entities.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return &entities.NetworkError{Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody errorResponse
		if err := json.Unmarshal(data, &errBody); err != nil {
			c.logger.DebugContext(ctx, "non-json error body", slog.Int("status", resp.StatusCode), slog.String("path", path))
		}
		if mapErr == nil {
			mapErr = networkError
		}
		return mapErr(resp.StatusCode, errBody)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &entities.MalformedResponseError{Err: err}
	}
	if err := c.validate.Struct(out); err != nil {
		return &entities.MalformedResponseError{Err: err}
	}
	return nil
}
