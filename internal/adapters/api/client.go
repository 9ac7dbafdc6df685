package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/umesh576/servicehub-cli/internal/ports"
)

const maxResponseBytes = 1 << 20

// Client talks to the ServiceHub backend. It implements every gateway port;
// one instance is shared by all commands.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

var (
	_ ports.AuthGateway    = (*Client)(nil)
	_ ports.CatalogGateway = (*Client)(nil)
	_ ports.BookingGateway = (*Client)(nil)
	_ ports.ProfileGateway = (*Client)(nil)
)

func NewClient(baseURL string, httpClient *http.Client, log zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		log:     log,
	}
}

// do performs one request and reads the body exactly once. The returned
// error covers transport failures only; callers interpret the status.
func (c *Client) do(ctx context.Context, method, path, token string, payload []byte) (int, []byte, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	request.Header.Set("User-Agent", "servicehub-cli")

	c.log.Debug().Str("method", method).Str("path", path).Msg("backend request")

	response, err := c.http.Do(request)
	if err != nil {
		return 0, nil, fmt.Errorf("perform request: %w", err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return 0, nil, fmt.Errorf("read response: %w", err)
	}

	c.log.Debug().Str("path", path).Int("status", response.StatusCode).Msg("backend response")

	return response.StatusCode, raw, nil
}

func accepted(status int) bool {
	return status >= 200 && status < 300
}
