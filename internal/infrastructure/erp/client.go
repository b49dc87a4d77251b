package erp

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/catalogozord/backend/internal/domain/integration"
)

const maxResponseSize = 10 << 20 // 10 MB

// Client is the Magazord-style ERP gateway. It performs no retries; 429 and
// other non-2xx replies surface as typed upstream errors for callers to
// handle.
type Client struct {
	config     Config
	httpClient *http.Client
	authHeader string
	logger     *zap.Logger
}

// Compile-time interface check
var _ integration.ERPGateway = (*Client)(nil)

// NewClient creates an ERP gateway client from the configuration.
func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.normalize()
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	credential := base64.StdEncoding.EncodeToString([]byte(cfg.Token + ":" + cfg.Secret))

	return &Client{
		config:     cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		authHeader: "Basic " + credential,
		logger:     logger,
	}, nil
}

// doRequest issues one authenticated request and decodes a 2xx JSON reply
// into out. Non-2xx replies become an UpstreamError carrying the status and
// a truncated body.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.config.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("erp: marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("erp: build request: %w", err)
	}
	req.Header.Set("Authorization", c.authHeader)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erp: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("erp: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("erp request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return integration.NewUpstreamError(resp.StatusCode, raw)
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("erp: decode response: %w", err)
		}
	}
	return nil
}
