package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/pilotapp/crm-console/internal/config"
	"github.com/pilotapp/crm-console/pkg/apperror"
	"github.com/pilotapp/crm-console/pkg/logger"
	"github.com/pilotapp/crm-console/pkg/metrics"
)

// Client is the shared HTTP client for all entity gateways. The upstream is a
// json-server style CRUD backend: request and response bodies are raw JSON
// entities with no envelope.
type Client struct {
	baseURL string
	http    *http.Client
	log     logger.Logger
	metrics *metrics.Metrics
}

// NewClient creates a gateway client for the configured upstream base URL
func NewClient(cfg *config.UpstreamConfig, log logger.Logger, m *metrics.Metrics) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		log:     log,
		metrics: m,
	}
}

// do performs one upstream call. body is marshalled as the request body when
// non-nil; the response is decoded into out when non-nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		// drain so keep-alive connections can be reused
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("upstream responded %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response body: %w", err)
		}
	}
	return nil
}

// fail records a gateway failure and converts it to an AppError. op is a
// short verb such as "fetch" or "save".
func (c *Client) fail(collection, op string, err error) error {
	c.log.Error("upstream call failed", "collection", collection, "operation", op, "error", err)
	c.metrics.GatewayErrors.WithLabelValues(collection, op).Inc()
	return apperror.NewGatewayError(op+" "+collection, err)
}
