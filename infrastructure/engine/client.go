// Package engine is the HTTP client for the external retrieval/answer
// service. The gateway treats it as an opaque collaborator: requests are
// forwarded with the trusted identity attached and JSON responses are
// relayed byte-for-byte.
package engine

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"memory-gateway/pkg/errors"

	"go.uber.org/zap"
)

// Response carries the upstream status and raw JSON body to relay
type Response struct {
	Status int
	Body   []byte
}

// Client issues requests against the engine's base URL
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	logger  *zap.Logger
}

// NewClient creates a new engine client. Every forwarded call runs under a
// bounded deadline; a hung upstream yields a timeout error, never an
// indefinitely hanging request.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		timeout: timeout,
		logger:  logger,
	}
}

// InjectUserID rewrites a JSON request body so that user_id is always the
// gateway-resolved identity. A client-supplied user_id never wins. An empty
// body becomes {"user_id": ...}.
func InjectUserID(body []byte, userID string) ([]byte, error) {
	payload := map[string]interface{}{}
	if len(bytes.TrimSpace(body)) > 0 {
		dec := json.NewDecoder(bytes.NewReader(body))
		dec.UseNumber()
		if err := dec.Decode(&payload); err != nil {
			return nil, errors.NewValidationError("Invalid JSON body").WithCause(err)
		}
	}
	payload["user_id"] = userID
	out, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.NewInternalError("failed to encode upstream body").WithCause(err)
	}
	return out, nil
}

// Forward rebuilds an inbound request against the engine and returns the
// upstream response. Non-2xx statuses and transport failures come back as
// tagged errors; the caller decides the client-facing shape.
func (c *Client) Forward(ctx context.Context, method, path string, body []byte, query url.Values) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

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
		return nil, errors.NewInternalError("failed to build upstream request").WithCause(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if stderrors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			c.logger.Warn("engine call timed out",
				zap.String("method", method),
				zap.String("path", path),
				zap.Duration("timeout", c.timeout),
			)
			return nil, errors.NewTimeoutError("engine", err)
		}
		c.logger.Error("engine unreachable",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, errors.NewUpstreamError("engine", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewUpstreamError("engine", err)
	}

	c.logger.Debug("engine call completed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.NewUpstreamError("engine",
			fmt.Errorf("status %d: %s", resp.StatusCode, truncate(respBody, 512)))
	}

	return &Response{Status: resp.StatusCode, Body: respBody}, nil
}

func isTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	return stderrors.As(err, &netErr) && netErr.Timeout()
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
