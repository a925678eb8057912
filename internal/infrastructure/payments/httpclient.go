package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"pixgate/internal/domain/entities"
	"pixgate/internal/infrastructure/observability"

	"go.uber.org/zap"
)

const (
	DefaultTimeout  = 30 * time.Second
	maxResponseSize = 1 << 20
)

// Options carries the pieces every provider client shares.
type Options struct {
	Timeout    time.Duration
	QRChartURL string
	HTTPClient *http.Client
	Metrics    *observability.Metrics
	Logger     *zap.Logger
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (o Options) httpClient() *http.Client {
	if o.HTTPClient != nil {
		return o.HTTPClient
	}
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// restClient sends JSON to one provider and maps every failure to
// *entities.GatewayError.
type restClient struct {
	provider  string
	baseURL   string
	client    *http.Client
	authorize func(*http.Request)
	metrics   *observability.Metrics
	logger    *zap.Logger
}

func (c *restClient) do(ctx context.Context, operation, method, path string, payload any) (map[string]any, error) {
	start := time.Now()
	doc, err := c.send(ctx, operation, method, path, payload)
	outcome := "success"
	switch {
	case entities.IsTimeout(err):
		outcome = "timeout"
	case err != nil:
		outcome = "error"
	}
	c.metrics.ObserveProviderCall(c.provider, operation, outcome, time.Since(start))
	return doc, err
}

func (c *restClient) send(ctx context.Context, operation, method, path string, payload any) (map[string]any, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, c.gatewayError(operation, 0, "", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, c.gatewayError(operation, 0, "", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		gwErr := c.gatewayError(operation, 0, "", err)
		gwErr.Timeout = isTimeout(err)
		c.logger.Warn("[payment][gateway] request failed",
			zap.String("provider", c.provider),
			zap.String("operation", operation),
			zap.Bool("timeout", gwErr.Timeout),
			zap.Error(err))
		return nil, gwErr
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		gwErr := c.gatewayError(operation, resp.StatusCode, "", err)
		gwErr.Timeout = isTimeout(err)
		return nil, gwErr
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("[payment][gateway] upstream rejected request",
			zap.String("provider", c.provider),
			zap.String("operation", operation),
			zap.Int("status", resp.StatusCode),
			zap.String("body", entities.SanitizeUpstreamMessage(string(raw))))
		return nil, c.gatewayError(operation, resp.StatusCode, string(raw), nil)
	}

	doc := map[string]any{}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, c.gatewayError(operation, resp.StatusCode, string(raw), fmt.Errorf("decode response: %w", err))
	}
	return doc, nil
}

func (c *restClient) gatewayError(operation string, status int, body string, err error) *entities.GatewayError {
	return &entities.GatewayError{
		Provider:   c.provider,
		Operation:  operation,
		StatusCode: status,
		Body:       body,
		Err:        err,
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func basicAuth(username, password string) func(*http.Request) {
	return func(r *http.Request) {
		r.SetBasicAuth(username, password)
	}
}
