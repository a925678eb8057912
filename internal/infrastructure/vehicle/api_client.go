package vehicle

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pixgate/internal/config"
	"pixgate/internal/domain/entities"
	"pixgate/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	providerName   = "vehicle_api"
	DefaultTimeout = 10 * time.Second
)

var (
	brandKeys = []string{"marca", "MARCA", "brand"}
	modelKeys = []string{"modelo", "MODELO", "model"}
	yearKeys  = []string{"anoModelo", "ano", "year"}
	colorKeys = []string{"cor", "color"}
)

// APIClient queries the external plate lookup service.
type APIClient struct {
	baseURL string
	token   string
	client  *http.Client
	logger  *zap.Logger
}

var _ interfaces.IVehicleAPI = (*APIClient)(nil)

func NewAPIClient(cfg config.VehicleConfig, logger *zap.Logger) (*APIClient, error) {
	if cfg.Token == "" {
		return nil, entities.NewConfigurationError(providerName, "VEHICLE_API_TOKEN")
	}
	if cfg.APIURL == "" {
		return nil, entities.NewConfigurationError(providerName, "VEHICLE_API_URL")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &APIClient{
		baseURL: cfg.APIURL,
		token:   cfg.Token,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}, nil
}

func (c *APIClient) Lookup(ctx context.Context, plate string) (entities.VehicleInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+url.PathEscape(plate), nil)
	if err != nil {
		return entities.VehicleInfo{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return entities.VehicleInfo{}, &entities.GatewayError{Provider: providerName, Operation: "lookup", Timeout: isTimeout(ctx, err), Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return entities.VehicleInfo{}, &entities.GatewayError{Provider: providerName, Operation: "lookup", StatusCode: resp.StatusCode, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return entities.VehicleInfo{}, &entities.GatewayError{Provider: providerName, Operation: "lookup", StatusCode: resp.StatusCode, Body: string(raw)}
	}

	doc := map[string]any{}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return entities.VehicleInfo{}, &entities.GatewayError{Provider: providerName, Operation: "lookup", StatusCode: resp.StatusCode, Err: err}
	}

	info := entities.VehicleInfo{
		Plate:     plate,
		Brand:     firstValue(doc, brandKeys),
		Model:     firstValue(doc, modelKeys),
		Year:      firstValue(doc, yearKeys),
		Color:     firstValue(doc, colorKeys),
		Validated: true,
		Source:    providerName,
	}
	c.logger.Debug("[vehicle][api] lookup success", zap.String("plate", plate), zap.String("brand", info.Brand))
	return info, nil
}

func firstValue(doc map[string]any, keys []string) string {
	for _, k := range keys {
		switch v := doc[k].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case json.Number:
			return v.String()
		}
	}
	return ""
}

// isTimeout is false for caller cancellation.
func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if errors.Is(ctx.Err(), context.Canceled) {
		return false
	}
	type timeout interface{ Timeout() bool }
	t, ok := err.(timeout)
	return ok && t.Timeout()
}
