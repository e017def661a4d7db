package fipeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/repasseautors/lead-service/pkg/metrics"
)

const metricsTarget = "fipe_api"

// Client looks up vehicles on the FIPE plate API (placas.fipeapi.com.br)
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        Logger
	metrics    *metrics.Metrics // optional
}

// NewClient creates a new valuation lookup client
func NewClient(baseURL, apiKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// WithMetrics enables outbound request metrics and returns the client
func (c *Client) WithMetrics(m *metrics.Metrics) *Client {
	c.metrics = m
	return c
}

// LookupPlate fetches the FIPE valuation for a license plate
func (c *Client) LookupPlate(ctx context.Context, plate string) (v *Valuation, err error) {
	start := time.Now()
	defer func() { c.observe("lookup_plate", start, err) }()

	lookupURL := fmt.Sprintf("%s/placas/%s?key=%s", c.baseURL, url.PathEscape(plate), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decode
	case http.StatusNotFound:
		return nil, ErrVehicleNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, fmt.Errorf("%w: API key rejected (status %d)", ErrUnavailable, resp.StatusCode)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		c.log.Warn("LookupPlate: plate=%s unexpected status %d: %s", plate, resp.StatusCode, string(body))
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrInvalidResponse, resp.StatusCode)
	}

	var parsed plateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	// A plate can resolve to a vehicle that has no FIPE entry
	if len(parsed.Data.Fipes) == 0 {
		return nil, ErrVehicleNotFound
	}

	return parsed.toValuation(), nil
}

func (c *Client) observe(op string, start time.Time, err error) {
	if c.metrics == nil {
		return
	}

	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	c.metrics.IntegrationRequestsTotal.WithLabelValues(metricsTarget, op, outcome).Inc()
	c.metrics.IntegrationRequestDuration.WithLabelValues(metricsTarget, op).Observe(time.Since(start).Seconds())
}
