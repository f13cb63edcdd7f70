package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/huertapp/plant-mgmt/pkg/types"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

// PlantClient is used by sensor modules to report what they measure for the
// plant they are connected to.
type PlantClient interface {
	RecordReading(ctx context.Context, plantID int, temperature, humidity float64, timestamp *time.Time) (types.Registro, error)
	RecordWatering(ctx context.Context, plantID int, duration time.Duration, timestamp *time.Time) (types.Registro, error)
	LatestReading(ctx context.Context, plantID int) (types.Registro, error)
}

type plantClient struct {
	url        string
	token      string
	httpClient http.Client
}

var tracer = otel.Tracer("plant-mgmt-client")

// StatusError is returned when the service answers with anything but a 2xx.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed with status code %d: %s", e.StatusCode, e.Message)
}

func New(url, token string) PlantClient {
	return &plantClient{
		url:   strings.TrimSuffix(url, "/"),
		token: token,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *plantClient) RecordReading(ctx context.Context, plantID int, temperature, humidity float64, timestamp *time.Time) (reg types.Registro, err error) {
	ctx, span := tracer.Start(ctx, "record-reading")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	body := struct {
		Temperature float64    `json:"temperature"`
		Humidity    float64    `json:"humidity"`
		Timestamp   *time.Time `json:"timestamp,omitempty"`
	}{temperature, humidity, timestamp}

	err = c.do(ctx, http.MethodPost, fmt.Sprintf("/api/v0/plants/%d/readings", plantID), body, &reg)
	return
}

func (c *plantClient) RecordWatering(ctx context.Context, plantID int, duration time.Duration, timestamp *time.Time) (reg types.Registro, err error) {
	ctx, span := tracer.Start(ctx, "record-watering")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	body := struct {
		Duration  float64    `json:"duration"`
		Timestamp *time.Time `json:"timestamp,omitempty"`
	}{duration.Seconds(), timestamp}

	err = c.do(ctx, http.MethodPost, fmt.Sprintf("/api/v0/plants/%d/waterings", plantID), body, &reg)
	return
}

func (c *plantClient) LatestReading(ctx context.Context, plantID int) (reg types.Registro, err error) {
	ctx, span := tracer.Start(ctx, "latest-reading")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	err = c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v0/plants/%d/readings/latest", plantID), nil, &reg)
	return
}

func (c *plantClient) do(ctx context.Context, method, path string, body any, result *types.Registro) error {
	log := logging.GetFromContext(ctx)

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create http request: %w", err)
	}

	if body != nil {
		req.Header.Add("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Add("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var e struct {
			Message string `json:"message"`
		}
		json.Unmarshal(respBody, &e)

		log.Debug().Int("status", resp.StatusCode).Str("path", path).Msg("request rejected")
		return &StatusError{StatusCode: resp.StatusCode, Message: e.Message}
	}

	envelope := struct {
		Data *types.Registro `json:"data"`
	}{Data: result}

	err = json.Unmarshal(respBody, &envelope)
	if err != nil {
		return fmt.Errorf("failed to unmarshal response body: %w", err)
	}

	return nil
}
