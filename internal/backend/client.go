// Package backend is the typed client for the remote API that owns every
// domain decision: stock arithmetic, order transitions, tenant isolation.
// This layer never retries and never mutates state locally; each call is a
// single request whose failure is surfaced once to the operator.
package backend

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// APIError is a non-2xx backend response. Mensaje is shown to the operator
// verbatim, per the dashboard's error contract.
type APIError struct {
	Status  int
	Mensaje string
}

func (e *APIError) Error() string { return e.Mensaje }

// Client talks to the backend REST API. It implements the per-resource
// interfaces consumed by the service layer.
type Client struct {
	http *resty.Client
}

func New(baseURL string) *Client {
	// RetryCount stays at zero: every failure is surfaced once and the
	// operator retries manually.
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetRetryCount(0)
	return &Client{http: c}
}

// Ping reports whether the backend answers at all. Used by the health
// endpoint only.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.http.R().SetContext(ctx).Get("/health")
	return revisar(resp, err)
}

// errorDe maps a non-2xx response to an APIError: a JSON `{message}` body is
// surfaced verbatim, anything unparseable degrades to "Error <status>".
func errorDe(resp *resty.Response) *APIError {
	var cuerpo struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body(), &cuerpo); err == nil && cuerpo.Message != "" {
		return &APIError{Status: resp.StatusCode(), Mensaje: cuerpo.Message}
	}
	return &APIError{Status: resp.StatusCode(), Mensaje: fmt.Sprintf("Error %d", resp.StatusCode())}
}

// revisar normalizes the (resp, err) pair of every call: transport errors are
// wrapped, non-2xx become APIError, success passes through.
func revisar(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("backend inaccesible: %w", err)
	}
	if resp.IsError() {
		return errorDe(resp)
	}
	return nil
}
