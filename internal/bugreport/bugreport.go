// Package bugreport submits user feedback to the feedback service.
// Submission is fire-and-forget: one POST, no retry, no queue. Core task
// state is never touched.
package bugreport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"time"
)

const submitTimeout = 15 * time.Second

// Report is the submission payload.
type Report struct {
	Description string `json:"description"`
	AppName     string `json:"appName"`
	Version     string `json:"version"`
	Build       string `json:"build"`
	OS          string `json:"os"`
}

// NewReport fills in the environment metadata around a description.
func NewReport(description, version, build string) Report {
	return Report{
		Description: description,
		AppName:     "pinned",
		Version:     version,
		Build:       build,
		OS:          fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// Client submits reports to a fixed endpoint.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient creates a client for the given endpoint.
func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: submitTimeout},
	}
}

// Submit POSTs the report as JSON. Any 2xx response counts as accepted;
// everything else maps to a single user-presentable error.
func (c *Client) Submit(ctx context.Context, r Report) error {
	if r.Description == "" {
		return fmt.Errorf("report description is empty")
	}

	body, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("could not reach the feedback service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("feedback service rejected the report (status %d)", resp.StatusCode)
	}
	return nil
}
