// Package remoteapi posts captured students to the remote storage API.
package remoteapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/yigit/idscan/internal/app/models"
)

// StudentsPath is the remote endpoint receiving one record per request
const StudentsPath = "/api/students"

// ErrNotConfigured is returned when no base URL is set
var ErrNotConfigured = errors.New("remote API base URL is not configured")

// StatusError is a non-2xx answer from the remote API
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("remote API responded %d: %s", e.StatusCode, e.Body)
}

// studentPayload is the wire body; the identifier stays local.
type studentPayload struct {
	Name          string `json:"name"`
	StudentNumber string `json:"studentNumber"`
	Program       string `json:"program"`
	Timestamp     string `json:"timestamp"`
}

// Client writes records to the remote API
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a client for baseURL. A zero timeout leaves requests
// bounded only by the caller's context.
func NewClient(baseURL string, timeout time.Duration, logger zerolog.Logger) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, ErrNotConfigured
	}
	u, err := url.Parse(strings.TrimRight(baseURL, "/") + StudentsPath)
	if err != nil {
		return nil, fmt.Errorf("invalid remote base URL: %w", err)
	}

	return &Client{
		endpoint:   u.String(),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

// Endpoint returns the full URL records are posted to
func (c *Client) Endpoint() string {
	return c.endpoint
}

// UploadStudent posts one record; any 2xx status is success.
func (c *Client) UploadStudent(ctx context.Context, record models.StudentRecord) error {
	body, err := json.Marshal(studentPayload{
		Name:          record.Name,
		StudentNumber: record.StudentNumber,
		Program:       record.Program,
		Timestamp:     record.Timestamp,
	})
	if err != nil {
		return fmt.Errorf("failed to encode student: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().Err(err).Str("studentNumber", record.StudentNumber).Msg("Remote upload request failed")
		return fmt.Errorf("failed to post student: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}
	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}
