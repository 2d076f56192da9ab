package extractor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// Client submits note files to the remote extraction service.
type Client struct {
	baseURL    string
	httpClient *http.Client

	// Stats tracks extraction call latencies. Optional.
	Stats *Stats
}

// NewClient creates a client for the extraction service at baseURL.
// No client-side timeout is set: the service call can be slow (it runs an
// LLM behind the scenes), so only transport defaults apply.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		Stats:      NewStats(time.Hour),
	}
}

// Extract submits one file as a multipart POST to /extract and parses the
// JSON response. There is exactly one request per call: no retries and no
// cancellation beyond the caller's context.
func (c *Client) Extract(ctx context.Context, filename string, file io.Reader) (*Record, error) {
	if filename == "" || file == nil {
		return nil, ErrNoFileSelected
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/extract", &body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if c.Stats != nil {
		c.Stats.Record(time.Since(start).Milliseconds())
	}
	if err != nil {
		return nil, &NetworkError{Cause: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, &NetworkError{Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, serverError(resp.StatusCode, respBody)
	}

	var rec Record
	if err := json.Unmarshal(respBody, &rec); err != nil {
		return nil, fmt.Errorf("decode extraction response: %w", err)
	}
	return &rec, nil
}

// serverError builds a ServerError from a non-2xx response, preferring the
// body's "detail" field over a generic message.
func serverError(status int, body []byte) *ServerError {
	var errBody struct {
		Detail string `json:"detail"`
	}
	msg := ""
	if err := json.Unmarshal(body, &errBody); err == nil {
		msg = errBody.Detail
	}
	if msg == "" {
		msg = fmt.Sprintf("Server error (%d)", status)
	}
	return &ServerError{Status: status, Message: msg}
}

// Close releases resources.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}
