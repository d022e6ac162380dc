package voiceai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// VendorError is returned when a voice platform API answers with a non-2xx
// status.
type VendorError struct {
	Vendor  string
	Code    int
	Message string
}

func (e *VendorError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.Vendor, e.Code, e.Message)
}

// apiClient is the JSON-over-HTTP plumbing shared by the platform clients.
type apiClient struct {
	vendor  string
	baseURL string
	http    *http.Client
	auth    func(*http.Request)
}

func newAPIClient(vendor, baseURL string, httpClient *http.Client, auth func(*http.Request)) apiClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return apiClient{
		vendor:  vendor,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		auth:    auth,
	}
}

func (c apiClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", c.vendor, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", c.vendor, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	c.auth(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %s %s: %w", c.vendor, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return &VendorError{Vendor: c.vendor, Code: resp.StatusCode, Message: strings.TrimSpace(string(msg))}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
		return fmt.Errorf("%s: decode response: %w", c.vendor, err)
	}
	return nil
}
