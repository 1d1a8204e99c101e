// Package api implements the Gateway port as an HTTP client for the
// dashboard backend. All requests carry the stored access token; a 401
// response triggers exactly one token refresh followed by one replay of
// the original request, whose outcome is final.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/botdesk-client/internal/core/domain"
	"github.com/custodia-labs/botdesk-client/internal/core/ports/driven"
)

// Ensure Client implements Gateway
var _ driven.Gateway = (*Client)(nil)

// Doer executes a single HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config holds the gateway client configuration
type Config struct {
	// BaseURL is the API root, e.g. "https://api.example.com/api"
	BaseURL string

	// Timeout applies when no HTTPClient is provided
	Timeout time.Duration

	// HTTPClient overrides the default client when set
	HTTPClient Doer

	// Tokens is the credential storage backing the auth header
	Tokens driven.TokenStore

	// OnSessionExpired runs after a failed refresh has purged the
	// stored credentials. Optional.
	OnSessionExpired func()

	// Logger for request logging. Defaults to slog.Default().
	Logger *slog.Logger
}

// Client is the HTTP implementation of the Gateway port
type Client struct {
	baseURL          string
	httpClient       Doer
	tokens           driven.TokenStore
	onSessionExpired func()
	logger           *slog.Logger
}

// NewClient creates a new gateway client
func NewClient(cfg Config) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:          strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient:       httpClient,
		tokens:           cfg.Tokens,
		onSessionExpired: cfg.OnSessionExpired,
		logger:           logger,
	}
}

// Get performs a GET request
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.send(ctx, http.MethodGet, path, nil, "", out)
}

// Post performs a POST request with a JSON body
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	data, contentType, err := encodeJSON(body)
	if err != nil {
		return err
	}
	return c.send(ctx, http.MethodPost, path, data, contentType, out)
}

// Put performs a PUT request with a JSON body
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	data, contentType, err := encodeJSON(body)
	if err != nil {
		return err
	}
	return c.send(ctx, http.MethodPut, path, data, contentType, out)
}

// Patch performs a PATCH request with a JSON body
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	data, contentType, err := encodeJSON(body)
	if err != nil {
		return err
	}
	return c.send(ctx, http.MethodPatch, path, data, contentType, out)
}

// Delete performs a DELETE request
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.send(ctx, http.MethodDelete, path, nil, "", out)
}

// Upload performs a multipart POST request
func (c *Client) Upload(ctx context.Context, path string, file domain.FileUpload, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	field := file.Field
	if field == "" {
		field = "file"
	}

	part, err := writer.CreateFormFile(field, file.Filename)
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(file.Data); err != nil {
		return fmt.Errorf("write form file: %w", err)
	}
	for key, value := range file.Extra {
		if err := writer.WriteField(key, value); err != nil {
			return fmt.Errorf("write form field %s: %w", key, err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close multipart writer: %w", err)
	}

	return c.send(ctx, http.MethodPost, path, buf.Bytes(), writer.FormDataContentType(), out)
}

// Download performs a GET request returning the raw body
func (c *Client) Download(ctx context.Context, path string) (*domain.FileDownload, error) {
	resp, err := c.roundTrip(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read download body: %w", err)
	}

	download := &domain.FileDownload{
		ContentType: resp.Header.Get("Content-Type"),
		Data:        data,
	}
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			download.Filename = params["filename"]
		}
	}
	return download, nil
}

// send executes a request and decodes the JSON response into out
func (c *Client) send(ctx context.Context, method, path string, body []byte, contentType string, out any) error {
	resp, err := c.roundTrip(ctx, method, path, body, contentType)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// roundTrip executes a request with the stored access token, refreshing
// and replaying exactly once on a 401. The body bytes are reused for the
// replay, which is why callers pass bytes rather than a reader.
func (c *Client) roundTrip(ctx context.Context, method, path string, body []byte, contentType string) (*http.Response, error) {
	requestID := uuid.NewString()
	start := time.Now()

	resp, err := c.do(ctx, method, path, body, contentType, true)
	if err != nil {
		c.logger.Debug("request failed",
			"request_id", requestID, "method", method, "path", path, "error", err)
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		originalErr := readAPIError(resp)

		if refreshErr := c.refresh(ctx); refreshErr != nil {
			c.logger.Info("session refresh failed",
				"request_id", requestID, "method", method, "path", path, "error", refreshErr)
			if errors.Is(refreshErr, domain.ErrNoRefreshToken) {
				// Nothing to renew with; the 401 itself is the answer.
				return nil, originalErr
			}
			return nil, refreshErr
		}

		c.logger.Debug("replaying after refresh",
			"request_id", requestID, "method", method, "path", path)

		resp, err = c.do(ctx, method, path, body, contentType, true)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= 400 {
			return nil, readAPIError(resp)
		}
		c.logger.Debug("request completed",
			"request_id", requestID, "method", method, "path", path,
			"status", resp.StatusCode, "duration", time.Since(start))
		return resp, nil
	}

	if resp.StatusCode >= 400 {
		return nil, readAPIError(resp)
	}

	c.logger.Debug("request completed",
		"request_id", requestID, "method", method, "path", path,
		"status", resp.StatusCode, "duration", time.Since(start))
	return resp, nil
}

// do builds and executes a single request attempt
func (c *Client) do(ctx context.Context, method, path string, body []byte, contentType string, authed bool) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	if authed {
		token, err := c.tokens.AccessToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("read access token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	return resp, nil
}

// refresh exchanges the stored refresh token for a new token pair.
// When no refresh token exists, the exchange fails or the renewed pair
// cannot be stored, both stored tokens are purged and the
// session-expired handler runs.
func (c *Client) refresh(ctx context.Context) error {
	refreshToken, err := c.tokens.RefreshToken(ctx)
	if err != nil {
		return fmt.Errorf("read refresh token: %w", err)
	}
	if refreshToken == "" {
		c.expireSession(ctx)
		return domain.ErrNoRefreshToken
	}

	body, _, err := encodeJSON(map[string]string{"refreshToken": refreshToken})
	if err != nil {
		return err
	}

	resp, err := c.do(ctx, http.MethodPost, "/auth/refresh", body, "application/json", false)
	if err != nil {
		c.expireSession(ctx)
		return fmt.Errorf("%w: %v", domain.ErrSessionExpired, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := readAPIError(resp)
		c.expireSession(ctx)
		return fmt.Errorf("%w: %v", domain.ErrSessionExpired, apiErr)
	}

	var pair domain.TokenPair
	if err := json.NewDecoder(resp.Body).Decode(&pair); err != nil {
		c.expireSession(ctx)
		return fmt.Errorf("%w: decode refresh response: %v", domain.ErrSessionExpired, err)
	}
	if pair.AccessToken == "" {
		c.expireSession(ctx)
		return domain.ErrSessionExpired
	}

	if err := c.tokens.SetTokens(ctx, pair.AccessToken, pair.RefreshToken); err != nil {
		// A pair we cannot store is a pair we cannot replay with, and the
		// old one is already invalid. Treat it as a dead session.
		c.expireSession(ctx)
		return fmt.Errorf("%w: persist refreshed tokens: %v", domain.ErrSessionExpired, err)
	}
	return nil
}

func (c *Client) expireSession(ctx context.Context) {
	if err := c.tokens.Clear(ctx); err != nil {
		c.logger.Warn("failed to clear tokens", "error", err)
	}
	if c.onSessionExpired != nil {
		c.onSessionExpired()
	}
}

// readAPIError drains the response into a domain.APIError
func readAPIError(resp *http.Response) error {
	defer resp.Body.Close()

	apiErr := &domain.APIError{StatusCode: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err == nil && len(data) > 0 {
		var payload struct {
			Message string `json:"message"`
			Detail  string `json:"detail"`
			Error   string `json:"error"`
		}
		if json.Unmarshal(data, &payload) == nil {
			apiErr.Message = payload.Message
			apiErr.Detail = payload.Detail
			if apiErr.Message == "" {
				apiErr.Message = payload.Error
			}
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}

// encodeJSON marshals body to bytes once so a request can be replayed
func encodeJSON(body any) ([]byte, string, error) {
	if body == nil {
		return nil, "", nil
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, "", fmt.Errorf("encode request body: %w", err)
	}
	return data, "application/json", nil
}
