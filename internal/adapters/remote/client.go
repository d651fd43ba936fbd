package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lequangminh/fitstreak/internal/core/domain"
	"github.com/lequangminh/fitstreak/internal/core/widget"
)

var _ widget.RemoteService = (*Client)(nil)

// Client implements the widget's RemoteService port over the HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// APIError carries the status code of a non-2xx response so callers can
// branch on it.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote: status %d", e.Status)
	}
	return fmt.Sprintf("remote: %s (status %d)", e.Message, e.Status)
}

func (c *Client) do(ctx context.Context, method, path, token string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("remote: encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("remote: building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("remote: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var body errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return &APIError{Status: resp.StatusCode, Message: body.Error}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("remote: decoding response: %w", err)
		}
	}
	return nil
}

func (c *Client) SignUp(ctx context.Context, username, password, level string) error {
	body := map[string]string{
		"username": username,
		"password": password,
		"level":    level,
	}
	return c.do(ctx, http.MethodPost, "/api/v1/auth/signup", "", body, nil)
}

func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body := map[string]string{
		"username": username,
		"password": password,
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", "", body, &out); err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", errors.New("remote: login response carried no token")
	}
	return out.Token, nil
}

func (c *Client) Today(ctx context.Context, token string) (*widget.TodayPayload, error) {
	var out widget.TodayPayload
	if err := c.do(ctx, http.MethodGet, "/api/v1/workout/today", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Complete(ctx context.Context, token string) (bool, error) {
	var out struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	err := c.do(ctx, http.MethodPost, "/api/v1/workout/complete", token, nil, &out)
	if err != nil {
		// A conflict is a clean "not completed again", not a transport failure.
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusConflict {
			return false, domain.ErrAlreadyCompleted
		}
		return false, err
	}
	return out.Success, nil
}

func (c *Client) Calendar(ctx context.Context, token, month string) ([]string, error) {
	path := "/api/v1/workout/calendar"
	if month != "" {
		path += "?month=" + month
	}

	days := []string{}
	if err := c.do(ctx, http.MethodGet, path, token, nil, &days); err != nil {
		return nil, err
	}
	return days, nil
}

func (c *Client) Me(ctx context.Context, token string) (*widget.ProfilePayload, error) {
	var out widget.ProfilePayload
	if err := c.do(ctx, http.MethodGet, "/api/v1/user/me", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
