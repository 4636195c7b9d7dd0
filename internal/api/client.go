package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const DefaultBaseURL = "https://norma.nomoreparties.space/api"

var (
	// ErrUnsuccessful matches every response carrying success:false.
	ErrUnsuccessful = errors.New("api: request unsuccessful")
	// ErrJWTExpired matches the response to a call made with a stale access token.
	ErrJWTExpired  = errors.New("api: jwt expired")
	ErrNoRefresh   = errors.New("api: no refresh token")
	ErrOrderAbsent = errors.New("api: order not found")
)

const msgJWTExpired = "jwt expired"

// Error is a success:false answer from the API.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnsuccessful:
		return true
	case ErrJWTExpired:
		return e.Message == msgJWTExpired
	}
	return false
}

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Client talks to the burger REST API. It holds no session state; use
// Session to make authenticated calls.
type Client struct {
	baseURL string
	hc      *http.Client
}

func NewClient(baseURL string, hc *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), hc: hc}
}

// do sends body as JSON and decodes the answer into out. A non-empty access
// token goes into the Authorization header as is ("Bearer ...").
func (c *Client) do(ctx context.Context, method, path, access string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json;charset=utf-8")
	if access != "" {
		req.Header.Set("Authorization", access)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read body: %w", method, path, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("%s %s: status %d: decode: %w", method, path, resp.StatusCode, err)
	}
	if !env.Success {
		return &Error{Status: resp.StatusCode, Message: env.Message}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s %s: decode: %w", method, path, err)
	}
	return nil
}
