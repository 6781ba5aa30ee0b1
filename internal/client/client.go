// Package client implements the generic API client: a thin HTTP caller plus
// the view-models (table, form, navigation) a renderer drives entirely from
// the server's descriptor document.
package client

import (
	"backend/internal/uimeta"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ErrUnauthorized reports a rejected session. The stored session is dropped
// so the next call starts clean.
var ErrUnauthorized = errors.New("сессия не авторизована")

// Result is the decoded API envelope with the payload left raw for the
// caller to shape.
type Result struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client calls the dispatch API and keeps the login session
type Client struct {
	baseURL   string
	http      *http.Client
	sessionID string
}

// New returns a client for the given server base URL
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// SessionID returns the stored session token, empty when logged out
func (c *Client) SessionID() string { return c.sessionID }

// Call performs one resource/operation request with query parameters
func (c *Client) Call(resource, op string, params map[string]string) (*Result, error) {
	u, err := url.Parse(fmt.Sprintf("%s/api/v1/%s/%s", c.baseURL, resource, op))
	if err != nil {
		return nil, err
	}
	q := u.Query()
	for k, v := range params {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	if c.sessionID != "" {
		req.Header.Set("X-Session-ID", c.sessionID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.sessionID = ""
		return nil, ErrUnauthorized
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var result Result
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("неожиданный ответ сервера: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return &result, fmt.Errorf("сервер ответил %d: %s", resp.StatusCode, result.Message)
	}
	return &result, nil
}

// AuthState mirrors the server's auth snapshot
type AuthState struct {
	SessionID          string   `json:"session_id"`
	Valid              bool     `json:"valid"`
	UserRole           string   `json:"user_role"`
	AllowedControllers []string `json:"allowed_controllers"`
	AllowedViews       []string `json:"allowed_views"`
}

// Login authenticates and stores the session on success
func (c *Client) Login(login, password string) (*AuthState, string, error) {
	result, err := c.Call("auth", "login", map[string]string{"login": login, "password": password})
	if err != nil {
		return nil, "", err
	}
	if !result.Success {
		return nil, result.Message, nil
	}
	var state AuthState
	if err := json.Unmarshal(result.Data, &state); err != nil {
		return nil, "", err
	}
	c.sessionID = state.SessionID
	return &state, result.Message, nil
}

// Logout drops the session on both sides
func (c *Client) Logout() error {
	_, err := c.Call("auth", "logout", nil)
	c.sessionID = ""
	return err
}

// State fetches the current auth snapshot
func (c *Client) State() (*AuthState, error) {
	result, err := c.Call("auth", "state", nil)
	if err != nil {
		return nil, err
	}
	var state AuthState
	if err := json.Unmarshal(result.Data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// Interface fetches the view descriptor document. It is served bare,
// without the envelope.
func (c *Client) Interface() (*uimeta.Document, error) {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+"/api/v1/system/get-interface", nil)
	if err != nil {
		return nil, err
	}
	if c.sessionID != "" {
		req.Header.Set("X-Session-ID", c.sessionID)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("сервер ответил %d", resp.StatusCode)
	}

	var doc uimeta.Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Row is one table row as the API returns it
type Row map[string]interface{}

// List fetches all rows of a controller
func (c *Client) List(controller string) ([]Row, error) {
	result, err := c.Call(controller, "list", nil)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, errors.New(result.Message)
	}
	var rows []Row
	if err := json.Unmarshal(result.Data, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Add creates a record from form values
func (c *Client) Add(controller string, params map[string]string) (*Result, error) {
	return c.Call(controller, "add", params)
}

// Update modifies a record from form values
func (c *Client) Update(controller string, params map[string]string) (*Result, error) {
	return c.Call(controller, "update", params)
}

// Delete removes a record by id
func (c *Client) Delete(controller string, id string) (*Result, error) {
	return c.Call(controller, "delete", map[string]string{"id": id})
}
