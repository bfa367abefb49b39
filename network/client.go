// Package network is the typed HTTP client for the fleetd control API,
// shared by the polling agent and the operator console.
package network

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"fleetd/backend/app/dto"
)

type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL: baseURL,
		Token:   token,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) do(method, path string, query url.Values, body, out any) error {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequest(method, u, &buf)
	if err != nil {
		return err
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		var e dto.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&e)
		if e.Error != "" {
			return fmt.Errorf("%s %s: %s (status %d)", method, path, e.Error, resp.StatusCode)
		}
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// Login trades operator credentials for a JWT and installs it as the
// client's bearer token.
func (c *Client) Login(username, password string) error {
	var tok dto.TokenResponse
	err := c.do(http.MethodPost, "/login", nil, dto.LoginRequest{Username: username, Password: password}, &tok)
	if err != nil {
		return err
	}
	c.Token = tok.AccessToken
	return nil
}

func (c *Client) Checkin(name, address string, freq int, ping string) error {
	req := dto.CheckinRequest{Name: name, Address: address, Freq: freq, Ping: ping}
	return c.do(http.MethodPost, "/v2/checkin", nil, req, nil)
}

// FetchOrder claims the next pending command. A nil CommandID in the
// result means the mailbox was empty.
func (c *Client) FetchOrder(name string) (*dto.OrderResponse, error) {
	var out dto.OrderResponse
	q := url.Values{"name": {name}}
	if err := c.do(http.MethodGet, "/v2/orders", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Enqueue(name, commandText string) (uint, error) {
	var out dto.EnqueueResponse
	req := dto.EnqueueRequest{Name: name, CommandText: commandText}
	if err := c.do(http.MethodPost, "/v2/commands", nil, req, &out); err != nil {
		return 0, err
	}
	return out.CommandID, nil
}

func (c *Client) StoreResponse(name string, commandID uint, text string) error {
	req := dto.StoreResponseRequest{Name: name, CommandID: commandID, ResponseText: text}
	return c.do(http.MethodPost, "/v2/responses", nil, req, nil)
}

func (c *Client) FetchResponse(commandID uint) (string, error) {
	var out dto.ResponsePayload
	q := url.Values{"command_id": {fmt.Sprintf("%d", commandID)}}
	if err := c.do(http.MethodGet, "/v2/responses", q, nil, &out); err != nil {
		return "", err
	}
	return out.ResponseText, nil
}

func (c *Client) ListAgents() ([]dto.AgentEntry, error) {
	var out []dto.AgentEntry
	if err := c.do(http.MethodGet, "/v2/computers", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
