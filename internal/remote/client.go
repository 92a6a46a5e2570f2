// Package remote talks to the shop's persistence API: one configurable
// endpoint that authenticates with a token query parameter and stores
// orders as opaque rows. It is an I/O wrapper only; all interpretation of
// the records happens in the orders package.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"dtech-os/internal/orders"
)

// ErrNoToken is returned when an authenticated call runs without a stored
// token.
var ErrNoToken = errors.New("token nao encontrado")

// AuthError marks responses classified as authentication failures. The API
// has no structured error codes; any error message containing "token"
// (case-insensitive) counts.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// IsAuthError reports whether err (anywhere in its chain) is an AuthError
// or carries the token marker in its text.
func IsAuthError(err error) bool {
	if err == nil {
		return false
	}
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "token")
}

func classify(message string) error {
	if strings.Contains(strings.ToLower(message), "token") {
		return &AuthError{Message: message}
	}
	return errors.New(message)
}

type ack struct {
	OK      *bool  `json:"ok"`
	Token   string `json:"token"`
	Message string `json:"message"`
}

func (a ack) failed() bool { return a.OK != nil && !*a.OK }

// Client is the persistence API client.
type Client struct {
	http   *resty.Client
	tokens *TokenStore
}

// NewClient builds a client against baseURL using tokens for the persisted
// auth token.
func NewClient(baseURL string, tokens *TokenStore, timeout time.Duration) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "text/plain;charset=utf-8")
	return &Client{http: httpClient, tokens: tokens}
}

// Tokens exposes the token store for logout handling.
func (c *Client) Tokens() *TokenStore { return c.tokens }

// HasToken reports whether a token is stored.
func (c *Client) HasToken() bool { return c.tokens.Get() != "" }

// ClearToken drops the stored token, forcing the next call to re-login.
func (c *Client) ClearToken() error { return c.tokens.Clear() }

// encodeBody marshals the request body by hand: the endpoint wants JSON
// text under a text/plain content type, which resty will not marshal on
// its own.
func encodeBody(body any) (string, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return "", errors.Wrap(err, "encode body")
	}
	return string(data), nil
}

// Login authenticates and persists the returned token.
func (c *Client) Login(ctx context.Context, username, password string) error {
	body, err := encodeBody(map[string]string{
		"action":   "login",
		"username": username,
		"password": password,
	})
	if err != nil {
		return err
	}
	resp, err := c.http.R().SetContext(ctx).SetBody(body).Post("")
	if err != nil {
		return errors.Wrap(err, "login")
	}
	if resp.IsError() {
		return fmt.Errorf("falha ao autenticar: %d", resp.StatusCode())
	}
	var data ack
	if err := json.Unmarshal(resp.Body(), &data); err != nil {
		return errors.Wrap(err, "login decode")
	}
	if data.failed() {
		message := data.Message
		if message == "" {
			message = "login invalido"
		}
		return classify(message)
	}
	if data.Token == "" {
		return errors.New("login sem token na resposta")
	}
	return c.tokens.Set(data.Token)
}

// FetchOrders lists every raw record. The caller normalizes them.
func (c *Client) FetchOrders(ctx context.Context) ([]orders.RawOrder, error) {
	token := c.tokens.Get()
	if token == "" {
		return nil, ErrNoToken
	}
	resp, err := c.http.R().SetContext(ctx).SetQueryParam("token", token).Get("")
	if err != nil {
		return nil, errors.Wrap(err, "fetch orders")
	}
	if resp.IsError() {
		return nil, fmt.Errorf("falha ao buscar OS: %d", resp.StatusCode())
	}

	// The endpoint answers with either the record array or an {ok:false}
	// envelope; sniff the first byte.
	body := resp.Body()
	trimmed := strings.TrimSpace(string(body))
	if strings.HasPrefix(trimmed, "{") {
		var data ack
		if err := json.Unmarshal(body, &data); err != nil {
			return nil, errors.Wrap(err, "fetch decode")
		}
		message := data.Message
		if message == "" {
			message = "token invalido"
		}
		return nil, classify(message)
	}

	var list []orders.RawOrder
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, errors.Wrap(err, "fetch decode")
	}
	return list, nil
}

// SaveOrder sends the wire payload; the server upserts by id.
func (c *Client) SaveOrder(ctx context.Context, payload orders.Payload) error {
	return c.post(ctx, payload, "falha ao salvar OS")
}

// DeleteOrder removes the record keyed by id.
func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	body := map[string]string{"action": "delete", "id": id}
	return c.post(ctx, body, "falha ao deletar OS")
}

func (c *Client) post(ctx context.Context, body any, failMsg string) error {
	token := c.tokens.Get()
	if token == "" {
		return ErrNoToken
	}
	encoded, err := encodeBody(body)
	if err != nil {
		return err
	}
	resp, err := c.http.R().SetContext(ctx).SetQueryParam("token", token).SetBody(encoded).Post("")
	if err != nil {
		return errors.Wrap(err, failMsg)
	}
	if resp.IsError() {
		return fmt.Errorf("%s: %d", failMsg, resp.StatusCode())
	}
	var data ack
	if err := json.Unmarshal(resp.Body(), &data); err != nil {
		return errors.Wrap(err, "decode resposta")
	}
	if data.failed() {
		message := data.Message
		if message == "" {
			message = "token invalido"
		}
		return classify(message)
	}
	return nil
}
