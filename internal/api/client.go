package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	fhttp "github.com/bogdanfinn/fhttp"
	fhttpcookiejar "github.com/bogdanfinn/fhttp/cookiejar"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/careercrafter/crafter/internal/config"
)

// Doer is the transport seam; tests substitute a fake.
type Doer interface {
	Do(req *fhttp.Request) (*fhttp.Response, error)
}

// TokenSource supplies the bearer token attached to every call. An empty
// token sends no Authorization header (the token-generate call itself).
type TokenSource interface {
	Token() string
}

// StaticToken is a fixed-value TokenSource.
type StaticToken string

func (t StaticToken) Token() string { return string(t) }

// Error is a non-2xx API response.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: http %d", e.Status)
	}
	return fmt.Sprintf("api: http %d: %s", e.Status, e.Message)
}

// Client is a typed client for the recruitment API.
type Client struct {
	http    Doer
	baseURL string
	tokens  TokenSource
	logger  zerolog.Logger
}

// New builds a Client from config. The optional proxy is a single egress
// proxy applied at construction.
func New(cfg config.Config, tokens TokenSource, logger zerolog.Logger) (*Client, error) {
	jar, _ := fhttpcookiejar.New(nil)

	opts := []tls_client.HttpClientOption{
		tls_client.WithClientProfile(profiles.Chrome_120),
		tls_client.WithTimeoutSeconds(cfg.Timeout),
		tls_client.WithCookieJar(jar),
	}
	if strings.TrimSpace(cfg.Proxy) != "" {
		opts = append(opts, tls_client.WithProxyUrl(cfg.Proxy))
	}

	client, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), opts...)
	if err != nil {
		return nil, err
	}

	return &Client{
		http:    client,
		baseURL: strings.TrimRight(cfg.APIURL, "/"),
		tokens:  tokens,
		logger:  logger,
	}, nil
}

// NewWithDoer wires an explicit transport; used by tests.
func NewWithDoer(doer Doer, baseURL string, tokens TokenSource, logger zerolog.Logger) *Client {
	return &Client{
		http:    doer,
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		logger:  logger,
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.call(ctx, fhttp.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, query url.Values, body any, out any) error {
	return c.call(ctx, fhttp.MethodPost, path, query, body, out)
}

func (c *Client) put(ctx context.Context, path string, query url.Values, body any, out any) error {
	return c.call(ctx, fhttp.MethodPut, path, query, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.call(ctx, fhttp.MethodDelete, path, nil, nil, nil)
}

// call issues one request: JSON body in, optional JSON body out. Mutations
// that the API expects as query parameters pass a nil body.
func (c *Client) call(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := fhttp.NewRequestWithContext(ctx, method, c.endpoint(path, query), reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out)
}

func (c *Client) do(req *fhttp.Request, out any) error {
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Msg("api call")

	if resp.StatusCode >= 400 {
		return &Error{Status: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", req.Method, req.URL.Path, err)
	}
	return nil
}

func (c *Client) endpoint(path string, query url.Values) string {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	return target
}

func readErrorMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 2048))
	if err != nil {
		return ""
	}

	// Try the API's {"message": ...} envelope first, then fall back to
	// the raw body.
	var envelope struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(data, &envelope) == nil && envelope.Message != "" {
		return envelope.Message
	}
	return strings.TrimSpace(string(data))
}
