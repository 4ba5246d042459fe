package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/minproducer/kulana-cms/internal/domain/entities"
	"github.com/minproducer/kulana-cms/internal/ports"
)

// Client is a typed wrapper over the configuration API. Reads are
// unauthenticated; writes and uploads present the bearer token held by the
// session store. Any 401 clears the session so a stale token is never retried
// silently.
type Client struct {
	baseURL string
	http    *http.Client
	session SessionStore

	// OnUnauthorized, if set, runs after a 401 has cleared the session. The
	// admin UI uses it to route back to the login page.
	OnUnauthorized func()
}

// envelope mirrors the response shape of every endpoint.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

type configValue struct {
	Value json.RawMessage `json:"value"`
}

// New creates a client for the API at baseURL. httpClient may be nil, in
// which case a client with a sane timeout is used.
func New(baseURL string, session SessionStore, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		session: session,
	}
}

// Login exchanges credentials for a bearer token and stores it, along with
// the user identity, in the session store.
func (c *Client) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	body, err := json.Marshal(ports.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/login.php", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	env, status, err := c.do(req)
	if err != nil {
		return nil, err
	}

	if status == http.StatusUnauthorized {
		return nil, entities.ErrInvalidCredentials
	}
	if !env.Success {
		return nil, fmt.Errorf("login failed: %s", env.Message)
	}

	var result ports.LoginResult
	if err := json.Unmarshal(env.Data, &result); err != nil {
		return nil, fmt.Errorf("malformed login response: %w", err)
	}

	err = c.session.Save(Session{
		Token:    result.Token,
		UserID:   result.UserID,
		Username: result.Username,
	})
	if err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	return &result, nil
}

// Logout clears the stored session.
func (c *Client) Logout() error {
	return c.session.Clear()
}

// FetchDocument reads the document stored under key. A key that has never
// been written yields entities.ErrConfigNotFound so callers can fall back to
// their built-in default instead of surfacing an error.
func (c *Client) FetchDocument(ctx context.Context, key string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/get-config.php?key="+key, nil)
	if err != nil {
		return nil, err
	}

	env, status, err := c.do(req)
	if err != nil {
		return nil, err
	}

	// Only an actual 404 means the key has never been written. Any other
	// failure must surface so callers don't silently fall back to defaults
	// and later overwrite the real stored document.
	if status == http.StatusNotFound {
		return nil, entities.ErrConfigNotFound
	}
	if !env.Success {
		return nil, fmt.Errorf("fetch document %q: %s", key, env.Message)
	}

	var cv configValue
	if err := json.Unmarshal(env.Data, &cv); err != nil {
		return nil, fmt.Errorf("malformed config response: %w", err)
	}
	return cv.Value, nil
}

// FetchAllDocuments reads every stored document keyed by name.
func (c *Client) FetchAllDocuments(ctx context.Context) (map[string]json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/get-config.php", nil)
	if err != nil {
		return nil, err
	}

	env, _, err := c.do(req)
	if err != nil {
		return nil, err
	}

	if !env.Success {
		return nil, fmt.Errorf("fetch all documents: %s", env.Message)
	}

	var cv struct {
		Value map[string]json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(env.Data, &cv); err != nil {
		return nil, fmt.Errorf("malformed config response: %w", err)
	}
	return cv.Value, nil
}

// WriteDocument replaces the whole stored value for key. A 401 clears the
// session and returns entities.ErrUnauthorized; the caller must not retry
// with the same token.
func (c *Client) WriteDocument(ctx context.Context, key string, value interface{}) error {
	sess, err := c.session.Load()
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if sess.Token == "" {
		return entities.ErrUnauthorized
	}

	body, err := json.Marshal(map[string]interface{}{"key": key, "value": value})
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/update-config-secure.php", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+sess.Token)

	env, status, err := c.do(req)
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized {
		return c.unauthorized()
	}
	if !env.Success {
		return fmt.Errorf("write document %q: %s", key, env.Message)
	}
	return nil
}

// unauthorized clears the session and fires the OnUnauthorized hook.
func (c *Client) unauthorized() error {
	if err := c.session.Clear(); err != nil {
		return fmt.Errorf("clear session after 401: %w", err)
	}
	if c.OnUnauthorized != nil {
		c.OnUnauthorized()
	}
	return entities.ErrUnauthorized
}

// do executes the request and decodes the envelope. Transport failures and
// unparseable bodies are both reported as errors; the caller treats them the
// same way.
func (c *Client) do(req *http.Request) (*envelope, int, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request %s: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("malformed response from %s: %w", req.URL.Path, err)
	}
	return &env, resp.StatusCode, nil
}
