package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	interrors "github.com/victorucama-create/nexasuite-erp/internal/errors"
	"github.com/victorucama-create/nexasuite-erp/users"
)

const (
	headerRequestID = "X-Request-ID"
	headerCompanyID = "X-Company-Id"

	routeLogin   = "/api/auth/login"
	routeRefresh = "/api/auth/refresh"
	routeLogout  = "/api/auth/logout"
	routeMe      = "/api/auth/me"

	defaultTimeout = 15 * time.Second
)

// Client is the request gateway. It attaches the session credentials to
// every outbound call and transparently recovers, at most once per logical
// request, from an expired access token.
type Client struct {
	baseURL          string
	httpClient       *http.Client
	store            SessionStore
	notifier         Notifier
	onSessionExpired func(reason string)
	companyID        string

	lock         sync.RWMutex
	session      *Session
	refreshGroup singleflight.Group
	nowFunc      func() time.Time
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = timeout }
}

func WithSessionStore(store SessionStore) Option {
	return func(c *Client) { c.store = store }
}

func WithNotifier(notifier Notifier) Option {
	return func(c *Client) { c.notifier = notifier }
}

// WithOnSessionExpired registers the callback invoked when the session is
// destroyed because it could not be recovered. The reason is a short code
// such as "session_expired" suitable for the login screen.
func WithOnSessionExpired(callback func(reason string)) Option {
	return func(c *Client) { c.onSessionExpired = callback }
}

// WithCompanyID attaches a tenant identifier header to every request
func WithCompanyID(companyID string) Option {
	return func(c *Client) { c.companyID = companyID }
}

// New creates a gateway for the API at baseURL and rehydrates any session
// the store still holds.
func New(baseURL string, options ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("[client New] baseURL is required")
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		store:      NewMemorySessionStore(),
		notifier:   NopNotifier{},
		nowFunc:    time.Now,
	}
	for _, option := range options {
		option(c)
	}

	session, err := c.store.Load()
	if err != nil {
		return nil, errors.Wrap(err, "[client New] failed to load persisted session")
	}
	c.session = session

	return c, nil
}

// Session returns a copy of the current session, or nil when logged out
func (c *Client) Session() *Session {
	c.lock.RLock()
	defer c.lock.RUnlock()
	if c.session == nil {
		return nil
	}
	copied := *c.session
	return &copied
}

type loginResponse struct {
	Success      bool        `json:"success"`
	User         *users.User `json:"user"`
	Token        string      `json:"token"`
	RefreshToken string      `json:"refreshToken"`
}

// Login exchanges credentials for a fresh session. Failures never hint at
// which field was wrong.
func (c *Client) Login(ctx context.Context, email, password string) (*users.User, error) {
	status, body, err := c.send(ctx, http.MethodPost, routeLogin, map[string]string{
		"email":    email,
		"password": password,
	}, "")
	if err != nil {
		return nil, c.connectivityFailure(err)
	}

	if status != http.StatusOK {
		apiErr := c.classify(status, body)
		if status == http.StatusUnauthorized {
			apiErr.Kind = interrors.KindInvalidCredentials
		}
		c.notifier.Error(apiErr.Message)
		return nil, apiErr
	}

	var resp loginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.Wrap(err, "[Client Login] failed to decode login response")
	}

	session := &Session{
		AccessToken:      resp.Token,
		RefreshToken:     resp.RefreshToken,
		AccessExpiresAt:  tokenExpiry(resp.Token),
		RefreshExpiresAt: tokenExpiry(resp.RefreshToken),
		User:             resp.User,
	}
	if err := c.replaceSession(session); err != nil {
		return nil, err
	}

	return resp.User, nil
}

// Logout tells the server the session is over, then destroys the local
// session regardless of whether the server call succeeded.
func (c *Client) Logout(ctx context.Context) error {
	if bearer := c.accessToken(); bearer != "" {
		if _, _, err := c.send(ctx, http.MethodPost, routeLogout, nil, bearer); err != nil {
			log.Debug().Err(err).Msg("Logout call failed; destroying session anyway")
		}
	}
	return c.destroySession("")
}

// Me fetches the identity bound to the current access token
func (c *Client) Me(ctx context.Context) (*users.User, error) {
	var resp struct {
		User *users.User `json:"user"`
	}
	if err := c.Get(ctx, routeMe, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out, false)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out, false)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out, false)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out, false)
}

// do dispatches one logical request. A 401 on the first attempt enters the
// refresh protocol and then retries exactly once; a 401 on the retried
// attempt is terminal.
func (c *Client) do(ctx context.Context, method, path string, body, out any, retried bool) error {
	bearer := c.accessToken()
	status, respBody, err := c.send(ctx, method, path, body, bearer)
	if err != nil {
		return c.connectivityFailure(err)
	}

	if status >= 200 && status < 300 {
		if isMutating(method) {
			if message := envelopeMessage(respBody); message != "" {
				c.notifier.Success(message)
			}
		}
		if out != nil && len(respBody) > 0 {
			if err := json.Unmarshal(respBody, out); err != nil {
				return errors.Wrapf(err, "[Client do] failed to decode %s %s response", method, path)
			}
		}
		return nil
	}

	if status == http.StatusUnauthorized && !retried {
		// Another caller may have refreshed while this request was in
		// flight; only refresh if the rejected token is still current.
		if c.accessToken() == bearer {
			if err := c.refresh(ctx); err != nil {
				c.notifier.Error(ErrSessionExpired.Message)
				return ErrSessionExpired
			}
		}
		return c.do(ctx, method, path, body, out, true)
	}

	apiErr := c.classify(status, respBody)
	c.notifier.Error(apiErr.Message)
	return apiErr
}

type refreshResponse struct {
	Success      bool   `json:"success"`
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// refresh exchanges the current refresh token for a new pair. Concurrent
// callers share a single in-flight exchange; every waiter observes the one
// result. Terminal failure destroys the session.
func (c *Client) refresh(ctx context.Context) error {
	_, err, _ := c.refreshGroup.Do("refresh", func() (any, error) {
		session := c.Session()
		if !session.CanRefresh(c.nowFunc()) {
			if destroyErr := c.destroySession("session_expired"); destroyErr != nil {
				log.Err(destroyErr).Msg("Failed to destroy session with no usable refresh token")
			}
			return nil, errors.New("refresh token missing or expired")
		}

		status, body, err := c.send(ctx, http.MethodPost, routeRefresh, map[string]string{
			"refreshToken": session.RefreshToken,
		}, "")
		if err != nil || status != http.StatusOK {
			if destroyErr := c.destroySession("session_expired"); destroyErr != nil {
				log.Err(destroyErr).Msg("Failed to destroy session after refresh failure")
			}
			if err != nil {
				return nil, errors.Wrap(err, "refresh call failed")
			}
			return nil, errors.Errorf("refresh rejected with status %d", status)
		}

		var resp refreshResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, errors.Wrap(err, "failed to decode refresh response")
		}

		return nil, c.replaceSession(&Session{
			AccessToken:      resp.Token,
			RefreshToken:     resp.RefreshToken,
			AccessExpiresAt:  tokenExpiry(resp.Token),
			RefreshExpiresAt: tokenExpiry(resp.RefreshToken),
			User:             session.User,
		})
	})
	return err
}

// send performs one HTTP round trip and returns the status and raw body.
// A non-nil error means the call never completed.
func (c *Client) send(ctx context.Context, method, path string, body any, bearer string) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return 0, nil, errors.Wrap(err, "failed to marshal request body")
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerRequestID, uuid.NewString())
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	if c.companyID != "" {
		req.Header.Set(headerCompanyID, c.companyID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, errors.Wrap(err, "failed to read response body")
	}
	return resp.StatusCode, raw, nil
}

func (c *Client) accessToken() string {
	c.lock.RLock()
	defer c.lock.RUnlock()
	if c.session == nil {
		return ""
	}
	return c.session.AccessToken
}

func (c *Client) replaceSession(session *Session) error {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.session = session
	if err := c.store.Save(session); err != nil {
		return errors.Wrap(err, "[Client replaceSession] failed to persist session")
	}
	return nil
}

// destroySession drops the session everywhere. A non-empty reason fires
// the session-expired callback so the UI can route back to login.
func (c *Client) destroySession(reason string) error {
	c.lock.Lock()
	c.session = nil
	err := c.store.Clear()
	c.lock.Unlock()

	if reason != "" && c.onSessionExpired != nil {
		c.onSessionExpired(reason)
	}
	if err != nil {
		return errors.Wrap(err, "[Client destroySession] failed to clear session store")
	}
	return nil
}

func (c *Client) connectivityFailure(err error) *APIError {
	apiErr := &APIError{
		Kind:    interrors.KindConnectivityFailure,
		Message: interrors.KindConnectivityFailure.UserMessage(),
	}
	log.Debug().Err(err).Msg("Request failed before a response was received")
	c.notifier.Error(apiErr.Message)
	return apiErr
}

// classify maps a non-2xx status into the taxonomy, preferring the message
// carried by the response envelope over the kind's fallback.
func (c *Client) classify(status int, body []byte) *APIError {
	kind := interrors.KindForStatus(status)
	message := envelopeMessage(body)
	if message == "" {
		message = kind.UserMessage()
	}
	return &APIError{Kind: kind, Status: status, Message: message}
}

func envelopeMessage(body []byte) string {
	var probe struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return ""
	}
	return probe.Message
}

func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}
