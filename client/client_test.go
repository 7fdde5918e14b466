package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/victorucama-create/nexasuite-erp/client"
	"github.com/victorucama-create/nexasuite-erp/erp"
	"github.com/victorucama-create/nexasuite-erp/internal/config"
	interrors "github.com/victorucama-create/nexasuite-erp/internal/errors"
	"github.com/victorucama-create/nexasuite-erp/server"
	fakeuserrepo "github.com/victorucama-create/nexasuite-erp/users/repofake"
)

const (
	demoEmail    = "admin@nexasuite.com"
	demoPassword = "Nexa@2025Master!"
)

// recordingNotifier captures every surfaced message
type recordingNotifier struct {
	lock      sync.Mutex
	successes []string
	failures  []string
}

func (n *recordingNotifier) Success(message string) {
	n.lock.Lock()
	defer n.lock.Unlock()
	n.successes = append(n.successes, message)
}

func (n *recordingNotifier) Error(message string) {
	n.lock.Lock()
	defer n.lock.Unlock()
	n.failures = append(n.failures, message)
}

// startAPI runs the real server over httptest for end-to-end gateway tests
func startAPI(t *testing.T) *httptest.Server {
	t.Helper()
	srv, err := server.New(config.New(), fakeuserrepo.NewFakeUserRepo(), erp.NewMemoryRepos())
	require.NoError(t, err)
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)
	return ts
}

func TestLoginCreatesSession(t *testing.T) {
	ts := startAPI(t)
	c, err := client.New(ts.URL)
	require.NoError(t, err)

	user, err := c.Login(context.Background(), demoEmail, demoPassword)

	require.NoError(t, err)
	require.Equal(t, demoEmail, user.Email)

	session := c.Session()
	require.NotNil(t, session)
	require.NotEmpty(t, session.AccessToken)
	require.NotEmpty(t, session.RefreshToken)
	require.True(t, session.RefreshExpiresAt.After(session.AccessExpiresAt))
}

func TestLoginWrongPassword(t *testing.T) {
	ts := startAPI(t)
	notifier := &recordingNotifier{}
	c, err := client.New(ts.URL, client.WithNotifier(notifier))
	require.NoError(t, err)

	_, err = c.Login(context.Background(), demoEmail, "wrong-password")

	apiErr := &client.APIError{}
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, interrors.KindInvalidCredentials, apiErr.Kind)
	require.Equal(t, "Credenciais inválidas", apiErr.Message)
	require.Nil(t, c.Session())
	require.Equal(t, []string{"Credenciais inválidas"}, notifier.failures)
}

func TestAuthenticatedCallsCarrySession(t *testing.T) {
	ts := startAPI(t)
	c, err := client.New(ts.URL)
	require.NoError(t, err)
	_, err = c.Login(context.Background(), demoEmail, demoPassword)
	require.NoError(t, err)

	user, err := c.Me(context.Background())

	require.NoError(t, err)
	require.Equal(t, demoEmail, user.Email)
}

func TestLogoutDestroysSession(t *testing.T) {
	ts := startAPI(t)
	c, err := client.New(ts.URL)
	require.NoError(t, err)
	_, err = c.Login(context.Background(), demoEmail, demoPassword)
	require.NoError(t, err)

	require.NoError(t, c.Logout(context.Background()))
	require.Nil(t, c.Session())
}

// fakeBackend lets tests script the 401/refresh/retry sequence precisely
type fakeBackend struct {
	refreshCalls atomic.Int64
	dataCalls    atomic.Int64

	refreshStatus int    // status returned by the refresh endpoint
	issuedBearer  string // access token the refresh endpoint hands out
	validBearer   string // bearer accepted by the data endpoint
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		b.refreshCalls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		if b.refreshStatus != http.StatusOK {
			w.WriteHeader(b.refreshStatus)
			json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Refresh token inválido"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success":      true,
			"token":        b.issuedBearer,
			"refreshToken": "rotated-refresh",
		})
	})
	mux.HandleFunc("GET /api/data", func(w http.ResponseWriter, r *http.Request) {
		b.dataCalls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		if r.Header.Get("Authorization") != "Bearer "+b.validBearer {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Token inválido ou expirado"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": []int{1, 2, 3}})
	})
	return mux
}

func seedSession(t *testing.T) client.SessionStore {
	t.Helper()
	store := client.NewMemorySessionStore()
	require.NoError(t, store.Save(&client.Session{
		AccessToken:  "stale-access",
		RefreshToken: "still-good-refresh",
	}))
	return store
}

func TestExpiredAccessTokenIsRecoveredOnce(t *testing.T) {
	backend := &fakeBackend{refreshStatus: http.StatusOK, issuedBearer: "fresh-access", validBearer: "fresh-access"}
	ts := httptest.NewServer(backend.handler())
	t.Cleanup(ts.Close)

	c, err := client.New(ts.URL, client.WithSessionStore(seedSession(t)))
	require.NoError(t, err)

	var resp struct {
		Data []int `json:"data"`
	}
	err = c.Get(context.Background(), "/api/data", &resp)

	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, resp.Data)
	require.Equal(t, int64(1), backend.refreshCalls.Load())
	require.Equal(t, int64(2), backend.dataCalls.Load()) // original + one retry
	require.Equal(t, "fresh-access", c.Session().AccessToken)
	require.Equal(t, "rotated-refresh", c.Session().RefreshToken)
}

func TestConcurrent401sShareOneRefresh(t *testing.T) {
	backend := &fakeBackend{refreshStatus: http.StatusOK, issuedBearer: "fresh-access", validBearer: "fresh-access"}
	ts := httptest.NewServer(backend.handler())
	t.Cleanup(ts.Close)

	c, err := client.New(ts.URL, client.WithSessionStore(seedSession(t)))
	require.NoError(t, err)

	const callers = 8
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = c.Get(context.Background(), "/api/data", nil)
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
	}
	require.Equal(t, int64(1), backend.refreshCalls.Load())
}

func TestRefreshFailureIsTerminal(t *testing.T) {
	backend := &fakeBackend{refreshStatus: http.StatusUnauthorized, validBearer: "never-issued"}
	ts := httptest.NewServer(backend.handler())
	t.Cleanup(ts.Close)

	var expiredReason string
	c, err := client.New(ts.URL,
		client.WithSessionStore(seedSession(t)),
		client.WithOnSessionExpired(func(reason string) { expiredReason = reason }),
	)
	require.NoError(t, err)

	err = c.Get(context.Background(), "/api/data", nil)

	require.ErrorIs(t, err, client.ErrSessionExpired)
	require.Equal(t, "session_expired", expiredReason)
	require.Nil(t, c.Session())
	require.Equal(t, int64(1), backend.refreshCalls.Load())
	require.Equal(t, int64(1), backend.dataCalls.Load()) // no retry after failed refresh
}

func TestRetryIsNeverChained(t *testing.T) {
	// Refresh succeeds but the backend keeps rejecting the data call; the
	// second 401 must be terminal rather than re-entering the refresh.
	backend := &fakeBackend{refreshStatus: http.StatusOK, issuedBearer: "fresh-but-unaccepted", validBearer: "something-else-entirely"}
	ts := httptest.NewServer(backend.handler())
	t.Cleanup(ts.Close)

	c, err := client.New(ts.URL, client.WithSessionStore(seedSession(t)))
	require.NoError(t, err)

	err = c.Get(context.Background(), "/api/data", nil)

	apiErr := &client.APIError{}
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, interrors.KindExpiredOrInvalidCredential, apiErr.Kind)
	require.Equal(t, int64(1), backend.refreshCalls.Load())
	require.Equal(t, int64(2), backend.dataCalls.Load())
}

func TestMissingRefreshTokenFailsWithoutNetworkCall(t *testing.T) {
	backend := &fakeBackend{refreshStatus: http.StatusOK, issuedBearer: "fresh-access", validBearer: "fresh-access"}
	ts := httptest.NewServer(backend.handler())
	t.Cleanup(ts.Close)

	store := client.NewMemorySessionStore()
	require.NoError(t, store.Save(&client.Session{AccessToken: "stale-access"}))

	c, err := client.New(ts.URL, client.WithSessionStore(store))
	require.NoError(t, err)

	err = c.Get(context.Background(), "/api/data", nil)

	require.ErrorIs(t, err, client.ErrSessionExpired)
	require.Equal(t, int64(0), backend.refreshCalls.Load())
}

func TestMutatingSuccessSurfacesMessage(t *testing.T) {
	ts := startAPI(t)
	notifier := &recordingNotifier{}
	c, err := client.New(ts.URL, client.WithNotifier(notifier))
	require.NoError(t, err)
	_, err = c.Login(context.Background(), demoEmail, demoPassword)
	require.NoError(t, err)

	err = c.Post(context.Background(), "/api/crm/customers", map[string]string{
		"name":  "Ana Machava",
		"email": "ana@email.com",
	}, nil)

	require.NoError(t, err)
	require.Equal(t, []string{"Cliente criado com sucesso"}, notifier.successes)

	// A read never surfaces a notification, even when an envelope message
	// could be present
	require.NoError(t, c.Get(context.Background(), "/api/crm/customers", nil))
	require.Equal(t, []string{"Cliente criado com sucesso"}, notifier.successes)
}

func TestErrorStatusIsClassified(t *testing.T) {
	ts := startAPI(t)
	notifier := &recordingNotifier{}
	c, err := client.New(ts.URL, client.WithNotifier(notifier))
	require.NoError(t, err)
	_, err = c.Login(context.Background(), demoEmail, demoPassword)
	require.NoError(t, err)

	err = c.Get(context.Background(), "/api/no/such/route", nil)

	apiErr := &client.APIError{}
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, interrors.KindNotFound, apiErr.Kind)
	require.Equal(t, http.StatusNotFound, apiErr.Status)
	require.Equal(t, "Rota não encontrada", apiErr.Message)
	require.Equal(t, []string{"Rota não encontrada"}, notifier.failures)
}

func TestConnectivityFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	ts.Close() // nothing is listening anymore

	c, err := client.New(ts.URL)
	require.NoError(t, err)

	err = c.Get(context.Background(), "/api/health", nil)

	apiErr := &client.APIError{}
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, interrors.KindConnectivityFailure, apiErr.Kind)
	require.Zero(t, apiErr.Status)
}

func TestFileSessionStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nexasuite", "session.json")
	store := client.NewFileSessionStore(path)

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Nil(t, loaded)

	session := &client.Session{AccessToken: "access", RefreshToken: "refresh"}
	require.NoError(t, store.Save(session))

	loaded, err = store.Load()
	require.NoError(t, err)
	require.Equal(t, session, loaded)

	require.NoError(t, store.Clear())
	loaded, err = store.Load()
	require.NoError(t, err)
	require.Nil(t, loaded)
}

func TestSessionSurvivesRestart(t *testing.T) {
	ts := startAPI(t)
	path := filepath.Join(t.TempDir(), "session.json")

	first, err := client.New(ts.URL, client.WithSessionStore(client.NewFileSessionStore(path)))
	require.NoError(t, err)
	_, err = first.Login(context.Background(), demoEmail, demoPassword)
	require.NoError(t, err)

	// A new client over the same store rehydrates the session
	second, err := client.New(ts.URL, client.WithSessionStore(client.NewFileSessionStore(path)))
	require.NoError(t, err)

	user, err := second.Me(context.Background())
	require.NoError(t, err)
	require.Equal(t, demoEmail, user.Email)
}
