package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lazuardi12345/Gadai-CG-sub001/internal/client/models"
	"github.com/lazuardi12345/Gadai-CG-sub001/internal/common"
)

// tokenBox is a mutable TokenSource.
type tokenBox struct {
	mu    sync.Mutex
	token string
}

func (b *tokenBox) Token() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.token
}

func (b *tokenBox) set(token string) {
	b.mu.Lock()
	b.token = token
	b.mu.Unlock()
}

// fakeAPI records the Authorization header of every request it serves.
type fakeAPI struct {
	mu    sync.Mutex
	auths []string

	notificationsBody string
	status            int
}

func (f *fakeAPI) record(r *http.Request) {
	f.mu.Lock()
	f.auths = append(f.auths, r.Header.Get(common.AuthorizationHeaderName))
	f.mu.Unlock()
}

func (f *fakeAPI) lastAuth() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.auths) == 0 {
		return "<none>"
	}
	return f.auths[len(f.auths)-1]
}

func (f *fakeAPI) router() http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			f.record(r)
			if f.status != 0 {
				w.WriteHeader(f.status)
				_, _ = io.WriteString(w, `{"message":"nope"}`)
				return
			}
			next.ServeHTTP(w, r)
		})
	})
	r.Post(PathLogin, func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Password != "rahasia" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = io.WriteString(w, `{"token":"tok123","user":{"id":1,"name":"Ayu","role":"HM"}}`)
	})
	r.Post(PathLogout, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Get(PathPing, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"status":"ok"}`)
	})
	for _, p := range []string{"/notifications", "/checker/notifications", "/petugas/notifications"} {
		r.Get(p, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, f.notificationsBody)
		})
	}
	return r
}

func newTestClient(t *testing.T, api *fakeAPI, tokens TokenSource) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(api.router())
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL+"/", tokens, 5*time.Second)
}

func TestAuthorizationHeader(t *testing.T) {
	v, ok := AuthorizationHeader("tok123")
	assert.True(t, ok)
	assert.Equal(t, "Bearer tok123", v)

	_, ok = AuthorizationHeader("")
	assert.False(t, ok)
}

func TestTransport_ReadsTokenAtDispatch(t *testing.T) {
	api := &fakeAPI{notificationsBody: `[]`}
	box := &tokenBox{}
	c := newTestClient(t, api, box)
	ctx := context.Background()

	require.NoError(t, c.Ping(ctx))
	assert.Equal(t, "", api.lastAuth(), "no token, no header")

	box.set("tok123")
	require.NoError(t, c.Ping(ctx))
	assert.Equal(t, "Bearer tok123", api.lastAuth())

	box.set("")
	require.NoError(t, c.Ping(ctx))
	assert.Equal(t, "", api.lastAuth(), "signed out, header gone")
}

func TestTransport_OverridesCallerHeaderAndAddsRequestID(t *testing.T) {
	var seen http.Header
	base := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		seen = r.Header.Clone()
		return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody, Request: r}, nil
	})
	tr := &bearerTransport{base: base, tokens: &tokenBox{}}

	req, err := http.NewRequest(http.MethodGet, "http://example.invalid/x", nil)
	require.NoError(t, err)
	req.Header.Set(common.AuthorizationHeaderName, "Bearer stale")

	_, err = tr.RoundTrip(req)
	require.NoError(t, err)
	assert.Empty(t, seen.Get(common.AuthorizationHeaderName))
	assert.NotEmpty(t, seen.Get(common.RequestIDHeaderName))
	assert.Equal(t, "Bearer stale", req.Header.Get(common.AuthorizationHeaderName), "caller's request is not mutated")
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestLogin_Success(t *testing.T) {
	c := newTestClient(t, &fakeAPI{}, &tokenBox{})

	u, tok, err := c.Login(context.Background(), "ayu", []byte("rahasia"))
	require.NoError(t, err)
	assert.Equal(t, "tok123", tok)
	assert.Equal(t, models.ID("1"), u.ID)
	assert.Equal(t, models.Role("HM"), u.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	c := newTestClient(t, &fakeAPI{}, &tokenBox{})

	_, _, err := c.Login(context.Background(), "ayu", []byte("salah"))
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogout_SendsBearer(t *testing.T) {
	api := &fakeAPI{}
	c := newTestClient(t, api, &tokenBox{token: "tok123"})

	require.NoError(t, c.Logout(context.Background()))
	assert.Equal(t, "Bearer tok123", api.lastAuth())
}

func TestNotifications_ArrayAndEnvelope(t *testing.T) {
	api := &fakeAPI{notificationsBody: `[{"id":5,"title":"Gadai baru"}]`}
	c := newTestClient(t, api, &tokenBox{})

	items, err := c.Notifications(context.Background(), "/checker/notifications")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.ID("5"), items[0].ID)

	api.notificationsBody = `{"data":[{"id":"9"},{"id":5}]}`
	items, err = c.Notifications(context.Background(), "/notifications")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, models.ID("9"), items[0].ID)

	api.notificationsBody = `{"data":"oops"}`
	_, err = c.Notifications(context.Background(), "/notifications")
	require.ErrorIs(t, err, ErrInvalidAnswer)
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrUnauthorized},
		{http.StatusBadGateway, ErrUnavailable},
		{http.StatusServiceUnavailable, ErrUnavailable},
		{http.StatusGatewayTimeout, ErrUnavailable},
	}
	for _, tt := range tests {
		c := newTestClient(t, &fakeAPI{status: tt.status}, &tokenBox{})
		require.ErrorIs(t, c.Ping(context.Background()), tt.want, "status %d", tt.status)
	}

	c := newTestClient(t, &fakeAPI{status: http.StatusInternalServerError}, &tokenBox{})
	err := c.Ping(context.Background())
	require.ErrorContains(t, err, "api error: status 500")
	require.False(t, errors.Is(err, ErrUnavailable))
}

func TestTransportFailure_IsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewHTTPClient(url, &tokenBox{}, time.Second)
	require.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}
