// Package services contains application services for the Gadai console.
// This file defines the authentication service: remote sign-in that feeds
// the local session, best-effort remote sign-out, and a liveness probe.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lazuardi12345/Gadai-CG-sub001/internal/client/client"
	"github.com/lazuardi12345/Gadai-CG-sub001/internal/client/models"
	"github.com/lazuardi12345/Gadai-CG-sub001/internal/logging"
)

// RemoteLogoutTimeout bounds the best-effort remote logout in SignOut.
const RemoteLogoutTimeout = 2 * time.Second

// ErrEmptyCredentials is returned when username or password is blank.
var ErrEmptyCredentials = errors.New("username and password are required")

// AuthService defines authentication operations for the console.
//
// Contract:
//   - SignIn: authenticate against the API and open a local session.
//   - SignOut: tell the API (best effort) and always close the local session.
//   - Ping: check API liveness.
type AuthService interface {
	SignIn(ctx context.Context, username string, password []byte) (models.User, error)
	SignOut(ctx context.Context) error
	Ping(ctx context.Context) error
}

// Session is the subset of the session manager the service drives.
type Session interface {
	Login(ctx context.Context, user models.User, token string) error
	Logout(ctx context.Context) error
}

type authService struct {
	client        client.Client
	session       Session
	logger        logging.Logger
	logoutTimeout time.Duration
}

// NewAuthService constructs an AuthService bound to the given API client and
// session.
func NewAuthService(c client.Client, s Session, logger logging.Logger) AuthService {
	return &authService{client: c, session: s, logger: logger, logoutTimeout: RemoteLogoutTimeout}
}

// SignIn logs in remotely and stores the returned user and token in the
// session. On any failure the session is not touched.
func (a *authService) SignIn(ctx context.Context, username string, password []byte) (models.User, error) {
	if username == "" || len(password) == 0 {
		return models.User{}, ErrEmptyCredentials
	}

	user, token, err := a.client.Login(ctx, username, password)
	if err != nil {
		return models.User{}, fmt.Errorf("login error: %w", err)
	}

	if err := a.session.Login(ctx, user, token); err != nil {
		return models.User{}, fmt.Errorf("session error: %w", err)
	}
	return user.Normalized(), nil
}

// SignOut notifies the API and then clears the local session regardless of
// the API's answer. The remote call gets at most logoutTimeout and must go
// first, while the token is still attached. Only a local failure is
// returned.
func (a *authService) SignOut(ctx context.Context) error {
	remoteCtx, cancel := context.WithTimeout(ctx, a.logoutTimeout)
	err := a.client.Logout(remoteCtx)
	cancel()
	if err != nil {
		a.logger.Warn(ctx, "remote logout failed", "error", err)
	}
	return a.session.Logout(ctx)
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}
