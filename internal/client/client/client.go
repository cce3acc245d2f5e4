package client

import (
	"context"

	"github.com/lazuardi12345/Gadai-CG-sub001/internal/client/models"
)

// Client is the remote API surface the console core depends on.
type Client interface {
	Login(ctx context.Context, username string, password []byte) (models.User, string, error)
	Logout(ctx context.Context) error
	Notifications(ctx context.Context, path string) ([]models.Notification, error)
	Ping(ctx context.Context) error
}

// TokenSource yields the bearer token current at the moment of the call, or
// "" when nobody is signed in.
type TokenSource interface {
	Token() string
}
