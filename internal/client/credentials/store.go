// Package credentials owns the persisted form of the session: the signed-in
// user record and the bearer token, kept under one canonical pair of keys.
// Every reader of "who is signed in" that goes to storage (the session
// container at hydration, the route guard on each navigation) goes through
// Store so the two can never disagree about where the record lives.
package credentials

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lazuardi12345/Gadai-CG-sub001/internal/client/models"
	"github.com/lazuardi12345/Gadai-CG-sub001/internal/client/repositories/metadata"
	"github.com/lazuardi12345/Gadai-CG-sub001/internal/common"
	"github.com/lazuardi12345/Gadai-CG-sub001/internal/dbx"
)

// Canonical storage keys.
const (
	UserKey  = "auth.user"
	TokenKey = "auth.token"
)

// ErrCorrupted reports a persisted record that is partial or unreadable.
var ErrCorrupted = errors.New("stored credentials are corrupted")

// Credentials is the persisted session. The zero value means "nobody".
type Credentials struct {
	User  *models.User
	Token string
}

// Empty reports whether nothing is stored.
func (c Credentials) Empty() bool {
	return c.User == nil && c.Token == ""
}

// Store reads and writes Credentials atomically.
type Store struct {
	db   *sql.DB
	repo metadata.Repository
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db, repo: metadata.NewSQLiteRepository(db)}
}

// Load returns the stored credentials. Nothing stored yields the zero value
// and a nil error; a lone key, an empty token or an undecodable user record
// yields ErrCorrupted.
func (s *Store) Load(ctx context.Context) (Credentials, error) {
	rawUser, hasUser, err := s.get(ctx, UserKey)
	if err != nil {
		return Credentials{}, err
	}
	rawToken, hasToken, err := s.get(ctx, TokenKey)
	if err != nil {
		return Credentials{}, err
	}

	if !hasUser && !hasToken {
		return Credentials{}, nil
	}
	if !hasUser || len(rawToken) == 0 {
		return Credentials{}, fmt.Errorf("%w: user present=%t, token present=%t", ErrCorrupted, hasUser, len(rawToken) > 0)
	}

	user, err := decodeUser(rawUser)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{User: user, Token: string(rawToken)}, nil
}

// LoadUser returns the stored user record, or nil when nobody is stored.
// A user without a token does not count as signed in: it yields
// ErrCorrupted like Load does.
func (s *Store) LoadUser(ctx context.Context) (*models.User, error) {
	c, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return c.User, nil
}

// Save writes both keys in one transaction.
func (s *Store) Save(ctx context.Context, user models.User, token string) error {
	if token == "" {
		return fmt.Errorf("save credentials: empty token")
	}
	rawUser, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, UserKey, rawUser); err != nil {
			return err
		}
		return repo.Set(ctx, TokenKey, []byte(token))
	})
}

// Clear removes both keys in one transaction. The token is blanked first
// in a separate write, so a failed removal still leaves a record that
// authenticates nobody.
func (s *Store) Clear(ctx context.Context) error {
	revokeErr := s.repo.Set(ctx, TokenKey, []byte{})

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return metadata.NewSQLiteRepository(tx).Delete(ctx, UserKey, TokenKey)
	})
	if err != nil {
		if revokeErr != nil {
			return errors.Join(err, fmt.Errorf("revoke token: %w", revokeErr))
		}
		return err
	}
	return nil
}

func (s *Store) get(ctx context.Context, key string) ([]byte, bool, error) {
	v, err := s.repo.Get(ctx, key)
	if errors.Is(err, common.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

func decodeUser(raw []byte) (*models.User, error) {
	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupted, err)
	}
	if u.ID == "" && u.Name == "" && u.Role == "" {
		return nil, fmt.Errorf("%w: empty user record", ErrCorrupted)
	}
	u = u.Normalized()
	return &u, nil
}
