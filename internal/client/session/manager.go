package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/lazuardi12345/Gadai-CG-sub001/internal/client/access"
	"github.com/lazuardi12345/Gadai-CG-sub001/internal/client/credentials"
	"github.com/lazuardi12345/Gadai-CG-sub001/internal/client/models"
	"github.com/lazuardi12345/Gadai-CG-sub001/internal/logging"
)

// ErrInvalidCredentials rejects a Login without a user or a token.
var ErrInvalidCredentials = errors.New("login requires a user and a token")

// Store is the persistence the Manager mirrors its state into.
type Store interface {
	Load(ctx context.Context) (credentials.Credentials, error)
	Save(ctx context.Context, user models.User, token string) error
	Clear(ctx context.Context) error
}

// Snapshot is a read-only view of the session.
// IsAuthenticated == (User != nil && Token != "") always holds.
type Snapshot struct {
	User            *models.User
	Token           string
	IsAuthenticated bool
	Loading         bool
}

// Role returns the signed-in user's role, or "" when nobody is signed in.
func (s Snapshot) Role() models.Role {
	if s.User == nil {
		return ""
	}
	return s.User.Role
}

type Manager struct {
	store  Store
	logger logging.Logger

	mu   sync.RWMutex
	snap Snapshot

	hydrate sync.Once

	// pubMu keeps notifications in commit order.
	pubMu  sync.Mutex
	subMu  sync.Mutex
	nextID int
	subs   map[int]func(Snapshot)
}

// NewManager returns a Manager in the loading state. Call Hydrate once at
// startup.
func NewManager(store Store, logger logging.Logger) *Manager {
	return &Manager{
		store:  store,
		logger: logger,
		snap:   Snapshot{Loading: true},
		subs:   make(map[int]func(Snapshot)),
	}
}

// Hydrate restores the session from the store. It runs at most once; later
// calls are no-ops. Unreadable stored data leaves the session signed out and
// is wiped. Loading is false afterwards whatever the outcome.
func (m *Manager) Hydrate(ctx context.Context) {
	m.hydrate.Do(func() {
		m.mu.Lock()
		next := Snapshot{}

		creds, err := m.store.Load(ctx)
		switch {
		case errors.Is(err, credentials.ErrCorrupted):
			m.logger.Warn(ctx, "discarding corrupted stored session", "error", err)
			if cerr := m.store.Clear(ctx); cerr != nil {
				m.logger.Error(ctx, "failed to clear corrupted session", "error", cerr)
			}
		case err != nil:
			m.logger.Error(ctx, "failed to read stored session", "error", err)
		case !creds.Empty():
			u := creds.User.Normalized()
			next = authenticated(&u, creds.Token)
			m.logger.Info(ctx, "session restored", "user_id", u.ID, "role", u.Role)
		}

		m.commit(next)
	})
}

// Login signs user in with token. The role is normalized, the pair is
// persisted and then made visible, all under the write lock. If persisting
// fails the session is left untouched.
func (m *Manager) Login(ctx context.Context, user models.User, token string) error {
	if token == "" {
		return ErrInvalidCredentials
	}
	u := user.Normalized()

	m.mu.Lock()
	if err := m.store.Save(ctx, u, token); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("persist session: %w", err)
	}
	m.logger.Info(ctx, "signed in", "user_id", u.ID, "role", u.Role)
	m.commit(authenticated(&u, token))
	return nil
}

// Logout signs out. The in-memory session is always cleared. An error means
// the stored keys could not be removed; the store has blanked the token
// before trying, so the stored record no longer authenticates either.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	err := m.store.Clear(ctx)
	m.logger.Info(ctx, "signed out")
	m.commit(Snapshot{})

	if err != nil {
		return fmt.Errorf("clear stored session: %w", err)
	}
	return nil
}

// HasRole reports whether the signed-in user's role is admitted by allowed.
// Without a user, or with a user lacking a role, it is false. With a user,
// an empty allowed set admits.
func (m *Manager) HasRole(allowed ...models.Role) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.snap.User == nil || m.snap.User.Role == "" {
		return false
	}
	return access.Admit(allowed, m.snap.User.Role)
}

// Snapshot returns the current session.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snap
}

// Token returns the current bearer token, "" when signed out.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snap.Token
}

// Subscribe registers fn to receive the snapshot after every change, in
// commit order. fn may read the Manager but must not call Login or Logout.
func (m *Manager) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	m.subMu.Lock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	m.subMu.Unlock()

	return func() {
		m.subMu.Lock()
		delete(m.subs, id)
		m.subMu.Unlock()
	}
}

// commit installs next and notifies subscribers. The caller holds m.mu;
// commit releases it.
func (m *Manager) commit(next Snapshot) {
	m.snap = next
	m.pubMu.Lock()
	m.mu.Unlock()
	defer m.pubMu.Unlock()

	m.publish(next)
}

func (m *Manager) publish(s Snapshot) {
	m.subMu.Lock()
	fns := make([]func(Snapshot), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	m.subMu.Unlock()

	for _, fn := range fns {
		fn(s)
	}
}

func authenticated(u *models.User, token string) Snapshot {
	return Snapshot{User: u, Token: token, IsAuthenticated: u != nil && token != ""}
}
