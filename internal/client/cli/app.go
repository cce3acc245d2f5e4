package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/lazuardi12345/Gadai-CG-sub001/internal/client/access"
	"github.com/lazuardi12345/Gadai-CG-sub001/internal/client/client"
	"github.com/lazuardi12345/Gadai-CG-sub001/internal/client/config"
	"github.com/lazuardi12345/Gadai-CG-sub001/internal/client/credentials"
	"github.com/lazuardi12345/Gadai-CG-sub001/internal/client/notify"
	"github.com/lazuardi12345/Gadai-CG-sub001/internal/client/services"
	"github.com/lazuardi12345/Gadai-CG-sub001/internal/client/session"
	"github.com/lazuardi12345/Gadai-CG-sub001/internal/filex"
	"github.com/lazuardi12345/Gadai-CG-sub001/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// pingTimeout bounds a single liveness probe.
const pingTimeout = 3 * time.Second

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	session     *session.Manager
	authService services.AuthService
	guard       *access.Guard
	supervisor  *notify.Supervisor
	routes      access.Routes
	reader      *bufio.Reader
	out         io.Writer

	mu   sync.Mutex
	mode Mode
	view string
}

// NewApp opens the local session store and wires the console against the
// API configured in c.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if err := filex.EnsureParentDir(c.StorePath); err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, c.StorePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.StorePath, "error", err)
		return nil, err
	}
	return newApp(c, logger, db, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, logger logging.Logger, db *sql.DB, in io.Reader, out io.Writer) *App {
	store := credentials.NewStore(db)
	sm := session.NewManager(store, logger.With("component", "session"))
	apiClient := client.NewHTTPClient(c.BaseURL, sm, c.RequestTimeout)

	return &App{
		config:      c,
		logger:      logger,
		db:          db,
		session:     sm,
		authService: services.NewAuthService(apiClient, sm, logger.With("component", "auth")),
		guard:       access.NewGuard(store, logger.With("component", "guard")),
		supervisor:  notify.NewSupervisor(apiClient, newTerminalAlerter(out), logger.With("component", "notify"), c.PollInterval),
		routes:      DefaultRoutes,
		reader:      bufio.NewReader(in),
		out:         out,
	}
}

// Run restores the stored session, starts background watchers and blocks in
// the REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.close(ctx)

	a.session.Hydrate(ctx)

	// The poller follows the signed-in role for the lifetime of the console.
	unsubscribe := a.session.Subscribe(func(s session.Snapshot) {
		a.supervisor.Apply(ctx, s.Role())
	})
	defer unsubscribe()
	a.supervisor.Apply(ctx, a.session.Snapshot().Role())
	defer a.supervisor.Stop()

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartOnlineStatusWatcher(watchCtx, a.config.PollInterval)

	printlnFn("Welcome to Gadai console (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) close(ctx context.Context) {
	if err := a.db.Close(); err != nil {
		a.logger.Error(ctx, "error closing database", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.Snapshot().IsAuthenticated
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.logger.Info(context.Background(), "switched mode", "mode", mode)
	}
}

func (a *App) getMode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setView(path string) {
	a.mu.Lock()
	a.view = path
	a.mu.Unlock()
}

func (a *App) getView() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.view
}

func (a *App) getStatus() string {
	var parts []string

	snap := a.session.Snapshot()
	if snap.User != nil {
		parts = append(parts, snap.User.Name, string(snap.User.Role))
	}
	if mode := a.getMode(); mode != "" {
		parts = append(parts, string(mode))
	}
	if state, _, ok := a.supervisor.State(); ok && state.HasUnseen {
		parts = append(parts, "new!")
	}

	s := strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// StartOnlineStatusWatcher probes the API every interval and flips the
// console between online and offline mode. It returns when ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = notify.DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.probe(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) probe(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := a.authService.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}
