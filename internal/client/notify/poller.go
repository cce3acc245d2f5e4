// Package notify watches role-specific notification feeds and raises a
// one-shot alert when a new item shows up.
//
// A Poller fetches once on Start and then on every tick. The first
// successful fetch only records a baseline; afterwards a different leading
// item raises exactly one alert and moves the baseline. Fetches are tagged
// with a generation: a completion that is not the latest issued, or that
// arrives after Stop, is dropped. Stop halts the ticker at once but lets
// in-flight requests finish on their own.
package notify

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lazuardi12345/Gadai-CG-sub001/internal/client/models"
	"github.com/lazuardi12345/Gadai-CG-sub001/internal/logging"
)

// DefaultInterval is the polling period used when none is configured.
const DefaultInterval = 5 * time.Second

// ErrAlreadyStarted is returned by a second Start on the same Poller.
var ErrAlreadyStarted = errors.New("poller already started")

// Fetcher reads a notification feed.
type Fetcher interface {
	Notifications(ctx context.Context, path string) ([]models.Notification, error)
}

// Alerter raises the audible/visual cue for a newly arrived notification.
type Alerter interface {
	Alert(ctx context.Context, role models.Role, n models.Notification)
}

// AlerterFunc adapts a function to Alerter.
type AlerterFunc func(ctx context.Context, role models.Role, n models.Notification)

func (f AlerterFunc) Alert(ctx context.Context, role models.Role, n models.Notification) {
	f(ctx, role, n)
}

// State is the observable state of one Poller. LastSeenID is "" until the
// baseline is set.
type State struct {
	LastSeenID models.ID
	HasUnseen  bool
	IsFetching bool
}

type Poller struct {
	id       string
	role     models.Role
	path     string
	interval time.Duration
	fetcher  Fetcher
	alerter  Alerter
	logger   logging.Logger

	mu          sync.Mutex
	state       State
	hasBaseline bool
	generation  uint64
	started     bool
	stopped     bool
	cancel      context.CancelFunc
	done        chan struct{}
}

// NewPoller creates a poller for role. A non-positive interval falls back to
// DefaultInterval.
func NewPoller(role models.Role, fetcher Fetcher, alerter Alerter, logger logging.Logger, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	role = models.NormalizeRole(role)
	id := uuid.NewString()
	return &Poller{
		id:       id,
		role:     role,
		path:     EndpointForRole(role),
		interval: interval,
		fetcher:  fetcher,
		alerter:  alerter,
		logger:   logger.With("poller", id, "role", role),
		done:     make(chan struct{}),
	}
}

func (p *Poller) Role() models.Role { return p.role }

// State returns a copy of the current state.
func (p *Poller) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Acknowledge marks pending alerts as seen. The baseline is kept.
func (p *Poller) Acknowledge() {
	p.mu.Lock()
	p.state.HasUnseen = false
	p.mu.Unlock()
}

// Consume returns the current state and acknowledges it in one step, so an
// alert landing in between is never cleared unseen.
func (p *Poller) Consume() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := p.state
	p.state.HasUnseen = false
	return s
}

// Start issues the first fetch immediately and then one per interval until
// Stop or until ctx is done. Fetches run with ctx, not with the ticker's
// lifetime, so Stop does not abort them.
func (p *Poller) Start(ctx context.Context) error {
	p.mu.Lock()
	if p.started || p.stopped {
		p.mu.Unlock()
		return ErrAlreadyStarted
	}
	p.started = true
	loopCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.mu.Unlock()

	p.logger.Debug(ctx, "poller started", "path", p.path, "interval", p.interval)

	p.issue(ctx)
	go p.loop(loopCtx, ctx)
	return nil
}

// Stop cancels the ticker and waits for the loop to exit. Completions of
// fetches still in flight are discarded. Stop is idempotent.
func (p *Poller) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	started := p.started
	if p.cancel != nil {
		p.cancel()
	}
	p.mu.Unlock()

	if started {
		<-p.done
	}
	p.logger.Debug(context.Background(), "poller stopped")
}

func (p *Poller) loop(loopCtx, fetchCtx context.Context) {
	defer close(p.done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.issue(fetchCtx)
		case <-loopCtx.Done():
			return
		}
	}
}

// issue launches one fetch without waiting for earlier ones to finish. A
// fetch may take at most one interval: by then a newer one has superseded it.
func (p *Poller) issue(ctx context.Context) {
	gen, ok := p.begin()
	if !ok {
		return
	}
	go func() {
		fetchCtx, cancel := context.WithTimeout(ctx, p.interval)
		defer cancel()
		items, err := p.fetcher.Notifications(fetchCtx, p.path)
		p.finish(ctx, gen, items, err)
	}()
}

func (p *Poller) begin() (uint64, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stopped {
		return 0, false
	}
	p.generation++
	p.state.IsFetching = true
	return p.generation, true
}

func (p *Poller) finish(ctx context.Context, gen uint64, items []models.Notification, err error) {
	p.mu.Lock()
	if p.stopped || gen != p.generation {
		latest, stopped := p.generation, p.stopped
		p.mu.Unlock()
		p.logger.Debug(ctx, "dropping stale poll result", "generation", gen, "latest", latest, "stopped", stopped)
		return
	}
	p.state.IsFetching = false

	if err != nil {
		p.mu.Unlock()
		if errors.Is(err, context.Canceled) {
			p.logger.Debug(ctx, "poll cancelled", "generation", gen)
			return
		}
		p.logger.Warn(ctx, "poll failed", "generation", gen, "error", err)
		return
	}

	leading, ok := mostRecent(items)
	if !ok {
		p.mu.Unlock()
		return
	}

	if !p.hasBaseline {
		p.hasBaseline = true
		p.state.LastSeenID = leading.ID
		p.mu.Unlock()
		p.logger.Debug(ctx, "baseline set", "id", leading.ID)
		return
	}

	if leading.ID == p.state.LastSeenID {
		p.mu.Unlock()
		return
	}

	p.state.LastSeenID = leading.ID
	p.state.HasUnseen = true
	p.mu.Unlock()

	p.logger.Info(ctx, "new notification", "id", leading.ID)
	if p.alerter != nil {
		p.alerter.Alert(ctx, p.role, leading)
	}
}
