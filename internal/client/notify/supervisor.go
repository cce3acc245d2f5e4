package notify

import (
	"context"
	"sync"
	"time"

	"github.com/lazuardi12345/Gadai-CG-sub001/internal/client/models"
	"github.com/lazuardi12345/Gadai-CG-sub001/internal/logging"
)

// Supervisor keeps exactly one Poller alive for the signed-in role. A role
// change tears the old poller down and starts a fresh one, which means a
// fresh baseline.
type Supervisor struct {
	fetcher  Fetcher
	alerter  Alerter
	logger   logging.Logger
	interval time.Duration

	mu      sync.Mutex
	current *Poller
}

func NewSupervisor(fetcher Fetcher, alerter Alerter, logger logging.Logger, interval time.Duration) *Supervisor {
	return &Supervisor{fetcher: fetcher, alerter: alerter, logger: logger, interval: interval}
}

// Apply follows role: same role keeps the running poller, a different one
// replaces it, "" stops polling.
func (s *Supervisor) Apply(ctx context.Context, role models.Role) {
	role = models.NormalizeRole(role)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil && s.current.Role() == role {
		return
	}
	if s.current != nil {
		s.current.Stop()
		s.current = nil
	}
	if role == "" {
		return
	}

	p := NewPoller(role, s.fetcher, s.alerter, s.logger, s.interval)
	if err := p.Start(ctx); err != nil {
		s.logger.Error(ctx, "failed to start poller", "role", role, "error", err)
		return
	}
	s.current = p
}

// State reports the running poller's state; ok is false when idle.
func (s *Supervisor) State() (state State, role models.Role, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return State{}, "", false
	}
	return s.current.State(), s.current.Role(), true
}

// Consume returns the running poller's state and acknowledges it
// atomically; ok is false when idle.
func (s *Supervisor) Consume() (state State, role models.Role, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return State{}, "", false
	}
	return s.current.Consume(), s.current.Role(), true
}

// Stop halts the running poller.
func (s *Supervisor) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil {
		s.current.Stop()
		s.current = nil
	}
}
