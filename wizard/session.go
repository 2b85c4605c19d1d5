package wizard

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/nstehr/shiny/catalog"
	"github.com/nstehr/shiny/model"
	"github.com/nstehr/shiny/plan"
)

// Session holds the current state snapshot of one wizard. Each dispatch
// replaces the snapshot wholesale, so State never returns a half-applied
// transition.
type Session struct {
	ID string

	mu      sync.Mutex
	cat     *catalog.Catalog
	planner *plan.Planner
	state   model.GameState
}

// NewSession starts a session at initial, which is validated first.
func NewSession(cat *catalog.Catalog, planner *plan.Planner, initial model.GameState) *Session {
	s := &Session{
		ID:      uuid.NewString(),
		cat:     cat,
		planner: planner,
		state:   Validate(initial, cat),
	}
	slog.Info("session started", "id", s.ID, "players", s.state.PlayerCount, "setupCard", s.state.SetupCardID)
	return s
}

// State returns the current snapshot.
func (s *Session) State() model.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies a and returns the new snapshot. On error the state is
// left unchanged.
func (s *Session) Dispatch(a Action) (model.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := Dispatch(s.state, s.cat, a)
	if err != nil {
		slog.Warn("action rejected", "session", s.ID, "err", err)
		return s.state, err
	}
	s.state = next
	return next, nil
}

// Plan computes the wizard plan for the current snapshot.
func (s *Session) Plan() plan.Plan {
	return s.planner.Build(s.State())
}

// ShareLink encodes the current snapshot.
func (s *Session) ShareLink() (string, error) {
	return EncodeShareLink(s.State())
}
