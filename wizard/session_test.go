package wizard

import (
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/nstehr/shiny/model"
	"github.com/nstehr/shiny/plan"
)

func newSession(t *testing.T) *Session {
	t.Helper()
	p, err := plan.New(cat)
	if err != nil {
		t.Fatalf("plan.New: %v", err)
	}
	return NewSession(cat, p, DefaultState(cat))
}

func TestSession(t *testing.T) {
	s := newSession(t)
	if _, err := uuid.Parse(s.ID); err != nil {
		t.Errorf("session id %q: %v", s.ID, err)
	}

	before := s.State()
	if _, err := s.Dispatch(bogusAction{}); err == nil {
		t.Fatal("expected error")
	}
	if s.State().PlayerCount != before.PlayerCount {
		t.Error("failed dispatch changed state")
	}

	gs, err := s.Dispatch(SetPlayerCount{Count: 1})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if gs.SetupCardID != model.SetupFlyingSolo || s.State().SetupCardID != model.SetupFlyingSolo {
		t.Errorf("card = %q, want flying_solo", s.State().SetupCardID)
	}
	if _, ok := s.Plan().Step(model.StepGameLengthTokens); !ok {
		t.Error("solo plan is missing game-length-tokens")
	}

	link, err := s.ShareLink()
	if err != nil {
		t.Fatalf("ShareLink: %v", err)
	}
	shared, err := DecodeShareLink(link, cat)
	if err != nil {
		t.Fatalf("DecodeShareLink: %v", err)
	}
	if shared.PlayerCount != 1 || shared.SetupCardID != model.SetupFlyingSolo {
		t.Errorf("shared state = %d players %q", shared.PlayerCount, shared.SetupCardID)
	}
}

func TestSessionValidatesInitialState(t *testing.T) {
	p, err := plan.New(cat)
	if err != nil {
		t.Fatal(err)
	}
	gs := DefaultState(cat)
	gs.SetupCardID = model.SetupFlyingSolo
	s := NewSession(cat, p, gs)
	if got := s.State().SetupCardID; got != model.SetupStandard {
		t.Errorf("card = %q, want standard", got)
	}
}

func TestSessionConcurrentDispatch(t *testing.T) {
	s := newSession(t)
	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Dispatch(SetPlayerCount{Count: i%5 + 1}); err != nil {
				t.Error(err)
			}
			_ = s.State()
		}()
	}
	wg.Wait()
	gs := s.State()
	if gs.PlayerCount < model.MinPlayers || gs.PlayerCount > model.MaxPlayers {
		t.Errorf("player count = %d", gs.PlayerCount)
	}
	if len(gs.PlayerNames) != gs.PlayerCount {
		t.Errorf("names %v for %d players", gs.PlayerNames, gs.PlayerCount)
	}
}
