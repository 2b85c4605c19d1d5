package wizard

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nstehr/shiny/catalog"
	"github.com/nstehr/shiny/model"
)

const defaultPlayers = 4

// DefaultState is the state of a fresh session: four captains, the standard
// setup card, no story and the catalog's default expansions.
func DefaultState(cat *catalog.Catalog) model.GameState {
	return model.GameState{
		PlayerCount:      defaultPlayers,
		PlayerNames:      resizeNames(nil, defaultPlayers),
		SetupMode:        model.SetupDetailed,
		SetupCardID:      model.SetupStandard,
		StoryIndex:       model.NoStory,
		ChallengeOptions: map[string]bool{},
		OptionalRules:    map[string]bool{},
		SoloOptions:      map[string]bool{},
		DisgruntledDie:   model.DieStandard,
		Timer:            model.TimerConfig{Mode: model.TimerStandard},
		Expansions:       cat.DefaultExpansions(),
	}
}

// MarshalState encodes the whole aggregate.
func MarshalState(gs model.GameState) ([]byte, error) {
	data, err := json.Marshal(gs)
	if err != nil {
		return nil, fmt.Errorf("marshal state: %w", err)
	}
	return data, nil
}

// LoadState decodes persisted state on top of the defaults, so fields missing
// from data keep their default value. The result is validated.
func LoadState(data []byte, cat *catalog.Catalog) (model.GameState, error) {
	gs := DefaultState(cat)
	defaults := gs.Expansions
	// A persisted expansion map replaces the defaults rather than merging.
	gs.Expansions = nil
	if err := json.Unmarshal(data, &gs); err != nil {
		return DefaultState(cat), fmt.Errorf("load state: %w", err)
	}
	if gs.Expansions == nil {
		gs.Expansions = defaults
	}
	return Validate(normalize(gs), cat), nil
}

// normalize fills nil maps and clamps the captain count.
func normalize(gs model.GameState) model.GameState {
	if gs.ChallengeOptions == nil {
		gs.ChallengeOptions = map[string]bool{}
	}
	if gs.OptionalRules == nil {
		gs.OptionalRules = map[string]bool{}
	}
	if gs.SoloOptions == nil {
		gs.SoloOptions = map[string]bool{}
	}
	if gs.Expansions == nil {
		gs.Expansions = map[string]bool{}
	}
	gs.PlayerCount = min(max(gs.PlayerCount, model.MinPlayers), model.MaxPlayers)
	if len(gs.PlayerNames) != gs.PlayerCount {
		gs.PlayerNames = resizeNames(gs.PlayerNames, gs.PlayerCount)
	}
	if gs.StoryIndex < model.NoStory {
		gs.StoryIndex = model.NoStory
	}
	return gs
}

// Initial is the outcome of session start-up.
type Initial struct {
	State model.GameState
	// ClearShareLink asks the host to drop the share link it passed in
	// because it could not be decoded.
	ClearShareLink bool
}

// InitialState picks the starting state: a share link wins over persisted
// state, and both fall back to defaults when they cannot be decoded.
func InitialState(cat *catalog.Catalog, persisted []byte, shareLink string) Initial {
	if shareLink != "" {
		gs, err := DecodeShareLink(shareLink, cat)
		if err != nil {
			slog.Warn("share link ignored", "err", err)
			return Initial{State: DefaultState(cat), ClearShareLink: true}
		}
		return Initial{State: gs}
	}
	if len(persisted) > 0 {
		gs, err := LoadState(persisted, cat)
		if err != nil {
			slog.Warn("persisted state ignored", "err", err)
			return Initial{State: DefaultState(cat)}
		}
		return Initial{State: gs}
	}
	return Initial{State: DefaultState(cat)}
}
