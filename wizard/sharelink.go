package wizard

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/nstehr/shiny/catalog"
	"github.com/nstehr/shiny/model"
)

// ErrShareLink wraps every share-link decode failure.
var ErrShareLink = errors.New("invalid share link")

// shareState is the compact subset of GameState carried in a share link.
type shareState struct {
	Expansions []string        `json:"e"`
	Mode       model.SetupMode `json:"m"`
	Setup      string          `json:"s"`
	Secondary  string          `json:"s2,omitempty"`
	Story      int             `json:"st"`
	Goal       string          `json:"g,omitempty"`
	Players    int             `json:"p"`
}

// EncodeShareLink returns the URL-safe payload for gs.
func EncodeShareLink(gs model.GameState) (string, error) {
	var active []string
	for _, id := range slices.Sorted(maps.Keys(gs.Expansions)) {
		if gs.Expansions[id] {
			active = append(active, id)
		}
	}
	data, err := json.Marshal(shareState{
		Expansions: active,
		Mode:       gs.SetupMode,
		Setup:      gs.SetupCardID,
		Secondary:  gs.SecondarySetupCardID,
		Story:      gs.StoryIndex,
		Goal:       gs.SelectedGoal,
		Players:    gs.PlayerCount,
	})
	if err != nil {
		return "", fmt.Errorf("encode share link: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// DecodeShareLink rebuilds a state from a share link. Everything the link
// does not carry comes from DefaultState.
func DecodeShareLink(link string, cat *catalog.Catalog) (model.GameState, error) {
	data, err := base64.RawURLEncoding.DecodeString(link)
	if err != nil {
		return model.GameState{}, fmt.Errorf("%w: %w", ErrShareLink, err)
	}
	var ss shareState
	if err := json.Unmarshal(data, &ss); err != nil {
		return model.GameState{}, fmt.Errorf("%w: %w", ErrShareLink, err)
	}
	if ss.Players < model.MinPlayers || ss.Players > model.MaxPlayers {
		return model.GameState{}, fmt.Errorf("%w: player count %d", ErrShareLink, ss.Players)
	}

	gs := DefaultState(cat)
	gs.PlayerCount = ss.Players
	gs.PlayerNames = resizeNames(nil, ss.Players)
	if ss.Mode == model.SetupQuick || ss.Mode == model.SetupDetailed {
		gs.SetupMode = ss.Mode
	}
	gs.Expansions = map[string]bool{}
	for _, id := range ss.Expansions {
		if _, ok := cat.Expansion(id); ok {
			gs.Expansions[id] = true
		}
	}
	gs.SetupCardID = ss.Setup
	gs.SecondarySetupCardID = ss.Secondary
	gs = selectStory(gs, cat, ss.Story)
	if story, ok := cat.Story(gs.StoryIndex); ok && hasGoal(story, ss.Goal) {
		gs.SelectedGoal = ss.Goal
	}
	return Validate(gs, cat), nil
}
