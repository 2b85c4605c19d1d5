package model

import "maps"

type GameMode string

const (
	ModeSolo        GameMode = "solo"
	ModeMultiplayer GameMode = "multiplayer"
)

// SetupMode controls how much annotation text the wizard shows.
type SetupMode string

const (
	SetupQuick    SetupMode = "quick"
	SetupDetailed SetupMode = "detailed"
)

type TimerMode string

const (
	TimerStandard      TimerMode = "standard"
	TimerUnpredictable TimerMode = "unpredictable"
)

type DieMode string

const (
	DieStandard    DieMode = "standard"
	DieDisgruntled DieMode = "disgruntled"
)

// NoStory marks an empty story selection.
const NoStory = -1

// MinPlayers and MaxPlayers bound the captain count.
const (
	MinPlayers = 1
	MaxPlayers = 5
)

type TimerConfig struct {
	Mode TimerMode `json:"mode"`
}

type Campaign struct {
	Enabled bool   `json:"enabled"`
	Title   string `json:"title,omitempty"`
	Session int    `json:"session,omitempty"`
}

// OverrideTracking remembers which steps carry story-driven overrides and
// which of those the user has already looked at.
type OverrideTracking struct {
	StepIDs      []string `json:"stepIds,omitempty"`
	Acknowledged []string `json:"acknowledged,omitempty"`
}

// Pending returns overridden step ids not yet acknowledged.
func (t OverrideTracking) Pending() []string {
	var out []string
	for _, id := range t.StepIDs {
		if !contains(t.Acknowledged, id) {
			out = append(out, id)
		}
	}
	return out
}

type DraftState struct {
	StartingPlayer int      `json:"startingPlayer"`
	Ships          []string `json:"ships,omitempty"`
	Leaders        []string `json:"leaders,omitempty"`
}

// GameState is the single mutable aggregate. Transitions never modify a
// GameState in place: they Clone and return the copy.
type GameState struct {
	PlayerCount          int                   `json:"playerCount"`
	PlayerNames          []string              `json:"playerNames"`
	SetupMode            SetupMode             `json:"setupMode"`
	SetupCardID          string                `json:"setupCardId"`
	SecondarySetupCardID string                `json:"secondarySetupCardId,omitempty"`
	StoryIndex           int                   `json:"storyIndex"`
	SelectedGoal         string                `json:"selectedGoal,omitempty"`
	ChallengeOptions     map[string]bool       `json:"challengeOptions"`
	OptionalRules        map[string]bool       `json:"optionalRules"`
	SoloOptions          map[string]bool       `json:"soloOptions"`
	DisgruntledDie       DieMode               `json:"disgruntledDie"`
	Timer                TimerConfig           `json:"timer"`
	Expansions           map[string]bool       `json:"expansions"`
	Campaign             Campaign              `json:"campaign"`
	Overrides            OverrideTracking      `json:"overrides"`
	Draft                DraftState            `json:"draft"`
	FinalStartingCredits int                   `json:"finalStartingCredits"`
	ManualConflicts      bool                  `json:"manualConflicts"`
	ConflictSelections   map[string]RuleSource `json:"conflictSelections,omitempty"`
}

// Mode derives solo/multiplayer from the captain count.
func (gs GameState) Mode() GameMode {
	if gs.PlayerCount == 1 {
		return ModeSolo
	}
	return ModeMultiplayer
}

func (gs GameState) IsSolo() bool { return gs.Mode() == ModeSolo }

func (gs GameState) ExpansionActive(id string) bool { return gs.Expansions[id] }

func (gs GameState) Challenge(id string) bool { return gs.ChallengeOptions[id] }

func (gs GameState) Option(key string) bool { return gs.OptionalRules[key] }

func (gs GameState) HasStory() bool { return gs.StoryIndex >= 0 }

// Clone returns a deep copy so the result can be modified freely.
func (gs GameState) Clone() GameState {
	out := gs
	out.PlayerNames = cloneSlice(gs.PlayerNames)
	out.ChallengeOptions = maps.Clone(gs.ChallengeOptions)
	out.OptionalRules = maps.Clone(gs.OptionalRules)
	out.SoloOptions = maps.Clone(gs.SoloOptions)
	out.Expansions = maps.Clone(gs.Expansions)
	out.ConflictSelections = maps.Clone(gs.ConflictSelections)
	out.Overrides.StepIDs = cloneSlice(gs.Overrides.StepIDs)
	out.Overrides.Acknowledged = cloneSlice(gs.Overrides.Acknowledged)
	out.Draft.Ships = cloneSlice(gs.Draft.Ships)
	out.Draft.Leaders = cloneSlice(gs.Draft.Leaders)
	return out
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}
