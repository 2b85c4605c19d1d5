package rules

import (
	"github.com/nstehr/shiny/catalog"
	"github.com/nstehr/shiny/model"
)

// Input is everything a calculator reads: the state snapshot, the override
// bag of the step being computed and the resolved rule set.
type Input struct {
	State     model.GameState
	StepID    string
	Overrides model.StepOverrides
	Rules     model.RuleList
	Catalog   *catalog.Catalog
}

// NewInput resolves the rule set for gs.
func NewInput(gs model.GameState, cat *catalog.Catalog) Input {
	return Input{State: gs, Rules: Resolve(gs, cat), Catalog: cat}
}

// ForStep returns a copy of in scoped to one step.
func (in Input) ForStep(id string, ov model.StepOverrides) Input {
	in.StepID = id
	in.Overrides = ov
	return in
}

// hideStory reports whether story-sourced blocks are suppressed.
func (in Input) hideStory() bool {
	if in.Overrides.HideStory != nil {
		return *in.Overrides.HideStory
	}
	return in.State.SetupMode == model.SetupQuick
}

// RuleEnv wraps the input and exposes helper methods callable from expr
// expressions in catalog data.
type RuleEnv struct {
	Input Input
}

func (e RuleEnv) ExpansionActive(id string) bool { return e.Input.State.ExpansionActive(id) }
func (e RuleEnv) IsSolo() bool                   { return e.Input.State.IsSolo() }
func (e RuleEnv) PlayerCount() int               { return e.Input.State.PlayerCount }
func (e RuleEnv) SetupCard() string              { return e.Input.State.SetupCardID }
func (e RuleEnv) HasFlag(flag string) bool       { return HasFlag(e.Input.Rules, flag) }

// HighSupplyVolume reports whether three or more supply-heavy expansions
// are active.
func (e RuleEnv) HighSupplyVolume() bool {
	return highSupplyVolume(e.Input)
}

// StoryTitle is the selected story's title, or "" when none is selected.
func (e RuleEnv) StoryTitle() string {
	if e.Input.Catalog == nil {
		return ""
	}
	s, ok := e.Input.Catalog.Story(e.Input.State.StoryIndex)
	if !ok {
		return ""
	}
	return s.Title
}

const highSupplyThreshold = 3

func highSupplyVolume(in Input) bool {
	if in.Catalog == nil {
		return false
	}
	return in.Catalog.SupplyHeavyActive(in.State.Expansions) >= highSupplyThreshold
}
