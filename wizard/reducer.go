package wizard

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/nstehr/shiny/catalog"
	"github.com/nstehr/shiny/model"
	"github.com/nstehr/shiny/rules"
)

// Dispatch applies a to gs and returns the next state. The input is never
// modified. Every successful transition ends with Validate, so the result
// always satisfies the state invariants.
func Dispatch(gs model.GameState, cat *catalog.Catalog, a Action) (model.GameState, error) {
	var next model.GameState
	switch act := a.(type) {
	case configAction:
		next = reduceConfig(gs.Clone(), cat, act)
	case setupAction:
		next = reduceSetup(gs.Clone(), cat, act)
	case optionsAction:
		next = reduceOptions(gs.Clone(), act)
	case uiAction:
		next = reduceUI(gs.Clone(), act)
	default:
		return gs, fmt.Errorf("%w: %T", ErrUnknownAction, a)
	}
	slog.Debug("action applied", "type", a.ActionType())
	return Validate(next, cat), nil
}

func reduceConfig(gs model.GameState, cat *catalog.Catalog, a configAction) model.GameState {
	switch act := a.(type) {
	case SetPlayerCount:
		wasSolo := gs.IsSolo()
		gs.PlayerCount = min(max(act.Count, model.MinPlayers), model.MaxPlayers)
		gs.PlayerNames = resizeNames(gs.PlayerNames, gs.PlayerCount)
		// Only the switch into solo selects the overlay, so a user who
		// deselects it afterwards keeps their choice.
		if !wasSolo && gs.IsSolo() {
			return AutoSelectSoloOverlay(gs, cat)
		}
	case SetPlayerName:
		if act.Index >= 0 && act.Index < len(gs.PlayerNames) {
			gs.PlayerNames[act.Index] = act.Name
		}
	case ToggleExpansion:
		if _, ok := cat.Expansion(act.ID); !ok {
			slog.Debug("toggle of unknown expansion ignored", "id", act.ID)
			return gs
		}
		toggle(&gs.Expansions, act.ID)
		if act.ID == model.ExpansionTenth && gs.ExpansionActive(model.ExpansionTenth) {
			return AutoSelectSoloOverlay(gs, cat)
		}
	case SetSetupMode:
		if act.Mode == model.SetupQuick || act.Mode == model.SetupDetailed {
			gs.SetupMode = act.Mode
		}
	case SetCampaign:
		gs.Campaign = act.Campaign
	}
	return gs
}

func reduceSetup(gs model.GameState, cat *catalog.Catalog, a setupAction) model.GameState {
	switch act := a.(type) {
	case SelectSetupCard:
		card, err := cat.SetupCard(act.ID)
		if err != nil {
			slog.Debug("setup card selection ignored", "err", err)
			return gs
		}
		prev := gs.SetupCardID
		gs.SetupCardID = card.ID
		gs.SecondarySetupCardID = ""
		if card.Combinable && prev != card.ID {
			if old, err := cat.SetupCard(prev); err == nil && !old.Combinable {
				gs.SecondarySetupCardID = old.ID
			}
		}
	case SelectSecondaryCard:
		gs.SecondarySetupCardID = act.ID
	case SelectStory:
		return selectStory(gs, cat, act.Index)
	case SelectGoal:
		if story, ok := cat.Story(gs.StoryIndex); ok && hasGoal(story, act.Title) {
			gs.SelectedGoal = act.Title
		}
	case ToggleChallenge:
		if story, ok := cat.Story(gs.StoryIndex); ok && hasChallenge(story, act.ID) {
			toggle(&gs.ChallengeOptions, act.ID)
		}
	case Reset:
		return DefaultState(cat)
	}
	return gs
}

// selectStory picks the first goal, clears challenge options and records
// which steps the story overrides so the UI can flag them.
func selectStory(gs model.GameState, cat *catalog.Catalog, idx int) model.GameState {
	gs.ChallengeOptions = map[string]bool{}
	gs.SelectedGoal = ""
	gs.Overrides = model.OverrideTracking{}
	story, ok := cat.Story(idx)
	if !ok {
		gs.StoryIndex = model.NoStory
		return gs
	}
	gs.StoryIndex = idx
	if len(story.Goals) > 0 {
		gs.SelectedGoal = story.Goals[0].Title
	}
	gs.Overrides.StepIDs = rules.OverriddenSteps(story.Rules)
	return gs
}

func hasGoal(s model.StoryCard, title string) bool {
	return slices.ContainsFunc(s.Goals, func(g model.Goal) bool { return g.Title == title })
}

func hasChallenge(s model.StoryCard, id string) bool {
	return slices.ContainsFunc(s.ChallengeOptions, func(c model.ChallengeOption) bool { return c.ID == id })
}

func reduceOptions(gs model.GameState, a optionsAction) model.GameState {
	switch act := a.(type) {
	case ToggleOptionalRule:
		toggle(&gs.OptionalRules, act.Key)
	case ToggleSoloOption:
		toggle(&gs.SoloOptions, act.Key)
	case SetTimerMode:
		if act.Mode == model.TimerStandard || act.Mode == model.TimerUnpredictable {
			gs.Timer.Mode = act.Mode
		}
	case SetDisgruntledDie:
		if act.Mode == model.DieStandard || act.Mode == model.DieDisgruntled {
			gs.DisgruntledDie = act.Mode
		}
	case SetManualConflicts:
		gs.ManualConflicts = act.Enabled
		if !act.Enabled {
			gs.ConflictSelections = nil
		}
	case SelectConflictWinner:
		if act.Field == "" || !act.Source.Valid() {
			return gs
		}
		if gs.ConflictSelections == nil {
			gs.ConflictSelections = map[string]model.RuleSource{}
		}
		gs.ConflictSelections[act.Field] = act.Source
	case SetFinalCredits:
		gs.FinalStartingCredits = max(act.Amount, 0)
	case SetDraft:
		gs.Draft = act.Draft
	}
	return gs
}

func reduceUI(gs model.GameState, a uiAction) model.GameState {
	switch act := a.(type) {
	case AcknowledgeOverride:
		if slices.Contains(gs.Overrides.StepIDs, act.StepID) && !slices.Contains(gs.Overrides.Acknowledged, act.StepID) {
			gs.Overrides.Acknowledged = append(gs.Overrides.Acknowledged, act.StepID)
		}
	case ClearOverrides:
		gs.Overrides.Acknowledged = nil
	}
	return gs
}

// toggle flips key in *m. Disabled keys are removed so the map holds only
// enabled entries.
func toggle(m *map[string]bool, key string) {
	if *m == nil {
		*m = map[string]bool{}
	}
	if (*m)[key] {
		delete(*m, key)
		return
	}
	(*m)[key] = true
}

func resizeNames(names []string, n int) []string {
	out := make([]string, n)
	copy(out, names)
	for i := len(names); i < n; i++ {
		out[i] = fmt.Sprintf("Captain %d", i+1)
	}
	return out
}
