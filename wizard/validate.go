package wizard

import (
	"log/slog"

	"github.com/nstehr/shiny/catalog"
	"github.com/nstehr/shiny/model"
)

// pass inspects gs and returns a corrected copy plus whether it changed
// anything. Passes never modify their input.
type pass func(gs model.GameState, cat *catalog.Catalog) (model.GameState, bool)

var passes = []pass{
	checkPrimaryCard,
	checkSecondaryCard,
	checkStory,
	checkAnniversaryOptions,
}

// Validate repairs gs so that every state invariant holds. Applying it twice
// yields the same value as applying it once.
func Validate(gs model.GameState, cat *catalog.Catalog) model.GameState {
	for _, p := range passes {
		if next, changed := p(gs, cat); changed {
			gs = next
		}
	}
	return gs
}

func checkPrimaryCard(gs model.GameState, cat *catalog.Catalog) (model.GameState, bool) {
	card, err := cat.SetupCard(gs.SetupCardID)
	if err == nil && catalog.CardAvailable(card, gs) {
		return gs, false
	}
	if gs.SetupCardID == model.SetupStandard {
		return gs, false
	}
	slog.Debug("setup card reset", "from", gs.SetupCardID, "mode", gs.Mode())
	next := gs.Clone()
	next.SetupCardID = model.SetupStandard
	next.SecondarySetupCardID = ""
	return next, true
}

func checkSecondaryCard(gs model.GameState, cat *catalog.Catalog) (model.GameState, bool) {
	id := gs.SecondarySetupCardID
	if id == "" || secondaryValid(gs, cat) {
		return gs, false
	}
	slog.Debug("secondary setup card cleared", "id", id)
	next := gs.Clone()
	next.SecondarySetupCardID = ""
	return next, true
}

func secondaryValid(gs model.GameState, cat *catalog.Catalog) bool {
	primary, err := cat.SetupCard(gs.SetupCardID)
	if err != nil || !primary.Combinable {
		return false
	}
	second, err := cat.SetupCard(gs.SecondarySetupCardID)
	if err != nil || second.Combinable {
		return false
	}
	return catalog.CardAvailable(second, gs)
}

// checkStory clears story, goal and challenge options together when the
// selected story cannot be played, and keeps goal and challenges within
// what the selected story declares.
func checkStory(gs model.GameState, cat *catalog.Catalog) (model.GameState, bool) {
	if gs.StoryIndex == model.NoStory {
		if gs.SelectedGoal == "" && len(gs.ChallengeOptions) == 0 {
			return gs, false
		}
		slog.Debug("goal and challenges cleared without a story")
		next := gs.Clone()
		next.SelectedGoal = ""
		next.ChallengeOptions = map[string]bool{}
		return next, true
	}
	story, ok := cat.Story(gs.StoryIndex)
	if !ok || (story.Solo && !gs.IsSolo()) {
		slog.Debug("story cleared", "index", gs.StoryIndex, "mode", gs.Mode())
		next := gs.Clone()
		next.StoryIndex = model.NoStory
		next.SelectedGoal = ""
		next.ChallengeOptions = map[string]bool{}
		next.Overrides = model.OverrideTracking{}
		return next, true
	}

	goal := gs.SelectedGoal
	if !hasGoal(story, goal) {
		goal = ""
		if len(story.Goals) > 0 {
			goal = story.Goals[0].Title
		}
	}
	var stale []string
	for id := range gs.ChallengeOptions {
		if !hasChallenge(story, id) {
			stale = append(stale, id)
		}
	}
	if goal == gs.SelectedGoal && len(stale) == 0 {
		return gs, false
	}
	slog.Debug("story selections repaired", "goal", goal, "dropped", stale)
	next := gs.Clone()
	next.SelectedGoal = goal
	for _, id := range stale {
		delete(next.ChallengeOptions, id)
	}
	return next, true
}

// checkAnniversaryOptions drops every setting that needs the 10th
// Anniversary expansion once it is inactive.
func checkAnniversaryOptions(gs model.GameState, _ *catalog.Catalog) (model.GameState, bool) {
	if gs.ExpansionActive(model.ExpansionTenth) {
		return gs, false
	}
	stale := gs.OptionalRules[model.OptionShipUpgrades] ||
		gs.DisgruntledDie != model.DieStandard ||
		len(gs.SoloOptions) > 0 ||
		gs.Timer.Mode != model.TimerStandard
	if !stale {
		return gs, false
	}
	slog.Debug("10th anniversary options cleared")
	next := gs.Clone()
	delete(next.OptionalRules, model.OptionShipUpgrades)
	next.DisgruntledDie = model.DieStandard
	next.SoloOptions = map[string]bool{}
	next.Timer.Mode = model.TimerStandard
	return next, true
}
