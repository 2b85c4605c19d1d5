package wizard

import (
	"errors"
	"reflect"
	"testing"

	"github.com/nstehr/shiny/model"
)

func TestSetPlayerCount(t *testing.T) {
	tests := []struct {
		count     int
		wantCount int
	}{
		{0, 1},
		{-3, 1},
		{3, 3},
		{5, 5},
		{9, 5},
	}
	for _, tt := range tests {
		gs := dispatch(t, DefaultState(cat), SetPlayerCount{Count: tt.count})
		if gs.PlayerCount != tt.wantCount {
			t.Errorf("SetPlayerCount(%d) = %d, want %d", tt.count, gs.PlayerCount, tt.wantCount)
		}
		if len(gs.PlayerNames) != tt.wantCount {
			t.Errorf("SetPlayerCount(%d) names = %v", tt.count, gs.PlayerNames)
		}
	}
}

func TestPlayerNamesSurviveResize(t *testing.T) {
	gs := dispatch(t, DefaultState(cat),
		SetPlayerName{Index: 0, Name: "Mal"},
		SetPlayerName{Index: 9, Name: "ignored"},
		SetPlayerCount{Count: 5},
	)
	want := []string{"Mal", "Captain 2", "Captain 3", "Captain 4", "Captain 5"}
	if !reflect.DeepEqual(gs.PlayerNames, want) {
		t.Errorf("names = %v, want %v", gs.PlayerNames, want)
	}
}

func TestSoloRoundTripThroughGuard(t *testing.T) {
	gs := dispatch(t, DefaultState(cat), SetPlayerCount{Count: 1})
	if gs.SetupCardID != model.SetupFlyingSolo || gs.SecondarySetupCardID != model.SetupStandard {
		t.Fatalf("solo cards = %q/%q, want flying_solo/standard", gs.SetupCardID, gs.SecondarySetupCardID)
	}

	multi := dispatch(t, gs, SetPlayerCount{Count: 3})
	if multi.SetupCardID != model.SetupStandard || multi.SecondarySetupCardID != "" {
		t.Errorf("multiplayer cards = %q/%q, want standard/empty", multi.SetupCardID, multi.SecondarySetupCardID)
	}

	noTenth := dispatch(t, gs, ToggleExpansion{ID: model.ExpansionTenth})
	if noTenth.SetupCardID != model.SetupStandard {
		t.Errorf("card without tenth = %q, want standard", noTenth.SetupCardID)
	}
	if noTenth.ExpansionActive(model.ExpansionTenth) {
		t.Error("tenth still active")
	}
	back := dispatch(t, noTenth, ToggleExpansion{ID: model.ExpansionTenth})
	if back.SetupCardID != model.SetupFlyingSolo {
		t.Errorf("re-enabling tenth should reselect the overlay, got %q", back.SetupCardID)
	}
}

func TestOverlayDeselectionSticks(t *testing.T) {
	gs := dispatch(t, DefaultState(cat),
		SetPlayerCount{Count: 1},
		SelectSetupCard{ID: model.SetupStandard},
	)
	if gs.SetupCardID != model.SetupStandard {
		t.Fatalf("card = %q, want standard", gs.SetupCardID)
	}

	tests := []struct {
		name   string
		action Action
	}{
		{"unrelated expansion", ToggleExpansion{ID: model.ExpansionPirates}},
		{"same solo count", SetPlayerCount{Count: 1}},
		{"name change", SetPlayerName{Index: 0, Name: "Mal"}},
	}
	for _, tt := range tests {
		got := dispatch(t, gs, tt.action)
		if got.SetupCardID != model.SetupStandard || got.SecondarySetupCardID != "" {
			t.Errorf("%s: cards = %q/%q, want standard kept", tt.name, got.SetupCardID, got.SecondarySetupCardID)
		}
	}

	// Enabling the 10th Anniversary expansion is a trigger again.
	got := dispatch(t, gs, ToggleExpansion{ID: model.ExpansionTenth}, ToggleExpansion{ID: model.ExpansionTenth})
	if got.SetupCardID != model.SetupFlyingSolo {
		t.Errorf("card after re-enabling tenth = %q, want flying_solo", got.SetupCardID)
	}
	// So is moving from multiplayer into solo.
	got = dispatch(t, gs, SetPlayerCount{Count: 3}, SetPlayerCount{Count: 1})
	if got.SetupCardID != model.SetupFlyingSolo {
		t.Errorf("card after returning to solo = %q, want flying_solo", got.SetupCardID)
	}
}

func TestGoalAndChallengesFollowStory(t *testing.T) {
	gs := dispatch(t, DefaultState(cat), SelectGoal{Title: "orphan"}, ToggleChallenge{ID: model.ChallengeSingleContact})
	if gs.SelectedGoal != "" || len(gs.ChallengeOptions) != 0 {
		t.Errorf("without story: goal %q challenges %v", gs.SelectedGoal, gs.ChallengeOptions)
	}

	gs = dispatch(t, gs,
		SelectStory{Index: story(t, "Running On Empty")},
		SelectGoal{Title: "no such goal"},
		ToggleChallenge{ID: "bogus"},
		ToggleChallenge{ID: model.ChallengeFreeStartingShip},
	)
	if gs.SelectedGoal != "Scrape By" {
		t.Errorf("goal = %q, want Scrape By", gs.SelectedGoal)
	}
	want := map[string]bool{model.ChallengeFreeStartingShip: true}
	if !reflect.DeepEqual(gs.ChallengeOptions, want) {
		t.Errorf("challenges = %v, want %v", gs.ChallengeOptions, want)
	}
}

func TestToggleUnknownExpansion(t *testing.T) {
	gs := DefaultState(cat)
	got := dispatch(t, gs, ToggleExpansion{ID: "firefly_online"})
	if !reflect.DeepEqual(got, gs) {
		t.Errorf("state changed: %+v", got)
	}
}

func TestSelectSetupCard(t *testing.T) {
	gs := dispatch(t, DefaultState(cat), SetPlayerCount{Count: 1}, SelectSetupCard{ID: "browncoat_way"})
	if gs.SetupCardID != "browncoat_way" || gs.SecondarySetupCardID != "" {
		t.Fatalf("cards = %q/%q", gs.SetupCardID, gs.SecondarySetupCardID)
	}
	gs = dispatch(t, gs, SelectSetupCard{ID: model.SetupFlyingSolo})
	if gs.SecondarySetupCardID != "browncoat_way" {
		t.Errorf("secondary = %q, want browncoat_way", gs.SecondarySetupCardID)
	}
	gs = dispatch(t, gs, SelectSecondaryCard{ID: "the_blitz"})
	if gs.SecondarySetupCardID != "the_blitz" {
		t.Errorf("secondary = %q, want the_blitz", gs.SecondarySetupCardID)
	}
	same := dispatch(t, gs, SelectSetupCard{ID: "no_such_card"})
	if !reflect.DeepEqual(same, gs) {
		t.Error("unknown card changed the state")
	}
}

func TestSelectStory(t *testing.T) {
	empty := story(t, "Running On Empty")
	gs := dispatch(t, DefaultState(cat),
		ToggleChallenge{ID: "stale"},
		SelectStory{Index: empty},
	)
	if gs.StoryIndex != empty || gs.SelectedGoal != "Scrape By" {
		t.Errorf("story = %d goal = %q", gs.StoryIndex, gs.SelectedGoal)
	}
	if len(gs.ChallengeOptions) != 0 {
		t.Errorf("challenges = %v, want cleared", gs.ChallengeOptions)
	}
	if !reflect.DeepEqual(gs.Overrides.StepIDs, []string{model.StepResources}) {
		t.Errorf("override steps = %v, want [resources]", gs.Overrides.StepIDs)
	}

	gs = dispatch(t, gs, ToggleChallenge{ID: model.ChallengeSingleContact})
	if !gs.Challenge(model.ChallengeSingleContact) {
		t.Error("challenge not toggled on")
	}
	gs = dispatch(t, gs, ToggleChallenge{ID: model.ChallengeSingleContact})
	if len(gs.ChallengeOptions) != 0 {
		t.Errorf("challenges = %v, want empty after second toggle", gs.ChallengeOptions)
	}

	gs = dispatch(t, gs, SelectStory{Index: model.NoStory})
	if gs.HasStory() || gs.SelectedGoal != "" || gs.Overrides.StepIDs != nil {
		t.Errorf("story not cleared: %+v", gs)
	}
}

func TestSoloStoryRejectedInMultiplayer(t *testing.T) {
	gs := dispatch(t, DefaultState(cat), SelectStory{Index: story(t, "Lonely Smuggler's Blues")})
	if gs.HasStory() {
		t.Errorf("solo story kept with %d players", gs.PlayerCount)
	}
}

func TestOptionsReducer(t *testing.T) {
	gs := dispatch(t, DefaultState(cat),
		ToggleOptionalRule{Key: model.OptionShipUpgrades},
		SetDisgruntledDie{Mode: model.DieDisgruntled},
		SetTimerMode{Mode: "sideways"},
		SetManualConflicts{Enabled: true},
		SelectConflictWinner{Field: "credits", Source: model.SourceSetupCard},
		SelectConflictWinner{Field: "fuel", Source: "bogus"},
		SetFinalCredits{Amount: -50},
	)
	if !gs.Option(model.OptionShipUpgrades) || gs.DisgruntledDie != model.DieDisgruntled {
		t.Errorf("options = %v die = %s", gs.OptionalRules, gs.DisgruntledDie)
	}
	if gs.Timer.Mode != model.TimerStandard {
		t.Errorf("timer = %s, invalid mode should be ignored", gs.Timer.Mode)
	}
	want := map[string]model.RuleSource{"credits": model.SourceSetupCard}
	if !reflect.DeepEqual(gs.ConflictSelections, want) {
		t.Errorf("selections = %v, want %v", gs.ConflictSelections, want)
	}
	if gs.FinalStartingCredits != 0 {
		t.Errorf("final credits = %d", gs.FinalStartingCredits)
	}

	off := dispatch(t, gs, SetManualConflicts{Enabled: false})
	if off.ManualConflicts || off.ConflictSelections != nil {
		t.Errorf("manual conflicts off kept selections %v", off.ConflictSelections)
	}
}

func TestAcknowledgeOverride(t *testing.T) {
	gs := dispatch(t, DefaultState(cat),
		SelectStory{Index: story(t, "Running On Empty")},
		AcknowledgeOverride{StepID: model.StepResources},
		AcknowledgeOverride{StepID: model.StepResources},
		AcknowledgeOverride{StepID: model.StepJobs},
	)
	if !reflect.DeepEqual(gs.Overrides.Acknowledged, []string{model.StepResources}) {
		t.Errorf("acknowledged = %v", gs.Overrides.Acknowledged)
	}
	if p := gs.Overrides.Pending(); len(p) != 0 {
		t.Errorf("pending = %v", p)
	}
	gs = dispatch(t, gs, ClearOverrides{})
	if p := gs.Overrides.Pending(); !reflect.DeepEqual(p, []string{model.StepResources}) {
		t.Errorf("pending after clear = %v", p)
	}
}

func TestReset(t *testing.T) {
	gs := dispatch(t, DefaultState(cat), SetPlayerCount{Count: 2}, SelectStory{Index: 1}, Reset{})
	if !reflect.DeepEqual(gs, DefaultState(cat)) {
		t.Errorf("Reset = %+v", gs)
	}
}

type bogusAction struct{}

func (bogusAction) ActionType() string { return "bogus" }

func TestDispatch(t *testing.T) {
	gs := DefaultState(cat)
	if _, err := Dispatch(gs, cat, bogusAction{}); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("err = %v, want ErrUnknownAction", err)
	}

	before := gs.Clone()
	_ = dispatch(t, gs, ToggleExpansion{ID: model.ExpansionPirates}, ToggleOptionalRule{Key: "x"})
	if !reflect.DeepEqual(gs, before) {
		t.Error("Dispatch modified its input")
	}
}
