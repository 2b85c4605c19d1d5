package rules

import (
	"strings"
	"testing"

	"github.com/nstehr/shiny/model"
)

func TestHavenDraft(t *testing.T) {
	placement := model.SetShipPlacement{Provenance: fromStory, Location: "Persephone"}
	tests := []struct {
		name     string
		step     string
		override model.DraftMode
		rules    model.RuleList
		want     bool
	}{
		{"standard draft", model.StepDraft, "", nil, false},
		{"haven step", model.StepDraftHaven, "", nil, true},
		{"haven mode", model.StepDraft, model.DraftHaven, nil, true},
		{"story placement beats haven", model.StepDraftHaven, "", model.RuleList{placement}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := input(players(2), tt.rules...).ForStep(tt.step, model.StepOverrides{DraftMode: tt.override})
			if got := Draft(in).Haven; got != tt.want {
				t.Errorf("Haven = %v, want %v", got, tt.want)
			}
		})
	}

	v := Draft(input(players(2), placement).ForStep(model.StepDraftHaven, model.StepOverrides{}))
	b, ok := findBlock(v.Blocks, "story priority")
	if !ok || b.Source != model.SourceWarning {
		t.Errorf("expected story-priority warning, got %+v", v.Blocks)
	}
}

func TestWantedLeaders(t *testing.T) {
	v := Draft(input(players(3), model.SetLeaderSetup{Provenance: fromStory, Mode: model.LeaderWanted}))
	if v.Leader.Mode != model.LeaderWanted {
		t.Fatalf("Leader = %s", v.Leader.Mode)
	}
	if b, ok := findBlock(v.Blocks, "Wanted Leaders"); !ok || b.Source != model.SourceStory {
		t.Errorf("expected wanted leader block, got %+v", v.Blocks)
	}
}

func TestShipUpgrades(t *testing.T) {
	gs := players(2)
	gs.OptionalRules = map[string]bool{model.OptionShipUpgrades: true}

	if v := Draft(input(gs)); len(v.ShipUpgrades) != 0 {
		t.Error("upgrades need the 10th anniversary expansion")
	}

	gs.Expansions = expansions(model.ExpansionTenth)
	v := Draft(input(gs))
	var double []string
	for _, u := range v.ShipUpgrades {
		if u.DoubleSided {
			double = append(double, u.Ship)
		}
	}
	if len(v.ShipUpgrades) != len(UpgradeShips) || len(double) != 2 {
		t.Errorf("ShipUpgrades = %+v", v.ShipUpgrades)
	}
	b, ok := findBlock(v.Blocks, "Optional Ship Upgrades")
	if !ok {
		t.Fatal("missing upgrades block")
	}
	var hasSubList bool
	for _, n := range b.Content {
		if n.Kind == model.NodeSubList {
			hasSubList = true
		}
	}
	if !hasSubList {
		t.Error("upgrades block should list ships in a sub-list")
	}
}

func TestReducedEconomyFreeShipWarning(t *testing.T) {
	rs := model.RuleList{
		model.AddFlag{Provenance: fromCard, Flag: model.FlagReducedEconomy},
		credits(fromCard, model.MethodSet, 12000, "capital"),
	}
	gs := players(2)
	if _, ok := findBlock(Draft(input(gs, rs...)).Blocks, "Reduced Economy"); ok {
		t.Error("warning needs the free ship challenge")
	}

	gs.ChallengeOptions = map[string]bool{model.ChallengeFreeStartingShip: true}
	b, ok := findBlock(Draft(input(gs, rs...)).Blocks, "Reduced Economy")
	if !ok {
		t.Fatal("missing reduced economy warning")
	}
	text := model.PlainText(b.Content)
	if b.Source != model.SourceWarning || !strings.Contains(text, "$12,000") || !strings.Contains(text, "$0") {
		t.Errorf("warning = %s %q", b.Source, text)
	}
}
