package rules

import (
	"testing"

	"github.com/nstehr/shiny/model"
)

func TestPrime(t *testing.T) {
	highVolume := map[string]bool{model.OptionHighVolumeSupply: true}
	twoHeavy := expansions(model.ExpansionPirates, model.ExpansionBlueSun)
	threeHeavy := expansions(model.ExpansionPirates, model.ExpansionBlueSun, model.ExpansionKalidasa)
	double := model.ModifyPrime{Provenance: fromStory, Multiplier: 2}
	triple := model.ModifyPrime{Provenance: fromStory, Multiplier: 3}
	extra := model.AddFlag{Provenance: fromStory, Flag: model.FlagExtraPriming}

	tests := []struct {
		name       string
		expansions map[string]bool
		options    map[string]bool
		override   model.PrimeMode
		rules      model.RuleList
		wantHigh   bool
		wantBase   int
		wantMult   int
		wantCount  int
	}{
		{"baseline", nil, nil, "", nil, false, 3, 1, 3},
		{"two heavy with toggle", twoHeavy, highVolume, "", nil, false, 3, 1, 3},
		{"three heavy without toggle", threeHeavy, nil, "", nil, true, 3, 1, 3},
		{"three heavy with toggle", threeHeavy, highVolume, "", nil, true, 4, 1, 4},
		{"blitz override beats story", nil, nil, model.PrimeBlitz, model.RuleList{triple}, false, 3, 2, 6},
		{"blitz fragment", nil, nil, "", model.RuleList{model.SetPrimeMode{Provenance: fromCard, Mode: model.PrimeBlitz}}, false, 3, 2, 6},
		{"story multiplier", nil, nil, "", model.RuleList{double}, false, 3, 2, 6},
		{"setup card multiplier ignored", nil, nil, "", model.RuleList{model.ModifyPrime{Provenance: fromCard, Multiplier: 3}}, false, 3, 1, 3},
		{"expansion multiplier ignored", nil, nil, "", model.RuleList{model.ModifyPrime{Provenance: fromExp, Multiplier: 2}, double}, false, 3, 2, 6},
		{"extra priming after multiply", nil, nil, "", model.RuleList{double, extra}, false, 3, 2, 8},
		{"blitz high volume extra", threeHeavy, highVolume, model.PrimeBlitz, model.RuleList{extra}, true, 4, 2, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := players(2)
			gs.Expansions = tt.expansions
			gs.OptionalRules = tt.options
			in := input(gs, tt.rules...).ForStep(model.StepPrime, model.StepOverrides{PrimeMode: tt.override})
			v := Prime(in)
			if v.HighSupplyVolume != tt.wantHigh {
				t.Errorf("HighSupplyVolume = %v, want %v", v.HighSupplyVolume, tt.wantHigh)
			}
			if v.BaseDiscard != tt.wantBase {
				t.Errorf("BaseDiscard = %d, want %d", v.BaseDiscard, tt.wantBase)
			}
			if v.Multiplier != tt.wantMult {
				t.Errorf("Multiplier = %d, want %d", v.Multiplier, tt.wantMult)
			}
			if v.Count != tt.wantCount {
				t.Errorf("Count = %d, want %d", v.Count, tt.wantCount)
			}
		})
	}
}

func TestPrimeFromCatalogStory(t *testing.T) {
	gs := players(4)
	cat := input(gs).Catalog
	gs.SetupCardID = model.SetupStandard
	gs.StoryIndex = cat.StoryIndex("The Great Recession")

	v := Prime(NewInput(gs, cat))
	if v.Count != 8 {
		t.Errorf("Count = %d, want 8", v.Count)
	}
	if _, ok := findBlock(v.Blocks, "Extra Priming"); !ok {
		t.Error("missing extra priming block")
	}
}
