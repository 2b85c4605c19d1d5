package rules

import (
	"testing"

	"github.com/nstehr/shiny/catalog"
	"github.com/nstehr/shiny/model"
)

func visibleKeys(e *SectionEngine, in Input) map[string]bool {
	out := map[string]bool{}
	for _, s := range e.Visible(in) {
		out[s.Key] = true
	}
	return out
}

func TestEmbeddedSectionsCompile(t *testing.T) {
	if _, err := NewSectionEngine(catalog.Default().Sections); err != nil {
		t.Fatalf("NewSectionEngine: %v", err)
	}
}

func TestSectionVisibility(t *testing.T) {
	e, err := NewSectionEngine(catalog.Default().Sections)
	if err != nil {
		t.Fatal(err)
	}

	multi := players(3)
	keys := visibleKeys(e, input(multi))
	if !keys["houseRules"] || !keys["manualConflicts"] {
		t.Errorf("always-visible sections missing: %v", keys)
	}
	if keys["noSureThings"] || keys["highVolumeSupply"] {
		t.Errorf("conditional sections should be hidden: %v", keys)
	}

	solo := players(1)
	solo.Expansions = expansions(model.ExpansionTenth, model.ExpansionPirates, model.ExpansionBlueSun, model.ExpansionKalidasa)
	keys = visibleKeys(e, input(solo))
	for _, k := range []string{"noSureThings", "optionalShipUpgrades", "highVolumeSupply", "unpredictableTimer"} {
		if !keys[k] {
			t.Errorf("section %s should be visible for solo with tenth", k)
		}
	}

	keys = visibleKeys(e, input(multi, model.AddFlag{Provenance: fromCard, Flag: model.FlagReducedEconomy}))
	if !keys["reducedEconomyNote"] {
		t.Error("flag-driven section missing")
	}
}

func TestOptionalRulesToggles(t *testing.T) {
	e, err := NewSectionEngine(catalog.Default().Sections)
	if err != nil {
		t.Fatal(err)
	}
	gs := players(1)
	gs.Expansions = expansions(model.ExpansionTenth)
	gs.OptionalRules = map[string]bool{model.OptionShipUpgrades: true}
	gs.SoloOptions = map[string]bool{"shesTrouble": true}
	gs.ManualConflicts = true

	v := e.OptionalRules(input(gs))
	enabled := map[string]bool{}
	for _, s := range v.Sections {
		enabled[s.Key] = s.Enabled
	}
	if !enabled[model.OptionShipUpgrades] || !enabled["shesTrouble"] || !enabled[SectionManualConflicts] {
		t.Errorf("enabled = %v", enabled)
	}
	if enabled["noSureThings"] {
		t.Error("noSureThings should be off")
	}
	if !v.ManualConflicts {
		t.Error("ManualConflicts not reported")
	}
}

func TestSectionCompileError(t *testing.T) {
	_, err := NewSectionEngine([]model.OptionSection{{Key: "broken", When: "NoSuchHelper()"}})
	if err == nil {
		t.Error("expected compile error")
	}
}

func TestStoryTitleInCondition(t *testing.T) {
	cat := catalog.Default()
	e, err := NewSectionEngine([]model.OptionSection{{Key: "recession", When: `StoryTitle() == "The Great Recession" && PlayerCount() > 2`}})
	if err != nil {
		t.Fatal(err)
	}
	gs := players(3)
	gs.StoryIndex = cat.StoryIndex("The Great Recession")
	if len(e.Visible(input(gs))) != 1 {
		t.Error("section should be visible")
	}
	gs.PlayerCount = 2
	if len(e.Visible(input(gs))) != 0 {
		t.Error("section should be hidden for two players")
	}
}
