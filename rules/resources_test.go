package rules

import (
	"testing"

	"github.com/nstehr/shiny/catalog"
	"github.com/nstehr/shiny/model"
)

func credits(p model.Provenance, m model.ResourceMethod, v int, desc string) model.ModifyResource {
	return model.ModifyResource{Provenance: p, Resource: model.ResourceCredits, Method: m, Value: v, Description: desc}
}

func TestFoldResource(t *testing.T) {
	tests := []struct {
		name         string
		rules        model.RuleList
		wantValue    int
		wantTrail    int
		wantDisabled bool
		wantConflict bool
	}{
		{"baseline", nil, 3000, 0, false, false},
		{
			"set then add",
			model.RuleList{credits(fromCard, model.MethodSet, 3000, "card"), credits(fromExp, model.MethodAdd, 1200, "bonus")},
			4200, 2, false, false,
		},
		{
			"story set beats card set",
			model.RuleList{credits(fromCard, model.MethodSet, 3000, "card"), credits(fromStory, model.MethodSet, 500, "story")},
			500, 1, false, true,
		},
		{
			"add after losing set still applies",
			model.RuleList{credits(fromStory, model.MethodSet, 500, "story"), credits(fromCard, model.MethodSet, 12000, "card"), credits(fromExp, model.MethodAdd, 100, "tip")},
			600, 2, false, true,
		},
		{
			"disable zeroes",
			model.RuleList{credits(fromStory, model.MethodDisable, 0, "broke")},
			0, 1, true, false,
		},
		{
			"add on disabled is ignored",
			model.RuleList{credits(fromStory, model.MethodDisable, 0, "broke"), credits(fromExp, model.MethodAdd, 200, "tip")},
			0, 1, true, false,
		},
		{
			"set revives disabled",
			model.RuleList{credits(fromCard, model.MethodDisable, 0, "broke"), credits(fromStory, model.MethodSet, 700, "loan")},
			700, 1, false, false,
		},
		{
			"other resources ignored",
			model.RuleList{model.ModifyResource{Provenance: fromStory, Resource: model.ResourceFuel, Method: model.MethodSet, Value: 1}},
			3000, 0, false, false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FoldResource(model.ResourceCredits, tt.rules, players(2))
			if r.Value != tt.wantValue {
				t.Errorf("Value = %d, want %d", r.Value, tt.wantValue)
			}
			if len(r.Trail) != tt.wantTrail {
				t.Errorf("Trail = %v, want length %d", r.Trail, tt.wantTrail)
			}
			if r.Disabled != tt.wantDisabled {
				t.Errorf("Disabled = %v, want %v", r.Disabled, tt.wantDisabled)
			}
			if (r.Conflict != nil) != tt.wantConflict {
				t.Errorf("Conflict = %+v, want present=%v", r.Conflict, tt.wantConflict)
			}
		})
	}
}

func TestFoldIsDeterministic(t *testing.T) {
	rs := model.RuleList{credits(fromCard, model.MethodSet, 3000, "card"), credits(fromStory, model.MethodSet, 500, "story")}
	a := Resources(input(players(3), rs...))
	b := Resources(input(players(3), rs...))
	if a.Get(model.ResourceCredits).Value != b.Get(model.ResourceCredits).Value || len(a.Blocks) != len(b.Blocks) {
		t.Error("Resources is not deterministic")
	}
}

func TestCreditsConflictFromCatalog(t *testing.T) {
	cat := catalog.Default()
	gs := players(3)
	gs.SetupCardID = "browncoat_way"
	gs.StoryIndex = cat.StoryIndex("Running On Empty")
	gs.Expansions = cat.DefaultExpansions()

	v := Resources(NewInput(gs, cat))
	cr := v.Get(model.ResourceCredits)
	if cr.Value != 500 {
		t.Errorf("credits = %d, want 500", cr.Value)
	}
	if cr.Conflict == nil {
		t.Fatal("expected a credits conflict")
	}
	var sawCard, sawStory bool
	for _, c := range cr.Conflict.Candidates {
		switch {
		case c.Source == model.SourceSetupCard && c.Value == 12000:
			sawCard = true
		case c.Source == model.SourceStory && c.Value == 500:
			sawStory = true
		}
	}
	if !sawCard || !sawStory {
		t.Errorf("candidates = %+v", cr.Conflict.Candidates)
	}
	if _, ok := findBlock(v.Blocks, "Conflict: Credits"); !ok {
		t.Error("missing conflict block")
	}

	gs.ManualConflicts = true
	gs.ConflictSelections = map[string]model.RuleSource{string(model.ResourceCredits): model.SourceSetupCard}
	cr = Resources(NewInput(gs, cat)).Get(model.ResourceCredits)
	if cr.Value != 12000 {
		t.Errorf("manual credits = %d, want 12000", cr.Value)
	}
	if cr.Conflict == nil || !cr.Conflict.Manual {
		t.Errorf("conflict should persist under manual resolution, got %+v", cr.Conflict)
	}
}

func TestMoney(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "$0"},
		{500, "$500"},
		{12000, "$12,000"},
	}
	for _, tt := range tests {
		if got := Money(tt.in); got != tt.want {
			t.Errorf("Money(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCapitalAfterShip(t *testing.T) {
	if got := CapitalAfterShip(500, 4800); got != 0 {
		t.Errorf("CapitalAfterShip(500, 4800) = %d, want 0", got)
	}
	if got := CapitalAfterShip(12000, 4800); got != 7200 {
		t.Errorf("CapitalAfterShip(12000, 4800) = %d, want 7200", got)
	}
}
