package rules

import (
	"testing"

	"github.com/nstehr/shiny/model"
)

func tokens(p model.Provenance, m model.ResourceMethod, v int) model.ModifyResource {
	return model.ModifyResource{Provenance: p, Resource: model.ResourceGameLengthTokens, Method: m, Value: v, Description: "timer"}
}

func TestTimer(t *testing.T) {
	tests := []struct {
		name        string
		rules       model.RuleList
		timer       model.TimerMode
		expansions  map[string]bool
		wantEnabled bool
		wantTokens  int
		wantUnpred  bool
	}{
		{"baseline", nil, model.TimerStandard, nil, true, 20, false},
		{"story shortens", model.RuleList{tokens(fromCard, model.MethodSet, 20), tokens(fromStory, model.MethodSet, 15)}, model.TimerStandard, nil, true, 15, false},
		{"disabled means no timer", model.RuleList{tokens(fromStory, model.MethodDisable, 0)}, model.TimerStandard, nil, false, 0, false},
		{"unpredictable needs tenth", nil, model.TimerUnpredictable, nil, true, 20, false},
		{"unpredictable", nil, model.TimerUnpredictable, expansions(model.ExpansionTenth), true, 20, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := players(1)
			gs.Timer.Mode = tt.timer
			gs.Expansions = tt.expansions
			v := Timer(input(gs, tt.rules...))
			if v.Enabled != tt.wantEnabled || v.Tokens.Value != tt.wantTokens || v.Unpredictable != tt.wantUnpred {
				t.Errorf("Timer = enabled %v tokens %d unpredictable %v, want %v %d %v",
					v.Enabled, v.Tokens.Value, v.Unpredictable, tt.wantEnabled, tt.wantTokens, tt.wantUnpred)
			}
		})
	}
}

func TestTimerHidesStoryInQuickMode(t *testing.T) {
	rs := model.RuleList{
		tokens(fromStory, model.MethodAdd, 2),
		model.AddSpecialRule{Provenance: fromStory, Category: model.CategoryTimer, Rule: model.RuleBlock{Title: "Tight Schedule", Content: model.Nodes(model.Text("hurry"))}},
	}
	gs := players(1)
	if _, ok := findBlock(Timer(input(gs, rs...)).Blocks, "Tight Schedule"); !ok {
		t.Error("story block missing in detailed mode")
	}
	gs.SetupMode = model.SetupQuick
	v := Timer(input(gs, rs...))
	if len(v.Blocks) != 0 {
		t.Errorf("quick mode should hide story blocks, got %+v", v.Blocks)
	}
	if v.Tokens.Value != 22 {
		t.Errorf("tokens = %d, want 22", v.Tokens.Value)
	}
}
