package rules

import (
	"strconv"

	"github.com/nstehr/shiny/model"
)

// TimerView is the game-length-tokens step of a solo game.
type TimerView struct {
	Enabled       bool              `json:"enabled"`
	Tokens        Resource          `json:"tokens"`
	Unpredictable bool              `json:"unpredictable"`
	Blocks        []model.RuleBlock `json:"blocks,omitempty"`
}

// Timer folds the game length tokens. A disabled token pool means the game
// has no timer at all.
func Timer(in Input) TimerView {
	gs := in.State
	tokens := FoldResource(model.ResourceGameLengthTokens, in.Rules, gs)
	v := TimerView{
		Enabled:       !tokens.Disabled,
		Tokens:        tokens,
		Unpredictable: gs.Timer.Mode == model.TimerUnpredictable && gs.ExpansionActive(model.ExpansionTenth),
	}

	var blocks []model.RuleBlock
	if tokens.Conflict != nil {
		blocks = append(blocks, conflictBlock(tokens.Conflict, "game length", strconv.Itoa))
	}
	if tokens.Disabled {
		blocks = append(blocks, block(tokens.Source, "No Timer",
			model.Para("Play without Game Length tokens; the game ends when the goal is met.")))
	} else if tokens.Modified() {
		blocks = append(blocks, resourceBlock(tokens))
	}
	if v.Enabled && v.Unpredictable {
		blocks = append(blocks, block(model.SourceInfo, "Unpredictable Timer",
			model.NumberedList(
				model.Nodes(model.Text("Shuffle the numbered Game Length tokens face down.")),
				model.Nodes(model.Text("At the start of each turn, reveal one token.")),
				model.Nodes(model.Text("If its number is at least the turns remaining, the game ends after this turn.")),
			)))
	}
	blocks = append(blocks, SpecialRules(in.Rules, model.CategoryTimer)...)
	v.Blocks = visible(blocks, in.hideStory())
	return v
}

// Instructions renders the token setup line.
func (v TimerView) Instructions() []model.Node {
	if !v.Enabled {
		return nil
	}
	return model.Nodes(model.Paragraph(
		model.Action(model.Text("Set out")),
		model.Text(" "+strconv.Itoa(v.Tokens.Value)+" Game Length tokens. Discard one at the start of each turn."),
	))
}
