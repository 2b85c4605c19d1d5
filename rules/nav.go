package rules

import "github.com/nstehr/shiny/model"

var navModeBlocks = map[model.NavMode]struct {
	title string
	text  []model.Node
}{
	model.NavBrowncoat: {"Browncoat Nav", model.Nodes(
		model.Para("Shuffle the Alliance and Border Nav decks separately."),
		model.List(
			model.Nodes(model.Text("Remove every Reaver card from the Border deck before the first shuffle.")),
			model.Nodes(model.Text("Shuffle them back in once any player completes a Job.")),
		))},
	model.NavRim: {"Rim Space Nav", model.Nodes(
		model.Para("Use the Rim Space Nav deck in place of the Border deck for every Rim sector."))},
	model.NavFlyingSolo: {"Flying Solo Nav", model.Nodes(
		model.Para("Shuffle a Reshuffle card into each Nav deck."),
		model.WarningBox(model.Text("When you draw a Reshuffle card, discard a Game Length token.")))},
	model.NavClearSkies: {"Clear Skies", model.Nodes(
		model.Para("Remove every Cruiser and Reaver movement card from both Nav decks."))},
}

// NavView is the nav-decks step.
type NavView struct {
	Mode   ModeChoice[model.NavMode] `json:"mode"`
	Blocks []model.RuleBlock         `json:"blocks,omitempty"`
}

// Nav resolves the navigation-deck mode and its notes.
func Nav(in Input) NavView {
	v := NavView{
		Mode: resolveMode("navMode", in.Overrides.NavMode, in.Rules, in.State,
			func(r model.SetNavMode) model.NavMode { return r.Mode }, model.NavStandard),
	}
	if b, ok := navModeBlocks[v.Mode.Mode]; ok {
		v.Blocks = append(v.Blocks, block(modeSource(v.Mode), b.title, b.text...))
	}
	if v.Mode.Conflict != nil {
		v.Blocks = append(v.Blocks, conflictBlock(v.Mode.Conflict, "nav mode", func(m model.NavMode) string { return string(m) }))
	}
	v.Blocks = append(v.Blocks, SpecialRules(in.Rules, model.CategoryNav)...)
	return v
}
