// Package rules turns the current game state into effective setup values.
// Resolve gathers the active rule fragments; the calculators in this package
// fold them into per-concern view models. Everything here is a pure function
// of its inputs.
package rules

import (
	"github.com/nstehr/shiny/catalog"
	"github.com/nstehr/shiny/model"
)

// Resolve returns every fragment active for gs, in gather order: primary
// setup card, secondary card (only when the primary is combinable), the
// selected story, then each active expansion in catalog order.
//
// Nothing is filtered or deduplicated; consumers apply their own precedence.
func Resolve(gs model.GameState, cat *catalog.Catalog) model.RuleList {
	var out model.RuleList

	primary, err := cat.SetupCard(gs.SetupCardID)
	if err == nil {
		out = append(out, primary.Rules...)
		if primary.Combinable && gs.SecondarySetupCardID != "" {
			if secondary, err := cat.SetupCard(gs.SecondarySetupCardID); err == nil {
				out = append(out, secondary.Rules...)
			}
		}
	}

	if story, ok := cat.Story(gs.StoryIndex); ok {
		out = append(out, story.Rules...)
	}

	for _, e := range cat.ActiveExpansions(gs.Expansions) {
		out = append(out, e.Rules...)
	}
	return out
}
