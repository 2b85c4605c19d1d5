package rules

import (
	"strings"

	"github.com/nstehr/shiny/catalog"
	"github.com/nstehr/shiny/model"
)

var (
	fromStory = model.Provenance{Source: model.SourceStory, SourceName: "Test Story"}
	fromCard  = model.Provenance{Source: model.SourceSetupCard, SourceName: "Test Card"}
	fromExp   = model.Provenance{Source: model.SourceExpansion, SourceName: "Test Expansion"}
)

func players(n int) model.GameState {
	return model.GameState{PlayerCount: n, StoryIndex: model.NoStory, SetupMode: model.SetupDetailed}
}

func input(gs model.GameState, rs ...model.Rule) Input {
	return Input{State: gs, Rules: rs, Catalog: catalog.Default()}
}

func expansions(ids ...string) map[string]bool {
	m := map[string]bool{}
	for _, id := range ids {
		m[id] = true
	}
	return m
}

// findBlock returns the first block whose title or text contains s.
func findBlock(blocks []model.RuleBlock, s string) (model.RuleBlock, bool) {
	for _, b := range blocks {
		if strings.Contains(b.Title, s) || strings.Contains(model.PlainText(b.Content), s) {
			return b, true
		}
	}
	return model.RuleBlock{}, false
}
