package rules

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nstehr/shiny/model"
)

var printer = message.NewPrinter(language.English)

// Money renders a credit amount the way the cards print it: $12,000.
func Money(n int) string {
	return printer.Sprintf("$%d", n)
}

func block(src model.RuleSource, title string, content ...model.Node) model.RuleBlock {
	return model.RuleBlock{Source: src, Title: title, Content: content}
}

// visible drops story blocks when hide is set.
func visible(blocks []model.RuleBlock, hide bool) []model.RuleBlock {
	if !hide {
		return blocks
	}
	var out []model.RuleBlock
	for _, b := range blocks {
		if b.Source != model.SourceStory {
			out = append(out, b)
		}
	}
	return out
}

// modeSource picks the annotation source for a non-baseline mode.
func modeSource[M ~string](c ModeChoice[M]) model.RuleSource {
	if c.Source == "" {
		return model.SourceSetupCard
	}
	return c.Source
}

// conflictBlock renders a detected conflict as a warning.
func conflictBlock[T comparable](c *Conflict[T], label string, show func(T) string) model.RuleBlock {
	var items [][]model.Node
	for _, cand := range c.Candidates {
		line := cand.SourceName + " (" + string(cand.Source) + "): " + show(cand.Value)
		if cand.Source == c.Winner {
			items = append(items, model.Nodes(model.Strong(model.Text(line))))
			continue
		}
		items = append(items, model.Nodes(model.Text(line)))
	}
	how := "Resolved by priority: story, then setup card, then expansion."
	if c.Manual {
		how = "You chose which source wins."
	}
	return block(model.SourceWarning, "Conflict: "+label,
		model.Para(how),
		model.List(items...),
	)
}
