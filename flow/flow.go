// Package flow computes the ordered wizard steps for a game state.
package flow

import (
	"github.com/nstehr/shiny/catalog"
	"github.com/nstehr/shiny/model"
)

// Step is one concrete wizard step.
type Step struct {
	ID        string              `json:"id"`
	Type      string              `json:"type"`
	Title     string              `json:"title"`
	Page      int                 `json:"page,omitempty"`
	Manual    string              `json:"manual,omitempty"`
	Overrides model.StepOverrides `json:"overrides"`
	Additive  bool                `json:"additive,omitempty"`
}

// leadingSteps are always first. The optional-rules step is unconditional
// because it always carries the house rules.
var leadingSteps = []string{model.StepCaptainSetup, model.StepSetupCard, model.StepOptionalRules}

// Calculate returns the wizard steps for gs.
//
// The backbone is the secondary card's template when the primary is a
// combinable overlay with a secondary chosen, otherwise the primary's own
// template, otherwise the standard card. An overlay then merges its override
// bags into matching backbone steps and appends the steps only it has.
// Template entries without registry content are dropped; catalog.Check
// reports them.
func Calculate(gs model.GameState, cat *catalog.Catalog) []Step {
	var steps []Step
	seen := map[string]bool{}
	emit := func(s Step) {
		if seen[s.ID] {
			return
		}
		seen[s.ID] = true
		steps = append(steps, s)
	}

	for _, id := range leadingSteps {
		if s, ok := fromRegistry(cat, model.StepTemplate{ID: id}); ok {
			emit(s)
		}
	}

	primary, primaryErr := cat.SetupCard(gs.SetupCardID)
	backbone := backboneCard(gs, cat, primary, primaryErr == nil)

	overlay := primaryErr == nil && primary.Combinable && primary.ID != backbone.ID
	for _, tmpl := range backbone.Steps {
		s, ok := fromRegistry(cat, tmpl)
		if !ok {
			continue
		}
		if overlay {
			if top, ok := primary.Step(tmpl.ID); ok && top.Overrides != nil {
				s.Overrides = s.Overrides.Merge(*top.Overrides)
			}
		}
		emit(s)
	}
	if overlay {
		for _, tmpl := range primary.Steps {
			if seen[tmpl.ID] {
				continue
			}
			s, ok := fromRegistry(cat, tmpl)
			if !ok {
				continue
			}
			s.Additive = true
			emit(s)
		}
	}

	if s, ok := fromRegistry(cat, model.StepTemplate{ID: model.StepFinal}); ok {
		emit(s)
	}
	return steps
}

func backboneCard(gs model.GameState, cat *catalog.Catalog, primary model.SetupCard, found bool) model.SetupCard {
	if found && primary.Combinable && gs.SecondarySetupCardID != "" {
		if secondary, err := cat.SetupCard(gs.SecondarySetupCardID); err == nil {
			return secondary
		}
	}
	if found {
		return primary
	}
	standard, _ := cat.SetupCard(model.SetupStandard)
	return standard
}

func fromRegistry(cat *catalog.Catalog, tmpl model.StepTemplate) (Step, bool) {
	content, ok := cat.StepContent(tmpl.ID)
	if !ok {
		return Step{}, false
	}
	s := Step{
		ID:     tmpl.ID,
		Type:   content.Type,
		Title:  content.Title,
		Page:   tmpl.Page,
		Manual: tmpl.Manual,
	}
	if tmpl.Overrides != nil {
		s.Overrides = *tmpl.Overrides
	}
	return s, true
}

// IDs lists the step ids in order.
func IDs(steps []Step) []string {
	ids := make([]string, len(steps))
	for i, s := range steps {
		ids[i] = s.ID
	}
	return ids
}
