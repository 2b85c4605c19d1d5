// Package plan assembles the full wizard plan: the ordered steps from the
// flow calculator, each paired with the view model of its calculator.
package plan

import (
	"fmt"
	"slices"

	"github.com/nstehr/shiny/catalog"
	"github.com/nstehr/shiny/flow"
	"github.com/nstehr/shiny/model"
	"github.com/nstehr/shiny/rules"
)

// StepView is one step with its computed view model. View is nil for the
// configuration steps that have nothing to compute.
type StepView struct {
	flow.Step
	Component     string `json:"component"`
	StoryOverride bool   `json:"storyOverride,omitempty"`
	Acknowledged  bool   `json:"acknowledged,omitempty"`
	View          any    `json:"view,omitempty"`
}

// Plan is the whole wizard for one state snapshot.
type Plan struct {
	Steps []StepView `json:"steps"`
	// Overridden lists the steps whose view a story changes.
	Overridden []string       `json:"overridden,omitempty"`
	Rules      model.RuleList `json:"rules"`
}

// Step returns the view for id.
func (p Plan) Step(id string) (StepView, bool) {
	for _, s := range p.Steps {
		if s.ID == id {
			return s, true
		}
	}
	return StepView{}, false
}

// FinalView summarizes the starting position on the last step.
type FinalView struct {
	Credits         rules.Resource  `json:"credits"`
	StartingCredits int             `json:"startingCredits"`
	Timer           rules.TimerView `json:"timer"`
}

// Planner holds the catalog and its compiled section conditions.
type Planner struct {
	cat      *catalog.Catalog
	sections *rules.SectionEngine
}

// New compiles the catalog's option sections.
func New(cat *catalog.Catalog) (*Planner, error) {
	se, err := rules.NewSectionEngine(cat.Sections)
	if err != nil {
		return nil, fmt.Errorf("new planner: %w", err)
	}
	return &Planner{cat: cat, sections: se}, nil
}

// Build computes the plan for gs.
func (p *Planner) Build(gs model.GameState) Plan {
	in := rules.NewInput(gs, p.cat)
	components := rules.Components(in.Rules)
	overridden := rules.OverriddenSteps(in.Rules)

	var out Plan
	out.Rules = in.Rules
	out.Overridden = overridden
	for _, s := range flow.Calculate(gs, p.cat) {
		sv := StepView{Step: s, Component: s.ID}
		if c, ok := components[s.ID]; ok {
			sv.Component = c
		}
		sv.StoryOverride = slices.Contains(overridden, s.ID)
		sv.Acknowledged = slices.Contains(gs.Overrides.Acknowledged, s.ID)
		sv.View = p.view(in.ForStep(s.ID, s.Overrides))
		out.Steps = append(out.Steps, sv)
	}
	return out
}

func (p *Planner) view(in rules.Input) any {
	switch in.StepID {
	case model.StepOptionalRules:
		return p.sections.OptionalRules(in)
	case model.StepNavDecks:
		return rules.Nav(in)
	case model.StepAllianceReaver:
		return rules.Alliance(in)
	case model.StepDraft, model.StepDraftHaven:
		return rules.Draft(in)
	case model.StepGoal:
		return rules.Goal(in)
	case model.StepResources:
		return rules.Resources(in)
	case model.StepJobs:
		return rules.Jobs(in)
	case model.StepPrime:
		return rules.Prime(in)
	case model.StepGameLengthTokens:
		return rules.Timer(in)
	case model.StepFinal:
		return final(in)
	}
	return nil
}

func final(in rules.Input) FinalView {
	credits := rules.Resources(in).Get(model.ResourceCredits)
	v := FinalView{Credits: credits, StartingCredits: credits.Value, Timer: rules.Timer(in)}
	if in.State.FinalStartingCredits > 0 {
		v.StartingCredits = in.State.FinalStartingCredits
	}
	return v
}

// Build is a one-shot helper for callers without a Planner. It panics if the
// catalog's section conditions do not compile.
func Build(gs model.GameState, cat *catalog.Catalog) Plan {
	p, err := New(cat)
	if err != nil {
		panic(err)
	}
	return p.Build(gs)
}
