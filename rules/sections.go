package rules

import (
	"fmt"
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/nstehr/shiny/model"
)

// SectionEngine decides which optional-rules sections are visible. Each
// section's `when` is compiled once to expr bytecode; an empty condition is
// always true.
type SectionEngine struct {
	sections []compiledSection
}

type compiledSection struct {
	model.OptionSection
	program *vm.Program
}

// NewSectionEngine compiles every section condition against RuleEnv.
func NewSectionEngine(sections []model.OptionSection) (*SectionEngine, error) {
	compiled := make([]compiledSection, 0, len(sections))
	for _, s := range sections {
		cs := compiledSection{OptionSection: s}
		if s.When != "" {
			prog, err := expr.Compile(s.When, expr.Env(RuleEnv{}), expr.AsBool())
			if err != nil {
				return nil, fmt.Errorf("compile section %q: %w", s.Key, err)
			}
			cs.program = prog
		}
		compiled = append(compiled, cs)
	}
	return &SectionEngine{sections: compiled}, nil
}

// Visible returns the sections whose condition holds for in, in catalog
// order. A condition that fails at run time hides its section.
func (e *SectionEngine) Visible(in Input) []model.OptionSection {
	env := RuleEnv{Input: in}
	var out []model.OptionSection
	for _, s := range e.sections {
		if s.program == nil {
			out = append(out, s.OptionSection)
			continue
		}
		result, err := vm.Run(s.program, env)
		if err != nil {
			slog.Warn("section condition error", "section", s.Key, "error", err)
			continue
		}
		if match, ok := result.(bool); ok && match {
			out = append(out, s.OptionSection)
		}
	}
	return out
}

// SectionView is one visible section with its current toggle value.
type SectionView struct {
	model.OptionSection
	Enabled bool `json:"enabled"`
}

// OptionalRulesView is the optional-rules step.
type OptionalRulesView struct {
	Sections         []SectionView `json:"sections"`
	HighSupplyVolume bool          `json:"highSupplyVolume"`
	ManualConflicts  bool          `json:"manualConflicts"`
}

// OptionalRules lists the visible house-rule sections and their settings.
func (e *SectionEngine) OptionalRules(in Input) OptionalRulesView {
	gs := in.State
	v := OptionalRulesView{
		HighSupplyVolume: highSupplyVolume(in),
		ManualConflicts:  gs.ManualConflicts,
	}
	for _, s := range e.Visible(in) {
		v.Sections = append(v.Sections, SectionView{OptionSection: s, Enabled: sectionEnabled(s, gs)})
	}
	return v
}

// Section keys whose value lives outside the toggle maps.
const (
	SectionDisgruntledDie     = "disgruntledDie"
	SectionUnpredictableTimer = "unpredictableTimer"
	SectionManualConflicts    = "manualConflicts"
)

func sectionEnabled(s model.OptionSection, gs model.GameState) bool {
	switch s.Key {
	case SectionDisgruntledDie:
		return gs.DisgruntledDie == model.DieDisgruntled
	case SectionUnpredictableTimer:
		return gs.Timer.Mode == model.TimerUnpredictable
	case SectionManualConflicts:
		return gs.ManualConflicts
	}
	switch s.Scope {
	case model.ScopeOptional:
		return gs.OptionalRules[s.Key]
	case model.ScopeSolo:
		return gs.SoloOptions[s.Key]
	}
	return false
}
