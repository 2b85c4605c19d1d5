package catalog

import (
	"fmt"

	"github.com/nstehr/shiny/model"
)

// Problem is one data-authoring defect found by Check.
type Problem struct {
	Entity  string
	Message string
}

func (p Problem) String() string { return p.Entity + ": " + p.Message }

// Check runs the static cross-reference and uniqueness checks over c. The
// engine itself tolerates every defect reported here; this is the net that
// catches them before they ship.
func Check(c *Catalog) []Problem {
	var ps []Problem
	add := func(entity, format string, args ...any) {
		ps = append(ps, Problem{Entity: entity, Message: fmt.Sprintf(format, args...)})
	}

	seenExp := map[string]bool{}
	for _, e := range c.Expansions {
		name := "expansion " + e.ID
		if e.ID == "" {
			add(name, "missing id")
		}
		if seenExp[e.ID] {
			add(name, "duplicate id")
		}
		seenExp[e.ID] = true
		checkRules(name, e.Rules, c, add)
	}

	seenStep := map[string]bool{}
	for _, s := range c.Steps {
		if seenStep[s.ID] {
			add("step "+s.ID, "duplicate registry entry")
		}
		seenStep[s.ID] = true
		if s.Title == "" {
			add("step "+s.ID, "missing title")
		}
	}
	for _, id := range []string{model.StepCaptainSetup, model.StepSetupCard, model.StepOptionalRules, model.StepFinal} {
		if !seenStep[id] {
			add("step "+id, "fixed step missing from registry")
		}
	}

	seenCard := map[string]bool{}
	for _, sc := range c.SetupCards {
		name := "setup card " + sc.ID
		if seenCard[sc.ID] {
			add(name, "duplicate id")
		}
		seenCard[sc.ID] = true
		if sc.RequiredExpansion != "" && !seenExp[sc.RequiredExpansion] {
			add(name, "requires unknown expansion %q", sc.RequiredExpansion)
		}
		if sc.Mode != "" && sc.Mode != model.SetupCardSoloOnly {
			add(name, "unknown mode %q", sc.Mode)
		}
		stepSeen := map[string]bool{}
		for _, st := range sc.Steps {
			if _, ok := c.StepContent(st.ID); !ok {
				add(name, "step %q has no registry content", st.ID)
			}
			if stepSeen[st.ID] {
				add(name, "step %q listed twice", st.ID)
			}
			stepSeen[st.ID] = true
			if st.Overrides != nil {
				checkOverrides(name+" step "+st.ID, *st.Overrides, add)
			}
		}
		checkRules(name, sc.Rules, c, add)
	}
	if !seenCard[model.SetupStandard] {
		add("setup card "+model.SetupStandard, "baseline card missing")
	}
	if card, err := c.SetupCard(model.SetupFlyingSolo); err == nil && !card.Combinable {
		add("setup card "+card.ID, "solo overlay must be combinable")
	}

	seenTitle := map[string]bool{}
	for i, s := range c.Stories {
		name := fmt.Sprintf("story %d %q", i, s.Title)
		if s.Title == "" {
			add(name, "missing title")
		}
		if seenTitle[s.Title] {
			add(name, "duplicate title")
		}
		seenTitle[s.Title] = true
		for _, req := range s.Requirements() {
			if !seenExp[req] {
				add(name, "requires unknown expansion %q", req)
			}
		}
		if s.Rating < 0 || s.Rating > 5 {
			add(name, "rating %.1f outside 0..5", s.Rating)
		}
		if s.PlayerCount != 0 && (s.PlayerCount < model.MinPlayers || s.PlayerCount > model.MaxPlayers) {
			add(name, "player count %d out of range", s.PlayerCount)
		}
		seenGoal := map[string]bool{}
		for _, g := range s.Goals {
			if seenGoal[g.Title] {
				add(name, "duplicate goal %q", g.Title)
			}
			seenGoal[g.Title] = true
		}
		seenChallenge := map[string]bool{}
		for _, ch := range s.ChallengeOptions {
			if ch.ID == "" || seenChallenge[ch.ID] {
				add(name, "challenge option id %q missing or duplicated", ch.ID)
			}
			seenChallenge[ch.ID] = true
		}
		checkRules(name, s.Rules, c, add)
	}

	seenSection := map[string]bool{}
	for _, sec := range c.Sections {
		if seenSection[sec.Key] {
			add("section "+sec.Key, "duplicate key")
		}
		seenSection[sec.Key] = true
		switch sec.Scope {
		case "", model.ScopeOptional, model.ScopeSolo, model.ScopeInfo:
		default:
			add("section "+sec.Key, "unknown scope %q", sec.Scope)
		}
	}
	return ps
}

func checkOverrides(name string, o model.StepOverrides, add func(string, string, ...any)) {
	if o.NavMode != "" && !o.NavMode.Valid() {
		add(name, "unknown nav mode %q", o.NavMode)
	}
	if o.JobMode != "" && !o.JobMode.Valid() {
		add(name, "unknown job mode %q", o.JobMode)
	}
	if o.PrimeMode != "" && !o.PrimeMode.Valid() {
		add(name, "unknown prime mode %q", o.PrimeMode)
	}
	if o.DraftMode != "" && !o.DraftMode.Valid() {
		add(name, "unknown draft mode %q", o.DraftMode)
	}
	if o.LeaderMode != "" && !o.LeaderMode.Valid() {
		add(name, "unknown leader mode %q", o.LeaderMode)
	}
	if o.AllianceMode != "" && !o.AllianceMode.Valid() {
		add(name, "unknown alliance mode %q", o.AllianceMode)
	}
}

func checkRules(name string, rules model.RuleList, c *Catalog, add func(string, string, ...any)) {
	for i, r := range rules {
		where := fmt.Sprintf("%s rule %d (%s)", name, i, r.Kind())
		if !r.Origin().Source.Valid() {
			add(where, "invalid source %q", r.Origin().Source)
		}
		switch r := r.(type) {
		case model.UnknownRule:
			add(where, "unknown rule type")
		case model.SetJobMode:
			if !r.Mode.Valid() {
				add(where, "unknown job mode %q", r.Mode)
			}
		case model.SetNavMode:
			if !r.Mode.Valid() {
				add(where, "unknown nav mode %q", r.Mode)
			}
		case model.SetPrimeMode:
			if !r.Mode.Valid() {
				add(where, "unknown prime mode %q", r.Mode)
			}
		case model.SetDraftMode:
			if !r.Mode.Valid() {
				add(where, "unknown draft mode %q", r.Mode)
			}
		case model.SetLeaderSetup:
			if !r.Mode.Valid() {
				add(where, "unknown leader mode %q", r.Mode)
			}
		case model.SetAllianceMode:
			if !r.Mode.Valid() {
				add(where, "unknown alliance mode %q", r.Mode)
			}
		case model.ModifyResource:
			if !r.Method.Valid() {
				add(where, "unknown method %q", r.Method)
			}
		case model.ModifyPrime:
			if r.Multiplier < 1 {
				add(where, "multiplier %d must be positive", r.Multiplier)
			}
		case model.AddSpecialRule:
			if !r.Category.Valid() {
				add(where, "unknown category %q", r.Category)
			}
		case model.SetComponent:
			if _, ok := c.StepContent(r.StepID); !ok {
				add(where, "targets unknown step %q", r.StepID)
			}
		case model.SetJobStepContent:
			switch r.Position {
			case "", model.PositionBefore, model.PositionAfter, model.PositionReplace:
			default:
				add(where, "unknown position %q", r.Position)
			}
		}
	}
}
