package rules

import (
	"fmt"

	"github.com/nstehr/shiny/model"
)

// HasFlag reports whether any fragment asserts flag. Flags are facts, so
// there is no precedence: one match is enough.
func HasFlag(rs model.RuleList, flag string) bool {
	_, ok := flagOrigin(rs, flag)
	return ok
}

func flagOrigin(rs model.RuleList, flag string) (model.Provenance, bool) {
	for _, f := range Of[model.AddFlag](rs) {
		if f.Flag == flag {
			return f.Origin(), true
		}
	}
	return model.Provenance{}, false
}

// Of returns the fragments of variant T in gather order.
func Of[T model.Rule](rs model.RuleList) []T {
	var out []T
	for _, r := range rs {
		if v, ok := r.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

// Last returns the final fragment of variant T.
func Last[T model.Rule](rs model.RuleList) (T, bool) {
	var zero T
	for i := len(rs) - 1; i >= 0; i-- {
		if v, ok := rs[i].(T); ok {
			return v, true
		}
	}
	return zero, false
}

// FromSource keeps the fragments contributed by src.
func FromSource(rs model.RuleList, src model.RuleSource) model.RuleList {
	var out model.RuleList
	for _, r := range rs {
		if r.Origin().Source == src {
			out = append(out, r)
		}
	}
	return out
}

// SpecialRules returns the display blocks of every add-special-rule fragment
// in category. A block without its own source takes the fragment's.
func SpecialRules(rs model.RuleList, category model.SpecialRuleCategory) []model.RuleBlock {
	var out []model.RuleBlock
	for _, sr := range Of[model.AddSpecialRule](rs) {
		if sr.Category != category {
			continue
		}
		b := sr.Rule
		if b.Source == "" {
			b.Source = sr.Source
		}
		if b.Title == "" {
			b.Title = sr.SourceName
		}
		out = append(out, b)
	}
	return out
}

// Components maps step ids to the alternate component named by set-component
// fragments. A later fragment for the same step wins.
func Components(rs model.RuleList) map[string]string {
	out := map[string]string{}
	for _, sc := range Of[model.SetComponent](rs) {
		out[sc.StepID] = sc.Component
	}
	return out
}

// StepFor names the wizard step whose view a fragment changes. Unknown
// fragments and flags checked across several steps map to "".
func StepFor(r model.Rule) string {
	switch r := r.(type) {
	case model.SetJobMode, model.SetJobContacts, model.AllowContacts,
		model.ForbidContact, model.PrimeContacts, model.SetJobStepContent:
		return model.StepJobs
	case model.SetNavMode:
		return model.StepNavDecks
	case model.SetPrimeMode, model.ModifyPrime:
		return model.StepPrime
	case model.SetDraftMode, model.SetLeaderSetup, model.BypassDraft,
		model.SetPlayerBadges, model.SetShipPlacement:
		return model.StepDraft
	case model.SetAllianceMode, model.SetAlliancePlacement,
		model.CreateAlertTokenStack, model.AddBoardComponent:
		return model.StepAllianceReaver
	case model.ModifyResource:
		if r.Resource == model.ResourceGameLengthTokens {
			return model.StepGameLengthTokens
		}
		return model.StepResources
	case model.AddSpecialRule:
		return categoryStep[r.Category]
	case model.SetComponent:
		return r.StepID
	case model.AddFlag, model.UnknownRule:
		return ""
	default:
		panic(fmt.Sprintf("rules: StepFor: unhandled rule kind %q", r.Kind()))
	}
}

var categoryStep = map[model.SpecialRuleCategory]string{
	model.CategoryNav:       model.StepNavDecks,
	model.CategoryAlliance:  model.StepAllianceReaver,
	model.CategoryDraft:     model.StepDraft,
	model.CategoryGoal:      model.StepGoal,
	model.CategoryResources: model.StepResources,
	model.CategoryJobs:      model.StepJobs,
	model.CategoryPrime:     model.StepPrime,
	model.CategoryTimer:     model.StepGameLengthTokens,
}

// OverriddenSteps lists, in first-seen order, the steps whose view is changed
// by a story fragment. The wizard tracks these for acknowledgement.
func OverriddenSteps(rs model.RuleList) []string {
	var out []string
	seen := map[string]bool{}
	for _, r := range FromSource(rs, model.SourceStory) {
		id := StepFor(r)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
