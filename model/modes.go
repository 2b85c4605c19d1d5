package model

// RuleSource tags where a rule fragment or an annotation block came from.
type RuleSource string

const (
	SourceStory     RuleSource = "story"
	SourceSetupCard RuleSource = "setupCard"
	SourceExpansion RuleSource = "expansion"
	SourceWarning   RuleSource = "warning"
	SourceInfo      RuleSource = "info"
)

// Valid reports whether s is one of the fixed provenance kinds.
func (s RuleSource) Valid() bool {
	switch s {
	case SourceStory, SourceSetupCard, SourceExpansion, SourceWarning, SourceInfo:
		return true
	}
	return false
}

// JobMode selects how starting jobs are drawn.
type JobMode string

const (
	JobStandard    JobMode = "standard"
	JobNone        JobMode = "no_jobs"
	JobHide        JobMode = "hide_jobs"
	JobTimes       JobMode = "times_jobs"
	JobHighAlert   JobMode = "high_alert_jobs"
	JobButtons     JobMode = "buttons_jobs"
	JobAwful       JobMode = "awful_jobs"
	JobRim         JobMode = "rim_jobs"
	JobDraftChoice JobMode = "draft_choice"
	JobCaperStart  JobMode = "caper_start"
	JobWindTakesUs JobMode = "wind_takes_us"
	JobSharedHand  JobMode = "shared_hand"
)

// JobModes lists every job mode in display order.
var JobModes = []JobMode{
	JobStandard, JobNone, JobHide, JobTimes, JobHighAlert, JobButtons,
	JobAwful, JobRim, JobDraftChoice, JobCaperStart, JobWindTakesUs, JobSharedHand,
}

// NavMode selects how the navigation decks are built.
type NavMode string

const (
	NavStandard   NavMode = "standard"
	NavBrowncoat  NavMode = "browncoat"
	NavRim        NavMode = "rim"
	NavFlyingSolo NavMode = "flying_solo"
	NavClearSkies NavMode = "clear_skies"
)

var NavModes = []NavMode{NavStandard, NavBrowncoat, NavRim, NavFlyingSolo, NavClearSkies}

// PrimeMode selects the priming-the-pump variant.
type PrimeMode string

const (
	PrimeStandard PrimeMode = "standard"
	PrimeBlitz    PrimeMode = "blitz"
)

var PrimeModes = []PrimeMode{PrimeStandard, PrimeBlitz}

// DraftMode selects how leaders and ships are chosen.
type DraftMode string

const (
	DraftStandard  DraftMode = "standard"
	DraftBrowncoat DraftMode = "browncoat"
	DraftHaven     DraftMode = "haven"
)

var DraftModes = []DraftMode{DraftStandard, DraftBrowncoat, DraftHaven}

// LeaderMode selects how leaders start the game.
type LeaderMode string

const (
	LeaderStandard LeaderMode = "standard"
	LeaderWanted   LeaderMode = "wanted"
)

var LeaderModes = []LeaderMode{LeaderStandard, LeaderWanted}

// AllianceMode selects Alliance presence on the board.
type AllianceMode string

const (
	AllianceStandard      AllianceMode = "standard"
	AllianceNoAlerts      AllianceMode = "no_alerts"
	AllianceExtraCruisers AllianceMode = "extra_cruisers"
	AllianceAwfulCrowded  AllianceMode = "awful_crowded"
)

var AllianceModes = []AllianceMode{AllianceStandard, AllianceNoAlerts, AllianceExtraCruisers, AllianceAwfulCrowded}

// ResourceKind names a starting resource.
type ResourceKind string

const (
	ResourceCredits          ResourceKind = "credits"
	ResourceFuel             ResourceKind = "fuel"
	ResourceParts            ResourceKind = "parts"
	ResourceWarrants         ResourceKind = "warrants"
	ResourceGoalTokens       ResourceKind = "goalTokens"
	ResourceGameLengthTokens ResourceKind = "gameLengthTokens"
)

// ResourceMethod is how a modify-resource fragment changes its resource.
type ResourceMethod string

const (
	MethodSet     ResourceMethod = "set"
	MethodAdd     ResourceMethod = "add"
	MethodDisable ResourceMethod = "disable"
)

// SpecialRuleCategory decides which step displays an add-special-rule block.
type SpecialRuleCategory string

const (
	CategoryGeneral   SpecialRuleCategory = "general"
	CategoryNav       SpecialRuleCategory = "nav"
	CategoryAlliance  SpecialRuleCategory = "alliance"
	CategoryDraft     SpecialRuleCategory = "draft"
	CategoryGoal      SpecialRuleCategory = "goal"
	CategoryResources SpecialRuleCategory = "resources"
	CategoryJobs      SpecialRuleCategory = "jobs"
	CategoryPrime     SpecialRuleCategory = "prime"
	CategoryTimer     SpecialRuleCategory = "timer"
)

var SpecialRuleCategories = []SpecialRuleCategory{
	CategoryGeneral, CategoryNav, CategoryAlliance, CategoryDraft, CategoryGoal,
	CategoryResources, CategoryJobs, CategoryPrime, CategoryTimer,
}

func contains[T comparable](set []T, v T) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func (m JobMode) Valid() bool             { return contains(JobModes, m) }
func (m NavMode) Valid() bool             { return contains(NavModes, m) }
func (m PrimeMode) Valid() bool           { return contains(PrimeModes, m) }
func (m DraftMode) Valid() bool           { return contains(DraftModes, m) }
func (m LeaderMode) Valid() bool          { return contains(LeaderModes, m) }
func (m AllianceMode) Valid() bool        { return contains(AllianceModes, m) }
func (c SpecialRuleCategory) Valid() bool { return contains(SpecialRuleCategories, c) }

func (m ResourceMethod) Valid() bool {
	return m == MethodSet || m == MethodAdd || m == MethodDisable
}
