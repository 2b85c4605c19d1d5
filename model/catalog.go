package model

// Expansion is an optional content pack.
type Expansion struct {
	ID            string   `json:"id" yaml:"id"`
	Label         string   `json:"label" yaml:"label"`
	Rules         RuleList `json:"rules,omitempty" yaml:"rules,omitempty"`
	Hidden        bool     `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	DefaultActive bool     `json:"defaultActive,omitempty" yaml:"defaultActive,omitempty"`
	SupplyHeavy   bool     `json:"supplyHeavy,omitempty" yaml:"supplyHeavy,omitempty"`
}

// StepOverrides is the per-step override bag a setup card attaches to a
// step template. Zero fields mean "not overridden".
type StepOverrides struct {
	NavMode      NavMode      `json:"navMode,omitempty" yaml:"navMode,omitempty"`
	JobMode      JobMode      `json:"jobMode,omitempty" yaml:"jobMode,omitempty"`
	PrimeMode    PrimeMode    `json:"primeMode,omitempty" yaml:"primeMode,omitempty"`
	DraftMode    DraftMode    `json:"draftMode,omitempty" yaml:"draftMode,omitempty"`
	LeaderMode   LeaderMode   `json:"leaderMode,omitempty" yaml:"leaderMode,omitempty"`
	AllianceMode AllianceMode `json:"allianceMode,omitempty" yaml:"allianceMode,omitempty"`
	HideStory    *bool        `json:"hideStory,omitempty" yaml:"hideStory,omitempty"`
}

// Merge returns o with every field set in top copied over it.
func (o StepOverrides) Merge(top StepOverrides) StepOverrides {
	if top.NavMode != "" {
		o.NavMode = top.NavMode
	}
	if top.JobMode != "" {
		o.JobMode = top.JobMode
	}
	if top.PrimeMode != "" {
		o.PrimeMode = top.PrimeMode
	}
	if top.DraftMode != "" {
		o.DraftMode = top.DraftMode
	}
	if top.LeaderMode != "" {
		o.LeaderMode = top.LeaderMode
	}
	if top.AllianceMode != "" {
		o.AllianceMode = top.AllianceMode
	}
	if top.HideStory != nil {
		v := *top.HideStory
		o.HideStory = &v
	}
	return o
}

// StepTemplate is one entry of a setup card's step sequence.
type StepTemplate struct {
	ID        string         `json:"id" yaml:"id"`
	Page      int            `json:"page,omitempty" yaml:"page,omitempty"`
	Manual    string         `json:"manual,omitempty" yaml:"manual,omitempty"`
	Overrides *StepOverrides `json:"overrides,omitempty" yaml:"overrides,omitempty"`
}

// SetupCardMode restricts where a setup card may be used.
type SetupCardMode string

const SetupCardSoloOnly SetupCardMode = "solo"

// SetupCard is a named variant ruleset.
type SetupCard struct {
	ID                string         `json:"id" yaml:"id"`
	Label             string         `json:"label" yaml:"label"`
	Description       string         `json:"description,omitempty" yaml:"description,omitempty"`
	RequiredExpansion string         `json:"requiredExpansion,omitempty" yaml:"requiredExpansion,omitempty"`
	Steps             []StepTemplate `json:"steps" yaml:"steps"`
	Rules             RuleList       `json:"rules,omitempty" yaml:"rules,omitempty"`
	Combinable        bool           `json:"isCombinable,omitempty" yaml:"isCombinable,omitempty"`
	Mode              SetupCardMode  `json:"mode,omitempty" yaml:"mode,omitempty"`
}

// Step returns the template entry for id.
func (c SetupCard) Step(id string) (StepTemplate, bool) {
	for _, s := range c.Steps {
		if s.ID == id {
			return s, true
		}
	}
	return StepTemplate{}, false
}

type Goal struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

type ChallengeOption struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// StoryCard is a scenario. Title doubles as its stable identifier.
type StoryCard struct {
	Title                  string            `json:"title" yaml:"title"`
	Intro                  string            `json:"intro" yaml:"intro"`
	SetupDescription       string            `json:"setupDescription,omitempty" yaml:"setupDescription,omitempty"`
	RequiredExpansion      string            `json:"requiredExpansion,omitempty" yaml:"requiredExpansion,omitempty"`
	AdditionalRequirements []string          `json:"additionalRequirements,omitempty" yaml:"additionalRequirements,omitempty"`
	Solo                   bool              `json:"isSolo,omitempty" yaml:"isSolo,omitempty"`
	CoOp                   bool              `json:"isCoOp,omitempty" yaml:"isCoOp,omitempty"`
	PvP                    bool              `json:"isPvP,omitempty" yaml:"isPvP,omitempty"`
	PlayerCount            int               `json:"playerCount,omitempty" yaml:"playerCount,omitempty"`
	PlayerCounts           []int             `json:"playerCounts,omitempty" yaml:"playerCounts,omitempty"`
	Goals                  []Goal            `json:"goals,omitempty" yaml:"goals,omitempty"`
	ChallengeOptions       []ChallengeOption `json:"challengeOptions,omitempty" yaml:"challengeOptions,omitempty"`
	Rules                  RuleList          `json:"rules,omitempty" yaml:"rules,omitempty"`
	SourceURL              string            `json:"sourceUrl,omitempty" yaml:"sourceUrl,omitempty"`
	Rating                 float64           `json:"rating,omitempty" yaml:"rating,omitempty"`
	SortOrder              int               `json:"sortOrder,omitempty" yaml:"sortOrder,omitempty"`
}

// AllowsPlayers reports whether n captains may play this story.
func (s StoryCard) AllowsPlayers(n int) bool {
	if s.PlayerCount > 0 && s.PlayerCount != n {
		return false
	}
	if len(s.PlayerCounts) > 0 && !contains(s.PlayerCounts, n) {
		return false
	}
	return true
}

// Requirements lists every expansion the story needs.
func (s StoryCard) Requirements() []string {
	var out []string
	if s.RequiredExpansion != "" {
		out = append(out, s.RequiredExpansion)
	}
	return append(out, s.AdditionalRequirements...)
}

// StepContent is the registry entry that gives a step id its type and title.
type StepContent struct {
	ID    string `json:"id" yaml:"id"`
	Type  string `json:"type" yaml:"type"`
	Title string `json:"title" yaml:"title"`
}

// OptionSection is one block of the optional-rules step. When is an
// expression over the rule environment; empty means always visible.
type OptionSection struct {
	Key     string `json:"key" yaml:"key"`
	Title   string `json:"title" yaml:"title"`
	Scope   string `json:"scope,omitempty" yaml:"scope,omitempty"`
	Toggle  bool   `json:"toggle,omitempty" yaml:"toggle,omitempty"`
	When    string `json:"when,omitempty" yaml:"when,omitempty"`
	Content []Node `json:"content,omitempty" yaml:"content,omitempty"`
}

// Option section scopes, mapping a toggle to the state map it lives in.
const (
	ScopeOptional = "optional"
	ScopeSolo     = "solo"
	ScopeInfo     = "info"
)
