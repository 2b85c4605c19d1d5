package model

// RuleKind is the `type` discriminant of a rule fragment.
type RuleKind string

const (
	KindSetJobMode            RuleKind = "set-job-mode"
	KindSetJobContacts        RuleKind = "set-job-contacts"
	KindAllowContacts         RuleKind = "allow-contacts"
	KindForbidContact         RuleKind = "forbid-contact"
	KindPrimeContacts         RuleKind = "prime-contacts"
	KindSetJobStepContent     RuleKind = "set-job-step-content"
	KindSetNavMode            RuleKind = "set-nav-mode"
	KindSetPrimeMode          RuleKind = "set-prime-mode"
	KindModifyPrime           RuleKind = "modify-prime"
	KindSetDraftMode          RuleKind = "set-draft-mode"
	KindSetLeaderSetup        RuleKind = "set-leader-setup"
	KindBypassDraft           RuleKind = "bypass-draft"
	KindSetPlayerBadges       RuleKind = "set-player-badges"
	KindSetAllianceMode       RuleKind = "set-alliance-mode"
	KindSetAlliancePlacement  RuleKind = "set-alliance-placement"
	KindCreateAlertTokenStack RuleKind = "create-alert-token-stack"
	KindAddBoardComponent     RuleKind = "add-board-component"
	KindSetShipPlacement      RuleKind = "set-ship-placement"
	KindModifyResource        RuleKind = "modify-resource"
	KindAddFlag               RuleKind = "add-flag"
	KindAddSpecialRule        RuleKind = "add-special-rule"
	KindSetComponent          RuleKind = "set-component"
)

// Provenance records which entity contributed a fragment.
type Provenance struct {
	Source     RuleSource `json:"source" yaml:"source"`
	SourceName string     `json:"sourceName" yaml:"sourceName"`
}

// Origin returns the provenance itself; every variant gets it by embedding.
func (p Provenance) Origin() Provenance { return p }

func (Provenance) rule() {}

// Rule is one immutable, tagged rule fragment. The set of implementations is
// closed: every variant lives in this file, and withOrigin forces a new
// variant to be wired into the stamping path.
type Rule interface {
	Kind() RuleKind
	Origin() Provenance
	withOrigin(Provenance) Rule
	rule()
}

// Stamp fills in the provenance fields a fragment left blank. Fragments that
// declare their own source (warnings, info notes) keep it.
func Stamp(r Rule, p Provenance) Rule {
	cur := r.Origin()
	if cur.Source == "" {
		cur.Source = p.Source
	}
	if cur.SourceName == "" {
		cur.SourceName = p.SourceName
	}
	return r.withOrigin(cur)
}

// StampAll stamps every fragment of rs, returning a new list.
func StampAll(rs RuleList, p Provenance) RuleList {
	if len(rs) == 0 {
		return rs
	}
	out := make(RuleList, len(rs))
	for i, r := range rs {
		out[i] = Stamp(r, p)
	}
	return out
}

type SetJobMode struct {
	Provenance `yaml:",inline"`
	Mode       JobMode `json:"mode" yaml:"mode"`
}

type SetJobContacts struct {
	Provenance `yaml:",inline"`
	Contacts   []string `json:"contacts" yaml:"contacts"`
}

type AllowContacts struct {
	Provenance `yaml:",inline"`
	Contacts   []string `json:"contacts" yaml:"contacts"`
}

type ForbidContact struct {
	Provenance `yaml:",inline"`
	Contact    string `json:"contact" yaml:"contact"`
}

// PrimeContacts declares that a no-jobs start primes every contact deck.
// Reveal defaults to 3 when zero.
type PrimeContacts struct {
	Provenance `yaml:",inline"`
	Reveal     int `json:"reveal,omitempty" yaml:"reveal,omitempty"`
}

// Content positions for SetJobStepContent.
const (
	PositionBefore  = "before"
	PositionAfter   = "after"
	PositionReplace = "replace"
)

type SetJobStepContent struct {
	Provenance `yaml:",inline"`
	Position   string `json:"position,omitempty" yaml:"position,omitempty"`
	Content    []Node `json:"content" yaml:"content"`
}

type SetNavMode struct {
	Provenance `yaml:",inline"`
	Mode       NavMode `json:"mode" yaml:"mode"`
}

type SetPrimeMode struct {
	Provenance `yaml:",inline"`
	Mode       PrimeMode `json:"mode" yaml:"mode"`
}

type ModifyPrime struct {
	Provenance `yaml:",inline"`
	Multiplier int `json:"multiplier" yaml:"multiplier"`
}

type SetDraftMode struct {
	Provenance `yaml:",inline"`
	Mode       DraftMode `json:"mode" yaml:"mode"`
}

type SetLeaderSetup struct {
	Provenance `yaml:",inline"`
	Mode       LeaderMode `json:"mode" yaml:"mode"`
}

type BypassDraft struct {
	Provenance  `yaml:",inline"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

type SetPlayerBadges struct {
	Provenance `yaml:",inline"`
	Badges     []string `json:"badges" yaml:"badges"`
}

type SetAllianceMode struct {
	Provenance `yaml:",inline"`
	Mode       AllianceMode `json:"mode" yaml:"mode"`
}

type SetAlliancePlacement struct {
	Provenance `yaml:",inline"`
	Placement  string `json:"placement" yaml:"placement"`
}

type CreateAlertTokenStack struct {
	Provenance `yaml:",inline"`
	Location   string `json:"location" yaml:"location"`
	Count      int    `json:"count" yaml:"count"`
	PerPlayer  bool   `json:"perPlayer,omitempty" yaml:"perPlayer,omitempty"`
}

type AddBoardComponent struct {
	Provenance `yaml:",inline"`
	Component  string `json:"component" yaml:"component"`
	Location   string `json:"location,omitempty" yaml:"location,omitempty"`
	Count      int    `json:"count,omitempty" yaml:"count,omitempty"`
}

type SetShipPlacement struct {
	Provenance `yaml:",inline"`
	Location   string `json:"location" yaml:"location"`
}

type ModifyResource struct {
	Provenance  `yaml:",inline"`
	Resource    ResourceKind   `json:"resource" yaml:"resource"`
	Method      ResourceMethod `json:"method" yaml:"method"`
	Value       int            `json:"value,omitempty" yaml:"value,omitempty"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
}

// AddFlag asserts a free-form boolean fact checked by name elsewhere.
type AddFlag struct {
	Provenance `yaml:",inline"`
	Flag       string `json:"flag" yaml:"flag"`
}

type AddSpecialRule struct {
	Provenance `yaml:",inline"`
	Category   SpecialRuleCategory `json:"category" yaml:"category"`
	Rule       RuleBlock           `json:"rule" yaml:"rule"`
}

// SetComponent swaps the presentation component used for one step.
type SetComponent struct {
	Provenance `yaml:",inline"`
	StepID     string `json:"stepId" yaml:"stepId"`
	Component  string `json:"component" yaml:"component"`
}

// UnknownRule carries a fragment whose type this build does not recognize.
// Calculators never match it, so it behaves as a no-op.
type UnknownRule struct {
	Provenance
	Type string `json:"-"`
	Raw  []byte `json:"-"`
}

func (SetJobMode) Kind() RuleKind            { return KindSetJobMode }
func (SetJobContacts) Kind() RuleKind        { return KindSetJobContacts }
func (AllowContacts) Kind() RuleKind         { return KindAllowContacts }
func (ForbidContact) Kind() RuleKind         { return KindForbidContact }
func (PrimeContacts) Kind() RuleKind         { return KindPrimeContacts }
func (SetJobStepContent) Kind() RuleKind     { return KindSetJobStepContent }
func (SetNavMode) Kind() RuleKind            { return KindSetNavMode }
func (SetPrimeMode) Kind() RuleKind          { return KindSetPrimeMode }
func (ModifyPrime) Kind() RuleKind           { return KindModifyPrime }
func (SetDraftMode) Kind() RuleKind          { return KindSetDraftMode }
func (SetLeaderSetup) Kind() RuleKind        { return KindSetLeaderSetup }
func (BypassDraft) Kind() RuleKind           { return KindBypassDraft }
func (SetPlayerBadges) Kind() RuleKind       { return KindSetPlayerBadges }
func (SetAllianceMode) Kind() RuleKind       { return KindSetAllianceMode }
func (SetAlliancePlacement) Kind() RuleKind  { return KindSetAlliancePlacement }
func (CreateAlertTokenStack) Kind() RuleKind { return KindCreateAlertTokenStack }
func (AddBoardComponent) Kind() RuleKind     { return KindAddBoardComponent }
func (SetShipPlacement) Kind() RuleKind      { return KindSetShipPlacement }
func (ModifyResource) Kind() RuleKind        { return KindModifyResource }
func (AddFlag) Kind() RuleKind               { return KindAddFlag }
func (AddSpecialRule) Kind() RuleKind        { return KindAddSpecialRule }
func (SetComponent) Kind() RuleKind          { return KindSetComponent }
func (u UnknownRule) Kind() RuleKind         { return RuleKind(u.Type) }

func (r SetJobMode) withOrigin(p Provenance) Rule            { r.Provenance = p; return r }
func (r SetJobContacts) withOrigin(p Provenance) Rule        { r.Provenance = p; return r }
func (r AllowContacts) withOrigin(p Provenance) Rule         { r.Provenance = p; return r }
func (r ForbidContact) withOrigin(p Provenance) Rule         { r.Provenance = p; return r }
func (r PrimeContacts) withOrigin(p Provenance) Rule         { r.Provenance = p; return r }
func (r SetJobStepContent) withOrigin(p Provenance) Rule     { r.Provenance = p; return r }
func (r SetNavMode) withOrigin(p Provenance) Rule            { r.Provenance = p; return r }
func (r SetPrimeMode) withOrigin(p Provenance) Rule          { r.Provenance = p; return r }
func (r ModifyPrime) withOrigin(p Provenance) Rule           { r.Provenance = p; return r }
func (r SetDraftMode) withOrigin(p Provenance) Rule          { r.Provenance = p; return r }
func (r SetLeaderSetup) withOrigin(p Provenance) Rule        { r.Provenance = p; return r }
func (r BypassDraft) withOrigin(p Provenance) Rule           { r.Provenance = p; return r }
func (r SetPlayerBadges) withOrigin(p Provenance) Rule       { r.Provenance = p; return r }
func (r SetAllianceMode) withOrigin(p Provenance) Rule       { r.Provenance = p; return r }
func (r SetAlliancePlacement) withOrigin(p Provenance) Rule  { r.Provenance = p; return r }
func (r CreateAlertTokenStack) withOrigin(p Provenance) Rule { r.Provenance = p; return r }
func (r AddBoardComponent) withOrigin(p Provenance) Rule     { r.Provenance = p; return r }
func (r SetShipPlacement) withOrigin(p Provenance) Rule      { r.Provenance = p; return r }
func (r ModifyResource) withOrigin(p Provenance) Rule        { r.Provenance = p; return r }
func (r AddFlag) withOrigin(p Provenance) Rule               { r.Provenance = p; return r }
func (r AddSpecialRule) withOrigin(p Provenance) Rule        { r.Provenance = p; return r }
func (r SetComponent) withOrigin(p Provenance) Rule          { r.Provenance = p; return r }
func (r UnknownRule) withOrigin(p Provenance) Rule           { r.Provenance = p; return r }
