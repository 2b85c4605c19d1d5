package rules

import (
	"slices"
	"strconv"
	"strings"

	"github.com/nstehr/shiny/model"
)

// Contacts dealing Jobs in the core game and the two Rim Space expansions.
var (
	coreContacts     = []string{"Harken", "Badger", "Amnon Duul", "Patience", "Niska"}
	blueSunContacts  = []string{"Lord Harrow", "Mr. Universe"}
	kalidasaContacts = []string{"Fanty & Mingo", "Magistrate Higgins"}
)

const (
	standardKeep     = 3
	singleContactCap = 1
	defaultReveal    = 3
)

// Placeholder ids resolved in job-step content.
const (
	PlaceholderJobDraw      = "jobDrawCount"
	PlaceholderJobKeep      = "jobKeepCount"
	PlaceholderContactCount = "contactCount"
)

// baseContacts returns the contact list a job mode deals from.
func baseContacts(mode model.JobMode, gs model.GameState) []string {
	switch mode {
	case model.JobAwful:
		return []string{"Harken", "Amnon Duul", "Patience"}
	case model.JobRim:
		return slices.Concat(blueSunContacts, kalidasaContacts)
	case model.JobNone, model.JobCaperStart, model.JobWindTakesUs:
		return nil
	}
	out := slices.Clone(coreContacts)
	if gs.ExpansionActive(model.ExpansionBlueSun) {
		out = append(out, blueSunContacts...)
	}
	if gs.ExpansionActive(model.ExpansionKalidasa) {
		out = append(out, kalidasaContacts...)
	}
	return out
}

var jobModeText = map[model.JobMode]string{
	model.JobNone:        "No starting Jobs are dealt.",
	model.JobHide:        "Deal starting Jobs face down; reveal them only when you act on them.",
	model.JobTimes:       "Draw Jobs only from contacts who appear in the Times deck.",
	model.JobHighAlert:   "Only Illegal Jobs may be kept; discard every Legal Job drawn.",
	model.JobButtons:     "Draw a Job from every contact and keep any number of them.",
	model.JobAwful:       "Only the least reputable contacts are willing to deal.",
	model.JobRim:         "Only Rim Space contacts deal starting Jobs.",
	model.JobDraftChoice: "Starting Jobs are chosen in draft order from a face-up pool.",
	model.JobCaperStart:  "Start with a Caper instead of Jobs.",
	model.JobWindTakesUs: "Skip starting Jobs; every captain starts in open space.",
	model.JobSharedHand:  "Deal starting Jobs to a shared face-up hand everyone may take from.",
}

// JobsView is the starting-jobs step.
type JobsView struct {
	Mode                  ModeChoice[model.JobMode] `json:"mode"`
	Contacts              []string                  `json:"contacts"`
	ForbiddenContacts     []string                  `json:"forbiddenContacts,omitempty"`
	IsSingleContactChoice bool                      `json:"isSingleContactChoice"`
	DrawPerContact        int                       `json:"drawPerContact"`
	Keep                  int                       `json:"keep"`
	PrimeContacts         bool                      `json:"primeContacts"`
	Instructions          []model.Node              `json:"instructions,omitempty"`
	Blocks                []model.RuleBlock         `json:"blocks,omitempty"`
}

// Jobs computes the contact list and draw allowance for starting jobs.
func Jobs(in Input) JobsView {
	gs := in.State
	v := JobsView{
		Mode: resolveMode("jobMode", in.Overrides.JobMode, in.Rules, gs,
			func(r model.SetJobMode) model.JobMode { return r.Mode }, model.JobStandard),
		DrawPerContact: 1,
		Keep:           standardKeep,
	}
	var blocks []model.RuleBlock
	if !v.Mode.Baseline(model.JobStandard) {
		blocks = append(blocks, block(modeSource(v.Mode), jobModeTitle(v.Mode.Mode), model.Para(jobModeText[v.Mode.Mode])))
	}
	if v.Mode.Conflict != nil {
		blocks = append(blocks, conflictBlock(v.Mode.Conflict, "job mode", func(m model.JobMode) string { return string(m) }))
	}

	contacts := baseContacts(v.Mode.Mode, gs)
	if set, ok := Last[model.SetJobContacts](in.Rules); ok {
		contacts = slices.Clone(set.Contacts)
		blocks = append(blocks, block(set.Source, set.SourceName,
			model.Para("Deal starting Jobs only from: "+strings.Join(contacts, ", ")+".")))
	}

	for _, f := range Of[model.ForbidContact](in.Rules) {
		v.ForbiddenContacts = append(v.ForbiddenContacts, f.Contact)
		i := slices.Index(contacts, f.Contact)
		if i < 0 {
			blocks = append(blocks, block(f.Source, f.SourceName,
				model.Para("Do not take Jobs from "+f.Contact+".")))
			continue
		}
		contacts = slices.Delete(slices.Clone(contacts), i, i+1)
		blocks = append(blocks, block(model.SourceWarning, "Contact conflict",
			model.Paragraph(
				model.Text(f.SourceName+" forbids "),
				model.Strong(model.Text(f.Contact)),
				model.Text(", who would otherwise deal Jobs under "+jobModeTitle(v.Mode.Mode)+". "+f.Contact+" is removed from the contact list."),
			)))
	}

	if allow, ok := Last[model.AllowContacts](in.Rules); ok {
		contacts = slices.DeleteFunc(slices.Clone(contacts), func(c string) bool {
			return !slices.Contains(allow.Contacts, c)
		})
		blocks = append(blocks, block(allow.Source, allow.SourceName,
			model.Para("Only these contacts deal starting Jobs: "+strings.Join(contacts, ", ")+".")))
	}
	if contacts == nil {
		contacts = []string{}
	}
	v.Contacts = contacts

	if gs.Challenge(model.ChallengeSingleContact) {
		v.IsSingleContactChoice = true
		v.DrawPerContact = singleContactCap
		v.Keep = singleContactCap
		blocks = append(blocks, block(model.SourceWarning, "Single Contact",
			model.Para("Choose one contact and draw exactly 1 Job from them.")))
	}

	blocks = append(blocks, primingBlocks(&v, in)...)
	blocks = append(blocks, SpecialRules(in.Rules, model.CategoryJobs)...)

	placeholders := map[string]string{
		PlaceholderJobDraw:      strconv.Itoa(v.DrawPerContact),
		PlaceholderJobKeep:      strconv.Itoa(v.Keep),
		PlaceholderContactCount: strconv.Itoa(len(v.Contacts)),
	}
	v.Instructions = model.ResolvePlaceholders(v.standardInstructions(), placeholders)

	var before, after []model.RuleBlock
	for _, sc := range Of[model.SetJobStepContent](in.Rules) {
		b := block(sc.Source, sc.SourceName, model.ResolvePlaceholders(sc.Content, placeholders)...)
		switch sc.Position {
		case model.PositionReplace:
			if sc.Source == model.SourceStory && in.hideStory() {
				continue
			}
			v.Instructions = b.Content
		case model.PositionAfter:
			after = append(after, b)
		default:
			before = append(before, b)
		}
	}
	blocks = slices.Concat(before, blocks, after)
	v.Blocks = visible(blocks, in.hideStory())
	return v
}

// primingBlocks handles a no-jobs start that primes the contact decks
// instead.
func primingBlocks(v *JobsView, in Input) []model.RuleBlock {
	if v.Mode.Mode != model.JobNone {
		return nil
	}
	p, ok := Last[model.PrimeContacts](in.Rules)
	if !ok {
		return nil
	}
	if in.State.Challenge(model.ChallengeDontPrimeContacts) {
		return []model.RuleBlock{block(model.SourceWarning, "No Jobs, No Priming",
			model.Para("No starting Jobs are dealt and the Contact decks are not primed."))}
	}
	v.PrimeContacts = true
	reveal := p.Reveal
	if reveal <= 0 {
		reveal = defaultReveal
	}
	return []model.RuleBlock{block(p.Source, "Prime the Contact Decks",
		model.NumberedList(
			model.Nodes(model.Text("Reveal the top "+strconv.Itoa(reveal)+" cards of each Contact deck.")),
			model.Nodes(model.Text("Discard the revealed cards.")),
		))}
}

func (v JobsView) standardInstructions() []model.Node {
	if len(v.Contacts) == 0 {
		return nil
	}
	if v.IsSingleContactChoice {
		return model.Nodes(model.Paragraph(
			model.Action(model.Text("Starting Jobs:")),
			model.Text(" choose one of "+strings.Join(v.Contacts, ", ")+" and draw "),
			model.Placeholder(PlaceholderJobDraw),
			model.Text(" Job."),
		))
	}
	return model.Nodes(model.Paragraph(
		model.Action(model.Text("Starting Jobs:")),
		model.Text(" draw "),
		model.Placeholder(PlaceholderJobDraw),
		model.Text(" Job from each of the "),
		model.Placeholder(PlaceholderContactCount),
		model.Text(" contacts ("+strings.Join(v.Contacts, ", ")+") and keep up to "),
		model.Placeholder(PlaceholderJobKeep),
		model.Text("."),
	))
}

func jobModeTitle(m model.JobMode) string {
	if m == model.JobStandard {
		return "standard Jobs"
	}
	return strings.ReplaceAll(string(m), "_", " ")
}
