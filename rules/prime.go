package rules

import (
	"strconv"

	"github.com/nstehr/shiny/model"
)

const (
	basePrimeDiscard       = 3
	highVolumePrimeDiscard = 4
	blitzMultiplier        = 2
	extraPrimingBonus      = 2
)

// PrimeView is the priming-the-pump step.
type PrimeView struct {
	Mode             ModeChoice[model.PrimeMode] `json:"mode"`
	HighSupplyVolume bool                        `json:"highSupplyVolume"`
	BaseDiscard      int                         `json:"baseDiscard"`
	Multiplier       int                         `json:"multiplier"`
	ExtraPriming     bool                        `json:"extraPriming"`
	Count            int                         `json:"count"`
	Blocks           []model.RuleBlock           `json:"blocks,omitempty"`
}

// Prime computes how many cards to discard from each supply deck.
//
// The base is 3, or 4 when supply volume is high and the house rule is on.
// Blitz doubles it and beats any story multiplier. The extra-priming bonus
// is added after multiplying.
func Prime(in Input) PrimeView {
	v := PrimeView{
		Mode: resolveMode("primeMode", in.Overrides.PrimeMode, in.Rules, in.State,
			func(r model.SetPrimeMode) model.PrimeMode { return r.Mode }, model.PrimeStandard),
		HighSupplyVolume: highSupplyVolume(in),
		BaseDiscard:      basePrimeDiscard,
		Multiplier:       1,
	}
	if v.HighSupplyVolume && in.State.Option(model.OptionHighVolumeSupply) {
		v.BaseDiscard = highVolumePrimeDiscard
	}

	var mult Resolution[int]
	if v.Mode.Mode == model.PrimeBlitz {
		v.Multiplier = blitzMultiplier
		v.Blocks = append(v.Blocks, block(modeSource(v.Mode), "The Blitz",
			model.Para("Double the number of cards discarded from each Supply deck.")))
	} else {
		var attempts []Candidate[int]
		// Only the story card's own multiplier applies.
		for _, m := range Of[model.ModifyPrime](FromSource(in.Rules, model.SourceStory)) {
			attempts = append(attempts, Candidate[int]{Source: m.Source, SourceName: m.SourceName, Value: m.Multiplier})
		}
		mult = ResolveSet("primeMultiplier", attempts, in.State)
		if mult.Set && mult.Winner.Value > 0 {
			v.Multiplier = mult.Winner.Value
			v.Blocks = append(v.Blocks, block(mult.Winner.Source, mult.Winner.SourceName,
				model.Para("Discard "+strconv.Itoa(v.Multiplier)+" times the usual number of cards.")))
		}
	}

	v.Count = v.BaseDiscard * v.Multiplier
	v.ExtraPriming = HasFlag(in.Rules, model.FlagExtraPriming)
	if o, ok := flagOrigin(in.Rules, model.FlagExtraPriming); ok {
		v.Count += extraPrimingBonus
		v.Blocks = append(v.Blocks, block(o.Source, "Extra Priming",
			model.Para("Discard "+strconv.Itoa(extraPrimingBonus)+" more cards from each Supply deck.")))
	}

	if v.Mode.Conflict != nil {
		v.Blocks = append(v.Blocks, conflictBlock(v.Mode.Conflict, "prime mode", func(m model.PrimeMode) string { return string(m) }))
	}
	if mult.Conflict != nil {
		v.Blocks = append(v.Blocks, conflictBlock(mult.Conflict, "prime multiplier", strconv.Itoa))
	}
	if v.BaseDiscard == highVolumePrimeDiscard {
		v.Blocks = append(v.Blocks, block(model.SourceInfo, "High Volume Supply",
			model.Para("Three or more supply-heavy expansions are in play: the base discard is 4.")))
	}
	v.Blocks = append(v.Blocks, SpecialRules(in.Rules, model.CategoryPrime)...)
	return v
}

// Instructions renders the discard step itself.
func (v PrimeView) Instructions() []model.Node {
	return model.Nodes(model.Paragraph(
		model.Action(model.Text("Prime the Pump:")),
		model.Text(" discard the top "+strconv.Itoa(v.Count)+" cards of each Supply deck."),
	))
}
