package rules

import (
	"slices"
	"strings"

	"github.com/nstehr/shiny/model"
)

// Ships with optional upgrade cards. The double-sided ones pick a side once.
var (
	UpgradeShips     = []string{"Serenity", "Bonanza", "Esmeralda", "Yun Qi", "Walden", "Interceptor"}
	DoubleSidedShips = []string{"Esmeralda", "Yun Qi"}
)

// ShipUpgrade is one entry of the optional ship upgrades list.
type ShipUpgrade struct {
	Ship        string `json:"ship"`
	DoubleSided bool   `json:"doubleSided,omitempty"`
}

// DraftView is the draft (or haven draft) step.
type DraftView struct {
	Mode          ModeChoice[model.DraftMode]  `json:"mode"`
	Leader        ModeChoice[model.LeaderMode] `json:"leader"`
	Haven         bool                         `json:"haven"`
	ShipPlacement string                       `json:"shipPlacement,omitempty"`
	Bypassed      bool                         `json:"bypassed,omitempty"`
	Badges        []string                     `json:"badges,omitempty"`
	ShipUpgrades  []ShipUpgrade                `json:"shipUpgrades,omitempty"`
	Blocks        []model.RuleBlock            `json:"blocks,omitempty"`
}

// Draft resolves leader and ship selection.
//
// Haven drafting applies on the haven step or in haven mode, unless a story
// fixes the starting location: story placement always wins.
func Draft(in Input) DraftView {
	gs := in.State
	v := DraftView{
		Mode: resolveMode("draftMode", in.Overrides.DraftMode, in.Rules, gs,
			func(r model.SetDraftMode) model.DraftMode { return r.Mode }, model.DraftStandard),
		Leader: resolveMode("leaderMode", in.Overrides.LeaderMode, in.Rules, gs,
			func(r model.SetLeaderSetup) model.LeaderMode { return r.Mode }, model.LeaderStandard),
	}

	v.Haven = in.StepID == model.StepDraftHaven || v.Mode.Mode == model.DraftHaven
	if p, ok := Last[model.SetShipPlacement](in.Rules); ok {
		v.ShipPlacement = p.Location
		v.Blocks = append(v.Blocks, block(p.Source, p.SourceName,
			model.Paragraph(model.Text("Every ship starts at "), model.Strong(model.Text(p.Location)), model.Text("."))))
		if v.Haven && p.Source == model.SourceStory {
			v.Haven = false
			v.Blocks = append(v.Blocks, block(model.SourceWarning, "Conflict resolved: story priority",
				model.Para("Haven drafting is skipped because "+p.SourceName+" sets every starting location.")))
		}
	}

	if v.Mode.Mode == model.DraftBrowncoat {
		v.Blocks = append(v.Blocks, block(modeSource(v.Mode), "Browncoat Draft",
			model.Para("Draft Leaders first, then buy ships and crew from the market in reverse order.")))
	}
	if v.Haven {
		src := model.SourceSetupCard
		if v.Mode.Mode == model.DraftHaven {
			src = modeSource(v.Mode)
		}
		v.Blocks = append(v.Blocks, block(src, "Haven Draft",
			model.Para("In reverse draft order, each captain places a Haven token in a sector of their choice.")))
	}
	if v.Mode.Conflict != nil {
		v.Blocks = append(v.Blocks, conflictBlock(v.Mode.Conflict, "draft mode", func(m model.DraftMode) string { return string(m) }))
	}

	if v.Leader.Mode == model.LeaderWanted {
		v.Blocks = append(v.Blocks, block(modeSource(v.Leader), "Wanted Leaders",
			model.Para("Every Leader begins the game Wanted: place a Warrant token on each Leader card.")))
	}

	if b, ok := Last[model.BypassDraft](in.Rules); ok {
		v.Bypassed = true
		desc := b.Description
		if desc == "" {
			desc = "Skip the draft."
		}
		v.Blocks = append(v.Blocks, block(b.Source, b.SourceName, model.Para(desc)))
	}
	if badges, ok := Last[model.SetPlayerBadges](in.Rules); ok {
		v.Badges = slices.Clone(badges.Badges)
		v.Blocks = append(v.Blocks, block(badges.Source, badges.SourceName,
			model.Para("Each captain takes a badge: "+strings.Join(v.Badges, ", ")+".")))
	}

	if gs.Option(model.OptionShipUpgrades) && gs.ExpansionActive(model.ExpansionTenth) {
		for _, s := range UpgradeShips {
			v.ShipUpgrades = append(v.ShipUpgrades, ShipUpgrade{Ship: s, DoubleSided: slices.Contains(DoubleSidedShips, s)})
		}
		v.Blocks = append(v.Blocks, block(model.SourceInfo, "Optional Ship Upgrades",
			model.Para("These ships have an upgrade card you may take with them:"),
			model.SubList(UpgradeShips...),
			model.WarningBox(model.Text(strings.Join(DoubleSidedShips, " and ")+
				" have double-sided upgrades: choose one side once. The choice cannot be changed.")),
		))
	}

	if HasFlag(in.Rules, model.FlagReducedEconomy) && gs.Challenge(model.ChallengeFreeStartingShip) {
		capital := FoldResource(model.ResourceCredits, in.Rules, gs).Value
		v.Blocks = append(v.Blocks, block(model.SourceWarning, "Reduced Economy",
			model.Para("Your free starting ship still costs its price: starting capital of "+Money(capital)+
				" is reduced by the ship's cost, to no less than "+Money(0)+"."),
			model.Para("This commonly leaves "+Money(0)+" for the market phase."),
		))
	}

	v.Blocks = append(v.Blocks, SpecialRules(in.Rules, model.CategoryDraft)...)
	return v
}

// CapitalAfterShip is the capital left after paying for a ship, floored
// at zero.
func CapitalAfterShip(capital, shipCost int) int {
	return max(0, capital-shipCost)
}
