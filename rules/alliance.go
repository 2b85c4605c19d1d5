package rules

import (
	"strconv"

	"github.com/nstehr/shiny/model"
)

const (
	DefaultCruiserPlacement = "Londinium"
	baseReaverCutters       = 1
	blueSunReaverCutters    = 3
)

var allianceModeText = map[model.AllianceMode]struct{ title, text string }{
	model.AllianceNoAlerts:      {"No Alert Tokens", "Do not place any Alliance Alert tokens."},
	model.AllianceExtraCruisers: {"Extra Cruisers", "Place a second Alliance Cruiser on the board."},
	model.AllianceAwfulCrowded:  {"Awful Crowded", "Place an Alliance Alert token in every planetary sector in Alliance Space."},
}

// AlertStack is a resolved create-alert-token-stack fragment.
type AlertStack struct {
	Location string           `json:"location"`
	Tokens   int              `json:"tokens"`
	Source   model.RuleSource `json:"source"`
}

// AllianceView is the alliance-reaver step.
type AllianceView struct {
	Mode              ModeChoice[model.AllianceMode] `json:"mode"`
	ReaverCutters     int                            `json:"reaverCutters"`
	CruiserPlacement  string                         `json:"cruiserPlacement"`
	PlacementConflict *Conflict[string]              `json:"placementConflict,omitempty"`
	AlertStacks       []AlertStack                   `json:"alertStacks,omitempty"`
	Components        []model.AddBoardComponent      `json:"components,omitempty"`
	Blocks            []model.RuleBlock              `json:"blocks,omitempty"`
}

// Alliance resolves Alliance and Reaver placement.
func Alliance(in Input) AllianceView {
	v := AllianceView{
		Mode: resolveMode("allianceMode", in.Overrides.AllianceMode, in.Rules, in.State,
			func(r model.SetAllianceMode) model.AllianceMode { return r.Mode }, model.AllianceStandard),
		ReaverCutters: baseReaverCutters,
	}
	if in.State.ExpansionActive(model.ExpansionBlueSun) {
		v.ReaverCutters = blueSunReaverCutters
	}
	if t, ok := allianceModeText[v.Mode.Mode]; ok {
		v.Blocks = append(v.Blocks, block(modeSource(v.Mode), t.title, model.Para(t.text)))
	}
	if v.Mode.Conflict != nil {
		v.Blocks = append(v.Blocks, conflictBlock(v.Mode.Conflict, "alliance mode", func(m model.AllianceMode) string { return string(m) }))
	}

	var attempts []Candidate[string]
	for _, p := range Of[model.SetAlliancePlacement](in.Rules) {
		attempts = append(attempts, Candidate[string]{Source: p.Source, SourceName: p.SourceName, Value: p.Placement})
	}
	placement := ResolveSet("alliancePlacement", attempts, in.State)
	v.CruiserPlacement = placement.Value(DefaultCruiserPlacement)
	v.PlacementConflict = placement.Conflict
	if placement.Set {
		v.Blocks = append(v.Blocks, block(placement.Winner.Source, placement.Winner.SourceName,
			model.Paragraph(model.Text("Place the Alliance Cruiser at "), model.Strong(model.Text(v.CruiserPlacement)), model.Text("."))))
	}
	if placement.Conflict != nil {
		v.Blocks = append(v.Blocks, conflictBlock(placement.Conflict, "Cruiser placement", func(s string) string { return s }))
	}

	for _, s := range Of[model.CreateAlertTokenStack](in.Rules) {
		n := s.Count
		if s.PerPlayer {
			n *= in.State.PlayerCount
		}
		v.AlertStacks = append(v.AlertStacks, AlertStack{Location: s.Location, Tokens: n, Source: s.Source})
		v.Blocks = append(v.Blocks, block(s.Source, s.SourceName,
			model.Para("Place a stack of "+strconv.Itoa(n)+" Alert tokens at "+s.Location+".")))
	}
	for _, c := range Of[model.AddBoardComponent](in.Rules) {
		v.Components = append(v.Components, c)
		text := "Add the " + c.Component
		if c.Count > 0 {
			text = "Add " + strconv.Itoa(c.Count) + " " + c.Component
		}
		if c.Location != "" {
			text += " to " + c.Location
		}
		v.Blocks = append(v.Blocks, block(c.Source, c.SourceName, model.Para(text+".")))
	}
	v.Blocks = append(v.Blocks, SpecialRules(in.Rules, model.CategoryAlliance)...)
	return v
}

// Instructions renders the baseline placement text.
func (v AllianceView) Instructions() []model.Node {
	cutters := "1 Reaver Cutter"
	if v.ReaverCutters != 1 {
		cutters = strconv.Itoa(v.ReaverCutters) + " Reaver Cutters"
	}
	return model.Nodes(model.Paragraph(
		model.Action(model.Text("Place")),
		model.Text(" the Alliance Cruiser at "+v.CruiserPlacement+" and "+cutters+" in the Firefly Reaver sectors."),
	))
}
