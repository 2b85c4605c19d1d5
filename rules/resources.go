package rules

import (
	"strconv"

	"github.com/nstehr/shiny/model"
)

// Baselines are the starting values before any fragment applies.
var Baselines = map[model.ResourceKind]int{
	model.ResourceCredits:          3000,
	model.ResourceFuel:             6,
	model.ResourceParts:            2,
	model.ResourceWarrants:         0,
	model.ResourceGoalTokens:       0,
	model.ResourceGameLengthTokens: 20,
}

// startingResources is the display order of the resources step.
var startingResources = []model.ResourceKind{
	model.ResourceCredits,
	model.ResourceFuel,
	model.ResourceParts,
	model.ResourceWarrants,
	model.ResourceGoalTokens,
}

// Resource is one folded resource value.
type Resource struct {
	Kind     model.ResourceKind `json:"kind"`
	Value    int                `json:"value"`
	Disabled bool               `json:"disabled,omitempty"`
	Trail    []string           `json:"trail,omitempty"`
	Source   model.RuleSource   `json:"source,omitempty"`
	Conflict *Conflict[int]     `json:"conflict,omitempty"`
}

// Modified reports whether any fragment touched the resource.
func (r Resource) Modified() bool { return r.Source != "" }

// FoldResource folds every modify-resource fragment for kind.
//
// set replaces the value and restarts the trail; add accumulates and
// extends it; disable zeroes the value and marks it disabled. When sources
// disagree on set, only the winning source's sets apply. add on a disabled
// resource is ignored until a later set revives it.
func FoldResource(kind model.ResourceKind, rs model.RuleList, gs model.GameState) Resource {
	var mods []model.ModifyResource
	for _, m := range Of[model.ModifyResource](rs) {
		if m.Resource == kind {
			mods = append(mods, m)
		}
	}

	var sets []Candidate[int]
	for _, m := range mods {
		if m.Method == model.MethodSet {
			sets = append(sets, Candidate[int]{Source: m.Source, SourceName: m.SourceName, Value: m.Value, Description: m.Description})
		}
	}
	res := ResolveSet(string(kind), sets, gs)

	out := Resource{Kind: kind, Value: Baselines[kind], Conflict: res.Conflict}
	for _, m := range mods {
		desc := m.Description
		if desc == "" {
			desc = m.SourceName
		}
		switch m.Method {
		case model.MethodSet:
			if res.Conflict != nil && m.Source != res.Winner.Source {
				continue
			}
			out.Value = m.Value
			out.Disabled = false
			out.Trail = []string{desc}
		case model.MethodAdd:
			if out.Disabled {
				continue
			}
			out.Value += m.Value
			out.Trail = append(out.Trail, desc)
		case model.MethodDisable:
			out.Value = 0
			out.Disabled = true
			out.Trail = append(out.Trail, desc)
		default:
			continue
		}
		out.Source = m.Source
	}
	return out
}

// ResourcesView is the starting-resources step.
type ResourcesView struct {
	Resources []Resource        `json:"resources"`
	Blocks    []model.RuleBlock `json:"blocks,omitempty"`
}

// Get returns the folded resource of kind.
func (v ResourcesView) Get(kind model.ResourceKind) Resource {
	for _, r := range v.Resources {
		if r.Kind == kind {
			return r
		}
	}
	return Resource{Kind: kind, Value: Baselines[kind]}
}

// Resources computes every starting resource.
func Resources(in Input) ResourcesView {
	var v ResourcesView
	for _, kind := range startingResources {
		r := FoldResource(kind, in.Rules, in.State)
		v.Resources = append(v.Resources, r)
		if r.Conflict != nil {
			v.Blocks = append(v.Blocks, conflictBlock(r.Conflict, resourceLabel(kind), func(n int) string { return showResource(kind, n) }))
		}
		if !r.Modified() {
			continue
		}
		v.Blocks = append(v.Blocks, resourceBlock(r))
	}
	v.Blocks = append(v.Blocks, SpecialRules(in.Rules, model.CategoryResources)...)
	return v
}

func resourceBlock(r Resource) model.RuleBlock {
	head := resourceLabel(r.Kind) + ": " + showResource(r.Kind, r.Value)
	if r.Disabled {
		head = resourceLabel(r.Kind) + ": none"
	}
	var items [][]model.Node
	for _, t := range r.Trail {
		items = append(items, model.Nodes(model.Text(t)))
	}
	return block(r.Source, "", model.Paragraph(model.Strong(model.Text(head))), model.List(items...))
}

func resourceLabel(kind model.ResourceKind) string {
	switch kind {
	case model.ResourceCredits:
		return "Credits"
	case model.ResourceFuel:
		return "Fuel"
	case model.ResourceParts:
		return "Parts"
	case model.ResourceWarrants:
		return "Warrants"
	case model.ResourceGoalTokens:
		return "Goal tokens"
	case model.ResourceGameLengthTokens:
		return "Game Length tokens"
	}
	return string(kind)
}

func showResource(kind model.ResourceKind, n int) string {
	if kind == model.ResourceCredits {
		return Money(n)
	}
	return strconv.Itoa(n)
}
