package rules

import "github.com/nstehr/shiny/model"

// Candidate is one source's attempt to set a field.
type Candidate[T comparable] struct {
	Source      model.RuleSource `json:"source"`
	SourceName  string           `json:"sourceName"`
	Value       T                `json:"value"`
	Description string           `json:"description,omitempty"`
}

// Conflict records a genuine disagreement between sources over one field.
// It is reported whether or not the user resolves it manually, so a
// front end can keep offering the choice.
type Conflict[T comparable] struct {
	Field      string           `json:"field"`
	Candidates []Candidate[T]   `json:"candidates"`
	Winner     model.RuleSource `json:"winner"`
	Manual     bool             `json:"manual"`
}

// Resolution is the outcome of ResolveSet.
type Resolution[T comparable] struct {
	Set      bool
	Winner   Candidate[T]
	Conflict *Conflict[T]
}

// Value returns the winning value, or fallback when nothing set the field.
func (r Resolution[T]) Value(fallback T) T {
	if !r.Set {
		return fallback
	}
	return r.Winner.Value
}

// ResolveSet applies the conflict protocol to every set attempt on field.
//
// Within one source kind the last attempt wins. A conflict exists only when
// two source kinds want different values; it then resolves by SetPrecedence,
// or by the user's recorded choice when manual resolution is on and that
// choice names one of the contenders.
func ResolveSet[T comparable](field string, attempts []Candidate[T], gs model.GameState) Resolution[T] {
	if len(attempts) == 0 {
		return Resolution[T]{}
	}

	var cands []Candidate[T]
	for _, a := range attempts {
		replaced := false
		for i := range cands {
			if cands[i].Source == a.Source {
				cands[i] = a
				replaced = true
				break
			}
		}
		if !replaced {
			cands = append(cands, a)
		}
	}

	best := cands[0]
	for _, c := range cands[1:] {
		if rank(c.Source) < rank(best.Source) {
			best = c
		}
	}

	agree := true
	for _, c := range cands[1:] {
		if c.Value != cands[0].Value {
			agree = false
			break
		}
	}
	if agree {
		return Resolution[T]{Set: true, Winner: best}
	}

	conflict := &Conflict[T]{Field: field, Candidates: cands, Winner: best.Source}
	winner := best
	if gs.ManualConflicts {
		conflict.Manual = true
		if sel, ok := gs.ConflictSelections[field]; ok {
			for _, c := range cands {
				if c.Source == sel {
					winner = c
					conflict.Winner = sel
					break
				}
			}
		}
	}
	return Resolution[T]{Set: true, Winner: winner, Conflict: conflict}
}

// ModeChoice is an effective mode plus where it came from.
type ModeChoice[M ~string] struct {
	Mode         M                `json:"mode"`
	FromOverride bool             `json:"fromOverride,omitempty"`
	Source       model.RuleSource `json:"source,omitempty"`
	SourceName   string           `json:"sourceName,omitempty"`
	Conflict     *Conflict[M]     `json:"conflict,omitempty"`
}

// Baseline reports whether the mode is the untouched default.
func (c ModeChoice[M]) Baseline(standard M) bool { return c.Mode == standard }

// resolveMode applies the shared mode order: step override, then the set
// fragments of variant R, then standard.
func resolveMode[R model.Rule, M ~string](field string, override M, rs model.RuleList, gs model.GameState, get func(R) M, standard M) ModeChoice[M] {
	if override != "" {
		return ModeChoice[M]{Mode: override, FromOverride: true, Source: model.SourceSetupCard}
	}
	var attempts []Candidate[M]
	for _, r := range Of[R](rs) {
		o := r.Origin()
		attempts = append(attempts, Candidate[M]{Source: o.Source, SourceName: o.SourceName, Value: get(r)})
	}
	res := ResolveSet(field, attempts, gs)
	if !res.Set {
		return ModeChoice[M]{Mode: standard}
	}
	return ModeChoice[M]{
		Mode:       res.Winner.Value,
		Source:     res.Winner.Source,
		SourceName: res.Winner.SourceName,
		Conflict:   res.Conflict,
	}
}
