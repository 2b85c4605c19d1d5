package rules

import "github.com/nstehr/shiny/model"

// SetPrecedence ranks the sources that may authoritatively set a scalar
// field, strongest first. Story beats setup card for every field.
var SetPrecedence = []model.RuleSource{
	model.SourceStory,
	model.SourceSetupCard,
	model.SourceExpansion,
}

// rank returns a source's position in SetPrecedence; sources not listed rank
// below all of them.
func rank(src model.RuleSource) int {
	for i, s := range SetPrecedence {
		if s == src {
			return i
		}
	}
	return len(SetPrecedence)
}
