package wizard

import (
	"testing"

	"github.com/nstehr/shiny/catalog"
	"github.com/nstehr/shiny/model"
)

var cat = catalog.Default()

func dispatch(t *testing.T, gs model.GameState, actions ...Action) model.GameState {
	t.Helper()
	for _, a := range actions {
		next, err := Dispatch(gs, cat, a)
		if err != nil {
			t.Fatalf("Dispatch(%s): %v", a.ActionType(), err)
		}
		gs = next
	}
	return gs
}

func story(t *testing.T, title string) int {
	t.Helper()
	i := cat.StoryIndex(title)
	if i == model.NoStory {
		t.Fatalf("story %q not in catalog", title)
	}
	return i
}
