package wizard

import (
	"log/slog"

	"github.com/nstehr/shiny/catalog"
	"github.com/nstehr/shiny/model"
)

// AutoSelectSoloOverlay switches a solo game with the 10th Anniversary
// expansion to the Flying Solo overlay. A non-combinable card that was
// selected before moves to the secondary slot. It is a no-op once the
// overlay is already primary.
func AutoSelectSoloOverlay(gs model.GameState, cat *catalog.Catalog) model.GameState {
	if !gs.IsSolo() || !gs.ExpansionActive(model.ExpansionTenth) || gs.SetupCardID == model.SetupFlyingSolo {
		return gs
	}
	if !cat.HasSetupCard(model.SetupFlyingSolo) {
		return gs
	}
	prev := gs.SetupCardID
	next := gs.Clone()
	next.SetupCardID = model.SetupFlyingSolo
	next.SecondarySetupCardID = ""
	if card, err := cat.SetupCard(prev); err == nil && !card.Combinable {
		next.SecondarySetupCardID = card.ID
	}
	slog.Debug("solo overlay selected", "secondary", next.SecondarySetupCardID)
	return next
}
