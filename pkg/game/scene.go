package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a drawable screen driven by queued events.
// Each scene owns its own state and rendering logic.
type Scene interface {
	// HandleEvent applies one resize or frame notification to the scene.
	HandleEvent(ev Event)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}
