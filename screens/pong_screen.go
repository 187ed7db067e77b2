package screens

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"ebiten-pong/components"
	"ebiten-pong/config"
	"ebiten-pong/systems"
)

// PongScreen holds the match: both paddles and the systems that move and draw them
type PongScreen struct {
	*BaseScreen
	local          *components.Paddle
	remote         *components.Paddle
	movementSystem *systems.MovementSystem
	renderSystem   *systems.RenderSystem
	drawErr        error
}

// NewPongScreen creates the match screen. Paddles start near the top, one
// against each side edge.
func NewPongScreen(font *text.GoTextFaceSource, keys components.KeyState) *PongScreen {
	local, remote := StartingPaddles()
	return NewPongScreenWithPaddles(font, keys, local, remote)
}

// NewPongScreenWithPaddles creates the match screen around existing paddles
func NewPongScreenWithPaddles(font *text.GoTextFaceSource, keys components.KeyState, local, remote *components.Paddle) *PongScreen {
	return &PongScreen{
		BaseScreen:     NewBaseScreen(),
		local:          local,
		remote:         remote,
		movementSystem: systems.NewMovementSystem(keys, config.WindowHeight),
		renderSystem:   systems.NewRenderSystem(font),
	}
}

// StartingPaddles returns the local (W/S) and remote (arrow keys) paddles at
// their start positions.
func StartingPaddles() (local, remote *components.Paddle) {
	local = components.NewPaddle(config.PaddleInset, config.PaddleMargin, components.WASDControls)
	remote = components.NewPaddle(
		config.WindowWidth-config.PaddleWidth-config.PaddleInset,
		config.PaddleMargin,
		components.ArrowControls,
	)
	return local, remote
}

// Update moves both paddles by one fixed step. An error from the last Draw is
// returned here, since ebiten's Draw cannot report one.
func (s *PongScreen) Update(dt float64) error {
	if s.drawErr != nil {
		return s.drawErr
	}
	s.movementSystem.Update(dt, s.local, s.remote)
	return nil
}

// Draw renders the paddles and the score
func (s *PongScreen) Draw(screen *ebiten.Image) {
	if err := s.renderSystem.Draw(screen, s.local, s.remote); err != nil && s.drawErr == nil {
		s.drawErr = err
	}
}

// Err returns the first error hit while drawing, if any
func (s *PongScreen) Err() error {
	return s.drawErr
}

