package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"ebiten-pong/components"
	"ebiten-pong/config"
)

// ScoreText formats the score line shown at the top of the screen
func ScoreText(local, remote int) string {
	return fmt.Sprintf("%d - %d", local, remote)
}

// RenderSystem handles drawing the playfield
type RenderSystem struct {
	face       text.Face
	background color.Color
	textColor  color.Color
}

// NewRenderSystem creates a render system drawing the score with the given font
func NewRenderSystem(source *text.GoTextFaceSource) *RenderSystem {
	return &RenderSystem{
		face: &text.GoTextFace{
			Source: source,
			Size:   config.ScoreFontSize,
		},
		background: color.RGBA{0, 0, 0, 255},
		textColor:  color.White,
	}
}

// Draw clears the screen, draws both paddles and the score between them.
// The first paddle is the local player, the second the remote one.
func (s *RenderSystem) Draw(screen *ebiten.Image, local, remote *components.Paddle) error {
	// Clear the screen
	screen.Fill(s.background)

	if err := local.Render(screen); err != nil {
		return fmt.Errorf("failed to render local paddle: %w", err)
	}
	if err := remote.Render(screen); err != nil {
		return fmt.Errorf("failed to render remote paddle: %w", err)
	}

	s.drawScore(screen, ScoreText(local.Score, remote.Score))
	return nil
}

// drawScore draws the score horizontally centered
func (s *RenderSystem) drawScore(screen *ebiten.Image, score string) {
	screenWidth := screen.Bounds().Dx()
	textWidth, _ := text.Measure(score, s.face, 0)

	op := &text.DrawOptions{}
	op.GeoM.Translate(ScoreX(float64(screenWidth), textWidth), config.ScoreOffsetY)
	op.ColorScale.ScaleWithColor(s.textColor)
	text.Draw(screen, score, s.face, op)
}

// ScoreX returns the left edge that centers text of textWidth on a screen of screenWidth
func ScoreX(screenWidth, textWidth float64) float64 {
	return screenWidth/2 - textWidth/2
}
