package components

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-pong/config"
)

// ErrInvalidRect is returned when a paddle rectangle cannot be built
var ErrInvalidRect = errors.New("invalid paddle rectangle")

// KeyState reports whether a key is currently held down
type KeyState interface {
	IsKeyPressed(key ebiten.Key) bool
}

// ControlScheme pairs the keys that move a paddle up and down
type ControlScheme struct {
	Up   ebiten.Key
	Down ebiten.Key
}

var (
	// WASDControls moves a paddle with W and S
	WASDControls = ControlScheme{Up: ebiten.KeyW, Down: ebiten.KeyS}
	// ArrowControls moves a paddle with the up and down arrow keys
	ArrowControls = ControlScheme{Up: ebiten.KeyArrowUp, Down: ebiten.KeyArrowDown}
)

// Paddle is a player-controlled bat
type Paddle struct {
	X, Y     float64
	Width    float64
	Height   float64
	Score    int
	Controls ControlScheme
	Color    color.Color
}

// NewPaddle creates a paddle with the default size at the given position
func NewPaddle(x, y float64, controls ControlScheme) *Paddle {
	return &Paddle{
		X:        x,
		Y:        y,
		Width:    config.PaddleWidth,
		Height:   config.PaddleHeight,
		Controls: controls,
		Color:    color.White,
	}
}

// Move applies held keys for dt seconds and keeps the paddle inside a screen
// of boundsHeight pixels.
func (p *Paddle) Move(dt float64, keys KeyState, boundsHeight float64) {
	// Negative and NaN steps do not move the paddle
	if !(dt > 0) {
		dt = 0
	}

	direction := 0.0
	if keys.IsKeyPressed(p.Controls.Up) {
		direction--
	}
	if keys.IsKeyPressed(p.Controls.Down) {
		direction++
	}
	if direction != 0 {
		p.Y += direction * config.PaddleSpeed * dt
	}

	p.Y = clamp(p.Y, p.MinY(), p.MaxY(boundsHeight))
}

// MinY returns the highest position the paddle may reach
func (p *Paddle) MinY() float64 {
	return config.PaddleMargin
}

// MaxY returns the lowest position the paddle may reach on a screen of the given height
func (p *Paddle) MaxY(boundsHeight float64) float64 {
	return boundsHeight - p.Height - config.PaddleMargin
}

// Render draws the paddle as a filled rectangle
func (p *Paddle) Render(dst *ebiten.Image) error {
	if err := p.validate(); err != nil {
		return err
	}

	vector.DrawFilledRect(dst, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), p.Color, false)
	return nil
}

func (p *Paddle) validate() error {
	if !(p.Width > 0) || !(p.Height > 0) {
		return fmt.Errorf("%w: size %vx%v", ErrInvalidRect, p.Width, p.Height)
	}
	if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
		return fmt.Errorf("%w: position (%v, %v)", ErrInvalidRect, p.X, p.Y)
	}
	if p.Color == nil {
		return fmt.Errorf("%w: no color", ErrInvalidRect)
	}
	return nil
}

// clamp keeps v within [lo, hi]. When the range is empty lo wins.
func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
