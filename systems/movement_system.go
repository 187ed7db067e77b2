package systems

import (
	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-pong/components"
)

// Keyboard reads live key state from ebiten
type Keyboard struct{}

// IsKeyPressed implements components.KeyState. Keys ebiten does not know
// report false.
func (Keyboard) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// MovementSystem moves paddles according to held keys
type MovementSystem struct {
	keys         components.KeyState
	boundsHeight float64
}

// NewMovementSystem creates a movement system reading keys from the given
// source, clamping paddles to a screen of boundsHeight pixels.
func NewMovementSystem(keys components.KeyState, boundsHeight float64) *MovementSystem {
	if keys == nil {
		keys = Keyboard{}
	}
	return &MovementSystem{
		keys:         keys,
		boundsHeight: boundsHeight,
	}
}

// Update moves every paddle by one step of dt seconds using its own control scheme
func (s *MovementSystem) Update(dt float64, paddles ...*components.Paddle) {
	for _, p := range paddles {
		p.Move(dt, s.keys, s.boundsHeight)
	}
}

