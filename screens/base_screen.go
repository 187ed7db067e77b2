package screens

import (
	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-pong/config"
)

// BaseScreen provides common functionality for all screens
type BaseScreen struct{}

// NewBaseScreen creates a new base screen
func NewBaseScreen() *BaseScreen {
	return &BaseScreen{}
}

// Update implements the Screen interface
func (s *BaseScreen) Update(dt float64) error {
	return nil
}

// Draw implements the Screen interface
func (s *BaseScreen) Draw(screen *ebiten.Image) {
	// Base screen does nothing by default
}

// Layout implements the Screen interface. Screens use the fixed logical
// size whatever the window size is.
func (s *BaseScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions()
}
