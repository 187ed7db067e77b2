package screens

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Screen is one state of the game: the match, and anything shown in its place
type Screen interface {
	// Update advances the screen by one fixed step of dt seconds
	Update(dt float64) error
	// Draw draws the screen
	Draw(screen *ebiten.Image)
	// Layout returns the logical screen size
	Layout(outsideWidth, outsideHeight int) (int, int)
}

// ScreenStack holds the active screens. Only the top one is updated and
// drawn; an empty stack means the game is over.
type ScreenStack struct {
	screens []Screen
}

// NewScreenStack creates an empty screen stack
func NewScreenStack() *ScreenStack {
	return &ScreenStack{}
}

// Push makes screen the active screen
func (s *ScreenStack) Push(screen Screen) {
	s.screens = append(s.screens, screen)
}

// Pop closes the active screen and returns it, or nil when the stack is empty
func (s *ScreenStack) Pop() Screen {
	top := s.Peek()
	if top != nil {
		s.screens = s.screens[:len(s.screens)-1]
	}
	return top
}

// Peek returns the active screen, or nil
func (s *ScreenStack) Peek() Screen {
	if len(s.screens) == 0 {
		return nil
	}
	return s.screens[len(s.screens)-1]
}

// Update steps the active screen
func (s *ScreenStack) Update(dt float64) error {
	if top := s.Peek(); top != nil {
		return top.Update(dt)
	}
	return nil
}

// Draw draws the active screen
func (s *ScreenStack) Draw(screen *ebiten.Image) {
	if top := s.Peek(); top != nil {
		top.Draw(screen)
	}
}

// Layout asks the active screen for its size; an empty stack keeps the window size
func (s *ScreenStack) Layout(outsideWidth, outsideHeight int) (int, int) {
	if top := s.Peek(); top != nil {
		return top.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
