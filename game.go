package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-pong/config"
	"ebiten-pong/screens"
	"ebiten-pong/systems"
)

// Game implements ebiten.Game interface.
type Game struct {
	screenStack *screens.ScreenStack
	pongScreen  *screens.PongScreen
	timestep    *systems.FixedStep
}

// NewGame creates a game running the given match screen
func NewGame(pongScreen *screens.PongScreen) *Game {
	screenStack := screens.NewScreenStack()
	screenStack.Push(pongScreen)

	return &Game{
		screenStack: screenStack,
		pongScreen:  pongScreen,
		timestep:    systems.NewFixedStep(config.UpdateRate),
	}
}

// Update runs as many fixed simulation steps as the elapsed time allows.
func (g *Game) Update() error {
	// ESC closes the top screen; closing the last one quits
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.screenStack.Pop()
	}
	if g.screenStack.Peek() == nil {
		return ebiten.Termination
	}

	if err := g.pongScreen.Err(); err != nil {
		return err
	}

	_, err := g.timestep.Advance(g.screenStack.Update)
	return err
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.screenStack.Draw(screen)
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenStack.Layout(outsideWidth, outsideHeight)
}
