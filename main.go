package main

import (
	"log"

	_ "github.com/ebitengine/hideconsole"
	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-pong/assets"
	"ebiten-pong/config"
	"ebiten-pong/screens"
	"ebiten-pong/systems"
)

func main() {
	font, err := assets.LoadScoreFont()
	if err != nil {
		log.Fatal(err)
	}

	game := NewGame(screens.NewPongScreen(font, systems.Keyboard{}))

	windowWidth, windowHeight := config.GetWindowSize()
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	// Update once per frame; the fixed step inside Game.Update sets the simulation rate
	ebiten.SetTPS(ebiten.SyncWithFPS)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
