package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomonobold"

	"ebiten-pong/components"
	"ebiten-pong/config"
	"ebiten-pong/screens"
)

type noKeys struct{}

func (noKeys) IsKeyPressed(ebiten.Key) bool { return false }

func testFont(t *testing.T) *text.GoTextFaceSource {
	t.Helper()
	source, err := text.NewGoTextFaceSource(bytes.NewReader(gomonobold.TTF))
	if err != nil {
		t.Fatalf("load font: %v", err)
	}
	return source
}

func TestGameLayoutIsFixed(t *testing.T) {
	g := NewGame(screens.NewPongScreen(nil, noKeys{}))
	w, h := g.Layout(1920, 1080)
	if w != config.WindowWidth || h != config.WindowHeight {
		t.Fatalf("expected %dx%d, got %dx%d", config.WindowWidth, config.WindowHeight, w, h)
	}
}

func TestGameTerminatesWithoutScreens(t *testing.T) {
	g := NewGame(screens.NewPongScreen(nil, noKeys{}))
	if err := g.Update(); err != nil {
		t.Fatalf("update: %v", err)
	}

	g.screenStack.Pop()
	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("expected ebiten.Termination, got %v", err)
	}
}

func TestGameDrawsValidFrame(t *testing.T) {
	g := NewGame(screens.NewPongScreen(testFont(t), noKeys{}))
	screen := ebiten.NewImage(config.WindowWidth, config.WindowHeight)

	g.Draw(screen)
	if err := g.pongScreen.Err(); err != nil {
		t.Fatalf("expected clean draw, got %v", err)
	}
	if err := g.Update(); err != nil {
		t.Fatalf("update after clean draw: %v", err)
	}
}

func TestGameUpdateReturnsRenderError(t *testing.T) {
	local, remote := screens.StartingPaddles()
	local.Width = 0
	g := NewGame(screens.NewPongScreenWithPaddles(testFont(t), noKeys{}, local, remote))
	screen := ebiten.NewImage(config.WindowWidth, config.WindowHeight)

	g.Draw(screen)
	if err := g.pongScreen.Err(); !errors.Is(err, components.ErrInvalidRect) {
		t.Fatalf("expected draw to record ErrInvalidRect, got %v", err)
	}

	err := g.Update()
	if !errors.Is(err, components.ErrInvalidRect) {
		t.Fatalf("expected update to return ErrInvalidRect, got %v", err)
	}
	if errors.Is(err, ebiten.Termination) {
		t.Fatal("render failure must not look like a normal quit")
	}
}
