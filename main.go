package main

import (
	"image"
	"log"
	"os"

	"github.com/automoto/stardive/config"
	"github.com/automoto/stardive/fonts"
	"github.com/automoto/stardive/scenes"
	"github.com/automoto/stardive/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	loadFonts()

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewTitleScene(g)

	return g
}

func loadFonts() {
	ttf, err := os.ReadFile("assets/fonts/arcade.ttf")
	if err != nil {
		log.Printf("Warning: no font file, using built-in face: %v", err)
		fonts.LoadFallback(fonts.Arcade)
		fonts.LoadFallback(fonts.ArcadeTitle)
		fonts.LoadFallback(fonts.ArcadeSmall)
		return
	}
	fonts.LoadFont(fonts.Arcade, ttf, 12)
	fonts.LoadFont(fonts.ArcadeTitle, ttf, 24)
	fonts.LoadFont(fonts.ArcadeSmall, ttf, 8)
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	ebiten.SetWindowSize(config.C.Width*config.C.WindowScale, config.C.Height*config.C.WindowScale)
	ebiten.SetWindowTitle(config.C.Title)

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(systems.SaveStore{}); err == nil && saved != nil {
		systems.ApplySavedSettings(saved)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
