package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	pageName := flag.String("page", "", "page layout in prefabs/ (.yaml); empty for the built-in demo page")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("pagechase")

	game := NewGame(*pageName)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
