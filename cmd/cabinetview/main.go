package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/cabinet/input"
	"github.com/milk9111/cabinet/layout"
)

func main() {
	layoutName := flag.String("layout", "cabinet", "layout name in layout/ (basename, .yaml optional)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	spec, err := layout.LoadSpec(*layoutName)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("cabinetview")

	game := NewGame(*layoutName, spec, input.NewTracker(input.NewGamepadPoller()))

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
