package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/cabinet/input"
	"github.com/milk9111/cabinet/layout"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	buttonRadius = 28
	stickRadius  = 40
)

// Game renders the live tracker state onto the cabinet layout: buttons
// light while down, flash on the press and release frames, and the stick
// crosshair follows the analog position.
type Game struct {
	frames int

	spec    *layout.CabinetSpec
	tracker *input.Tracker
	watcher *layout.Watcher
	face    ebtext.Face
}

func NewGame(layoutName string, spec *layout.CabinetSpec, tracker *input.Tracker) *Game {
	g := &Game{
		spec:    spec,
		tracker: tracker,
		face:    ebtext.NewGoXFace(basicfont.Face7x13),
	}

	// Live reload needs the layout/ directory on disk; installed builds
	// run off the embedded layouts alone.
	w, err := layout.NewWatcher(layoutName)
	if err != nil {
		log.Printf("layout live reload disabled: %v", err)
	} else {
		g.watcher = w
	}
	return g
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		os.Exit(0)
	}

	g.frames++

	if err := g.tracker.Advance(); err != nil {
		return err
	}

	if g.watcher != nil {
		select {
		case spec, ok := <-g.watcher.Specs:
			if ok {
				g.spec = spec
			}
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("layout reload: %v", err)
			}
		default:
		}
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s    Frames: %d    FPS: %.2f", g.spec.Name, g.frames, ebiten.ActualFPS()))

	for i, panel := range g.spec.Players {
		player := i + 1
		g.drawPanel(screen, player, panel)
	}
}

func (g *Game) drawPanel(screen *ebiten.Image, player int, panel layout.PlayerSpec) {
	for _, placement := range panel.Buttons {
		b, ok := placement.Logical()
		if !ok {
			continue
		}

		x := float32(placement.X)
		y := float32(placement.Y)

		fill := colornames.Darkslategray
		if g.tracker.IsDown(player, b) {
			fill = colornames.Seagreen
		}
		vector.FillCircle(screen, x, y, buttonRadius, fill, true)

		switch {
		case g.tracker.Pressed(player, b):
			vector.StrokeCircle(screen, x, y, buttonRadius+3, 3, colornames.White, true)
		case g.tracker.Released(player, b):
			vector.StrokeCircle(screen, x, y, buttonRadius+3, 3, colornames.Orangered, true)
		default:
			vector.StrokeCircle(screen, x, y, buttonRadius, 1, colornames.Gray, true)
		}

		g.drawLabel(screen, placement.Label, placement.X, placement.Y)
	}

	stick := g.tracker.Stick(player)
	cx := float32(panel.StickX)
	cy := float32(panel.StickY)
	vector.StrokeCircle(screen, cx, cy, stickRadius, 1, colornames.Gray, true)
	vector.FillCircle(screen, cx+float32(stick.X)*stickRadius, cy+float32(stick.Y)*stickRadius, 6, colornames.Lightgrey, true)
}

func (g *Game) drawLabel(screen *ebiten.Image, label string, x, y float64) {
	op := &ebtext.DrawOptions{}
	// basicfont glyphs are 7x13; nudge the label onto the circle center.
	op.GeoM.Translate(x-float64(len(label))*7/2, y-7)
	op.ColorScale.ScaleWithColor(colornames.White)
	ebtext.Draw(screen, label, g.face, op)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
