package view

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/grove"
)

// overlayRefresh is how often, in seconds, the overlay text is rebuilt.
const overlayRefresh = 0.5

// Overlay shows frame rate and scene statistics in the top-left corner.
type Overlay struct {
	img   *ebiten.Image
	since float64
	text  string
}

// NewOverlay creates an overlay. The first Update fills it in.
func NewOverlay() *Overlay {
	// Room for four lines of debug text.
	return &Overlay{img: ebiten.NewImage(200, 64), since: overlayRefresh}
}

// Update refreshes the text about twice a second.
func (o *Overlay) Update(dt float64, scene *grove.Scene, drawn int) {
	o.since += dt
	if o.since < overlayRefresh {
		return
	}
	o.since = 0
	o.text = overlayText(ebiten.ActualFPS(), ebiten.ActualTPS(), scene.Stats(), drawn)

	o.img.Clear()
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, o.text)
}

// Text returns the current overlay text.
func (o *Overlay) Text() string {
	return o.text
}

// Draw paints the overlay onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	screen.DrawImage(o.img, nil)
}

func overlayText(fps, tps float64, st grove.Stats, drawn int) string {
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nNodes: %d (drawn %d)\nDepth: %d",
		fps, tps, st.Nodes, drawn, st.MaxDepth)
}
