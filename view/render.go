package view

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/grove"
)

// Renderer outlines the world bounds of every visible node.
type Renderer struct {
	Camera *Camera
	// Fill and Stroke color node boxes. A nil Fill draws outlines only.
	Fill   color.Color
	Stroke color.Color
	// Highlight is used for the selected node.
	Highlight color.Color
	// Selected, when set, is drawn with Highlight.
	Selected *grove.Node
	// Labels draws each node's name at the top-left of its box.
	Labels bool

	drawn int
}

// NewRenderer creates a Renderer with default colors.
func NewRenderer(cam *Camera) *Renderer {
	return &Renderer{
		Camera:    cam,
		Fill:      color.RGBA{R: 40, G: 90, B: 140, A: 96},
		Stroke:    color.RGBA{R: 80, G: 180, B: 255, A: 255},
		Highlight: color.RGBA{R: 255, G: 200, B: 60, A: 255},
		Labels:    true,
	}
}

// Drawn returns the number of nodes drawn by the last Draw call.
func (r *Renderer) Drawn() int {
	return r.drawn
}

// Draw renders scene onto screen in pre-order, so children paint over
// their parents.
func (r *Renderer) Draw(screen *ebiten.Image, scene *grove.Scene) {
	r.drawn = 0
	scene.VisitVisible(r.Camera.Frustum(), func(n *grove.Node) {
		r.drawNode(screen, n)
		r.drawn++
	})
}

func (r *Renderer) drawNode(screen *ebiten.Image, n *grove.Node) {
	rect := r.Camera.ScreenRect(n.WorldBounds())
	x, y := float32(rect.X), float32(rect.Y)
	w, h := float32(rect.Width), float32(rect.Height)

	if r.Fill != nil {
		vector.DrawFilledRect(screen, x, y, w, h, r.Fill, false)
	}
	stroke := r.Stroke
	if n == r.Selected && r.Highlight != nil {
		stroke = r.Highlight
	}
	vector.StrokeRect(screen, x, y, w, h, 1, stroke, false)

	if r.Labels && n.Name != "" {
		ebitenutil.DebugPrintAt(screen, n.Name, int(rect.X)+2, int(rect.Y)+2)
	}
}
