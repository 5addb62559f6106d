package view

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/grove"
)

// Zoom limits for wheel zooming.
const (
	minZoom = 0.05
	maxZoom = 50
)

// Controls pans the camera with a right-button drag, zooms with the wheel
// and picks nodes with a left click.
type Controls struct {
	Camera *Camera
	// OnPick is called with the picked node, or nil when the click hit
	// nothing.
	OnPick func(n *grove.Node)

	dragging    bool
	lastX       int
	lastY       int
	leftWasDown bool
}

// Update reads the mouse state and applies it to the camera.
func (c *Controls) Update(scene *grove.Scene) {
	mx, my := ebiten.CursorPosition()

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		if c.dragging {
			c.Pan(float64(mx-c.lastX), float64(my-c.lastY))
		}
		c.dragging = true
	} else {
		c.dragging = false
	}
	c.lastX, c.lastY = mx, my

	if _, wy := ebiten.Wheel(); wy != 0 {
		factor := 1.1
		if wy < 0 {
			factor = 1 / factor
		}
		c.ZoomAt(float64(mx), float64(my), factor)
	}

	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if left && !c.leftWasDown && c.OnPick != nil {
		c.OnPick(Pick(scene, c.Camera, float64(mx), float64(my)))
	}
	c.leftWasDown = left
}

// Pan moves the camera by a screen-space delta.
func (c *Controls) Pan(dx, dy float64) {
	ax, ay := c.Camera.ScreenToWorld(0, 0)
	bx, by := c.Camera.ScreenToWorld(dx, dy)
	c.Camera.X -= bx - ax
	c.Camera.Y -= by - ay
	c.Camera.MarkDirty()
}

// ZoomAt scales the zoom by factor while keeping the world point under
// the screen position fixed.
func (c *Controls) ZoomAt(sx, sy, factor float64) {
	cam := c.Camera
	wx, wy := cam.ScreenToWorld(sx, sy)
	cam.Zoom = mgl64.Clamp(cam.Zoom*factor, minZoom, maxZoom)
	cam.MarkDirty()
	nx, ny := cam.ScreenToWorld(sx, sy)
	cam.X += wx - nx
	cam.Y += wy - ny
	cam.MarkDirty()
}

// Pick returns the topmost visible node whose world bounds contain the
// screen point, or nil. Topmost is the last one drawn.
func Pick(scene *grove.Scene, cam *Camera, sx, sy float64) *grove.Node {
	wx, wy := cam.ScreenToWorld(sx, sy)
	var hit *grove.Node
	scene.VisitVisible(cam.Frustum(), func(n *grove.Node) {
		b := n.WorldBounds()
		if wx >= b.Min[0] && wx <= b.Max[0] && wy >= b.Min[1] && wy <= b.Max[1] {
			hit = n
		}
	})
	return hit
}
