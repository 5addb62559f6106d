package view

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"github.com/phanxgames/grove"
)

// RunConfig configures Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// ShowFPS draws the statistics overlay.
	ShowFPS    bool
	Background color.Color
	// Camera defaults to one centered on the origin covering the window.
	Camera *Camera
	// Update is called once per tick before the scene is updated.
	Update func(dt float64) error
	// Logger receives pick and screenshot events. Defaults to the standard
	// logrus logger.
	Logger logrus.FieldLogger
	// ScreenshotDir enables F12 screenshots into the directory.
	ScreenshotDir string
}

type game struct {
	scene    *grove.Scene
	cfg      RunConfig
	renderer *Renderer
	controls *Controls
	overlay  *Overlay
	shots    *Screenshots
	log      logrus.FieldLogger
}

// Run opens a window and drives scene until the window is closed or
// cfg.Update returns an error.
func Run(scene *grove.Scene, cfg RunConfig) error {
	g := newGame(scene, cfg)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}

func newGame(scene *grove.Scene, cfg RunConfig) *game {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.Background == nil {
		cfg.Background = color.RGBA{R: 30, G: 30, B: 40, A: 255}
	}
	if cfg.Camera == nil {
		cfg.Camera = NewCamera(Rect{Width: float64(cfg.Width), Height: float64(cfg.Height)})
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}
	g := &game{
		scene:    scene,
		cfg:      cfg,
		renderer: NewRenderer(cfg.Camera),
		log:      cfg.Logger,
	}
	g.controls = &Controls{Camera: cfg.Camera, OnPick: g.pick}
	if cfg.ShowFPS {
		g.overlay = NewOverlay()
	}
	if cfg.ScreenshotDir != "" {
		g.shots = &Screenshots{Dir: cfg.ScreenshotDir, log: cfg.Logger}
	}
	return g
}

func (g *game) pick(n *grove.Node) {
	g.renderer.Selected = n
	if n == nil {
		return
	}
	p := n.GlobalTransform().Translation
	g.log.WithFields(logrus.Fields{
		"node":   n.Name,
		"nodeID": n.ID,
		"depth":  n.Depth(),
		"x":      p[0],
		"y":      p[1],
		"z":      p[2],
	}).Info("picked node")
}

func (g *game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	if g.cfg.Update != nil {
		if err := g.cfg.Update(dt); err != nil {
			return err
		}
	}
	if g.shots != nil && inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.shots.Queue(g.scene.Name)
	}
	g.controls.Update(g.scene)
	g.cfg.Camera.Update(dt)
	g.scene.Update(dt)
	if g.overlay != nil {
		g.overlay.Update(dt, g.scene, g.renderer.Drawn())
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.Background)
	g.renderer.Draw(screen, g.scene)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	if g.shots != nil {
		g.shots.flush(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cam := g.cfg.Camera
	if cam.Viewport.Width != float64(outsideWidth) || cam.Viewport.Height != float64(outsideHeight) {
		cam.Viewport = Rect{Width: float64(outsideWidth), Height: float64(outsideHeight)}
		cam.MarkDirty()
	}
	return outsideWidth, outsideHeight
}
