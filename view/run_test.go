package view

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/phanxgames/grove"
)

func TestNewGameDefaults(t *testing.T) {
	g := newGame(grove.NewScene("s"), RunConfig{})
	if g.cfg.Width != 640 || g.cfg.Height != 480 {
		t.Errorf("size = %dx%d, want 640x480", g.cfg.Width, g.cfg.Height)
	}
	if g.cfg.Camera == nil || g.cfg.Background == nil || g.log == nil {
		t.Fatal("defaults not filled in")
	}
	if g.overlay != nil {
		t.Error("overlay should be off unless ShowFPS is set")
	}
	if g.renderer.Camera != g.cfg.Camera || g.controls.Camera != g.cfg.Camera {
		t.Error("renderer and controls should share the camera")
	}
}

func TestGameLayoutResizesViewport(t *testing.T) {
	g := newGame(grove.NewScene("s"), RunConfig{Width: 320, Height: 200})
	w, h := g.Layout(1024, 768)
	if w != 1024 || h != 768 {
		t.Errorf("Layout = %dx%d", w, h)
	}
	vp := g.cfg.Camera.Viewport
	if vp.Width != 1024 || vp.Height != 768 {
		t.Errorf("viewport = %+v, want 1024x768", vp)
	}
	sx, sy := g.cfg.Camera.WorldToScreen(0, 0)
	if sx != 512 || sy != 384 {
		t.Errorf("origin maps to (%f,%f), want the new center", sx, sy)
	}
}

func TestGamePickLogs(t *testing.T) {
	logger, hook := test.NewNullLogger()
	g := newGame(grove.NewScene("s"), RunConfig{Logger: logger})

	n := grove.NewNode("crate")
	n.SetLocalTransform(grove.Translate(3, 4, 5))
	g.pick(n)
	if g.renderer.Selected != n {
		t.Error("picked node should be selected")
	}
	entry := hook.LastEntry()
	if entry == nil || entry.Level != logrus.InfoLevel {
		t.Fatal("expected an info entry")
	}
	if entry.Data["node"] != "crate" || entry.Data["x"] != 3.0 {
		t.Errorf("fields = %v", entry.Data)
	}

	hook.Reset()
	g.pick(nil)
	if g.renderer.Selected != nil || len(hook.AllEntries()) != 0 {
		t.Error("a miss should clear the selection without logging")
	}
}

func TestOverlayText(t *testing.T) {
	got := overlayText(59.94, 60, grove.Stats{Nodes: 12, Roots: 2, MaxDepth: 4, Leaves: 7}, 9)
	for _, want := range []string{"FPS: 59.9", "TPS: 60.0", "Nodes: 12 (drawn 9)", "Depth: 4"} {
		if !strings.Contains(got, want) {
			t.Errorf("overlay text %q missing %q", got, want)
		}
	}
}

func TestNewGameScreenshots(t *testing.T) {
	g := newGame(grove.NewScene("s"), RunConfig{})
	if g.shots != nil {
		t.Error("screenshots should be off without a directory")
	}
	dir := t.TempDir()
	g = newGame(grove.NewScene("s"), RunConfig{ScreenshotDir: dir})
	if g.shots == nil || g.shots.Dir != dir {
		t.Fatal("screenshots should be wired to the directory")
	}
}
