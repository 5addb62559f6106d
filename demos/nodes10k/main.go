// nodes10k spawns 10,000 nodes in 100 drifting clusters that spin and
// wander across a world larger than the window. A stress test for transform
// propagation and frustum culling: the overlay shows how many nodes were
// actually drawn.
package main

import (
	"fmt"
	"log"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/phanxgames/grove"
	"github.com/phanxgames/grove/view"
)

const (
	screenW  = 1280
	screenH  = 720
	clusters = 100
	perGroup = 99
	worldW   = 4000.0
	worldH   = 3000.0
)

type cluster struct {
	node     *grove.Node
	dx, dy   float64
	rotSpeed float64
	angle    float64
}

func main() {
	scene := grove.NewScene("nodes10k")
	unit := grove.NewAABB(mgl64.Vec3{-4, -4, 0}, mgl64.Vec3{4, 4, 0})

	groups := make([]cluster, clusters)
	for i := range groups {
		c := grove.NewNode(fmt.Sprintf("cluster-%d", i))
		c.Bounds = grove.NewAABB(mgl64.Vec3{-10, -10, 0}, mgl64.Vec3{10, 10, 0})
		scene.AddNode(c)
		c.SetLocalTransform(grove.Translate(
			(rand.Float64()-0.5)*worldW, (rand.Float64()-0.5)*worldH, 0))

		for j := 0; j < perGroup; j++ {
			n := grove.NewNode(fmt.Sprintf("n-%d-%d", i, j))
			n.Bounds = unit
			c.AddNode(n)
			r := 20 + rand.Float64()*100
			a := rand.Float64() * 2 * math.Pi
			n.SetLocalTransform(grove.Translate(r*math.Cos(a), r*math.Sin(a), 0))
		}

		groups[i] = cluster{
			node:     c,
			dx:       (rand.Float64() - 0.5) * 120,
			dy:       (rand.Float64() - 0.5) * 120,
			rotSpeed: (rand.Float64() - 0.5) * 2,
		}
	}

	update := func(dt float64) error {
		for i := range groups {
			g := &groups[i]
			t := g.node.LocalTransform()
			t.Translation[0] += g.dx * dt
			t.Translation[1] += g.dy * dt
			if math.Abs(t.Translation[0]) > worldW/2 {
				g.dx = -g.dx
			}
			if math.Abs(t.Translation[1]) > worldH/2 {
				g.dy = -g.dy
			}
			g.angle += g.rotSpeed * dt
			t.Rotation = mgl64.QuatRotate(g.angle, mgl64.Vec3{0, 0, 1})
			g.node.SetLocalTransform(t)
		}
		return nil
	}

	if err := view.Run(scene, view.RunConfig{
		Title:   "grove - 10k nodes",
		Width:   screenW,
		Height:  screenH,
		ShowFPS: true,
		Update:  update,
	}); err != nil {
		log.Fatal(err)
	}
}
