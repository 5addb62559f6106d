package grove

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 3 components of a node's local transform
// simultaneously. Create one via the convenience constructors
// (TweenTranslation, TweenScale, TweenRotation) and either call Update(dt)
// each frame or attach it as the node's entity so Scene.Update drives it.
// If the target node is disposed, the group stops immediately.
type TweenGroup struct {
	tweens [3]*gween.Tween
	count  int
	values [3]float64
	apply  func(t *Transform, values [3]float64)
	target *Node
	Done   bool
}

// Update advances all tweens by dt seconds and writes the result through
// SetLocalTransform, so descendants follow. If the target node has been
// disposed, Done is set to true and no writes occur.
func (g *TweenGroup) Update(dt float64) {
	if g.Done {
		return
	}
	if g.target == nil || g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(float32(dt))
		g.values[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	t := g.target.LocalTransform()
	g.apply(&t, g.values)
	g.target.SetLocalTransform(t)
}

// Reset rewinds every tween to its start.
func (g *TweenGroup) Reset() {
	for i := 0; i < g.count; i++ {
		g.tweens[i].Reset()
	}
	g.Done = false
}

// TweenTranslation animates the node's local translation to the given target
// over duration seconds using the easing function.
func TweenTranslation(node *Node, to mgl64.Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	from := node.LocalTransform().Translation
	g := &TweenGroup{count: 3, target: node}
	for i := 0; i < 3; i++ {
		g.tweens[i] = gween.New(float32(from[i]), float32(to[i]), duration, fn)
	}
	g.apply = func(t *Transform, v [3]float64) {
		t.Translation = mgl64.Vec3{v[0], v[1], v[2]}
	}
	return g
}

// TweenScale animates the node's local scale to the given target over
// duration seconds using the easing function.
func TweenScale(node *Node, to mgl64.Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	from := node.LocalTransform().Scale
	g := &TweenGroup{count: 3, target: node}
	for i := 0; i < 3; i++ {
		g.tweens[i] = gween.New(float32(from[i]), float32(to[i]), duration, fn)
	}
	g.apply = func(t *Transform, v [3]float64) {
		t.Scale = mgl64.Vec3{v[0], v[1], v[2]}
	}
	return g
}

// TweenRotation turns the node by angle radians about axis, relative to its
// rotation when the group was created.
func TweenRotation(node *Node, axis mgl64.Vec3, angle float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	start := node.LocalTransform().Rotation
	axis = axis.Normalize()
	g := &TweenGroup{count: 1, target: node}
	g.tweens[0] = gween.New(0, float32(angle), duration, fn)
	g.apply = func(t *Transform, v [3]float64) {
		t.Rotation = start.Mul(mgl64.QuatRotate(v[0], axis)).Normalize()
	}
	return g
}
