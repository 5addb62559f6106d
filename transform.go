package grove

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform is a scale/rotation/translation placement. Applied to a point it
// scales first, then rotates, then translates.
type Transform struct {
	Scale       mgl64.Vec3
	Rotation    mgl64.Quat
	Translation mgl64.Vec3
}

// IdentityTransform returns the transform that leaves every point in place.
func IdentityTransform() Transform {
	return Transform{
		Scale:    mgl64.Vec3{1, 1, 1},
		Rotation: mgl64.QuatIdent(),
	}
}

// NewTransform builds a transform from its SRT components.
func NewTransform(scale mgl64.Vec3, rotation mgl64.Quat, translation mgl64.Vec3) Transform {
	return Transform{Scale: scale, Rotation: rotation, Translation: translation}
}

// Translate returns a pure translation.
func Translate(x, y, z float64) Transform {
	t := IdentityTransform()
	t.Translation = mgl64.Vec3{x, y, z}
	return t
}

// Mul composes t with c so that t.Mul(c).Apply(p) == t.Apply(c.Apply(p)) for
// uniformly scaled transforms. t plays the parent, c the child.
func (t Transform) Mul(c Transform) Transform {
	return Transform{
		Scale:       mulVec(t.Scale, c.Scale),
		Rotation:    t.Rotation.Mul(c.Rotation),
		Translation: t.Translation.Add(t.Rotation.Rotate(mulVec(t.Scale, c.Translation))),
	}
}

// Inverse returns the transform undoing t. Zero scale components stay zero.
func (t Transform) Inverse() Transform {
	inv := Transform{
		Scale:    reciprocal(t.Scale),
		Rotation: t.Rotation.Inverse(),
	}
	inv.Translation = mulVec(inv.Scale, inv.Rotation.Rotate(t.Translation)).Mul(-1)
	return inv
}

// Apply transforms a point.
func (t Transform) Apply(p mgl64.Vec3) mgl64.Vec3 {
	return t.Translation.Add(t.Rotation.Rotate(mulVec(t.Scale, p)))
}

// Mat4 returns the column-major matrix T * R * S.
func (t Transform) Mat4() mgl64.Mat4 {
	tr := mgl64.Translate3D(t.Translation[0], t.Translation[1], t.Translation[2])
	sc := mgl64.Scale3D(t.Scale[0], t.Scale[1], t.Scale[2])
	return tr.Mul4(t.Rotation.Mat4()).Mul4(sc)
}

// ApproxEqual reports whether every component of t and o differs by at most
// eps. q and -q encode the same rotation and compare equal.
func (t Transform) ApproxEqual(o Transform, eps float64) bool {
	if !nearVec(t.Scale, o.Scale, eps) || !nearVec(t.Translation, o.Translation, eps) {
		return false
	}
	return nearQuat(t.Rotation, o.Rotation, eps) || nearQuat(t.Rotation, o.Rotation.Scale(-1), eps)
}

func nearVec(a, b mgl64.Vec3, eps float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

func nearQuat(a, b mgl64.Quat, eps float64) bool {
	return math.Abs(a.W-b.W) <= eps && nearVec(a.V, b.V, eps)
}

func mulVec(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

func reciprocal(v mgl64.Vec3) mgl64.Vec3 {
	var out mgl64.Vec3
	for i, c := range v {
		if c != 0 {
			out[i] = 1 / c
		}
	}
	return out
}

// --- Node transform operations ---

// LocalTransform returns the node's placement relative to its parent, or to
// world space for roots and detached nodes.
func (n *Node) LocalTransform() Transform {
	return n.local
}

// GlobalTransform returns the node's world-space placement. It is always
// current; there is no deferred recomputation.
func (n *Node) GlobalTransform() Transform {
	return n.global
}

// SetLocalTransform assigns the local transform and recomputes the global
// transform of the node and every descendant.
func (n *Node) SetLocalTransform(t Transform) {
	if globalDebug {
		debugCheckDisposed(n, "SetLocalTransform")
	}
	n.local = t
	n.global = composeGlobal(n)
	n.propagateDescendants()
}

// SetGlobalTransform places the node in world space. The local transform is
// derived from the parent's global transform and descendants follow.
func (n *Node) SetGlobalTransform(t Transform) {
	if globalDebug {
		debugCheckDisposed(n, "SetGlobalTransform")
	}
	n.global = t
	n.reanchor()
	n.propagateDescendants()
}

// reanchor recomputes the local transform from the current global transform
// and the current parent. World placement, and therefore every descendant's
// global transform, is left untouched.
func (n *Node) reanchor() {
	if n.parent == nil {
		n.local = n.global
		return
	}
	n.local = n.parent.global.Inverse().Mul(n.global)
}

// composeGlobal derives a node's global transform from its parent chain.
func composeGlobal(n *Node) Transform {
	if n.parent == nil {
		return n.local
	}
	return n.parent.global.Mul(n.local)
}

// propagateDescendants recomputes the global transform of every node below n
// in pre-order, so each parent is settled before its children.
func (n *Node) propagateDescendants() {
	walk(n, func(d *Node) walkAction {
		if d != n {
			d.global = composeGlobal(d)
		}
		return walkContinue
	}, nil)
}
