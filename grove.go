package grove

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// NodeFlags is a bitmask of per-node state bits.
type NodeFlags uint8

const (
	FlagEnabled NodeFlags = 1 << iota // Update hooks run for this node
	FlagVisible                       // node and its subtree are considered for rendering
)

// defaultFlags is the flag set every new node starts with.
const defaultFlags = FlagEnabled | FlagVisible

// invalidIndex marks a node that is not stored in any sibling list.
const invalidIndex = -1

// Updater is implemented by entity payloads that want a per-frame hook.
// Scene.Update calls it for every enabled node carrying such an entity.
type Updater interface {
	Update(dt float64)
}

// NodeCallbacks holds optional hooks fired on structural changes.
type NodeCallbacks struct {
	// OnReparent fires after a node moved to a new parent. A nil oldParent or
	// newParent means the node was (or now is) a scene root or detached.
	OnReparent func(node, oldParent, newParent *Node)
}

// --- Bounds ---

// AABB is an axis-aligned bounding box. A box whose Min exceeds its Max on
// any axis is empty.
type AABB struct {
	Min, Max mgl64.Vec3
}

// EmptyAABB returns a box that contains nothing and intersects nothing.
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: mgl64.Vec3{inf, inf, inf},
		Max: mgl64.Vec3{-inf, -inf, -inf},
	}
}

// NewAABB returns the box spanning the two corners in any order.
func NewAABB(a, b mgl64.Vec3) AABB {
	return AABB{
		Min: mgl64.Vec3{math.Min(a[0], b[0]), math.Min(a[1], b[1]), math.Min(a[2], b[2])},
		Max: mgl64.Vec3{math.Max(a[0], b[0]), math.Max(a[1], b[1]), math.Max(a[2], b[2])},
	}
}

// Empty reports whether the box contains no points.
func (b AABB) Empty() bool {
	return b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1] || b.Min[2] > b.Max[2]
}

// Contains reports whether p lies inside the box. Points on a face are inside.
func (b AABB) Contains(p mgl64.Vec3) bool {
	return p[0] >= b.Min[0] && p[0] <= b.Max[0] &&
		p[1] >= b.Min[1] && p[1] <= b.Max[1] &&
		p[2] >= b.Min[2] && p[2] <= b.Max[2]
}

// Intersects reports whether b and other overlap. Boxes sharing only a face
// are considered intersecting; empty boxes never intersect.
func (b AABB) Intersects(other AABB) bool {
	if b.Empty() || other.Empty() {
		return false
	}
	return b.Min[0] <= other.Max[0] && b.Max[0] >= other.Min[0] &&
		b.Min[1] <= other.Max[1] && b.Max[1] >= other.Min[1] &&
		b.Min[2] <= other.Max[2] && b.Max[2] >= other.Min[2]
}

// Extend returns the smallest box containing both b and p.
func (b AABB) Extend(p mgl64.Vec3) AABB {
	for i := 0; i < 3; i++ {
		b.Min[i] = math.Min(b.Min[i], p[i])
		b.Max[i] = math.Max(b.Max[i], p[i])
	}
	return b
}

// Transformed returns the box enclosing b's eight corners after applying t.
func (b AABB) Transformed(t Transform) AABB {
	if b.Empty() {
		return b
	}
	out := EmptyAABB()
	for i := 0; i < 8; i++ {
		corner := b.Min
		if i&1 != 0 {
			corner[0] = b.Max[0]
		}
		if i&2 != 0 {
			corner[1] = b.Max[1]
		}
		if i&4 != 0 {
			corner[2] = b.Max[2]
		}
		out = out.Extend(t.Apply(corner))
	}
	return out
}

// Frustum is a view volume tested against world-space bounds by the renderer.
type Frustum interface {
	IntersectsAABB(b AABB) bool
}

// Box is a Frustum shaped like an axis-aligned box, as produced by an
// orthographic camera.
type Box struct {
	AABB
}

// IntersectsAABB implements Frustum.
func (f Box) IntersectsAABB(b AABB) bool {
	return f.AABB.Intersects(b)
}
