package grove

import (
	"github.com/sirupsen/logrus"
)

// --- ID counter ---

// nodeIDCounter is a plain counter; grove is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Node ---

// Node is a vertex of the scene graph. It owns its children, holds a local
// and a derived global transform, and carries an optional entity payload.
//
// A node is either detached (no parent, no scene), a child of another node
// (scene inherited from the parent, possibly none) or a root of a Scene.
type Node struct {
	// Identity
	ID   uint32
	Name string

	Flags NodeFlags

	// Bounds is the node's local-space bounding box; empty by default.
	Bounds AABB

	// Hierarchy
	parent   *Node
	scene    *Scene
	children []*Node
	index    int

	// Transforms; global is always derived from local and the parent chain.
	local  Transform
	global Transform

	entity any

	// OnUpdate runs from Scene.Update while the node is enabled.
	OnUpdate func(n *Node, dt float64)

	Callbacks NodeCallbacks

	disposed bool
}

// NewNode creates a detached node with identity transforms.
func NewNode(name string) *Node {
	return &Node{
		ID:     nextNodeID(),
		Name:   name,
		Flags:  defaultFlags,
		Bounds: EmptyAABB(),
		index:  invalidIndex,
		local:  IdentityTransform(),
		global: IdentityTransform(),
	}
}

// --- Accessors ---

// Parent returns the node's parent, or nil for roots and detached nodes.
func (n *Node) Parent() *Node {
	return n.parent
}

// Scene returns the scene the node's tree is attached to, or nil.
func (n *Node) Scene() *Scene {
	return n.scene
}

// Index returns the node's position among its siblings (or among the scene's
// roots). ok is false when the node is not stored in any sibling list, which
// is distinct from a valid index of 0.
func (n *Node) Index() (index int, ok bool) {
	if n.index == invalidIndex {
		return 0, false
	}
	return n.index, true
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// FindChild returns the first direct child with the given name, or nil.
func (n *Node) FindChild(name string) *Node {
	for _, c := range n.children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Root returns the topmost ancestor of n, which may be n itself.
func (n *Node) Root() *Node {
	r := n
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Depth returns the number of ancestors above n.
func (n *Node) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// IsAncestorOf reports whether n is other or one of other's ancestors.
func (n *Node) IsAncestorOf(other *Node) bool {
	for p := other; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// Enabled reports whether the node's Update hooks run.
func (n *Node) Enabled() bool {
	return n.Flags&FlagEnabled != 0
}

// SetEnabled sets or clears FlagEnabled.
func (n *Node) SetEnabled(enabled bool) {
	n.setFlag(FlagEnabled, enabled)
}

// Visible reports whether the node and its subtree take part in rendering.
func (n *Node) Visible() bool {
	return n.Flags&FlagVisible != 0
}

// SetVisible sets or clears FlagVisible.
func (n *Node) SetVisible(visible bool) {
	n.setFlag(FlagVisible, visible)
}

func (n *Node) setFlag(f NodeFlags, on bool) {
	if on {
		n.Flags |= f
	} else {
		n.Flags &^= f
	}
}

// WorldBounds returns Bounds transformed into world space.
func (n *Node) WorldBounds() AABB {
	return n.Bounds.Transformed(n.global)
}

// --- Entity ---

// AttachEntity stores e in the node's payload slot, replacing any previous
// payload. The graph never inspects or frees it.
func (n *Node) AttachEntity(e any) {
	n.entity = e
}

// DetachEntity clears the payload slot and returns what it held.
func (n *Node) DetachEntity() any {
	e := n.entity
	n.entity = nil
	return e
}

// Entity returns the attached payload, or nil.
func (n *Node) Entity() any {
	return n.entity
}

// Update runs the node's per-frame hooks: OnUpdate, then the entity's Update
// if it implements Updater. It does not check FlagEnabled; Scene.Update does.
func (n *Node) Update(dt float64) {
	if n.OnUpdate != nil {
		n.OnUpdate(n, dt)
	}
	if u, ok := n.entity.(Updater); ok {
		u.Update(dt)
	}
}

// --- Tree manipulation ---

// AddNode appends child to this node's children. See InsertNode.
func (n *Node) AddNode(child *Node) bool {
	return n.InsertNode(len(n.children), child)
}

// InsertNode inserts child at index among this node's children, shifting
// later siblings up by one. A child attached elsewhere is detached first.
// The child keeps its world placement: its local transform is recomputed
// against n. The child's subtree joins n's scene, if any.
//
// It returns false, changing nothing, if child is nil, n itself, already a
// direct child of n, an ancestor of n, disposed, or if index is out of
// [0, NumChildren()].
func (n *Node) InsertNode(index int, child *Node) bool {
	if child == nil || child == n || indexOf(n.children, child) >= 0 {
		return false
	}
	if globalDebug {
		debugCheckDisposed(n, "InsertNode (parent)")
		debugCheckDisposed(child, "InsertNode (child)")
	}
	if n.disposed || child.disposed {
		return false
	}
	if child.IsAncestorOf(n) {
		return false
	}
	if index < 0 || index > len(n.children) {
		return false
	}

	oldParent := child.parent
	child.detach()

	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	reindex(n.children, index)

	child.parent = n
	child.reanchor()
	if n.scene != nil {
		n.scene.publish(child)
	}

	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
	child.fireReparent(oldParent, n)
	return true
}

// RemoveNode detaches a direct child. Later siblings shift down by one, the
// child keeps its world placement (its local transform becomes equal to its
// global transform) and its subtree leaves n's scene.
//
// It returns false, changing nothing, if child is not in n's child list.
// Removing a node from itself is a programming error and panics.
func (n *Node) RemoveNode(child *Node) bool {
	if child == n {
		panic("grove: cannot remove a node from itself")
	}
	if child == nil {
		return false
	}
	i := indexOf(n.children, child)
	if i < 0 {
		return false
	}
	n.removeAt(i)
	child.fireReparent(n, nil)
	return true
}

// RemoveFromParent detaches this node from its parent or from its scene's
// root list. No-op for detached nodes.
func (n *Node) RemoveFromParent() {
	old := n.parent
	if old == nil && n.scene == nil {
		return
	}
	n.detach()
	n.fireReparent(old, nil)
}

// removeAt unlinks the child at i. Uses copy+nil to avoid retaining a
// dangling pointer in the backing array.
func (n *Node) removeAt(i int) {
	child := n.children[i]
	copy(n.children[i:], n.children[i+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
	reindex(n.children, i)

	child.parent = nil
	child.index = invalidIndex
	child.reanchor()
	if n.scene != nil {
		n.scene.unpublish(child)
	}
}

// detach makes n parentless and sceneless without firing callbacks. A parent
// (or scene) that does not actually list n is logged and otherwise treated
// as if n had no parent.
func (n *Node) detach() {
	switch {
	case n.parent != nil:
		p := n.parent
		if i := indexOf(p.children, n); i >= 0 {
			p.removeAt(i)
			return
		}
		warnInconsistent(n, "node claims a parent that does not list it", logrus.Fields{
			"parent":   p.Name,
			"parentID": p.ID,
		})
		n.forceDetach()
	case n.scene != nil:
		s := n.scene
		if i := indexOf(s.roots, n); i >= 0 {
			s.removeRootAt(i)
			return
		}
		if n.index != invalidIndex {
			warnInconsistent(n, "node claims to be a scene root but the scene does not list it", logrus.Fields{
				"scene": s.Name,
			})
		}
		n.forceDetach()
	}
}

// forceDetach clears n's back-references after an inconsistency, scrubbing
// its subtree from whatever scene it claimed.
func (n *Node) forceDetach() {
	s := n.scene
	n.parent = nil
	n.index = invalidIndex
	n.reanchor()
	if s != nil {
		s.unpublish(n)
	}
}

func (n *Node) fireReparent(oldParent, newParent *Node) {
	if n.Callbacks.OnReparent != nil {
		n.Callbacks.OnReparent(n, oldParent, newParent)
	}
}

// --- Disposal ---

// Dispose detaches this node, then disposes it and every descendant. Disposed
// nodes refuse to be attached anywhere.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	walk(n, nil, func(d *Node) bool {
		d.dispose()
		return true
	})
}

// dispose runs in post-order, so every child is finished before its parent
// drops the child list.
func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	n.parent = nil
	n.scene = nil
	n.index = invalidIndex
	n.children = nil
	n.entity = nil
	n.OnUpdate = nil
	n.Callbacks = NodeCallbacks{}
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// indexOf finds n in list by identity, trying n's recorded index first.
func indexOf(list []*Node, n *Node) int {
	if i := n.index; i >= 0 && i < len(list) && list[i] == n {
		return i
	}
	for i, c := range list {
		if c == n {
			return i
		}
	}
	return -1
}

// reindex restores index == position for list[from:].
func reindex(list []*Node, from int) {
	for i := from; i < len(list); i++ {
		list[i].index = i
	}
}
