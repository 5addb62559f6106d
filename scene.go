package grove

import (
	"fmt"
	"slices"

	"github.com/hashicorp/go-multierror"
)

// Scene is the top-level container. It owns an ordered list of root nodes
// and keeps a flat index of every node reachable from them.
type Scene struct {
	Name string

	roots []*Node

	// all holds exactly the nodes of the subtrees under roots, unordered.
	all  []*Node
	byID map[uint32]*Node

	debug bool
}

// NewScene creates an empty scene.
func NewScene(name string) *Scene {
	return &Scene{
		Name: name,
		byID: make(map[uint32]*Node),
	}
}

// --- Roots ---

// Roots returns the root list. The returned slice MUST NOT be mutated by the caller.
func (s *Scene) Roots() []*Node {
	return s.roots
}

// ChildrenCount returns the number of root nodes.
func (s *Scene) ChildrenCount() int {
	return len(s.roots)
}

// RootAt returns the root at the given index.
func (s *Scene) RootAt(index int) *Node {
	return s.roots[index]
}

// AddNode appends node to the root list. See InsertNode.
func (s *Scene) AddNode(node *Node) bool {
	return s.InsertNode(len(s.roots), node)
}

// InsertNode makes node a root at index, shifting later roots up by one. A
// node attached elsewhere is detached first and keeps its world placement,
// so its local transform becomes its global transform. Its whole subtree
// joins the scene's node index.
//
// It returns false, changing nothing, if node is nil, disposed, already a
// root of s, or if index is out of [0, ChildrenCount()].
func (s *Scene) InsertNode(index int, node *Node) bool {
	if node == nil || indexOf(s.roots, node) >= 0 {
		return false
	}
	if globalDebug {
		debugCheckDisposed(node, "Scene.InsertNode")
	}
	if node.disposed {
		return false
	}
	if index < 0 || index > len(s.roots) {
		return false
	}

	oldParent := node.parent
	node.detach()

	s.roots = append(s.roots, nil)
	copy(s.roots[index+1:], s.roots[index:])
	s.roots[index] = node
	reindex(s.roots, index)

	node.reanchor()
	s.publish(node)

	if globalDebug {
		debugCheckTreeDepth(node)
	}
	node.fireReparent(oldParent, nil)
	return true
}

// RemoveNode detaches a root and its subtree from the scene. It returns
// false, changing nothing, if node is not one of the scene's roots.
func (s *Scene) RemoveNode(node *Node) bool {
	if node == nil {
		return false
	}
	i := indexOf(s.roots, node)
	if i < 0 {
		return false
	}
	s.removeRootAt(i)
	node.fireReparent(nil, nil)
	return true
}

func (s *Scene) removeRootAt(i int) {
	node := s.roots[i]
	copy(s.roots[i:], s.roots[i+1:])
	s.roots[len(s.roots)-1] = nil
	s.roots = s.roots[:len(s.roots)-1]
	reindex(s.roots, i)

	node.index = invalidIndex
	s.unpublish(node)
}

// --- Flat node index ---

// publish stamps s on every node of the subtree and adds each to the index.
func (s *Scene) publish(sub *Node) {
	walk(sub, func(n *Node) walkAction {
		if n.scene == s {
			if _, ok := s.byID[n.ID]; ok {
				return walkContinue
			}
		}
		n.scene = s
		s.all = append(s.all, n)
		s.byID[n.ID] = n
		return walkContinue
	}, nil)
}

// unpublish clears the scene back-reference of every node of the subtree in
// post-order, then erases the cleared entries from the index in one pass.
func (s *Scene) unpublish(sub *Node) {
	removed := 0
	walk(sub, nil, func(n *Node) bool {
		if n.scene == s {
			n.scene = nil
			delete(s.byID, n.ID)
			removed++
		}
		return true
	})
	if removed == 0 {
		return
	}
	s.all = slices.DeleteFunc(s.all, func(n *Node) bool {
		return n.scene != s
	})
}

// NodeCount returns the number of nodes in the scene.
func (s *Scene) NodeCount() int {
	return len(s.all)
}

// Nodes returns a copy of the flat node index, in no particular order.
func (s *Scene) Nodes() []*Node {
	return slices.Clone(s.all)
}

// Contains reports whether n belongs to this scene.
func (s *Scene) Contains(n *Node) bool {
	return n != nil && n.scene == s && s.byID[n.ID] == n
}

// NodeByID returns the scene node with the given ID, or nil.
func (s *Scene) NodeByID(id uint32) *Node {
	return s.byID[id]
}

// FindByName returns the first node with the given name in pre-order, or nil.
func (s *Scene) FindByName(name string) *Node {
	for n := range s.All() {
		if n.Name == name {
			return n
		}
	}
	return nil
}

// --- Frame ---

// Update walks the scene in pre-order and runs the per-frame hooks of every
// enabled node. A disabled node's children are still updated.
func (s *Scene) Update(dt float64) {
	s.LoopTraverseDFSPreOrder(func(n *Node) {
		if n.Enabled() {
			n.Update(dt)
		}
	})
}

// --- Diagnostics ---

// Stats summarizes the shape of a scene.
type Stats struct {
	Nodes    int
	Roots    int
	MaxDepth int
	Leaves   int
}

// Stats walks the scene and reports its shape.
func (s *Scene) Stats() Stats {
	st := Stats{Nodes: len(s.all), Roots: len(s.roots)}
	depth := 0
	s.LoopTraverseDFSPreOrderEnterLeave(func(n *Node) {
		depth++
		if depth > st.MaxDepth {
			st.MaxDepth = depth
		}
		if len(n.children) == 0 {
			st.Leaves++
		}
	}, func(*Node) {
		depth--
	})
	return st
}

// validateEpsilon bounds the drift between a stored global transform and
// its recomputation from the parent chain.
const validateEpsilon = 1e-6

// Validate checks the structural invariants of the scene: transform
// composition, sibling index contiguity, back-references and the flat node
// index. It returns every violation found.
func (s *Scene) Validate() error {
	var result *multierror.Error
	seen := make(map[*Node]struct{}, len(s.all))

	for i, r := range s.roots {
		if r.index != i {
			result = multierror.Append(result, fmt.Errorf("root %q: index %d, stored at %d", r.Name, r.index, i))
		}
		if r.parent != nil {
			result = multierror.Append(result, fmt.Errorf("root %q: has parent %q", r.Name, r.parent.Name))
		}
		if !r.global.ApproxEqual(r.local, validateEpsilon) {
			result = multierror.Append(result, fmt.Errorf("root %q: global transform differs from local", r.Name))
		}
		walk(r, func(n *Node) walkAction {
			if _, dup := seen[n]; dup {
				result = multierror.Append(result, fmt.Errorf("node %q: reachable twice", n.Name))
				return walkSkip
			}
			seen[n] = struct{}{}
			if n.scene != s {
				result = multierror.Append(result, fmt.Errorf("node %q: scene back-reference not set", n.Name))
			}
			for j, c := range n.children {
				if c.index != j {
					result = multierror.Append(result, fmt.Errorf("node %q: index %d, stored at %d", c.Name, c.index, j))
				}
				if c.parent != n {
					result = multierror.Append(result, fmt.Errorf("node %q: parent back-reference not set", c.Name))
				}
				if !c.global.ApproxEqual(n.global.Mul(c.local), validateEpsilon) {
					result = multierror.Append(result, fmt.Errorf("node %q: global transform out of date", c.Name))
				}
			}
			return walkContinue
		}, nil)
	}

	if len(seen) != len(s.all) {
		result = multierror.Append(result, fmt.Errorf("node index holds %d entries, %d nodes reachable", len(s.all), len(seen)))
	}
	indexed := make(map[*Node]struct{}, len(s.all))
	for _, n := range s.all {
		if _, dup := indexed[n]; dup {
			result = multierror.Append(result, fmt.Errorf("node %q: indexed twice", n.Name))
		}
		indexed[n] = struct{}{}
		if _, ok := seen[n]; !ok {
			result = multierror.Append(result, fmt.Errorf("node %q: indexed but not reachable", n.Name))
		}
	}
	return result.ErrorOrNil()
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics and tree depth and child count warnings are logged.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations on detached nodes can check it cheaply. Only valid with a
// single Scene; multiple Scenes with differing debug modes will reflect
// whichever called SetDebugMode last.
var globalDebug bool
