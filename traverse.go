package grove

import "iter"

// walkAction tells walk how to proceed after entering a node.
type walkAction uint8

const (
	walkContinue walkAction = iota // descend into children
	walkSkip                       // leave children unvisited
	walkStop                       // abort the whole walk
)

// frame is one level of an in-progress depth-first walk: the node and the
// index of the next child to descend into.
type frame struct {
	node *Node
	next int
}

// walkStackSize covers typical tree depths without growing onto the heap.
const walkStackSize = 32

// walk performs an iterative depth-first walk of the subtree rooted at start
// using a caller-owned frame stack. enter runs before a node's children and
// leave after them; either may be nil. Because no state lives on the nodes,
// walks may nest or overlap freely. It returns false if the walk was stopped.
//
// Callbacks may edit transforms but must not restructure the subtree being
// walked.
func walk(start *Node, enter func(*Node) walkAction, leave func(*Node) bool) bool {
	var buf [walkStackSize]frame
	stack := buf[:0]

	push := func(n *Node) bool {
		f := frame{node: n}
		if enter != nil {
			switch enter(n) {
			case walkStop:
				return false
			case walkSkip:
				f.next = len(n.children)
			}
		}
		stack = append(stack, f)
		return true
	}

	if !push(start) {
		return false
	}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.node.children) {
			child := top.node.children[top.next]
			top.next++
			if !push(child) {
				return false
			}
			continue
		}
		done := top.node
		stack = stack[:len(stack)-1]
		if leave != nil && !leave(done) {
			return false
		}
	}
	return true
}

// visitAll adapts a plain visitor to walk's enter signature.
func visitAll(action func(*Node)) func(*Node) walkAction {
	return func(n *Node) walkAction {
		action(n)
		return walkContinue
	}
}

// visitLeave adapts a plain visitor to walk's leave signature.
func visitLeave(action func(*Node)) func(*Node) bool {
	return func(n *Node) bool {
		action(n)
		return true
	}
}

// --- Node traversal ---

// LoopTraverseDFSPreOrder calls action on n and every descendant, each node
// before its children, siblings in storage order.
func (n *Node) LoopTraverseDFSPreOrder(action func(*Node)) {
	walk(n, visitAll(action), nil)
}

// LoopTraverseDFSPreOrderEnterLeave calls preamble on entering each node and
// postamble once all of its children have been visited.
func (n *Node) LoopTraverseDFSPreOrderEnterLeave(preamble, postamble func(*Node)) {
	walk(n, visitAll(preamble), visitLeave(postamble))
}

// LoopTraverseDFSPostOrder calls action on every descendant of n, and then n,
// each node after all of its children.
func (n *Node) LoopTraverseDFSPostOrder(action func(*Node)) {
	walk(n, nil, visitLeave(action))
}

// LoopTraverseAncestors calls action on n and then on each parent up to the
// root of its tree.
func (n *Node) LoopTraverseAncestors(action func(*Node)) {
	for p := n; p != nil; p = p.parent {
		action(p)
	}
}

// RecursiveTraverseDFSPreOrder is the recursive reference for
// LoopTraverseDFSPreOrder and visits nodes in the same order.
func (n *Node) RecursiveTraverseDFSPreOrder(action func(*Node)) {
	action(n)
	for _, c := range n.children {
		c.RecursiveTraverseDFSPreOrder(action)
	}
}

// RecursiveTraverseDFSPostOrder is the recursive reference for
// LoopTraverseDFSPostOrder and visits nodes in the same order.
func (n *Node) RecursiveTraverseDFSPostOrder(action func(*Node)) {
	for _, c := range n.children {
		c.RecursiveTraverseDFSPostOrder(action)
	}
	action(n)
}

// PreOrder returns an iterator over n and its descendants in pre-order.
// Breaking out of the range loop stops the walk.
func (n *Node) PreOrder() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		walk(n, func(v *Node) walkAction {
			if !yield(v) {
				return walkStop
			}
			return walkContinue
		}, nil)
	}
}

// PostOrder returns an iterator over n and its descendants in post-order.
func (n *Node) PostOrder() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		walk(n, nil, yield)
	}
}

// Ancestors returns an iterator over n and its parent chain.
func (n *Node) Ancestors() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for p := n; p != nil; p = p.parent {
			if !yield(p) {
				return
			}
		}
	}
}

// --- Scene traversal ---

// LoopTraverseDFSPreOrder walks every root in order, pre-order.
func (s *Scene) LoopTraverseDFSPreOrder(action func(*Node)) {
	enter := visitAll(action)
	for _, r := range s.roots {
		walk(r, enter, nil)
	}
}

// LoopTraverseDFSPreOrderEnterLeave walks every root with enter and leave
// callbacks.
func (s *Scene) LoopTraverseDFSPreOrderEnterLeave(preamble, postamble func(*Node)) {
	enter, leave := visitAll(preamble), visitLeave(postamble)
	for _, r := range s.roots {
		walk(r, enter, leave)
	}
}

// LoopTraverseDFSPostOrder walks every root in order, post-order.
func (s *Scene) LoopTraverseDFSPostOrder(action func(*Node)) {
	leave := visitLeave(action)
	for _, r := range s.roots {
		walk(r, nil, leave)
	}
}

// RecursiveTraverseDFSPreOrder is the recursive reference for the scene-wide
// pre-order walk.
func (s *Scene) RecursiveTraverseDFSPreOrder(action func(*Node)) {
	for _, r := range s.roots {
		r.RecursiveTraverseDFSPreOrder(action)
	}
}

// RecursiveTraverseDFSPostOrder is the recursive reference for the scene-wide
// post-order walk.
func (s *Scene) RecursiveTraverseDFSPostOrder(action func(*Node)) {
	for _, r := range s.roots {
		r.RecursiveTraverseDFSPostOrder(action)
	}
}

// All returns a pre-order iterator over every node in the scene, root by root.
func (s *Scene) All() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, r := range s.roots {
			for n := range r.PreOrder() {
				if !yield(n) {
					return
				}
			}
		}
	}
}

// VisitVisible walks the scene in pre-order and calls fn for every visible
// node whose world bounds intersect f. Invisible nodes hide their whole
// subtree; a culled node's children are still tested.
func (s *Scene) VisitVisible(f Frustum, fn func(*Node)) {
	enter := func(n *Node) walkAction {
		if !n.Visible() {
			return walkSkip
		}
		if !n.Bounds.Empty() && f.IntersectsAABB(n.WorldBounds()) {
			fn(n)
		}
		return walkContinue
	}
	for _, r := range s.roots {
		walk(r, enter, nil)
	}
}
