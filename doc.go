// Package grove is a retained-mode 3D scene graph.
//
// Grove keeps the world-space placement of every object in a running scene
// and provides the traversal primitives that renderers, physics and gameplay
// code build on.
//
// # Scene graph
//
// Every object is a [Node]. Nodes form trees whose roots belong to a
// [Scene]. Children inherit their parent's transform:
//
//	scene := grove.NewScene("level")
//	ship := grove.NewNode("ship")
//	scene.AddNode(ship)
//
//	turret := grove.NewNode("turret")
//	turret.SetLocalTransform(grove.Translate(0, 2, 0))
//	ship.AddNode(turret)
//
// Attach and detach calls return false when a precondition fails (nil child,
// self-attachment, duplicate child, cycle, missing child). Nothing changes in
// that case.
//
// # Transforms
//
// A node's local [Transform] is authoritative; its global transform is
// derived and recomputed eagerly for the whole subtree on every
// [Node.SetLocalTransform] or [Node.SetGlobalTransform], so readers never
// see a stale value. Reparenting keeps a node's world placement.
//
// # Traversal
//
// All traversals are iterative and keep their state in a stack owned by the
// call, so they may be nested from inside a visitor:
//
//	scene.LoopTraverseDFSPreOrder(func(n *grove.Node) { ... })
//	for n := range ship.PostOrder() { ... }
//
// # Frame
//
// [Scene.Update] runs each enabled node's OnUpdate hook and its entity's
// Update method in pre-order. [TweenGroup] values (via [gween]) can be
// attached as entities to animate transforms.
//
// [gween]: https://github.com/tanema/gween
package grove
