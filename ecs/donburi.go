package ecs

import (
	"github.com/phanxgames/grove"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// NodeData links an entity back to its scene node.
type NodeData struct {
	Node *grove.Node

	prevReparent func(node, oldParent, newParent *grove.Node)
}

// NodeComponent holds the bound node of an entity.
var NodeComponent = donburi.NewComponentType[NodeData]()

// TransformComponent mirrors the bound node's global transform. It is
// refreshed by Sync.
var TransformComponent = donburi.NewComponentType[grove.Transform]()

// ReparentEvent is published when a bound node moves in the hierarchy.
type ReparentEvent struct {
	Entity    donburi.Entity
	Node      *grove.Node
	OldParent *grove.Node
	NewParent *grove.Node
}

// ReparentEventType is the Donburi event type for hierarchy moves of bound
// nodes. Events are queued; call ProcessEvents to deliver them.
var ReparentEventType = events.NewEventType[ReparentEvent]()

var boundQuery = donburi.NewQuery(filter.Contains(NodeComponent, TransformComponent))

// Bind creates an entity for node and stores it as the node's entity
// payload. Binding an already bound node returns its existing entity.
// Any OnReparent callback on the node keeps firing before the event is
// published.
func Bind(world donburi.World, node *grove.Node) donburi.Entity {
	if e, ok := EntityOf(world, node); ok {
		return e
	}
	e := world.Create(NodeComponent, TransformComponent)
	entry := world.Entry(e)

	prev := node.Callbacks.OnReparent
	NodeComponent.SetValue(entry, NodeData{Node: node, prevReparent: prev})
	TransformComponent.SetValue(entry, node.GlobalTransform())

	node.AttachEntity(e)
	node.Callbacks.OnReparent = func(n, oldParent, newParent *grove.Node) {
		if prev != nil {
			prev(n, oldParent, newParent)
		}
		ReparentEventType.Publish(world, ReparentEvent{
			Entity:    e,
			Node:      n,
			OldParent: oldParent,
			NewParent: newParent,
		})
	}
	return e
}

// Unbind removes the node's entity from world and restores the node's
// previous OnReparent callback. Returns false if the node is not bound.
func Unbind(world donburi.World, node *grove.Node) bool {
	e, ok := EntityOf(world, node)
	if !ok {
		return false
	}
	data := NodeComponent.Get(world.Entry(e))
	node.Callbacks.OnReparent = data.prevReparent
	node.DetachEntity()
	world.Remove(e)
	return true
}

// EntityOf returns the entity bound to node in world.
func EntityOf(world donburi.World, node *grove.Node) (donburi.Entity, bool) {
	if node == nil {
		return donburi.Null, false
	}
	e, ok := node.Entity().(donburi.Entity)
	if !ok || !world.Valid(e) {
		return donburi.Null, false
	}
	entry := world.Entry(e)
	if !entry.HasComponent(NodeComponent) || NodeComponent.Get(entry).Node != node {
		return donburi.Null, false
	}
	return e, true
}

// NodeOf returns the node bound to entity, or nil.
func NodeOf(world donburi.World, e donburi.Entity) *grove.Node {
	if !world.Valid(e) {
		return nil
	}
	entry := world.Entry(e)
	if !entry.HasComponent(NodeComponent) {
		return nil
	}
	return NodeComponent.Get(entry).Node
}

// Each calls fn for every bound node that has not been disposed.
func Each(world donburi.World, fn func(e donburi.Entity, n *grove.Node)) {
	boundQuery.Each(world, func(entry *donburi.Entry) {
		n := NodeComponent.Get(entry).Node
		if n == nil || n.IsDisposed() {
			return
		}
		fn(entry.Entity(), n)
	})
}

// Sync copies every bound node's global transform into its
// TransformComponent. Entities whose node was disposed are removed.
func Sync(world donburi.World) {
	var stale []donburi.Entity
	boundQuery.Each(world, func(entry *donburi.Entry) {
		n := NodeComponent.Get(entry).Node
		if n == nil || n.IsDisposed() {
			stale = append(stale, entry.Entity())
			return
		}
		TransformComponent.SetValue(entry, n.GlobalTransform())
	})
	for _, e := range stale {
		world.Remove(e)
	}
}
