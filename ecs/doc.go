// Package ecs binds grove scene nodes to a [Donburi] world.
//
// [Bind] creates an entity carrying a [NodeComponent] and a
// [TransformComponent] and stores the entity as the node's payload.
// [Sync] mirrors every bound node's global transform into its component so
// ECS systems can read world placement without touching the scene graph.
// Structural moves of bound nodes are published as [ReparentEvent]s.
//
// Usage:
//
//	world := donburi.NewWorld()
//	e := ecs.Bind(world, node)
//	ecs.Sync(world)
//	ecs.ReparentEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
