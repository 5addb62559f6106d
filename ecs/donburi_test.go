package ecs

import (
	"testing"

	"github.com/phanxgames/grove"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestBind(t *testing.T) {
	world := donburi.NewWorld()
	n := grove.NewNode("n")
	e := Bind(world, n)

	if !world.Valid(e) {
		t.Fatal("Bind returned an invalid entity")
	}
	if got, ok := EntityOf(world, n); !ok || got != e {
		t.Errorf("EntityOf = (%v, %v), want (%v, true)", got, ok, e)
	}
	if NodeOf(world, e) != n {
		t.Error("NodeOf should return the bound node")
	}
	if n.Entity() != e {
		t.Error("entity should be stored as the node payload")
	}
	if again := Bind(world, n); again != e {
		t.Error("binding twice should return the same entity")
	}
	if world.Len() != 1 {
		t.Errorf("world has %d entities, want 1", world.Len())
	}
}

func TestUnbind(t *testing.T) {
	world := donburi.NewWorld()
	n := grove.NewNode("n")
	calls := 0
	n.Callbacks.OnReparent = func(_, _, _ *grove.Node) { calls++ }
	e := Bind(world, n)

	if !Unbind(world, n) {
		t.Fatal("Unbind should succeed")
	}
	if world.Valid(e) {
		t.Error("entity should be removed")
	}
	if _, ok := EntityOf(world, n); ok {
		t.Error("node should no longer be bound")
	}
	if Unbind(world, n) {
		t.Error("second Unbind should fail")
	}

	grove.NewNode("p").AddNode(n)
	if calls != 1 {
		t.Errorf("previous callback calls = %d, want 1", calls)
	}
}

func TestSyncMirrorsGlobalTransform(t *testing.T) {
	world := donburi.NewWorld()
	parent := grove.NewNode("parent")
	child := grove.NewNode("child")
	parent.AddNode(child)
	child.SetLocalTransform(grove.Translate(1, 0, 0))
	e := Bind(world, child)

	parent.SetLocalTransform(grove.Translate(0, 5, 0))
	Sync(world)

	got := TransformComponent.Get(world.Entry(e))
	if !got.ApproxEqual(grove.Translate(1, 5, 0), 1e-9) {
		t.Errorf("component = %+v, want translation (1, 5, 0)", got.Translation)
	}
}

func TestSyncDropsDisposed(t *testing.T) {
	world := donburi.NewWorld()
	a, b := grove.NewNode("a"), grove.NewNode("b")
	ea := Bind(world, a)
	Bind(world, b)
	a.Dispose()

	seen := 0
	Each(world, func(_ donburi.Entity, n *grove.Node) {
		seen++
		if n != b {
			t.Errorf("Each visited %q", n.Name)
		}
	})
	if seen != 1 {
		t.Errorf("Each visited %d nodes, want 1", seen)
	}

	Sync(world)
	if world.Valid(ea) {
		t.Error("Sync should remove entities of disposed nodes")
	}
	if world.Len() != 1 {
		t.Errorf("world has %d entities, want 1", world.Len())
	}
}

func TestReparentEvents(t *testing.T) {
	world := donburi.NewWorld()
	s := grove.NewScene("s")
	p := grove.NewNode("p")
	s.AddNode(p)
	n := grove.NewNode("n")
	e := Bind(world, n)

	var received []ReparentEvent
	ReparentEventType.Subscribe(world, func(w donburi.World, ev ReparentEvent) {
		received = append(received, ev)
	})

	p.AddNode(n)
	p.RemoveNode(n)

	if len(received) != 0 {
		t.Fatal("events should be queued until processed")
	}
	events.ProcessAllEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if ev := received[0]; ev.Entity != e || ev.Node != n || ev.OldParent != nil || ev.NewParent != p {
		t.Errorf("event 0: %+v", ev)
	}
	if ev := received[1]; ev.OldParent != p || ev.NewParent != nil {
		t.Errorf("event 1: %+v", ev)
	}
}
