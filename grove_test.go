package grove

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// --- AABB ---

func TestAABBEmpty(t *testing.T) {
	if !EmptyAABB().Empty() {
		t.Error("EmptyAABB should be empty")
	}
	if NewAABB(mgl64.Vec3{}, mgl64.Vec3{}).Empty() {
		t.Error("a point box is not empty")
	}
	e := EmptyAABB()
	if e.Intersects(e) || e.Intersects(NewAABB(mgl64.Vec3{-1, -1, -1}, mgl64.Vec3{1, 1, 1})) {
		t.Error("empty boxes never intersect")
	}
}

func TestNewAABBOrdersCorners(t *testing.T) {
	b := NewAABB(mgl64.Vec3{3, -1, 5}, mgl64.Vec3{-2, 4, 0})
	assertVec(t, "min", b.Min, mgl64.Vec3{-2, -1, 0})
	assertVec(t, "max", b.Max, mgl64.Vec3{3, 4, 5})
}

func TestAABBContains(t *testing.T) {
	b := NewAABB(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{10, 10, 10})
	tests := []struct {
		name   string
		p      mgl64.Vec3
		expect bool
	}{
		{"inside", mgl64.Vec3{5, 5, 5}, true},
		{"corner", mgl64.Vec3{0, 0, 0}, true},
		{"face", mgl64.Vec3{10, 5, 5}, true},
		{"outside x", mgl64.Vec3{11, 5, 5}, false},
		{"outside z", mgl64.Vec3{5, 5, -1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.p); got != tt.expect {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.expect)
			}
		})
	}
}

func TestAABBIntersects(t *testing.T) {
	base := NewAABB(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{10, 10, 10})
	tests := []struct {
		name   string
		other  AABB
		expect bool
	}{
		{"overlapping", NewAABB(mgl64.Vec3{5, 5, 5}, mgl64.Vec3{15, 15, 15}), true},
		{"contained", NewAABB(mgl64.Vec3{2, 2, 2}, mgl64.Vec3{3, 3, 3}), true},
		{"containing", NewAABB(mgl64.Vec3{-5, -5, -5}, mgl64.Vec3{20, 20, 20}), true},
		{"touching face", NewAABB(mgl64.Vec3{10, 0, 0}, mgl64.Vec3{12, 10, 10}), true},
		{"disjoint x", NewAABB(mgl64.Vec3{11, 0, 0}, mgl64.Vec3{12, 10, 10}), false},
		{"disjoint y", NewAABB(mgl64.Vec3{0, -5, 0}, mgl64.Vec3{10, -1, 10}), false},
		{"disjoint z", NewAABB(mgl64.Vec3{0, 0, 20}, mgl64.Vec3{10, 10, 30}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.expect {
				t.Errorf("Intersects = %v, want %v", got, tt.expect)
			}
			if got := (Box{base}).IntersectsAABB(tt.other); got != tt.expect {
				t.Errorf("Box.IntersectsAABB = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestAABBTransformed(t *testing.T) {
	b := NewAABB(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{2, 1, 1})
	rot := NewTransform(mgl64.Vec3{1, 1, 1}, mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1}), mgl64.Vec3{5, 0, 0})
	got := b.Transformed(rot)
	// (x, y) -> (-y, x), then +5 on x.
	assertVec(t, "min", got.Min, mgl64.Vec3{4, 0, 0})
	assertVec(t, "max", got.Max, mgl64.Vec3{5, 2, 1})

	if !EmptyAABB().Transformed(rot).Empty() {
		t.Error("transformed empty box should stay empty")
	}
}

func TestAABBExtend(t *testing.T) {
	b := EmptyAABB().Extend(mgl64.Vec3{1, 2, 3})
	assertVec(t, "single min", b.Min, mgl64.Vec3{1, 2, 3})
	assertVec(t, "single max", b.Max, mgl64.Vec3{1, 2, 3})

	b = b.Extend(mgl64.Vec3{-1, 5, 0})
	assertVec(t, "min", b.Min, mgl64.Vec3{-1, 2, 0})
	assertVec(t, "max", b.Max, mgl64.Vec3{1, 5, 3})
	if !b.Contains(mgl64.Vec3{0, 3, 1}) {
		t.Error("extended box should contain interior point")
	}
}
