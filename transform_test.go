package grove

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const epsilon = 1e-9

func assertVec(t *testing.T, name string, got, want mgl64.Vec3) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s = %v, want %v", name, got, want)
			return
		}
	}
}

func assertTransform(t *testing.T, name string, got, want Transform) {
	t.Helper()
	if !got.ApproxEqual(want, epsilon) {
		t.Errorf("%s = %+v, want %+v", name, got, want)
	}
}

var axisY = mgl64.Vec3{0, 1, 0}
var axisZ = mgl64.Vec3{0, 0, 1}

// --- Transform algebra ---

func TestIdentityTransform(t *testing.T) {
	id := IdentityTransform()
	p := mgl64.Vec3{1, -2, 3}
	assertVec(t, "identity.Apply", id.Apply(p), p)

	m := NewTransform(mgl64.Vec3{2, 2, 2}, mgl64.QuatRotate(0.3, axisY), mgl64.Vec3{4, 5, 6})
	assertTransform(t, "id*m", id.Mul(m), m)
	assertTransform(t, "m*id", m.Mul(id), m)
}

func TestMulTranslations(t *testing.T) {
	got := Translate(1, 2, 3).Mul(Translate(4, 5, 6))
	assertTransform(t, "translations", got, Translate(5, 7, 9))
}

func TestMulRotatesChildTranslation(t *testing.T) {
	parent := NewTransform(mgl64.Vec3{1, 1, 1}, mgl64.QuatRotate(math.Pi/2, axisZ), mgl64.Vec3{})
	got := parent.Mul(Translate(1, 0, 0))
	assertVec(t, "translation", got.Translation, mgl64.Vec3{0, 1, 0})
}

func TestMulScalesChildTranslation(t *testing.T) {
	parent := NewTransform(mgl64.Vec3{2, 2, 2}, mgl64.QuatIdent(), mgl64.Vec3{10, 0, 0})
	got := parent.Mul(Translate(1, 0, 0))
	assertVec(t, "translation", got.Translation, mgl64.Vec3{12, 0, 0})
	assertVec(t, "scale", got.Scale, mgl64.Vec3{2, 2, 2})
}

func TestMulMatchesApply(t *testing.T) {
	a := NewTransform(mgl64.Vec3{2, 2, 2}, mgl64.QuatRotate(0.7, axisY), mgl64.Vec3{1, 2, 3})
	b := NewTransform(mgl64.Vec3{0.5, 0.5, 0.5}, mgl64.QuatRotate(-1.1, axisZ), mgl64.Vec3{-4, 0, 9})
	p := mgl64.Vec3{3, -1, 2}
	assertVec(t, "a*b applied", a.Mul(b).Apply(p), a.Apply(b.Apply(p)))
}

func TestInverse(t *testing.T) {
	m := NewTransform(mgl64.Vec3{2, 2, 2}, mgl64.QuatRotate(math.Pi/6, axisY), mgl64.Vec3{1, 2, 3})
	assertTransform(t, "m*inv", m.Mul(m.Inverse()), IdentityTransform())
	assertTransform(t, "inv*m", m.Inverse().Mul(m), IdentityTransform())

	p := mgl64.Vec3{7, 8, 9}
	assertVec(t, "round trip", m.Inverse().Apply(m.Apply(p)), p)
}

func TestInverseZeroScale(t *testing.T) {
	m := NewTransform(mgl64.Vec3{0, 1, 1}, mgl64.QuatIdent(), mgl64.Vec3{})
	inv := m.Inverse()
	for i, c := range inv.Scale {
		if math.IsInf(c, 0) || math.IsNaN(c) {
			t.Errorf("inverse scale[%d] = %v, want finite", i, c)
		}
	}
}

func TestMat4MatchesApply(t *testing.T) {
	m := NewTransform(mgl64.Vec3{3, 3, 3}, mgl64.QuatRotate(1.2, mgl64.Vec3{1, 1, 0}.Normalize()), mgl64.Vec3{-1, 4, 2})
	p := mgl64.Vec3{0.5, -2, 1}
	got := m.Mat4().Mul4x1(p.Vec4(1)).Vec3()
	assertVec(t, "Mat4*p", got, m.Apply(p))
}

func TestApproxEqualNegatedQuaternion(t *testing.T) {
	q := mgl64.QuatRotate(0.4, axisY)
	a := NewTransform(mgl64.Vec3{1, 1, 1}, q, mgl64.Vec3{})
	b := NewTransform(mgl64.Vec3{1, 1, 1}, q.Scale(-1), mgl64.Vec3{})
	if !a.ApproxEqual(b, epsilon) {
		t.Error("q and -q should compare equal")
	}
	if a.ApproxEqual(Translate(0, 0, 1), epsilon) {
		t.Error("different translations should not compare equal")
	}
}

// --- Node transform operations ---

func TestSetLocalTransformPropagates(t *testing.T) {
	root := NewNode("root")
	child := NewNode("child")
	grandchild := NewNode("grandchild")
	root.AddNode(child)
	child.AddNode(grandchild)
	child.SetLocalTransform(Translate(0, 1, 0))
	grandchild.SetLocalTransform(Translate(0, 0, 1))

	root.SetLocalTransform(Translate(10, 0, 0))

	assertTransform(t, "root global", root.GlobalTransform(), Translate(10, 0, 0))
	assertTransform(t, "child global", child.GlobalTransform(), Translate(10, 1, 0))
	assertTransform(t, "grandchild global", grandchild.GlobalTransform(), Translate(10, 1, 1))
	assertTransform(t, "grandchild local", grandchild.LocalTransform(), Translate(0, 0, 1))
}

func TestSetLocalTransformRotatedParent(t *testing.T) {
	root := NewNode("root")
	child := NewNode("child")
	root.AddNode(child)
	child.SetLocalTransform(Translate(1, 0, 0))

	root.SetLocalTransform(NewTransform(mgl64.Vec3{2, 2, 2}, mgl64.QuatRotate(math.Pi/2, axisZ), mgl64.Vec3{}))

	assertVec(t, "child position", child.GlobalTransform().Translation, mgl64.Vec3{0, 2, 0})
	assertVec(t, "child scale", child.GlobalTransform().Scale, mgl64.Vec3{2, 2, 2})
}

func TestSetGlobalTransform(t *testing.T) {
	root := NewNode("root")
	child := NewNode("child")
	grandchild := NewNode("grandchild")
	root.AddNode(child)
	child.AddNode(grandchild)
	root.SetLocalTransform(Translate(10, 0, 0))
	grandchild.SetLocalTransform(Translate(1, 0, 0))

	child.SetGlobalTransform(Translate(3, 0, 0))

	assertTransform(t, "child global", child.GlobalTransform(), Translate(3, 0, 0))
	assertTransform(t, "child local", child.LocalTransform(), Translate(-7, 0, 0))
	assertTransform(t, "grandchild global", grandchild.GlobalTransform(), Translate(4, 0, 0))
	assertTransform(t, "grandchild local", grandchild.LocalTransform(), Translate(1, 0, 0))
}

func TestSetGlobalTransformRoot(t *testing.T) {
	n := NewNode("n")
	want := NewTransform(mgl64.Vec3{1, 1, 1}, mgl64.QuatRotate(0.5, axisY), mgl64.Vec3{1, 2, 3})
	n.SetGlobalTransform(want)
	if n.LocalTransform() != want || n.GlobalTransform() != want {
		t.Error("root local and global should both equal the assigned transform")
	}
}
