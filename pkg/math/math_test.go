package math

import (
	"testing"
)

func approx(a, b float32) bool {
	d := a - b
	return d < 1e-4 && d > -1e-4
}

func approxVec(a, b Vec3) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y) && approx(a.Z, b.Z)
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float32
	}{
		{-1, 0, 5, 0},
		{2.5, 0, 5, 2.5},
		{7, 0, 5, 5},
		{5, 0, 5, 5},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	if got, want := x.Cross(y), (Vec3{0, 0, 1}); got != want {
		t.Errorf("Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 3, 6}.Normalize()
	if !approx(n.Length(), 1) {
		t.Errorf("Normalize().Length() = %v, want 1", n.Length())
	}
	if (Vec3{}).Normalize() != (Vec3{}) {
		t.Error("Normalize of zero vector should stay zero")
	}
}

func TestBox3(t *testing.T) {
	var b Box3
	if !b.Empty() {
		t.Fatal("new box should be empty")
	}
	b.Extend(Vec3{-1, 0, 2})
	b.Extend(Vec3{3, 4, -2})
	if got, want := b.Center(), (Vec3{1, 2, 0}); got != want {
		t.Errorf("Center() = %v, want %v", got, want)
	}
	if got, want := b.Size(), (Vec3{4, 4, 4}); got != want {
		t.Errorf("Size() = %v, want %v", got, want)
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(Vec3{1, 2, 3})
	if got := m.Mul(Identity()); got != m {
		t.Errorf("M * I = %v, want %v", got, m)
	}
}

func TestTranslatePoint(t *testing.T) {
	m := Translate(Vec3{10, 20, 30})
	if got, want := m.TransformPoint(Vec3{1, 2, 3}), (Vec3{11, 22, 33}); got != want {
		t.Errorf("TransformPoint() = %v, want %v", got, want)
	}
	if got, want := m.TransformDirection(Vec3{1, 2, 3}), (Vec3{1, 2, 3}); got != want {
		t.Errorf("TransformDirection() = %v, want %v", got, want)
	}
}

func TestRotate(t *testing.T) {
	tests := []struct {
		name  string
		axis  Vec3
		angle float32
		in    Vec3
		want  Vec3
	}{
		{"y quarter turn", Vec3{0, 1, 0}, Pi / 2, Vec3{1, 0, 0}, Vec3{0, 0, -1}},
		{"z quarter turn", Vec3{0, 0, 1}, Pi / 2, Vec3{1, 0, 0}, Vec3{0, 1, 0}},
		{"unnormalized axis", Vec3{0, 5, 0}, Pi, Vec3{1, 0, 0}, Vec3{-1, 0, 0}},
		{"zero axis", Vec3{}, 1, Vec3{1, 2, 3}, Vec3{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rotate(tt.axis, tt.angle).TransformPoint(tt.in)
			if !approxVec(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLookAt(t *testing.T) {
	eye := Vec3{0, 0, 10}
	view := LookAt(eye, Vec3{}, Vec3{0, 1, 0})
	// the target ends up straight ahead on -Z
	if got := view.TransformPoint(Vec3{}); !approxVec(got, Vec3{0, 0, -10}) {
		t.Errorf("center in view space = %v, want (0,0,-10)", got)
	}
	if got := view.TransformPoint(eye); !approxVec(got, Vec3{}) {
		t.Errorf("eye in view space = %v, want origin", got)
	}
}

func TestPerspective(t *testing.T) {
	p := Perspective(Pi/2, 1, 0.1, 100)
	if !approx(p[0], 1) || !approx(p[5], 1) {
		t.Errorf("focal terms = %v, %v, want 1", p[0], p[5])
	}
	if p[11] != -1 {
		t.Errorf("p[11] = %v, want -1", p[11])
	}
}

func TestNormalMatrix(t *testing.T) {
	t.Run("rotation is preserved", func(t *testing.T) {
		r := Rotate(Vec3{0, 1, 0}, 0.7)
		n := r.NormalMatrix()
		want := Mat3{r[0], r[1], r[2], r[4], r[5], r[6], r[8], r[9], r[10]}
		for i := range n {
			if !approx(n[i], want[i]) {
				t.Fatalf("NormalMatrix()[%d] = %v, want %v", i, n[i], want[i])
			}
		}
	})
	t.Run("scale is inverted", func(t *testing.T) {
		n := Scale(Vec3{2, 4, 8}).NormalMatrix()
		if !approx(n[0], 0.5) || !approx(n[4], 0.25) || !approx(n[8], 0.125) {
			t.Errorf("diagonal = %v %v %v", n[0], n[4], n[8])
		}
	})
}
