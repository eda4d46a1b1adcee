package camera

import (
	"testing"

	"github.com/Faultbox/shapeshift/pkg/math"
)

func closeTo(a, b math.Vec3, eps float32) bool {
	return a.Distance(b) < eps
}

func TestNewOrbitCamera(t *testing.T) {
	c := NewOrbitCamera()
	want := math.Vec3{X: 3, Y: 3, Z: 6}.Normalize().Scale(10)
	if got := c.Eye(); !closeTo(got, want, 1e-3) {
		t.Errorf("Eye() = %v, want %v", got, want)
	}
	if c.Center != (math.Vec3{}) {
		t.Errorf("Center = %v, want origin", c.Center)
	}
}

func TestRotateClampsPitch(t *testing.T) {
	c := NewOrbitCamera()
	c.Rotate(0, 10000)
	if c.Pitch != c.MaxPitch {
		t.Errorf("Pitch = %v, want %v", c.Pitch, c.MaxPitch)
	}
	c.Rotate(0, -20000)
	if c.Pitch != -c.MaxPitch {
		t.Errorf("Pitch = %v, want %v", c.Pitch, -c.MaxPitch)
	}
}

func TestRotateKeepsDistance(t *testing.T) {
	c := NewOrbitCamera()
	before := c.Eye().Distance(c.Center)
	c.Rotate(37, -12)
	if after := c.Eye().Distance(c.Center); after-before > 1e-3 || before-after > 1e-3 {
		t.Errorf("distance changed from %v to %v", before, after)
	}
}

func TestMouseButtons(t *testing.T) {
	tests := []struct {
		name   string
		button Button
		check  func(t *testing.T, before, after *OrbitCamera)
	}{
		{"left rotates", ButtonLeft, func(t *testing.T, b, a *OrbitCamera) {
			if a.Yaw == b.Yaw {
				t.Error("yaw unchanged")
			}
			if a.Center != b.Center || a.Distance != b.Distance {
				t.Error("center or distance changed")
			}
		}},
		{"middle pans", ButtonMiddle, func(t *testing.T, b, a *OrbitCamera) {
			if a.Center == b.Center {
				t.Error("center unchanged")
			}
			if a.Yaw != b.Yaw || a.Distance != b.Distance {
				t.Error("orientation or distance changed")
			}
		}},
		{"right dollies", ButtonRight, func(t *testing.T, b, a *OrbitCamera) {
			if a.Distance >= b.Distance {
				t.Errorf("distance %v, want less than %v", a.Distance, b.Distance)
			}
			if a.Center != b.Center || a.Yaw != b.Yaw {
				t.Error("center or orientation changed")
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewOrbitCamera()
			before := *c
			c.MouseDown(tt.button, 100, 100)
			if !c.Dragging() {
				t.Fatal("not dragging after MouseDown")
			}
			c.MouseDrag(120, 110)
			c.MouseUp()
			if c.Dragging() {
				t.Fatal("still dragging after MouseUp")
			}
			tt.check(t, &before, c)
		})
	}
}

func TestDollyClamps(t *testing.T) {
	c := NewOrbitCamera()
	c.Dolly(1e6)
	if c.Distance != c.MinDistance {
		t.Errorf("Distance = %v, want %v", c.Distance, c.MinDistance)
	}
	c.HandleZoom(-1e6)
	if c.Distance != c.MaxDistance {
		t.Errorf("Distance = %v, want %v", c.Distance, c.MaxDistance)
	}
}

func TestRetargetSnaps(t *testing.T) {
	c := NewOrbitCamera()
	eye := c.Eye()
	target := math.Vec3{Y: 1}
	c.Retarget(target)
	if c.Center != target {
		t.Errorf("Center = %v, want %v", c.Center, target)
	}
	if !closeTo(c.Eye(), eye, 1e-3) {
		t.Errorf("eye moved from %v to %v", eye, c.Eye())
	}
	if c.Recentering() {
		t.Error("snap left a recenter pending")
	}
}

func TestRetargetEases(t *testing.T) {
	c := NewOrbitCamera()
	c.EaseRecenter = true
	target := math.Vec3{X: 2, Y: 1}
	c.Retarget(target)
	if !c.Recentering() {
		t.Fatal("easing recenter not pending")
	}
	c.Update()
	if c.Center == target || c.Center == (math.Vec3{}) {
		t.Errorf("after one tick Center = %v, want between origin and %v", c.Center, target)
	}
	for i := 0; i < 500 && c.Recentering(); i++ {
		c.Update()
	}
	if c.Recentering() {
		t.Fatal("recenter never finished")
	}
	if c.Center != target {
		t.Errorf("Center = %v, want %v", c.Center, target)
	}
}

func TestMouseDownCancelsRecenter(t *testing.T) {
	c := NewOrbitCamera()
	c.EaseRecenter = true
	c.Retarget(math.Vec3{X: 5})
	c.MouseDown(ButtonLeft, 0, 0)
	if c.Recentering() {
		t.Error("MouseDown did not cancel the recenter")
	}
	before := c.Center
	c.Update()
	if c.Center != before {
		t.Error("Update moved a cancelled recenter")
	}
}

func TestViewMatrixLooksAtCenter(t *testing.T) {
	c := NewOrbitCamera()
	c.Retarget(math.Vec3{X: 1, Y: 2, Z: 3})
	p := c.ViewMatrix().TransformPoint(c.Center)
	if p.X > 1e-3 || p.X < -1e-3 || p.Y > 1e-3 || p.Y < -1e-3 || p.Z >= 0 {
		t.Errorf("center in view space = %v, want on -Z axis", p)
	}
}
