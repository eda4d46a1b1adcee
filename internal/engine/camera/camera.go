// Package camera provides the orbit camera used to inspect meshes.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/shapeshift/pkg/math"
)

// Button identifies the pointer button driving a drag.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// Easing factors and target distance used while recentering.
const (
	easeCenter   = 0.25
	easeDistance = 0.1
	easeGoal     = 5.0
	easeEpsilon  = 1e-3
)

// OrbitCamera orbits around a center of interest. Left drag rotates,
// middle drag pans, right drag dollies.
type OrbitCamera struct {
	// Center of interest
	Center math.Vec3

	// Spherical offset of the eye from Center
	Distance float32
	Pitch    float32 // radians above the XZ plane
	Yaw      float32 // radians around +Y, 0 looks down -Z

	// Constraints
	MinDistance float32
	MaxDistance float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity  float32
	PanSensitivity   float32
	DollySensitivity float32
	ZoomSensitivity  float32

	// Projection
	FovY float32 // degrees
	Near float32
	Far  float32

	// EaseRecenter interpolates toward a new target instead of snapping.
	EaseRecenter bool

	target   math.Vec3
	recenter bool

	button       Button
	lastX, lastY float32
}

// NewOrbitCamera creates a camera at normalize(3,3,6)*10 looking at the origin.
func NewOrbitCamera() *OrbitCamera {
	c := &OrbitCamera{
		MinDistance:      0.5,
		MaxDistance:      500,
		MaxPitch:         math.Pi/2 - 0.01,
		DragSensitivity:  0.01,
		PanSensitivity:   0.002,
		DollySensitivity: 0.005,
		ZoomSensitivity:  0.1,
		FovY:             35,
		Near:             0.1,
		Far:              1000,
	}
	c.SetEye(math.Vec3{X: 3, Y: 3, Z: 6}.Normalize().Scale(10))
	return c
}

// Eye returns the camera position in world space.
func (c *OrbitCamera) Eye() math.Vec3 {
	cp := math32.Cos(c.Pitch)
	return c.Center.Add(math.Vec3{
		X: c.Distance * cp * math32.Sin(c.Yaw),
		Y: c.Distance * math32.Sin(c.Pitch),
		Z: c.Distance * cp * math32.Cos(c.Yaw),
	})
}

// SetEye places the eye at p, keeping the center of interest.
func (c *OrbitCamera) SetEye(p math.Vec3) {
	off := p.Sub(c.Center)
	d := off.Length()
	if d == 0 {
		return
	}
	c.Distance = math.Clamp(d, c.MinDistance, c.MaxDistance)
	c.Pitch = math.Clamp(math32.Asin(math.Clamp(off.Y/d, -1, 1)), -c.MaxPitch, c.MaxPitch)
	c.Yaw = math32.Atan2(off.X, off.Z)
}

// ViewMatrix returns the world-to-view transform.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Eye(), c.Center, math.Vec3{Y: 1})
}

// ProjectionMatrix returns the perspective projection for aspect (w/h).
func (c *OrbitCamera) ProjectionMatrix(aspect float32) math.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return math.Perspective(math.Radians(c.FovY), aspect, c.Near, c.Far)
}

// MouseDown starts a drag with button b at (x, y) and cancels any
// pending recenter.
func (c *OrbitCamera) MouseDown(b Button, x, y float32) {
	c.button = b
	c.lastX, c.lastY = x, y
	c.recenter = false
}

// MouseDrag continues the current drag to (x, y).
func (c *OrbitCamera) MouseDrag(x, y float32) {
	dx, dy := x-c.lastX, y-c.lastY
	c.lastX, c.lastY = x, y
	switch c.button {
	case ButtonLeft:
		c.Rotate(dx, dy)
	case ButtonMiddle:
		c.Pan(dx, dy)
	case ButtonRight:
		c.Dolly(dx + dy)
	}
}

// MouseUp ends the current drag.
func (c *OrbitCamera) MouseUp() {
	c.button = ButtonNone
}

// Dragging reports whether a drag is in progress.
func (c *OrbitCamera) Dragging() bool {
	return c.button != ButtonNone
}

// Rotate orbits by pointer deltas in pixels.
func (c *OrbitCamera) Rotate(dx, dy float32) {
	c.Yaw -= dx * c.DragSensitivity
	c.Pitch = math.Clamp(c.Pitch+dy*c.DragSensitivity, -c.MaxPitch, c.MaxPitch)
}

// Pan moves the center of interest in the view plane so the scene
// follows the pointer.
func (c *OrbitCamera) Pan(dx, dy float32) {
	forward := c.Center.Sub(c.Eye()).Normalize()
	right := forward.Cross(math.Vec3{Y: 1}).Normalize()
	up := right.Cross(forward)
	k := c.Distance * c.PanSensitivity
	c.Center = c.Center.Sub(right.Scale(dx * k)).Add(up.Scale(dy * k))
}

// Dolly moves the eye toward the center for positive delta.
func (c *OrbitCamera) Dolly(delta float32) {
	c.Distance = math.Clamp(c.Distance-delta*c.Distance*c.DollySensitivity, c.MinDistance, c.MaxDistance)
}

// HandleZoom dollies by a scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance = math.Clamp(c.Distance-delta*c.Distance*c.ZoomSensitivity, c.MinDistance, c.MaxDistance)
}

// Retarget points the camera at a new center of interest. Without easing
// the eye stays put and the view turns to the target at once; with easing
// Update moves toward it over the following ticks.
func (c *OrbitCamera) Retarget(target math.Vec3) {
	c.target = target
	if !c.EaseRecenter {
		eye := c.Eye()
		c.Center = target
		c.SetEye(eye)
		c.recenter = false
		return
	}
	c.recenter = true
}

// Recentering reports whether an eased recenter is in progress.
func (c *OrbitCamera) Recentering() bool {
	return c.recenter
}

// Update advances an eased recenter by one tick.
func (c *OrbitCamera) Update() {
	if !c.recenter {
		return
	}
	c.Center = c.Center.Lerp(c.target, easeCenter)
	c.Distance = math.Clamp(math.Lerp(c.Distance, easeGoal, easeDistance), c.MinDistance, c.MaxDistance)
	if c.Center.Distance(c.target) < easeEpsilon && math32.Abs(c.Distance-easeGoal) < easeEpsilon {
		c.Center = c.target
		c.recenter = false
	}
}
