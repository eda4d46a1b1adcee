package viewer

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/shapeshift/pkg/math"
)

// Animation constants.
const (
	MoveStep   = 0.01
	MaxMove    = 1.0
	AngleStep  = 1.0
	AngleLimit = 360.0
)

// WorldUp is the up vector shared by the camera and the deformations.
var WorldUp = math.Vec3{Y: 1}

// FrameState is everything the renderer needs for one frame.
type FrameState struct {
	Mode       Mode
	Capability Capability
	View       ViewMode

	Time    float32
	Mix     float32
	Angle   float32
	Height  float32
	Center  math.Vec3
	WorldUp math.Vec3
	Blend   bool
	Move    float32
	Limits  math.Vec3

	Color      math.Vec3
	Background math.Vec3
	Model      math.Mat4

	Grid     bool
	Normals  bool
	Colors   bool
	Textured bool
}

// MixAmount is the shared blend scalar for elapsed seconds t.
func MixAmount(t float32) float32 {
	return 0.05 * (1 + math32.Sin(t))
}

// Frame applies the active mode's palette, snapshots the uniform values
// for this frame, then advances the angle oscillation and, in Plane mode
// with the blend off, the move progress.
func (v *Viewer) Frame(elapsed float32) FrameState {
	capability := v.view.CurrentMode.Capability()
	v.color = capability.Palette.Foreground

	mix := MixAmount(elapsed)
	var center math.Vec3
	if v.mesh != nil {
		center = v.mesh.Center
	}

	fs := FrameState{
		Mode:       v.view.CurrentMode,
		Capability: capability,
		View:       v.view.View,
		Time:       elapsed,
		Mix:        mix,
		Angle:      v.anim.Angle,
		Height:     v.anim.CubeHeight,
		Center:     center,
		WorldUp:    WorldUp,
		Blend:      v.anim.Blend,
		Move:       v.anim.Move,
		Limits:     v.limits,
		Color:      v.color,
		Background: capability.Palette.Background,
		Model:      v.model(elapsed, mix),
		Grid:       v.toggles.Grid,
		Normals:    v.toggles.Normals,
		Colors:     v.colors,
		Textured:   v.toggles.Texture,
	}

	if v.view.CurrentMode == ModePlane && !v.anim.Blend {
		v.anim.Move = math32.Min(v.anim.Move+MoveStep, MaxMove)
	}
	v.stepAngle()
	return fs
}

func (v *Viewer) stepAngle() {
	if v.anim.AngleIncreasing {
		v.anim.Angle += AngleStep
	} else {
		v.anim.Angle -= AngleStep
	}
	if v.anim.Angle > AngleLimit {
		v.anim.AngleIncreasing = false
	}
	if v.anim.Angle < 0 {
		v.anim.AngleIncreasing = true
	}
}

var rotateXZAxis = math.Vec3{X: 0.5, Z: 0.5}

// model composes the optional translate and rotate transforms, applied
// in panel order.
func (v *Viewer) model(t, mix float32) math.Mat4 {
	m := math.Identity()
	if v.toggles.Translate {
		m = m.Mul(math.Translate(math.Vec3{Y: -mix * 50, Z: -mix * 100}))
	}
	if v.toggles.TranslateXZ {
		m = m.Mul(math.Translate(math.Vec3{Y: math32.Sin(-mix * 50), Z: math32.Cos(-mix * 100)}))
	}
	if v.toggles.Rotate {
		m = m.Mul(math.Rotate(WorldUp, t/5))
	}
	if v.toggles.RotateXZ {
		m = m.Mul(math.Rotate(rotateXZAxis, t/5))
	}
	return m
}
