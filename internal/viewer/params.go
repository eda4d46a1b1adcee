package viewer

import (
	"github.com/Faultbox/shapeshift/pkg/geom"
	"github.com/Faultbox/shapeshift/pkg/math"
)

// Getter/setter pairs bound by the parameter panel. Setters clamp;
// selections take effect on the next Update.

// Primitive returns the selected primitive.
func (v *Viewer) Primitive() geom.Primitive { return v.view.SelectedPrimitive }

// SelectPrimitive selects p; invalid values are ignored.
func (v *Viewer) SelectPrimitive(p geom.Primitive) {
	if p.Valid() {
		v.view.SelectedPrimitive = p
	}
}

// Mode returns the selected deformation.
func (v *Viewer) Mode() Mode { return v.view.SelectedMode }

// SelectMode selects m; invalid values are ignored.
func (v *Viewer) SelectMode(m Mode) {
	if m.Valid() {
		v.view.SelectedMode = m
	}
}

// Quality returns the selected quality.
func (v *Viewer) Quality() geom.Quality { return v.view.SelectedQuality }

// SelectQuality selects q; invalid values are ignored.
func (v *Viewer) SelectQuality(q geom.Quality) {
	if q.Valid() {
		v.view.SelectedQuality = q
	}
}

// Subdivision returns the subdivision level.
func (v *Viewer) Subdivision() int { return v.subdivision }

// SetSubdivision clamps n to [1,5] and requests a rebuild.
func (v *Viewer) SetSubdivision(n int) {
	v.subdivision = geom.ClampSubdivision(n)
	v.rebuildRequested = true
}

// Animate reports the requested blend state.
func (v *Viewer) Animate() bool { return v.anim.BlendSelected }

// SetAnimate requests the blend state; Update applies it.
func (v *Viewer) SetAnimate(on bool) { v.anim.BlendSelected = on }

// ColorsEnabled reports whether meshes carry a color attribute.
func (v *Viewer) ColorsEnabled() bool { return v.colors }

// SetColorsEnabled switches the color attribute and requests a rebuild.
func (v *Viewer) SetColorsEnabled(on bool) {
	v.colors = on
	v.rebuildRequested = true
}

// Wireframe reports whether the wireframe view is active.
func (v *Viewer) Wireframe() bool { return v.view.View == Wireframe }

// SetWireframe selects the wireframe or shaded view.
func (v *Viewer) SetWireframe(on bool) {
	if on {
		v.view.View = Wireframe
	} else {
		v.view.View = Shaded
	}
}

// Limits returns the X/Y/Z stretch limits.
func (v *Viewer) Limits() math.Vec3 { return v.limits }

// SetXLimit clamps and stores the X limit.
func (v *Viewer) SetXLimit(x float32) { v.limits.X = math.Clamp(x, MinLimit, MaxLimit) }

// SetYLimit clamps and stores the Y limit.
func (v *Viewer) SetYLimit(y float32) { v.limits.Y = math.Clamp(y, MinLimit, MaxLimit) }

// SetZLimit clamps and stores the Z limit.
func (v *Viewer) SetZLimit(z float32) { v.limits.Z = math.Clamp(z, MinLimit, MaxLimit) }

// Color returns the foreground color.
func (v *Viewer) Color() math.Vec3 { return v.color }

// SetRed clamps and stores the red channel.
func (v *Viewer) SetRed(r float32) { v.color.X = math.Clamp(r, MinColor, MaxColor) }

// SetGreen clamps and stores the green channel.
func (v *Viewer) SetGreen(g float32) { v.color.Y = math.Clamp(g, MinColor, MaxColor) }

// SetBlue clamps and stores the blue channel.
func (v *Viewer) SetBlue(b float32) { v.color.Z = math.Clamp(b, MinColor, MaxColor) }

// Action is a discrete user command, usually bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionCyclePrimitive
	ActionToggleColors
	ActionToggleNormals
	ActionToggleGrid
	ActionCycleQuality
	ActionToggleWireframe
	ActionReload
	ActionScreenshot
	ActionQuit
)

var actionNames = [...]string{
	"none", "cycle-primitive", "toggle-colors", "toggle-normals", "toggle-grid",
	"cycle-quality", "toggle-wireframe", "reload", "screenshot", "quit",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// Apply performs the state part of a. Reload also requests a rebuild;
// screenshot and quit are left to the caller.
func (v *Viewer) Apply(a Action) {
	switch a {
	case ActionCyclePrimitive:
		v.view.SelectedPrimitive = v.view.SelectedPrimitive.Next()
	case ActionToggleColors:
		v.SetColorsEnabled(!v.colors)
	case ActionToggleNormals:
		v.toggles.Normals = !v.toggles.Normals
	case ActionToggleGrid:
		v.toggles.Grid = !v.toggles.Grid
	case ActionCycleQuality:
		v.view.SelectedQuality = v.view.SelectedQuality.Next()
	case ActionToggleWireframe:
		v.view.View = v.view.View.Toggle()
	case ActionReload:
		v.rebuildRequested = true
	}
}
