// Package viewer holds the interaction state of the geometry viewer: which
// primitive, quality and deformation are selected, what the animation is
// doing, and which mesh is currently on display.
//
// A Viewer is driven by one goroutine: input handlers change the selected
// fields, Update reconciles them into the current ones and rebuilds the
// mesh, and Frame produces the values the renderer pushes each frame.
package viewer

import (
	"fmt"

	"github.com/Faultbox/shapeshift/pkg/geom"
	"github.com/Faultbox/shapeshift/pkg/math"
)

// Limit and color bounds.
const (
	MinLimit = 0
	MaxLimit = 5
	MinColor = 0
	MaxColor = 1
)

// Builder produces the mesh for a set of options.
type Builder interface {
	Build(opts geom.Options) (*geom.TriMesh, error)
}

// BuilderFunc adapts a function to Builder.
type BuilderFunc func(opts geom.Options) (*geom.TriMesh, error)

// Build calls f.
func (f BuilderFunc) Build(opts geom.Options) (*geom.TriMesh, error) {
	return f(opts)
}

// DefaultBuilder generates meshes with geom.Build.
var DefaultBuilder Builder = BuilderFunc(geom.Build)

// NormalColor is the color of the debug normal segments.
var NormalColor = math.Vec4{X: 1, Y: 1, Z: 0, W: 1}

// ViewState is the selected and current primitive, quality and mode.
// Current fields change only during Update.
type ViewState struct {
	SelectedPrimitive geom.Primitive
	CurrentPrimitive  geom.Primitive
	SelectedQuality   geom.Quality
	CurrentQuality    geom.Quality
	SelectedMode      Mode
	CurrentMode       Mode
	View              ViewMode
}

// AnimationState drives the time-dependent uniforms.
type AnimationState struct {
	Angle           float32
	AngleIncreasing bool
	CubeHeight      float32
	Blend           bool
	BlendSelected   bool
	Move            float32
}

// Toggles are the plain on/off switches of the panel.
type Toggles struct {
	Translate   bool
	TranslateXZ bool
	Rotate      bool
	RotateXZ    bool
	Grid        bool
	Normals     bool
	Texture     bool
}

// Mesh is a fully built mesh together with what it was built from.
type Mesh struct {
	Geometry   *geom.TriMesh
	Normals    *geom.Lines
	Center     math.Vec3
	Options    geom.Options
	Generation uint64
}

// Settings are the startup values of a Viewer.
type Settings struct {
	Primitive   geom.Primitive
	Quality     geom.Quality
	Mode        Mode
	Subdivision int
	Wireframe   bool
	Colors      bool
	Toggles     Toggles
}

// DefaultSettings returns the startup state: a high quality sphere in
// plane mode, shaded, with every overlay off.
func DefaultSettings() Settings {
	return Settings{
		Primitive:   geom.Sphere,
		Quality:     geom.High,
		Mode:        ModePlane,
		Subdivision: 1,
	}
}

// Viewer is the application's interaction state.
type Viewer struct {
	view    ViewState
	anim    AnimationState
	color   math.Vec3
	limits  math.Vec3
	toggles Toggles

	subdivision int
	colors      bool

	rebuildRequested bool
	builder          Builder
	mesh             *Mesh
	generation       uint64
}

// New creates a Viewer. The first Update builds the initial mesh.
// A nil builder uses DefaultBuilder.
func New(s Settings, b Builder) *Viewer {
	if b == nil {
		b = DefaultBuilder
	}
	if !s.Primitive.Valid() {
		s.Primitive = geom.Sphere
	}
	if !s.Quality.Valid() {
		s.Quality = geom.High
	}
	if !s.Mode.Valid() {
		s.Mode = ModePlane
	}
	v := &Viewer{
		view: ViewState{
			SelectedPrimitive: s.Primitive,
			CurrentPrimitive:  s.Primitive,
			SelectedQuality:   s.Quality,
			CurrentQuality:    s.Quality,
			SelectedMode:      s.Mode,
			CurrentMode:       s.Mode,
		},
		anim: AnimationState{
			AngleIncreasing: true,
			CubeHeight:      0.9,
			Blend:           true,
			BlendSelected:   true,
		},
		color:            s.Mode.Capability().Palette.Foreground,
		limits:           math.Vec3{X: 0.01, Y: 2.0, Z: 0.05},
		toggles:          s.Toggles,
		subdivision:      geom.ClampSubdivision(s.Subdivision),
		colors:           s.Colors,
		rebuildRequested: true,
		builder:          b,
	}
	if s.Wireframe {
		v.view.View = Wireframe
	}
	return v
}

// Update reconciles selected state into current state and rebuilds the
// mesh when needed. It reports whether a new mesh was published. On a
// build error the previous mesh stays in place.
func (v *Viewer) Update() (bool, error) {
	rebuild := v.rebuildRequested
	v.rebuildRequested = false

	if v.view.SelectedPrimitive != v.view.CurrentPrimitive || v.view.SelectedQuality != v.view.CurrentQuality {
		v.subdivision = 1
		v.view.CurrentPrimitive = v.view.SelectedPrimitive
		v.view.CurrentQuality = v.view.SelectedQuality
		rebuild = true
	}
	// subdivision is kept on a mode change
	if v.view.SelectedMode != v.view.CurrentMode {
		v.view.CurrentMode = v.view.SelectedMode
		rebuild = true
	}
	if v.anim.BlendSelected != v.anim.Blend {
		v.anim.Blend = v.anim.BlendSelected
		v.anim.Move = 0
	}

	if !rebuild {
		return false, nil
	}
	if err := v.rebuild(); err != nil {
		return false, err
	}
	return true, nil
}

func (v *Viewer) rebuild() error {
	opts := geom.Options{
		Primitive:   v.view.CurrentPrimitive,
		Quality:     v.view.CurrentQuality,
		Subdivision: v.subdivision,
		Colors:      v.colors,
	}
	tm, err := v.builder.Build(opts)
	if err != nil {
		return fmt.Errorf("building %s (%s, subdivision %d): %w", opts.Primitive, opts.Quality, opts.Subdivision, err)
	}
	if tm == nil || tm.NumVertices() == 0 {
		return fmt.Errorf("building %s: empty mesh", opts.Primitive)
	}

	v.generation++
	v.mesh = &Mesh{
		Geometry:   tm,
		Normals:    geom.NormalLines(tm, NormalColor),
		Center:     tm.Bounds().Center(),
		Options:    opts,
		Generation: v.generation,
	}
	return nil
}

// RequestRebuild schedules a rebuild on the next Update.
func (v *Viewer) RequestRebuild() {
	v.rebuildRequested = true
}

// Mesh returns the mesh on display, or nil before the first successful build.
func (v *Viewer) Mesh() *Mesh {
	return v.mesh
}

// View returns a copy of the view state.
func (v *Viewer) View() ViewState {
	return v.view
}

// Animation returns a copy of the animation state.
func (v *Viewer) Animation() AnimationState {
	return v.anim
}

// Toggles returns the panel switches for direct binding.
func (v *Viewer) Toggles() *Toggles {
	return &v.toggles
}

// Title describes the current view for the window title.
func (v *Viewer) Title() string {
	return fmt.Sprintf("Transform - %s (%s) - %s", v.view.CurrentPrimitive, v.view.CurrentQuality, v.view.CurrentMode)
}
