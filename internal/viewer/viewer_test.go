package viewer

import (
	"errors"
	"testing"

	"github.com/Faultbox/shapeshift/pkg/geom"
	"github.com/Faultbox/shapeshift/pkg/math"
)

// countingBuilder records every build request and can be told to fail.
type countingBuilder struct {
	calls []geom.Options
	fail  error
}

func (b *countingBuilder) Build(opts geom.Options) (*geom.TriMesh, error) {
	b.calls = append(b.calls, opts)
	if b.fail != nil {
		return nil, b.fail
	}
	return geom.Build(geom.Options{Primitive: opts.Primitive, Quality: geom.Low, Colors: opts.Colors})
}

func newTestViewer(t *testing.T) (*Viewer, *countingBuilder) {
	t.Helper()
	b := &countingBuilder{}
	v := New(DefaultSettings(), b)
	if _, err := v.Update(); err != nil {
		t.Fatalf("initial Update: %v", err)
	}
	return v, b
}

func TestNewDefaults(t *testing.T) {
	v, b := newTestViewer(t)
	vs := v.View()
	if vs.CurrentPrimitive != geom.Sphere || vs.CurrentQuality != geom.High || vs.CurrentMode != ModePlane {
		t.Errorf("current = %s/%s/%s, want Sphere/High/Plane", vs.CurrentPrimitive, vs.CurrentQuality, vs.CurrentMode)
	}
	if vs.View != Shaded {
		t.Errorf("view = %s, want Shaded", vs.View)
	}
	if len(b.calls) != 1 {
		t.Fatalf("initial builds = %d, want 1", len(b.calls))
	}
	if v.Mesh() == nil || v.Mesh().Generation != 1 {
		t.Fatalf("mesh = %+v, want generation 1", v.Mesh())
	}
	if got, want := v.Limits(), (math.Vec3{X: 0.01, Y: 2.0, Z: 0.05}); got != want {
		t.Errorf("limits = %v, want %v", got, want)
	}
	a := v.Animation()
	if !a.Blend || !a.BlendSelected || a.Move != 0 || a.Angle != 0 || !a.AngleIncreasing {
		t.Errorf("animation = %+v", a)
	}
}

func TestUpdateWithoutChangesDoesNotRebuild(t *testing.T) {
	v, b := newTestViewer(t)
	for i := 0; i < 5; i++ {
		rebuilt, err := v.Update()
		if err != nil || rebuilt {
			t.Fatalf("Update() = %v, %v; want no rebuild", rebuilt, err)
		}
	}
	if len(b.calls) != 1 {
		t.Errorf("builds = %d, want 1", len(b.calls))
	}
}

func TestSelectionOnlyAppliesOnUpdate(t *testing.T) {
	v, _ := newTestViewer(t)
	v.SelectPrimitive(geom.Torus)
	if v.View().CurrentPrimitive != geom.Sphere {
		t.Fatal("current primitive changed before Update")
	}
	if _, err := v.Update(); err != nil {
		t.Fatal(err)
	}
	if v.View().CurrentPrimitive != geom.Torus {
		t.Errorf("current primitive = %s, want Torus", v.View().CurrentPrimitive)
	}
}

func TestPrimitiveChangeResetsSubdivision(t *testing.T) {
	tests := []struct {
		name   string
		change func(v *Viewer)
		reset  bool
	}{
		{"primitive", func(v *Viewer) { v.SelectPrimitive(geom.Cube) }, true},
		{"quality", func(v *Viewer) { v.SelectQuality(geom.Low) }, true},
		{"mode", func(v *Viewer) { v.SelectMode(ModeTwist) }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, b := newTestViewer(t)
			v.SetSubdivision(4)
			if _, err := v.Update(); err != nil {
				t.Fatal(err)
			}
			tt.change(v)
			rebuilt, err := v.Update()
			if err != nil || !rebuilt {
				t.Fatalf("Update() = %v, %v; want rebuild", rebuilt, err)
			}
			want := 4
			if tt.reset {
				want = 1
			}
			if v.Subdivision() != want {
				t.Errorf("subdivision = %d, want %d", v.Subdivision(), want)
			}
			if last := b.calls[len(b.calls)-1]; last.Subdivision != want {
				t.Errorf("built with subdivision %d, want %d", last.Subdivision, want)
			}
		})
	}
}

func TestSubdivisionClamp(t *testing.T) {
	v, _ := newTestViewer(t)
	tests := []struct {
		in, want int
	}{
		{10, 5}, {0, 1}, {-2, 1}, {3, 3},
	}
	for _, tt := range tests {
		v.SetSubdivision(tt.in)
		if v.Subdivision() != tt.want {
			t.Errorf("SetSubdivision(%d) -> %d, want %d", tt.in, v.Subdivision(), tt.want)
		}
	}
}

func TestRebuildRequestsCoalesce(t *testing.T) {
	v, b := newTestViewer(t)
	v.SetSubdivision(2)
	v.SetColorsEnabled(true)
	v.Apply(ActionReload)
	v.SelectMode(ModeSphere)
	if _, err := v.Update(); err != nil {
		t.Fatal(err)
	}
	if len(b.calls) != 2 {
		t.Errorf("builds = %d, want 2", len(b.calls))
	}
	if !b.calls[1].Colors {
		t.Error("rebuild did not pick up the color attribute")
	}
}

func TestBuildFailureKeepsPreviousMesh(t *testing.T) {
	v, b := newTestViewer(t)
	before := v.Mesh()

	b.fail = errors.New("boom")
	v.SelectPrimitive(geom.Torus)
	rebuilt, err := v.Update()
	if err == nil || rebuilt {
		t.Fatalf("Update() = %v, %v; want error", rebuilt, err)
	}
	if !errors.Is(err, b.fail) {
		t.Errorf("err = %v, want wrapped boom", err)
	}
	if v.Mesh() != before {
		t.Error("mesh replaced after failed build")
	}

	b.fail = nil
	v.RequestRebuild()
	if _, err := v.Update(); err != nil {
		t.Fatal(err)
	}
	if v.Mesh().Generation != before.Generation+1 || v.Mesh().Options.Primitive != geom.Torus {
		t.Errorf("mesh = gen %d %s, want gen %d Torus", v.Mesh().Generation, v.Mesh().Options.Primitive, before.Generation+1)
	}
}

func TestMeshCenterPublished(t *testing.T) {
	v, _ := newTestViewer(t)
	v.SelectPrimitive(geom.Cylinder)
	if _, err := v.Update(); err != nil {
		t.Fatal(err)
	}
	c := v.Mesh().Center
	if c.Y < 0.99 || c.Y > 1.01 {
		t.Errorf("cylinder center = %v, want y=1", c)
	}
	if v.Mesh().Normals.NumSegments() != v.Mesh().Geometry.NumVertices() {
		t.Error("normals overlay does not match the mesh")
	}
	if fs := v.Frame(0); fs.Center != c {
		t.Errorf("frame center = %v, want %v", fs.Center, c)
	}
}

func TestBlendToggleResetsMove(t *testing.T) {
	v, _ := newTestViewer(t)

	// move only advances while the blend is off
	for i := 0; i < 10; i++ {
		v.Frame(float32(i))
	}
	if v.Animation().Move != 0 {
		t.Fatalf("move advanced with blend on: %v", v.Animation().Move)
	}

	v.SetAnimate(false)
	if _, err := v.Update(); err != nil {
		t.Fatal(err)
	}
	if a := v.Animation(); a.Blend || a.Move != 0 {
		t.Fatalf("after toggle: blend=%v move=%v, want false 0", a.Blend, a.Move)
	}

	prev := float32(0)
	for i := 0; i < 150; i++ {
		v.Frame(float32(i))
		move := v.Animation().Move
		if move > MaxMove {
			t.Fatalf("tick %d: move %v exceeds %v", i, move, MaxMove)
		}
		if move < prev {
			t.Fatalf("tick %d: move decreased %v -> %v", i, prev, move)
		}
		if step := move - prev; move < MaxMove && (step < MoveStep-1e-4 || step > MoveStep+1e-4) {
			t.Fatalf("tick %d: step %v, want %v", i, step, MoveStep)
		}
		prev = move
	}
	if prev != MaxMove {
		t.Errorf("move = %v after 150 ticks, want %v", prev, MaxMove)
	}

	// toggling back resets again
	v.SetAnimate(true)
	if _, err := v.Update(); err != nil {
		t.Fatal(err)
	}
	if v.Animation().Move != 0 {
		t.Errorf("move = %v after re-enabling, want 0", v.Animation().Move)
	}
}

func TestMoveOnlyAdvancesInPlaneMode(t *testing.T) {
	v, _ := newTestViewer(t)
	v.SetAnimate(false)
	v.SelectMode(ModeTwist)
	if _, err := v.Update(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 20; i++ {
		v.Frame(float32(i))
	}
	if v.Animation().Move != 0 {
		t.Errorf("move = %v in twist mode, want 0", v.Animation().Move)
	}
}

func TestAngleOscillation(t *testing.T) {
	v, _ := newTestViewer(t)
	var maxAngle, minAngle float32
	turnedDown := false
	for i := 0; i < 1000; i++ {
		fs := v.Frame(0)
		if fs.Angle > maxAngle {
			maxAngle = fs.Angle
		}
		if fs.Angle < minAngle {
			minAngle = fs.Angle
		}
		if !v.Animation().AngleIncreasing {
			turnedDown = true
		}
	}
	if !turnedDown {
		t.Fatal("angle never turned around")
	}
	if maxAngle != AngleLimit+AngleStep {
		t.Errorf("max angle = %v, want %v", maxAngle, AngleLimit+AngleStep)
	}
	if minAngle != -AngleStep {
		t.Errorf("min angle = %v, want %v", minAngle, -AngleStep)
	}
}

func TestCyclePrimitiveWraps(t *testing.T) {
	v, _ := newTestViewer(t)
	start := v.Primitive()
	for i := 0; i < geom.NumPrimitives; i++ {
		v.Apply(ActionCyclePrimitive)
		if !v.Primitive().Valid() {
			t.Fatalf("step %d: invalid primitive %d", i, int(v.Primitive()))
		}
		if _, err := v.Update(); err != nil {
			t.Fatal(err)
		}
		if !v.View().CurrentPrimitive.Valid() {
			t.Fatalf("step %d: invalid current primitive", i)
		}
	}
	if v.Primitive() != start {
		t.Errorf("after %d cycles got %s, want %s", geom.NumPrimitives, v.Primitive(), start)
	}
}

func TestCycleQuality(t *testing.T) {
	v, _ := newTestViewer(t)
	want := []geom.Quality{geom.Low, geom.Default, geom.High, geom.Low}
	for i, q := range want {
		v.Apply(ActionCycleQuality)
		if v.Quality() != q {
			t.Errorf("step %d: quality %s, want %s", i, v.Quality(), q)
		}
	}
}

func TestToggleActions(t *testing.T) {
	v, b := newTestViewer(t)

	v.Apply(ActionToggleWireframe)
	if !v.Wireframe() {
		t.Error("wireframe not enabled")
	}
	v.Apply(ActionToggleWireframe)
	if v.Wireframe() {
		t.Error("wireframe not disabled")
	}

	v.Apply(ActionToggleGrid)
	v.Apply(ActionToggleNormals)
	fs := v.Frame(0)
	if !fs.Grid || !fs.Normals {
		t.Errorf("grid=%v normals=%v, want both on", fs.Grid, fs.Normals)
	}

	v.Apply(ActionToggleColors)
	if !v.ColorsEnabled() {
		t.Fatal("colors not enabled")
	}
	if _, err := v.Update(); err != nil {
		t.Fatal(err)
	}
	if len(b.calls) != 2 || v.Mesh().Geometry.Colors == nil {
		t.Error("color toggle did not rebuild with colors")
	}
}

func TestPaletteOverridesUserColor(t *testing.T) {
	tests := []struct {
		mode Mode
		fg   math.Vec3
		bg   math.Vec3
	}{
		{ModePlane, math.Vec3{X: 0, Y: 0.9, Z: 1.0}, math.Vec3{X: 0.7, Y: 0.4, Z: 0.3}},
		{ModeTwist, math.Vec3{X: 0.9, Y: 1.0, Z: 0.7}, math.Vec3{X: 0.5, Y: 0.2, Z: 0.7}},
		{ModeSquash, math.Vec3{X: 0, Y: 0.9, Z: 1.0}, math.Vec3{X: 0.7, Y: 0.4, Z: 0.3}},
		{ModeSquash2, math.Vec3{X: 0.9, Y: 1.0, Z: 0.7}, math.Vec3{X: 0.5, Y: 0.2, Z: 0.7}},
		{ModeSphere, math.Vec3{X: 0.4, Y: 1.0, Z: 0.4}, math.Vec3{X: 0.7, Y: 0.2, Z: 0.5}},
		{ModeCustom23, math.Vec3{X: 0.9, Y: 1.0, Z: 0.7}, math.Vec3{X: 0.4, Y: 0.7, Z: 0.2}},
		{ModeCustom123, math.Vec3{X: 0, Y: 0.9, Z: 1.0}, math.Vec3{X: 0.7, Y: 0.4, Z: 0.3}},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			v, _ := newTestViewer(t)
			v.SelectMode(tt.mode)
			if _, err := v.Update(); err != nil {
				t.Fatal(err)
			}
			v.SetRed(0.123)
			v.SetGreen(0.456)
			v.SetBlue(0.789)
			fs := v.Frame(1)
			if fs.Color != tt.fg {
				t.Errorf("foreground = %v, want %v", fs.Color, tt.fg)
			}
			if fs.Background != tt.bg {
				t.Errorf("background = %v, want %v", fs.Background, tt.bg)
			}
			if v.Color() != tt.fg {
				t.Errorf("color state = %v, want %v", v.Color(), tt.fg)
			}
		})
	}
}

func TestLimitAndColorClamps(t *testing.T) {
	v, _ := newTestViewer(t)
	tests := []struct {
		name string
		set  func(float32)
		get  func() float32
		in   float32
		want float32
	}{
		{"x high", v.SetXLimit, func() float32 { return v.Limits().X }, 7, 5},
		{"x low", v.SetXLimit, func() float32 { return v.Limits().X }, -1, 0},
		{"y in range", v.SetYLimit, func() float32 { return v.Limits().Y }, 3.5, 3.5},
		{"z high", v.SetZLimit, func() float32 { return v.Limits().Z }, 100, 5},
		{"red high", v.SetRed, func() float32 { return v.Color().X }, 1.5, 1},
		{"green low", v.SetGreen, func() float32 { return v.Color().Y }, -0.5, 0},
		{"blue in range", v.SetBlue, func() float32 { return v.Color().Z }, 0.25, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.set(tt.in)
			if got := tt.get(); got != tt.want {
				t.Errorf("set %v -> %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestUniformSets(t *testing.T) {
	for i := 0; i < NumModes; i++ {
		m := Mode(i)
		c := m.Capability()
		if !c.Uniforms.Has(baseUniforms) {
			t.Errorf("%s misses base uniforms", m)
		}
		wantLimits := m == ModeSquash || m == ModeSquash2 || m == ModeCustom23 || m == ModeCustom123
		if c.Uniforms.Has(UniformLimits) != wantLimits {
			t.Errorf("%s limits = %v, want %v", m, c.Uniforms.Has(UniformLimits), wantLimits)
		}
		wantBlend := m == ModePlane
		if c.Uniforms.Has(UniformBlend|UniformMove) != wantBlend {
			t.Errorf("%s blend/move = %v, want %v", m, c.Uniforms.Has(UniformBlend|UniformMove), wantBlend)
		}
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("custom123")
	if err != nil || m != ModeCustom123 {
		t.Errorf("ParseMode(custom123) = %v, %v", m, err)
	}
	if _, err := ParseMode("melt"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("ParseMode(melt) err = %v", err)
	}
}

func TestModelTransforms(t *testing.T) {
	v, _ := newTestViewer(t)
	if fs := v.Frame(2); fs.Model != math.Identity() {
		t.Error("model should be identity with all transforms off")
	}

	v.Toggles().Translate = true
	const elapsed = 1.5
	mix := MixAmount(elapsed)
	fs := v.Frame(elapsed)
	got := fs.Model.TransformPoint(math.Vec3{})
	want := math.Vec3{Y: -mix * 50, Z: -mix * 100}
	if d := got.Distance(want); d > 1e-4 {
		t.Errorf("translated origin = %v, want %v", got, want)
	}

	v.Toggles().Translate = false
	v.Toggles().Rotate = true
	fs = v.Frame(5 * math.Pi / 2)
	// t/5 is a quarter turn around Y
	got = fs.Model.TransformPoint(math.Vec3{X: 1})
	if d := got.Distance(math.Vec3{Z: -1}); d > 1e-4 {
		t.Errorf("rotated x axis = %v, want (0,0,-1)", got)
	}
}

func TestMixAmountRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		m := MixAmount(float32(i) * 0.37)
		if m < 0 || m > 0.1 {
			t.Fatalf("MixAmount = %v, want within [0, 0.1]", m)
		}
	}
}
