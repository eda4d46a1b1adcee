package ui

import (
	"github.com/Faultbox/shapeshift/internal/viewer"
	"github.com/Faultbox/shapeshift/pkg/geom"
)

// A binding is one panel widget tied to a getter/setter pair on the
// viewer. Setters carry the clamping rules.
type binding interface {
	Label() string
	draw(v *viewer.Viewer)
}

type comboBinding struct {
	label string
	items []string
	get   func(*viewer.Viewer) int
	set   func(*viewer.Viewer, int)
}

type checkBinding struct {
	label string
	get   func(*viewer.Viewer) bool
	set   func(*viewer.Viewer, bool)
}

type floatBinding struct {
	label    string
	min, max float32
	get      func(*viewer.Viewer) float32
	set      func(*viewer.Viewer, float32)
}

type intBinding struct {
	label    string
	min, max int
	get      func(*viewer.Viewer) int
	set      func(*viewer.Viewer, int)
}

func (b comboBinding) Label() string { return b.label }
func (b checkBinding) Label() string { return b.label }
func (b floatBinding) Label() string { return b.label }
func (b intBinding) Label() string   { return b.label }

// toggle binds a plain switch of viewer.Toggles.
func toggle(label string, field func(*viewer.Toggles) *bool) checkBinding {
	return checkBinding{
		label: label,
		get:   func(v *viewer.Viewer) bool { return *field(v.Toggles()) },
		set:   func(v *viewer.Viewer, on bool) { *field(v.Toggles()) = on },
	}
}

// transformBindings are the widgets above the quality selector.
func transformBindings() []binding {
	return []binding{
		comboBinding{
			label: "Primitive",
			items: geom.PrimitiveNames(),
			get:   func(v *viewer.Viewer) int { return int(v.Primitive()) },
			set:   func(v *viewer.Viewer, i int) { v.SelectPrimitive(geom.Primitive(i)) },
		},
		comboBinding{
			label: "Transformation",
			items: viewer.ModeNames(),
			get:   func(v *viewer.Viewer) int { return int(v.Mode()) },
			set:   func(v *viewer.Viewer, i int) { v.SelectMode(viewer.Mode(i)) },
		},
		toggle("Translate", func(t *viewer.Toggles) *bool { return &t.Translate }),
		toggle("Translate (xz)", func(t *viewer.Toggles) *bool { return &t.TranslateXZ }),
		toggle("Rotate", func(t *viewer.Toggles) *bool { return &t.Rotate }),
		toggle("Rotate (xz)", func(t *viewer.Toggles) *bool { return &t.RotateXZ }),
		checkBinding{
			label: "Animate",
			get:   (*viewer.Viewer).Animate,
			set:   (*viewer.Viewer).SetAnimate,
		},
		floatBinding{
			label: "X Limit", min: viewer.MinLimit, max: viewer.MaxLimit,
			get: func(v *viewer.Viewer) float32 { return v.Limits().X },
			set: (*viewer.Viewer).SetXLimit,
		},
		floatBinding{
			label: "Y Limit", min: viewer.MinLimit, max: viewer.MaxLimit,
			get: func(v *viewer.Viewer) float32 { return v.Limits().Y },
			set: (*viewer.Viewer).SetYLimit,
		},
		floatBinding{
			label: "Z Limit", min: viewer.MinLimit, max: viewer.MaxLimit,
			get: func(v *viewer.Viewer) float32 { return v.Limits().Z },
			set: (*viewer.Viewer).SetZLimit,
		},
		floatBinding{
			label: "Red", min: viewer.MinColor, max: viewer.MaxColor,
			get: func(v *viewer.Viewer) float32 { return v.Color().X },
			set: (*viewer.Viewer).SetRed,
		},
		floatBinding{
			label: "Green", min: viewer.MinColor, max: viewer.MaxColor,
			get: func(v *viewer.Viewer) float32 { return v.Color().Y },
			set: (*viewer.Viewer).SetGreen,
		},
		floatBinding{
			label: "Blue", min: viewer.MinColor, max: viewer.MaxColor,
			get: func(v *viewer.Viewer) float32 { return v.Color().Z },
			set: (*viewer.Viewer).SetBlue,
		},
	}
}

// meshBindings are the widgets from the quality selector down.
func meshBindings() []binding {
	return []binding{
		comboBinding{
			label: "Quality",
			items: geom.QualityNames(),
			get:   func(v *viewer.Viewer) int { return int(v.Quality()) },
			set:   func(v *viewer.Viewer, i int) { v.SelectQuality(geom.Quality(i)) },
		},
		intBinding{
			label: "Subdivision", min: geom.MinSubdivision, max: geom.MaxSubdivision,
			get: (*viewer.Viewer).Subdivision,
			set: (*viewer.Viewer).SetSubdivision,
		},
		toggle("Show Grid", func(t *viewer.Toggles) *bool { return &t.Grid }),
		toggle("Show Normals", func(t *viewer.Toggles) *bool { return &t.Normals }),
		checkBinding{
			label: "Show Colors",
			get:   (*viewer.Viewer).ColorsEnabled,
			set:   (*viewer.Viewer).SetColorsEnabled,
		},
		toggle("Show Texture", func(t *viewer.Toggles) *bool { return &t.Texture }),
	}
}
