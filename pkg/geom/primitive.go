// Package geom generates triangle meshes for the viewer's primitives.
package geom

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPrimitive is returned when a primitive or quality name does not parse.
var ErrUnknownPrimitive = errors.New("unknown primitive")

// Primitive identifies a base shape.
type Primitive int

const (
	Capsule Primitive = iota
	Cone
	Cube
	Cylinder
	Helix
	Icosahedron
	Icosphere
	Sphere
	Teapot
	Torus
	Plane

	// NumPrimitives is the number of valid primitives.
	NumPrimitives int = iota
)

var primitiveNames = [NumPrimitives]string{
	"Capsule", "Cone", "Cube", "Cylinder", "Helix", "Icosahedron",
	"Icosphere", "Sphere", "Teapot", "Torus", "Plane",
}

// PrimitiveNames returns the display names in enum order.
func PrimitiveNames() []string {
	return primitiveNames[:]
}

func (p Primitive) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Primitive(%d)", int(p))
	}
	return primitiveNames[p]
}

// Valid reports whether p is one of the defined primitives.
func (p Primitive) Valid() bool {
	return p >= 0 && int(p) < NumPrimitives
}

// Next returns the following primitive, wrapping after Plane.
// Out-of-range values normalize into range first.
func (p Primitive) Next() Primitive {
	return Primitive(wrap(int(p)+1, NumPrimitives))
}

// ParsePrimitive looks a primitive up by name, case-insensitively.
func ParsePrimitive(name string) (Primitive, error) {
	for i, n := range primitiveNames {
		if strings.EqualFold(n, name) {
			return Primitive(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPrimitive, name)
}

// Quality is a tessellation density tier.
type Quality int

const (
	Low Quality = iota
	Default
	High

	// NumQualities is the number of quality tiers.
	NumQualities int = iota
)

var qualityNames = [NumQualities]string{"Low", "Default", "High"}

// QualityNames returns the display names in enum order.
func QualityNames() []string {
	return qualityNames[:]
}

func (q Quality) String() string {
	if !q.Valid() {
		return fmt.Sprintf("Quality(%d)", int(q))
	}
	return qualityNames[q]
}

// Valid reports whether q is a defined tier.
func (q Quality) Valid() bool {
	return q >= 0 && int(q) < NumQualities
}

// Next returns the following tier, wrapping from High to Low.
func (q Quality) Next() Quality {
	return Quality(wrap(int(q)+1, NumQualities))
}

// ParseQuality looks a tier up by name, case-insensitively.
func ParseQuality(name string) (Quality, error) {
	for i, n := range qualityNames {
		if strings.EqualFold(n, name) {
			return Quality(i), nil
		}
	}
	return 0, fmt.Errorf("%w: quality %q", ErrUnknownPrimitive, name)
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
