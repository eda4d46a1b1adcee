package geom

// Subdivision bounds.
const (
	MinSubdivision = 1
	MaxSubdivision = 5
)

// ClampSubdivision limits a requested subdivision level to the supported range.
func ClampSubdivision(n int) int {
	if n < MinSubdivision {
		return MinSubdivision
	}
	if n > MaxSubdivision {
		return MaxSubdivision
	}
	return n
}

// Density holds the tessellation parameters of one primitive at one tier.
// Axis counts segments around the main axis (or per edge for the flat
// solids, levels for the icosphere); Height counts segments along it.
type Density struct {
	Axis   int
	Height int
}

var densities = [NumPrimitives][NumQualities]Density{
	Capsule:     {{6, 1}, {12, 6}, {60, 20}},
	Cone:        {{6, 1}, {18, 4}, {60, 60}},
	Cube:        {{1, 1}, {2, 2}, {10, 10}},
	Cylinder:    {{6, 1}, {18, 4}, {60, 20}},
	Helix:       {{12, 6}, {24, 12}, {60, 60}},
	Icosahedron: {{1, 1}, {2, 2}, {4, 4}},
	Icosphere:   {{1, 1}, {3, 3}, {5, 5}},
	Sphere:      {{6, 6}, {20, 20}, {60, 60}},
	Teapot:      {{2, 2}, {6, 6}, {12, 12}},
	Torus:       {{12, 6}, {24, 12}, {60, 60}},
	Plane:       {{2, 2}, {10, 10}, {100, 100}},
}

// DensityFor returns the tessellation parameters for p at q.
// Invalid inputs fall back to the first primitive and the default tier.
func DensityFor(p Primitive, q Quality) Density {
	if !p.Valid() {
		p = Capsule
	}
	if !q.Valid() {
		q = Default
	}
	return densities[p][q]
}
