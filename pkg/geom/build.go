package geom

import "fmt"

// Options selects what Build generates.
type Options struct {
	Primitive   Primitive
	Quality     Quality
	Subdivision int  // clamped to [MinSubdivision, MaxSubdivision]
	Colors      bool // fill the color attribute from normals
}

var generators = [NumPrimitives]func(Density) *TriMesh{
	Capsule:     newCapsule,
	Cone:        newCone,
	Cube:        newCube,
	Cylinder:    newCylinder,
	Helix:       newHelix,
	Icosahedron: newIcosahedron,
	Icosphere:   newIcosphere,
	Sphere:      newSphere,
	Teapot:      newTeapot,
	Torus:       newTorus,
	Plane:       newPlane,
}

// Build generates the mesh described by opts.
func Build(opts Options) (*TriMesh, error) {
	if !opts.Primitive.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPrimitive, int(opts.Primitive))
	}
	if !opts.Quality.Valid() {
		return nil, fmt.Errorf("%w: quality %d", ErrUnknownPrimitive, int(opts.Quality))
	}

	m := generators[opts.Primitive](DensityFor(opts.Primitive, opts.Quality))
	m.orient()
	if n := ClampSubdivision(opts.Subdivision); n > 1 {
		m = m.Subdivide(n)
	}
	if opts.Colors {
		m.ApplyNormalColors()
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("build %s/%s: %w", opts.Primitive, opts.Quality, err)
	}
	return m, nil
}
