package geom

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/shapeshift/pkg/math"
)

// profilePoint is one sample of a surface of revolution: radius and height
// of the point, and the radial/vertical components of its normal.
type profilePoint struct {
	r, y   float32
	nr, ny float32
}

// lathe revolves a bottom-to-top profile around +Y.
func lathe(profile []profilePoint, segments int) *TriMesh {
	m := &TriMesh{}
	vs := arcParams(profile)
	for i, pp := range profile {
		for j := 0; j <= segments; j++ {
			u := float32(j) / float32(segments)
			phi := u * 2 * math.Pi
			s, c := math32.Sin(phi), math32.Cos(phi)
			m.addVertex(
				math.Vec3{X: pp.r * s, Y: pp.y, Z: pp.r * c},
				math.Vec3{X: pp.nr * s, Y: pp.ny, Z: pp.nr * c}.Normalize(),
				math.Vec2{X: u, Y: vs[i]},
			)
		}
	}
	m.addGrid(0, len(profile), segments+1)
	return m
}

// arcParams maps each profile point to its normalized arc length.
func arcParams(profile []profilePoint) []float32 {
	vs := make([]float32, len(profile))
	var total float32
	for i := 1; i < len(profile); i++ {
		dr := profile[i].r - profile[i-1].r
		dy := profile[i].y - profile[i-1].y
		total += math32.Sqrt(dr*dr + dy*dy)
		vs[i] = total
	}
	if total > 0 {
		for i := range vs {
			vs[i] /= total
		}
	}
	return vs
}

// sweep extrudes a circle of radius(t) along path(t), t in [0,1].
// ref is any direction never parallel to the path tangent.
func sweep(path func(t float32) math.Vec3, radius func(t float32) float32, ref math.Vec3, pathSegs, ringSegs int) *TriMesh {
	const eps = 1e-3
	m := &TriMesh{}
	for i := 0; i <= pathSegs; i++ {
		t := float32(i) / float32(pathSegs)
		p := path(t)
		tangent := path(math32.Min(t+eps, 1)).Sub(path(math32.Max(t-eps, 0))).Normalize()
		n := ref.Cross(tangent).Normalize()
		b := tangent.Cross(n)
		r := radius(t)
		for j := 0; j <= ringSegs; j++ {
			v := float32(j) / float32(ringSegs)
			a := v * 2 * math.Pi
			dir := n.Scale(math32.Cos(a)).Add(b.Scale(math32.Sin(a)))
			m.addVertex(p.Add(dir.Scale(r)), dir, math.Vec2{X: t, Y: v})
		}
	}
	m.addGrid(0, pathSegs+1, ringSegs+1)
	return m
}

// sphericalUV maps a unit direction to equirectangular texture coordinates.
func sphericalUV(n math.Vec3) math.Vec2 {
	return math.Vec2{
		X: 0.5 + math32.Atan2(n.Z, n.X)/(2*math.Pi),
		Y: 0.5 + math32.Asin(math.Clamp(n.Y, -1, 1))/math.Pi,
	}
}

// newSphere builds a unit UV sphere with d.Axis segments around.
func newSphere(d Density) *TriMesh {
	segments := max(d.Axis, 3)
	rings := max(segments/2, 2)
	profile := make([]profilePoint, 0, rings+1)
	for i := 0; i <= rings; i++ {
		theta := -math.Pi/2 + math.Pi*float32(i)/float32(rings)
		r, y := math32.Cos(theta), math32.Sin(theta)
		profile = append(profile, profilePoint{r: r, y: y, nr: r, ny: y})
	}
	return lathe(profile, segments)
}

// newCapsule builds a capsule of radius 0.5 whose cylindrical part spans
// y in [-0.5, 0.5].
func newCapsule(d Density) *TriMesh {
	const radius, half = 0.5, 0.5
	segments := max(d.Axis, 3)
	rings := max(segments/4, 2)
	heightSegs := max(d.Height, 1)

	var profile []profilePoint
	for i := 0; i <= rings; i++ {
		theta := -math.Pi/2 + math.Pi/2*float32(i)/float32(rings)
		c, s := math32.Cos(theta), math32.Sin(theta)
		profile = append(profile, profilePoint{r: radius * c, y: -half + radius*s, nr: c, ny: s})
	}
	for i := 1; i <= heightSegs; i++ {
		y := -half + 2*half*float32(i)/float32(heightSegs)
		profile = append(profile, profilePoint{r: radius, y: y, nr: 1})
	}
	for i := 1; i <= rings; i++ {
		theta := math.Pi / 2 * float32(i) / float32(rings)
		c, s := math32.Cos(theta), math32.Sin(theta)
		profile = append(profile, profilePoint{r: radius * c, y: half + radius*s, nr: c, ny: s})
	}
	return lathe(profile, segments)
}

// newTube builds a capped frustum standing on the origin along +Y.
// A zero apex radius produces a cone without a top cap.
func newTube(base, apex, height float32, d Density) *TriMesh {
	segments := max(d.Axis, 3)
	heightSegs := max(d.Height, 1)
	slope := math.Vec3{X: height, Y: base - apex}.Normalize()

	var profile []profilePoint
	if base > 0 {
		profile = append(profile,
			profilePoint{r: 0, y: 0, ny: -1},
			profilePoint{r: base, y: 0, ny: -1},
		)
	}
	for i := 0; i <= heightSegs; i++ {
		t := float32(i) / float32(heightSegs)
		profile = append(profile, profilePoint{
			r:  math.Lerp(base, apex, t),
			y:  t * height,
			nr: slope.X,
			ny: slope.Y,
		})
	}
	if apex > 0 {
		profile = append(profile,
			profilePoint{r: apex, y: height, ny: 1},
			profilePoint{r: 0, y: height, ny: 1},
		)
	}
	return lathe(profile, segments)
}

func newCylinder(d Density) *TriMesh {
	return newTube(1, 1, 2, d)
}

func newCone(d Density) *TriMesh {
	return newTube(1, 0, 2, d)
}

// newTorus builds a torus in the XZ plane with ring radius 0.75 and tube
// radius 0.25.
func newTorus(d Density) *TriMesh {
	const ring, tube = 0.75, 0.25
	tubeSegs := max(d.Height, 3)
	profile := make([]profilePoint, 0, tubeSegs+1)
	for k := 0; k <= tubeSegs; k++ {
		a := -math.Pi + 2*math.Pi*float32(k)/float32(tubeSegs)
		c, s := math32.Cos(a), math32.Sin(a)
		profile = append(profile, profilePoint{r: ring + tube*c, y: tube * s, nr: c, ny: s})
	}
	return lathe(profile, max(d.Axis, 3))
}

// newHelix builds a two-coil tube rising from y=0 to y=2.
func newHelix(d Density) *TriMesh {
	const coils, height, ring, tube = 2, 2, 0.75, 0.25
	path := func(t float32) math.Vec3 {
		theta := t * 2 * math.Pi * coils
		return math.Vec3{X: ring * math32.Cos(theta), Y: t * height, Z: ring * math32.Sin(theta)}
	}
	radius := func(float32) float32 { return tube }
	return sweep(path, radius, math.Vec3{Y: 1}, max(d.Axis, 3)*coils, max(d.Height, 3))
}

// cubeFaces lists outward normal and the two in-plane axes of each face,
// with u x v == normal.
var cubeFaces = [6][3]math.Vec3{
	{{X: 1}, {Z: -1}, {Y: 1}},
	{{X: -1}, {Z: 1}, {Y: 1}},
	{{Y: 1}, {X: 1}, {Z: -1}},
	{{Y: -1}, {X: 1}, {Z: 1}},
	{{Z: 1}, {X: 1}, {Y: 1}},
	{{Z: -1}, {X: -1}, {Y: 1}},
}

// newCube builds a unit cube centered on the origin, each face a
// d.Axis x d.Axis grid.
func newCube(d Density) *TriMesh {
	segs := max(d.Axis, 1)
	m := &TriMesh{}
	for _, f := range cubeFaces {
		n, u, v := f[0], f[1], f[2]
		base := uint32(len(m.Positions))
		for j := 0; j <= segs; j++ {
			tv := float32(j) / float32(segs)
			for i := 0; i <= segs; i++ {
				tu := float32(i) / float32(segs)
				p := n.Scale(0.5).Add(u.Scale(tu - 0.5)).Add(v.Scale(tv - 0.5))
				m.addVertex(p, n, math.Vec2{X: tu, Y: tv})
			}
		}
		m.addGrid(base, segs+1, segs+1)
	}
	return m
}

var (
	icoVertices = func() [12]math.Vec3 {
		t := (1 + math32.Sqrt(5)) / 2
		raw := [12]math.Vec3{
			{X: -1, Y: t}, {X: 1, Y: t}, {X: -1, Y: -t}, {X: 1, Y: -t},
			{Y: -1, Z: t}, {Y: 1, Z: t}, {Y: -1, Z: -t}, {Y: 1, Z: -t},
			{X: t, Z: -1}, {X: t, Z: 1}, {X: -t, Z: -1}, {X: -t, Z: 1},
		}
		for i := range raw {
			raw[i] = raw[i].Normalize()
		}
		return raw
	}()

	icoFaces = [20][3]uint32{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}
)

// newIcosahedron builds a flat-shaded unit icosahedron whose faces are
// split d.Axis times per edge.
func newIcosahedron(d Density) *TriMesh {
	m := &TriMesh{}
	for _, f := range icoFaces {
		a, b, c := icoVertices[f[0]], icoVertices[f[1]], icoVertices[f[2]]
		n := a.Add(b).Add(c).Normalize()
		ia := m.addVertex(a, n, sphericalUV(a))
		ib := m.addVertex(b, n, sphericalUV(b))
		ic := m.addVertex(c, n, sphericalUV(c))
		m.addTriangle(ia, ib, ic)
	}
	m.orient()
	return m.Subdivide(max(d.Axis, 1))
}

// newIcosphere refines the icosahedron d.Axis times, projecting every
// new midpoint onto the unit sphere.
func newIcosphere(d Density) *TriMesh {
	positions := append([]math.Vec3(nil), icoVertices[:]...)
	faces := append([][3]uint32(nil), icoFaces[:]...)

	for level := 0; level < d.Axis; level++ {
		cache := make(map[[2]uint32]uint32)
		midpoint := func(a, b uint32) uint32 {
			key := [2]uint32{min(a, b), max(a, b)}
			if idx, ok := cache[key]; ok {
				return idx
			}
			positions = append(positions, positions[a].Add(positions[b]).Normalize())
			idx := uint32(len(positions) - 1)
			cache[key] = idx
			return idx
		}
		next := make([][3]uint32, 0, len(faces)*4)
		for _, f := range faces {
			ab := midpoint(f[0], f[1])
			bc := midpoint(f[1], f[2])
			ca := midpoint(f[2], f[0])
			next = append(next,
				[3]uint32{f[0], ab, ca},
				[3]uint32{f[1], bc, ab},
				[3]uint32{f[2], ca, bc},
				[3]uint32{ab, bc, ca},
			)
		}
		faces = next
	}

	m := &TriMesh{}
	for _, p := range positions {
		m.addVertex(p, p, sphericalUV(p))
	}
	for _, f := range faces {
		m.addTriangle(f[0], f[1], f[2])
	}
	return m
}

// newPlane builds a 2x2 plane in XZ facing +Y.
func newPlane(d Density) *TriMesh {
	cols := max(d.Axis, 1)
	rows := max(d.Height, 1)
	m := &TriMesh{}
	up := math.Vec3{Y: 1}
	for j := 0; j <= rows; j++ {
		v := float32(j) / float32(rows)
		for i := 0; i <= cols; i++ {
			u := float32(i) / float32(cols)
			m.addVertex(math.Vec3{X: -1 + 2*u, Z: 1 - 2*v}, up, math.Vec2{X: u, Y: v})
		}
	}
	m.addGrid(0, rows+1, cols+1)
	return m
}
