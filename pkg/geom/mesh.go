package geom

import (
	"fmt"

	"github.com/Faultbox/shapeshift/pkg/math"
)

// TriMesh is an indexed triangle mesh with per-vertex attributes.
// Colors is nil unless the color attribute was requested.
type TriMesh struct {
	Positions []math.Vec3
	Normals   []math.Vec3
	TexCoords []math.Vec2
	Colors    []math.Vec4
	Indices   []uint32
}

// NumVertices returns the vertex count.
func (m *TriMesh) NumVertices() int {
	return len(m.Positions)
}

// NumTriangles returns the triangle count.
func (m *TriMesh) NumTriangles() int {
	return len(m.Indices) / 3
}

// Bounds returns the axis-aligned bounding box of all positions.
func (m *TriMesh) Bounds() math.Box3 {
	var b math.Box3
	for _, p := range m.Positions {
		b.Extend(p)
	}
	return b
}

// Validate checks attribute lengths and index ranges.
func (m *TriMesh) Validate() error {
	n := len(m.Positions)
	if n == 0 {
		return fmt.Errorf("mesh has no vertices")
	}
	if len(m.Normals) != n || len(m.TexCoords) != n {
		return fmt.Errorf("attribute length mismatch: %d positions, %d normals, %d texcoords",
			n, len(m.Normals), len(m.TexCoords))
	}
	if m.Colors != nil && len(m.Colors) != n {
		return fmt.Errorf("attribute length mismatch: %d positions, %d colors", n, len(m.Colors))
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a multiple of 3", len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= n {
			return fmt.Errorf("index %d out of range at %d (vertices: %d)", idx, i, n)
		}
	}
	return nil
}

func (m *TriMesh) addVertex(p, n math.Vec3, uv math.Vec2) uint32 {
	m.Positions = append(m.Positions, p)
	m.Normals = append(m.Normals, n)
	m.TexCoords = append(m.TexCoords, uv)
	return uint32(len(m.Positions) - 1)
}

func (m *TriMesh) addTriangle(a, b, c uint32) {
	m.Indices = append(m.Indices, a, b, c)
}

// addGrid adds (rows-1)*(cols-1) quads over a row-major vertex block that
// starts at base.
func (m *TriMesh) addGrid(base uint32, rows, cols int) {
	for i := 0; i < rows-1; i++ {
		for j := 0; j < cols-1; j++ {
			a := base + uint32(i*cols+j)
			b := a + 1
			d := a + uint32(cols)
			c := d + 1
			m.addTriangle(a, b, c)
			m.addTriangle(a, c, d)
		}
	}
}

// append merges other into m.
func (m *TriMesh) append(other *TriMesh) {
	base := uint32(len(m.Positions))
	m.Positions = append(m.Positions, other.Positions...)
	m.Normals = append(m.Normals, other.Normals...)
	m.TexCoords = append(m.TexCoords, other.TexCoords...)
	for _, idx := range other.Indices {
		m.Indices = append(m.Indices, base+idx)
	}
}

// transform applies xf to positions and its normal matrix to normals.
func (m *TriMesh) transform(xf math.Mat4) {
	nm := xf.NormalMatrix()
	for i, p := range m.Positions {
		m.Positions[i] = xf.TransformPoint(p)
		n := m.Normals[i]
		m.Normals[i] = math.Vec3{
			X: nm[0]*n.X + nm[3]*n.Y + nm[6]*n.Z,
			Y: nm[1]*n.X + nm[4]*n.Y + nm[7]*n.Z,
			Z: nm[2]*n.X + nm[5]*n.Y + nm[8]*n.Z,
		}.Normalize()
	}
}

// orient flips every triangle whose winding disagrees with its vertex
// normals so that front faces are counter-clockwise seen from outside.
func (m *TriMesh) orient() {
	for t := 0; t+2 < len(m.Indices); t += 3 {
		a, b, c := m.Indices[t], m.Indices[t+1], m.Indices[t+2]
		pa, pb, pc := m.Positions[a], m.Positions[b], m.Positions[c]
		face := pb.Sub(pa).Cross(pc.Sub(pa))
		avg := m.Normals[a].Add(m.Normals[b]).Add(m.Normals[c])
		if face.Dot(avg) < 0 {
			m.Indices[t+1], m.Indices[t+2] = c, b
		}
	}
}

// ApplyNormalColors fills the color attribute from the normals,
// mapping each component from [-1,1] to [0,1].
func (m *TriMesh) ApplyNormalColors() {
	m.Colors = make([]math.Vec4, len(m.Normals))
	for i, n := range m.Normals {
		m.Colors[i] = math.Vec4{X: n.X*0.5 + 0.5, Y: n.Y*0.5 + 0.5, Z: n.Z*0.5 + 0.5, W: 1}
	}
}

// Subdivide returns a mesh in which every triangle is split into n*n
// smaller triangles. All attributes are interpolated barycentrically and
// interpolated normals are renormalized. n <= 1 returns a copy.
func (m *TriMesh) Subdivide(n int) *TriMesh {
	if n <= 1 {
		return m.clone()
	}
	perTri := (n + 1) * (n + 2) / 2
	out := &TriMesh{
		Positions: make([]math.Vec3, 0, m.NumTriangles()*perTri),
		Normals:   make([]math.Vec3, 0, m.NumTriangles()*perTri),
		TexCoords: make([]math.Vec2, 0, m.NumTriangles()*perTri),
		Indices:   make([]uint32, 0, m.NumTriangles()*n*n*3),
	}
	if m.Colors != nil {
		out.Colors = make([]math.Vec4, 0, m.NumTriangles()*perTri)
	}

	inv := 1 / float32(n)
	for t := 0; t+2 < len(m.Indices); t += 3 {
		a, b, c := m.Indices[t], m.Indices[t+1], m.Indices[t+2]
		base := uint32(len(out.Positions))

		// row i runs from edge a-b toward c and holds n-i+1 vertices
		for i := 0; i <= n; i++ {
			for j := 0; j <= n-i; j++ {
				wb := float32(j) * inv
				wc := float32(i) * inv
				wa := 1 - wb - wc
				out.Positions = append(out.Positions, blend3(m.Positions, a, b, c, wa, wb, wc))
				out.Normals = append(out.Normals, blend3(m.Normals, a, b, c, wa, wb, wc).Normalize())
				out.TexCoords = append(out.TexCoords, math.Vec2{
					X: m.TexCoords[a].X*wa + m.TexCoords[b].X*wb + m.TexCoords[c].X*wc,
					Y: m.TexCoords[a].Y*wa + m.TexCoords[b].Y*wb + m.TexCoords[c].Y*wc,
				})
				if m.Colors != nil {
					ca, cb, cc := m.Colors[a], m.Colors[b], m.Colors[c]
					out.Colors = append(out.Colors, math.Vec4{
						X: ca.X*wa + cb.X*wb + cc.X*wc,
						Y: ca.Y*wa + cb.Y*wb + cc.Y*wc,
						Z: ca.Z*wa + cb.Z*wb + cc.Z*wc,
						W: ca.W*wa + cb.W*wb + cc.W*wc,
					})
				}
			}
		}

		row := func(i int) uint32 {
			// vertices before row i: sum of (n-k+1) for k < i
			return base + uint32(i*(n+1)-i*(i-1)/2)
		}
		for i := 0; i < n; i++ {
			r0, r1 := row(i), row(i+1)
			for j := 0; j < n-i; j++ {
				out.addTriangle(r0+uint32(j), r0+uint32(j+1), r1+uint32(j))
				if j < n-i-1 {
					out.addTriangle(r0+uint32(j+1), r1+uint32(j+1), r1+uint32(j))
				}
			}
		}
	}
	return out
}

func blend3(v []math.Vec3, a, b, c uint32, wa, wb, wc float32) math.Vec3 {
	return v[a].Scale(wa).Add(v[b].Scale(wb)).Add(v[c].Scale(wc))
}

func (m *TriMesh) clone() *TriMesh {
	out := &TriMesh{
		Positions: append([]math.Vec3(nil), m.Positions...),
		Normals:   append([]math.Vec3(nil), m.Normals...),
		TexCoords: append([]math.Vec2(nil), m.TexCoords...),
		Indices:   append([]uint32(nil), m.Indices...),
	}
	if m.Colors != nil {
		out.Colors = append([]math.Vec4(nil), m.Colors...)
	}
	return out
}
