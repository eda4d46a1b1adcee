package geom

import "github.com/Faultbox/shapeshift/pkg/math"

// Lines is a colored GL_LINES vertex list; every two vertices form a segment.
type Lines struct {
	Positions []math.Vec3
	Colors    []math.Vec4
}

// NumSegments returns the number of line segments.
func (l *Lines) NumSegments() int {
	return len(l.Positions) / 2
}

func (l *Lines) add(a, b math.Vec3, c math.Vec4) {
	l.Positions = append(l.Positions, a, b)
	l.Colors = append(l.Colors, c, c)
}

// NormalLength is the length of each debug normal segment.
const NormalLength = 0.1

// NormalLines returns one segment per vertex along its normal.
func NormalLines(m *TriMesh, c math.Vec4) *Lines {
	l := &Lines{
		Positions: make([]math.Vec3, 0, 2*len(m.Positions)),
		Colors:    make([]math.Vec4, 0, 2*len(m.Positions)),
	}
	for i, p := range m.Positions {
		l.add(p, p.Add(m.Normals[i].Scale(NormalLength)), c)
	}
	return l
}

// Grid returns the reference grid: colored positive axes (x red, y green,
// z blue, length 20), gray negative X/Z half-axes, and gray lines at
// integer offsets from -10 to 10 on the XZ plane.
func Grid() *Lines {
	gray := math.Vec4{X: 0.25, Y: 0.25, Z: 0.25, W: 1}
	l := &Lines{}
	origin := math.Vec3{}
	l.add(math.Vec3{X: -10}, origin, gray)
	l.add(origin, math.Vec3{X: 20}, math.Vec4{X: 1, W: 1})
	l.add(origin, math.Vec3{Y: 20}, math.Vec4{Y: 1, W: 1})
	l.add(math.Vec3{Z: -10}, origin, gray)
	l.add(origin, math.Vec3{Z: 20}, math.Vec4{Z: 1, W: 1})
	for i := -10; i <= 10; i++ {
		if i == 0 {
			continue
		}
		f := float32(i)
		l.add(math.Vec3{X: f, Z: -10}, math.Vec3{X: f, Z: 10}, gray)
		l.add(math.Vec3{X: -10, Z: f}, math.Vec3{X: 10, Z: f}, gray)
	}
	return l
}
