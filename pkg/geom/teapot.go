package geom

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/shapeshift/pkg/math"
)

// teapotProfile traces body and lid from the bottom center to the knob,
// in the classic teapot's units (radius 2, height about 3.15).
var teapotProfile = [][2]float32{
	{0, 0}, {1.5, 0}, {1.5, 0.075}, {1.8, 0.25}, {2.0, 0.75},
	{2.0, 1.2}, {1.75, 1.725}, {1.5, 2.25}, {1.4, 2.4}, {1.3, 2.25},
	{0.8, 2.4}, {0.2, 2.55}, {0.1, 2.7}, {0.4, 2.85}, {0.2, 3.1}, {0, 3.15},
}

// teapotScale maps the classic units onto roughly a unit-radius teapot.
const teapotScale = 0.5

// newTeapot approximates the classic teapot from a revolved body with lid,
// a swept handle and a tapered spout. d.Axis controls every resolution.
func newTeapot(d Density) *TriMesh {
	n := max(d.Axis, 1)

	body := lathe(sampleProfile(teapotProfile, n*2), n*4+4)

	handle := sweep(
		cubicBezier(
			math.Vec3{X: -1.45, Y: 1.9},
			math.Vec3{X: -2.9, Y: 2.05},
			math.Vec3{X: -2.7, Y: 0.55},
			math.Vec3{X: -1.7, Y: 0.65},
		),
		func(float32) float32 { return 0.13 },
		math.Vec3{Z: 1}, n*4, n*2+2,
	)

	spout := sweep(
		cubicBezier(
			math.Vec3{X: 1.7, Y: 0.6},
			math.Vec3{X: 2.6, Y: 0.65},
			math.Vec3{X: 2.45, Y: 1.95},
			math.Vec3{X: 3.1, Y: 2.4},
		),
		func(t float32) float32 { return math.Lerp(0.38, 0.14, t) },
		math.Vec3{Z: 1}, n*4, n*2+2,
	)

	body.append(handle)
	body.append(spout)
	body.transform(math.Scale(math.Vec3{X: teapotScale, Y: teapotScale, Z: teapotScale}))
	return body
}

// sampleProfile interpolates the control polyline with a Catmull-Rom spline,
// perSpan samples per segment, and derives outward normals from the tangent.
func sampleProfile(ctrl [][2]float32, perSpan int) []profilePoint {
	at := func(i int) [2]float32 {
		return ctrl[min(max(i, 0), len(ctrl)-1)]
	}
	var pts [][2]float32
	for i := 0; i < len(ctrl)-1; i++ {
		p0, p1, p2, p3 := at(i-1), at(i), at(i+1), at(i+2)
		for s := 0; s < perSpan; s++ {
			t := float32(s) / float32(perSpan)
			pts = append(pts, [2]float32{
				catmullRom(p0[0], p1[0], p2[0], p3[0], t),
				catmullRom(p0[1], p1[1], p2[1], p3[1], t),
			})
		}
	}
	pts = append(pts, ctrl[len(ctrl)-1])

	profile := make([]profilePoint, len(pts))
	for i, p := range pts {
		prev, next := pts[max(i-1, 0)], pts[min(i+1, len(pts)-1)]
		dr, dy := next[0]-prev[0], next[1]-prev[1]
		l := math32.Sqrt(dr*dr + dy*dy)
		if l == 0 {
			l = 1
		}
		profile[i] = profilePoint{r: math32.Max(p[0], 0), y: p[1], nr: dy / l, ny: -dr / l}
	}
	return profile
}

func catmullRom(p0, p1, p2, p3, t float32) float32 {
	t2 := t * t
	t3 := t2 * t
	return 0.5 * (2*p1 + (p2-p0)*t + (2*p0-5*p1+4*p2-p3)*t2 + (3*p1-p0-3*p2+p3)*t3)
}

func cubicBezier(p0, p1, p2, p3 math.Vec3) func(t float32) math.Vec3 {
	return func(t float32) math.Vec3 {
		u := 1 - t
		return p0.Scale(u * u * u).
			Add(p1.Scale(3 * u * u * t)).
			Add(p2.Scale(3 * u * t * t)).
			Add(p3.Scale(t * t * t))
	}
}
