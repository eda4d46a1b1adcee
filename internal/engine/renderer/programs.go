package renderer

import (
	"github.com/Faultbox/shapeshift/internal/assets"
	"github.com/Faultbox/shapeshift/internal/engine/shader"
	"github.com/Faultbox/shapeshift/internal/viewer"
)

// Program names besides the per-mode ones.
const (
	programWireframe = "wireframe"
	programLines     = "lines"
)

func shaderPath(name string) string {
	return assets.ShaderDir + "/" + name
}

// Specs lists every program the renderer uses: one per deformation mode
// sharing the deform prelude and phong fragment stage, the wireframe
// program and the colored line program.
func Specs() []shader.Spec {
	var specs []shader.Spec
	for _, name := range viewer.ShaderNames() {
		specs = append(specs, shader.Spec{
			Name:     name,
			Vertex:   []string{shaderPath("deform.glsl"), shaderPath(name + ".vert")},
			Fragment: []string{shaderPath("phong.frag")},
		})
	}
	return append(specs,
		shader.Spec{
			Name:     programWireframe,
			Vertex:   []string{shaderPath("wireframe.vert")},
			Geometry: []string{shaderPath("wireframe.geom")},
			Fragment: []string{shaderPath("wireframe.frag")},
		},
		shader.Spec{
			Name:     programLines,
			Vertex:   []string{shaderPath("lines.vert")},
			Fragment: []string{shaderPath("lines.frag")},
		},
	)
}

// uniforms is the subset of shader.Program the deformation feeder needs.
type uniforms interface {
	SetFloat(name string, v float32)
	SetBool(name string, v bool)
	SetVec3(name string, x, y, z float32)
}

// setDeformation pushes the uniforms of the frame's mode. Modes that
// lack a uniform in their capability set never receive it.
func setDeformation(u uniforms, fs viewer.FrameState) {
	set := fs.Capability.Uniforms
	if set.Has(viewer.UniformTime) {
		u.SetFloat("uTime", fs.Time)
	}
	if set.Has(viewer.UniformMix) {
		u.SetFloat("uMixAmount", fs.Mix)
	}
	if set.Has(viewer.UniformWorldUp) {
		u.SetVec3("uWorldUp", fs.WorldUp.X, fs.WorldUp.Y, fs.WorldUp.Z)
	}
	if set.Has(viewer.UniformAngle) {
		u.SetFloat("uAngleMax", fs.Angle)
	}
	if set.Has(viewer.UniformHeight) {
		u.SetFloat("uHeight", fs.Height)
	}
	if set.Has(viewer.UniformCenter) {
		u.SetVec3("uCenter", fs.Center.X, fs.Center.Y, fs.Center.Z)
	}
	if set.Has(viewer.UniformBlend) {
		u.SetBool("uBlend", fs.Blend)
	}
	if set.Has(viewer.UniformMove) {
		u.SetFloat("uMove", fs.Move)
	}
	if set.Has(viewer.UniformLimits) {
		u.SetVec3("uLimits", fs.Limits.X, fs.Limits.Y, fs.Limits.Z)
	}
}
