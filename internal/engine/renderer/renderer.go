// Package renderer draws the viewer's mesh, overlays and deformations
// with OpenGL.
package renderer

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/shapeshift/internal/engine/shader"
	"github.com/Faultbox/shapeshift/internal/engine/texture"
	"github.com/Faultbox/shapeshift/internal/logger"
	"github.com/Faultbox/shapeshift/internal/viewer"
	"github.com/Faultbox/shapeshift/pkg/geom"
	"github.com/Faultbox/shapeshift/pkg/math"
)

// Wireframe pass brightness, back faces first.
const (
	wireBackBrightness  = 0.5
	wireFrontBrightness = 1.0
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer owns every GL resource of the scene.
type Renderer struct {
	config  Config
	library *shader.Library

	mesh       *meshBuffers
	normals    *lineBuffers
	grid       *lineBuffers
	generation uint64

	texture *texture.Texture
}

// New creates a renderer and builds its shader programs. Must be called
// after the GL context is current. Shader failures are logged and do not
// fail construction; the affected programs draw nothing.
func New(cfg Config, src shader.Sources) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	r := &Renderer{
		config:  cfg,
		library: shader.NewLibrary(src, Specs()...),
		grid:    uploadLines(geom.Grid()),
	}
	_ = r.ReloadShaders()
	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// ReloadShaders rebuilds every program from its sources.
func (r *Renderer) ReloadShaders() error {
	return r.library.Reload()
}

// Program returns a program by name, nil if it has never built.
func (r *Renderer) Program(name string) *shader.Program {
	return r.library.Get(name)
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	r.dropMesh()
	if r.grid != nil {
		r.grid.delete()
		r.grid = nil
	}
	if r.texture != nil {
		r.texture.Delete()
		r.texture = nil
	}
	r.library.Close()
}

// Resize sets the viewport.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the current viewport size.
func (r *Renderer) Size() (width, height int) {
	return r.config.Width, r.config.Height
}

// SetMesh uploads m unless its generation is already on the GPU.
func (r *Renderer) SetMesh(m *viewer.Mesh) {
	if m == nil || (r.mesh != nil && m.Generation == r.generation) {
		return
	}
	mesh := uploadMesh(m.Geometry)
	var normals *lineBuffers
	if m.Normals != nil {
		normals = uploadLines(m.Normals)
	}

	r.dropMesh()
	r.mesh, r.normals, r.generation = mesh, normals, m.Generation
	logger.Debug("mesh uploaded",
		zap.Stringer("primitive", m.Options.Primitive),
		zap.Stringer("quality", m.Options.Quality),
		zap.Int("vertices", m.Geometry.NumVertices()),
		zap.Int("triangles", m.Geometry.NumTriangles()),
		zap.Uint64("generation", m.Generation),
	)
}

func (r *Renderer) dropMesh() {
	if r.mesh != nil {
		r.mesh.delete()
		r.mesh = nil
	}
	if r.normals != nil {
		r.normals.delete()
		r.normals = nil
	}
}

// SetTexture replaces the modulation texture.
func (r *Renderer) SetTexture(img *image.RGBA) {
	t := texture.Upload(img)
	if r.texture != nil {
		r.texture.Delete()
	}
	r.texture = t
}

// Draw renders one frame: clear to the mode background, the grid in
// world space, then the normals and the mesh under the model transform.
func (r *Renderer) Draw(fs viewer.FrameState, view, proj math.Mat4) {
	gl.ClearColor(fs.Background.X, fs.Background.Y, fs.Background.Z, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if fs.Grid && r.grid != nil {
		r.drawLines(r.grid, proj.Mul(view))
	}
	if r.mesh == nil {
		return
	}

	mv := view.Mul(fs.Model)
	mvp := proj.Mul(mv)
	if fs.Normals && r.normals != nil {
		r.drawLines(r.normals, mvp)
	}

	r.mesh.bind(fs.Colors, [4]float32{fs.Color.X, fs.Color.Y, fs.Color.Z, 1})
	if fs.View == viewer.Wireframe {
		r.drawWireframe(mvp)
	} else {
		r.drawShaded(fs, mv, mvp)
	}
	gl.BindVertexArray(0)
}

func (r *Renderer) drawShaded(fs viewer.FrameState, mv, mvp math.Mat4) {
	p := r.library.Get(fs.Capability.Shader)
	if p == nil {
		return
	}
	p.Use()
	normal := mv.NormalMatrix()
	p.SetMat4("uModelView", mv.Ptr())
	p.SetMat4("uModelViewProjection", mvp.Ptr())
	p.SetMat3("uNormalMatrix", normal.Ptr())
	setDeformation(p, fs)

	textured := fs.Textured && r.texture != nil
	p.SetBool("uTextured", textured)
	if textured {
		r.texture.Bind(0)
		p.SetInt("uTexture", 0)
	}

	r.mesh.draw()
}

// drawWireframe draws back faces dimmed, then front faces, blended.
func (r *Renderer) drawWireframe(mvp math.Mat4) {
	p := r.library.Get(programWireframe)
	if p == nil {
		return
	}
	p.Use()
	p.SetMat4("uModelViewProjection", mvp.Ptr())
	p.SetVec2("uViewportSize", float32(r.config.Width), float32(r.config.Height))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.CULL_FACE)

	gl.CullFace(gl.FRONT)
	p.SetFloat("uBrightness", wireBackBrightness)
	r.mesh.draw()

	gl.CullFace(gl.BACK)
	p.SetFloat("uBrightness", wireFrontBrightness)
	r.mesh.draw()

	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.BLEND)
}

func (r *Renderer) drawLines(b *lineBuffers, mvp math.Mat4) {
	p := r.library.Get(programLines)
	if p == nil {
		return
	}
	p.Use()
	p.SetMat4("uModelViewProjection", mvp.Ptr())
	b.draw()
}
