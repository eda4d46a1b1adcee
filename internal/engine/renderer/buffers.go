package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/shapeshift/pkg/geom"
)

// Attribute locations shared by every program.
const (
	attribPosition = 0
	attribNormal   = 1
	attribTexCoord = 2
	attribColor    = 3
)

// meshBuffers is an uploaded TriMesh.
type meshBuffers struct {
	vao    uint32
	vbos   []uint32
	ebo    uint32
	count  int32
	colors bool
}

func uploadMesh(m *geom.TriMesh) *meshBuffers {
	b := &meshBuffers{count: int32(len(m.Indices)), colors: len(m.Colors) > 0}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	b.vbos = append(b.vbos,
		attribBuffer(attribPosition, 3, unsafe.Pointer(&m.Positions[0]), len(m.Positions)*12),
		attribBuffer(attribNormal, 3, unsafe.Pointer(&m.Normals[0]), len(m.Normals)*12),
		attribBuffer(attribTexCoord, 2, unsafe.Pointer(&m.TexCoords[0]), len(m.TexCoords)*8),
	)
	if b.colors {
		b.vbos = append(b.vbos, attribBuffer(attribColor, 4, unsafe.Pointer(&m.Colors[0]), len(m.Colors)*16))
	}

	gl.GenBuffers(1, &b.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return b
}

// bind binds the VAO. Without per-vertex colors, or with them turned
// off, the color attribute reads the constant c.
func (b *meshBuffers) bind(useColors bool, c [4]float32) {
	gl.BindVertexArray(b.vao)
	if b.colors && useColors {
		gl.EnableVertexAttribArray(attribColor)
		return
	}
	gl.DisableVertexAttribArray(attribColor)
	gl.VertexAttrib4f(attribColor, c[0], c[1], c[2], c[3])
}

func (b *meshBuffers) draw() {
	gl.DrawElements(gl.TRIANGLES, b.count, gl.UNSIGNED_INT, nil)
}

func (b *meshBuffers) delete() {
	gl.DeleteBuffers(int32(len(b.vbos)), &b.vbos[0])
	gl.DeleteBuffers(1, &b.ebo)
	gl.DeleteVertexArrays(1, &b.vao)
}

// lineBuffers is an uploaded Lines list.
type lineBuffers struct {
	vao   uint32
	vbos  [2]uint32
	count int32
}

func uploadLines(l *geom.Lines) *lineBuffers {
	if len(l.Positions) == 0 {
		return nil
	}
	b := &lineBuffers{count: int32(len(l.Positions))}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)
	b.vbos[0] = attribBuffer(attribPosition, 3, unsafe.Pointer(&l.Positions[0]), len(l.Positions)*12)
	b.vbos[1] = attribBuffer(attribColor, 4, unsafe.Pointer(&l.Colors[0]), len(l.Colors)*16)
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return b
}

func (b *lineBuffers) draw() {
	gl.BindVertexArray(b.vao)
	gl.DrawArrays(gl.LINES, 0, b.count)
	gl.BindVertexArray(0)
}

func (b *lineBuffers) delete() {
	gl.DeleteBuffers(2, &b.vbos[0])
	gl.DeleteVertexArrays(1, &b.vao)
}

// attribBuffer uploads tightly packed float data for one attribute of
// the bound VAO.
func attribBuffer(loc uint32, size int32, data unsafe.Pointer, n int) uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, n, data, gl.STATIC_DRAW)
	gl.VertexAttribPointer(loc, size, gl.FLOAT, false, 0, nil)
	gl.EnableVertexAttribArray(loc)
	return vbo
}
