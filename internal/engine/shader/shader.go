// Package shader provides OpenGL shader compilation utilities.
package shader

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Stage sources of one program. Geometry is optional.
type Stages struct {
	Vertex   string
	Geometry string
	Fragment string
}

// Program is a linked GL program with a uniform location cache.
type Program struct {
	Name     string
	ID       uint32
	uniforms map[string]int32
}

// Compile builds and links a program from its stage sources.
func Compile(name string, s Stages) (*Program, error) {
	id, err := CompileProgram(s)
	if err != nil {
		return nil, fmt.Errorf("program %s: %w", name, err)
	}
	return &Program{Name: name, ID: id, uniforms: make(map[string]int32)}, nil
}

// CompileProgram compiles the stages and links them into a program.
// Returns the program ID or an error if compilation/linking fails.
func CompileProgram(s Stages) (uint32, error) {
	type stage struct {
		src  string
		kind uint32
		name string
	}
	stages := []stage{
		{s.Vertex, gl.VERTEX_SHADER, "vertex"},
		{s.Geometry, gl.GEOMETRY_SHADER, "geometry"},
		{s.Fragment, gl.FRAGMENT_SHADER, "fragment"},
	}

	program := gl.CreateProgram()
	for _, st := range stages {
		if st.src == "" {
			if st.kind == gl.GEOMETRY_SHADER {
				continue
			}
			gl.DeleteProgram(program)
			return 0, fmt.Errorf("%s shader: empty source", st.name)
		}
		sh, err := compileShader(st.src, st.kind, st.name)
		if err != nil {
			gl.DeleteProgram(program)
			return 0, err
		}
		gl.AttachShader(program, sh)
		// Flagged for deletion, freed with the program.
		gl.DeleteShader(sh)
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := infoLog(logLen, func(buf *uint8) { gl.GetProgramInfoLog(program, logLen, nil, buf) })
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", log)
	}

	return program, nil
}

// compileShader compiles a single shader of the given type.
func compileShader(source string, shaderType uint32, name string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := infoLog(logLen, func(buf *uint8) { gl.GetShaderInfoLog(shader, logLen, nil, buf) })
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %s", name, log)
	}

	return shader, nil
}

func infoLog(n int32, read func(*uint8)) string {
	if n <= 0 {
		return "no info log"
	}
	buf := make([]byte, n)
	read(&buf[0])
	return strings.TrimRight(string(buf), "\x00\n")
}

// Use binds the program.
func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

// Delete releases the program.
func (p *Program) Delete() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
}

// Uniform returns the cached location of name, -1 if inactive.
func (p *Program) Uniform(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.ID, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc
}

// Setters silently skip uniforms the compiler optimized away.

func (p *Program) SetFloat(name string, v float32) {
	if loc := p.Uniform(name); loc >= 0 {
		gl.Uniform1f(loc, v)
	}
}

func (p *Program) SetInt(name string, v int32) {
	if loc := p.Uniform(name); loc >= 0 {
		gl.Uniform1i(loc, v)
	}
}

func (p *Program) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	p.SetInt(name, i)
}

func (p *Program) SetVec2(name string, x, y float32) {
	if loc := p.Uniform(name); loc >= 0 {
		gl.Uniform2f(loc, x, y)
	}
}

func (p *Program) SetVec3(name string, x, y, z float32) {
	if loc := p.Uniform(name); loc >= 0 {
		gl.Uniform3f(loc, x, y, z)
	}
}

func (p *Program) SetMat3(name string, m *float32) {
	if loc := p.Uniform(name); loc >= 0 {
		gl.UniformMatrix3fv(loc, 1, false, m)
	}
}

func (p *Program) SetMat4(name string, m *float32) {
	if loc := p.Uniform(name); loc >= 0 {
		gl.UniformMatrix4fv(loc, 1, false, m)
	}
}
