package viewer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Faultbox/shapeshift/pkg/math"
)

// ErrUnknownMode is returned when a deformation name does not parse.
var ErrUnknownMode = errors.New("unknown deformation mode")

// Mode is a vertex-shader deformation.
type Mode int

const (
	ModePlane Mode = iota
	ModeTwist
	ModeSquash
	ModeSquash2
	ModeSphere
	ModeCustom23
	ModeCustom123

	// NumModes is the number of deformation modes.
	NumModes int = iota
)

// Uniform is a bit set of the per-frame values a deformation program reads.
type Uniform uint16

const (
	UniformMix Uniform = 1 << iota
	UniformWorldUp
	UniformAngle
	UniformHeight
	UniformCenter
	UniformTime
	UniformBlend
	UniformMove
	UniformLimits
)

// Has reports whether every bit of other is set in u.
func (u Uniform) Has(other Uniform) bool {
	return u&other == other
}

const baseUniforms = UniformMix | UniformWorldUp | UniformAngle | UniformHeight | UniformCenter | UniformTime

// Palette is the fixed color cue of a mode.
type Palette struct {
	Foreground math.Vec3
	Background math.Vec3
}

var (
	paletteCyan  = Palette{Foreground: math.Vec3{X: 0, Y: 0.9, Z: 1.0}, Background: math.Vec3{X: 0.7, Y: 0.4, Z: 0.3}}
	paletteCream = Palette{Foreground: math.Vec3{X: 0.9, Y: 1.0, Z: 0.7}, Background: math.Vec3{X: 0.5, Y: 0.2, Z: 0.7}}
	paletteGreen = Palette{Foreground: math.Vec3{X: 0.4, Y: 1.0, Z: 0.4}, Background: math.Vec3{X: 0.7, Y: 0.2, Z: 0.5}}
	paletteOlive = Palette{Foreground: math.Vec3{X: 0.9, Y: 1.0, Z: 0.7}, Background: math.Vec3{X: 0.4, Y: 0.7, Z: 0.2}}
)

// Capability describes what a mode needs from the renderer.
type Capability struct {
	Name     string
	Shader   string
	Uniforms Uniform
	Palette  Palette
}

var capabilities = [NumModes]Capability{
	ModePlane:     {"Plane", "plane", baseUniforms | UniformBlend | UniformMove, paletteCyan},
	ModeTwist:     {"Twist", "twist", baseUniforms, paletteCream},
	ModeSquash:    {"Squash", "squash", baseUniforms | UniformLimits, paletteCyan},
	ModeSquash2:   {"Squash2", "squash2", baseUniforms | UniformLimits, paletteCream},
	ModeSphere:    {"Sphere", "sphere", baseUniforms, paletteGreen},
	ModeCustom23:  {"Custom23", "custom23", baseUniforms | UniformLimits, paletteOlive},
	ModeCustom123: {"Custom123", "custom123", baseUniforms | UniformLimits, paletteCyan},
}

// Capability returns the table entry of m; invalid modes map to Plane.
func (m Mode) Capability() Capability {
	if !m.Valid() {
		return capabilities[ModePlane]
	}
	return capabilities[m]
}

// Valid reports whether m is a defined mode.
func (m Mode) Valid() bool {
	return m >= 0 && int(m) < NumModes
}

func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return capabilities[m].Name
}

// ModeNames returns the display names in enum order.
func ModeNames() []string {
	names := make([]string, NumModes)
	for i, c := range capabilities {
		names[i] = c.Name
	}
	return names
}

// ShaderNames returns the program name of every mode in enum order.
func ShaderNames() []string {
	names := make([]string, NumModes)
	for i, c := range capabilities {
		names[i] = c.Shader
	}
	return names
}

// ParseMode looks a mode up by name, case-insensitively.
func ParseMode(name string) (Mode, error) {
	for i, c := range capabilities {
		if strings.EqualFold(c.Name, name) {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// ViewMode selects shaded or wireframe rendering.
type ViewMode int

const (
	Shaded ViewMode = iota
	Wireframe
)

func (v ViewMode) String() string {
	if v == Wireframe {
		return "Wireframe"
	}
	return "Shaded"
}

// Toggle flips between shaded and wireframe.
func (v ViewMode) Toggle() ViewMode {
	if v == Wireframe {
		return Shaded
	}
	return Wireframe
}
