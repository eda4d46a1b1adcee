package shader

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/shapeshift/internal/logger"
)

// Spec names a program and the asset files of each stage, concatenated
// in order.
type Spec struct {
	Name     string
	Vertex   []string
	Geometry []string
	Fragment []string
}

// Sources resolves asset files to text.
type Sources interface {
	Source(names ...string) (string, error)
}

// Library owns a set of named programs built from Specs.
type Library struct {
	src      Sources
	specs    []Spec
	programs map[string]*Program

	compile func(name string, s Stages) (*Program, error)
}

// NewLibrary creates an empty library. Call Reload to build the programs.
func NewLibrary(src Sources, specs ...Spec) *Library {
	return &Library{
		src:      src,
		specs:    specs,
		programs: make(map[string]*Program, len(specs)),
		compile:  Compile,
	}
}

// Reload rebuilds every program. A program that fails keeps its
// previous version, or stays absent if it never built. The returned
// error combines all failures.
func (l *Library) Reload() error {
	var errs error
	built := 0
	for _, spec := range l.specs {
		p, err := l.build(spec)
		if err != nil {
			logger.Warn("shader program failed",
				zap.String("program", spec.Name),
				zap.Bool("kept_previous", l.programs[spec.Name] != nil),
				zap.Error(err),
			)
			errs = multierr.Append(errs, err)
			continue
		}
		if old := l.programs[spec.Name]; old != nil {
			old.Delete()
		}
		l.programs[spec.Name] = p
		built++
	}
	logger.Info("shaders loaded", zap.Int("built", built), zap.Int("failed", len(multierr.Errors(errs))))
	return errs
}

func (l *Library) build(spec Spec) (*Program, error) {
	var s Stages
	var err error
	if s.Vertex, err = l.source(spec.Vertex); err != nil {
		return nil, fmt.Errorf("program %s: %w", spec.Name, err)
	}
	if s.Geometry, err = l.source(spec.Geometry); err != nil {
		return nil, fmt.Errorf("program %s: %w", spec.Name, err)
	}
	if s.Fragment, err = l.source(spec.Fragment); err != nil {
		return nil, fmt.Errorf("program %s: %w", spec.Name, err)
	}
	return l.compile(spec.Name, s)
}

func (l *Library) source(names []string) (string, error) {
	if len(names) == 0 {
		return "", nil
	}
	return l.src.Source(names...)
}

// Get returns the named program, nil if it has never built.
func (l *Library) Get(name string) *Program {
	return l.programs[name]
}

// Close deletes every program.
func (l *Library) Close() {
	for name, p := range l.programs {
		p.Delete()
		delete(l.programs, name)
	}
}
