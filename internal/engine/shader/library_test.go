package shader

import (
	"fmt"
	"strings"
	"testing"

	"go.uber.org/multierr"
)

type mapSources map[string]string

func (m mapSources) Source(names ...string) (string, error) {
	var b strings.Builder
	for _, n := range names {
		s, ok := m[n]
		if !ok {
			return "", fmt.Errorf("missing %s", n)
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

// fakeCompile fails any stage containing "broken".
func fakeCompile(calls *[]Stages) func(string, Stages) (*Program, error) {
	return func(name string, s Stages) (*Program, error) {
		*calls = append(*calls, s)
		if strings.Contains(s.Vertex+s.Geometry+s.Fragment, "broken") {
			return nil, fmt.Errorf("program %s: vertex shader: syntax error", name)
		}
		return &Program{Name: name, uniforms: map[string]int32{}}, nil
	}
}

func newTestLibrary(src mapSources, calls *[]Stages) *Library {
	l := NewLibrary(src,
		Spec{Name: "plane", Vertex: []string{"prelude", "plane.vert"}, Fragment: []string{"phong.frag"}},
		Spec{Name: "wire", Vertex: []string{"wire.vert"}, Geometry: []string{"wire.geom"}, Fragment: []string{"wire.frag"}},
	)
	l.compile = fakeCompile(calls)
	return l
}

func TestLibraryReloadComposesStages(t *testing.T) {
	var calls []Stages
	src := mapSources{
		"prelude": "P;", "plane.vert": "V;", "phong.frag": "F;",
		"wire.vert": "WV;", "wire.geom": "WG;", "wire.frag": "WF;",
	}
	l := newTestLibrary(src, &calls)
	if err := l.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if len(calls) != 2 {
		t.Fatalf("compiled %d programs, want 2", len(calls))
	}
	if calls[0].Vertex != "P;V;" || calls[0].Geometry != "" || calls[0].Fragment != "F;" {
		t.Errorf("plane stages = %+v", calls[0])
	}
	if calls[1].Geometry != "WG;" {
		t.Errorf("wire geometry = %q", calls[1].Geometry)
	}
	if l.Get("plane") == nil || l.Get("wire") == nil {
		t.Error("programs missing after Reload")
	}
	if l.Get("nope") != nil {
		t.Error("Get of unknown program returned non-nil")
	}
}

func TestLibraryFailureKeepsPrevious(t *testing.T) {
	var calls []Stages
	src := mapSources{
		"prelude": "P;", "plane.vert": "V;", "phong.frag": "F;",
		"wire.vert": "WV;", "wire.geom": "WG;", "wire.frag": "WF;",
	}
	l := newTestLibrary(src, &calls)
	if err := l.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	good := l.Get("plane")

	src["plane.vert"] = "broken"
	err := l.Reload()
	if err == nil {
		t.Fatal("expected reload error")
	}
	if l.Get("plane") != good {
		t.Error("failed reload replaced the previous program")
	}
	if l.Get("wire") == nil {
		t.Error("healthy program lost on partial failure")
	}
}

func TestLibraryAggregatesErrors(t *testing.T) {
	var calls []Stages
	src := mapSources{
		"prelude": "P;", "plane.vert": "broken", "phong.frag": "F;",
		"wire.vert": "WV;", "wire.frag": "WF;", // wire.geom missing
	}
	l := newTestLibrary(src, &calls)
	err := l.Reload()
	if got := len(multierr.Errors(err)); got != 2 {
		t.Fatalf("Reload returned %d errors, want 2: %v", got, err)
	}
	if l.Get("plane") != nil || l.Get("wire") != nil {
		t.Error("a program that never built should stay absent")
	}
	for _, e := range multierr.Errors(err) {
		if !strings.Contains(e.Error(), "plane") && !strings.Contains(e.Error(), "wire") {
			t.Errorf("error %q does not name its program", e)
		}
	}
}

func TestLibraryClose(t *testing.T) {
	var calls []Stages
	src := mapSources{
		"prelude": "", "plane.vert": "V", "phong.frag": "F",
		"wire.vert": "", "wire.geom": "", "wire.frag": "",
	}
	l := newTestLibrary(src, &calls)
	if err := l.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	l.Close()
	if l.Get("plane") != nil {
		t.Error("program survived Close")
	}
}
