package assets

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedShaders(t *testing.T) {
	m := NewManager()
	names := []string{
		"deform.glsl", "plane.vert", "twist.vert", "squash.vert", "squash2.vert",
		"sphere.vert", "custom23.vert", "custom123.vert", "phong.frag",
		"wireframe.vert", "wireframe.geom", "wireframe.frag", "lines.vert", "lines.frag",
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			data, err := m.Load(ShaderDir + "/" + name)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if len(data) == 0 {
				t.Fatal("empty shader")
			}
		})
	}
}

func TestEmbeddedTextureIsPNG(t *testing.T) {
	data, err := NewManager().Load(DefaultTexture)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")) {
		t.Error("default texture is not a PNG")
	}
}

func TestSourceConcatenates(t *testing.T) {
	src, err := NewManager().Source("shaders/deform.glsl", "shaders/twist.vert")
	if err != nil {
		t.Fatalf("Source: %v", err)
	}
	if !strings.HasPrefix(src, "#version 410 core") {
		t.Error("composed source does not start with the version line")
	}
	if strings.Count(src, "void main()") != 1 {
		t.Errorf("composed source has %d main functions, want 1", strings.Count(src, "void main()"))
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := NewManager().Load("shaders/nope.vert")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Load() = %v, want ErrNotFound", err)
	}
}

func TestMountOverrides(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "twist.vert"), []byte("override"), 0644); err != nil {
		t.Fatal(err)
	}

	m := NewManager()
	before, err := m.Load("shaders/twist.vert")
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Mount(ShaderDir, dir); err != nil {
		t.Fatalf("Mount: %v", err)
	}

	got, err := m.Load("shaders/twist.vert")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "override" {
		t.Errorf("Load() = %q, want override", got)
	}

	// Files absent from the mount fall through to the embedded set.
	if _, err := m.Load("shaders/plane.vert"); err != nil {
		t.Errorf("fallthrough Load: %v", err)
	}

	m.Close()
	got, err = m.Load("shaders/twist.vert")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, before) {
		t.Error("Close did not drop the override")
	}
}

func TestMountRejectsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "f")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}
	m := NewManager()
	if err := m.Mount(ShaderDir, file); err == nil {
		t.Error("expected error mounting a file")
	}
	if err := m.Mount(ShaderDir, filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error mounting a missing dir")
	}
}

func TestInvalidateRereads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lines.frag")
	if err := os.WriteFile(path, []byte("v1"), 0644); err != nil {
		t.Fatal(err)
	}
	m := NewManager()
	if err := m.Mount(ShaderDir, dir); err != nil {
		t.Fatal(err)
	}
	if got, _ := m.Load("shaders/lines.frag"); string(got) != "v1" {
		t.Fatalf("Load() = %q, want v1", got)
	}

	if err := os.WriteFile(path, []byte("v2"), 0644); err != nil {
		t.Fatal(err)
	}
	if got, _ := m.Load("shaders/lines.frag"); string(got) != "v1" {
		t.Errorf("cached Load() = %q, want v1", got)
	}
	m.Invalidate()
	if got, _ := m.Load("shaders/lines.frag"); string(got) != "v2" {
		t.Errorf("Load() after Invalidate = %q, want v2", got)
	}
}

func TestCacheStats(t *testing.T) {
	c := NewCache()
	c.Get("a")
	c.Set("a", []byte{1})
	c.Get("a")
	c.Get("a")
	if hits, misses := c.Stats(); hits != 2 || misses != 1 {
		t.Errorf("Stats() = %d/%d, want 2/1", hits, misses)
	}
	c.Clear()
	if hits, misses := c.Stats(); hits != 0 || misses != 0 {
		t.Errorf("Stats() after Clear = %d/%d", hits, misses)
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := Watch(dir)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if got := w.Pending(); len(got) != 0 {
		t.Fatalf("Pending() before any write = %v", got)
	}
	if err := os.WriteFile(filepath.Join(dir, "plane.vert"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		for _, name := range w.Pending() {
			if name == "plane.vert" {
				return
			}
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("no change reported for plane.vert")
}

func TestWatchMissingDir(t *testing.T) {
	if _, err := Watch(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error watching a missing dir")
	}
}
