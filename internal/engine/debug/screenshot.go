// Package debug provides capture helpers for inspecting the viewer.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Screenshots writes numbered PNG captures into a directory.
type Screenshots struct {
	dir    string
	prefix string
	now    func() time.Time
	seq    int
}

// NewScreenshots creates a capture helper. An empty dir writes to the
// working directory.
func NewScreenshots(dir, prefix string) *Screenshots {
	return &Screenshots{dir: dir, prefix: prefix, now: time.Now}
}

// Filename returns the path the next capture will use.
func (s *Screenshots) Filename() string {
	name := fmt.Sprintf("%s_%s_%03d.png", s.prefix, s.now().Format("2006-01-02_15-04-05"), s.seq)
	if s.dir == "" {
		return name
	}
	return filepath.Join(s.dir, name)
}

// SavePixels saves bottom-up RGBA rows as read back from GL.
func (s *Screenshots) SavePixels(pixels []byte, width, height int) (string, error) {
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	row := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * row
		copy(img.Pix[y*img.Stride:y*img.Stride+row], pixels[src:src+row])
	}
	return s.Save(img)
}

// Save writes img as the next capture and returns its path.
func (s *Screenshots) Save(img image.Image) (string, error) {
	if s.dir != "" {
		if err := os.MkdirAll(s.dir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	path := s.Filename()
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	s.seq++
	return path, nil
}
