package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/shapeshift/internal/config"
	"github.com/Faultbox/shapeshift/internal/engine/framebuffer"
	"github.com/Faultbox/shapeshift/internal/engine/input"
	"github.com/Faultbox/shapeshift/internal/engine/window"
)

// RunLite runs the viewer in a plain SDL window driven by keyboard and
// mouse only.
func RunLite(cfg *config.Config) error {
	a, err := New(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	// Create window (this also creates OpenGL context)
	win, err := window.New(window.Config{
		Title:      a.viewer.Title(),
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		HighDPI:    cfg.Graphics.HighDPI,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer win.Close()

	width, height := win.DrawableSize()
	if err := a.initGraphics(width, height); err != nil {
		return err
	}
	defer a.releaseGraphics()

	in := input.New()
	frameCount := 0
	fpsTimer := time.Now()

	a.log.Info("starting render loop")
	for !a.quit {
		in.Update()
		for _, e := range in.Events() {
			if e.Type == input.EventWindowResize {
				width, height = win.DrawableSize()
			}
		}
		for _, act := range input.Dispatch(in.Events(), a.camera) {
			a.Apply(act)
		}

		fs := a.step()
		a.draw(fs, width, height)
		if a.screenshot {
			a.saveScreenshot(framebuffer.ReadScreen(int32(width), int32(height)), width, height)
		}
		if title, ok := a.titleChanged(); ok {
			win.SetTitle(title)
		}

		win.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}
	return nil
}
