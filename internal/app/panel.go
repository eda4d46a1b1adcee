package app

import (
	"fmt"

	"github.com/Faultbox/shapeshift/internal/config"
	"github.com/Faultbox/shapeshift/internal/engine/framebuffer"
	"github.com/Faultbox/shapeshift/internal/engine/ui"
)

// RunPanel runs the viewer behind the ImGui parameter panel. The scene
// renders into a framebuffer shown as the window background.
func RunPanel(cfg *config.Config) error {
	a, err := New(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	b, err := ui.NewBackend(a.viewer.Title(), cfg.Graphics.Width, cfg.Graphics.Height)
	if err != nil {
		return fmt.Errorf("failed to create ui backend: %w", err)
	}
	if err := a.initGraphics(cfg.Graphics.Width, cfg.Graphics.Height); err != nil {
		return err
	}
	defer a.releaseGraphics()

	fb, err := framebuffer.New(int32(cfg.Graphics.Width), int32(cfg.Graphics.Height))
	if err != nil {
		return fmt.Errorf("failed to create scene framebuffer: %w", err)
	}
	defer fb.Destroy()

	p := ui.NewPanel()
	if cfg.Assets.Texture != "" {
		p.SetTextureName(cfg.Assets.Texture)
	}

	a.log.Info("starting render loop")
	b.Run(func() { a.renderPanel(b, p, fb) })
	return nil
}

func (a *App) renderPanel(b *ui.Backend, p *ui.Panel, fb *framebuffer.Framebuffer) {
	// Dialog picks arrive here so the upload happens on the GL thread
	if path, ok := p.PendingTexture(); ok {
		a.setTexture(path)
		p.SetTextureName(path)
	}
	for _, act := range p.Actions() {
		a.Apply(act)
	}

	x, y, w, h := b.GetViewport()
	sx, sy := ui.FramebufferScale()
	pw, ph := int32(w*sx), int32(h*sy)
	fb.Resize(pw, ph)
	pw, ph = fb.Size()

	fs := a.step()
	restore := fb.Bind()
	a.draw(fs, int(pw), int(ph))
	if a.screenshot {
		a.saveScreenshot(fb.ReadPixels(), int(pw), int(ph))
	}
	restore()

	p.DrawScene(x, y, w, h, fb.ColorTexture(), a.camera)
	p.Draw(x, y, a.viewer)

	if title, ok := a.titleChanged(); ok {
		b.SetWindowTitle(title)
	}
	if a.quit {
		b.SetShouldClose(true)
	}
}
