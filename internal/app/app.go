// Package app ties the viewer state, camera, assets and renderer together
// and runs them under one of two frontends.
package app

import (
	"fmt"
	"image"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/shapeshift/internal/assets"
	"github.com/Faultbox/shapeshift/internal/config"
	"github.com/Faultbox/shapeshift/internal/engine/camera"
	"github.com/Faultbox/shapeshift/internal/engine/debug"
	"github.com/Faultbox/shapeshift/internal/engine/renderer"
	"github.com/Faultbox/shapeshift/internal/engine/texture"
	"github.com/Faultbox/shapeshift/internal/logger"
	"github.com/Faultbox/shapeshift/internal/viewer"
)

// Fallback texture parameters.
const (
	stripeSize   = 256
	stripePeriod = 32
)

// App is the application context shared by both frontends.
type App struct {
	cfg *config.Config
	log *zap.Logger

	viewer   *viewer.Viewer
	camera   *camera.OrbitCamera
	assets   *assets.Manager
	watcher  *assets.Watcher
	shots    *debug.Screenshots
	renderer *renderer.Renderer

	start time.Time
	now   func() time.Time

	title      string
	screenshot bool
	quit       bool
}

// New builds everything that does not need a GL context.
func New(cfg *config.Config) (*App, error) {
	settings, err := cfg.ViewerSettings()
	if err != nil {
		return nil, fmt.Errorf("viewer settings: %w", err)
	}

	cam := camera.NewOrbitCamera()
	cam.FovY = cfg.Camera.FOV
	cam.Near = cfg.Camera.Near
	cam.Far = cfg.Camera.Far
	cam.DragSensitivity = cfg.Camera.DragSensitivity
	cam.ZoomSensitivity = cfg.Camera.ZoomSensitivity
	cam.EaseRecenter = cfg.Camera.EaseRecenter

	a := &App{
		cfg:    cfg,
		log:    logger.Named("app"),
		viewer: viewer.New(settings, nil),
		camera: cam,
		assets: assets.NewManager(),
		shots:  debug.NewScreenshots(cfg.Screenshots.Dir, "shapeshift"),
		now:    time.Now,
	}
	a.start = a.now()

	if dir := cfg.Assets.ShaderDir; dir != "" {
		if err := a.assets.Mount(assets.ShaderDir, dir); err != nil {
			return nil, fmt.Errorf("shader override: %w", err)
		}
		a.log.Info("shader override mounted", zap.String("dir", dir))

		if cfg.Assets.WatchShaders {
			w, err := assets.Watch(dir)
			if err != nil {
				a.log.Warn("shader hot reload disabled", zap.Error(err))
			} else {
				a.watcher = w
			}
		}
	}
	return a, nil
}

// initGraphics creates the renderer and uploads the startup texture.
// The GL context must be current.
func (a *App) initGraphics(width, height int) error {
	r, err := renderer.New(renderer.Config{Width: width, Height: height}, a.assets)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	a.renderer = r
	a.setTexture(a.cfg.Assets.Texture)
	return nil
}

// releaseGraphics frees GL resources. Must run before the context goes.
func (a *App) releaseGraphics() {
	if a.renderer != nil {
		a.renderer.Close()
		a.renderer = nil
	}
}

// Close releases everything.
func (a *App) Close() {
	a.releaseGraphics()
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			a.log.Warn("closing shader watcher", zap.Error(err))
		}
		a.watcher = nil
	}
	a.assets.Close()
}

// Apply performs a user action.
func (a *App) Apply(act viewer.Action) {
	a.log.Debug("action", zap.Stringer("action", act))
	switch act {
	case viewer.ActionNone:
	case viewer.ActionQuit:
		a.quit = true
	case viewer.ActionScreenshot:
		a.screenshot = true
	case viewer.ActionReload:
		a.reload()
	default:
		a.viewer.Apply(act)
	}
}

// reload rereads every shader source and rebuilds the mesh.
func (a *App) reload() {
	a.viewer.Apply(viewer.ActionReload)
	a.assets.Invalidate()
	if a.renderer == nil {
		return
	}
	if err := a.renderer.ReloadShaders(); err != nil {
		a.log.Error("shader reload failed", zap.Error(err))
	}
}

func (a *App) elapsed() float32 {
	return float32(a.now().Sub(a.start).Seconds())
}

// step advances one frame of state: file changes, rebuilds, the camera
// and the deformation animation.
func (a *App) step() viewer.FrameState {
	if a.watcher != nil {
		if changed := a.watcher.Pending(); len(changed) > 0 {
			a.log.Info("shader files changed", zap.Strings("files", changed))
			a.reload()
		}
	}

	rebuilt, err := a.viewer.Update()
	if err != nil {
		a.log.Error("mesh rebuild failed", zap.Error(err))
	}
	if rebuilt {
		a.camera.Retarget(a.viewer.Mesh().Center)
	}
	a.camera.Update()
	return a.viewer.Frame(a.elapsed())
}

// draw renders fs into the bound target of the given pixel size.
func (a *App) draw(fs viewer.FrameState, width, height int) {
	if w, h := a.renderer.Size(); w != width || h != height {
		a.renderer.Resize(width, height)
	}
	a.renderer.SetMesh(a.viewer.Mesh())

	aspect := float32(width) / float32(max(height, 1))
	a.renderer.Draw(fs, a.camera.ViewMatrix(), a.camera.ProjectionMatrix(aspect))
}

// titleChanged returns the window title when it differs from the last call.
func (a *App) titleChanged() (string, bool) {
	t := a.viewer.Title()
	if t == a.title {
		return "", false
	}
	a.title = t
	return t, true
}

// saveScreenshot writes bottom-up RGBA rows and clears the request.
func (a *App) saveScreenshot(pixels []byte, width, height int) {
	a.screenshot = false
	path, err := a.shots.SavePixels(pixels, width, height)
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

func (a *App) setTexture(path string) {
	a.renderer.SetTexture(a.loadTexture(path))
}

// loadTexture decodes path, or the embedded texture for "". Any failure
// falls back to generated stripes.
func (a *App) loadTexture(path string) *image.RGBA {
	var data []byte
	var err error
	if path == "" {
		data, err = a.assets.Load(assets.DefaultTexture)
	} else {
		data, err = os.ReadFile(path)
	}
	if err == nil {
		var img *image.RGBA
		if img, err = texture.Decode(data); err == nil {
			a.log.Debug("texture loaded",
				zap.String("path", path),
				zap.Int("width", img.Bounds().Dx()),
				zap.Int("height", img.Bounds().Dy()),
			)
			return img
		}
	}
	a.log.Warn("texture load failed, using stripes", zap.String("path", path), zap.Error(err))
	return texture.Stripes(stripeSize, stripeSize, stripePeriod)
}
