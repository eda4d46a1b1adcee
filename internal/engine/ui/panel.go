package ui

import (
	"path/filepath"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/shapeshift/internal/engine/camera"
	"github.com/Faultbox/shapeshift/internal/logger"
	"github.com/Faultbox/shapeshift/internal/viewer"
)

const panelWidth = 300

// panelKeys are the keyboard shortcuts of the panel frontend. Escape is
// left to ImGui, which uses it to leave text fields.
var panelKeys = []struct {
	key    imgui.Key
	action viewer.Action
}{
	{imgui.KeySpace, viewer.ActionCyclePrimitive},
	{imgui.KeyC, viewer.ActionToggleColors},
	{imgui.KeyN, viewer.ActionToggleNormals},
	{imgui.KeyG, viewer.ActionToggleGrid},
	{imgui.KeyQ, viewer.ActionCycleQuality},
	{imgui.KeyW, viewer.ActionToggleWireframe},
	{imgui.KeyEnter, viewer.ActionReload},
	{imgui.KeyKeypadEnter, viewer.ActionReload},
	{imgui.KeyF12, viewer.ActionScreenshot},
}

// Panel is the "Transformations" parameter window plus the scene
// background it floats over.
type Panel struct {
	transform []binding
	mesh      []binding

	pointer *pointerTracker

	// Path picked in the file dialog, consumed on the main thread
	pendingTexture chan string
	textureName    string
}

// NewPanel creates the panel.
func NewPanel() *Panel {
	return &Panel{
		transform:      transformBindings(),
		mesh:           meshBindings(),
		pointer:        newPointerTracker(),
		pendingTexture: make(chan string, 1),
	}
}

// SetTextureName shows path as the loaded texture.
func (p *Panel) SetTextureName(path string) {
	p.textureName = filepath.Base(path)
}

// PendingTexture returns a path picked in the file dialog since the last
// call.
func (p *Panel) PendingTexture() (string, bool) {
	select {
	case path := <-p.pendingTexture:
		return path, true
	default:
		return "", false
	}
}

// DrawScene covers the work area with the rendered scene texture and
// feeds the mouse to cam while no panel wants it.
func (p *Panel) DrawScene(x, y, w, h float32, textureID uint32, cam *camera.OrbitCamera) {
	if textureID != 0 {
		imgui.SetNextWindowPos(imgui.NewVec2(x, y))
		imgui.SetNextWindowSize(imgui.NewVec2(w, h))

		flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
			imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
			imgui.WindowFlagsNoScrollWithMouse | imgui.WindowFlagsNoBringToFrontOnFocus |
			imgui.WindowFlagsNoInputs

		imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.NewVec2(0, 0))
		if imgui.BeginV("##Scene", nil, flags) {
			texRef := imgui.NewTextureRefTextureID(imgui.TextureID(textureID))
			imgui.ImageV(*texRef,
				imgui.NewVec2(w, h),
				imgui.NewVec2(0, 1), // UV flipped
				imgui.NewVec2(1, 0))
		}
		imgui.End()
		imgui.PopStyleVar()
	}

	io := imgui.CurrentIO()
	pos := imgui.MousePos()
	p.pointer.feed(cam, PointerState{
		X: pos.X,
		Y: pos.Y,
		Down: [3]bool{
			imgui.IsMouseDown(imgui.MouseButtonLeft),
			imgui.IsMouseDown(imgui.MouseButtonMiddle),
			imgui.IsMouseDown(imgui.MouseButtonRight),
		},
		Wheel: io.MouseWheel(),
	}, io.WantCaptureMouse())
}

// Actions returns the shortcuts pressed this frame, none while a widget
// has keyboard focus.
func (p *Panel) Actions() []viewer.Action {
	if imgui.CurrentIO().WantCaptureKeyboard() {
		return nil
	}
	var actions []viewer.Action
	for _, k := range panelKeys {
		if IsKeyPressed(k.key) {
			actions = append(actions, k.action)
		}
	}
	return actions
}

// Draw renders the parameter window at the top left of the work area.
func (p *Panel) Draw(x, y float32, v *viewer.Viewer) {
	imgui.SetNextWindowPos(imgui.NewVec2(x+10, y+10))
	imgui.SetNextWindowSize(imgui.NewVec2(panelWidth, 0)) // Auto height
	if imgui.BeginV("Transformations", nil, imgui.WindowFlagsNoMove|imgui.WindowFlagsNoResize) {
		for _, b := range p.transform {
			b.draw(v)
		}
		imgui.Separator()
		for _, b := range p.mesh {
			b.draw(v)
		}
		imgui.Separator()
		if imgui.Button("Load Texture...") {
			p.openTextureDialog()
		}
		if p.textureName != "" {
			imgui.SameLine()
			imgui.TextDisabled(p.textureName)
		}
	}
	imgui.End()
}

// openTextureDialog shows a native file dialog. The pick is queued for
// the main thread, which owns the GL context.
func (p *Panel) openTextureDialog() {
	go func() {
		filename, err := dialog.File().
			Filter("Images", "png", "jpg", "jpeg", "bmp").
			Filter("All Files", "*").
			Title("Load Texture").
			Load()

		if err != nil {
			if err != dialog.ErrCancelled {
				logger.Warn("file dialog failed", zap.Error(err))
			}
			return
		}

		select {
		case p.pendingTexture <- filename:
		default:
			// an unconsumed pick is still queued
		}
	}()
}

func (b comboBinding) draw(v *viewer.Viewer) {
	current := b.get(v)
	preview := ""
	if current >= 0 && current < len(b.items) {
		preview = b.items[current]
	}
	if imgui.BeginCombo(b.label, preview) {
		for i, item := range b.items {
			selected := i == current
			if imgui.SelectableBoolV(item, selected, 0, imgui.NewVec2(0, 0)) {
				b.set(v, i)
			}
			if selected {
				imgui.SetItemDefaultFocus()
			}
		}
		imgui.EndCombo()
	}
}

func (b checkBinding) draw(v *viewer.Viewer) {
	on := b.get(v)
	if imgui.Checkbox(b.label, &on) {
		b.set(v, on)
	}
}

func (b floatBinding) draw(v *viewer.Viewer) {
	val := b.get(v)
	if imgui.SliderFloatV(b.label, &val, b.min, b.max, "%.2f", imgui.SliderFlagsNone) {
		b.set(v, val)
	}
}

func (b intBinding) draw(v *viewer.Viewer) {
	val := int32(b.get(v))
	if imgui.SliderIntV(b.label, &val, int32(b.min), int32(b.max), "%d", imgui.SliderFlagsNone) {
		b.set(v, int(val))
	}
}
