package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/shapeshift/internal/engine/camera"
	"github.com/Faultbox/shapeshift/internal/viewer"
)

// Keymap binds keys to viewer actions.
var Keymap = map[sdl.Keycode]viewer.Action{
	sdl.K_SPACE:    viewer.ActionCyclePrimitive,
	sdl.K_c:        viewer.ActionToggleColors,
	sdl.K_n:        viewer.ActionToggleNormals,
	sdl.K_g:        viewer.ActionToggleGrid,
	sdl.K_q:        viewer.ActionCycleQuality,
	sdl.K_w:        viewer.ActionToggleWireframe,
	sdl.K_RETURN:   viewer.ActionReload,
	sdl.K_KP_ENTER: viewer.ActionReload,
	sdl.K_F12:      viewer.ActionScreenshot,
	sdl.K_ESCAPE:   viewer.ActionQuit,
}

// ActionForKey returns the action bound to key, ActionNone if unbound.
func ActionForKey(key sdl.Keycode) viewer.Action {
	if a, ok := Keymap[key]; ok {
		return a
	}
	return viewer.ActionNone
}

// CameraButton maps an SDL mouse button to the camera gesture it drives.
func CameraButton(b uint8) camera.Button {
	switch b {
	case sdl.BUTTON_LEFT:
		return camera.ButtonLeft
	case sdl.BUTTON_MIDDLE:
		return camera.ButtonMiddle
	case sdl.BUTTON_RIGHT:
		return camera.ButtonRight
	}
	return camera.ButtonNone
}

// Dispatch feeds a frame's events to the camera and returns the key
// actions in order. Resize events are left to the caller.
func Dispatch(events []Event, cam *camera.OrbitCamera) []viewer.Action {
	var actions []viewer.Action
	for _, e := range events {
		switch e.Type {
		case EventQuit:
			actions = append(actions, viewer.ActionQuit)
		case EventKeyDown:
			if e.Repeat {
				continue
			}
			if a := ActionForKey(e.Key); a != viewer.ActionNone {
				actions = append(actions, a)
			}
		case EventMouseDown:
			if b := CameraButton(e.Button); b != camera.ButtonNone {
				cam.MouseDown(b, float32(e.MouseX), float32(e.MouseY))
			}
		case EventMouseMove:
			if cam.Dragging() {
				cam.MouseDrag(float32(e.MouseX), float32(e.MouseY))
			}
		case EventMouseUp:
			cam.MouseUp()
		case EventMouseWheel:
			cam.HandleZoom(e.Wheel)
		}
	}
	return actions
}
