package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/shapeshift/internal/engine/camera"
	"github.com/Faultbox/shapeshift/internal/viewer"
)

func TestActionForKey(t *testing.T) {
	tests := []struct {
		key  sdl.Keycode
		want viewer.Action
	}{
		{sdl.K_SPACE, viewer.ActionCyclePrimitive},
		{sdl.K_c, viewer.ActionToggleColors},
		{sdl.K_n, viewer.ActionToggleNormals},
		{sdl.K_g, viewer.ActionToggleGrid},
		{sdl.K_q, viewer.ActionCycleQuality},
		{sdl.K_w, viewer.ActionToggleWireframe},
		{sdl.K_RETURN, viewer.ActionReload},
		{sdl.K_F12, viewer.ActionScreenshot},
		{sdl.K_ESCAPE, viewer.ActionQuit},
		{sdl.K_x, viewer.ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			if got := ActionForKey(tt.key); got != tt.want {
				t.Errorf("ActionForKey = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCameraButton(t *testing.T) {
	tests := map[uint8]camera.Button{
		sdl.BUTTON_LEFT:   camera.ButtonLeft,
		sdl.BUTTON_MIDDLE: camera.ButtonMiddle,
		sdl.BUTTON_RIGHT:  camera.ButtonRight,
		sdl.BUTTON_X1:     camera.ButtonNone,
	}
	for b, want := range tests {
		if got := CameraButton(b); got != want {
			t.Errorf("CameraButton(%d) = %v, want %v", b, got, want)
		}
	}
}

func TestTranslate(t *testing.T) {
	ev, ok := translate(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_g}})
	if !ok || ev.Type != EventKeyDown || ev.Key != sdl.K_g {
		t.Errorf("key down = %+v, %v", ev, ok)
	}

	ev, ok = translate(&sdl.WindowEvent{Event: sdl.WINDOWEVENT_RESIZED, Data1: 800, Data2: 600})
	if !ok || ev.Type != EventWindowResize || ev.Width != 800 || ev.Height != 600 {
		t.Errorf("resize = %+v, %v", ev, ok)
	}

	ev, ok = translate(&sdl.MouseWheelEvent{Y: 2, Direction: sdl.MOUSEWHEEL_FLIPPED})
	if !ok || ev.Wheel != -2 {
		t.Errorf("flipped wheel = %+v, %v", ev, ok)
	}

	if _, ok := translate(&sdl.WindowEvent{Event: sdl.WINDOWEVENT_MOVED}); ok {
		t.Error("window move should be dropped")
	}
}

func TestDispatch(t *testing.T) {
	cam := camera.NewOrbitCamera()
	yaw, dist := cam.Yaw, cam.Distance

	events := []Event{
		{Type: EventKeyDown, Key: sdl.K_n},
		{Type: EventKeyDown, Key: sdl.K_n, Repeat: true},
		{Type: EventMouseDown, Button: sdl.BUTTON_LEFT, MouseX: 10, MouseY: 10},
		{Type: EventMouseMove, MouseX: 40, MouseY: 10},
		{Type: EventMouseUp, Button: sdl.BUTTON_LEFT},
		{Type: EventMouseMove, MouseX: 90, MouseY: 10},
		{Type: EventMouseWheel, Wheel: 1},
		{Type: EventKeyDown, Key: sdl.K_ESCAPE},
	}
	actions := Dispatch(events, cam)

	want := []viewer.Action{viewer.ActionToggleNormals, viewer.ActionQuit}
	if len(actions) != len(want) {
		t.Fatalf("actions = %v, want %v", actions, want)
	}
	for i := range want {
		if actions[i] != want[i] {
			t.Errorf("actions[%d] = %v, want %v", i, actions[i], want[i])
		}
	}

	wantYaw := yaw - 30*cam.DragSensitivity
	if d := cam.Yaw - wantYaw; d > 1e-5 || d < -1e-5 {
		t.Errorf("yaw = %v, want %v (move after release must not rotate)", cam.Yaw, wantYaw)
	}
	if cam.Distance >= dist {
		t.Errorf("wheel did not dolly in: %v >= %v", cam.Distance, dist)
	}
	if cam.Dragging() {
		t.Error("still dragging after mouse up")
	}
}
