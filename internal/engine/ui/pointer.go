package ui

import (
	"github.com/Faultbox/shapeshift/internal/engine/camera"
)

// PointerState is a snapshot of the mouse for one frame.
type PointerState struct {
	X, Y  float32
	Down  [3]bool // left, middle, right
	Wheel float32
}

var pointerButtons = [3]camera.Button{camera.ButtonLeft, camera.ButtonMiddle, camera.ButtonRight}

// pointerTracker turns per-frame button levels into camera press, drag
// and release calls.
type pointerTracker struct {
	prev   [3]bool
	active int // index into pointerButtons, -1 when idle
}

func newPointerTracker() *pointerTracker {
	return &pointerTracker{active: -1}
}

// feed applies s to cam. When captured is set, the panel owns the mouse
// and no new gesture starts, but a drag already in progress continues.
func (pt *pointerTracker) feed(cam *camera.OrbitCamera, s PointerState, captured bool) {
	if pt.active >= 0 {
		if s.Down[pt.active] {
			cam.MouseDrag(s.X, s.Y)
		} else {
			cam.MouseUp()
			pt.active = -1
		}
	}
	if pt.active < 0 && !captured {
		for i, down := range s.Down {
			if down && !pt.prev[i] {
				cam.MouseDown(pointerButtons[i], s.X, s.Y)
				pt.active = i
				break
			}
		}
		if s.Wheel != 0 {
			cam.HandleZoom(s.Wheel)
		}
	}
	pt.prev = s.Down
}
