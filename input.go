package showcase

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// wheelLineHeight converts wheel "lines" into pixels, matching the line-mode
// factor browsers' normalize-wheel helpers use.
const wheelLineHeight = 40.0

// Axis is one dimension of a drag gesture in viewport pixels. Distance is
// Start - End, so dragging toward -X gives a positive distance.
type Axis struct {
	Start    float64
	End      float64
	Distance float64
}

// TouchEvent carries the state of a drag gesture.
type TouchEvent struct {
	X, Y Axis
}

// WheelEvent is a normalized wheel delta in pixels. Positive PixelY means
// scrolling down the page.
type WheelEvent struct {
	PixelX, PixelY float64
}

// NormalizeWheel converts ebiten wheel offsets (positive = up/left) into a
// pixel WheelEvent (positive = down/right).
func NormalizeWheel(xoff, yoff float64) WheelEvent {
	return WheelEvent{PixelX: -xoff * wheelLineHeight, PixelY: -yoff * wheelLineHeight}
}

// InputHandler receives pointer and wheel events. Tracks, the Canvas and the
// App all implement it.
type InputHandler interface {
	OnTouchDown(TouchEvent)
	OnTouchMove(TouchEvent)
	OnTouchUp(TouchEvent)
	OnWheel(WheelEvent)
}

// --- Per-pointer state ---

type pointerState struct {
	down   bool
	startX float64
	startY float64
	lastX  float64
	lastY  float64
}

func (ps *pointerState) event(x, y float64) TouchEvent {
	return TouchEvent{
		X: Axis{Start: ps.startX, End: x, Distance: ps.startX - x},
		Y: Axis{Start: ps.startY, End: y, Distance: ps.startY - y},
	}
}

// Input turns ebiten mouse, touch and wheel state into InputHandler calls.
// Only one pointer drives the gallery: the mouse, or the first touch while
// the mouse is up.
type Input struct {
	pointer      pointerState
	touchID      ebiten.TouchID
	touchActive  bool
	prevTouchIDs []ebiten.TouchID

	injectQueue []syntheticEvent
}

// NewInput creates an idle input tracker.
func NewInput() *Input {
	return &Input{}
}

// Process reads this frame's input and dispatches it to h. A queued
// synthetic event replaces real pointer input for the frame.
func (in *Input) Process(h InputHandler) {
	if in.processInjected(h) {
		return
	}

	if xoff, yoff := ebiten.Wheel(); xoff != 0 || yoff != 0 {
		h.OnWheel(NormalizeWheel(xoff, yoff))
	}

	if x, y, pressed, ok := in.readTouch(); ok {
		in.processPointer(x, y, pressed, h)
		return
	}
	mx, my := ebiten.CursorPosition()
	in.processPointer(float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), h)
}

// readTouch follows the first active touch. ok is false when no touch is
// (or was, last frame) in progress.
func (in *Input) readTouch() (x, y float64, pressed, ok bool) {
	ids := ebiten.AppendTouchIDs(in.prevTouchIDs[:0])
	in.prevTouchIDs = ids

	if in.touchActive {
		for _, id := range ids {
			if id == in.touchID {
				tx, ty := ebiten.TouchPosition(id)
				return float64(tx), float64(ty), true, true
			}
		}
		in.touchActive = false
		return in.pointer.lastX, in.pointer.lastY, false, true
	}
	if len(ids) == 0 || in.pointer.down {
		return 0, 0, false, false
	}
	in.touchID = ids[0]
	in.touchActive = true
	tx, ty := ebiten.TouchPosition(ids[0])
	return float64(tx), float64(ty), true, true
}

// processPointer runs the press/move/release state machine for the single
// tracked pointer.
func (in *Input) processPointer(x, y float64, pressed bool, h InputHandler) {
	ps := &in.pointer
	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y
		h.OnTouchDown(ps.event(x, y))
	case pressed && ps.down:
		if x != ps.lastX || y != ps.lastY {
			h.OnTouchMove(ps.event(x, y))
		}
		ps.lastX, ps.lastY = x, y
	case !pressed && ps.down:
		ps.down = false
		h.OnTouchUp(ps.event(x, y))
		ps.lastX, ps.lastY = x, y
	default:
		ps.lastX, ps.lastY = x, y
	}
}

// Dragging reports whether a pointer is currently held down.
func (in *Input) Dragging() bool {
	return in.pointer.down
}
