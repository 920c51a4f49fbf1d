package showcase

// syntheticEvent is a single injected input event in viewport pixels.
type syntheticEvent struct {
	wheel   bool
	pixelX  float64
	pixelY  float64
	x, y    float64
	pressed bool
}

// InjectPress queues a pointer press at the given viewport coordinates.
// The event is consumed on the next Process call.
func (in *Input) InjectPress(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (in *Input) InjectMove(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at the given coordinates.
func (in *Input) InjectRelease(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticEvent{x: x, y: y})
}

// InjectWheel queues a normalized wheel event.
func (in *Input) InjectWheel(pixelX, pixelY float64) {
	in.injectQueue = append(in.injectQueue, syntheticEvent{wheel: true, pixelX: pixelX, pixelY: pixelY})
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 2 (press + release).
func (in *Input) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	in.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		in.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	in.InjectRelease(toX, toY)
}

// Pending returns the number of queued synthetic events.
func (in *Input) Pending() int {
	return len(in.injectQueue)
}

// processInjected pops one event from the inject queue and dispatches it.
// Returns true if an event was consumed (real input is skipped).
func (in *Input) processInjected(h InputHandler) bool {
	if len(in.injectQueue) == 0 {
		return false
	}
	evt := in.injectQueue[0]
	copy(in.injectQueue, in.injectQueue[1:])
	in.injectQueue = in.injectQueue[:len(in.injectQueue)-1]

	if evt.wheel {
		h.OnWheel(WheelEvent{PixelX: evt.pixelX, PixelY: evt.pixelY})
		return true
	}
	in.processPointer(evt.x, evt.y, evt.pressed, h)
	return true
}
