package showcase

import (
	"testing"
)

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "wheel", "y": 300},
			{"action": "drag", "fromX": 500, "fromY": 250, "toX": 300, "toY": 250, "frames": 4},
			{"action": "wait", "frames": 3},
			{"action": "navigate", "url": "/about"},
			{"action": "resize", "width": 800, "height": 400}
		]
	}`)

	runner, err := LoadScript(data, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(runner.steps))
	}
	if runner.steps[1].Action != "drag" || runner.steps[1].ToX != 300 || runner.steps[1].Frames != 4 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[3].URL != "/about" {
		t.Error("step 3 mismatch")
	}
	if runner.Done() {
		t.Error("fresh runner reports done")
	}
}

func TestLoadScriptErrors(t *testing.T) {
	tests := map[string]string{
		"invalid json":    `not json`,
		"empty":           `{"steps": []}`,
		"unknown action":  `{"steps": [{"action": "click"}]}`,
		"navigate no url": `{"steps": [{"action": "navigate"}]}`,
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadScript([]byte(data), nil)
			if err == nil {
				t.Fatal("expected error")
			}
			if !ScriptError.Has(err) {
				t.Errorf("error %v is not a ScriptError", err)
			}
		})
	}
}

func runScript(t *testing.T, a *App, data string, maxFrames int) *ScriptRunner {
	t.Helper()
	runner, err := LoadScript([]byte(data), nil)
	if err != nil {
		t.Fatal(err)
	}
	a.SetScript(runner)
	for i := 0; i < maxFrames && !runner.Done(); i++ {
		tick(a)
	}
	if !runner.Done() {
		t.Fatalf("script not done after %d frames", maxFrames)
	}
	return runner
}

func TestRunnerWheelAndDrag(t *testing.T) {
	a := newTestApp(t, "/")
	runScript(t, a, `{"steps": [
		{"action": "wheel", "x": 100},
		{"action": "wait", "frames": 300},
		{"action": "drag", "fromX": 500, "fromY": 250, "toX": 200, "toY": 250, "frames": 5}
	]}`, 400)

	h := a.Canvas().Track().(*Home)
	for i := 0; i < 300; i++ {
		tick(a)
	}
	// The grid settled 100px right before the press. The last move of a
	// five-frame drag is three quarters of the way, 225px to the left.
	if !approxEqual(h.Scroll().X, 100-225, 1e-6) {
		t.Errorf("home scroll x = %v, want -125", h.Scroll().X)
	}
}

func TestRunnerWait(t *testing.T) {
	a := newTestApp(t, "/")
	runner, err := LoadScript([]byte(`{"steps": [{"action": "wait", "frames": 3}]}`), nil)
	if err != nil {
		t.Fatal(err)
	}
	a.SetScript(runner)

	frames := 0
	for !runner.Done() && frames < 10 {
		tick(a)
		frames++
	}
	// Three frames of waiting plus the frame that notices the end.
	if frames != 4 {
		t.Errorf("wait took %d frames, want 4", frames)
	}
}

func TestRunnerNavigateWaitsForPage(t *testing.T) {
	a := newTestApp(t, "/")
	runScript(t, a, `{"steps": [
		{"action": "navigate", "url": "/about"},
		{"action": "resize", "width": 800, "height": 400}
	]}`, 300)

	if a.URL() != "/about" {
		t.Errorf("url = %q, want /about", a.URL())
	}
	if got := a.Canvas().Screen().Viewport; got != (Viewport{Width: 800, Height: 400}) {
		t.Errorf("viewport = %v, want 800x400", got)
	}
}

func TestRunnerBadNavigationContinues(t *testing.T) {
	a := newTestApp(t, "/")
	runScript(t, a, `{"steps": [
		{"action": "navigate", "url": "/missing"},
		{"action": "wait", "frames": 1}
	]}`, 10)
	if a.URL() != "/" {
		t.Errorf("url = %q after a bad navigation", a.URL())
	}
}

func TestRunnerScreenshotQueuesCapture(t *testing.T) {
	a := newTestApp(t, "/")
	runScript(t, a, `{"steps": [{"action": "screenshot", "label": "home"}]}`, 5)
	if len(a.screenshots) != 1 || a.screenshots[0] != "home" {
		t.Errorf("queued screenshots = %v, want [home]", a.screenshots)
	}
}
