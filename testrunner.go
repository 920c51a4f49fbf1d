package showcase

import (
	"encoding/json"

	"github.com/zeebo/errs"
	"go.uber.org/zap"
)

// ScriptError is the error class for scripted session failures.
var ScriptError = errs.Class("script")

// scriptStep is a single action in a script.
type scriptStep struct {
	Action string  `json:"action"`
	URL    string  `json:"url,omitempty"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// script is the top-level JSON structure of a session.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// Script actions.
const (
	actionWheel      = "wheel"
	actionDrag       = "drag"
	actionNavigate   = "navigate"
	actionResize     = "resize"
	actionWait       = "wait"
	actionScreenshot = "screenshot"
)

// ScriptRunner sequences injected input, navigation and resizes across
// frames for automated sessions. Attach to an App via SetScript.
type ScriptRunner struct {
	log       *zap.Logger
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON session script.
func LoadScript(jsonData []byte, log *zap.Logger) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, ScriptError.Wrap(err)
	}
	if len(s.Steps) == 0 {
		return nil, ScriptError.New("no steps")
	}
	for i, st := range s.Steps {
		switch st.Action {
		case actionWheel, actionDrag, actionResize, actionWait, actionScreenshot:
		case actionNavigate:
			if st.URL == "" {
				return nil, ScriptError.New("step %d: navigate without url", i)
			}
		default:
			return nil, ScriptError.New("step %d: unknown action %q", i, st.Action)
		}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ScriptRunner{log: log, steps: s.Steps}, nil
}

// Done reports whether every step has run.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from App.Update.
func (r *ScriptRunner) step(a *App) {
	if r.done {
		return
	}
	// Wait for pending injections and navigations to drain before advancing.
	if a.input.Pending() > 0 || a.Pending() {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case actionWheel:
		a.input.InjectWheel(st.X, st.Y)
	case actionDrag:
		a.input.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case actionNavigate:
		if err := a.Navigate(st.URL); err != nil {
			r.log.Warn("script navigation failed", zap.String("url", st.URL), zap.Error(err))
		}
	case actionResize:
		a.OnResize(Viewport{Width: st.Width, Height: st.Height})
	case actionScreenshot:
		a.Screenshot(st.Label)
	case actionWait:
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && a.input.Pending() == 0 && !a.Pending() {
		r.done = true
	}
}
