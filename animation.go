package showcase

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Default timings shared by media, page and transition animations.
const (
	defaultShowDuration = 1.0
	defaultHideDuration = 1.0
)

// tweenField drives one float value through a gween tween.
type tweenField struct {
	tween *gween.Tween
	apply func(float64)
}

// Task is a handle to an in-flight animation: zero or more tweened fields
// that share a duration, an optional start delay and completion callbacks.
// A Task with no fields is a timer.
//
// Cancel is idempotent and safe at any point, including from inside another
// task's completion callback. A cancelled task never runs its callbacks.
type Task struct {
	duration float32
	delay    float32
	elapsed  float32
	easing   ease.TweenFunc
	fields   []tweenField
	onDone   []func()

	done      bool
	cancelled bool
}

// Field adds a tweened value. apply is called with from immediately and with
// every intermediate value until the task finishes.
func (t *Task) Field(from, to float64, apply func(float64)) *Task {
	if t.done || t.cancelled {
		return t
	}
	t.fields = append(t.fields, tweenField{
		tween: gween.New(float32(from), float32(to), t.duration, t.easing),
		apply: apply,
	})
	apply(from)
	return t
}

// Delay postpones the start of the task by d seconds.
func (t *Task) Delay(d float32) *Task {
	t.delay = d
	return t
}

// OnDone registers fn to run once the task completes. If the task has
// already completed fn runs immediately; if it was cancelled fn never runs.
func (t *Task) OnDone(fn func()) *Task {
	switch {
	case t.cancelled:
	case t.done:
		fn()
	default:
		t.onDone = append(t.onDone, fn)
	}
	return t
}

// Cancel stops the task without running its callbacks. Values keep whatever
// they were last set to.
func (t *Task) Cancel() {
	if t == nil || t.done || t.cancelled {
		return
	}
	t.cancelled = true
	t.onDone = nil
}

// Done reports whether the task ran to completion.
func (t *Task) Done() bool {
	return t != nil && t.done
}

// Cancelled reports whether the task was cancelled before completing.
func (t *Task) Cancelled() bool {
	return t != nil && t.cancelled
}

// Active reports whether the task is still running.
func (t *Task) Active() bool {
	return t != nil && !t.done && !t.cancelled
}

// update advances the task by dt seconds. Returns true when the task has
// finished (completed or cancelled) and can be dropped.
func (t *Task) update(dt float32) bool {
	if t.cancelled {
		return true
	}
	if t.done {
		return true
	}
	if t.delay > 0 {
		t.delay -= dt
		if t.delay > 0 {
			return false
		}
		dt = -t.delay
		t.delay = 0
	}

	t.elapsed += dt
	allDone := t.elapsed >= t.duration
	for _, f := range t.fields {
		val, finished := f.tween.Update(dt)
		f.apply(float64(val))
		if !finished {
			allDone = false
		}
	}
	if !allDone {
		return false
	}
	t.complete()
	return true
}

// completedTask returns a task that has already finished.
func completedTask() *Task {
	t := &Task{}
	t.complete()
	return t
}

func (t *Task) complete() {
	t.done = true
	callbacks := t.onDone
	t.onDone = nil
	for _, fn := range callbacks {
		fn()
	}
}

// Animator owns every running Task. There is no global animation manager:
// the owner calls Update once per tick.
type Animator struct {
	tasks []*Task
}

// NewAnimator creates an empty animator.
func NewAnimator() *Animator {
	return &Animator{}
}

// Animate starts a task of the given duration. Add values with Field.
func (a *Animator) Animate(duration float32, fn ease.TweenFunc) *Task {
	if fn == nil {
		fn = ease.Linear
	}
	t := &Task{duration: duration, easing: fn}
	a.tasks = append(a.tasks, t)
	return t
}

// Wait starts a timer task that completes after d seconds.
func (a *Animator) Wait(d float32) *Task {
	return a.Animate(d, ease.Linear)
}

// Update advances all tasks by dt seconds and drops finished ones. Tasks
// started from completion callbacks begin advancing on the next Update.
func (a *Animator) Update(dt float32) {
	n := len(a.tasks)
	for i := 0; i < n; i++ {
		a.tasks[i].update(dt)
	}
	kept := a.tasks[:0]
	for _, t := range a.tasks {
		if t.Active() {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(a.tasks); i++ {
		a.tasks[i] = nil
	}
	a.tasks = kept
}

// Len returns the number of running tasks.
func (a *Animator) Len() int {
	return len(a.tasks)
}

// CancelAll cancels every running task.
func (a *Animator) CancelAll() {
	for _, t := range a.tasks {
		t.Cancel()
	}
	a.tasks = a.tasks[:0]
}
