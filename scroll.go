package showcase

const (
	defaultScrollLerp = 0.1
	pageScrollSnap    = 0.01
)

// ScrollState is one damped scroll axis. Input only writes Target (and the
// drag baselines Last/Start); Current advances solely through Damp, once per
// tick.
type ScrollState struct {
	Current float64
	Target  float64
	// Last is the drag baseline or the previous Current, depending on the
	// track.
	Last  float64
	Start float64
	// Velocity is the auto-drift added to Target per tick (About galleries).
	Velocity float64
	Lerp     float64
	// Limit is the maximum scroll distance for clamped tracks.
	Limit     float64
	Direction Direction
}

// NewScrollState creates a resting scroll axis with the given lerp factor.
func NewScrollState(lerp float64) ScrollState {
	return ScrollState{Lerp: lerp}
}

// Damp moves Current one interpolation step toward Target.
func (s *ScrollState) Damp() {
	s.Current = Interpolate(s.Current, s.Target, s.Lerp)
}

// ClampTarget restricts Target to [lo, hi].
func (s *ScrollState) ClampTarget(lo, hi float64) {
	s.Target = Clamp(lo, hi, s.Target)
}

// Reset puts the axis at rest at v.
func (s *ScrollState) Reset(v float64) {
	s.Current = v
	s.Target = v
	s.Last = v
	s.Start = v
}

// horizontalDirection derives the travel direction from the previous and
// current damped values. No change keeps the previous direction.
func horizontalDirection(prev, current float64, keep Direction) Direction {
	switch {
	case prev > current:
		return DirectionLeft
	case prev < current:
		return DirectionRight
	default:
		return keep
	}
}

// verticalDirection derives the vertical travel direction. Growing scroll
// moves content down the scene.
func verticalDirection(prev, current float64, keep Direction) Direction {
	switch {
	case prev < current:
		return DirectionDown
	case prev > current:
		return DirectionUp
	default:
		return keep
	}
}
