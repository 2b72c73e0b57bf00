package tabstrip

// Animation constants, tuned for the 60 TPS game loop.
const (
	snapAnimSpeed  = 0.25 // lerp factor for the animated drag-end snap
	decelAnimSpeed = 0.12 // lerp factor for inertial deceleration
	springTension  = 0.12
	springFriction = 0.82
	animEpsilon    = 0.5 // px distance at which an animation completes
)

type animPhase int

const (
	animIdle animPhase = iota
	animEase
	animSpring
	animDecel
)

// animator moves the scroll offset toward a target over successive ticks.
// It is fire-and-forget: a new command simply replaces the target and phase
// (last command wins), and nothing waits on completion. The one exception
// is the deceleration phase, whose completion is reported to the caller so
// the tracker can re-confirm the settle.
type animator struct {
	phase  animPhase
	target float64
	vel    float64
}

func (a *animator) active() bool { return a.phase != animIdle }

func (a *animator) cancel() {
	a.phase = animIdle
	a.vel = 0
}

// ease starts an animated snap toward target.
func (a *animator) ease(target float64) {
	a.phase = animEase
	a.target = target
}

// spring starts a spring-like scroll toward target (tap-to-select).
func (a *animator) spring(target float64) {
	if a.phase != animSpring {
		a.vel = 0
	}
	a.phase = animSpring
	a.target = target
}

// decelerate starts the inertial run toward an already-snapped target.
func (a *animator) decelerate(target float64) {
	a.phase = animDecel
	a.target = target
}

// step advances one tick from cur and returns the next offset.
// decelerated is true on the tick an animDecel run reaches its target.
func (a *animator) step(cur float64) (next float64, decelerated bool) {
	switch a.phase {
	case animEase:
		next = lerp(cur, a.target, snapAnimSpeed)
	case animDecel:
		next = lerp(cur, a.target, decelAnimSpeed)
	case animSpring:
		a.vel = (a.vel + (a.target-cur)*springTension) * springFriction
		next = cur + a.vel
		if abs(a.target-next) < animEpsilon && abs(a.vel) < animEpsilon {
			a.cancel()
			return a.target, false
		}
		return next, false
	default:
		return cur, false
	}
	if abs(a.target-next) < animEpsilon {
		done := a.phase == animDecel
		a.cancel()
		return a.target, done
	}
	return next, false
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
