package drift

import "math"

// Kind selects which of the two coexisting motion algorithms drives a
// sprite. They do not produce identical trajectories: the incremental
// stepper recycles seamlessly with near-zero backoff and no waiting phase,
// while the analytic journey reproduces the absolute-time semantics older
// scenes were authored against, including the off-screen delay. Neither
// supersedes the other; scenes pick one by configuration.
type Kind int

const (
	Incremental Kind = iota
	Analytic
)

// ParseKind maps a scene configuration string to a model kind. Unknown or
// empty names fall back to Incremental.
func ParseKind(name string) Kind {
	if name == "analytic" {
		return Analytic
	}
	return Incremental
}

// SpriteConfig carries every static per-sprite parameter. Speed is derived
// internally from depth and motion scale; zero TimeMultiplier means 1x.
type SpriteConfig struct {
	Seed  string
	Layer int
	Index int

	Depth          float64
	AngleDeg       float64
	MotionScale    float64
	TimeMultiplier float64
	StartPhase     float64
	Delay          float64
	SpriteW        float64
	SpriteH        float64
	SafetyMargin   float64 // 0 means DefaultSafetyMargin
	Backoff        float64 // 0 means DefaultBackoff
	GridU, GridV   float64 // analytic model's initial grid position
}

// Frame is the per-frame input supplied by the caller. Dt drives the
// incremental model, Elapsed the analytic one; canvas dimensions may change
// between frames (resize) and a zero-area canvas is a no-op frame.
type Frame struct {
	CanvasW, CanvasH float64
	Dt               float64
	Elapsed          float64
}

// Output is one sprite's world-pixel position and whether the renderer
// should draw it. For an invisible analytic sprite the position holds the
// scaled sentinel coordinates and must not be interpreted.
type Output struct {
	Pos     Vec2
	Visible bool
}

// Model advances one sprite, one call per animation frame. Implementations
// hold no cross-sprite shared state, so sprites can be advanced in parallel.
type Model interface {
	Advance(f Frame) Output
}

// New builds a motion model of the given kind for one sprite.
func New(kind Kind, cfg SpriteConfig) Model {
	if cfg.SafetyMargin == 0 {
		cfg.SafetyMargin = DefaultSafetyMargin
	}
	if cfg.Backoff == 0 {
		cfg.Backoff = DefaultBackoff
	}
	if cfg.TimeMultiplier == 0 {
		cfg.TimeMultiplier = 1
	}

	if kind == Analytic {
		return &analyticModel{j: Journey{
			Seed:           cfg.Seed,
			Layer:          cfg.Layer,
			Index:          cfg.Index,
			U:              cfg.GridU,
			V:              cfg.GridV,
			AngleDeg:       cfg.AngleDeg,
			Depth:          cfg.Depth,
			MotionScale:    cfg.MotionScale,
			TimeMultiplier: cfg.TimeMultiplier,
			StartPhase:     cfg.StartPhase,
			Delay:          cfg.Delay,
			SpriteW:        cfg.SpriteW,
			SpriteH:        cfg.SpriteH,
			SafetyMargin:   cfg.SafetyMargin,
		}}
	}

	rad := cfg.AngleDeg * math.Pi / 180
	return &incrementalModel{
		cfg:   cfg,
		dir:   Vec2{math.Cos(rad), math.Sin(rad)},
		speed: Speed(Clamp01(cfg.Depth), cfg.MotionScale),
		st: Stepper{
			Seed:  cfg.Seed,
			Layer: cfg.Layer,
			Index: cfg.Index,
		},
	}
}

// incrementalModel owns explicit per-sprite mutable state carried across
// frames; frame N is always computed from frame N-1's committed state.
type incrementalModel struct {
	cfg    SpriteConfig
	dir    Vec2
	speed  float64
	st     Stepper
	placed bool
}

func (m *incrementalModel) Advance(f Frame) Output {
	if f.CanvasW <= 0 || f.CanvasH <= 0 {
		return Output{Pos: m.st.Pos, Visible: false}
	}
	radius := SpriteRadius(m.cfg.SpriteW, m.cfg.SpriteH, m.cfg.SafetyMargin)
	padded := PaddedRect(f.CanvasW, f.CanvasH, radius)
	if !m.placed {
		m.st.Place(padded, m.dir, m.cfg.Backoff)
		m.placed = true
	}
	visible := m.st.Step(padded, m.dir, m.speed, f.Dt*m.cfg.TimeMultiplier, m.cfg.Backoff)
	return Output{Pos: m.st.Pos, Visible: visible}
}

// analyticModel recomputes position from absolute elapsed time every call;
// the only state it needs is the shared frame clock the caller supplies.
type analyticModel struct {
	j Journey
}

func (m *analyticModel) Advance(f Frame) Output {
	u, v, visible := m.j.At(f.Elapsed, f.CanvasW, f.CanvasH)
	return Output{
		Pos:     Vec2{u * f.CanvasW, v * f.CanvasH},
		Visible: visible,
	}
}
