package engine2D

import (
	"driftfield/internal/engine2D/drift"
	"driftfield/internal/scene"
)

// SpriteState is one sprite's latest per-frame output, owned by its field.
type SpriteState struct {
	Pos     drift.Vec2
	Visible bool
}

// Field animates one scene layer's sprite population. Each sprite gets its
// own motion model and its own state slot; nothing is shared between
// sprites, so a field could be sharded across workers without locks.
type Field struct {
	Layer   *scene.Layer
	Sprites []SpriteState

	models []drift.Model
}

// NewField builds one motion model per sprite from the layer configuration.
// The scene seed plus layer/sprite indices key every respawn draw, so two
// fields built from the same scene animate identically.
func NewField(general *scene.General, layerIndex int, layer *scene.Layer, kind drift.Kind) *Field {
	f := &Field{
		Layer:   layer,
		Sprites: make([]SpriteState, layer.Count),
		models:  make([]drift.Model, layer.Count),
	}
	for i := 0; i < layer.Count; i++ {
		u, v := layer.Grid(i)
		f.models[i] = drift.New(kind, drift.SpriteConfig{
			Seed:           general.Seed,
			Layer:          layerIndex,
			Index:          i,
			Depth:          layer.SpriteDepth(i),
			AngleDeg:       layer.Angle,
			MotionScale:    layer.EffectiveMotionScale(general),
			TimeMultiplier: layer.TimeMultiplier,
			StartPhase:     layer.StartPhase,
			Delay:          layer.Delay,
			SpriteW:        layer.Size.X,
			SpriteH:        layer.Size.Y,
			GridU:          u,
			GridV:          v,
		})
	}
	return f
}

// Advance steps every sprite for this frame. A zero-area canvas (mid-resize)
// leaves the previous outputs untouched.
func (f *Field) Advance(frame drift.Frame) {
	if frame.CanvasW <= 0 || frame.CanvasH <= 0 {
		return
	}
	for i, m := range f.models {
		out := m.Advance(frame)
		f.Sprites[i] = SpriteState{Pos: out.Pos, Visible: out.Visible}
	}
}
