package scene

import (
	"encoding/json"
	"math"
	"os"
	"strconv"
	"strings"
)

// Load reads and parses a scene JSON file, filling in defaults for anything
// the file leaves out. Malformed layers degrade to defaults rather than
// failing the whole scene.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Scene
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	s.ApplyDefaults()
	return &s, nil
}

// ApplyDefaults fills zero-valued fields with workable values.
func (s *Scene) ApplyDefaults() {
	if s.General.Projection.Width <= 0 || s.General.Projection.Height <= 0 {
		s.General.Projection.Width, s.General.Projection.Height = 1280, 720
	}
	if s.General.Seed == "" {
		s.General.Seed = "driftfield"
	}
	if s.General.ClearColor == "" {
		s.General.ClearColor = "0.05 0.06 0.1"
	}
	for i := range s.Layers {
		l := &s.Layers[i]
		if l.Count <= 0 {
			l.Count = 24
		}
		if l.Size.X <= 0 {
			l.Size.X = 32
		}
		if l.Size.Y <= 0 {
			l.Size.Y = 32
		}
		if l.TimeMultiplier == 0 {
			l.TimeMultiplier = 1
		}
	}
}

// Grid returns sprite i's normalized (u, v) position on the layer's implicit
// square-ish grid, cell-centered so the population covers the canvas evenly.
func (l *Layer) Grid(i int) (u, v float64) {
	cols := int(math.Ceil(math.Sqrt(float64(l.Count))))
	if cols < 1 {
		cols = 1
	}
	rows := (l.Count + cols - 1) / cols
	col := i % cols
	row := i / cols
	return (float64(col) + 0.5) / float64(cols), (float64(row) + 0.5) / float64(rows)
}

// SpriteDepth returns sprite i's normalized depth. An explicit layer depth
// wins; otherwise depth derives from the sprite's grid row, so lower rows
// read as nearer, the way the original grid scenes were authored.
func (l *Layer) SpriteDepth(i int) float64 {
	if l.Depth.IsSet() {
		return clamp01(l.Depth.GetFloat())
	}
	_, v := l.Grid(i)
	return clamp01(v)
}

// EffectiveMotionScale combines the scene-wide scale with the layer's own.
// Both default to 1x when absent.
func (l *Layer) EffectiveMotionScale(g *General) float64 {
	scale := g.MotionScale.GetFloatOr(1) * l.MotionScale.GetFloatOr(1)
	if scale < 0 {
		return 0
	}
	return scale
}

// ParseColor parses a space-separated "r g b" float triple in [0, 1].
// Anything unparseable reads as black.
func ParseColor(colorStr string) (r, g, b float64) {
	parts := strings.Fields(colorStr)
	if len(parts) < 3 {
		return 0, 0, 0
	}
	r, _ = strconv.ParseFloat(parts[0], 64)
	g, _ = strconv.ParseFloat(parts[1], 64)
	b, _ = strconv.ParseFloat(parts[2], 64)
	return r, g, b
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
