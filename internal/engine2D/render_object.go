package engine2D

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// RenderObject pairs a sprite field with the texture and tint the window
// draws it with.
type RenderObject struct {
	Field   *Field
	Texture rl.Texture2D
	Tint    rl.Color
}
