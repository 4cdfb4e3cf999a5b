package main

import (
	"image/color"

	"driftfield/internal/convert"
	"driftfield/internal/engine2D"
	"driftfield/internal/engine2D/drift"
	"driftfield/internal/scene"
	"driftfield/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Window struct {
	scene     *scene.Scene
	bgColor   color.RGBA
	objects   []engine2D.RenderObject
	clock     *engine2D.Clock
	modelKind drift.Kind

	parallaxX float64
	parallaxY float64
}

func NewWindow(sc *scene.Scene) *Window {
	red, green, blue := scene.ParseColor(sc.General.ClearColor)
	return &Window{
		scene:     sc,
		bgColor:   color.RGBA{uint8(red * 255), uint8(green * 255), uint8(blue * 255), 255},
		modelKind: drift.ParseKind(sc.General.Model),
	}
}

func (w *Window) Run() {
	rl.SetTraceLogCallback(utils.RaylibLogCallback)
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(
		int32(w.scene.General.Projection.Width),
		int32(w.scene.General.Projection.Height),
		"driftfield",
	)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	w.loadObjects()
	w.clock = engine2D.NewClock()

	for !rl.WindowShouldClose() {
		w.Update()

		rl.BeginDrawing()
		w.Draw()
		rl.EndDrawing()
	}
}

func (w *Window) loadObjects() {
	for i := range w.scene.Layers {
		layer := &w.scene.Layers[i]
		if !layer.Visible.GetBool() {
			continue
		}

		tint := rl.White
		if layer.Color != "" {
			r, g, b := scene.ParseColor(layer.Color)
			tint = rl.NewColor(uint8(r*255), uint8(g*255), uint8(b*255), 255)
		}

		utils.Debug("Adding layer: %s (%d sprites)", layer.Name, layer.Count)
		w.objects = append(w.objects, engine2D.RenderObject{
			Field:   engine2D.NewField(&w.scene.General, i, layer, w.modelKind),
			Texture: w.layerTexture(layer),
			Tint:    tint,
		})
	}
}

// layerTexture loads the layer's image, falling back to a soft radial dot
// when the layer has no image or loading fails.
func (w *Window) layerTexture(layer *scene.Layer) rl.Texture2D {
	if layer.Image != "" {
		tex, err := convert.LoadSpriteTexture(layer.Image)
		if err == nil {
			return tex
		}
		utils.Error("Failed to load texture for layer %s from %s: %v", layer.Name, layer.Image, err)
	}
	img := rl.GenImageGradientRadial(int(layer.Size.X), int(layer.Size.Y), 0.4, rl.White, rl.Blank)
	defer rl.UnloadImage(img)
	return rl.LoadTextureFromImage(img)
}

func (w *Window) Update() {
	dt := w.clock.Tick()

	w.updateParallax()

	// Canvas dimensions track the live window, so a resize simply flows
	// through as new frame inputs.
	frame := drift.Frame{
		CanvasW: float64(rl.GetScreenWidth()),
		CanvasH: float64(rl.GetScreenHeight()),
		Dt:      dt,
		Elapsed: w.clock.Elapsed(),
	}
	for i := range w.objects {
		w.objects[i].Field.Advance(frame)
	}
}

// updateParallax reads the global pointer so the wallpaper reacts to the
// mouse even without focus. Degrades to no offset when X11 is unavailable.
func (w *Window) updateParallax() {
	if !w.scene.General.CameraParallax {
		return
	}
	mx, my, err := utils.GetGlobalMousePosition()
	if err != nil {
		return
	}
	monitor := rl.GetCurrentMonitor()
	monW := rl.GetMonitorWidth(monitor)
	monH := rl.GetMonitorHeight(monitor)
	if monW <= 0 || monH <= 0 {
		return
	}
	w.parallaxX = float64(mx)/float64(monW)*2 - 1
	w.parallaxY = float64(my)/float64(monH)*2 - 1
}

func (w *Window) Draw() {
	rl.ClearBackground(rl.NewColor(w.bgColor.R, w.bgColor.G, w.bgColor.B, 255))

	amount := w.scene.General.CameraParallaxAmount
	for i := range w.objects {
		obj := &w.objects[i]
		layer := obj.Field.Layer

		// Camera parallax formula: mouse distance * amount * depth, with a
		// base multiplier of 100 for visible movement.
		depth := layer.Depth.GetFloatOr(0.5)
		offX := w.parallaxX * amount * 100 * depth
		offY := w.parallaxY * amount * 100 * depth

		src := rl.NewRectangle(0, 0, float32(obj.Texture.Width), float32(obj.Texture.Height))
		origin := rl.NewVector2(float32(layer.Size.X)/2, float32(layer.Size.Y)/2)

		for _, sprite := range obj.Field.Sprites {
			if !sprite.Visible {
				continue
			}
			dest := rl.NewRectangle(
				float32(sprite.Pos.X+offX),
				float32(sprite.Pos.Y+offY),
				float32(layer.Size.X),
				float32(layer.Size.Y),
			)
			rl.DrawTexturePro(obj.Texture, src, dest, origin, 0, obj.Tint)
		}
	}

	if utils.DebugMode {
		rl.DrawFPS(10, 10)
	}
}
