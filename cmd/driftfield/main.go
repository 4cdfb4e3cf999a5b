package main

import (
	"flag"
	"os"

	"driftfield/internal/scene"
	"driftfield/internal/utils"
)

func main() {
	scenePath := flag.String("scene", "", "Path to a scene JSON file (empty runs the built-in demo scene)")
	seed := flag.String("seed", "", "Override the scene seed")
	model := flag.String("model", "", "Override the motion model: incremental or analytic")
	debugFlag := flag.Bool("debug", false, "Enable verbose debug logging")
	flag.Parse()

	if *debugFlag {
		utils.DebugMode = true
		utils.CurrentLevel = utils.LevelDebug
	}

	utils.Info("--- driftfield start ---")

	var sc *scene.Scene
	if *scenePath != "" {
		var err error
		sc, err = scene.Load(*scenePath)
		if err != nil {
			utils.Error("Failed to load scene %s: %v", *scenePath, err)
			os.Exit(1)
		}
		utils.Info("Scene loaded: %d layers", len(sc.Layers))
	} else {
		sc = defaultScene()
		utils.Info("No scene given, using the built-in demo scene")
	}

	if *seed != "" {
		sc.General.Seed = *seed
	}
	if *model != "" {
		sc.General.Model = *model
	}

	NewWindow(sc).Run()
}

// defaultScene is three drifting layers at increasing depth, so the binary
// shows something sensible without any scene file on disk.
func defaultScene() *scene.Scene {
	s := &scene.Scene{
		General: scene.General{
			CameraParallax:       true,
			CameraParallaxAmount: 0.6,
		},
		Layers: []scene.Layer{
			{
				Name:  "far",
				Count: 48,
				Size:  scene.Vec2{X: 18, Y: 18},
				Depth: scene.BindingFloat{Value: 0.1},
				Angle: 186,
				Color: "0.55 0.62 0.85",
			},
			{
				Name:  "mid",
				Count: 32,
				Size:  scene.Vec2{X: 30, Y: 30},
				Depth: scene.BindingFloat{Value: 0.5},
				Angle: 182,
				Color: "0.75 0.80 0.95",
			},
			{
				Name:  "near",
				Count: 16,
				Size:  scene.Vec2{X: 48, Y: 48},
				Depth: scene.BindingFloat{Value: 0.95},
				Angle: 178,
				Color: "1 1 1",
			},
		},
	}
	s.ApplyDefaults()
	return s
}
