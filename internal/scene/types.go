package scene

import (
	"encoding/json"
	"strconv"
)

// Vec2 mirrors the scene JSON's {"x": ..., "y": ...} objects.
type Vec2 struct {
	X, Y float64
}

type Scene struct {
	General General `json:"general"`
	Layers  []Layer `json:"layers"`
	Version int     `json:"version"`
}

type General struct {
	ClearColor           string       `json:"clearcolor"`
	Projection           Projection   `json:"orthogonalprojection"`
	Seed                 string       `json:"seed"`
	Model                string       `json:"model"`
	MotionScale          BindingFloat `json:"motionscale"`
	CameraParallax       bool         `json:"cameraparallax"`
	CameraParallaxAmount float64      `json:"cameraparallaxamount"`
}

type Projection struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Layer describes one drifting sprite population.
type Layer struct {
	Name           string       `json:"name"`
	Image          string       `json:"image"`
	Count          int          `json:"count"`
	Size           Vec2         `json:"size"`
	Depth          BindingFloat `json:"depth"`
	Angle          float64      `json:"angle"`
	MotionScale    BindingFloat `json:"motionscale"`
	TimeMultiplier float64      `json:"timemultiplier"`
	StartPhase     float64      `json:"startphase"`
	Delay          float64      `json:"delay"`
	Visible        BindingBool  `json:"visible"`
	Color          string       `json:"color"`
}

// BindingFloat accepts either a raw number or a {"value": ...} object, the
// two shapes scene authoring tools emit interchangeably.
type BindingFloat struct {
	Value interface{} `json:"value"`
}

func (bf *BindingFloat) UnmarshalJSON(data []byte) error {
	var floatVal float64
	if err := json.Unmarshal(data, &floatVal); err == nil {
		bf.Value = floatVal
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if parsed, err := strconv.ParseFloat(str, 64); err == nil {
			bf.Value = parsed
		}
		return nil
	}
	var temp struct {
		Value interface{} `json:"value"`
	}
	if err := json.Unmarshal(data, &temp); err == nil {
		switch value := temp.Value.(type) {
		case float64:
			bf.Value = value
		case string:
			if parsed, err := strconv.ParseFloat(value, 64); err == nil {
				bf.Value = parsed
			}
		}
	}
	return nil
}

func (bf BindingFloat) GetFloat() float64 {
	switch v := bf.Value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case map[string]interface{}:
		if val, ok := v["value"].(float64); ok {
			return val
		}
	}
	return 0
}

// GetFloatOr returns the bound value, or def when the field was absent.
func (bf BindingFloat) GetFloatOr(def float64) float64 {
	if bf.Value == nil {
		return def
	}
	return bf.GetFloat()
}

// IsSet reports whether the field was present in the JSON at all.
func (bf BindingFloat) IsSet() bool { return bf.Value != nil }

// BindingBool accepts either a raw bool or a {"value": ...} object.
// Absent fields read as true: layers are visible unless switched off.
type BindingBool struct {
	Value interface{} `json:"value"`
}

func (bb *BindingBool) UnmarshalJSON(data []byte) error {
	var boolVal bool
	if err := json.Unmarshal(data, &boolVal); err == nil {
		bb.Value = boolVal
		return nil
	}
	var temp struct {
		Value interface{} `json:"value"`
	}
	if err := json.Unmarshal(data, &temp); err == nil {
		bb.Value = temp.Value
	}
	return nil
}

func (bb BindingBool) GetBool() bool {
	switch v := bb.Value.(type) {
	case bool:
		return v
	case map[string]interface{}:
		if val, ok := v["value"].(bool); ok {
			return val
		}
	}
	return true
}
