package sizing

import "Potable/internal/calc/stage"

// Preset holds the design parameters used when the caller leaves them out.
type Preset struct {
	Velocity    float64 `json:"velocity_mh"` // filtration rate, m/h
	Units       int     `json:"units"`
	AspectRatio float64 `json:"aspect_ratio"`
	ContactMin  float64 `json:"contact_min,omitempty"`
	DepthM      float64 `json:"depth_m,omitempty"`
}

var Presets = map[stage.ID]Preset{
	stage.DynamicRoughing:   {Velocity: 2.0, Units: 2, AspectRatio: 3},
	stage.AscendingRoughing: {Velocity: 0.6, Units: 2, AspectRatio: 2},
	stage.SlowSand:          {Velocity: 0.15, Units: 2, AspectRatio: 1.5},
	stage.Disinfection:      {Units: 1, AspectRatio: 2, ContactMin: 30, DepthM: 2.0},
}

type Input struct {
	Stage       stage.ID `json:"stage" yaml:"stage"`
	FlowLps     float64  `json:"flow_lps" yaml:"flow_lps"`
	Velocity    float64  `json:"velocity_mh" yaml:"velocity_mh"`
	Units       int      `json:"units" yaml:"units"`
	AspectRatio float64  `json:"aspect_ratio" yaml:"aspect_ratio"`
	ContactMin  float64  `json:"contact_min" yaml:"contact_min"`
	DepthM      float64  `json:"depth_m" yaml:"depth_m"`
}

// Resolve fills omitted (zero) fields from the stage preset. Negative values
// are kept so sizing rejects them. Unknown stages are returned unchanged.
func (in Input) Resolve() Input {
	p, ok := Presets[in.Stage]
	if !ok {
		return in
	}
	if in.Velocity == 0 {
		in.Velocity = p.Velocity
	}
	if in.Units == 0 {
		in.Units = p.Units
	}
	if in.AspectRatio == 0 {
		in.AspectRatio = p.AspectRatio
	}
	if in.ContactMin == 0 {
		in.ContactMin = p.ContactMin
	}
	if in.DepthM == 0 {
		in.DepthM = p.DepthM
	}
	return in
}

// Calculate sizes a stage. A filter uses the velocity; the disinfection stage
// is sized as a contact tank and also returns its TankResult.
func Calculate(in Input) (*Result, *TankResult) {
	in = in.Resolve()
	if in.Stage == stage.Disinfection {
		tank := SizeContactTank(in.FlowLps, in.ContactMin, in.DepthM, in.Units, in.AspectRatio)
		if tank == nil {
			return nil, nil
		}
		return &tank.Result, tank
	}
	return SizeStage(in.FlowLps, in.Velocity, in.Units, in.AspectRatio), nil
}
