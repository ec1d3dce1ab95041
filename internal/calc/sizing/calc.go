package sizing

import "math"

// LpsToM3h converts litres per second to cubic metres per hour.
const LpsToM3h = 3.6

type Result struct {
	FlowLps        float64 `json:"flow_lps"`
	FlowM3h        float64 `json:"flow_m3h"`
	Units          int     `json:"units"`
	UnitFlowLps    float64 `json:"unit_flow_lps"`
	UnitFlowM3h    float64 `json:"unit_flow_m3h"`
	DesignVelocity float64 `json:"design_velocity_mh"`
	AreaPerUnitM2  float64 `json:"area_per_unit_m2"`
	AspectRatio    float64 `json:"aspect_ratio"`
	WidthM         float64 `json:"width_m"`
	LengthM        float64 `json:"length_m"`
	RealVelocity   float64 `json:"real_velocity_mh"`
}

// SizeStage computes the plan dimensions of one treatment stage split into
// equal rectangular units. It returns nil when any argument is not positive.
func SizeStage(flowLps, velocity float64, units int, ratio float64) *Result {
	if flowLps <= 0 || velocity <= 0 || units <= 0 || ratio <= 0 {
		return nil
	}
	if !finite(flowLps, velocity, ratio) {
		return nil
	}
	n := float64(units)
	q := flowLps * LpsToM3h
	qUnit := q / n
	area := qUnit / velocity
	width := math.Sqrt(area / ratio)

	return &Result{
		FlowLps:        flowLps,
		FlowM3h:        q,
		Units:          units,
		UnitFlowLps:    flowLps / n,
		UnitFlowM3h:    qUnit,
		DesignVelocity: velocity,
		AreaPerUnitM2:  area,
		AspectRatio:    ratio,
		WidthM:         width,
		LengthM:        ratio * width,
		RealVelocity:   q / (area * n),
	}
}

type TankResult struct {
	Result
	ContactMin float64 `json:"contact_min"`
	DepthM     float64 `json:"depth_m"`
	VolumeM3   float64 `json:"volume_m3"`
}

// SizeContactTank sizes a chlorine contact tank: the volume holds the flow
// for the contact time and the plan area follows from the water depth.
func SizeContactTank(flowLps, contactMin, depthM float64, units int, ratio float64) *TankResult {
	if contactMin <= 0 || depthM <= 0 || !finite(contactMin, depthM) {
		return nil
	}
	// a tank of depth h holding t minutes behaves as a surface loading of h/t per hour
	loading := depthM / (contactMin / 60)
	base := SizeStage(flowLps, loading, units, ratio)
	if base == nil {
		return nil
	}
	return &TankResult{
		Result:     *base,
		ContactMin: contactMin,
		DepthM:     depthM,
		VolumeM3:   base.FlowM3h * contactMin / 60,
	}
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
