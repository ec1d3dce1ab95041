package memo

import (
	"fmt"

	"Potable/internal/calc/cascade"
	"Potable/internal/calc/compliance"
	"Potable/internal/calc/sizing"
	"Potable/internal/calc/stage"
)

type Module string

const (
	ModuleDynamicRoughing   = Module(stage.DynamicRoughing)
	ModuleAscendingRoughing = Module(stage.AscendingRoughing)
	ModuleSlowSand          = Module(stage.SlowSand)
	ModuleDisinfection      = Module(stage.Disinfection)
)

// Step is one line of the derivation trace.
type Step struct {
	Variable    string  `json:"variable"`
	Description string  `json:"description"`
	Value       float64 `json:"value"`
	Unit        string  `json:"unit"`
}

type Memorandum struct {
	Module       Module             `json:"module"`
	ModuleName   string             `json:"module_name"`
	Steps        []Step             `json:"steps"`
	Results      map[string]float64 `json:"results"`
	Compliance   []compliance.Check `json:"compliance"`
	Compliant    bool               `json:"cumple_normatividad"`
	Granulometry []Layer            `json:"granulometry,omitempty"`
}

type Input struct {
	Module Module             `json:"module"`
	Sizing *sizing.Result     `json:"sizing"`
	Tank   *sizing.TankResult `json:"tank,omitempty"`
	Trace  cascade.Trace      `json:"trace"`
	Report compliance.Report  `json:"report"`
}

type builder struct {
	m *Memorandum
}

func (b builder) add(variable, description, unit string, value float64) {
	b.m.Steps = append(b.m.Steps, Step{Variable: variable, Description: description, Value: value, Unit: unit})
}

func (b builder) result(name string, value float64) {
	b.m.Results[name] = value
}

type section func(b builder, in Input)

// modules lists, per module, the sections of its memorandum in the order
// they were computed.
var modules = map[Module][]section{
	ModuleDynamicRoughing:   {filterSizing, evolution, checks},
	ModuleAscendingRoughing: {filterSizing, evolution, checks},
	ModuleSlowSand:          {filterSizing, evolution, checks},
	ModuleDisinfection:      {tankSizing, evolution, contactTime, checks},
}

// Build assembles the calculation memorandum of one module. An unknown module
// yields an empty memorandum.
func Build(in Input) Memorandum {
	m := Memorandum{
		Module:     in.Module,
		ModuleName: stage.ID(in.Module).Name(),
		Steps:      []Step{},
		Results:    map[string]float64{},
		Compliance: []compliance.Check{},
	}
	sections, ok := modules[in.Module]
	if !ok {
		return m
	}
	b := builder{m: &m}
	for _, s := range sections {
		s(b, in)
	}
	m.Compliance = append(m.Compliance, in.Report.Checks...)
	m.Compliant = in.Report.Compliant && len(in.Report.Checks) > 0
	m.Granulometry = Granulometry(in.Module)
	return m
}

func filterSizing(b builder, in Input) {
	sz := in.Sizing
	if sz == nil {
		return
	}
	b.add("Q", "Caudal de diseño (QMD)", "L/s", sz.FlowLps)
	b.add("Qh", "Qh = Q × 3.6", "m³/h", sz.FlowM3h)
	b.add("N", "Número de unidades en paralelo", "un", float64(sz.Units))
	b.add("Qu", "Qu = Q / N", "L/s", sz.UnitFlowLps)
	b.add("Quh", "Quh = Qh / N", "m³/h", sz.UnitFlowM3h)
	b.add("Vf", "Velocidad de filtración de diseño", "m/h", sz.DesignVelocity)
	b.add("As", "As = Quh / Vf", "m²", sz.AreaPerUnitM2)
	b.add("r", "Relación largo : ancho", "-", sz.AspectRatio)
	b.add("B", "B = sqrt(As / r)", "m", sz.WidthM)
	b.add("L", "L = r × B", "m", sz.LengthM)
	b.add("Vr", "Vr = Qh / (As × N)", "m/h", sz.RealVelocity)

	b.result("flow_lps", sz.FlowLps)
	b.result("area_per_unit_m2", sz.AreaPerUnitM2)
	b.result("width_m", sz.WidthM)
	b.result("length_m", sz.LengthM)
	b.result("real_velocity_mh", sz.RealVelocity)
}

func tankSizing(b builder, in Input) {
	t := in.Tank
	if t == nil {
		filterSizing(b, in)
		return
	}
	b.add("Q", "Caudal de diseño (QMD)", "L/s", t.FlowLps)
	b.add("Qh", "Qh = Q × 3.6", "m³/h", t.FlowM3h)
	b.add("t", "Tiempo de contacto", "min", t.ContactMin)
	b.add("V", "V = Qh × t / 60", "m³", t.VolumeM3)
	b.add("h", "Profundidad útil", "m", t.DepthM)
	b.add("N", "Número de tanques", "un", float64(t.Units))
	b.add("As", "As = V / (h × N)", "m²", t.AreaPerUnitM2)
	b.add("r", "Relación largo : ancho", "-", t.AspectRatio)
	b.add("B", "B = sqrt(As / r)", "m", t.WidthM)
	b.add("L", "L = r × B", "m", t.LengthM)

	b.result("flow_lps", t.FlowLps)
	b.result("volume_m3", t.VolumeM3)
	b.result("area_per_unit_m2", t.AreaPerUnitM2)
	b.result("width_m", t.WidthM)
	b.result("length_m", t.LengthM)
}

func evolution(b builder, in Input) {
	for _, s := range in.Trace.Steps {
		tag := string(s.Stage)
		b.add("Turb_"+tag, fmt.Sprintf("Turbiedad a la salida de %s", s.Name), "UNT", s.Output.Turbidity)
		b.add("Color_"+tag, fmt.Sprintf("Color a la salida de %s", s.Name), "UPC", s.Output.Color)
		b.add("CF_"+tag, fmt.Sprintf("Coliformes fecales a la salida de %s", s.Name), "UFC/100 mL", s.Output.FecalColiforms)
		b.add("Log_"+tag, "Remoción acumulada de patógenos", "log", s.CumulativeLog)
		b.add("IRCA_"+tag, "Índice de riesgo de calidad del agua", "%", s.Risk.Index)
	}
	if len(in.Trace.Steps) > 0 {
		b.result("final_turbidity", in.Trace.Final.Turbidity)
		b.result("final_color", in.Trace.Final.Color)
		b.result("cumulative_log", in.Trace.CumulativeLog)
		last, _ := in.Trace.Last()
		b.result("final_irca", last.Risk.Index)
	}
}

func contactTime(b builder, in Input) {
	ct := in.Report.CT
	if ct == nil {
		return
	}
	for _, c := range in.Report.Checks {
		if c.Rule != compliance.RuleDisinfection {
			continue
		}
		b.add("CTreq", fmt.Sprintf("CT requerido (tabla, pH %.1f, %.0f °C)", ct.PHBand, ct.TempBand), "mg·min/L", ct.Required)
		b.add("CTprov", "CT = t × C", "mg·min/L", c.Value)
		b.result("ct_required", ct.Required)
		b.result("ct_provided", c.Value)
	}
}

func checks(b builder, in Input) {
	for _, c := range in.Report.Checks {
		if c.Rule == compliance.RuleDisinfection {
			continue
		}
		b.add(string(c.Rule), c.Description, c.Unit, c.Value)
	}
}
