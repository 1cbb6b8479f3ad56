package lesson

import (
	"github.com/anirudh/explainly/internal/calc"
	lcore "github.com/anirudh/explainly/internal/lesson"
)

// steelModulusMPa is the Young's modulus used for the constrained-rail
// stress readout in the thermal lesson.
const steelModulusMPa = 200000

// getter reads a parameter value, with one optional override used when
// sweeping a parameter for the chart.
type getter func(name string) float64

// metricDef is one derived readout: a label, a unit, and a pure
// function of the current parameters. The twist flag switches the model
// variant introduced in the twist phases.
type metricDef struct {
	Label string
	Unit  string
	Eval  func(g getter, twist bool) float64
}

// binding ties a lesson pack to its calculators: the derived metrics
// shown during play and the parameter swept for the chart.
type binding struct {
	SweepParam string
	Metrics    []metricDef
}

// MetricValue is one computed readout for display.
type MetricValue struct {
	Label string
	Unit  string
	Value float64
}

func paramGetter(p *lcore.Params, override string, x float64) getter {
	return func(name string) float64 {
		if name == override {
			return x
		}
		return p.Get(name)
	}
}

// Values recomputes every metric from the live parameter store.
func (b binding) Values(p *lcore.Params, twist bool) []MetricValue {
	g := paramGetter(p, "", 0)
	out := make([]MetricValue, len(b.Metrics))
	for i, m := range b.Metrics {
		out[i] = MetricValue{Label: m.Label, Unit: m.Unit, Value: m.Eval(g, twist)}
	}
	return out
}

// Curve samples the chosen metric across the sweep parameter's range.
func (b binding) Curve(p *lcore.Params, twist bool, metricIdx int) []calc.Point {
	spec, ok := p.Spec(b.SweepParam)
	if !ok || metricIdx < 0 || metricIdx >= len(b.Metrics) {
		return nil
	}
	m := b.Metrics[metricIdx]
	return calc.Sweep(func(x float64) float64 {
		return m.Eval(paramGetter(p, b.SweepParam, x), twist)
	}, spec.Min, spec.Max, calc.ChartPoints)
}

// bindingFor returns the metric binding for a lesson pack. Custom packs
// have no formulas in code, so they get an empty binding and the play
// phases render without readouts or a chart.
func bindingFor(packID string) binding {
	if b, ok := bindings[packID]; ok {
		return b
	}
	return binding{}
}

var bindings = map[string]binding{
	"motor": {
		SweepParam: "speed",
		Metrics: []metricDef{
			{Label: "Current", Unit: "A", Eval: func(g getter, twist bool) float64 {
				return motorAt(g, twist).Current(g("speed"))
			}},
			{Label: "Back-EMF", Unit: "V", Eval: func(g getter, twist bool) float64 {
				return motorAt(g, twist).BackEMF(g("speed"))
			}},
			{Label: "Stall current", Unit: "A", Eval: func(g getter, twist bool) float64 {
				return motorAt(g, twist).StallCurrent()
			}},
			{Label: "No-load speed", Unit: "rad/s", Eval: func(g getter, twist bool) float64 {
				return motorAt(g, twist).NoLoadSpeed()
			}},
		},
	},
	"thermal": {
		SweepParam: "deltaT",
		Metrics: []metricDef{
			{Label: "Expansion", Unit: "mm", Eval: func(g getter, twist bool) float64 {
				return thermalAt(g).Expansion(g("deltaT"))
			}},
			{Label: "Constrained stress", Unit: "MPa", Eval: func(g getter, twist bool) float64 {
				return thermalAt(g).Stress(g("deltaT"))
			}},
		},
	},
	"batching": {
		SweepParam: "batchSize",
		Metrics: []metricDef{
			{Label: "Throughput", Unit: "req/s", Eval: func(g getter, twist bool) float64 {
				return batchingAt(g).Throughput()
			}},
			{Label: "Avg latency", Unit: "s", Eval: func(g getter, twist bool) float64 {
				return batchingAt(g).AvgLatency()
			}},
			{Label: "Queue depth", Unit: "req", Eval: func(g getter, twist bool) float64 {
				return batchingAt(g).QueueDepth()
			}},
			{Label: "GPU utilization", Unit: "%", Eval: func(g getter, twist bool) float64 {
				return batchingAt(g).GPUUtilization() * 100
			}},
		},
	},
	"gridqueue": {
		SweepParam: "studyYears",
		Metrics: []metricDef{
			{Label: "Queue backlog", Unit: "projects", Eval: func(g getter, twist bool) float64 {
				return gridAt(g).Backlog()
			}},
			{Label: "Completed per year", Unit: "projects", Eval: func(g getter, twist bool) float64 {
				return gridAt(g).CompletedPerYear()
			}},
			{Label: "Throughput", Unit: "projects/yr", Eval: func(g getter, twist bool) float64 {
				return gridAt(g).ThroughputAtStudyTime(g("studyYears"))
			}},
		},
	},
}

func motorAt(g getter, twist bool) calc.Motor {
	return calc.Motor{
		SupplyVoltage: g("voltage"),
		Resistance:    g("resistance"),
		Ke:            g("ke"),
		Regeneration:  twist,
	}
}

func thermalAt(g getter) calc.Thermal {
	return calc.Thermal{
		AlphaPPM:      g("alpha"),
		Length0:       g("length0"),
		YoungsModulus: steelModulusMPa,
	}
}

func batchingAt(g getter) calc.Batching {
	return calc.Batching{
		BatchSize:      g("batchSize"),
		ProcessingTime: g("processingTime"),
		ArrivalRate:    g("arrivalRate"),
	}
}

func gridAt(g getter) calc.GridQueue {
	return calc.GridQueue{
		ApplicationsPerYear: g("applicationsPerYear"),
		StudyYears:          g("studyYears"),
		CompletionRate:      g("completionRate"),
	}
}
