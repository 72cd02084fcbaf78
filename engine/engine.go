package engine

import "math"

// DiameterType tells the engine how to interpret the raw diameter input.
type DiameterType string

const (
	DiameterOuter DiameterType = "Outer"
	DiameterInner DiameterType = "Inner"
	DiameterMean  DiameterType = "Mean"
)

// EndCondition selects the buckling slenderness limit. Fixed-fixed is the
// default and reproduces the classic 2.6 free-length-to-mean-diameter ratio.
type EndCondition string

const (
	EndFixedFixed   EndCondition = "fixed-fixed"
	EndFixedHinged  EndCondition = "fixed-hinged"
	EndHingedHinged EndCondition = "hinged-hinged"
	EndFixedFree    EndCondition = "fixed-free"
)

// bucklingLimit scales the fixed-fixed limit by the Euler end-condition
// constant (alpha = 0.5, 0.707, 1, 2).
func bucklingLimit(ec EndCondition) float64 {
	switch ec {
	case EndFixedHinged:
		return 2.6 * 0.5 / 0.707
	case EndHingedHinged:
		return 2.6 * 0.5 / 1.0
	case EndFixedFree:
		return 2.6 * 0.5 / 2.0
	default:
		return 2.6
	}
}

// Inputs is a full parameter set for one compression spring. All lengths in
// mm, moduli and stresses in MPa, density in g/cm3.
type Inputs struct {
	WireDiameter float64
	Diameter     float64
	DiameterType DiameterType
	TotalCoils   float64
	ActiveCoils  float64
	FreeLength   float64
	LoadHeight   float64

	Material Material

	MarginRatio   float64
	PriceOverride *float64
	RateOverride  *float64
	SetupCost     float64
	Quantity      int

	EndCondition EndCondition

	// Descriptive fields, carried into exports only.
	PartName      string
	Finish        string
	Ends          string
	CoilDirection string
	Tolerance     string
	Notes         string
}

// Results holds every derived quantity. Fully recomputed on each call, no
// partial updates.
type Results struct {
	MeanDiameter  float64
	OuterDiameter float64
	InnerDiameter float64
	SpringIndex   float64
	WahlFactor    float64

	WireLength      float64 // mm
	WireVolume      float64 // mm3
	SpringWeight    float64 // g
	RawMaterialCost float64

	SpringRate       float64 // N/mm
	DeflectionAtLoad float64 // mm
	LoadAtLoad       float64 // N
	ShearStress      float64 // MPa

	SolidLength   float64 // mm
	Pitch         float64 // mm
	StressAtSolid float64 // MPa
	StressRatio   float64

	MaxDeflection     float64 // mm
	NaturalFrequency  float64 // Hz
	ResonantFrequency float64 // Hz
	EnergyStored      float64 // N*mm

	BucklingRatio float64
	BucklingRisk  bool

	PricePerUnit     float64
	OverallUnitPrice float64
	TotalWireWeight  float64 // kg for the whole run

	RelaxationPct float64

	// Advisory manufacturability flags, never a computation failure.
	IndexInRange bool
	IndexOptimal bool
}

// Compute derives the full result set from validated inputs. Pure function:
// no I/O, no stored state, identical inputs give identical outputs.
func Compute(in Inputs) Results {
	var r Results

	switch in.DiameterType {
	case DiameterOuter:
		r.MeanDiameter = in.Diameter - in.WireDiameter
	case DiameterInner:
		r.MeanDiameter = in.Diameter + in.WireDiameter
	default:
		r.MeanDiameter = in.Diameter
	}
	r.OuterDiameter = r.MeanDiameter + in.WireDiameter
	r.InnerDiameter = r.MeanDiameter - in.WireDiameter

	c := r.MeanDiameter / in.WireDiameter
	r.SpringIndex = c
	r.IndexInRange = c >= 4 && c <= 20
	r.IndexOptimal = c >= 6 && c <= 12
	r.WahlFactor = (4*c-1)/(4*c-4) + 0.615/c

	r.SolidLength = in.TotalCoils * in.WireDiameter
	r.Pitch = (in.FreeLength - in.WireDiameter) / (in.TotalCoils - 1)

	r.WireLength = math.Pi * r.MeanDiameter * in.TotalCoils
	r.WireVolume = math.Pi * math.Pow(in.WireDiameter/2, 2) * r.WireLength
	r.SpringWeight = r.WireVolume * in.Material.Density / 1000
	r.RawMaterialCost = (r.SpringWeight / 1000) * in.Material.CostPerKg

	r.SpringRate = in.Material.ShearModulus * math.Pow(in.WireDiameter, 4) /
		(8 * math.Pow(r.MeanDiameter, 3) * in.ActiveCoils)
	if in.RateOverride != nil {
		r.SpringRate = *in.RateOverride
	}

	r.DeflectionAtLoad = in.FreeLength - in.LoadHeight
	r.LoadAtLoad = r.SpringRate * r.DeflectionAtLoad
	r.ShearStress = 8 * r.LoadAtLoad * r.MeanDiameter * r.WahlFactor /
		(math.Pi * math.Pow(in.WireDiameter, 3))

	deflToSolid := in.FreeLength - r.SolidLength
	maxLoad := r.SpringRate * deflToSolid
	r.StressAtSolid = 8 * maxLoad * r.MeanDiameter * r.WahlFactor /
		(math.Pi * math.Pow(in.WireDiameter, 3))
	if in.Material.UltimateTensile > 0 {
		r.StressRatio = r.StressAtSolid / in.Material.UltimateTensile
	}

	r.PricePerUnit = r.RawMaterialCost / in.MarginRatio
	if in.PriceOverride != nil {
		r.PricePerUnit = *in.PriceOverride
	}

	qty := in.Quantity
	if qty == 0 {
		qty = 1
	}
	r.OverallUnitPrice = amortizedUnitPrice(r.PricePerUnit, in.SetupCost, qty)
	r.TotalWireWeight = r.SpringWeight * float64(qty) / 1000

	r.MaxDeflection = r.LoadAtLoad / r.SpringRate

	kNm := r.SpringRate * 1000
	massKg := r.SpringWeight / 1000
	r.NaturalFrequency = math.Sqrt(kNm/massKg) / (2 * math.Pi)
	r.ResonantFrequency = 0.65 * r.NaturalFrequency

	r.EnergyStored = 0.5 * r.SpringRate * r.MaxDeflection * r.MaxDeflection

	r.BucklingRatio = (in.FreeLength / r.MeanDiameter) / bucklingLimit(in.EndCondition)
	r.BucklingRisk = r.BucklingRatio > 1

	r.RelaxationPct = in.Material.RelaxationPct()

	return r
}

// CurvePoint is one sample of the load-deflection line fed to the chart.
type CurvePoint struct {
	Deflection float64 `json:"deflection"`
	Load       float64 `json:"load"`
}

// LoadDeflectionCurve samples the (linear) load-deflection line from zero to
// max deflection in n equal steps. n < 2 falls back to the two endpoints.
func LoadDeflectionCurve(r Results, n int) []CurvePoint {
	if n < 2 {
		n = 2
	}
	points := make([]CurvePoint, 0, n)
	step := r.MaxDeflection / float64(n-1)
	for i := 0; i < n; i++ {
		d := float64(i) * step
		points = append(points, CurvePoint{Deflection: d, Load: r.SpringRate * d})
	}
	return points
}
