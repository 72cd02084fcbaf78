package engine

import (
	"math"
	"testing"
)

func steelInputs() Inputs {
	return Inputs{
		WireDiameter: 2,
		Diameter:     10,
		DiameterType: DiameterOuter,
		TotalCoils:   10,
		ActiveCoils:  8,
		FreeLength:   50,
		LoadHeight:   40,
		Material: Material{
			Name:            "Oil-Tempered (ASTM A229)",
			Category:        CategoryCarbonSteel,
			Density:         7.85,
			ShearModulus:    79300,
			ElasticModulus:  207000,
			UltimateTensile: 1700,
			CostPerKg:       350,
		},
		MarginRatio: 0.4,
		SetupCost:   500,
		Quantity:    100,
	}
}

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestComputeSteelScenario(t *testing.T) {
	in := steelInputs()
	if errs := Validate(in); len(errs) != 0 {
		t.Fatalf("expected valid inputs, got %v", errs)
	}
	r := Compute(in)

	if r.MeanDiameter != 8 {
		t.Errorf("mean diameter = %v, want 8", r.MeanDiameter)
	}
	if r.SpringIndex != 4 {
		t.Errorf("spring index = %v, want 4", r.SpringIndex)
	}
	wantRate := 79300.0 * 16 / (8 * 512 * 8)
	if !almostEqual(r.SpringRate, wantRate, 1e-9) {
		t.Errorf("spring rate = %v, want %v", r.SpringRate, wantRate)
	}
	if !almostEqual(r.LoadAtLoad, wantRate*10, 1e-9) {
		t.Errorf("load at load height = %v, want %v", r.LoadAtLoad, wantRate*10)
	}

	wireLen := math.Pi * 8 * 10
	volume := math.Pi * 1 * wireLen
	weight := volume * 7.85 / 1000
	rawCost := weight / 1000 * 350
	if !almostEqual(r.RawMaterialCost, rawCost, 1e-9) {
		t.Errorf("raw material cost = %v, want %v", r.RawMaterialCost, rawCost)
	}
	if !almostEqual(r.PricePerUnit, rawCost/0.4, 1e-9) {
		t.Errorf("price per unit = %v, want %v", r.PricePerUnit, rawCost/0.4)
	}
}

func TestComputeDiameterIdentity(t *testing.T) {
	for _, dt := range []DiameterType{DiameterOuter, DiameterInner, DiameterMean} {
		in := steelInputs()
		in.DiameterType = dt
		in.Diameter = 12
		r := Compute(in)
		if !almostEqual(r.OuterDiameter-r.InnerDiameter, 2*in.WireDiameter, 1e-12) {
			t.Errorf("%s: od-id = %v, want %v", dt, r.OuterDiameter-r.InnerDiameter, 2*in.WireDiameter)
		}
	}
}

func TestComputeIdempotent(t *testing.T) {
	in := steelInputs()
	a := Compute(in)
	b := Compute(in)
	if a != b {
		t.Fatalf("recompute changed results: %+v vs %+v", a, b)
	}
}

func TestComputeMaxDeflectionMatchesDeflectionAtLoad(t *testing.T) {
	r := Compute(steelInputs())
	if !almostEqual(r.MaxDeflection, r.DeflectionAtLoad, 1e-9) {
		t.Errorf("max deflection %v != deflection at load %v", r.MaxDeflection, r.DeflectionAtLoad)
	}
}

func TestComputeOverrides(t *testing.T) {
	rate := 99.5
	price := 12.34

	in := steelInputs()
	in.RateOverride = &rate
	r := Compute(in)
	if r.SpringRate != rate {
		t.Errorf("spring rate = %v, want override %v", r.SpringRate, rate)
	}
	if !almostEqual(r.LoadAtLoad, rate*10, 1e-9) {
		t.Errorf("load should follow overridden rate, got %v", r.LoadAtLoad)
	}

	in = steelInputs()
	in.PriceOverride = &price
	r = Compute(in)
	if r.PricePerUnit != price {
		t.Errorf("price per unit = %v, want override %v", r.PricePerUnit, price)
	}
}

func TestComputeResonantFrequencyRatio(t *testing.T) {
	r := Compute(steelInputs())
	if r.NaturalFrequency <= 0 {
		t.Fatalf("natural frequency = %v, want positive", r.NaturalFrequency)
	}
	if !almostEqual(r.ResonantFrequency, 0.65*r.NaturalFrequency, 1e-9) {
		t.Errorf("resonant = %v, want 0.65 * %v", r.ResonantFrequency, r.NaturalFrequency)
	}
}

func TestComputeBucklingByEndCondition(t *testing.T) {
	in := steelInputs()
	// L/D = 50/8 = 6.25, well over every limit.
	r := Compute(in)
	if !r.BucklingRisk {
		t.Errorf("expected buckling risk for slender spring, ratio %v", r.BucklingRatio)
	}
	if !almostEqual(r.BucklingRatio, (50.0/8)/2.6, 1e-9) {
		t.Errorf("buckling ratio = %v, want fixed-fixed default", r.BucklingRatio)
	}

	in.FreeLength = 20
	in.LoadHeight = 15
	r = Compute(in)
	if r.BucklingRisk {
		t.Errorf("short spring flagged as buckling, ratio %v", r.BucklingRatio)
	}

	in.EndCondition = EndFixedFree
	r = Compute(in)
	if !r.BucklingRisk {
		t.Errorf("fixed-free should tighten the limit, ratio %v", r.BucklingRatio)
	}
}

func TestComputeRelaxationByCategory(t *testing.T) {
	cases := []struct {
		category Category
		want     float64
	}{
		{CategoryStainless, 2},
		{CategoryMusicWire, 1},
		{CategoryCarbonSteel, 3},
		{CategoryOther, 3},
	}
	for _, tc := range cases {
		in := steelInputs()
		in.Material.Category = tc.category
		if got := Compute(in).RelaxationPct; got != tc.want {
			t.Errorf("%s: relaxation = %v, want %v", tc.category, got, tc.want)
		}
	}
}

func TestComputeIndexAdvisoryFlags(t *testing.T) {
	in := steelInputs() // C = 4: in range, not optimal
	r := Compute(in)
	if !r.IndexInRange || r.IndexOptimal {
		t.Errorf("C=4: in-range=%v optimal=%v", r.IndexInRange, r.IndexOptimal)
	}

	in.Diameter = 18 // mean 16, C = 8
	r = Compute(in)
	if !r.IndexInRange || !r.IndexOptimal {
		t.Errorf("C=8: in-range=%v optimal=%v", r.IndexInRange, r.IndexOptimal)
	}
}

func TestLoadDeflectionCurve(t *testing.T) {
	r := Compute(steelInputs())
	points := LoadDeflectionCurve(r, 11)
	if len(points) != 11 {
		t.Fatalf("got %d points, want 11", len(points))
	}
	if points[0].Deflection != 0 || points[0].Load != 0 {
		t.Errorf("curve should start at origin, got %+v", points[0])
	}
	last := points[len(points)-1]
	if !almostEqual(last.Deflection, r.MaxDeflection, 1e-9) {
		t.Errorf("curve should end at max deflection, got %v", last.Deflection)
	}
	if !almostEqual(last.Load, r.LoadAtLoad, 1e-6) {
		t.Errorf("curve end load = %v, want %v", last.Load, r.LoadAtLoad)
	}
}
