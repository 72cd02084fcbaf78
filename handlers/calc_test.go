package handlers

import (
	"testing"

	"github.com/parthbhalara/spring-price-calculator/engine"
	"github.com/parthbhalara/spring-price-calculator/types"
)

func TestBuildInputsOverrides(t *testing.T) {
	req := types.CalcRequest{
		WireDiameter: 2, Diameter: 10, DiameterType: "Outer",
		TotalCoils: 10, ActiveCoils: 8, FreeLength: 50, LoadHeight: 40,
		MarginRatio: 0.4, Quantity: 100,
		UseRateOverride: true, RateOverride: 42.0,
	}
	in := BuildInputs(req, engine.Material{Density: 7.85, ShearModulus: 79300, CostPerKg: 350})

	if in.RateOverride == nil || *in.RateOverride != 42.0 {
		t.Fatalf("rate override not mapped: %v", in.RateOverride)
	}
	if in.PriceOverride != nil {
		t.Fatalf("price override should stay unset")
	}
	if got := engine.Compute(in).SpringRate; got != 42.0 {
		t.Errorf("spring rate = %v, want overridden 42.0", got)
	}
}

func TestBuildInputsNoOverrideWhenUnchecked(t *testing.T) {
	// A stale value in the field must be ignored when the checkbox is off.
	req := types.CalcRequest{RateOverride: 99, PriceOverride: 7}
	in := BuildInputs(req, engine.Material{})
	if in.RateOverride != nil || in.PriceOverride != nil {
		t.Errorf("overrides mapped despite unchecked flags: %v %v", in.RateOverride, in.PriceOverride)
	}
}

func TestResolveMaterialCustom(t *testing.T) {
	req := types.CalcRequest{
		MaterialID:      0,
		CustomDensity:   8.1,
		CustomShearMod:  70000,
		CustomCostPerKg: 500,
	}
	m := ResolveMaterial(req)
	if m.Name != "Custom" || m.Category != engine.CategoryOther {
		t.Errorf("unexpected custom material: %+v", m)
	}
	if m.Density != 8.1 || m.ShearModulus != 70000 || m.CostPerKg != 500 {
		t.Errorf("custom fields not carried: %+v", m)
	}
}
