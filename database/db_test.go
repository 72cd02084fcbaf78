package database

import (
	"path/filepath"
	"testing"

	"github.com/parthbhalara/spring-price-calculator/config"
)

func testPricing() config.PricingConfig {
	return config.PricingConfig{
		DefaultMarginRatio: 0.35,
		DefaultSetupCost:   750,
		QuantityBreaks:     []int{5, 50, 500},
	}
}

func TestInitDBSeedsSettingsFromConfig(t *testing.T) {
	InitDB(filepath.Join(t.TempDir(), "test.db"), testPricing())

	var margin, setup float64
	var breaks string
	err := DB.QueryRow("SELECT default_margin_ratio, default_setup_cost, quantity_breaks FROM settings WHERE id=1").
		Scan(&margin, &setup, &breaks)
	if err != nil {
		t.Fatalf("settings row missing: %v", err)
	}
	if margin != 0.35 {
		t.Errorf("seeded margin ratio = %v, want 0.35", margin)
	}
	if setup != 750 {
		t.Errorf("seeded setup cost = %v, want 750", setup)
	}
	if breaks != "5,50,500" {
		t.Errorf("seeded quantity breaks = %q, want 5,50,500", breaks)
	}

	if len(DefaultBreaks) != 3 || DefaultBreaks[0] != 5 {
		t.Errorf("DefaultBreaks not kept from config: %v", DefaultBreaks)
	}
}

func TestInitDBSeedsMaterials(t *testing.T) {
	InitDB(filepath.Join(t.TempDir(), "test.db"), testPricing())

	table := LoadMaterialTable()
	m, ok := table.Lookup(1)
	if !ok {
		t.Fatal("no seeded materials")
	}
	if m.ShearModulus <= 0 || m.Density <= 0 || m.CostPerKg <= 0 {
		t.Errorf("seeded material incomplete: %+v", m)
	}
}

func TestBreaksCSV(t *testing.T) {
	if got := breaksCSV([]int{1, 10, 100}); got != "1,10,100" {
		t.Errorf("breaksCSV = %q", got)
	}
	if got := breaksCSV(nil); got != "" {
		t.Errorf("breaksCSV(nil) = %q", got)
	}
}
