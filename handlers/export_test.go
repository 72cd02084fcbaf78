package handlers

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/parthbhalara/spring-price-calculator/config"
	"github.com/parthbhalara/spring-price-calculator/database"
)

// seedQuote stores one quote with a single spring line and returns its id.
func seedQuote(t *testing.T, rateOverride, priceOverride interface{}) string {
	t.Helper()

	res, err := database.DB.Exec(`INSERT INTO quotes
		(quote_number, version, ref_token, customer_name, part_name, total_price, created_by)
		VALUES (1001, 1, 'ref-test', 'Acme Pumps', 'Valve Spring', 500, 'admin')`)
	if err != nil {
		t.Fatalf("insert quote: %v", err)
	}
	id, _ := res.LastInsertId()

	_, err = database.DB.Exec(`INSERT INTO quote_items
		(quote_id, part_name, material_id, wire_diameter, diameter, diameter_type, total_coils, active_coils,
		 free_length, load_height, margin_ratio, setup_cost, quantity, end_condition,
		 rate_override, price_override, finish, ends, coil_direction, tolerance, notes, unit_price, total_price)
		VALUES (?, 'Valve Spring', 1, 2, 10, 'Outer', 10, 8, 50, 40, 0.4, 500, 100, 'fixed-fixed',
		 ?, ?, '', '', '', '', '', 5, 500)`, id, rateOverride, priceOverride)
	if err != nil {
		t.Fatalf("insert quote item: %v", err)
	}
	return fmt.Sprintf("%d", id)
}

func TestBuildDocumentKeepsPriceOverride(t *testing.T) {
	database.InitDB(filepath.Join(t.TempDir(), "test.db"), config.Default().Pricing)

	doc, ok := buildDocument(seedQuote(t, nil, 12.34), true)
	if !ok {
		t.Fatal("buildDocument failed")
	}
	if doc.Results.PricePerUnit != 12.34 {
		t.Errorf("exported price per unit = %v, want stored override 12.34", doc.Results.PricePerUnit)
	}
	wantOverall := (500 + 12.34*100) / 100
	if doc.Results.OverallUnitPrice != wantOverall {
		t.Errorf("exported overall price = %v, want %v", doc.Results.OverallUnitPrice, wantOverall)
	}
}

func TestBuildDocumentKeepsRateOverride(t *testing.T) {
	database.InitDB(filepath.Join(t.TempDir(), "test.db"), config.Default().Pricing)

	doc, ok := buildDocument(seedQuote(t, 42.0, nil), true)
	if !ok {
		t.Fatal("buildDocument failed")
	}
	if doc.Results.SpringRate != 42.0 {
		t.Errorf("exported spring rate = %v, want stored override 42.0", doc.Results.SpringRate)
	}
}

func TestBuildDocumentWithoutOverrides(t *testing.T) {
	database.InitDB(filepath.Join(t.TempDir(), "test.db"), config.Default().Pricing)

	doc, ok := buildDocument(seedQuote(t, nil, nil), false)
	if !ok {
		t.Fatal("buildDocument failed")
	}
	if doc.Results.PricePerUnit <= 0 {
		t.Errorf("computed price per unit = %v, want positive", doc.Results.PricePerUnit)
	}
	if doc.CustomerName != "" {
		t.Errorf("customer name should be stripped for non-admin export, got %q", doc.CustomerName)
	}
}
