// Package export serializes one computed quotation into the document formats
// the shop sends out. Every format renders the same fixed field set.
package export

import (
	"fmt"
	"time"

	"github.com/parthbhalara/spring-price-calculator/engine"
)

// Document is one quotation snapshot: the inputs as quoted plus the result
// set computed from them.
type Document struct {
	QuoteNumber  int
	Version      int
	RefToken     string
	CustomerName string
	CreatedBy    string
	CreatedAt    time.Time
	Inputs       engine.Inputs
	Results      engine.Results
}

// Row is one labelled line of the quotation tables.
type Row struct {
	Label string
	Value string
	Unit  string
}

func num(format string, v float64) string {
	return fmt.Sprintf(format, v)
}

// InputRows lists the quoted parameters in form order.
func (d Document) InputRows() []Row {
	in := d.Inputs
	rows := []Row{
		{"Part Name", in.PartName, ""},
		{"Material", in.Material.Name, ""},
		{"Wire Diameter", num("%.3f", in.WireDiameter), "mm"},
		{fmt.Sprintf("%s Diameter", in.DiameterType), num("%.3f", in.Diameter), "mm"},
		{"Total Coils", num("%.2f", in.TotalCoils), ""},
		{"Active Coils", num("%.2f", in.ActiveCoils), ""},
		{"Free Length", num("%.2f", in.FreeLength), "mm"},
		{"Load Height", num("%.2f", in.LoadHeight), "mm"},
		{"Quantity", fmt.Sprintf("%d", in.Quantity), "pcs"},
		{"Setup Cost", num("%.2f", in.SetupCost), ""},
	}
	for _, opt := range []Row{
		{"Finish", in.Finish, ""},
		{"Ends", in.Ends, ""},
		{"Coil Direction", in.CoilDirection, ""},
		{"Tolerance", in.Tolerance, ""},
		{"Notes", in.Notes, ""},
	} {
		if opt.Value != "" {
			rows = append(rows, opt)
		}
	}
	return rows
}

// ResultRows lists the derived properties, dimensions first, price last.
func (d Document) ResultRows() []Row {
	r := d.Results
	risk := "No"
	if r.BucklingRisk {
		risk = "Yes"
	}
	return []Row{
		{"Mean Diameter", num("%.3f", r.MeanDiameter), "mm"},
		{"Outer Diameter", num("%.3f", r.OuterDiameter), "mm"},
		{"Inner Diameter", num("%.3f", r.InnerDiameter), "mm"},
		{"Spring Index", num("%.2f", r.SpringIndex), ""},
		{"Wahl Factor", num("%.3f", r.WahlFactor), ""},
		{"Solid Length", num("%.2f", r.SolidLength), "mm"},
		{"Pitch", num("%.3f", r.Pitch), "mm"},
		{"Wire Length", num("%.1f", r.WireLength), "mm"},
		{"Spring Weight", num("%.2f", r.SpringWeight), "g"},
		{"Spring Rate", num("%.3f", r.SpringRate), "N/mm"},
		{"Deflection at Load Height", num("%.2f", r.DeflectionAtLoad), "mm"},
		{"Load at Load Height", num("%.2f", r.LoadAtLoad), "N"},
		{"Shear Stress", num("%.1f", r.ShearStress), "MPa"},
		{"Stress at Solid Length", num("%.1f", r.StressAtSolid), "MPa"},
		{"Stress Ratio", num("%.3f", r.StressRatio), ""},
		{"Natural Frequency", num("%.1f", r.NaturalFrequency), "Hz"},
		{"Resonant Frequency", num("%.1f", r.ResonantFrequency), "Hz"},
		{"Energy Stored", num("%.1f", r.EnergyStored), "N*mm"},
		{"Buckling Risk", risk, ""},
		{"Relaxation Estimate", num("%.0f", r.RelaxationPct), "%"},
		{"Raw Material Cost", num("%.4f", r.RawMaterialCost), ""},
		{"Price Per Unit", num("%.2f", r.PricePerUnit), ""},
		{"Overall Unit Price", num("%.2f", r.OverallUnitPrice), ""},
		{"Total Wire Weight", num("%.2f", r.TotalWireWeight), "kg"},
	}
}

// FormulaRows mirrors the result fields with the formula used for each, for
// the XLSX formulas sheet.
func FormulaRows() []Row {
	return []Row{
		{"Mean Diameter", "OD - d (Outer) / ID + d (Inner) / as given (Mean)", ""},
		{"Spring Index", "C = Dm / d", ""},
		{"Wahl Factor", "K = (4C-1)/(4C-4) + 0.615/C", ""},
		{"Solid Length", "Ls = Nt * d", ""},
		{"Pitch", "p = (L0 - d) / (Nt - 1)", ""},
		{"Wire Length", "L = pi * Dm * Nt", ""},
		{"Spring Weight", "W = pi * (d/2)^2 * L * rho / 1000", "g"},
		{"Spring Rate", "k = G * d^4 / (8 * Dm^3 * Na)", "N/mm"},
		{"Load at Load Height", "F = k * (L0 - Lh)", "N"},
		{"Shear Stress", "tau = 8 * F * Dm * K / (pi * d^3)", "MPa"},
		{"Stress at Solid Length", "tau_s = 8 * k * (L0 - Ls) * Dm * K / (pi * d^3)", "MPa"},
		{"Natural Frequency", "fn = sqrt(1000k / m) / (2*pi)", "Hz"},
		{"Resonant Frequency", "fr = 0.65 * fn", "Hz"},
		{"Energy Stored", "E = 0.5 * k * x^2", "N*mm"},
		{"Buckling Ratio", "(L0 / Dm) / 2.6", ""},
		{"Price Per Unit", "raw material cost / margin ratio", ""},
		{"Overall Unit Price", "(setup + unit price * qty) / qty", ""},
	}
}

// Title is the document heading shared by the exporters.
func (d Document) Title() string {
	return fmt.Sprintf("Spring Quotation #%d rev %d", d.QuoteNumber, d.Version)
}

// Filename builds the download name for the given extension.
func (d Document) Filename(ext string) string {
	return fmt.Sprintf("spring-quote-%d-v%d.%s", d.QuoteNumber, d.Version, ext)
}
