package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/parthbhalara/spring-price-calculator/engine"
)

func sampleDocument() Document {
	in := engine.Inputs{
		WireDiameter: 2,
		Diameter:     10,
		DiameterType: engine.DiameterOuter,
		TotalCoils:   10,
		ActiveCoils:  8,
		FreeLength:   50,
		LoadHeight:   40,
		Material: engine.Material{
			Name:         "Music Wire (ASTM A228)",
			Category:     engine.CategoryMusicWire,
			Density:      7.85,
			ShearModulus: 79300,
			CostPerKg:    350,
		},
		MarginRatio: 0.4,
		SetupCost:   500,
		Quantity:    100,
		PartName:    "Valve Return Spring",
	}
	return Document{
		QuoteNumber:  1001,
		Version:      2,
		RefToken:     "ref-123",
		CustomerName: "Acme Pumps",
		CreatedBy:    "admin",
		CreatedAt:    time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Inputs:       in,
		Results:      engine.Compute(in),
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleDocument()); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Spring Quotation #1001 rev 2",
		"Acme Pumps",
		"Parameter,Value,Unit",
		"Result,Value,Unit",
		"Spring Rate,38.721,N/mm",
		"Wire Diameter,2.000,mm",
		"Quantity,100,pcs",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("CSV missing %q\n%s", want, out)
		}
	}
}

func TestCSVSkipsEmptyDescriptiveFields(t *testing.T) {
	var buf bytes.Buffer
	d := sampleDocument() // Finish/Ends/Notes left empty
	if err := WriteCSV(&buf, d); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	if strings.Contains(buf.String(), "Finish") {
		t.Error("empty descriptive fields should not be exported")
	}
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, sampleDocument()); err != nil {
		t.Fatalf("WriteXLSX failed: %v", err)
	}
	// ZIP container magic
	if buf.Len() < 4 || buf.Bytes()[0] != 'P' || buf.Bytes()[1] != 'K' {
		t.Errorf("output does not look like an xlsx workbook")
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, sampleDocument()); err != nil {
		t.Fatalf("WritePDF failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("output does not look like a pdf document")
	}
}

func TestFilename(t *testing.T) {
	d := sampleDocument()
	if got := d.Filename("csv"); got != "spring-quote-1001-v2.csv" {
		t.Errorf("filename = %q", got)
	}
}
