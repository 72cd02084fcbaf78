package export

import (
	"io"

	"github.com/go-pdf/fpdf"
)

// WritePDF renders the quotation as a single-page tabular document.
func WritePDF(w io.Writer, d Document) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, d.Title(), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Customer: "+d.CustomerName, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Reference: "+d.RefToken, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Prepared by: "+d.CreatedBy+"  Date: "+d.CreatedAt.Format("2006-01-02"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	section := func(header string, rows []Row) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetFillColor(230, 230, 230)
		pdf.CellFormat(90, 7, header, "1", 0, "L", true, 0, "")
		pdf.CellFormat(50, 7, "Value", "1", 0, "L", true, 0, "")
		pdf.CellFormat(30, 7, "Unit", "1", 1, "L", true, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		for _, r := range rows {
			pdf.CellFormat(90, 6, r.Label, "1", 0, "L", false, 0, "")
			pdf.CellFormat(50, 6, r.Value, "1", 0, "R", false, 0, "")
			pdf.CellFormat(30, 6, r.Unit, "1", 1, "L", false, 0, "")
		}
		pdf.Ln(4)
	}
	section("Parameter", d.InputRows())
	section("Result", d.ResultRows())

	return pdf.Output(w)
}
