package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// WriteXLSX builds a workbook with a Quotation sheet and a mirrored Formulas
// sheet describing how each result was derived.
func WriteXLSX(w io.Writer, d Document) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Quotation"
	f.SetSheetName("Sheet1", sheet)

	f.SetCellValue(sheet, "A1", d.Title())
	f.SetCellValue(sheet, "A2", "Customer")
	f.SetCellValue(sheet, "B2", d.CustomerName)
	f.SetCellValue(sheet, "A3", "Reference")
	f.SetCellValue(sheet, "B3", d.RefToken)
	f.SetCellValue(sheet, "A4", "Prepared By")
	f.SetCellValue(sheet, "B4", d.CreatedBy)
	f.SetCellValue(sheet, "A5", "Date")
	f.SetCellValue(sheet, "B5", d.CreatedAt.Format("2006-01-02"))

	row := 7
	writeSection := func(header string, rows []Row) {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), header)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), "Value")
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), "Unit")
		row++
		for _, r := range rows {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.Label)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.Value)
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), r.Unit)
			row++
		}
		row++
	}
	writeSection("Parameter", d.InputRows())
	writeSection("Result", d.ResultRows())

	const formulas = "Formulas"
	if _, err := f.NewSheet(formulas); err != nil {
		return err
	}
	f.SetCellValue(formulas, "A1", "Result")
	f.SetCellValue(formulas, "B1", "Formula")
	f.SetCellValue(formulas, "C1", "Unit")
	for i, r := range FormulaRows() {
		f.SetCellValue(formulas, fmt.Sprintf("A%d", i+2), r.Label)
		f.SetCellValue(formulas, fmt.Sprintf("B%d", i+2), r.Value)
		f.SetCellValue(formulas, fmt.Sprintf("C%d", i+2), r.Unit)
	}

	return f.Write(w)
}
