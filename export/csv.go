package export

import (
	"encoding/csv"
	"io"
)

// WriteCSV streams the quotation as "Label,Value,Unit" sections.
func WriteCSV(w io.Writer, d Document) error {
	cw := csv.NewWriter(w)

	meta := [][]string{
		{"Quotation", d.Title(), ""},
		{"Customer", d.CustomerName, ""},
		{"Reference", d.RefToken, ""},
		{"Prepared By", d.CreatedBy, ""},
		{"Date", d.CreatedAt.Format("2006-01-02"), ""},
		{"", "", ""},
	}
	for _, rec := range meta {
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	if err := cw.Write([]string{"Parameter", "Value", "Unit"}); err != nil {
		return err
	}
	for _, row := range d.InputRows() {
		if err := cw.Write([]string{row.Label, row.Value, row.Unit}); err != nil {
			return err
		}
	}

	if err := cw.Write([]string{"", "", ""}); err != nil {
		return err
	}
	if err := cw.Write([]string{"Result", "Value", "Unit"}); err != nil {
		return err
	}
	for _, row := range d.ResultRows() {
		if err := cw.Write([]string{row.Label, row.Value, row.Unit}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
