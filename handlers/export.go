package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/parthbhalara/spring-price-calculator/database"
	"github.com/parthbhalara/spring-price-calculator/engine"
	"github.com/parthbhalara/spring-price-calculator/export"
	"github.com/parthbhalara/spring-price-calculator/types"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// buildDocument loads a stored quote and recomputes its first spring line
// into an export snapshot.
func buildDocument(quoteID string, includeCustomer bool) (export.Document, bool) {
	var d export.Document
	var created time.Time
	err := database.DB.QueryRow("SELECT quote_number, version, ref_token, customer_name, created_by, created_at FROM quotes WHERE id=?", quoteID).
		Scan(&d.QuoteNumber, &d.Version, &d.RefToken, &d.CustomerName, &d.CreatedBy, &created)
	if err != nil {
		return d, false
	}
	d.CreatedAt = created
	if !includeCustomer {
		d.CustomerName = ""
	}

	var req types.CalcRequest
	var rateOv, priceOv sql.NullFloat64
	row := database.DB.QueryRow(`SELECT part_name, material_id, wire_diameter, diameter, diameter_type, total_coils,
		active_coils, free_length, load_height, margin_ratio, setup_cost, quantity, end_condition,
		rate_override, price_override, finish, ends, coil_direction, tolerance, notes
		FROM quote_items WHERE quote_id=? ORDER BY id LIMIT 1`, quoteID)
	if err := row.Scan(&req.PartName, &req.MaterialID, &req.WireDiameter, &req.Diameter, &req.DiameterType,
		&req.TotalCoils, &req.ActiveCoils, &req.FreeLength, &req.LoadHeight, &req.MarginRatio,
		&req.SetupCost, &req.Quantity, &req.EndCondition, &rateOv, &priceOv,
		&req.Finish, &req.Ends, &req.CoilDirection, &req.Tolerance, &req.Notes); err != nil {
		return d, false
	}
	if rateOv.Valid {
		req.UseRateOverride = true
		req.RateOverride = rateOv.Float64
	}
	if priceOv.Valid {
		req.UsePriceOverride = true
		req.PriceOverride = priceOv.Float64
	}

	d.Inputs = BuildInputs(req, ResolveMaterial(req))
	if errs := engine.Validate(d.Inputs); len(errs) > 0 {
		return d, false
	}
	d.Results = engine.Compute(d.Inputs)
	return d, true
}

// API: Download a stored quote as csv, xlsx or pdf
func ExportQuote(c *gin.Context) {
	session := sessions.Default(c)
	isAdmin := session.Get("role") == "ADMIN"

	doc, ok := buildDocument(c.Param("id"), isAdmin)
	if !ok {
		c.String(http.StatusNotFound, "quote not found or no longer valid")
		return
	}

	format := c.Param("format")
	c.Header("Content-Disposition", `attachment; filename="`+doc.Filename(format)+`"`)

	var err error
	switch format {
	case "csv":
		c.Header("Content-Type", "text/csv")
		err = export.WriteCSV(c.Writer, doc)
	case "xlsx":
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		err = export.WriteXLSX(c.Writer, doc)
	case "pdf":
		c.Header("Content-Type", "application/pdf")
		err = export.WritePDF(c.Writer, doc)
	default:
		c.String(http.StatusBadRequest, "unsupported format: "+format)
		return
	}
	if err != nil {
		log.Errorln("Export failed:", err)
		c.Status(http.StatusInternalServerError)
	}
}
