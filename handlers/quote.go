package handlers

import (
	"database/sql"
	"math"
	"net/http"
	"time"

	"github.com/parthbhalara/spring-price-calculator/database"
	"github.com/parthbhalara/spring-price-calculator/engine"
	"github.com/parthbhalara/spring-price-calculator/types"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// API: Save Quote with Versioning & Duplicate Check
func SaveQuote(c *gin.Context) {
	var req types.QuoteSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session := sessions.Default(c)
	user := session.Get("username").(string)

	var quoteNumber int
	var version int

	if req.QuoteNumber == 0 {
		// New Quote
		err := database.DB.QueryRow("SELECT COALESCE(MAX(quote_number), 1000) + 1 FROM quotes").Scan(&quoteNumber)
		if err != nil {
			quoteNumber = 1001
		}
		version = 1
	} else {
		// Update (New Version)
		quoteNumber = req.QuoteNumber

		// 1. DUPLICATE CHECK
		// Fetch the latest version's details to compare
		var lastTotal float64
		var lastPart string
		err := database.DB.QueryRow("SELECT total_price, part_name FROM quotes WHERE quote_number = ? ORDER BY version DESC LIMIT 1", quoteNumber).Scan(&lastTotal, &lastPart)

		if err == nil {
			if math.Abs(lastTotal-req.GrandTotal) < 0.01 && lastPart == req.PartName {
				c.JSON(http.StatusConflict, gin.H{"error": "No changes detected (Exact same price & part as previous version)"})
				return
			}
		}

		// 2. Get Next Version
		err = database.DB.QueryRow("SELECT COALESCE(MAX(version), 0) + 1 FROM quotes WHERE quote_number = ?", quoteNumber).Scan(&version)
		if err != nil {
			version = 1
		}
	}

	refToken := uuid.NewString()

	// Insert Header
	res, err := database.DB.Exec("INSERT INTO quotes (quote_number, version, ref_token, customer_name, part_name, total_price, created_by) VALUES (?, ?, ?, ?, ?, ?, ?)",
		quoteNumber, version, refToken, req.CustomerName, req.PartName, req.GrandTotal, user)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database Error"})
		return
	}

	internalID, _ := res.LastInsertId()

	// Insert Items
	stmt, _ := database.DB.Prepare(`INSERT INTO quote_items
		(quote_id, part_name, material_id, wire_diameter, diameter, diameter_type, total_coils, active_coils,
		 free_length, load_height, margin_ratio, setup_cost, quantity, end_condition,
		 rate_override, price_override, finish, ends, coil_direction, tolerance, notes, unit_price, total_price)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)

	for _, item := range req.Items {
		var rateOv, priceOv sql.NullFloat64
		if item.UseRateOverride {
			rateOv = sql.NullFloat64{Float64: item.RateOverride, Valid: true}
		}
		if item.UsePriceOverride {
			priceOv = sql.NullFloat64{Float64: item.PriceOverride, Valid: true}
		}
		stmt.Exec(internalID, item.PartName, item.MaterialID, item.WireDiameter, item.Diameter, item.DiameterType,
			item.TotalCoils, item.ActiveCoils, item.FreeLength, item.LoadHeight, item.MarginRatio, item.SetupCost,
			item.Quantity, item.EndCondition, rateOv, priceOv,
			item.Finish, item.Ends, item.CoilDirection, item.Tolerance, item.Notes, item.UnitPrice, item.TotalPrice)
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "quote_number": quoteNumber, "version": version, "ref_token": refToken})
}

// Page: History List (Grouped)
func ShowHistory(c *gin.Context) {
	session := sessions.Default(c)
	user := session.Get("username")
	isAdmin := session.Get("role") == "ADMIN"

	rows, _ := database.DB.Query("SELECT id, quote_number, version, customer_name, part_name, total_price, created_by, created_at FROM quotes ORDER BY quote_number DESC, version DESC")

	type QuoteRow struct {
		ID           int
		QuoteNumber  int
		Version      int
		CustomerName string
		PartName     string
		TotalPrice   float64
		CreatedBy    string
		Date         time.Time
	}

	type QuoteGroup struct {
		Latest  QuoteRow
		History []QuoteRow
	}

	var groups []QuoteGroup
	var currentGroup *QuoteGroup

	for rows.Next() {
		var q QuoteRow
		var custName sql.NullString
		rows.Scan(&q.ID, &q.QuoteNumber, &q.Version, &custName, &q.PartName, &q.TotalPrice, &q.CreatedBy, &q.Date)

		if isAdmin {
			q.CustomerName = custName.String
		} else {
			q.CustomerName = "🔒 Restricted"
		}

		// SQL orders by QuoteNumber DESC, so same numbers come sequentially
		if currentGroup == nil || currentGroup.Latest.QuoteNumber != q.QuoteNumber {
			if currentGroup != nil {
				groups = append(groups, *currentGroup)
			}
			currentGroup = &QuoteGroup{Latest: q, History: []QuoteRow{}}
		} else {
			currentGroup.History = append(currentGroup.History, q)
		}
	}
	if currentGroup != nil {
		groups = append(groups, *currentGroup)
	}

	c.HTML(http.StatusOK, "history.html", gin.H{
		"Groups":  groups,
		"User":    user,
		"IsAdmin": isAdmin,
	})
}

// loadQuoteItems pulls the stored spring lines and recomputes each one so the
// form shows fresh derived values rather than what was saved.
func loadQuoteItems(quoteID string) []gin.H {
	rows, _ := database.DB.Query(`SELECT part_name, material_id, wire_diameter, diameter, diameter_type, total_coils,
		active_coils, free_length, load_height, margin_ratio, setup_cost, quantity, end_condition,
		rate_override, price_override, finish, ends, coil_direction, tolerance, notes, unit_price, total_price
		FROM quote_items WHERE quote_id=?`, quoteID)
	defer rows.Close()

	var items []gin.H
	for rows.Next() {
		var req types.CalcRequest
		var unitPrice, totalPrice float64
		var rateOv, priceOv sql.NullFloat64
		rows.Scan(&req.PartName, &req.MaterialID, &req.WireDiameter, &req.Diameter, &req.DiameterType,
			&req.TotalCoils, &req.ActiveCoils, &req.FreeLength, &req.LoadHeight, &req.MarginRatio,
			&req.SetupCost, &req.Quantity, &req.EndCondition, &rateOv, &priceOv,
			&req.Finish, &req.Ends, &req.CoilDirection, &req.Tolerance, &req.Notes, &unitPrice, &totalPrice)
		if rateOv.Valid {
			req.UseRateOverride = true
			req.RateOverride = rateOv.Float64
		}
		if priceOv.Valid {
			req.UsePriceOverride = true
			req.PriceOverride = priceOv.Float64
		}

		in := BuildInputs(req, ResolveMaterial(req))
		item := gin.H{"Request": req, "UnitPrice": unitPrice, "TotalPrice": totalPrice}
		if errs := engine.Validate(in); len(errs) == 0 {
			item["Results"] = engine.Compute(in)
		}
		items = append(items, item)
	}
	return items
}

// Page: Load Quote back into the calculator form
func LoadQuote(c *gin.Context) {
	quoteID := c.Param("id")
	session := sessions.Default(c)
	username := session.Get("username")
	role := session.Get("role")

	var quoteNum, ver int
	var customer, part string

	err := database.DB.QueryRow("SELECT quote_number, version, customer_name, part_name FROM quotes WHERE id=?", quoteID).Scan(&quoteNum, &ver, &customer, &part)
	if err != nil {
		c.Redirect(http.StatusFound, "/history")
		return
	}

	if role != "ADMIN" {
		customer = ""
	}

	matRows, _ := database.DB.Query("SELECT id, name FROM materials")
	var materials []types.Material
	for matRows.Next() {
		var m types.Material
		matRows.Scan(&m.ID, &m.Name)
		materials = append(materials, m)
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Items":        loadQuoteItems(quoteID),
		"Materials":    materials,
		"User":         username,
		"IsAdmin":      role == "ADMIN",
		"IsLoadMode":   true,
		"QuoteID":      quoteID,
		"QuoteNumber":  quoteNum,
		"Version":      ver,
		"CustomerName": customer,
		"PartName":     part,
	})
}
