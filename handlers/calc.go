package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/parthbhalara/spring-price-calculator/database"
	"github.com/parthbhalara/spring-price-calculator/engine"
	"github.com/parthbhalara/spring-price-calculator/types"

	"github.com/gin-gonic/gin"
)

// BuildInputs maps the bound form onto an engine parameter set. Material must
// already be resolved (table row or custom fields).
func BuildInputs(req types.CalcRequest, m engine.Material) engine.Inputs {
	in := engine.Inputs{
		WireDiameter: req.WireDiameter,
		Diameter:     req.Diameter,
		DiameterType: engine.DiameterType(req.DiameterType),
		TotalCoils:   req.TotalCoils,
		ActiveCoils:  req.ActiveCoils,
		FreeLength:   req.FreeLength,
		LoadHeight:   req.LoadHeight,
		Material:     m,
		MarginRatio:  req.MarginRatio,
		SetupCost:    req.SetupCost,
		Quantity:     req.Quantity,
		EndCondition: engine.EndCondition(req.EndCondition),

		PartName:      req.PartName,
		Finish:        req.Finish,
		Ends:          req.Ends,
		CoilDirection: req.CoilDirection,
		Tolerance:     req.Tolerance,
		Notes:         req.Notes,
	}
	if req.UseRateOverride {
		v := req.RateOverride
		in.RateOverride = &v
	}
	if req.UsePriceOverride {
		v := req.PriceOverride
		in.PriceOverride = &v
	}
	return in
}

// ResolveMaterial picks the DB row for MaterialID, or assembles a custom
// record from the form fields when MaterialID is 0.
func ResolveMaterial(req types.CalcRequest) engine.Material {
	if req.MaterialID > 0 {
		table := database.LoadMaterialTable()
		if m, ok := table.Lookup(req.MaterialID); ok {
			return m
		}
	}
	return engine.Material{
		Name:            "Custom",
		Category:        engine.CategoryOther,
		Density:         req.CustomDensity,
		ShearModulus:    req.CustomShearMod,
		ElasticModulus:  req.CustomElasticMod,
		UltimateTensile: req.CustomTensile,
		CostPerKg:       req.CustomCostPerKg,
	}
}

func applySettingsDefaults(req *types.CalcRequest) {
	var s types.Settings
	database.DB.QueryRow("SELECT default_margin_ratio, default_setup_cost FROM settings WHERE id=1").Scan(&s.DefaultMarginRatio, &s.DefaultSetupCost)
	if req.MarginRatio == 0 {
		req.MarginRatio = s.DefaultMarginRatio
	}
	if req.SetupCost == 0 {
		req.SetupCost = s.DefaultSetupCost
	}
	if req.Quantity <= 0 {
		req.Quantity = 1
	}
}

func Calculate(c *gin.Context) {
	var req types.CalcRequest
	if err := c.ShouldBind(&req); err != nil {
		log.Debugln("Bind Error:", err)
	}
	applySettingsDefaults(&req)

	in := BuildInputs(req, ResolveMaterial(req))

	if errs := engine.Validate(in); len(errs) > 0 {
		// Computation is skipped outright, the form gets inline messages.
		var b strings.Builder
		b.WriteString(`<span class="text-red-600">Fix inputs</span>`)
		for _, e := range errs {
			fmt.Fprintf(&b, `<div id="err-%s" hx-swap-oob="true" class="text-xs text-red-600">%s</div>`, e.Field, e.Message)
		}
		c.Writer.Header().Set("Content-Type", "text/html")
		c.String(http.StatusOK, b.String())
		return
	}

	r := engine.Compute(in)

	warning := ""
	if r.BucklingRisk {
		warning = "⚠ buckling risk"
	}
	indexNote := "OK"
	if !r.IndexInRange {
		indexNote = "outside 4-20"
	} else if !r.IndexOptimal {
		indexNote = "usable, optimal is 6-12"
	}

	response := fmt.Sprintf(`
		₹%.2f
		<div id="rate-div" hx-swap-oob="true" class="text-gray-900 font-bold">%.3f N/mm</div>
		<div id="load-div" hx-swap-oob="true" class="text-gray-900">%.2f N</div>
		<div id="stress-div" hx-swap-oob="true" class="text-gray-900">%.1f MPa (solid %.1f)</div>
		<div id="index-div" hx-swap-oob="true" class="text-gray-900">C=%.2f (%s)</div>
		<div id="weight-div" hx-swap-oob="true" class="text-gray-900">%.2f g</div>
		<div id="freq-div" hx-swap-oob="true" class="text-gray-900">%.1f Hz</div>
		<div id="overall-div" hx-swap-oob="true" class="text-orange-800 font-bold">₹%.2f / pc @ %d</div>
		<div id="warn-div" hx-swap-oob="true" class="text-red-800 font-bold">%s</div>
	`, r.PricePerUnit,
		r.SpringRate,
		r.LoadAtLoad,
		r.ShearStress, r.StressAtSolid,
		r.SpringIndex, indexNote,
		r.SpringWeight,
		r.NaturalFrequency,
		r.OverallUnitPrice, req.Quantity,
		warning)

	c.Writer.Header().Set("Content-Type", "text/html")
	c.String(http.StatusOK, response)
}

// API: full result set plus load-deflection curve, used by the charts
func CalculateJSON(c *gin.Context) {
	var req types.CalcRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	applySettingsDefaults(&req)

	in := BuildInputs(req, ResolveMaterial(req))
	if errs := engine.Validate(in); len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	r := engine.Compute(in)
	c.JSON(http.StatusOK, gin.H{
		"results": r,
		"curve":   engine.LoadDeflectionCurve(r, 25),
	})
}

// API: amortized unit price at each configured quantity break
func PriceSensitivity(c *gin.Context) {
	var req types.CalcRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	applySettingsDefaults(&req)

	in := BuildInputs(req, ResolveMaterial(req))
	if errs := engine.Validate(in); len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	r := engine.Compute(in)
	c.JSON(http.StatusOK, gin.H{
		"points": engine.PriceSensitivity(r.PricePerUnit, in.SetupCost, quantityBreaks()),
	})
}
