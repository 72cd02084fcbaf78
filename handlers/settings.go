package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/parthbhalara/spring-price-calculator/database"
	"github.com/parthbhalara/spring-price-calculator/logger"
	"github.com/parthbhalara/spring-price-calculator/types"

	"github.com/gin-gonic/gin"
)

var log = logger.Get()

// quantityBreaks parses the stored comma-separated break points.
func quantityBreaks() []int {
	var raw string
	database.DB.QueryRow("SELECT quantity_breaks FROM settings WHERE id=1").Scan(&raw)

	var breaks []int
	for _, part := range strings.Split(raw, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n <= 0 {
			continue
		}
		breaks = append(breaks, n)
	}
	if len(breaks) == 0 {
		breaks = database.DefaultBreaks
	}
	if len(breaks) == 0 {
		breaks = []int{1, 10, 50, 100, 250, 500, 1000, 5000}
	}
	return breaks
}

func ShowSettings(c *gin.Context) {
	var s types.Settings
	database.DB.QueryRow("SELECT default_margin_ratio, default_setup_cost, quantity_breaks FROM settings WHERE id=1").Scan(&s.DefaultMarginRatio, &s.DefaultSetupCost, &s.QuantityBreaks)

	matRows, _ := database.DB.Query("SELECT id, name, category, density, shear_modulus, elastic_modulus, ultimate_tensile, cost_per_kg FROM materials")
	var materials []types.Material
	for matRows.Next() {
		var m types.Material
		matRows.Scan(&m.ID, &m.Name, &m.Category, &m.Density, &m.ShearModulus, &m.ElasticModulus, &m.UltimateTensile, &m.CostPerKg)
		materials = append(materials, m)
	}

	c.HTML(http.StatusOK, "settings.html", gin.H{
		"Settings":  s,
		"Materials": materials,
	})
}

func UpdateGlobal(c *gin.Context) {
	var s types.Settings
	if err := c.ShouldBind(&s); err != nil {
		return
	}
	if s.DefaultMarginRatio <= 0 || s.DefaultMarginRatio > 1 {
		c.String(http.StatusBadRequest, "margin ratio must be in (0, 1]")
		return
	}
	database.DB.Exec("UPDATE settings SET default_margin_ratio=?, default_setup_cost=?, quantity_breaks=? WHERE id=1",
		s.DefaultMarginRatio, s.DefaultSetupCost, s.QuantityBreaks)
	c.Status(http.StatusOK)
}

func UpdateMaterial(c *gin.Context) {
	id := c.PostForm("id")
	var m types.Material
	if err := c.ShouldBind(&m); err != nil {
		return
	}
	database.DB.Exec(`UPDATE materials SET name=?, category=?, density=?, shear_modulus=?, elastic_modulus=?, ultimate_tensile=?, cost_per_kg=? WHERE id=?`,
		m.Name, m.Category, m.Density, m.ShearModulus, m.ElasticModulus, m.UltimateTensile, m.CostPerKg, id)
	c.Status(http.StatusOK)
}

func AddMaterial(c *gin.Context) {
	var m types.Material
	if err := c.ShouldBind(&m); err != nil {
		return
	}
	database.DB.Exec(`INSERT INTO materials (name, category, density, shear_modulus, elastic_modulus, ultimate_tensile, cost_per_kg) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.Name, m.Category, m.Density, m.ShearModulus, m.ElasticModulus, m.UltimateTensile, m.CostPerKg)
	c.Redirect(http.StatusSeeOther, "/settings")
}
