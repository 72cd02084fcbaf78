package handlers

import (
	"net/http"

	"github.com/parthbhalara/spring-price-calculator/database"
	"github.com/parthbhalara/spring-price-calculator/types"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func ShowDashboard(c *gin.Context) {
	session := sessions.Default(c)
	username := session.Get("username")
	role := session.Get("role")

	var s types.Settings
	database.DB.QueryRow("SELECT default_margin_ratio, default_setup_cost, quantity_breaks FROM settings WHERE id=1").Scan(&s.DefaultMarginRatio, &s.DefaultSetupCost, &s.QuantityBreaks)

	matRows, _ := database.DB.Query("SELECT id, name FROM materials")
	var materials []map[string]interface{}
	for matRows.Next() {
		var id int
		var name string
		matRows.Scan(&id, &name)
		materials = append(materials, map[string]interface{}{"ID": id, "Name": name})
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Materials":     materials,
		"Defaults":      s,
		"DiameterTypes": []string{"Outer", "Inner", "Mean"},
		"EndConditions": []string{"fixed-fixed", "fixed-hinged", "hinged-hinged", "fixed-free"},
		"User":          username,
		"IsAdmin":       role == "ADMIN",
	})
}
