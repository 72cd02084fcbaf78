package main

import (
	"os"

	"github.com/parthbhalara/spring-price-calculator/config"
	"github.com/parthbhalara/spring-price-calculator/database"
	"github.com/parthbhalara/spring-price-calculator/handlers"
	"github.com/parthbhalara/spring-price-calculator/logger"
	"github.com/parthbhalara/spring-price-calculator/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	log := logger.Get()

	cfgPath := os.Getenv("SPRINGQ_CONFIG")
	if cfgPath == "" {
		cfgPath = "spring_quote.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	logger.SetLevel(cfg.Logging.Level)

	database.InitDB(cfg.Server.DBPath, cfg.Pricing)

	r := gin.Default()
	r.LoadHTMLGlob("templates/*")

	store := cookie.NewStore([]byte(cfg.Server.SessionSecret))
	r.Use(sessions.Sessions("springquote", store))

	r.GET("/login", handlers.ShowLogin)
	r.POST("/login", handlers.Login)
	r.GET("/logout", handlers.Logout)

	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/", handlers.ShowDashboard)
		authorized.POST("/calculate", handlers.Calculate)
		authorized.POST("/calculate.json", handlers.CalculateJSON)
		authorized.POST("/sensitivity", handlers.PriceSensitivity)

		// QUOTE ROUTES
		authorized.POST("/quotes/save", handlers.SaveQuote)
		authorized.GET("/history", handlers.ShowHistory)
		authorized.GET("/quotes/load/:id", handlers.LoadQuote)
		authorized.GET("/quotes/export/:id/:format", handlers.ExportQuote)

		admin := authorized.Group("/settings")
		admin.Use(middleware.AdminRequired())
		{
			admin.GET("", handlers.ShowSettings)
			admin.POST("/global", handlers.UpdateGlobal)
			admin.POST("/material/update", handlers.UpdateMaterial)
			admin.POST("/material/add", handlers.AddMaterial)
		}
	}

	log.Infoln("listening on", cfg.Server.Addr)
	r.Run(cfg.Server.Addr)
}
