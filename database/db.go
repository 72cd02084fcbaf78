package database

import (
	"database/sql"
	"strconv"
	"strings"

	"github.com/parthbhalara/spring-price-calculator/config"
	"github.com/parthbhalara/spring-price-calculator/engine"
	"github.com/parthbhalara/spring-price-calculator/logger"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/crypto/bcrypt"
)

var DB *sql.DB

var log = logger.Get()

// DefaultBreaks holds the configured quantity break points, kept as the
// fallback when the settings row carries no usable list.
var DefaultBreaks []int

func InitDB(path string, pricing config.PricingConfig) {
	var err error
	DB, err = sql.Open("sqlite3", path)
	if err != nil {
		log.Fatal(err)
	}

	DefaultBreaks = pricing.QuantityBreaks

	createTables()
	seedData(pricing)
}

func breaksCSV(breaks []int) string {
	parts := make([]string, 0, len(breaks))
	for _, b := range breaks {
		parts = append(parts, strconv.Itoa(b))
	}
	return strings.Join(parts, ",")
}

func createTables() {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			role TEXT DEFAULT 'USER'
		);`,
		`CREATE TABLE IF NOT EXISTS settings (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			default_margin_ratio REAL DEFAULT 0.4,
			default_setup_cost REAL DEFAULT 500.0,
			quantity_breaks TEXT DEFAULT '1,10,50,100,250,500,1000,5000'
		);`,
		`CREATE TABLE IF NOT EXISTS materials (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT 'other',
			density REAL,          -- g/cm3
			shear_modulus REAL,    -- MPa
			elastic_modulus REAL,  -- MPa
			ultimate_tensile REAL, -- MPa
			cost_per_kg REAL
		);`,
		`CREATE TABLE IF NOT EXISTS quotes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			quote_number INTEGER,
			version INTEGER,
			ref_token TEXT,
			customer_name TEXT,
			part_name TEXT,
			total_price REAL,
			created_by TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS quote_items (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			quote_id INTEGER,
			part_name TEXT,
			material_id INTEGER,
			wire_diameter REAL,
			diameter REAL,
			diameter_type TEXT,
			total_coils REAL,
			active_coils REAL,
			free_length REAL,
			load_height REAL,
			margin_ratio REAL,
			setup_cost REAL,
			quantity INTEGER,
			end_condition TEXT,
			rate_override REAL,
			price_override REAL,
			finish TEXT,
			ends TEXT,
			coil_direction TEXT,
			tolerance TEXT,
			notes TEXT,
			unit_price REAL,
			total_price REAL
		);`,
	}

	for _, query := range queries {
		_, err := DB.Exec(query)
		if err != nil {
			log.Errorln("Error creating table:", err)
		}
	}
}

func seedData(pricing config.PricingConfig) {
	// 1. Seed Settings from the configured pricing defaults
	DB.Exec("INSERT OR IGNORE INTO settings (id, default_margin_ratio, default_setup_cost, quantity_breaks) VALUES (1, ?, ?, ?)",
		pricing.DefaultMarginRatio, pricing.DefaultSetupCost, breaksCSV(pricing.QuantityBreaks))

	// 2. Seed Materials
	// Moduli and tensile values are typical handbook figures for spring wire.
	// Rates per KG are estimates, update them in settings later.
	var matCount int
	DB.QueryRow("SELECT count(*) FROM materials").Scan(&matCount)
	if matCount == 0 {
		stmt, _ := DB.Prepare(`INSERT INTO materials
			(name, category, density, shear_modulus, elastic_modulus, ultimate_tensile, cost_per_kg)
			VALUES (?, ?, ?, ?, ?, ?, ?)`)
		seed := []struct {
			name     string
			category engine.Category
			density  float64
			g        float64
			e        float64
			uts      float64
			rate     float64
		}{
			{"Music Wire (ASTM A228)", engine.CategoryMusicWire, 7.85, 79300, 207000, 2300, 350},
			{"Oil-Tempered (ASTM A229)", engine.CategoryCarbonSteel, 7.85, 77200, 207000, 1700, 180},
			{"Chrome Silicon (ASTM A401)", engine.CategoryCarbonSteel, 7.85, 77200, 207000, 1900, 420},
			{"Stainless 302 (ASTM A313)", engine.CategoryStainless, 7.92, 69000, 193000, 1500, 800},
			{"Stainless 316", engine.CategoryStainless, 7.99, 69000, 193000, 1300, 950},
			{"Phosphor Bronze (ASTM B159)", engine.CategoryOther, 8.80, 41400, 103000, 900, 1200},
		}
		for _, m := range seed {
			stmt.Exec(m.name, string(m.category), m.density, m.g, m.e, m.uts, m.rate)
		}
	}

	// 3. Seed default admin user
	var userCount int
	DB.QueryRow("SELECT count(*) FROM users").Scan(&userCount)
	if userCount == 0 {
		hash, _ := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
		DB.Exec("INSERT INTO users (username, password_hash, role) VALUES ('admin', ?, 'ADMIN')", string(hash))
		log.Warnln("Seeded default admin user, change the password")
	}
}

// LoadMaterialTable hydrates the immutable engine lookup from the materials
// rows. Called per request so admin edits show up without a restart.
func LoadMaterialTable() *engine.Table {
	rows, err := DB.Query("SELECT id, name, category, density, shear_modulus, elastic_modulus, ultimate_tensile, cost_per_kg FROM materials")
	if err != nil {
		log.Errorln("Error loading materials:", err)
		return engine.NewTable(nil)
	}
	defer rows.Close()

	var materials []engine.Material
	for rows.Next() {
		var m engine.Material
		var category string
		rows.Scan(&m.ID, &m.Name, &category, &m.Density, &m.ShearModulus, &m.ElasticModulus, &m.UltimateTensile, &m.CostPerKg)
		m.Category = engine.Category(category)
		materials = append(materials, m)
	}
	return engine.NewTable(materials)
}
