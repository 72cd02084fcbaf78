package types

// CalcRequest holds the spring form data sent by HTMX on every edit
type CalcRequest struct {
	MaterialID   int     `form:"material_id" json:"material_id"`
	WireDiameter float64 `form:"wire_diameter" json:"wire_diameter"`
	Diameter     float64 `form:"diameter" json:"diameter"`
	DiameterType string  `form:"diameter_type" json:"diameter_type"`
	TotalCoils   float64 `form:"total_coils" json:"total_coils"`
	ActiveCoils  float64 `form:"active_coils" json:"active_coils"`
	FreeLength   float64 `form:"free_length" json:"free_length"`
	LoadHeight   float64 `form:"load_height" json:"load_height"`

	MarginRatio  float64 `form:"margin_ratio" json:"margin_ratio"`
	SetupCost    float64 `form:"setup_cost" json:"setup_cost"`
	Quantity     int     `form:"quantity" json:"quantity"`
	EndCondition string  `form:"end_condition" json:"end_condition"`

	UseRateOverride  bool    `form:"use_rate_override" json:"use_rate_override"`
	RateOverride     float64 `form:"rate_override" json:"rate_override"`
	UsePriceOverride bool    `form:"use_price_override" json:"use_price_override"`
	PriceOverride    float64 `form:"price_override" json:"price_override"`

	// Custom material fields, read when MaterialID == 0
	CustomDensity    float64 `form:"custom_density" json:"custom_density"`
	CustomShearMod   float64 `form:"custom_shear_modulus" json:"custom_shear_modulus"`
	CustomElasticMod float64 `form:"custom_elastic_modulus" json:"custom_elastic_modulus"`
	CustomTensile    float64 `form:"custom_ultimate_tensile" json:"custom_ultimate_tensile"`
	CustomCostPerKg  float64 `form:"custom_cost_per_kg" json:"custom_cost_per_kg"`

	// Descriptive fields carried into quotes and exports only
	PartName      string `form:"part_name" json:"part_name"`
	Finish        string `form:"finish" json:"finish"`
	Ends          string `form:"ends" json:"ends"`
	CoilDirection string `form:"coil_direction" json:"coil_direction"`
	Tolerance     string `form:"tolerance" json:"tolerance"`
	Notes         string `form:"notes" json:"notes"`
}

// Settings holds global pricing defaults
type Settings struct {
	DefaultMarginRatio float64 `form:"default_margin_ratio"`
	DefaultSetupCost   float64 `form:"default_setup_cost"`
	QuantityBreaks     string  `form:"quantity_breaks"`
}

// Material represents one wire material row
type Material struct {
	ID              int
	Name            string  `form:"name"`
	Category        string  `form:"category"`
	Density         float64 `form:"density"`
	ShearModulus    float64 `form:"shear_modulus"`
	ElasticModulus  float64 `form:"elastic_modulus"`
	UltimateTensile float64 `form:"ultimate_tensile"`
	CostPerKg       float64 `form:"cost_per_kg"`
}

// QuoteItem is one spring design line inside a saved quote
type QuoteItem struct {
	CalcRequest
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

// QuoteSubmission is the JSON body for saving a quote
type QuoteSubmission struct {
	QuoteNumber  int         `json:"quote_number"`
	CustomerName string      `json:"customer_name"`
	PartName     string      `json:"part_name"`
	GrandTotal   float64     `json:"grand_total"`
	Items        []QuoteItem `json:"items"`
}
