package engine

// Category classifies spring wire for the relaxation estimate. Kept as an
// explicit tag on the material record so custom material names never get
// misclassified by string matching.
type Category string

const (
	CategoryMusicWire   Category = "music_wire"
	CategoryCarbonSteel Category = "carbon_steel"
	CategoryStainless   Category = "stainless"
	CategoryOther       Category = "other"
)

// Material is one row of the wire material table.
type Material struct {
	ID              int
	Name            string
	Category        Category
	Density         float64 // g/cm3
	ShearModulus    float64 // MPa
	ElasticModulus  float64 // MPa
	UltimateTensile float64 // MPa
	CostPerKg       float64
}

// RelaxationPct is the crude stress-relaxation estimate by wire category.
// Advisory only, not a physical derivation.
func (m Material) RelaxationPct() float64 {
	switch m.Category {
	case CategoryStainless:
		return 2.0
	case CategoryMusicWire:
		return 1.0
	default:
		return 3.0
	}
}

// Table is an immutable material lookup, hydrated once from the database.
type Table struct {
	byID map[int]Material
}

func NewTable(materials []Material) *Table {
	byID := make(map[int]Material, len(materials))
	for _, m := range materials {
		byID[m.ID] = m
	}
	return &Table{byID: byID}
}

func (t *Table) Lookup(id int) (Material, bool) {
	m, ok := t.byID[id]
	return m, ok
}
