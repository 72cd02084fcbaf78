package engine

// PricePoint is one row of the price-vs-volume table.
type PricePoint struct {
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// amortizedUnitPrice spreads the fixed setup cost across a production run.
func amortizedUnitPrice(pricePerUnit, setupCost float64, quantity int) float64 {
	q := float64(quantity)
	return (setupCost + pricePerUnit*q) / q
}

// PriceSensitivity evaluates the amortized unit price at each quantity break.
// Non-positive quantities are skipped. For setupCost > 0 the curve is strictly
// decreasing in quantity and converges toward pricePerUnit.
func PriceSensitivity(pricePerUnit, setupCost float64, quantities []int) []PricePoint {
	points := make([]PricePoint, 0, len(quantities))
	for _, q := range quantities {
		if q <= 0 {
			continue
		}
		points = append(points, PricePoint{
			Quantity:  q,
			UnitPrice: amortizedUnitPrice(pricePerUnit, setupCost, q),
		})
	}
	return points
}
