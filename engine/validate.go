package engine

import "fmt"

// FieldError is one validation failure, keyed by the input field so the form
// can show it inline.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate runs every geometry check independently and collects all failures.
// Compute must not be called when the returned slice is non-empty.
func Validate(in Inputs) []FieldError {
	var errs []FieldError
	add := func(field, msg string) {
		errs = append(errs, FieldError{Field: field, Message: msg})
	}

	if in.WireDiameter <= 0 {
		add("wireDiameter", "wire diameter must be positive")
	}
	if in.Diameter <= 0 {
		add("diameter", "diameter must be positive")
	} else if in.WireDiameter > 0 {
		switch in.DiameterType {
		case DiameterOuter:
			if in.Diameter <= 3*in.WireDiameter {
				add("diameter", "outer diameter must exceed 3x wire diameter")
			}
		case DiameterInner:
			if in.Diameter <= 2*in.WireDiameter {
				add("diameter", "inner diameter must exceed 2x wire diameter")
			}
		default:
			if in.Diameter <= 2*in.WireDiameter {
				add("diameter", "mean diameter must exceed 2x wire diameter")
			}
		}
	}

	// Strictly more than one coil so pitch stays defined.
	if in.TotalCoils <= 1 {
		add("totalCoils", "total coils must be greater than 1")
	}
	if in.ActiveCoils <= 0 || in.ActiveCoils > in.TotalCoils {
		add("activeCoils", "active coils must be positive and not exceed total coils")
	}

	if in.FreeLength <= 0 {
		add("freeLength", "free length must be positive")
	}
	if in.LoadHeight <= 0 || in.LoadHeight >= in.FreeLength {
		add("loadHeight", "load height must be positive and less than free length")
	}

	if in.MarginRatio <= 0 || in.MarginRatio > 1 {
		add("marginRatio", "margin ratio must be in (0, 1]")
	}

	return errs
}
