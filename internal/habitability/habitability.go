// Package habitability classifies temperatures against the liquid-water
// comfort band.
package habitability

const (
	// LowTemp is the coldest habitable temperature in kelvin (-15.5 °C).
	LowTemp = 257.65
	// HighTemp is the hottest habitable temperature in kelvin (34.4 °C).
	HighTemp = 307.55
)

// Class is the verdict for a single cell.
type Class uint8

const (
	Uncategorized Class = iota
	TooCold
	Habitable
	TooHot
)

func (c Class) String() string {
	switch c {
	case TooCold:
		return "too_cold"
	case Habitable:
		return "habitable"
	case TooHot:
		return "too_hot"
	default:
		return "uncategorized"
	}
}

// Classes lists every class in display order.
var Classes = []Class{TooCold, Habitable, TooHot, Uncategorized}

// IsHabitable reports whether kelvin lies in [LowTemp, HighTemp].
func IsHabitable(kelvin float64) bool {
	return kelvin >= LowTemp && kelvin <= HighTemp
}

// Classify partitions kelvin into too cold, habitable or too hot. Only NaN is
// uncategorized.
func Classify(kelvin float64) Class {
	switch {
	case kelvin < LowTemp:
		return TooCold
	case kelvin > HighTemp:
		return TooHot
	case IsHabitable(kelvin):
		return Habitable
	default:
		return Uncategorized
	}
}
