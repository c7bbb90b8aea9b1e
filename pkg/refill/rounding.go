package refill

import "math"

// Rounding selects how fractional fill values are written into integer
// sequences. RoundNone writes the value as-is; a fractional write into an
// integer slot then fails with ErrRoundingRequired.
type Rounding int

const (
	RoundNone Rounding = iota
	RoundNearest
	RoundDown
	RoundUp
	RoundHalfEven
)

func (r Rounding) String() string {
	switch r {
	case RoundNone:
		return "none"
	case RoundNearest:
		return "nearest"
	case RoundDown:
		return "down"
	case RoundUp:
		return "up"
	case RoundHalfEven:
		return "half-even"
	default:
		return "invalid"
	}
}

// ParseRounding maps a config string to a Rounding mode.
func ParseRounding(s string) (Rounding, bool) {
	switch s {
	case "", "none":
		return RoundNone, true
	case "nearest":
		return RoundNearest, true
	case "down", "floor":
		return RoundDown, true
	case "up", "ceil":
		return RoundUp, true
	case "half-even", "even":
		return RoundHalfEven, true
	default:
		return RoundNone, false
	}
}

// Round applies the mode to v. RoundNone returns v unchanged.
func Round(v float64, r Rounding) float64 {
	switch r {
	case RoundNearest:
		return math.Round(v)
	case RoundDown:
		return math.Floor(v)
	case RoundUp:
		return math.Ceil(v)
	case RoundHalfEven:
		return math.RoundToEven(v)
	default:
		return v
	}
}

// WriteBack rounds v per mode and stores it into slot i of vec.
func WriteBack(vec Vector, i int, v float64, r Rounding) error {
	return vec.Set(i, Round(v, r))
}
