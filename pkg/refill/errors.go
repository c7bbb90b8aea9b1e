package refill

import (
	"errors"
	"fmt"
)

var (
	// ErrLimitExceeded reports that a sequence or container carries more
	// missingness than the configured guard allows.
	ErrLimitExceeded = errors.New("refill: missingness limit exceeded")

	// ErrAllMissing reports a sequence with no present slot at all.
	ErrAllMissing = errors.New("refill: sequence is entirely missing")

	// ErrRoundingRequired reports a fractional fill value written into an
	// integer sequence without a rounding mode.
	ErrRoundingRequired = errors.New("refill: fractional fill requires a rounding mode")
)

// LimitError carries the offending missing count and the limit it broke.
type LimitError struct {
	Name        string
	Missing     int
	Size        int
	MaxCount    int     // -1 when the count limit is unset
	MaxFraction float64 // <0 when the fraction limit is unset
}

func (e *LimitError) Error() string {
	if e.MaxCount >= 0 {
		return fmt.Sprintf("%s: %d of %d slots missing, limit is %d", subject(e.Name), e.Missing, e.Size, e.MaxCount)
	}
	return fmt.Sprintf("%s: %d of %d slots missing, limit is %.4g of total", subject(e.Name), e.Missing, e.Size, e.MaxFraction)
}

func (e *LimitError) Is(target error) bool { return target == ErrLimitExceeded }

// AllMissingError identifies the sequence that had no present values.
type AllMissingError struct {
	Name string
}

func (e *AllMissingError) Error() string {
	return subject(e.Name) + ": no present values to impute from"
}

func (e *AllMissingError) Is(target error) bool { return target == ErrAllMissing }

// RoundError carries the fractional value that could not be stored.
type RoundError struct {
	Name  string
	Value float64
}

func (e *RoundError) Error() string {
	return fmt.Sprintf("%s: cannot store %v in an integer sequence without a rounding mode", subject(e.Name), e.Value)
}

func (e *RoundError) Is(target error) bool { return target == ErrRoundingRequired }

func subject(name string) string {
	if name == "" {
		return "refill"
	}
	return "refill: " + name
}
