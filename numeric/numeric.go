package numeric

import (
	"errors"
	"math"

	"github.com/hyp3rd/ewrap"
	"golang.org/x/exp/constraints"
)

var (
	// ErrIncomparableValue error returns when two values have no defined order, NaN for example
	ErrIncomparableValue = errors.New("incomparable value")
	// ErrConversionFailure error returns when a value cannot be represented as a finite float64
	ErrConversionFailure = errors.New("conversion to float64 failed")
)

// Number is a set of types which can be sorted and accumulated into statistics.
// Members are ordered (floats only partially, because of NaN), convertible
// to and from float64, have zero value as the additive identity and are
// printable with fmt.
type Number interface {
	constraints.Integer | constraints.Float
}

// IsNaN returns true only for a floating point NaN, integer types never match.
func IsNaN[T Number](v T) bool {
	return v != v
}

// ToFloat64 converts v to float64 for the statistical accumulation.
func ToFloat64[T Number](v T) (float64, error) {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ewrap.Wrapf(ErrConversionFailure, "value %v", v)
	}

	return f, nil
}

// Compare returns -1 if a < b, 1 if a > b and 0 when they are equal.
func Compare[T Number](a, b T) (int, error) {
	switch {
	case a < b:
		return -1, nil
	case a > b:
		return 1, nil
	case a == b:
		return 0, nil
	}

	return 0, ewrap.Wrapf(ErrIncomparableValue, "%v and %v", a, b)
}
