// Package rands produces uniformly distributed samples of any numeric type,
// it is used by the demonstration command and by the tests.
package rands

import (
	"math/rand/v2"
	"reflect"

	"github.com/sbezverk/shapesort/numeric"
)

// Generate returns n independently drawn values of type T. Integers are uniform over
// the whole range of T, floats are uniform in [0, 1).
func Generate[T numeric.Number](n int) []T {
	return GenerateWith[T](rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), n)
}

// GenerateWith is the same as Generate but draws from the supplied source, so the
// result is reproducible for a seeded r.
func GenerateWith[T numeric.Number](r *rand.Rand, n int) []T {
	if n <= 0 {
		return []T{}
	}
	s := make([]T, n)
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float32:
		for i := range s {
			s[i] = T(r.Float32())
		}
	case reflect.Float64:
		for i := range s {
			s[i] = T(r.Float64())
		}
	default:
		// Integer conversion keeps the low bits, every bit of Uint64 is uniform
		for i := range s {
			s[i] = T(r.Uint64())
		}
	}

	return s
}
