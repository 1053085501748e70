// Package shape provides Shape, an online accumulator describing a stream of
// numeric samples: running mean, population variance, extrema and whether the
// samples arrived in ascending or descending order. Each sample is processed
// in constant time and nothing is buffered.
package shape

import (
	"fmt"
	"math"

	"github.com/golang/glog"
	"github.com/hyp3rd/ewrap"

	"github.com/sbezverk/shapesort/numeric"
)

// Shape is not safe for concurrent use.
type Shape[T numeric.Number] struct {
	// size includes null observations, nulls counts only them
	size  int
	nulls int
	min   T
	max   T
	lastV T
	// mean and variance are computed over non null samples
	mean     float64
	variance float64
	aSorted  bool
	dSorted  bool
}

// New returns an empty Shape, an empty sequence is considered both ascending and descending.
func New[T numeric.Number]() *Shape[T] {
	return &Shape[T]{
		aSorted: true,
		dSorted: true,
	}
}

// FromSlice builds Shape from the samples in their order, the result is equal
// to the Shape created by New with every sample added one by one.
func FromSlice[T numeric.Number](samples []T) (*Shape[T], error) {
	s := New[T]()
	if err := s.Extend(samples...); err != nil {
		return nil, err
	}

	return s, nil
}

// Extend adds samples in order, it stops on the first sample which cannot be added.
func (s *Shape[T]) Extend(samples ...T) error {
	for i, v := range samples {
		if err := s.Add(v); err != nil {
			return ewrap.Wrapf(err, "sample %d", i)
		}
	}

	return nil
}

// Add adds a new sample. If the sample cannot be ordered or converted to float64,
// an error is returned and Shape stays unchanged.
func (s *Shape[T]) Add(sample T) error {
	if numeric.IsNaN(sample) {
		glog.V(6).Infof("rejecting sample %v", sample)
		return ewrap.Wrapf(numeric.ErrIncomparableValue, "sample %v", sample)
	}
	fsample, err := numeric.ToFloat64(sample)
	if err != nil {
		glog.V(6).Infof("rejecting sample %v with error: %+v", sample, err)
		return err
	}

	// Welford's update, n is the number of samples before this one
	n := float64(s.values())
	mean := s.mean + (fsample-s.mean)/(n+1)
	variance := (s.variance*n + (fsample-s.mean)*(fsample-mean)) / (n + 1)
	if !finite(mean) || !finite(variance) {
		glog.V(6).Infof("rejecting sample %v, mean %v and variance %v overflow float64", sample, mean, variance)
		return ewrap.Wrapf(numeric.ErrConversionFailure, "sample %v overflows running statistics", sample)
	}
	s.mean = mean
	s.variance = variance

	if s.values() == 0 {
		s.min = sample
		s.max = sample
	} else {
		if sample < s.min {
			s.min = sample
		}
		if sample > s.max {
			s.max = sample
		}
		// Once cleared, a flag never comes back
		if sample < s.lastV {
			s.aSorted = false
		}
		if sample > s.lastV {
			s.dSorted = false
		}
	}
	s.lastV = sample
	s.size++

	return nil
}

// AddNull registers a missing observation. It increases Size by 1, but does not
// affect mean, variance, min, max or sorted status.
func (s *Shape[T]) AddNull() {
	s.size++
	s.nulls++
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (s *Shape[T]) values() int {
	return s.size - s.nulls
}

// Mean returns the arithmetic mean of the samples, 0 when there are none.
func (s *Shape[T]) Mean() float64 {
	return s.mean
}

// Variance returns the population variance of the samples.
func (s *Shape[T]) Variance() float64 {
	// Floating point error can push a near zero variance below zero
	if s.variance < 0 {
		return 0
	}
	return s.variance
}

// StdDev returns the population standard deviation of the samples.
func (s *Shape[T]) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Min returns the smallest sample, false is returned if no samples were added.
func (s *Shape[T]) Min() (T, bool) {
	return s.min, s.values() > 0
}

// Max returns the largest sample, false is returned if no samples were added.
func (s *Shape[T]) Max() (T, bool) {
	return s.max, s.values() > 0
}

// Sorted returns true if the samples arrived either in ascending or in descending order.
func (s *Shape[T]) Sorted() bool {
	return s.aSorted || s.dSorted
}

// Ascending returns true if every sample was not less than the previous one.
func (s *Shape[T]) Ascending() bool {
	return s.aSorted
}

// Descending returns true if every sample was not greater than the previous one.
func (s *Shape[T]) Descending() bool {
	return s.dSorted
}

// Size returns the number of observations, null ones included.
func (s *Shape[T]) Size() int {
	return s.size
}

// Len is the same as Size.
func (s *Shape[T]) Len() int {
	return s.size
}

// Nulls returns the number of observations added by AddNull.
func (s *Shape[T]) Nulls() int {
	return s.nulls
}

// Equal returns true when both Shapes have identical fields, variance included.
func (s *Shape[T]) Equal(o *Shape[T]) bool {
	if s == nil || o == nil {
		return s == o
	}
	return *s == *o
}

func (s *Shape[T]) String() string {
	lo, hi := "none", "none"
	if s.values() > 0 {
		lo = fmt.Sprintf("%v", s.min)
		hi = fmt.Sprintf("%v", s.max)
	}
	return fmt.Sprintf("size:%d nulls:%d min:%s max:%s mean:%v var:%v sd:%v ascending:%t descending:%t",
		s.size, s.nulls, lo, hi, s.mean, s.Variance(), s.StdDev(), s.aSorted, s.dSorted)
}
