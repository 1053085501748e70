package sort

import (
	"github.com/golang/glog"
	"github.com/hyp3rd/ewrap"

	"github.com/sbezverk/shapesort/numeric"
)

// merge merges two ordered runs s[low:mid+1] and s[mid+1:high+1]. On equal values
// the element of the left run wins, which keeps the sort stable. Every element of both
// runs has already passed a boundary comparison, so all of them are ordered.
func merge[T numeric.Number](s []T, low, mid, high int, temp []T, order Order) {
	for k := low; k <= high; k++ {
		temp[k] = s[k]
	}
	i := low
	j := mid + 1
	for k := low; k <= high; k++ {
		if i > mid {
			s[k] = temp[j]
			j++
			continue
		}
		if j > high {
			s[k] = temp[i]
			i++
			continue
		}
		if cmp, err := numeric.Compare(temp[j], temp[i]); err == nil && order.before(cmp) {
			s[k] = temp[j]
			j++
		} else {
			s[k] = temp[i]
			i++
		}
	}
}

// swapPair orders a slice of exactly two elements.
func swapPair[T numeric.Number](s []T, order Order) error {
	cmp, err := numeric.Compare(s[1], s[0])
	if err != nil {
		return ewrap.Wrapf(err, "comparing elements 0 and 1")
	}
	if order.before(cmp) {
		s[0], s[1] = s[1], s[0]
	}

	return nil
}

func sort[T numeric.Number](s []T, order Order) error {
	n := len(s)
	temp := make([]T, n)
	// Bottom up, runs of width 1, 2, 4... are merged pairwise until a single run covers the slice
	for width := 1; width < n; width *= 2 {
		glog.V(6).Infof("merging runs of width %d, slice length %d", width, n)
		for low := 0; low < n-width; low += 2 * width {
			mid := low + width - 1
			high := min(low+2*width-1, n-1)
			// Runs which are already in order do not need merging
			cmp, err := numeric.Compare(s[mid+1], s[mid])
			if err != nil {
				return ewrap.Wrapf(err, "comparing elements %d and %d", mid, mid+1)
			}
			if !order.before(cmp) {
				continue
			}
			merge(s, low, mid, high, temp, order)
		}
	}

	return nil
}

// SortMerge sorts slice s in place in the requested order. If any two elements
// cannot be compared, the sort is aborted and the error wrapping numeric.ErrIncomparableValue
// is returned, in this case s holds a permutation of the original elements.
func SortMerge[T numeric.Number](s []T, order Order) error {
	if !order.valid() {
		return ewrap.Wrapf(ErrInvalidOrder, "%d", uint8(order))
	}
	var err error
	switch len(s) {
	case 0, 1:
		return nil
	case 2:
		err = swapPair(s, order)
	default:
		err = sort(s, order)
	}
	if err != nil {
		glog.V(5).Infof("%s merge sort of %d elements failed with error: %+v", order, len(s), err)
		return err
	}

	return nil
}

// SortMergeAscending sorts slice s in place in ascending order.
func SortMergeAscending[T numeric.Number](s []T) error {
	return SortMerge(s, Ascending)
}
