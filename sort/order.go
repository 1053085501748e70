package sort

import (
	"errors"
	"strings"

	"github.com/hyp3rd/ewrap"
)

var (
	// ErrInvalidOrder error returns when the requested sort order is unknown
	ErrInvalidOrder = errors.New("invalid sort order")
)

// Order defines the direction of the sort
type Order uint8

const (
	// Ascending places smaller values first
	Ascending Order = iota + 1
	// Descending places larger values first
	Descending
)

func (o Order) String() string {
	switch o {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	}
	return "unknown"
}

func (o Order) valid() bool {
	return o == Ascending || o == Descending
}

// before returns true when cmp, the result of comparing a to b, requires a to be placed
// strictly before b.
func (o Order) before(cmp int) bool {
	if o == Descending {
		return cmp > 0
	}
	return cmp < 0
}

// ParseOrder converts the name of the order, as returned by String, into Order.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ascending", "asc":
		return Ascending, nil
	case "descending", "desc":
		return Descending, nil
	}
	return 0, ewrap.Wrapf(ErrInvalidOrder, "%q", s)
}
