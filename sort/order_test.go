package sort

import (
	"errors"
	"testing"
)

func TestParseOrder(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect Order
		fail   bool
	}{
		{
			name:   "ascending",
			input:  "ascending",
			expect: Ascending,
		},
		{
			name:   "short descending with spaces",
			input:  " DESC ",
			expect: Descending,
		},
		{
			name:  "unknown",
			input: "random",
			fail:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOrder(tt.input)
			if err != nil && !tt.fail {
				t.Fatalf("supposed to succeed but fail with error: %+v", err)
			}
			if err == nil && tt.fail {
				t.Fatalf("supposed to fail but succeeded")
			}
			if tt.fail && !errors.Is(err, ErrInvalidOrder) {
				t.Fatalf("expected ErrInvalidOrder, got %+v", err)
			}
			if got != tt.expect {
				t.Fatalf("expected %s, got %s", tt.expect, got)
			}
			if !tt.fail && got.String() != tt.expect.String() {
				t.Fatalf("round trip of %s failed", tt.expect)
			}
		})
	}
}
