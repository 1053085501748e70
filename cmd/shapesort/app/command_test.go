package app

import (
	"bytes"
	"errors"
	goflag "flag"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sbezverk/shapesort/sort"
)

func TestShapeSortCommand(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		expect string
	}{
		{
			name:   "defaults",
			args:   []string{"--seed", "1"},
			expect: "size:100 nulls:0",
		},
		{
			name:   "ascending floats",
			args:   []string{"--count", "50", "--type", "float64", "--seed", "7"},
			expect: "ascending:true descending:false",
		},
		{
			name:   "descending unsigned",
			args:   []string{"--count", "50", "--type", "uint16", "--order", "desc", "--seed", "7"},
			expect: "ascending:false descending:true",
		},
		{
			name:   "no samples",
			args:   []string{"--count", "0"},
			expect: "min:none max:none",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			cmd := NewShapeSortCommand()
			cmd.SetOut(out)
			cmd.SetArgs(tt.args)
			require.NoError(t, cmd.Execute())
			// Output holds the unsorted and the sorted samples, each followed by its shape
			parts := strings.Split(strings.TrimSpace(out.String()), "\n\n")
			require.Len(t, parts, 2)
			require.Contains(t, parts[1], tt.expect)
		})
	}
}

func TestShapeSortCommandErrors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		expect error
	}{
		{
			name:   "unknown type",
			args:   []string{"--type", "complex128"},
			expect: ErrUnsupportedType,
		},
		{
			name:   "unknown order",
			args:   []string{"--order", "sideways"},
			expect: sort.ErrInvalidOrder,
		},
		{
			name:   "negative count",
			args:   []string{"--count", "-5"},
			expect: ErrInvalidCount,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewShapeSortCommand()
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(tt.args)
			err := cmd.Execute()
			if !errors.Is(err, tt.expect) {
				t.Fatalf("expected %+v, got %+v", tt.expect, err)
			}
		})
	}
}

func TestShapeSortCommandLogging(t *testing.T) {
	// Route glog to stderr for the duration of the test
	require.NoError(t, goflag.Set("logtostderr", "true"))
	defer goflag.Set("logtostderr", "false")

	r, w, err := os.Pipe()
	require.NoError(t, err)
	stderr := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = stderr }()

	cmd := NewShapeSortCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--count", "3", "--seed", "1"})
	runErr := cmd.Execute()
	os.Stderr = stderr
	w.Close()
	logged, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, runErr)

	require.True(t, goflag.Parsed())
	require.Contains(t, string(logged), "Generating 3 samples")
	for _, line := range strings.Split(string(logged), "\n") {
		require.False(t, strings.HasPrefix(line, "ERROR:"), "unexpected log line: %s", line)
	}
}
