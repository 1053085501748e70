package app

import (
	"errors"
	goflag "flag"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/golang/glog"
	"github.com/hyp3rd/ewrap"
	"github.com/spf13/cobra"

	"github.com/sbezverk/shapesort/numeric"
	"github.com/sbezverk/shapesort/rands"
	"github.com/sbezverk/shapesort/shape"
	"github.com/sbezverk/shapesort/sort"
)

var (
	// ErrUnsupportedType error returns when the sample type is not known
	ErrUnsupportedType = errors.New("unsupported sample type")
	// ErrInvalidCount error returns when the number of samples is negative
	ErrInvalidCount = errors.New("invalid sample count")
)

type options struct {
	count      int
	sampleType string
	order      string
	seed       uint64
}

// NewShapeSortCommand returns the command which generates random samples, prints their shape,
// sorts them and prints the shape of the sorted samples.
func NewShapeSortCommand() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:          "shapesort",
		Short:        "Sort random samples and describe their shape",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// glog refuses to log cleanly until the go flag set is marked as parsed,
			// its flags are already set through pflag at this point.
			if !goflag.Parsed() {
				return goflag.CommandLine.Parse([]string{})
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVar(&o.count, "count", 100, "number of samples to generate")
	cmd.Flags().StringVar(&o.sampleType, "type", "int8", "type of samples: int8, int16, int32, int64, uint8, uint16, uint32, uint64, float32 or float64")
	cmd.Flags().StringVar(&o.order, "order", sort.Ascending.String(), "sort order: ascending or descending")
	cmd.Flags().Uint64Var(&o.seed, "seed", 0, "seed of the sample generator, 0 picks a random seed")

	return cmd
}

func (o *options) run(w io.Writer) error {
	if o.count < 0 {
		return ewrap.Wrapf(ErrInvalidCount, "%d", o.count)
	}
	order, err := sort.ParseOrder(o.order)
	if err != nil {
		return err
	}
	glog.Infof("Generating %d samples of type %s, sort order: %s", o.count, o.sampleType, order)
	switch o.sampleType {
	case "int8":
		return process[int8](o, order, w)
	case "int16":
		return process[int16](o, order, w)
	case "int32":
		return process[int32](o, order, w)
	case "int64":
		return process[int64](o, order, w)
	case "uint8":
		return process[uint8](o, order, w)
	case "uint16":
		return process[uint16](o, order, w)
	case "uint32":
		return process[uint32](o, order, w)
	case "uint64":
		return process[uint64](o, order, w)
	case "float32":
		return process[float32](o, order, w)
	case "float64":
		return process[float64](o, order, w)
	}

	return ewrap.Wrapf(ErrUnsupportedType, "%q", o.sampleType)
}

func process[T numeric.Number](o *options, order sort.Order, w io.Writer) error {
	var samples []T
	if o.seed != 0 {
		samples = rands.GenerateWith[T](rand.New(rand.NewPCG(o.seed, o.seed)), o.count)
	} else {
		samples = rands.Generate[T](o.count)
	}
	ushape, err := shape.FromSlice(samples)
	if err != nil {
		glog.Errorf("failed to describe generated samples with error: %+v", err)
		return err
	}
	fmt.Fprintf(w, "%v\n%s\n\n", samples, ushape)

	if err := sort.SortMerge(samples, order); err != nil {
		glog.Errorf("failed to sort samples with error: %+v", err)
		return err
	}
	sshape, err := shape.FromSlice(samples)
	if err != nil {
		glog.Errorf("failed to describe sorted samples with error: %+v", err)
		return err
	}
	fmt.Fprintf(w, "%v\n%s\n", samples, sshape)
	glog.V(5).Infof("sorted %d samples, mean: %v stddev: %v", sshape.Size(), sshape.Mean(), sshape.StdDev())

	return nil
}
