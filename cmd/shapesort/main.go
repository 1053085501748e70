package main

import (
	goflag "flag"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/pflag"

	"github.com/sbezverk/shapesort/cmd/shapesort/app"
)

func main() {
	command := app.NewShapeSortCommand()

	pflag.CommandLine.AddGoFlagSet(goflag.CommandLine)

	err := command.Execute()
	glog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
