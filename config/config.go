// Package config holds tool versions and the option parsing shared by the
// tool controllers.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

// ErrUsage marks a command line the tool cannot run with
var ErrUsage = errors.New("usage error")

// GCOptions are the settings of one gc_content run
type GCOptions struct {
	InFile   string // the single positional argument
	PlotFile string
	Summary  bool
	LogLevel string
}

// ParseGCArgs reads gc_content flags followed by exactly one input path.
// Flag output (including -h) is written to out.
func ParseGCArgs(args []string, out io.Writer) (GCOptions, error) {
	var opts GCOptions

	fs := flag.NewFlagSet("gc_content", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&opts.PlotFile, "plot", "", "Write a per-record GC bar chart (SVG) to this path")
	fs.BoolVar(&opts.Summary, "summary", false, "Print mean, spread and range of GC content")
	fs.StringVar(&opts.LogLevel, "log_level", "warn", "Diagnostic level: debug, info, warn, error, off")
	fs.Usage = func() {
		fmt.Fprintln(out, "Usage: gc_content [options] <fasta_file>")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return GCOptions{}, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	if fs.NArg() != 1 {
		return GCOptions{}, fmt.Errorf("%w: expected exactly 1 argument, got %d", ErrUsage, fs.NArg())
	}
	opts.InFile = fs.Arg(0)
	return opts, nil
}
