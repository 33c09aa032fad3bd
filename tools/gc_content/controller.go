package gc_content

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"rosalind_go/config"
	"rosalind_go/fasta"
	"rosalind_go/logger"
	common "rosalind_go/utils"
)

// Run is the tool entry point called from main. Any failure ends the process
// with status 1.
func Run(args []string) {
	if err := RunE(args, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// RunE parses the input file, prints the (label, percentage) pairs followed
// by the label and percentage of the GC-richest record. Nothing is written to
// stdout when the input cannot be parsed.
func RunE(args []string, stdout, stderr io.Writer) error {
	opts, err := config.ParseGCArgs(args, stderr)
	if err != nil {
		return err
	}
	logger.Init(logger.Options{Level: opts.LogLevel, Writer: stderr})
	log := logger.Named("gc_content")

	text, err := common.LoadText(opts.InFile)
	if err != nil {
		return err
	}
	log.Debug().Str("file", opts.InFile).Int("bytes", len(text)).Msg("loaded input")

	records, err := fasta.Parse(text)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", opts.InFile, err)
	}
	log.Debug().Int("records", len(records)).Msg("parsed records")

	pairs := Analyze(records)
	for _, p := range pairs {
		if math.IsNaN(p.Percent) {
			log.Warn().Str("label", p.Label).Msg("record has an empty sequence; GC content is NaN")
		}
	}

	best, err := Max(pairs)
	if err != nil {
		return fmt.Errorf("%s: %w", opts.InFile, err)
	}

	if _, err := fmt.Fprintf(stdout, "%v\n%s\n%v\n", pairs, best.Label, best.Percent); err != nil {
		return err
	}

	if opts.Summary {
		if err := WriteSummary(stdout, Summarize(pairs)); err != nil {
			return err
		}
	}

	if opts.PlotFile != "" {
		svg, err := PlotSVG(pairs)
		if err != nil {
			return fmt.Errorf("failed to generate GC plot: %w", err)
		}
		if err := os.WriteFile(opts.PlotFile, svg, 0o644); err != nil {
			return fmt.Errorf("failed to write plot: %w", err)
		}
		log.Info().Str("path", opts.PlotFile).Msg("wrote GC plot")
	}
	return nil
}
