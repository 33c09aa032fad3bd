// Package seq_generator writes random, GC-biased DNA records in FASTA form.
package seq_generator

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"rosalind_go/logger"
)

// For repeated -seq arguments
type SequenceRequest struct {
	ID     string
	Length int
	GCBias float64
}

type MultiSeqFlag []SequenceRequest

func (m *MultiSeqFlag) String() string { return fmt.Sprint(*m) }
func (m *MultiSeqFlag) Set(value string) error {
	parts := strings.Split(value, ",")
	if len(parts) < 2 || len(parts) > 3 {
		return fmt.Errorf("expected format: name,length[,gc_bias]")
	}
	if parts[0] == "" {
		return fmt.Errorf("empty sequence name")
	}
	length, err := strconv.Atoi(parts[1])
	if err != nil || length < 0 {
		return fmt.Errorf("invalid length %q", parts[1])
	}
	gc := 0.5
	if len(parts) == 3 {
		gc, err = strconv.ParseFloat(parts[2], 64)
		if err != nil || gc < 0.0 || gc > 1.0 {
			return fmt.Errorf("invalid gc_bias %q", parts[2])
		}
	}
	*m = append(*m, SequenceRequest{ID: parts[0], Length: length, GCBias: gc})
	return nil
}

func Run(args []string) {
	fs := flag.NewFlagSet("seq_generator", flag.ExitOnError)

	name := fs.String("name", "random_seq", "Sequence name")
	length := fs.Int("length", 100, "Sequence length")
	gc := fs.Float64("gc_bias", 0.5, "GC bias (0-1)")
	seed := fs.Int64("seed", 0, "Random seed (0 picks one from the clock)")
	width := fs.Int("width", 60, "Line width of sequence lines")
	outFile := fs.String("out_file", "", "Output FASTA file")

	var multiSeq MultiSeqFlag
	fs.Var(&multiSeq, "seq", "Use format name,length[,gc_bias] (repeatable)")

	err := fs.Parse(args)										// Parse inputs
	if err != nil {
		fmt.Println("Error parsing flags:", err)				// Check for outright input failures
		os.Exit(1)												// E.g., expected int by recieved str
	}

	if len(fs.Args()) > 0 {										// If unparsed arguments remain:
		fmt.Printf("Unrecognized arguments: %v\n", fs.Args())	// Flag the error and report it
		fmt.Println("Use -h to view valid flags.")
		os.Exit(1)
	}

	if *gc < 0 || *gc > 1 {
		fmt.Fprintln(os.Stderr, "Error: -gc_bias must be between 0 and 1.")
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))
	logger.Named("seq_generator").Debug().Int64("seed", *seed).Msg("seeded generator")

	requests := []SequenceRequest(multiSeq)
	if len(requests) == 0 {
		requests = []SequenceRequest{{ID: *name, Length: *length, GCBias: *gc}}
	}

	if *outFile == "" {
		if err := WriteFasta(os.Stdout, rng, requests, *width); err != nil {
			fmt.Fprintln(os.Stderr, "Error writing sequences:", err)
			os.Exit(1)
		}
		return
	}

	file, err := os.Create(*outFile)
	if err != nil {
		fmt.Println("Error creating file:", err)
		os.Exit(1)
	}
	defer file.Close()
	if err := WriteFasta(file, rng, requests, *width); err != nil {
		fmt.Println("Error writing file:", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Wrote %d sequence(s) to %s\n", len(requests), *outFile)
}
