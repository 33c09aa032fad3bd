package sanity_check

import (
	"fmt"
	"io"

	"rosalind_go/config"		// Version control file
	"rosalind_go/fasta"
	"rosalind_go/tools/gc_content"
)

const probe = ">probe\nAGCT\nATAG\n"

// Run performs a simple sanity check: it parses a built-in record, checks its
// GC content and prints a confirmation with the version number.
func Run(w io.Writer) error {
	records, err := fasta.Parse(probe)
	if err != nil {
		return fmt.Errorf("sanity check failed: %w", err)
	}
	if len(records) != 1 || gc_content.Percentage(records[0]) != 37.5 {
		return fmt.Errorf("sanity check failed: unexpected result %v", gc_content.Analyze(records))
	}
	_, err = fmt.Fprintf(w, "Successfully running Rosalind tools! (%s)\n", config.Main_version)
	return err
}
