package seq_generator

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
)

// WrapFasta breaks seq into lines of at most width characters, each ending
// in a newline. A non-positive width keeps the sequence on one line.
func WrapFasta(seq string, width int) string {
	if width <= 0 {
		width = len(seq)
	}
	var out strings.Builder
	for i := 0; i < len(seq); i += width {
		end := i + width
		if end > len(seq) {
			end = len(seq)
		}
		out.WriteString(seq[i:end] + "\n")
	}
	return out.String()
}

// WriteFasta generates one record per request and writes them to w
func WriteFasta(w io.Writer, rng *rand.Rand, requests []SequenceRequest, width int) error {
	for _, req := range requests {
		seq := GenerateDNA(rng, req.Length, req.GCBias)
		if _, err := fmt.Fprintf(w, ">%s\n%s", req.ID, WrapFasta(seq, width)); err != nil {
			return err
		}
	}
	return nil
}
