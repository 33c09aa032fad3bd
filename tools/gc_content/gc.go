// Package gc_content computes the GC percentage of FASTA records and picks
// the record with the highest one.
package gc_content

import (
	"errors"
	"fmt"
	"math"

	"rosalind_go/fasta"
)

// ErrNoRecords is returned when there is nothing to reduce
var ErrNoRecords = errors.New("no records")

// Pair is a record label with its GC percentage
type Pair struct {
	Label   string
	Percent float64
}

func (p Pair) String() string {
	return fmt.Sprintf("(%q, %v)", p.Label, p.Percent)
}

// Percentage returns 100 * (G + C) / len(sequence). Only upper-case G and C
// count. An empty sequence yields NaN; callers decide what to do with it.
func Percentage(rec fasta.Record) float64 {
	gc := 0
	for i := 0; i < len(rec.Sequence); i++ {
		switch rec.Sequence[i] {
		case 'G', 'C':
			gc++
		}
	}
	return 100 * float64(gc) / float64(len(rec.Sequence))
}

// Analyze maps every record to its (label, percentage) pair, keeping order
func Analyze(records []fasta.Record) []Pair {
	pairs := make([]Pair, 0, len(records))
	for _, rec := range records {
		pairs = append(pairs, Pair{Label: rec.Label, Percent: Percentage(rec)})
	}
	return pairs
}

// Max scans left to right and keeps the first strictly greatest pair, so a
// later equal value never replaces the winner. A NaN winner gives way to the
// first real value after it; a real value never gives way to NaN.
func Max(pairs []Pair) (Pair, error) {
	if len(pairs) == 0 {
		return Pair{}, ErrNoRecords
	}
	best := pairs[0]
	for _, p := range pairs[1:] {
		if p.Percent > best.Percent || (math.IsNaN(best.Percent) && !math.IsNaN(p.Percent)) {
			best = p
		}
	}
	return best, nil
}
