package gc_content

import (
	"fmt"
	"io"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the spread of GC content across a record set.
// Records with an empty sequence are counted in Empty and left out of the
// statistics.
type Summary struct {
	Records int
	Empty   int
	Mean    float64
	StdDev  float64
	Median  float64
	Min     float64
	Max     float64
}

// Summarize computes a Summary over pairs
func Summarize(pairs []Pair) Summary {
	s := Summary{Records: len(pairs)}

	values := make([]float64, 0, len(pairs))
	for _, p := range pairs {
		if math.IsNaN(p.Percent) {
			s.Empty++
			continue
		}
		values = append(values, p.Percent)
	}
	if len(values) == 0 {
		s.Mean, s.StdDev, s.Median, s.Min, s.Max = math.NaN(), math.NaN(), math.NaN(), math.NaN(), math.NaN()
		return s
	}

	sort.Float64s(values)
	s.Mean = stat.Mean(values, nil)
	if len(values) > 1 {
		s.StdDev = stat.StdDev(values, nil)
	}
	s.Median = stat.Quantile(0.5, stat.Empirical, values, nil)
	s.Min = floats.Min(values)
	s.Max = floats.Max(values)
	return s
}

// WriteSummary prints s in the same layout as the FASTA overview reports
func WriteSummary(w io.Writer, s Summary) error {
	_, err := fmt.Fprintf(w,
		"\nGC content summary:\n"+
			"  Records:         %d\n"+
			"  Empty sequences: %d\n"+
			"  Mean GC:         %.2f%%\n"+
			"  Std. deviation:  %.2f\n"+
			"  Median GC:       %.2f%%\n"+
			"  GC range:        %.2f%% - %.2f%%\n",
		s.Records, s.Empty, s.Mean, s.StdDev, s.Median, s.Min, s.Max)
	return err
}
