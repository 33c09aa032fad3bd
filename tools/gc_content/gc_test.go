package gc_content

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosalind_go/fasta"
	"rosalind_go/tools/seq_generator"
)

func TestPercentage(t *testing.T) {
	testCases := []struct {
		seq      string
		expected float64
	}{
		{"AGCTATAG", 37.5},
		{"GGCC", 100},
		{"ATAT", 0},
		{"gcAT", 0}, // lower case is not counted
		{"CCTGCGGAAGATCGGCACTAGAATAGCCAGAACCGTTTCTCTGAGGCTTCCGGCCTTCCCTCCCACTAATAATTCTGAGG", 53.75},
	}

	for _, tc := range testCases {
		got := Percentage(fasta.Record{Label: "doesnt matter", Sequence: tc.seq})
		assert.InDelta(t, tc.expected, got, 1e-9, "sequence %q", tc.seq)
	}
}

func TestPercentageEmptyIsNaN(t *testing.T) {
	assert.True(t, math.IsNaN(Percentage(fasta.Record{Label: "x"})))
}

func TestPercentageIgnoresOrderAndStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		seq := seq_generator.GenerateDNA(rng, 1+rng.Intn(200), rng.Float64())
		shuffled := []byte(seq)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := Percentage(fasta.Record{Sequence: seq})
		assert.Equal(t, got, Percentage(fasta.Record{Sequence: string(shuffled)}))
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 100.0)
	}
}

func TestAnalyzeKeepsOrder(t *testing.T) {
	records := []fasta.Record{
		{Label: "a", Sequence: "AGCTATAG"},
		{Label: "b", Sequence: ""},
		{Label: "c", Sequence: "GG"},
	}

	pairs := Analyze(records)
	require.Len(t, pairs, 3)
	assert.Equal(t, Pair{Label: "a", Percent: 37.5}, pairs[0])
	assert.Equal(t, "b", pairs[1].Label)
	assert.True(t, math.IsNaN(pairs[1].Percent))
	assert.Equal(t, Pair{Label: "c", Percent: 100}, pairs[2])
}

func TestMax(t *testing.T) {
	nan := math.NaN()
	testCases := []struct {
		name     string
		pairs    []Pair
		expected string
	}{
		{"tie keeps first", []Pair{{"x", 50}, {"y", 50}}, "x"},
		{"strictly greater wins", []Pair{{"x", 50}, {"y", 50.1}}, "y"},
		{"single", []Pair{{"only", 12}}, "only"},
		{"nan not selected over real", []Pair{{"x", 10}, {"y", nan}, {"z", 5}}, "x"},
		{"leading nan replaced", []Pair{{"x", nan}, {"y", 0}, {"z", 0}}, "y"},
		{"all nan", []Pair{{"x", nan}, {"y", nan}}, "x"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Max(tc.pairs)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got.Label)
		})
	}
}

func TestMaxEmpty(t *testing.T) {
	_, err := Max(nil)
	assert.ErrorIs(t, err, ErrNoRecords)
}

func TestPairString(t *testing.T) {
	assert.Equal(t, `("Rosalind_0808", 37.5)`, Pair{Label: "Rosalind_0808", Percent: 37.5}.String())
	assert.Equal(t, `("e", NaN)`, Pair{Label: "e", Percent: math.NaN()}.String())
}
