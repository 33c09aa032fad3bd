package gc_content

import (
	"bytes"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotSVG renders one bar per record. Empty records are drawn at zero.
func PlotSVG(pairs []Pair) ([]byte, error) {
	if len(pairs) == 0 {
		return nil, ErrNoRecords
	}

	p := plot.New()
	p.Title.Text = "GC Content per Record"
	p.X.Label.Text = "Record"
	p.Y.Label.Text = "GC Content (%)"
	p.Y.Min = 0
	p.Y.Max = 100

	values := make(plotter.Values, len(pairs))
	labels := make([]string, len(pairs))
	for i, pair := range pairs {
		if !math.IsNaN(pair.Percent) {
			values[i] = pair.Percent
		}
		labels[i] = pair.Label
	}

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return nil, err
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = color.RGBA{R: 50, G: 100, B: 200, A: 255}
	p.Add(bars)
	p.NominalX(labels...)

	// Scale width with the number of records
	width := 4*vg.Inch + vg.Length(len(pairs))*vg.Points(30)

	var buf bytes.Buffer
	writer, err := p.WriterTo(width, 4*vg.Inch, "svg")
	if err != nil {
		return nil, err
	}
	if _, err := writer.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
