package report

import (
	"errors"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/liserjrqlxue/dna2aa/pkg/codon"
)

// ErrNoRecords nothing to plot
var ErrNoRecords = errors.New("no translation records")

const (
	plotWidth  = 8 * vg.Inch
	plotHeight = 4 * vg.Inch
)

// Count occurrences of one amino acid
type Count struct {
	AminoAcid codon.AminoAcid `json:"aminoAcid"`
	N         int             `json:"n"`
}

// Composition counts amino acids of records in canonical order, then STOP,
// then UNKNOWN. Absent symbols are left out.
func Composition(records []codon.Record) []Count {
	var hist = make(map[codon.AminoAcid]int)
	for _, r := range records {
		hist[r.AminoAcid]++
	}
	var order = append(append([]codon.AminoAcid{}, codon.AminoAcids...), codon.Stop, codon.Unresolved)
	var counts []Count
	for _, aa := range order {
		if n := hist[aa]; n > 0 {
			counts = append(counts, Count{AminoAcid: aa, N: n})
		}
	}
	return counts
}

func compositionPlot(records []codon.Record) (*plot.Plot, error) {
	var counts = Composition(records)
	if len(counts) == 0 {
		return nil, ErrNoRecords
	}
	var (
		values = make(plotter.Values, len(counts))
		names  = make([]string, len(counts))
	)
	for i, c := range counts {
		values[i] = float64(c.N)
		names[i] = string(c.AminoAcid)
	}

	p := plot.New()
	p.Title.Text = "Amino Acid Composition"
	p.X.Label.Text = "Amino Acid"
	p.Y.Label.Text = "Count"

	bars, err := plotter.NewBarChart(values, vg.Points(14))
	if err != nil {
		return nil, err
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}

	p.Add(bars)
	p.NominalX(names...)
	return p, nil
}

// WriteCompositionPlot renders the composition bar chart in format (svg, png, pdf, ...)
func WriteCompositionPlot(w io.Writer, records []codon.Record, format string) error {
	p, err := compositionPlot(records)
	if err != nil {
		return err
	}
	writer, err := p.WriterTo(plotWidth, plotHeight, format)
	if err != nil {
		return err
	}
	_, err = writer.WriteTo(w)
	return err
}

// SaveCompositionPlot saves the composition bar chart, format taken from the path extension
func SaveCompositionPlot(path string, records []codon.Record) error {
	p, err := compositionPlot(records)
	if err != nil {
		return err
	}
	return p.Save(plotWidth, plotHeight, path)
}
