package render

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/polychaos/internal/poly"
)

// PlotUnivariate samples every polynomial of a one-dimensional
// expansion across [lower, upper] and renders the curves as one ASCII
// graph.
func PlotUnivariate(e poly.Expansion, lower, upper float64, samples int) (string, error) {
	if e.Dims() != 1 {
		return "", fmt.Errorf("%w: plotting needs a univariate expansion, got %d dimensions",
			poly.ErrDimensionMismatch, e.Dims())
	}
	if samples < 2 {
		samples = 2
	}
	if upper <= lower {
		return "", fmt.Errorf("%w: empty plot interval [%g,%g]", poly.ErrUnsupportedOperation, lower, upper)
	}

	series := make([][]float64, len(e))
	step := (upper - lower) / float64(samples-1)
	for i, p := range e {
		curve := make([]float64, samples)
		for s := 0; s < samples; s++ {
			v, err := p.Eval([]float64{lower + float64(s)*step})
			if err != nil {
				return "", err
			}
			curve[s] = v[0]
		}
		series[i] = curve
	}

	graph := asciigraph.PlotMany(series,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("q0 in [%g, %g]", lower, upper)),
	)
	return graph, nil
}
