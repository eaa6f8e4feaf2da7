package report

import (
	"bytes"
	"image/color"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
)

const (
	ChartTopBooks = "Top 5 Libros Más Prestados"
	ChartByMonth  = "Préstamos por Mes"

	axisLoans = "Número de Préstamos"
)

var chartBlue = color.RGBA{R: 31, G: 119, B: 180, A: 255}

// Chart draws the top books bar chart above the loans per month line
// chart and returns the figure as PNG.
func Chart(top []model.BookLoanCount, months []model.MonthLoanCount) ([]byte, error) {
	bars, err := topBooksPlot(top)
	if err != nil {
		return nil, err
	}
	line, err := monthsPlot(months)
	if err != nil {
		return nil, err
	}

	plots := [][]*plot.Plot{{bars}, {line}}
	img := vgimg.New(8*vg.Inch, 5*vg.Inch)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows:      2,
		Cols:      1,
		PadX:      vg.Millimeter,
		PadY:      4 * vg.Millimeter,
		PadTop:    2 * vg.Millimeter,
		PadBottom: 2 * vg.Millimeter,
		PadLeft:   2 * vg.Millimeter,
		PadRight:  2 * vg.Millimeter,
	}
	canvases := plot.Align(plots, tiles, dc)
	for j := range plots {
		for i := range plots[j] {
			plots[j][i].Draw(canvases[j][i])
		}
	}

	var buf bytes.Buffer
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(&buf); err != nil {
		return nil, errors.Wrap(err, "png encode")
	}
	return buf.Bytes(), nil
}

func rotateTicks(p *plot.Plot) {
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
}

func topBooksPlot(top []model.BookLoanCount) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = ChartTopBooks
	p.X.Label.Text = "Título del Libro"
	p.Y.Label.Text = axisLoans
	rotateTicks(p)
	// gonum rejects empty bar charts; an empty frame is drawn instead.
	if len(top) == 0 {
		return p, nil
	}

	values := make(plotter.Values, len(top))
	names := make([]string, len(top))
	for i, b := range top {
		values[i] = float64(b.Prestamos)
		names[i] = b.Titulo
	}
	bars, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return nil, errors.Wrap(err, "bar chart")
	}
	bars.Color = chartBlue
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(names...)
	p.Y.Min = 0
	return p, nil
}

func monthsPlot(months []model.MonthLoanCount) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = ChartByMonth
	p.X.Label.Text = "Mes"
	p.Y.Label.Text = axisLoans
	rotateTicks(p)
	if len(months) == 0 {
		return p, nil
	}

	pts := make(plotter.XYs, len(months))
	names := make([]string, len(months))
	for i, m := range months {
		pts[i].X = float64(i)
		pts[i].Y = float64(m.Prestamos)
		names[i] = m.Mes
	}
	l, s, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, errors.Wrap(err, "line chart")
	}
	l.Color = chartBlue
	s.Color = chartBlue
	s.Shape = draw.CircleGlyph{}
	p.Add(l, s)
	p.NominalX(names...)
	return p, nil
}
