package chart

import (
	"context"
	"image/color"
	"io"
	"log/slog"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"lexstat/internal/fileutil"
	"lexstat/internal/logging"
)

const (
	defaultPNGWidth  = 1200
	defaultPNGHeight = 500
	// Width and Height are pixels at this resolution.
	pngDPI = 96
)

var (
	wordBarColor  = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	histogramFill = color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}
)

// PNG writes both panels side by side into an image file.
type PNG struct {
	Path   string
	Width  int
	Height int
	logger *slog.Logger
}

// Render implements Renderer.
func (p *PNG) Render(ctx context.Context, data Data) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	width, height := p.Width, p.Height
	if width <= 0 {
		width = defaultPNGWidth
	}
	if height <= 0 {
		height = defaultPNGHeight
	}

	words, err := wordsPlot(data)
	if err != nil {
		return err
	}
	hist := histogramPlot(data)

	img := vgimg.NewWith(
		vgimg.UseWH(vg.Length(width)*vg.Inch/pngDPI, vg.Length(height)*vg.Inch/pngDPI),
		vgimg.UseDPI(pngDPI),
	)
	dc := draw.New(img)
	plots := [][]*plot.Plot{{words, hist}}
	tiles := draw.Tiles{Rows: 1, Cols: 2, PadX: vg.Millimeter * 4, PadTop: vg.Millimeter * 2, PadBottom: vg.Millimeter * 2}
	canvases := plot.Align(plots, tiles, dc)
	for i, row := range plots {
		for j, pl := range row {
			pl.Draw(canvases[i][j])
		}
	}

	err = fileutil.WriteFileAtomic(p.Path, 0o644, func(w io.Writer) error {
		_, err := vgimg.PngCanvas{Canvas: img}.WriteTo(w)
		return err
	})
	if err != nil {
		return err
	}

	if p.logger != nil {
		p.logger.Info("chart written",
			logging.String(logging.FieldChartPath, p.Path),
			logging.Int("width", width),
			logging.Int("height", height),
		)
	}
	return nil
}

func wordsPlot(data Data) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = wordsTitle
	p.Y.Label.Text = "Count"
	p.Y.Min = 0
	if len(data.TopWords) == 0 {
		return p, nil
	}

	values := make(plotter.Values, len(data.TopWords))
	names := make([]string, len(data.TopWords))
	for i, entry := range data.TopWords {
		values[i] = float64(entry.Count)
		names[i] = entry.Key
	}

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return nil, err
	}
	bars.Color = wordBarColor
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	return p, nil
}

func histogramPlot(data Data) *plot.Plot {
	p := plot.New()
	p.Title.Text = histogramTitle
	p.X.Label.Text = data.Caption()
	p.Y.Label.Text = "Sentences"

	bins := data.Histogram()
	hb := make([]plotter.HistogramBin, len(bins))
	for i, bin := range bins {
		hb[i] = plotter.HistogramBin{Min: bin.Lower, Max: bin.Upper, Weight: float64(bin.Count)}
	}
	h := &plotter.Histogram{
		Bins:      hb,
		Width:     bins[0].Upper - bins[0].Lower,
		FillColor: histogramFill,
		LineStyle: plotter.DefaultLineStyle,
	}
	p.Add(h)
	return p
}
