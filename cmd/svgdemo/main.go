package main

import (
	"log/slog"
	"os"

	simplesvg "github.com/adishavit/simple-svg"
	"github.com/adishavit/simple-svg/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	simplesvg.SetLogger(logger)
	slog.Debug("starting svgdemo", "version", simplesvg.Version)

	layout := cfg.Layout()
	if err := layout.Validate(); err != nil {
		slog.Error("invalid layout", "error", err)
		os.Exit(1)
	}

	page := demoPage(layout.Dimensions)
	if err := page.Validate(); err != nil {
		slog.Warn("demo page has problems", "error", err)
	}

	doc := simplesvg.NewDocument(cfg.Output, layout)
	doc.AddCollection(page)
	if !doc.Save() {
		slog.Error("failed to save the file", "path", cfg.Output)
		os.Exit(1)
	}
	slog.Info("file saved", "path", cfg.Output, "shapes", doc.GetFragmentCount())

	if cfg.Preview != "" {
		if err := simplesvg.SavePreview(page, layout, cfg.Preview, nil); err != nil {
			slog.Error("save preview", "path", cfg.Preview, "error", err)
			os.Exit(1)
		}
		slog.Info("preview saved", "path", cfg.Preview)
	}
}

// demoPage builds the sample drawing: a border, two line charts, a circle,
// a caption, a hexagon and a rectangle.
func demoPage(d simplesvg.Dimensions) *simplesvg.ShapeCollection {
	rgb := simplesvg.NewRGB
	stroke := func(w float64, c simplesvg.NamedColor) simplesvg.Stroke {
		return simplesvg.NewStroke(w, c.Color())
	}
	page := simplesvg.NewShapeCollection()

	border := simplesvg.NewOutlinePolygon(stroke(1, simplesvg.Red)).AddPoints(
		simplesvg.Pt(0, 0), simplesvg.Pt(d.Width, 0),
		simplesvg.Pt(d.Width, d.Height), simplesvg.Pt(0, d.Height),
	)
	page.Add(border)

	chart := simplesvg.NewDefaultLineChart(simplesvg.Square(12.5))
	chart.AddPolyline(simplesvg.NewStrokePolyline(stroke(1.25, simplesvg.Blue)).AddPoints(
		simplesvg.Pt(0, 0), simplesvg.Pt(25, 75), simplesvg.Pt(50, 100), simplesvg.Pt(75, 112.5), simplesvg.Pt(100, 110)))
	chart.AddPolyline(simplesvg.NewStrokePolyline(stroke(1.25, simplesvg.Aqua)).AddPoints(
		simplesvg.Pt(0, 25), simplesvg.Pt(25, 55), simplesvg.Pt(50, 75), simplesvg.Pt(75, 80), simplesvg.Pt(100, 75)))
	chart.AddPolyline(simplesvg.NewStrokePolyline(stroke(1.25, simplesvg.Fuchsia)).AddPoints(
		simplesvg.Pt(0, 30), simplesvg.Pt(25, 37.5), simplesvg.Pt(50, 35), simplesvg.Pt(75, 25), simplesvg.Pt(100, 5)))
	page.Add(chart)

	page.Add(simplesvg.NewDefaultLineChart(simplesvg.Dimensions{Width: 162.5, Height: 12.5}).
		AddPolyline(simplesvg.NewStrokePolyline(stroke(1.25, simplesvg.Blue)).AddPoints(
			simplesvg.Pt(0, 0), simplesvg.Pt(25, 20), simplesvg.Pt(50, 32.5))).
		AddPolyline(simplesvg.NewStrokePolyline(stroke(1.25, simplesvg.Orange)).AddPoints(
			simplesvg.Pt(0, 25), simplesvg.Pt(25, 40), simplesvg.Pt(50, 50))).
		AddPolyline(simplesvg.NewStrokePolyline(stroke(1.25, simplesvg.Cyan)).AddPoints(
			simplesvg.Pt(0, 12.5), simplesvg.Pt(25, 32.5), simplesvg.Pt(50, 40))))

	page.Add(simplesvg.NewCircle(simplesvg.Pt(200, 200), 50,
		simplesvg.NewFill(rgb(100, 200, 120)), simplesvg.NewStroke(2.5, rgb(200, 250, 150))))

	page.Add(simplesvg.NewText(simplesvg.Pt(12.5, 192.5), "Simple SVG",
		simplesvg.NewFill(simplesvg.Silver.Color()), simplesvg.NewFont(25, "Verdana")))

	page.Add(simplesvg.NewPolygon(simplesvg.NewFill(rgb(200, 160, 220)), simplesvg.NewStroke(1.25, rgb(150, 160, 200))).AddPoints(
		simplesvg.Pt(50, 175), simplesvg.Pt(62.5, 180), simplesvg.Pt(82.5, 175),
		simplesvg.Pt(87.5, 150), simplesvg.Pt(62.5, 137.5), simplesvg.Pt(45, 157.5)))

	page.Add(simplesvg.NewRectangle(simplesvg.Pt(175, 137.5), 50, 37.5,
		simplesvg.NewFill(simplesvg.Yellow.Color()), simplesvg.NoStroke()))

	return page
}
