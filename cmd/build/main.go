// Command build renders the demo gallery: sample CSV assets plus every
// chart variant as SVG pages, PNG images and an interactive line page,
// ready to be hosted with the serve command.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/tabviz/chartkit"
	"github.com/tabviz/chartkit/dataset"
	"github.com/tabviz/chartkit/internal/logger"
	"github.com/tabviz/chartkit/plot"
	"github.com/tabviz/chartkit/raster"
	"github.com/tabviz/chartkit/web"
)

const (
	weeklyCSV = `week,amount
1,10
2,30
3,20
4,45
5,25
`
	revenueCSV = `week,online,retail,wholesale
1,120,80,40
2,150,90,30
3,170,60,55
4,160,75,60
`
	deathCausesCSV = `cause,deaths
infection,110
accident,75
heart disease,160
other,55
`
)

func main() {
	var (
		out = flag.String("out", "docs", "output directory")
	)
	flag.Parse()

	log := logger.FromEnv("build")
	if err := build(context.Background(), *out, log); err != nil {
		log.Errorf("%s", err)
		os.Exit(1)
	}
	log.Infof("gallery written to %s", *out)
}

func build(ctx context.Context, out string, log *logger.Logger) error {
	if err := writeAssets(out); err != nil {
		return err
	}
	var (
		weekly  = filepath.Join(out, "weekly.csv")
		revenue = filepath.Join(out, "revenue.csv")
		deaths  = filepath.Join(out, "deaths.csv")
		specs   = []plot.SeriesSpec{
			{Label: "online", Field: "online"},
			{Label: "retail", Field: "retail"},
			{Label: "wholesale", Field: "wholesale"},
		}
	)
	grp, ctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		return linePage(ctx, out, weekly)
	})
	grp.Go(func() error {
		return multiLinePage(ctx, out, revenue, specs)
	})
	grp.Go(func() error {
		return piePage(ctx, out, deaths)
	})
	grp.Go(func() error {
		return columnPiePage(ctx, out, revenue)
	})
	grp.Go(func() error {
		return interactivePage(ctx, out, revenue, specs)
	})
	grp.Go(func() error {
		return pngImages(ctx, out, weekly, deaths)
	})
	if err := grp.Wait(); err != nil {
		return err
	}
	return writeIndex(out)
}

func linePage(ctx context.Context, out, source string) error {
	var buf bytes.Buffer
	opt := plot.Options{Mount: "weekly", XAxis: true, YAxis: true}
	if err := plot.New().Line(ctx, &buf, source, "week", "amount", opt); err != nil {
		return err
	}
	return writePage(out, "line.html", "Weekly amounts", buf.Bytes())
}

func multiLinePage(ctx context.Context, out, source string, specs []plot.SeriesSpec) error {
	var buf bytes.Buffer
	opt := plot.Options{Mount: "revenue", XAxis: true, YAxis: true}
	if err := plot.New().MultiLine(ctx, &buf, source, "week", specs, nil, opt); err != nil {
		return err
	}
	return writePage(out, "multiline.html", "Revenue by channel", buf.Bytes())
}

func piePage(ctx context.Context, out, source string) error {
	var buf bytes.Buffer
	opt := plot.Options{Mount: "deaths"}
	if err := plot.New().Pie(ctx, &buf, source, "cause", "deaths", opt); err != nil {
		return err
	}
	return writePage(out, "pie.html", "Causes of death", buf.Bytes())
}

func columnPiePage(ctx context.Context, out, source string) error {
	var buf bytes.Buffer
	opt := plot.Options{Mount: "channels"}
	fields := []string{"online", "retail", "wholesale"}
	if err := plot.New().ColumnPie(ctx, &buf, source, fields, opt); err != nil {
		return err
	}
	return writePage(out, "colpie.html", "Revenue share by channel", buf.Bytes())
}

func interactivePage(ctx context.Context, out, source string, specs []plot.SeriesSpec) error {
	frame, err := dataset.NewLoader().Load(ctx, source)
	if err != nil {
		return err
	}
	fields := []string{"week"}
	for _, s := range specs {
		fields = append(fields, s.Field)
	}
	rows := frame.Numbers(dataset.CoerceDrop, fields...)
	var series []web.LineSeries
	for _, s := range specs {
		series = append(series, web.LineSeries{
			Name:   s.Label,
			Values: dataset.Column(rows, s.Field),
		})
	}
	f, err := os.Create(filepath.Join(out, "interactive.html"))
	if err != nil {
		return err
	}
	defer f.Close()
	return web.InteractiveLine(f, "Revenue by channel", dataset.Column(rows, "week"), series)
}

func pngImages(ctx context.Context, out, weekly, deaths string) error {
	loader := dataset.NewLoader()

	frame, err := loader.Load(ctx, weekly)
	if err != nil {
		return err
	}
	rows := frame.Numbers(dataset.CoerceDrop, "week", "amount")
	lf, err := os.Create(filepath.Join(out, "line.png"))
	if err != nil {
		return err
	}
	defer lf.Close()
	err = raster.LinePNG(lf, "Weekly amounts", 600, 400, raster.Series{
		Name: "amount",
		XS:   dataset.Column(rows, "week"),
		YS:   dataset.Column(rows, "amount"),
	})
	if err != nil {
		return err
	}

	frame, err = loader.Load(ctx, deaths)
	if err != nil {
		return err
	}
	rows = frame.Numbers(dataset.CoerceDrop, "deaths")
	wedges := chartkit.Wedges(dataset.Labels(rows, "cause"), dataset.Column(rows, "deaths"))
	pf, err := os.Create(filepath.Join(out, "pie.png"))
	if err != nil {
		return err
	}
	defer pf.Close()
	return raster.PiePNG(pf, "Causes of death", 600, 400, wedges)
}

func writeAssets(out string) error {
	if err := os.MkdirAll(out, 0o755); err != nil {
		return err
	}
	assets := map[string]string{
		"weekly.csv":  weeklyCSV,
		"revenue.csv": revenueCSV,
		"deaths.csv":  deathCausesCSV,
	}
	for name, body := range assets {
		if err := os.WriteFile(filepath.Join(out, name), []byte(body), 0o644); err != nil {
			return err
		}
	}
	return nil
}

func writePage(out, name, title string, svg []byte) error {
	f, err := os.Create(filepath.Join(out, name))
	if err != nil {
		return err
	}
	defer f.Close()
	return web.SVGPage(f, title, svg)
}

func writeIndex(out string) error {
	pages := []struct {
		File  string
		Title string
	}{
		{"line.html", "Single-series line chart"},
		{"multiline.html", "Multi-series line chart"},
		{"interactive.html", "Multi-series line chart (interactive)"},
		{"pie.html", "Pie chart with legend"},
		{"colpie.html", "Aggregated column pie"},
	}
	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"><title>chartkit gallery</title></head><body>\n")
	buf.WriteString("<h1>chartkit gallery</h1>\n<ul>\n")
	for _, p := range pages {
		fmt.Fprintf(&buf, "<li><a href=%q>%s</a></li>\n", p.File, p.Title)
	}
	buf.WriteString("</ul>\n</body></html>\n")
	return os.WriteFile(filepath.Join(out, "index.html"), buf.Bytes(), 0o644)
}
