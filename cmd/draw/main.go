// Command draw loads a delimited source and renders one chart variant to
// svg or png.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tabviz/chartkit"
	"github.com/tabviz/chartkit/dataset"
	"github.com/tabviz/chartkit/plot"
	"github.com/tabviz/chartkit/raster"
)

const (
	defaultWidth  = 600
	defaultHeight = 400
)

func main() {
	var (
		kind   = flag.String("type", "line", "chart type (line, multiline, pie, colpie)")
		xfield = flag.String("x", "", "key or label column")
		yfield = flag.String("y", "", "value column(s), comma separated")
		mount  = flag.String("mount", "chart", "id of the chart root")
		width  = flag.Float64("width", defaultWidth, "chart width")
		height = flag.Float64("height", defaultHeight, "chart height")
		noxax  = flag.Bool("no-xaxis", false, "hide the x axis")
		noyax  = flag.Bool("no-yaxis", false, "hide the y axis")
		format = flag.String("format", "svg", "output format (svg, png)")
		result = flag.String("file", "", "output file")
	)
	flag.Parse()

	source := flag.Arg(0)
	if source == "" {
		fmt.Fprintln(os.Stderr, "no source given")
		os.Exit(1)
	}
	w, err := output(*result)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	opt := plot.Options{
		Mount:  *mount,
		Width:  *width,
		Height: *height,
		XAxis:  !*noxax,
		YAxis:  !*noyax,
	}
	var (
		ctx    = context.Background()
		fields = splitFields(*yfield)
	)
	switch *format {
	case "svg":
		err = drawSVG(ctx, w, *kind, source, *xfield, fields, opt)
	case "png":
		err = drawPNG(ctx, w, *kind, source, *xfield, fields, int(*width), int(*height))
	default:
		err = fmt.Errorf("%s: unsupported format", *format)
	}
	if cerr := closeOutput(w); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func drawSVG(ctx context.Context, w io.Writer, kind, source, xfield string, yfields []string, opt plot.Options) error {
	p := plot.New()
	switch kind {
	case "line":
		if len(yfields) != 1 {
			return fmt.Errorf("line: exactly one value column expected")
		}
		return p.Line(ctx, w, source, xfield, yfields[0], opt)
	case "multiline":
		var specs []plot.SeriesSpec
		for _, f := range yfields {
			specs = append(specs, plot.SeriesSpec{Label: f, Field: f})
		}
		return p.MultiLine(ctx, w, source, xfield, specs, nil, opt)
	case "pie":
		if len(yfields) != 1 {
			return fmt.Errorf("pie: exactly one value column expected")
		}
		return p.Pie(ctx, w, source, xfield, yfields[0], opt)
	case "colpie":
		return p.ColumnPie(ctx, w, source, yfields, opt)
	default:
		return fmt.Errorf("%s: unrecognized chart type", kind)
	}
}

func drawPNG(ctx context.Context, w io.Writer, kind, source, xfield string, yfields []string, width, height int) error {
	frame, err := dataset.NewLoader().Load(ctx, source)
	if err != nil {
		return err
	}
	switch kind {
	case "line", "multiline":
		fields := append([]string{xfield}, yfields...)
		rows := frame.Numbers(dataset.CoerceDrop, fields...)
		xs := dataset.Column(rows, xfield)
		var series []raster.Series
		for _, f := range yfields {
			series = append(series, raster.Series{
				Name: f,
				XS:   xs,
				YS:   dataset.Column(rows, f),
			})
		}
		return raster.LinePNG(w, "", width, height, series...)
	case "pie":
		if len(yfields) != 1 {
			return fmt.Errorf("pie: exactly one value column expected")
		}
		rows := frame.Numbers(dataset.CoerceDrop, yfields[0])
		wedges := chartkit.Wedges(dataset.Labels(rows, xfield), dataset.Column(rows, yfields[0]))
		return raster.PiePNG(w, "", width, height, wedges)
	case "colpie":
		rows := frame.Numbers(dataset.CoerceDrop, yfields...)
		totals := dataset.Sum(rows, yfields...)
		values := make([]float64, len(yfields))
		for i, f := range yfields {
			values[i] = totals[f]
		}
		wedges := chartkit.Wedges(yfields, values)
		return raster.PiePNG(w, "", width, height, wedges)
	default:
		return fmt.Errorf("%s: unrecognized chart type", kind)
	}
}

func splitFields(str string) []string {
	var fields []string
	for _, f := range strings.Split(str, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

func output(file string) (io.Writer, error) {
	if file == "" {
		return os.Stdout, nil
	}
	return os.Create(file)
}

func closeOutput(w io.Writer) error {
	if c, ok := w.(io.Closer); ok && w != os.Stdout {
		return c.Close()
	}
	return nil
}
