// Package web wraps rendered charts into standalone HTML pages: a
// template that inlines SVG output together with the hover rule for
// aggregated pie labels, and an echarts page whose legend toggles play
// the role of the original series checkboxes.
package web

import (
	"html/template"
	"io"
)

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
.slice .slice-label { visibility: hidden; }
.slice:hover .slice-label { visibility: visible; }
.load-error text { fill: firebrick; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{.Chart}}
</body>
</html>
`))

// SVGPage writes an HTML page embedding the given SVG chart inline, so
// the slice hover behavior works without any host page markup.
func SVGPage(w io.Writer, title string, svg []byte) error {
	data := struct {
		Title string
		Chart template.HTML
	}{
		Title: title,
		Chart: template.HTML(svg),
	}
	return pageTmpl.Execute(w, data)
}
