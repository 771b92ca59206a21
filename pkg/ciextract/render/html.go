// Package render draws query tables as HTML or terminal text.
package render

import (
	"fmt"
	"html/template"
	"io"

	"github.com/ukaji3/ciextract-go/pkg/ciextract/models"
)

// TableCSS styles the rendered table: bold headers and bordered cells.
const TableCSS = `.table {
    width: 100%;
    border-collapse: collapse;
    border: 1px solid black;
}
.table thead th {
    font-weight: bold;
}
.table td, .table th {
    border: 1px solid black;
    padding: 8px;
    text-align: left;
}`

var tableTemplate = template.Must(template.New("table").Funcs(template.FuncMap{
	"dot": dotStyle,
}).Parse(`<table class="table">
<thead><tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{range .Records}}<tr>{{range .Values}}<td>{{.}}</td>{{end}}{{range .Indicators}}<td>{{if .Color}}<div style="{{dot .Color}}"></div>{{end}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
`))

// dotStyle returns the inline style of a circular indicator.
func dotStyle(c *models.Color) template.CSS {
	return template.CSS(fmt.Sprintf(
		"width: 20px; height: 20px; border-radius: 50%%; background-color: %s; display: block; margin: auto;", c.Hex))
}

// HTML writes the table markup. Cell text is escaped.
func HTML(w io.Writer, t models.Table) error {
	return tableTemplate.Execute(w, t)
}

// HTMLPage writes a standalone document embedding TableCSS.
func HTMLPage(w io.Writer, title string, t models.Table) error {
	if _, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"><title>%s</title><style>\n%s\n</style></head><body>\n",
		template.HTMLEscapeString(title), TableCSS); err != nil {
		return err
	}
	if err := HTML(w, t); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</body></html>\n")
	return err
}
