package web

import (
	"html/template"

	"github.com/ukaji3/ciextract-go/pkg/ciextract/render"
)

var templateFuncs = template.FuncMap{
	"contains": func(slice []string, item string) bool {
		for _, s := range slice {
			if s == item {
				return true
			}
		}
		return false
	},
	"tableCSS": func() template.CSS { return template.CSS(render.TableCSS) },
}

var pageTemplate = template.Must(template.New("page").Funcs(templateFuncs).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Document Extraction Tool</title>
<style>
{{tableCSS}}
.warning { color: #8a6d3b; background: #fcf8e3; padding: 8px; }
.error { color: #a94442; }
</style>
</head>
<body>
<h1>Document Extraction Tool</h1>
<p>Enter the function name and stage name to get matching documents from the Excel file.</p>
{{if .LoadError}}<p class="error">{{.LoadError}}</p>{{end}}
<form method="post" action="/query">
<label>Function Name
<select name="function">
{{range .Functions}}<option value="{{.}}"{{if eq . $.Function}} selected{{end}}>{{.}}</option>
{{end}}</select>
</label>
<label>Stage Name(s)
<select name="stage" multiple>
{{range .Stages}}<option value="{{.}}"{{if contains $.Selected .}} selected{{end}}>{{.}}</option>
{{end}}</select>
</label>
<button type="submit">Enter</button>
</form>
{{if .Warning}}<p class="warning">{{.Warning}}</p>{{end}}
{{if .Table}}{{.Table}}{{end}}
</body>
</html>
`))

// pageData feeds pageTemplate.
type pageData struct {
	Functions []string
	Stages    []string
	Function  string
	Selected  []string
	Warning   string
	LoadError string
	Table     template.HTML
}
