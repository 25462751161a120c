package render

import (
	"bytes"
	"fmt"
	"html/template"

	"scout-server/internal/printing/domain"
)

const _documentTemplate = `<!DOCTYPE html>
<html lang="fr">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>{{.CSS}}</style>
</head>
<body>
{{- if .LogoURL}}
<img class="logo" src="{{.LogoURL}}" alt="logo">
{{- end}}
<header>{{.Header}}</header>
<main>
{{- if .Columns}}
<table>
<thead><tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{- range .Rows}}
<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{- end}}
</tbody>
</table>
{{- end}}
{{- if .Entries}}
<dl>
{{- range .Entries}}
<dt>{{.Label}}</dt><dd>{{.Value}}</dd>
{{- end}}
</dl>
{{- end}}
{{- if .Content}}
<section>{{.Content}}</section>
{{- end}}
</main>
<footer>{{.Footer}}</footer>
</body>
</html>
`

var _document = template.Must(template.New("document").Parse(_documentTemplate))

type documentData struct {
	Title   string
	CSS     template.CSS
	LogoURL string
	Header  template.HTML
	Footer  template.HTML
	Columns []string
	Rows    [][]string
	Entries []domain.Entry
	Content template.HTML
}

// HTML renders the document. Template parts and generic text content are
// trusted admin HTML; record values are escaped.
func HTML(document domain.Document) ([]byte, error) {
	header, footer := document.Template.Frame(document.Title, document.Date)

	data := documentData{
		Title:   document.Title,
		CSS:     template.CSS(document.Template.CSS),
		LogoURL: document.Template.LogoURL,
		Header:  template.HTML(header),
		Footer:  template.HTML(footer),
		Columns: document.Columns,
		Rows:    document.Rows,
		Entries: document.Entries,
		Content: template.HTML(document.Content),
	}

	var buffer bytes.Buffer
	if err := _document.Execute(&buffer, data); err != nil {
		return nil, fmt.Errorf("rendering document: %w", err)
	}

	return buffer.Bytes(), nil
}
