package render

import (
	"bytes"
	"html/template"

	"github.com/rezonia/df-accountant/internal/assets"
	"github.com/rezonia/df-accountant/internal/model"
)

// Renderer formats invoices as self-contained HTML pages. Branding is
// injected at construction and shared by every render.
type Renderer struct {
	branding assets.Branding
}

// NewRenderer creates a renderer using the given branding assets.
func NewRenderer(branding assets.Branding) *Renderer {
	return &Renderer{branding: branding}
}

// Render produces the full HTML page for one invoice.
func (r *Renderer) Render(inv *model.Invoice) (string, error) {
	return Format(BuildDocument(inv, r.branding))
}

// view wraps a Document for template execution. The branding data URIs
// are produced locally from trusted bytes, so they are marked safe here
// rather than letting the template engine strip them.
type view struct {
	Document
	LogoURI      template.URL
	WatermarkURI template.URL
}

// Format emits the HTML page for a generic document tree.
func Format(doc Document) (string, error) {
	var buf bytes.Buffer
	v := view{
		Document:     doc,
		LogoURI:      template.URL(doc.Logo),
		WatermarkURI: template.URL(doc.Watermark),
	}
	if err := pageTemplate.Execute(&buf, v); err != nil {
		return "", model.NewRenderError("render", "formatting document", err)
	}
	return buf.String(), nil
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  @page { size: A4; margin: 18mm; }
  body { font-family: "Helvetica Neue", Helvetica, Arial, sans-serif; color: #1f2430; margin: 0; position: relative; }
  .watermark { position: fixed; top: 30%; left: 50%; transform: translate(-50%, -30%); opacity: 0.06; z-index: 0; }
  .watermark img { width: 420px; }
  .content { position: relative; z-index: 1; }
  header { display: flex; justify-content: space-between; align-items: flex-start; border-bottom: 2px solid #1f2430; padding-bottom: 12px; }
  header img { max-height: 64px; }
  h1 { font-size: 26px; margin: 0 0 6px 0; letter-spacing: 1px; }
  .meta { font-size: 12px; color: #555; }
  .meta span { font-weight: 600; color: #1f2430; }
  section { margin-top: 18px; }
  h2 { font-size: 13px; text-transform: uppercase; letter-spacing: 1px; color: #6b7280; border-bottom: 1px solid #e5e7eb; padding-bottom: 4px; margin: 0 0 8px 0; }
  .row { display: flex; font-size: 13px; padding: 2px 0; }
  .row .label { width: 200px; color: #6b7280; }
  table { width: 100%; border-collapse: collapse; font-size: 13px; margin-top: 4px; }
  th { text-align: left; background: #f3f4f6; padding: 6px 8px; border-bottom: 1px solid #d1d5db; }
  td { padding: 6px 8px; border-bottom: 1px solid #e5e7eb; }
  tfoot td { font-weight: 700; border-top: 2px solid #1f2430; border-bottom: none; }
</style>
</head>
<body>
{{if .Watermark}}<div class="watermark"><img src="{{.WatermarkURI}}" alt=""></div>{{end}}
<div class="content">
<header>
  <div>
    <h1>{{.Heading.Title}}</h1>
    <div class="meta">{{range .Heading.Subtitle}}{{.Label}}: <span>{{.Value}}</span><br>{{end}}</div>
  </div>
  {{if .Logo}}<img src="{{.LogoURI}}" alt="logo">{{end}}
</header>
{{range .Sections}}
<section>
  <h2>{{.Title}}</h2>
  {{range .Fields}}<div class="row"><div class="label">{{.Label}}</div><div>{{.Value}}</div></div>
  {{end}}{{with .Table}}<table>
  <thead><tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>
  <tbody>{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
  {{end}}</tbody>
  {{if .Footer}}<tfoot><tr>{{range .Footer}}<td>{{.}}</td>{{end}}</tr></tfoot>{{end}}
  </table>{{end}}
</section>
{{end}}
</div>
</body>
</html>
`))
