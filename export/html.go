package export

import (
	"bytes"
	"html"
	"html/template"
	"strings"
	"sync"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	govega "github.com/reoring/govega"
	"github.com/reoring/govega/codec"
)

var page = template.Must(template.New("chart").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
{{- with .Description}}
  <meta name="description" content="{{.}}">
{{- end}}
  <script src="https://cdn.jsdelivr.net/npm/vega@3"></script>
  <script src="https://cdn.jsdelivr.net/npm/vega-lite@2"></script>
  <script src="https://cdn.jsdelivr.net/npm/vega-embed@3"></script>
</head>
<body>
  <div id="{{.ID}}"></div>
  <script type="text/javascript">
    vegaEmbed({{.Selector}}, {{.Spec}}).catch(console.error);
  </script>
</body>
</html>
`))

type pageData struct {
	Title       string
	Description string
	ID          string
	Selector    string
	Spec        template.JS
}

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// plainText strips any markup from s. The template escapes the result.
func plainText(s string) string {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(s)))
}

func renderHTML(doc *govega.Document, opt Options) ([]byte, error) {
	spec, err := codec.JSON{}.Encode(doc, govega.ExportOpt{InsertionOrder: opt.InsertionOrder, Indent: opt.Indent})
	if err != nil {
		return nil, err
	}
	var safe bytes.Buffer
	json.HTMLEscape(&safe, spec)

	title := plainText(opt.Title)
	if title == "" {
		title = plainText(govega.CurrentConfig().HTMLTitle)
	}
	var desc string
	if v, ok := doc.Get("description"); ok {
		if s, ok := v.(string); ok {
			desc = plainText(s)
		}
	}
	id := "vis-" + uuid.NewString()
	data := pageData{
		Title:       title,
		Description: desc,
		ID:          id,
		Selector:    "#" + id,
		Spec:        template.JS(safe.String()),
	}
	var out bytes.Buffer
	if err := page.Execute(&out, data); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
