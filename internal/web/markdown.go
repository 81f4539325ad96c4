package web

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// renderer turns chat answers and raw JSON into HTML.
type renderer struct {
	md goldmark.Markdown
}

func newRenderer() *renderer {
	// Raw HTML in answers is escaped: they come from a language model.
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)
	return &renderer{md: md}
}

// Markdown renders GFM source. On failure the source is shown escaped.
func (r *renderer) Markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return template.HTML("<pre>" + template.HTMLEscapeString(src) + "</pre>")
	}
	return template.HTML(buf.String())
}

// JSON renders indented JSON as a highlighted code block.
func (r *renderer) JSON(src string) template.HTML {
	return r.Markdown("```json\n" + src + "\n```\n")
}
