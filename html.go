package reviewdoc

import (
	"fmt"
	"html"
	"strings"
)

// htmlDocumentTemplate wraps the assembled blocks in a complete HTML5
// document with the selected style inlined.
const htmlDocumentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
%s
</style>
</head>
<body>
%s</body>
</html>`

// htmlAssembler lays a report into styled div blocks with literal <br>
// line breaks. Links are not re-styled in this format.
type htmlAssembler struct {
	css string
}

func (a *htmlAssembler) Assemble(rep *report) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "<div class=\"title\">%s</div>\n", html.EscapeString(rep.Title))
	for _, line := range rep.Meta {
		fmt.Fprintf(&b, "<div class=\"meta\">%s</div>\n", html.EscapeString(line))
	}
	for _, p := range rep.Paragraphs {
		class := "paragraph"
		if p.Heading {
			class = "heading"
		}
		text := strings.ReplaceAll(html.EscapeString(p.Text), "\n", "<br>")
		fmt.Fprintf(&b, "<div class=\"%s\">%s</div>\n", class, text)
	}
	fmt.Fprintf(&b, "<div class=\"footer\">Generated %s</div>\n", html.EscapeString(rep.GeneratedAt))

	doc := fmt.Sprintf(htmlDocumentTemplate, html.EscapeString(rep.Title), a.css, b.String())
	return []byte(doc), nil
}

func (a *htmlAssembler) MIMEType() string { return MIMETypeHTML }
