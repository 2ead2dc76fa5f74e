package mailtmpl

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// EnvelopeParams is the context handed to the fixed HTML envelope that wraps
// every rendered body. Content is the already-substituted HTML body and is
// inserted as-is; everything else is escaped.
type EnvelopeParams struct {
	Subject    string
	Language   string
	Recipients []string
	Sender     string
	Content    string
}

// envelope wraps the rendered HTML body in a minimal, mail-client-safe HTML
// document. The subject becomes the document title so saved copies stay
// identifiable.
func envelope(p EnvelopeParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := p.Language
		if lang == "" {
			lang = "en"
		}
		head := "<!DOCTYPE html>\n" +
			`<html lang="` + templ.EscapeString(lang) + "\">\n" +
			"<head>\n" +
			`<meta charset="utf-8">` + "\n" +
			`<title>` + templ.EscapeString(p.Subject) + "</title>\n" +
			"</head>\n" +
			"<body>\n"
		if _, err := io.WriteString(w, head); err != nil {
			return err
		}
		if err := templ.Raw(p.Content).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n</body>\n</html>")
		return err
	})
}

// renderComponent renders a templ component to a string.
func renderComponent(ctx context.Context, c templ.Component) (string, error) {
	var sb strings.Builder
	if err := c.Render(ctx, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
