package mailtmpl

import (
	"context"
	"fmt"

	mail "github.com/go-mail/mail"
)

// Sender delivers an assembled message. Implementations are transport
// collaborators (SMTP dialers, provider APIs, the DevSender below); this
// package never sends anything itself.
type Sender interface {
	Send(ctx context.Context, msg *mail.Message) error
}

// Assembler packages rendered template content into a multipart email
// message ready to hand to a Sender.
type Assembler struct {
	renderer *Renderer
	cfg      Config
}

// NewAssembler creates an Assembler over the given renderer and config.
func NewAssembler(renderer *Renderer, cfg Config) *Assembler {
	return &Assembler{renderer: renderer, cfg: cfg}
}

// BuildMessage renders the template and assembles a multipart/alternative
// message: the plain-text body as the primary part and the HTML body, wrapped
// in the fixed envelope document, as the richer alternative. Subject, From,
// and To headers are set from the rendered subject, the sender (falling back
// to Config.DefaultFromEmail when empty), and the recipients. Recipient
// addresses are passed through without deduplication or RFC validation; that
// is the transport's concern.
func (a *Assembler) BuildMessage(ctx context.Context, identifier, language string, values map[string]string, recipients []string, sender string) (*mail.Message, error) {
	rendered, err := a.renderer.Render(ctx, identifier, language, values)
	if err != nil {
		return nil, err
	}

	from := sender
	if from == "" {
		from = a.cfg.DefaultFromEmail
	}

	htmlDoc, err := renderComponent(ctx, envelope(EnvelopeParams{
		Subject:    rendered.Subject,
		Language:   language,
		Recipients: recipients,
		Sender:     from,
		Content:    rendered.BodyHTML,
	}))
	if err != nil {
		return nil, fmt.Errorf("render email envelope: %w", err)
	}

	msg := mail.NewMessage(mail.SetCharset("UTF-8"))
	msg.SetHeader("Subject", rendered.Subject)
	msg.SetHeader("From", from)
	msg.SetHeader("To", recipients...)
	msg.SetBody("text/plain", rendered.BodyText)
	msg.AddAlternative("text/html", htmlDoc)
	return msg, nil
}
