package mailtmpl

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	mail "github.com/go-mail/mail"
)

// DevSender implements Sender for local development. Instead of delivering,
// it writes each assembled message to a timestamped .eml file so the full
// multipart output can be inspected in a mail client.
type DevSender struct {
	dir string
	log *slog.Logger
}

// NewDevSender creates a development sender that captures messages under dir.
// The directory is created on first send. A nil logger falls back to
// slog.Default.
func NewDevSender(dir string, log *slog.Logger) *DevSender {
	if log == nil {
		log = slog.Default()
	}
	return &DevSender{dir: dir, log: log}
}

func (d *DevSender) Send(ctx context.Context, msg *mail.Message) error {
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("create capture directory: %w", err)
	}

	subject := ""
	if vals := msg.GetHeader("Subject"); len(vals) > 0 {
		subject = vals[0]
	}
	name := fmt.Sprintf("%s_%s.eml", time.Now().Format("2006_01_02_150405"), sanitizeFilename(subject))
	path := filepath.Join(d.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create capture file: %w", err)
	}
	defer f.Close()

	if _, err := msg.WriteTo(f); err != nil {
		return fmt.Errorf("write captured message: %w", err)
	}

	d.log.InfoContext(ctx, "email captured", "path", path, "subject", subject)
	return nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// sanitizeFilename turns an arbitrary subject line into a safe, reasonably
// short filename component.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = unsafeFilenameChars.ReplaceAllString(s, "")

	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}
	if s == "" {
		s = "email"
	}
	return strings.ToLower(s)
}
