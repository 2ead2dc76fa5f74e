package logger

import "log/slog"

// Error records a single error under the key "error"; nil yields an empty
// attribute that slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Template records a mail template identifier under the key "template".
func Template(identifier string) slog.Attr {
	return slog.String("template", identifier)
}

// Language records a content language code under the key "language".
func Language(lang string) slog.Attr {
	return slog.String("language", lang)
}
