// Package logger is a thin factory over log/slog: functional options pick
// the level, encoding, output, and static attributes, and attr.go provides
// the attribute constructors used across the module so key names stay
// consistent ("template", "language", "error").
//
//	log := logger.New(logger.WithDevelopment("mailer"))
//	log.Info("content seeded", logger.Template("user_welcome"), logger.Language("en"))
package logger
