package mailtmpl

// Config holds the assembly-time settings shared by all outbound messages.
// DefaultFromEmail is required because every message needs a sender identity;
// SupportedLanguages mirrors the host's language list so wiring code can feed
// the same value to NewContentStore.
type Config struct {
	DefaultFromEmail   string   `env:"MAIL_DEFAULT_FROM,required"`
	SupportedLanguages []string `env:"MAIL_LANGUAGES" envDefault:"en"`
}
