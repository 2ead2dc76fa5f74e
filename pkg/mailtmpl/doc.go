// Package mailtmpl implements registry-backed, multi-language email
// templating: host applications declare named templates with token metadata
// at startup, administrators edit per-language subject/body copies persisted
// in PostgreSQL, and callers render those copies with concrete values into a
// ready-to-send multipart email message.
//
// # Architecture
//
// The package is built from small, explicitly wired components:
//
//   - Registry — in-memory identifier → Definition mapping populated once at
//     startup. The single source of truth for which templates exist and which
//     tokens they accept. Enforces identifier uniqueness.
//   - Repository / ContentStore — persistence for editable Content rows keyed
//     by (identifier, language), wrapped in a validation layer that
//     cross-checks every access against the Registry and the host-supplied
//     supported-language list. PGRepository is the production implementation;
//     MemoryRepository serves tests and local development.
//   - Substitute — replaces {token_name} placeholders with supplied values,
//     failing with MissingTokenError on gaps. SubstituteLenient renders gaps
//     as TOKEN_<name>_UNDEFINED for previews.
//   - Renderer — resolves content, substitutes values (falling back to the
//     registry's example values when none are given), and derives a
//     plain-text body via pkg/htmltext.
//   - Assembler — packages rendered content into a *mail.Message with a
//     plain-text primary part and an HTML alternative wrapped in a fixed
//     envelope document. Sending stays behind the Sender interface.
//   - Seeder — idempotent upsert/remove helpers for migration code that ships
//     initial content for every supported language.
//
// Registry mutations happen during single-threaded startup; after that all
// components are safe for concurrent use. Rendering performs no I/O beyond
// the single content-store read.
//
// # Usage
//
//	registry := mailtmpl.NewRegistry()
//	_ = registry.Register("user_welcome", "Welcome email after signup", []mailtmpl.Token{
//	    {Name: "first_name", Description: "The user's first name", Example: "John"},
//	}, "onboarding")
//
//	repo := mailtmpl.NewPGRepository(pool)
//	store := mailtmpl.NewContentStore(registry, repo, []string{"en", "fr-be"})
//	renderer := mailtmpl.NewRenderer(registry, store)
//	assembler := mailtmpl.NewAssembler(renderer, cfg)
//
//	msg, err := assembler.BuildMessage(ctx, "user_welcome", "en",
//	    map[string]string{"first_name": "Ada"},
//	    []string{"ada@example.com"}, "")
//
// # Error Handling
//
// Domain failures are typed and carry their context:
// DuplicateIdentifierError, UnknownIdentifierError, UnknownLanguageError,
// EmptyContentError, MissingTokenError, and UnknownTokenError. All of them
// surface to the caller; nothing is swallowed or retried internally.
package mailtmpl
