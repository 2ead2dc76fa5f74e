package mailtmpl

import (
	"errors"
	"fmt"
)

// ErrContentNotFound is returned by Repository implementations when no row
// exists for the requested (identifier, language) pair. ContentStore
// translates it into an EmptyContentError carrying the lookup context.
var ErrContentNotFound = errors.New("mail template content not found")

// ErrTextConversionFailed wraps failures from the HTML to plain-text
// conversion step of a full render.
var ErrTextConversionFailed = errors.New("failed to convert html body to plain text")

// DuplicateIdentifierError indicates that Register was called twice with the
// same identifier. This is a programmer error in the host application and
// should be fatal at startup.
type DuplicateIdentifierError struct {
	Identifier string
}

func (e *DuplicateIdentifierError) Error() string {
	return fmt.Sprintf("mail template %q is already registered", e.Identifier)
}

// UnknownIdentifierError indicates a lookup for an identifier that was never
// registered.
type UnknownIdentifierError struct {
	Identifier string
}

func (e *UnknownIdentifierError) Error() string {
	return fmt.Sprintf("mail template %q is not registered", e.Identifier)
}

// UnknownLanguageError indicates a request for a language outside the
// host-supplied supported-language list.
type UnknownLanguageError struct {
	Language string
}

func (e *UnknownLanguageError) Error() string {
	return fmt.Sprintf("language %q is not in the supported languages list", e.Language)
}

// EmptyContentError indicates that the identifier is registered but no
// content row exists for the requested scope. Language is empty when the
// whole identifier has no content.
type EmptyContentError struct {
	Identifier string
	Language   string
}

func (e *EmptyContentError) Error() string {
	if e.Language != "" {
		return fmt.Sprintf("mail template %q has no content for language %q", e.Identifier, e.Language)
	}
	return fmt.Sprintf("mail template %q has no content", e.Identifier)
}

// MissingTokenError indicates that the substitution mapping lacks a value for
// a token the template references.
type MissingTokenError struct {
	Token string
}

func (e *MissingTokenError) Error() string {
	return fmt.Sprintf("no value provided for token %q", e.Token)
}

// UnknownTokenError indicates that authored content references a placeholder
// that is not declared for the identifier. Raised at write time; nothing is
// persisted.
type UnknownTokenError struct {
	Token      string
	Identifier string
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("token %q is not declared in mail template %q", e.Token, e.Identifier)
}
