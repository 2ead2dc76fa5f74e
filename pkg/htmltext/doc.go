// Package htmltext derives the plain-text part of an email from its authored
// HTML body.
//
// The conversion policy is fixed, because the text part must stay stable for
// mail clients and tests that compare rendered output:
//
//   - Hyperlinks render as bracketed references ([text][n]); the resolved URL
//     is listed once, directly after the paragraph containing the link, never
//     collected at the end of the document. Link targets are never emitted as
//     inline raw URLs.
//   - Lines wrap at 80 display columns, breaking only at whitespace.
//   - List items wrap individually under the same width rule, with a hanging
//     indent below the bullet or number marker.
//   - Blocks are separated by exactly one blank line, with none at the start
//     of the output and a single trailing newline at the end.
//   - Headings carry a #-prefix matching their level; bold renders as
//     **text** and emphasis as _text_.
//
// Parsing is delegated to golang.org/x/net/html, which tolerates the
// imperfect markup that hand-edited email bodies tend to contain.
package htmltext
