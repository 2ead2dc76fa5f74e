package mailtmpl

import (
	"fmt"
	"strings"
)

// Placeholder syntax is {token_name}: ASCII braces around a case-sensitive
// token name. Doubled braces ({{ and }}) produce literal braces; braces that
// do not form a recognized placeholder pass through unchanged.

// Substitute replaces every {name} placeholder in s with the corresponding
// value. Values are inserted verbatim, without recursive substitution. A
// placeholder whose name is absent from values fails with MissingTokenError.
func Substitute(s string, values map[string]string) (string, error) {
	return replaceTokens(s, func(name string) (string, error) {
		v, ok := values[name]
		if !ok {
			return "", &MissingTokenError{Token: name}
		}
		return v, nil
	})
}

// SubstituteLenient is Substitute with a forgiving missing-token policy:
// instead of failing, an unresolved token renders as TOKEN_<name>_UNDEFINED.
// Preview screens use it to surface incomplete values without breaking the
// page.
func SubstituteLenient(s string, values map[string]string) string {
	out, _ := replaceTokens(s, func(name string) (string, error) {
		v, ok := values[name]
		if !ok {
			return fmt.Sprintf("TOKEN_%s_UNDEFINED", name), nil
		}
		return v, nil
	})
	return out
}

// Placeholders returns the distinct token names referenced by s, in order of
// first appearance.
func Placeholders(s string) []string {
	var names []string
	seen := make(map[string]bool)
	_, _ = replaceTokens(s, func(name string) (string, error) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
		return "", nil
	})
	return names
}

func replaceTokens(s string, resolve func(name string) (string, error)) (string, error) {
	var sb strings.Builder
	sb.Grow(len(s))

	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '{':
			if i+1 < len(s) && s[i+1] == '{' {
				sb.WriteByte('{')
				i++
				continue
			}
			name, end := scanPlaceholder(s, i+1)
			if end < 0 {
				sb.WriteByte('{')
				continue
			}
			v, err := resolve(name)
			if err != nil {
				return "", err
			}
			sb.WriteString(v)
			i = end
		case '}':
			if i+1 < len(s) && s[i+1] == '}' {
				sb.WriteByte('}')
				i++
				continue
			}
			sb.WriteByte('}')
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String(), nil
}

// scanPlaceholder reads a token name starting at s[start] and returns it with
// the index of the closing brace. It returns end = -1 when the run is not a
// valid placeholder.
func scanPlaceholder(s string, start int) (string, int) {
	i := start
	for i < len(s) && isTokenChar(s[i]) {
		i++
	}
	if i == start || i >= len(s) || s[i] != '}' {
		return "", -1
	}
	return s[start:i], i
}

func isTokenChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
