package htmltext

import "strings"

// collapseWhitespace squeezes runs of whitespace into single spaces while
// keeping a boundary space at either end, so inline markup joins correctly
// ("a <b>c</b>" must not become "a**c**").
func collapseWhitespace(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		if s == "" {
			return ""
		}
		return " "
	}
	out := strings.Join(fields, " ")
	if isSpace(s[0]) {
		out = " " + out
	}
	if isSpace(s[len(s)-1]) {
		out += " "
	}
	return out
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// wrap greedily fills lines up to width display columns, breaking only at
// whitespace. Embedded newlines force a break. The first line starts with
// prefix, continuation lines with contPrefix; a word too long for a full line
// is emitted unbroken.
func wrap(text string, width int, prefix, contPrefix string) []string {
	var lines []string
	line := prefix
	hasWord := false

	breakLine := func() {
		lines = append(lines, strings.TrimRight(line, " "))
		line = contPrefix
		hasWord = false
	}

	for i, segment := range strings.Split(text, "\n") {
		if i > 0 {
			breakLine()
		}
		for _, word := range strings.Fields(segment) {
			switch {
			case !hasWord:
				line += word
				hasWord = true
			case len(line)+1+len(word) > width:
				breakLine()
				line += word
				hasWord = true
			default:
				line += " " + word
			}
		}
	}
	lines = append(lines, strings.TrimRight(line, " "))
	return lines
}
