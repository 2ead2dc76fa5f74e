package htmltext

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// lineWidth is the display-column limit for wrapped output. Long runs of
// text break at whitespace boundaries to stay at or under this width.
const lineWidth = 80

// Convert renders HTML markup as plain text suitable for the text part of an
// email. Hyperlinks become bracketed references ([text][n]) with each URL
// listed directly after the paragraph that mentions it, lines wrap at 80
// columns, list items wrap with a hanging indent, and blocks are separated by
// exactly one blank line.
func Convert(src string) (string, error) {
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	c := &converter{}
	c.walk(doc, 0)
	c.flush("", "")

	out := strings.Join(c.blocks, "\n\n")
	if out != "" {
		out += "\n"
	}
	return out, nil
}

type converter struct {
	blocks  []string
	pending strings.Builder
	refs    []string
	linkNum int
}

// walk treats n as a container: block-level children are dispatched to their
// own renderers, while runs of inline content accumulate into an implicit
// paragraph flushed at the next block boundary.
func (c *converter) walk(n *html.Node, depth int) {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if isBlock(child) {
			c.flush("", "")
			c.renderBlock(child, depth)
		} else {
			c.inline(child, &c.pending)
		}
	}
}

func (c *converter) renderBlock(n *html.Node, depth int) {
	switch n.DataAtom {
	case atom.Head, atom.Script, atom.Style:
		return
	case atom.Html, atom.Body:
		c.walk(n, depth)
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		c.walk(n, depth)
		c.flush(strings.Repeat("#", headingLevel(n.DataAtom))+" ", "")
	case atom.Ul:
		c.renderList(n, depth, false)
	case atom.Ol:
		c.renderList(n, depth, true)
	case atom.Hr:
		c.flush("", "")
		c.blocks = append(c.blocks, "* * *")
	default:
		// p, div, blockquote, and any other block container renders as a
		// paragraph of its inline content.
		c.walk(n, depth)
		c.flush("", "")
	}
}

// flush turns the pending inline run into a wrapped block, followed by the
// reference list for any links the block mentioned.
func (c *converter) flush(prefix, contPrefix string) {
	text := strings.TrimSpace(c.pending.String())
	c.pending.Reset()
	if text != "" {
		lines := wrap(text, lineWidth, prefix, contPrefix)
		c.blocks = append(c.blocks, strings.Join(lines, "\n"))
	}
	c.flushRefs()
}

func (c *converter) flushRefs() {
	if len(c.refs) == 0 {
		return
	}
	c.blocks = append(c.blocks, strings.Join(c.refs, "\n"))
	c.refs = nil
}

func (c *converter) renderList(n *html.Node, depth int, ordered bool) {
	c.flush("", "")
	lines := c.listLines(n, depth, ordered)
	if len(lines) > 0 {
		c.blocks = append(c.blocks, strings.Join(lines, "\n"))
	}
	c.flushRefs()
}

func (c *converter) listLines(n *html.Node, depth int, ordered bool) []string {
	var lines []string
	idx := 0
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode || child.DataAtom != atom.Li {
			continue
		}
		idx++
		lines = append(lines, c.itemLines(child, depth, ordered, idx)...)
	}
	return lines
}

// itemLines renders one list item: its inline content wrapped under the
// bullet or number marker with a hanging indent, then any nested lists.
func (c *converter) itemLines(li *html.Node, depth int, ordered bool, idx int) []string {
	indent := strings.Repeat("    ", depth)
	marker := indent + "  * "
	if ordered {
		marker = indent + fmt.Sprintf("  %d. ", idx)
	}
	cont := strings.Repeat(" ", len(marker))

	var sb strings.Builder
	var nested []string
	for child := li.FirstChild; child != nil; child = child.NextSibling {
		switch {
		case child.Type == html.ElementNode && child.DataAtom == atom.Ul:
			nested = append(nested, c.listLines(child, depth+1, false)...)
		case child.Type == html.ElementNode && child.DataAtom == atom.Ol:
			nested = append(nested, c.listLines(child, depth+1, true)...)
		default:
			c.inline(child, &sb)
		}
	}

	var lines []string
	if text := strings.TrimSpace(sb.String()); text != "" {
		lines = wrap(text, lineWidth, marker, cont)
	}
	return append(lines, nested...)
}

// inline renders n and its children as running text. Link text is never
// emitted as an inline raw URL: the target always goes through the bracketed
// reference recorded on the converter.
func (c *converter) inline(n *html.Node, sb *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(collapseWhitespace(n.Data))
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Script, atom.Style, atom.Head:
			return
		case atom.Br:
			sb.WriteString("\n")
		case atom.A:
			var inner strings.Builder
			for child := n.FirstChild; child != nil; child = child.NextSibling {
				c.inline(child, &inner)
			}
			href := attrVal(n, "href")
			text := strings.TrimSpace(inner.String())
			if href == "" || text == "" {
				sb.WriteString(inner.String())
				return
			}
			c.linkNum++
			fmt.Fprintf(sb, "[%s][%d]", text, c.linkNum)
			c.refs = append(c.refs, fmt.Sprintf("[%d]: %s", c.linkNum, href))
		case atom.B, atom.Strong:
			c.wrapInline(n, sb, "**")
		case atom.I, atom.Em:
			c.wrapInline(n, sb, "_")
		default:
			for child := n.FirstChild; child != nil; child = child.NextSibling {
				c.inline(child, sb)
			}
		}
	}
}

func (c *converter) wrapInline(n *html.Node, sb *strings.Builder, marker string) {
	var inner strings.Builder
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.inline(child, &inner)
	}
	text := strings.TrimSpace(inner.String())
	if text == "" {
		return
	}
	sb.WriteString(marker)
	sb.WriteString(text)
	sb.WriteString(marker)
}

func headingLevel(a atom.Atom) int {
	switch a {
	case atom.H1:
		return 1
	case atom.H2:
		return 2
	case atom.H3:
		return 3
	case atom.H4:
		return 4
	case atom.H5:
		return 5
	default:
		return 6
	}
}

func isBlock(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	switch n.DataAtom {
	case atom.Html, atom.Head, atom.Body, atom.P, atom.Div, atom.Blockquote,
		atom.Ul, atom.Ol, atom.Table, atom.Section, atom.Article, atom.Header,
		atom.Footer, atom.Main, atom.Hr, atom.Pre,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6,
		atom.Script, atom.Style:
		return true
	}
	return false
}

func attrVal(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}
