// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mdast

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	bulletPrimary  = "*"
	bulletOther    = "-"
	orderedPrimary = "."
	orderedOther   = ")"
)

// ToMarkdown serializes root to Markdown. Flow children are separated by a
// blank line and the result ends with a newline unless it is empty.
//
// Two sibling lists of the same kind would merge into one list when the
// output is parsed again, so the printer alternates the marker of the
// second list (* and - for bullets, . and ) for ordered lists).
func ToMarkdown(root *Root) string {
	if root == nil {
		return ""
	}
	out := flow(root.Children)
	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out
}

// flow prints a sequence of block nodes.
func flow(children []Node) string {
	parts := make([]string, 0, len(children))
	var prev *List
	alternate := false
	for _, child := range children {
		list, isList := child.(*List)
		if isList {
			if prev != nil && prev.Ordered == list.Ordered {
				alternate = !alternate
			} else {
				alternate = false
			}
			parts = append(parts, printList(list, alternate))
			prev = list
			continue
		}
		prev = nil
		alternate = false
		parts = append(parts, block(child))
	}
	return strings.Join(parts, "\n\n")
}

func block(n Node) string {
	switch n := n.(type) {
	case *Paragraph:
		return escapeLineStarts(phrasing(n.Children))
	case *Heading:
		return printHeading(n)
	case *Code:
		return printCode(n)
	case *List:
		return printList(n, false)
	case *Blockquote:
		return prefixLines(flow(n.Children), "> ", ">")
	case *Math:
		if n.Value == "" {
			return "$$\n$$"
		}
		return "$$\n" + n.Value + "\n$$"
	case *FootnoteDefinition:
		body := indentTail(flow(n.Children), "    ")
		return "[^" + n.Identifier + "]:" + leadingSpace(body)
	case *ListItem:
		return printListItem(n, bulletPrimary)
	default:
		// Phrasing content in flow position is printed as its own paragraph.
		return escapeLineStarts(inline(n))
	}
}

func printHeading(h *Heading) string {
	depth := h.Depth
	if depth < 1 {
		depth = 1
	}
	if depth > 6 {
		depth = 6
	}
	marker := strings.Repeat("#", depth)
	content := strings.ReplaceAll(phrasing(h.Children), "\n", " ")
	content = strings.TrimSpace(content)
	if content == "" {
		return marker
	}
	return marker + " " + escapeClosingSequence(content)
}

// escapeClosingSequence escapes a trailing run of # that an ATX heading
// would otherwise drop as its closing sequence.
func escapeClosingSequence(content string) string {
	i := len(content)
	for i > 0 && content[i-1] == '#' {
		i--
	}
	if i == len(content) {
		return content
	}
	if i > 0 && content[i-1] != ' ' && content[i-1] != '\t' {
		return content
	}
	return content[:i] + `\` + content[i:]
}

func printCode(c *Code) string {
	size := 3
	if run := longestRun(c.Value, '`') + 1; run > size {
		size = run
	}
	fence := strings.Repeat("`", size)
	if c.Value == "" {
		return fence + c.Lang + "\n" + fence
	}
	return fence + c.Lang + "\n" + c.Value + "\n" + fence
}

func printList(l *List, alternate bool) string {
	items := make([]string, 0, len(l.Children))
	for i, item := range l.Children {
		var marker string
		if l.Ordered {
			delim := orderedPrimary
			if alternate {
				delim = orderedOther
			}
			marker = fmt.Sprintf("%d%s", i+1, delim)
		} else {
			marker = bulletPrimary
			if alternate {
				marker = bulletOther
			}
		}
		items = append(items, printListItem(item, marker))
	}
	return strings.Join(items, "\n")
}

func printListItem(item *ListItem, marker string) string {
	body := flow(item.Children)
	if item.Checked != nil {
		box := "[ ]"
		if *item.Checked {
			box = "[x]"
		}
		body = box + leadingSpace(body)
	}
	indent := strings.Repeat(" ", len(marker)+1)
	return marker + leadingSpace(indentTail(body, indent))
}

// phrasing prints inline children in order. A ! right before a link or a
// footnote reference is escaped so the pair does not read as an image.
func phrasing(children []Node) string {
	var b strings.Builder
	for i, child := range children {
		s := inline(child)
		if i+1 < len(children) && opensBracket(children[i+1]) && strings.HasSuffix(s, "!") {
			s = s[:len(s)-1] + `\!`
		}
		b.WriteString(s)
	}
	return b.String()
}

func opensBracket(n Node) bool {
	switch n.(type) {
	case *Link, *FootnoteReference:
		return true
	}
	return false
}

// attention wraps inner in marker. Whitespace at either edge stays outside
// the delimiters, where it cannot stop the run from opening or closing, and
// an empty run prints nothing.
func attention(marker, inner string) string {
	core := strings.Trim(inner, " \t\n")
	if core == "" {
		return inner
	}
	start := strings.Index(inner, core)
	return inner[:start] + marker + core + marker + inner[start+len(core):]
}

func inline(n Node) string {
	switch n := n.(type) {
	case *Text:
		return escapeText(n.Value)
	case *Strong:
		return attention("**", phrasing(n.Children))
	case *Emphasis:
		return attention("*", phrasing(n.Children))
	case *Delete:
		return attention("~~", phrasing(n.Children))
	case *InlineCode:
		return fenceInline(n.Value, '`')
	case *InlineMath:
		return fenceInline(n.Value, '$')
	case *Link:
		return "[" + phrasing(n.Children) + "](" + destination(n.URL) + title(n.Title) + ")"
	case *Image:
		return "![" + escapeText(n.Alt) + "](" + destination(n.URL) + title(n.Title) + ")"
	case *FootnoteReference:
		return "[^" + n.Identifier + "]"
	case *Paragraph:
		return phrasing(n.Children)
	case *Heading:
		return phrasing(n.Children)
	default:
		return ""
	}
}

// fenceInline wraps value in a run of marker one longer than the longest
// run inside it, padding with spaces when the value touches the marker.
func fenceInline(value string, marker byte) string {
	fence := strings.Repeat(string(marker), longestRun(value, marker)+1)
	pad := ""
	if value != "" && (value[0] == marker || value[len(value)-1] == marker) {
		pad = " "
	} else if len(value) > 1 && value[0] == ' ' && value[len(value)-1] == ' ' && strings.TrimSpace(value) != "" {
		pad = " "
	}
	return fence + pad + value + pad + fence
}

func longestRun(s string, c byte) int {
	longest, current := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			current++
			if current > longest {
				longest = current
			}
			continue
		}
		current = 0
	}
	return longest
}

func destination(url string) string {
	if url == "" {
		return "<>"
	}
	if strings.ContainsAny(url, " \t\n<>") || strings.Count(url, "(") != strings.Count(url, ")") {
		r := strings.NewReplacer("<", `\<`, ">", `\>`, "\n", " ")
		return "<" + r.Replace(url) + ">"
	}
	return url
}

func title(t string) string {
	if t == "" {
		return ""
	}
	return ` "` + strings.ReplaceAll(t, `"`, `\"`) + `"`
}

var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	"~", `\~`,
	"$", `\$`,
)

// characterReference matches the entity and numeric references CommonMark
// decodes in text.
var characterReference = regexp.MustCompile(`&(#[0-9]{1,7};|#[xX][0-9a-fA-F]{1,6};|[A-Za-z][A-Za-z0-9]{1,31};)`)

func escapeText(s string) string {
	return characterReference.ReplaceAllString(textEscaper.Replace(s), `\&$1`)
}

// escapeLineStarts escapes characters that would turn a paragraph line into
// another construct (heading, quote, list item, setext underline, indented
// code).
func escapeLineStarts(s string) string {
	if s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = escapeLineStart(line)
	}
	return strings.Join(lines, "\n")
}

func escapeLineStart(line string) string {
	if line == "" {
		return line
	}
	switch line[0] {
	case ' ':
		return "&#x20;" + line[1:]
	case '\t':
		return "&#x9;" + line[1:]
	case '#', '>', '+', '-', '=':
		return `\` + line
	}
	digits := 0
	for digits < len(line) && line[digits] >= '0' && line[digits] <= '9' {
		digits++
	}
	if digits > 0 && digits < len(line) && (line[digits] == '.' || line[digits] == ')') {
		if digits+1 == len(line) || line[digits+1] == ' ' || line[digits+1] == '\t' {
			return line[:digits] + `\` + line[digits:]
		}
	}
	return line
}

// indentTail indents every non-empty line after the first.
func indentTail(s, indent string) string {
	lines := strings.Split(s, "\n")
	for i := 1; i < len(lines); i++ {
		if lines[i] != "" {
			lines[i] = indent + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

func prefixLines(s, prefix, emptyPrefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line == "" {
			lines[i] = emptyPrefix
			continue
		}
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

func leadingSpace(s string) string {
	if s == "" {
		return ""
	}
	return " " + s
}
