// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transform

import (
	"strconv"

	"github.com/pdiddy/wolai2md/internal/mdast"
	"github.com/pdiddy/wolai2md/pkg/types"
)

// Footnotes accumulates the footnote definitions met during one conversion.
// Identifiers are 1-based and dense in encounter order. The zero value is
// ready to use.
type Footnotes struct {
	defs []*mdast.FootnoteDefinition
}

// Add appends a definition holding title and returns the reference that
// points at it. The identifier is assigned here, so a reference always
// matches its definition.
func (f *Footnotes) Add(title string) *mdast.FootnoteReference {
	id := strconv.Itoa(len(f.defs) + 1)
	f.defs = append(f.defs, &mdast.FootnoteDefinition{
		Identifier: id,
		Children:   []mdast.Node{&mdast.Paragraph{Children: []mdast.Node{&mdast.Text{Value: title}}}},
	})
	return &mdast.FootnoteReference{Identifier: id}
}

// Len returns the number of collected definitions.
func (f *Footnotes) Len() int { return len(f.defs) }

// Definitions returns the collected definitions as flow nodes, in order.
func (f *Footnotes) Definitions() []mdast.Node {
	nodes := make([]mdast.Node, len(f.defs))
	for i, d := range f.defs {
		nodes[i] = d
	}
	return nodes
}

// Inline maps one rich-text span to a phrasing node. Footnote spans are
// recorded in t's accumulator and become a reference. Variants without a
// Markdown counterpart (bi_link, comment, mention, note, link, and unknown
// types) degrade to their title as plain text. Underline, highlight and
// colors are never rendered.
func (t *Transformer) Inline(rt types.RichText) mdast.Node {
	switch rt.Type {
	case types.InlineText:
		node := styled(rt)
		if rt.Link != "" {
			node = &mdast.Link{URL: rt.Link, Children: []mdast.Node{node}}
		}
		return node
	case types.InlineEquation:
		return &mdast.InlineMath{Value: rt.Title}
	case types.InlineFootnote:
		return t.footnotes.Add(rt.Title)
	case types.InlineBiLink, types.InlineComment, types.InlineMention, types.InlineLink, types.InlineNote:
		return &mdast.Text{Value: rt.Title}
	default:
		return &mdast.Text{Value: rt.Title}
	}
}

// styled applies the span's style flags: strong innermost, then emphasis,
// then delete. Inline code replaces the whole result.
func styled(rt types.RichText) mdast.Node {
	if rt.InlineCode {
		return &mdast.InlineCode{Value: rt.Title}
	}
	var node mdast.Node = &mdast.Text{Value: rt.Title}
	if rt.Bold {
		node = &mdast.Strong{Children: []mdast.Node{node}}
	}
	if rt.Italic {
		node = &mdast.Emphasis{Children: []mdast.Node{node}}
	}
	if rt.Strikethrough {
		node = &mdast.Delete{Children: []mdast.Node{node}}
	}
	return node
}

func (t *Transformer) inlines(spans []types.RichText) []mdast.Node {
	nodes := make([]mdast.Node, 0, len(spans))
	for _, rt := range spans {
		nodes = append(nodes, t.Inline(rt))
	}
	return nodes
}
