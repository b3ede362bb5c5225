// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mdast is a small Markdown abstract syntax tree modelled on the
// mdast node vocabulary, together with a printer that serializes a tree to
// CommonMark text with the math and GFM (strikethrough, task list, footnote)
// extensions.
package mdast

// NodeType is the mdast type name of a node.
type NodeType string

const (
	TypeRoot               NodeType = "root"
	TypeParagraph          NodeType = "paragraph"
	TypeHeading            NodeType = "heading"
	TypeCode               NodeType = "code"
	TypeList               NodeType = "list"
	TypeListItem           NodeType = "listItem"
	TypeBlockquote         NodeType = "blockquote"
	TypeMath               NodeType = "math"
	TypeFootnoteDefinition NodeType = "footnoteDefinition"
	TypeText               NodeType = "text"
	TypeStrong             NodeType = "strong"
	TypeEmphasis           NodeType = "emphasis"
	TypeDelete             NodeType = "delete"
	TypeInlineCode         NodeType = "inlineCode"
	TypeLink               NodeType = "link"
	TypeImage              NodeType = "image"
	TypeInlineMath         NodeType = "inlineMath"
	TypeFootnoteReference  NodeType = "footnoteReference"
)

// Node is any element of the tree. Nodes are built once and not mutated
// afterwards; a parent owns its children.
type Node interface {
	Type() NodeType
}

// Root is the document node.
type Root struct {
	Children []Node
}

// Paragraph holds phrasing content.
type Paragraph struct {
	Children []Node
}

// Heading is an ATX heading. Depth is 1 through 6.
type Heading struct {
	Depth    int
	Children []Node
}

// Code is a fenced code block. Value is emitted verbatim.
type Code struct {
	Lang  string
	Value string
}

// List is an ordered or bullet list of items.
type List struct {
	Ordered  bool
	Children []*ListItem
}

// ListItem is one entry of a List. A non-nil Checked makes it a GFM task
// item.
type ListItem struct {
	Checked  *bool
	Children []Node
}

// Blockquote holds flow content.
type Blockquote struct {
	Children []Node
}

// Math is a display math block ($$ fenced).
type Math struct {
	Value string
}

// FootnoteDefinition is the body of a footnote, printed as [^id]: ...
type FootnoteDefinition struct {
	Identifier string
	Children   []Node
}

type Text struct {
	Value string
}

type Strong struct {
	Children []Node
}

type Emphasis struct {
	Children []Node
}

// Delete is GFM strikethrough.
type Delete struct {
	Children []Node
}

type InlineCode struct {
	Value string
}

type Link struct {
	URL      string
	Title    string
	Children []Node
}

type Image struct {
	URL   string
	Title string
	Alt   string
}

type InlineMath struct {
	Value string
}

type FootnoteReference struct {
	Identifier string
}

func (*Root) Type() NodeType               { return TypeRoot }
func (*Paragraph) Type() NodeType          { return TypeParagraph }
func (*Heading) Type() NodeType            { return TypeHeading }
func (*Code) Type() NodeType               { return TypeCode }
func (*List) Type() NodeType               { return TypeList }
func (*ListItem) Type() NodeType           { return TypeListItem }
func (*Blockquote) Type() NodeType         { return TypeBlockquote }
func (*Math) Type() NodeType               { return TypeMath }
func (*FootnoteDefinition) Type() NodeType { return TypeFootnoteDefinition }
func (*Text) Type() NodeType               { return TypeText }
func (*Strong) Type() NodeType             { return TypeStrong }
func (*Emphasis) Type() NodeType           { return TypeEmphasis }
func (*Delete) Type() NodeType             { return TypeDelete }
func (*InlineCode) Type() NodeType         { return TypeInlineCode }
func (*Link) Type() NodeType               { return TypeLink }
func (*Image) Type() NodeType              { return TypeImage }
func (*InlineMath) Type() NodeType         { return TypeInlineMath }
func (*FootnoteReference) Type() NodeType  { return TypeFootnoteReference }
