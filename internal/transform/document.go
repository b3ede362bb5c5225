// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transform maps wolai blocks and rich-text spans to a Markdown
// AST. One Transformer serves one conversion run: it owns the footnote
// definitions collected along the way, which Document appends after the
// converted blocks.
package transform

import (
	"errors"
	"fmt"

	"github.com/pdiddy/wolai2md/internal/mdast"
	"github.com/pdiddy/wolai2md/pkg/types"
)

// ErrSchema reports a block that lacks a field its conversion needs.
var ErrSchema = errors.New("schema violation")

// Transformer converts blocks for a single document.
type Transformer struct {
	footnotes Footnotes
}

// New returns a Transformer with an empty footnote accumulator.
func New() *Transformer {
	return &Transformer{}
}

// Footnotes returns the definitions collected so far.
func (t *Transformer) Footnotes() *Footnotes {
	return &t.footnotes
}

// Document converts blocks one-to-one, appends the collected footnote
// definitions, and returns the resulting root.
func (t *Transformer) Document(blocks []types.Block) (*mdast.Root, error) {
	children := make([]mdast.Node, 0, len(blocks))
	for i, b := range blocks {
		node, err := t.Block(b)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		children = append(children, node)
	}
	children = append(children, t.footnotes.Definitions()...)
	return &mdast.Root{Children: children}, nil
}

// Convert runs a fresh Transformer over blocks.
func Convert(blocks []types.Block) (*mdast.Root, error) {
	return New().Document(blocks)
}
