// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/wolai2md/internal/mdast"
	"github.com/pdiddy/wolai2md/pkg/types"
)

func span(title string) types.RichText {
	return types.RichText{Type: types.InlineText, Title: title}
}

func TestBlock(t *testing.T) {
	checked := true
	unchecked := false
	para := func(children ...mdast.Node) *mdast.Paragraph { return &mdast.Paragraph{Children: children} }

	tests := []struct {
		name  string
		block types.Block
		want  mdast.Node
	}{
		{
			name:  "code uses first span verbatim",
			block: types.Block{Type: types.BlockCode, Language: "js", Content: []types.RichText{{Type: types.InlineText, Title: "let x=1", Bold: true}, span("ignored")}},
			want:  &mdast.Code{Lang: "js", Value: "let x=1"},
		},
		{
			name:  "text",
			block: types.Block{Type: types.BlockText, Content: []types.RichText{span("a"), {Type: types.InlineText, Title: "b", Italic: true}}},
			want:  para(txt("a"), &mdast.Emphasis{Children: []mdast.Node{txt("b")}}),
		},
		{
			name:  "text without content",
			block: types.Block{Type: types.BlockText},
			want:  &mdast.Paragraph{Children: []mdast.Node{}},
		},
		{
			name:  "image prefers url",
			block: types.Block{Type: types.BlockImage, Media: &types.BlockMedia{URL: "https://u", DownloadURL: "https://d"}},
			want:  para(&mdast.Image{URL: "https://u"}),
		},
		{
			name:  "image falls back to download url",
			block: types.Block{Type: types.BlockImage, Media: &types.BlockMedia{DownloadURL: "https://d"}},
			want:  para(&mdast.Image{URL: "https://d"}),
		},
		{
			name:  "image without media",
			block: types.Block{Type: types.BlockImage},
			want:  para(&mdast.Image{}),
		},
		{
			name:  "checked todo",
			block: types.Block{Type: types.BlockTodoList, Checked: true, Content: []types.RichText{span("done")}},
			want:  &mdast.List{Children: []*mdast.ListItem{{Checked: &checked, Children: []mdast.Node{para(txt("done"))}}}},
		},
		{
			name:  "unchecked todo",
			block: types.Block{Type: types.BlockTodoList, Content: []types.RichText{span("open")}},
			want:  &mdast.List{Children: []*mdast.ListItem{{Checked: &unchecked, Children: []mdast.Node{para(txt("open"))}}}},
		},
		{
			name:  "enum list",
			block: types.Block{Type: types.BlockEnumList, Content: []types.RichText{span("one")}},
			want:  &mdast.List{Ordered: true, Children: []*mdast.ListItem{{Children: []mdast.Node{para(txt("one"))}}}},
		},
		{
			name:  "bullet list",
			block: types.Block{Type: types.BlockBulletList, Content: []types.RichText{span("one")}},
			want:  &mdast.List{Children: []*mdast.ListItem{{Children: []mdast.Node{para(txt("one"))}}}},
		},
		{
			name:  "quote",
			block: types.Block{Type: types.BlockQuote, Content: []types.RichText{span("q")}},
			want:  &mdast.Blockquote{Children: []mdast.Node{para(txt("q"))}},
		},
		{
			name:  "block equation",
			block: types.Block{Type: types.BlockEquation, Content: []types.RichText{{Type: types.InlineEquation, Title: "a^2"}}},
			want:  &mdast.Math{Value: "a^2"},
		},
		{
			name:  "heading",
			block: types.Block{Type: types.BlockHeading, Level: types.HeadingLevel5, Content: []types.RichText{span("h")}},
			want:  &mdast.Heading{Depth: 5, Children: []mdast.Node{txt("h")}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New().Block(tt.block)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBlock_UnsupportedTypesBecomeEmptyParagraph(t *testing.T) {
	want := &mdast.Paragraph{Children: []mdast.Node{&mdast.Text{}}}
	for _, typ := range []types.BlockType{
		types.BlockPage, types.BlockDivider, types.BlockEmbed, types.BlockCallout,
		types.BlockTable, types.BlockAudio, types.BlockVideo, "kanban",
	} {
		t.Run(string(typ), func(t *testing.T) {
			got, err := New().Block(types.Block{Type: typ, Content: []types.RichText{span("dropped")}})
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestBlock_EmptyBodyIsSchemaError(t *testing.T) {
	for _, typ := range []types.BlockType{types.BlockCode, types.BlockEquation} {
		t.Run(string(typ), func(t *testing.T) {
			_, err := New().Block(types.Block{ID: "blk1", Type: typ})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSchema)
			assert.Contains(t, err.Error(), "blk1")
		})
	}
}
