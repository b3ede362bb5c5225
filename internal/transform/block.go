// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transform

import (
	"fmt"

	"github.com/pdiddy/wolai2md/internal/mdast"
	"github.com/pdiddy/wolai2md/pkg/types"
)

// Block maps one wolai block to exactly one flow node. Block types without
// a Markdown rendering (page, divider, embed, callout, table, audio, video,
// and unknown types) become an empty paragraph.
//
// Code and block_equation blocks take their body from the first content
// span only; when Content is empty Block returns an error wrapping
// ErrSchema.
func (t *Transformer) Block(b types.Block) (mdast.Node, error) {
	switch b.Type {
	case types.BlockCode:
		body, err := firstTitle(b)
		if err != nil {
			return nil, err
		}
		return &mdast.Code{Lang: b.Language, Value: body}, nil
	case types.BlockText:
		return t.paragraph(b), nil
	case types.BlockImage:
		return &mdast.Paragraph{Children: []mdast.Node{&mdast.Image{URL: mediaURL(b.Media)}}}, nil
	case types.BlockTodoList:
		checked := b.Checked
		return &mdast.List{Children: []*mdast.ListItem{{
			Checked:  &checked,
			Children: []mdast.Node{t.paragraph(b)},
		}}}, nil
	case types.BlockEnumList:
		return t.singleItemList(b, true), nil
	case types.BlockBulletList:
		return t.singleItemList(b, false), nil
	case types.BlockQuote:
		return &mdast.Blockquote{Children: []mdast.Node{t.paragraph(b)}}, nil
	case types.BlockEquation:
		body, err := firstTitle(b)
		if err != nil {
			return nil, err
		}
		return &mdast.Math{Value: body}, nil
	case types.BlockHeading:
		return &mdast.Heading{Depth: int(b.Level), Children: t.inlines(b.Content)}, nil
	case types.BlockPage, types.BlockDivider, types.BlockEmbed, types.BlockCallout,
		types.BlockTable, types.BlockAudio, types.BlockVideo:
		return emptyParagraph(), nil
	default:
		return emptyParagraph(), nil
	}
}

func (t *Transformer) paragraph(b types.Block) *mdast.Paragraph {
	return &mdast.Paragraph{Children: t.inlines(b.Content)}
}

// singleItemList wraps the block in a list of its own; consecutive list
// blocks are not merged.
func (t *Transformer) singleItemList(b types.Block, ordered bool) *mdast.List {
	return &mdast.List{
		Ordered:  ordered,
		Children: []*mdast.ListItem{{Children: []mdast.Node{t.paragraph(b)}}},
	}
}

func emptyParagraph() *mdast.Paragraph {
	return &mdast.Paragraph{Children: []mdast.Node{&mdast.Text{}}}
}

// mediaURL prefers the media URL, then the download URL.
func mediaURL(m *types.BlockMedia) string {
	if m == nil {
		return ""
	}
	if m.URL != "" {
		return m.URL
	}
	return m.DownloadURL
}

func firstTitle(b types.Block) (string, error) {
	if len(b.Content) == 0 {
		return "", fmt.Errorf("%w: %s block %q has no content", ErrSchema, b.Type, b.ID)
	}
	return b.Content[0].Title, nil
}
