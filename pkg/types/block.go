// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "encoding/json"

// BlockType identifies a wolai block variant.
type BlockType string

const (
	BlockText       BlockType = "text"
	BlockCode       BlockType = "code"
	BlockPage       BlockType = "page"
	BlockImage      BlockType = "image"
	BlockAudio      BlockType = "audio"
	BlockVideo      BlockType = "video"
	BlockDivider    BlockType = "divider"
	BlockEmbed      BlockType = "embed"
	BlockHeading    BlockType = "heading"
	BlockCallout    BlockType = "callout"
	BlockQuote      BlockType = "quote"
	BlockTable      BlockType = "table"
	BlockTodoList   BlockType = "todo_list"
	BlockEnumList   BlockType = "enum_list"
	BlockBulletList BlockType = "bull_list"
	BlockEquation   BlockType = "block_equation"
)

// HeadingLevel is the level of a heading block. wolai has no level 4.
type HeadingLevel int

const (
	HeadingLevel1 HeadingLevel = 1
	HeadingLevel2 HeadingLevel = 2
	HeadingLevel3 HeadingLevel = 3
	HeadingLevel5 HeadingLevel = 5
)

// TextAlign is the text alignment of a block; only "center" is ever sent.
type TextAlign string

// BlockAlign is the horizontal alignment of a block.
type BlockAlign string

const (
	AlignLeft   BlockAlign = "left"
	AlignCenter BlockAlign = "center"
	AlignRight  BlockAlign = "right"
)

// Block is one node of a wolai page as returned by the blocks API. wolai
// sends a flat JSON object per block whose Type selects which of the
// variant fields are populated.
type Block struct {
	// ID is the block identifier.
	ID string `json:"id"`

	// Type selects the block variant.
	Type BlockType `json:"type"`

	// Content is the inline rich text of the block, in display order.
	Content []RichText `json:"content"`

	BlockFrontColor FrontColor `json:"block_front_color,omitempty"`
	BlockBackColor  BackColor  `json:"block_back_color,omitempty"`
	TextAlignment   TextAlign  `json:"text_alignment,omitempty"`
	BlockAlignment  BlockAlign `json:"block_alignment,omitempty"`

	ParentID   string        `json:"parent_id,omitempty"`
	PageID     string        `json:"page_id,omitempty"`
	ParentType BlockType     `json:"parent_type,omitempty"`
	Children   BlockChildren `json:"children"`
	Version    int           `json:"version,omitempty"`
	CreatedBy  string        `json:"created_by,omitempty"`
	CreatedAt  int64         `json:"created_at,omitempty"`
	EditedBy   string        `json:"edited_by,omitempty"`
	EditedAt   int64         `json:"edited_at,omitempty"`

	// Language and Caption are set on code blocks.
	Language string `json:"language,omitempty"`
	Caption  string `json:"caption,omitempty"`

	// Level is set on heading blocks.
	Level HeadingLevel `json:"level,omitempty"`

	// Checked is set on todo_list blocks.
	Checked bool `json:"checked,omitempty"`

	// Media and Dimensions are set on image, audio and video blocks.
	Media      *BlockMedia      `json:"media,omitempty"`
	Dimensions *MediaDimensions `json:"dimensions,omitempty"`

	// PageCover and PageSetting are set on page blocks.
	PageCover   *LinkCover   `json:"page_cover,omitempty"`
	PageSetting *PageSetting `json:"page_setting,omitempty"`

	// Icon is set on page and callout blocks. Its shape differs between the
	// two, so it is kept undecoded.
	Icon json.RawMessage `json:"icon,omitempty"`

	// EmbedLink and OriginalLink are set on embed blocks.
	EmbedLink    string `json:"embed_link,omitempty"`
	OriginalLink string `json:"original_link,omitempty"`

	// TableSetting and TableContent are set on table blocks.
	TableSetting *TableSetting `json:"table_setting,omitempty"`
	TableContent [][]RichText  `json:"table_content,omitempty"`
}

// BlockChildren lists the ids of a block's direct children.
type BlockChildren struct {
	IDs    []string `json:"ids"`
	APIURL string   `json:"api_url,omitempty"`
}

// BlockMedia describes the file behind a media block.
type BlockMedia struct {
	Type        BlockType `json:"type"`
	URL         string    `json:"url,omitempty"`
	DownloadURL string    `json:"download_url,omitempty"`
	ExpiresIn   int64     `json:"expires_in,omitempty"`
}

// MediaDimensions holds the display and original size of a media block.
type MediaDimensions struct {
	Width          int `json:"width,omitempty"`
	Height         int `json:"height,omitempty"`
	OriginalWidth  int `json:"original_width,omitempty"`
	OriginalHeight int `json:"original_height,omitempty"`
}

type LinkCover struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

type PageSetting struct {
	IsFullWidth        bool   `json:"is_full_width"`
	IsSmallText        bool   `json:"is_small_text"`
	HasFloatingCatalog bool   `json:"has_floating_catalog"`
	FontFamily         string `json:"font_family"`
	LineLeading        string `json:"line_leading"`
}

type TableSetting struct {
	HasHeader    bool  `json:"has_header"`
	ColumnWidths []int `json:"column_widths"`
}

// BlocksResponse is the envelope returned by GET /v1/blocks/{id}/children.
// On failure wolai fills Message, ErrorCode and StatusCode instead of Data.
type BlocksResponse struct {
	Data       []Block `json:"data"`
	NextCursor *string `json:"next_cursor"`
	HasMore    bool    `json:"has_more"`
	RequestID  string  `json:"request_id"`
	Message    string  `json:"message,omitempty"`
	ErrorCode  int     `json:"error_code,omitempty"`
	StatusCode int     `json:"status_code,omitempty"`
}
