// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// InlineType identifies a rich-text span variant.
type InlineType string

const (
	InlineText     InlineType = "text"
	InlineLink     InlineType = "link"
	InlineBiLink   InlineType = "bi_link"
	InlineComment  InlineType = "comment"
	InlineEquation InlineType = "equation"
	InlineMention  InlineType = "mention"
	InlineNote     InlineType = "note"
	InlineFootnote InlineType = "footnote"
)

// FrontColor is a wolai foreground color name.
type FrontColor string

const (
	FrontGray     FrontColor = "gray"
	FrontDarkGray FrontColor = "dark_gray"
	FrontBrown    FrontColor = "brown"
	FrontOrange   FrontColor = "orange"
	FrontYellow   FrontColor = "yellow"
	FrontGreen    FrontColor = "green"
	FrontBlue     FrontColor = "blue"
	FrontIndigo   FrontColor = "indigo"
	FrontPurple   FrontColor = "purple"
	FrontPink     FrontColor = "pink"
	FrontRed      FrontColor = "red"
	FrontDefault  FrontColor = "default"
)

// BackColor is a wolai background color name. The palette is large and
// only the default is referenced by name here.
type BackColor string

const BackDefault BackColor = "default"

// RichText is one inline span of a block. The style flags are independent
// of each other and of Type.
type RichText struct {
	Type  InlineType `json:"type"`
	Title string     `json:"title"`

	Bold          bool `json:"bold"`
	Italic        bool `json:"italic"`
	Underline     bool `json:"underline"`
	Highlight     bool `json:"highlight"`
	Strikethrough bool `json:"strikethrough"`
	InlineCode    bool `json:"inline_code"`

	FrontColor FrontColor `json:"front_color,omitempty"`
	BackColor  BackColor  `json:"back_color,omitempty"`

	// Link is the hyperlink target of a text span.
	Link string `json:"link,omitempty"`

	// Content holds nested spans of composite variants.
	Content []RichText `json:"content,omitempty"`

	RefID     string `json:"ref_id,omitempty"`
	BlockID   string `json:"block_id,omitempty"`
	DiscussID int64  `json:"discuss_id,omitempty"`
	CommentID int64  `json:"comment_id,omitempty"`
	UserID    string `json:"user_id,omitempty"`
}
