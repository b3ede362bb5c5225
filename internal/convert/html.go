// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// previewMarkdown parses the same GFM and footnote syntax the printer emits.
var previewMarkdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM, extension.Footnote),
)

const htmlHeader = "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n</head>\n<body>\n"

// RenderHTML renders Markdown into a standalone HTML page for previewing a
// conversion. Math is left as its $ source text.
func RenderHTML(markdown string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(htmlHeader)
	if err := previewMarkdown.Convert([]byte(markdown), &buf); err != nil {
		return nil, fmt.Errorf("goldmark: %w", err)
	}
	buf.WriteString("</body>\n</html>\n")
	return buf.Bytes(), nil
}
