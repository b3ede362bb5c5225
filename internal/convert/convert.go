// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert runs one wolai-to-Markdown conversion: it fetches the
// children of a block, transforms them into a Markdown AST, serializes it,
// and writes the result under an output directory.
package convert

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/wolai2md/internal/mdast"
	"github.com/pdiddy/wolai2md/internal/transform"
	"github.com/pdiddy/wolai2md/pkg/types"
)

// DefaultFilename is the Markdown file written under the output directory.
const DefaultFilename = "index.md"

// ErrFilesystem reports a failure to create the output directory or write
// an output file.
var ErrFilesystem = errors.New("filesystem error")

// Fetcher returns the children of a block. *wolai.Client implements it.
type Fetcher interface {
	Children(ctx context.Context, blockID string) (*types.BlocksResponse, error)
}

// Result describes a finished conversion.
type Result struct {
	// Path is the written Markdown file.
	Path string

	// HTMLPath is the written preview, empty unless requested.
	HTMLPath string

	RequestID string
	Blocks    int
	Footnotes int
	Bytes     int
}

// Converter ties a Fetcher to output settings.
type Converter struct {
	Fetcher Fetcher
	Output  types.OutputConfig
	Log     logrus.FieldLogger

	// Now stamps the frontmatter; tests replace it.
	Now func() time.Time
}

// ConvertPage converts the children of blockID into outDir/<filename>,
// overwriting an existing file. The output directory is created, with
// parents, before anything is fetched. Nothing is written when the fetch or
// the transform fails.
func (c *Converter) ConvertPage(ctx context.Context, blockID, outDir string) (Result, error) {
	var res Result

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return res, fmt.Errorf("%w: creating %s: %v", ErrFilesystem, outDir, err)
	}

	resp, err := c.Fetcher.Children(ctx, blockID)
	if err != nil {
		return res, fmt.Errorf("fetching children of %s: %w", blockID, err)
	}
	res.RequestID = resp.RequestID
	res.Blocks = len(resp.Data)

	tr := transform.New()
	root, err := tr.Document(resp.Data)
	if err != nil {
		return res, fmt.Errorf("converting %s: %w", blockID, err)
	}
	res.Footnotes = tr.Footnotes().Len()

	md := mdast.ToMarkdown(root)
	content := md
	if c.Output.Frontmatter {
		content, err = c.addFrontmatter(blockID, res, md)
		if err != nil {
			return res, err
		}
	}

	filename := c.Output.Filename
	if filename == "" {
		filename = DefaultFilename
	}
	res.Path = filepath.Join(outDir, filename)
	if err := os.WriteFile(res.Path, []byte(content), 0o644); err != nil {
		return res, fmt.Errorf("%w: writing %s: %v", ErrFilesystem, res.Path, err)
	}
	res.Bytes = len(content)

	if c.Output.HTML {
		html, err := RenderHTML(md)
		if err != nil {
			return res, fmt.Errorf("rendering HTML preview: %w", err)
		}
		htmlPath := filepath.Join(outDir, strings.TrimSuffix(filename, filepath.Ext(filename))+".html")
		if err := os.WriteFile(htmlPath, html, 0o644); err != nil {
			return res, fmt.Errorf("%w: writing %s: %v", ErrFilesystem, htmlPath, err)
		}
		res.HTMLPath = htmlPath
	}

	c.Log.WithFields(logrus.Fields{
		"path":       res.Path,
		"blocks":     res.Blocks,
		"footnotes":  res.Footnotes,
		"bytes":      res.Bytes,
		"request_id": res.RequestID,
	}).Info("wrote markdown")
	return res, nil
}

type frontmatter struct {
	BlockID       string `yaml:"block_id"`
	RequestID     string `yaml:"request_id,omitempty"`
	ConvertedAt   string `yaml:"converted_at"`
	BlockCount    int    `yaml:"block_count"`
	FootnoteCount int    `yaml:"footnote_count"`
}

// addFrontmatter prepends a YAML header describing the run.
func (c *Converter) addFrontmatter(blockID string, res Result, body string) (string, error) {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	fm := frontmatter{
		BlockID:       blockID,
		RequestID:     res.RequestID,
		ConvertedAt:   now().UTC().Format(time.RFC3339),
		BlockCount:    res.Blocks,
		FootnoteCount: res.Footnotes,
	}
	data, err := yaml.Marshal(&fm)
	if err != nil {
		return "", fmt.Errorf("marshalling frontmatter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(data)
	b.WriteString("---\n\n")
	b.WriteString(body)
	return b.String(), nil
}
