package importer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// gfm is the shared GitHub Flavored Markdown converter.
var gfm = goldmark.New(goldmark.WithExtensions(extension.GFM))

// convertMarkdown renders a Markdown file to an HTML fragment and extracts a
// display title from the first level-1 heading, falling back to
// fallbackTitle.
func convertMarkdown(content []byte, fallbackTitle string) (title, body string, err error) {
	var buf bytes.Buffer
	if err := gfm.Convert(content, &buf); err != nil {
		return "", "", fmt.Errorf("convert markdown: %w", err)
	}

	title = firstHeading(content)
	if title == "" {
		title = fallbackTitle
	}
	return title, strings.TrimSpace(buf.String()), nil
}

// firstHeading returns the text of the first level-1 heading, or "".
func firstHeading(content []byte) string {
	root := gfm.Parser().Parse(text.NewReader(content))
	var title string
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering || title != "" {
			return gmast.WalkContinue, nil
		}
		heading, ok := n.(*gmast.Heading)
		if !ok || heading.Level != 1 {
			return gmast.WalkContinue, nil
		}
		var sb strings.Builder
		for child := heading.FirstChild(); child != nil; child = child.NextSibling() {
			if textNode, ok := child.(*gmast.Text); ok {
				sb.Write(textNode.Segment.Value(content))
			}
		}
		title = sb.String()
		return gmast.WalkStop, nil
	})
	return strings.TrimSpace(title)
}
