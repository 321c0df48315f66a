package importer

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// extractHTML pulls a display title and a body fragment out of a full or
// partial HTML document. The title comes from <title>, falling back to the
// first <h1>, falling back to fallbackTitle. The body is the inner HTML of
// <body> (the parser synthesizes one for fragments).
func extractHTML(content []byte, fallbackTitle string) (title, body string, err error) {
	doc, err := html.Parse(bytes.NewReader(content))
	if err != nil {
		return "", "", fmt.Errorf("parse html: %w", err)
	}

	title = textOf(findElement(doc, atom.Title))
	if strings.TrimSpace(title) == "" {
		title = textOf(findElement(doc, atom.H1))
	}
	title = strings.Join(strings.Fields(title), " ")
	if title == "" {
		title = fallbackTitle
	}

	bodyNode := findElement(doc, atom.Body)
	if bodyNode == nil {
		return title, string(content), nil
	}
	var buf bytes.Buffer
	for child := bodyNode.FirstChild; child != nil; child = child.NextSibling {
		if err := html.Render(&buf, child); err != nil {
			return "", "", fmt.Errorf("render body: %w", err)
		}
	}
	return title, strings.TrimSpace(buf.String()), nil
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findElement(child, a); found != nil {
			return found
		}
	}
	return nil
}

func textOf(n *html.Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return sb.String()
}

// wrapText converts a plain-text file into an HTML fragment. With paragraph
// wrapping, blank lines separate <p> blocks; otherwise the whole text goes
// into a single <pre>.
func wrapText(content string, wrapParagraphs bool) string {
	escaped := html.EscapeString(strings.ReplaceAll(content, "\r\n", "\n"))
	if !wrapParagraphs {
		return "<pre>" + escaped + "</pre>"
	}
	var blocks []string
	for _, block := range strings.Split(escaped, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		blocks = append(blocks, "<p>"+strings.ReplaceAll(block, "\n", "<br>")+"</p>")
	}
	return strings.Join(blocks, "\n")
}
