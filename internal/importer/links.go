package importer

import (
	"bytes"
	"fmt"
	"net/url"
	"path"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// refAttrs maps elements whose references may need rewriting to the
// attribute carrying the reference.
var refAttrs = map[atom.Atom]string{
	atom.A:      "href",
	atom.Img:    "src",
	atom.Script: "src",
	atom.Link:   "href",
	atom.Source: "src",
	atom.Audio:  "src",
	atom.Video:  "src",
}

// rewriteRefs rewrites relative references inside an HTML fragment using the
// old-path-to-new-path mapping built during an import. Absolute URLs,
// anchors, and references not found in the mapping are left untouched.
// The fragment is parsed in a body context so author markup is preserved.
func rewriteRefs(fragment string, fromRel string, mapping map[string]string) (string, error) {
	bodyContext := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), bodyContext)
	if err != nil {
		return "", fmt.Errorf("parse fragment: %w", err)
	}

	for _, node := range nodes {
		rewriteNode(node, fromRel, mapping)
	}

	var buf bytes.Buffer
	for _, node := range nodes {
		if err := html.Render(&buf, node); err != nil {
			return "", fmt.Errorf("render fragment: %w", err)
		}
	}
	return buf.String(), nil
}

func rewriteNode(n *html.Node, fromRel string, mapping map[string]string) {
	if n.Type == html.ElementNode {
		if attrName, ok := refAttrs[n.DataAtom]; ok {
			for i, attr := range n.Attr {
				if attr.Key != attrName {
					continue
				}
				if replacement, ok := resolveRef(attr.Val, fromRel, mapping); ok {
					n.Attr[i].Val = replacement
				}
			}
		}
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		rewriteNode(child, fromRel, mapping)
	}
}

// resolveRef maps one reference to its post-import location. References are
// resolved relative to the source file's directory before lookup, so
// "../images/logo.png" from "guide/intro.html" finds "images/logo.png".
func resolveRef(ref, fromRel string, mapping map[string]string) (string, bool) {
	if ref == "" || strings.HasPrefix(ref, "#") || strings.HasPrefix(ref, "data:") {
		return "", false
	}
	parsed, err := url.Parse(ref)
	if err != nil || parsed.IsAbs() || parsed.Host != "" {
		return "", false
	}

	refPath := parsed.Path
	if refPath == "" {
		return "", false
	}
	resolved := path.Clean(path.Join(path.Dir(fromRel), refPath))
	target, ok := mapping[resolved]
	if !ok {
		// Also try the raw reference for flat imports.
		target, ok = mapping[path.Clean(refPath)]
	}
	if !ok {
		return "", false
	}
	if parsed.Fragment != "" {
		target += "#" + parsed.Fragment
	}
	return target, true
}
