package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Chapter is a header plus the content nodes that follow it, up to the
// next header. Header is nil for content preceding the first header.
type Chapter struct {
	Header   *goquery.Selection
	Contents []*goquery.Selection
}

// HeaderText returns the text content of the chapter header, or an empty
// string for a headerless chapter.
func (c Chapter) HeaderText() string {
	if c.Header == nil {
		return ""
	}
	return c.Header.Text()
}

// IsMain reports whether the chapter is introduced by a level-1 heading.
func (c Chapter) IsMain() bool {
	return c.Header != nil && c.Header.Get(0).DataAtom == atom.H1
}

func (c Chapter) empty() bool {
	return c.Header == nil && len(c.Contents) == 0
}

// Split groups the direct children of root into chapters in document
// order. Every h1-h6 child starts a new chapter. Headers nested inside
// other elements are ordinary content. Comments and whitespace-only text
// between blocks are skipped.
func Split(root *goquery.Selection) []Chapter {
	var chapters []Chapter
	var current Chapter

	root.Contents().Each(func(_ int, s *goquery.Selection) {
		node := s.Get(0)
		if skipNode(node) {
			return
		}
		if isHeader(node) {
			if !current.empty() {
				chapters = append(chapters, current)
			}
			current = Chapter{Header: s}
			return
		}
		current.Contents = append(current.Contents, s)
	})

	if !current.empty() {
		chapters = append(chapters, current)
	}
	return chapters
}

func isHeader(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	switch n.DataAtom {
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return true
	}
	return false
}

func skipNode(n *html.Node) bool {
	switch n.Type {
	case html.ElementNode:
		return false
	case html.TextNode:
		return strings.TrimSpace(n.Data) == ""
	}
	return true
}
