package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Wiki identifies the engine that rendered a page.
type Wiki string

// Known wiki engines.
const (
	WikiUnknown   Wiki = ""
	WikiMediaWiki Wiki = "mediawiki"
	WikiDokuWiki  Wiki = "dokuwiki"
	WikiTrac      Wiki = "trac"
	WikiMoinMoin  Wiki = "moinmoin"
	WikiPmWiki    Wiki = "pmwiki"
	WikiGitHub    Wiki = "github"
)

// wikiRoots maps each engine to the element holding its page content.
var wikiRoots = map[Wiki]string{
	WikiMediaWiki: "#mw-content-text",
	WikiDokuWiki:  "div.page",
	WikiTrac:      "#wikipage",
	WikiMoinMoin:  "#page",
	WikiPmWiki:    "#wikitext",
	WikiGitHub:    ".markdown-body",
}

// DetectWiki identifies the wiki engine from the generator meta tag or,
// failing that, from engine-specific markup.
func DetectWiki(doc *goquery.Document) Wiki {
	if w := wikiFromGenerator(doc); w != WikiUnknown {
		return w
	}

	switch {
	case has(doc, "#mw-content-text"), has(doc, "body.mediawiki"):
		return WikiMediaWiki
	case has(doc, "div.dokuwiki"):
		return WikiDokuWiki
	case has(doc, "#wikipage"), has(doc, "#trac-noscript"):
		return WikiTrac
	case has(doc, "#wikitext"):
		return WikiPmWiki
	case has(doc, "#gollum-markdown"), has(doc, "#wiki-body .markdown-body"):
		return WikiGitHub
	}
	return WikiUnknown
}

func wikiFromGenerator(doc *goquery.Document) Wiki {
	generator := strings.ToLower(doc.Find("meta[name='generator']").Last().AttrOr("content", ""))
	switch {
	case generator == "":
		return WikiUnknown
	case strings.Contains(generator, "mediawiki"):
		return WikiMediaWiki
	case strings.Contains(generator, "dokuwiki"):
		return WikiDokuWiki
	case strings.Contains(generator, "trac"):
		return WikiTrac
	case strings.Contains(generator, "moinmoin"):
		return WikiMoinMoin
	case strings.Contains(generator, "pmwiki"):
		return WikiPmWiki
	}
	return WikiUnknown
}

func has(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}

// contentRoot returns the #content element. Pages without one fall back
// to the detected engine's content element, then to the body.
func contentRoot(doc *goquery.Document) (*goquery.Selection, Wiki) {
	if root := doc.Find(ContentSelector).First(); root.Length() > 0 {
		return root, WikiUnknown
	}
	wiki := DetectWiki(doc)
	if sel, ok := wikiRoots[wiki]; ok {
		if root := doc.Find(sel).First(); root.Length() > 0 {
			return root, wiki
		}
	}
	return doc.Find("body").First(), wiki
}
