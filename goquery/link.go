package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/meetparse"
)

// anchors returns the descendant anchors of s in document order.
// The node itself is not included.
func anchors(s *goquery.Selection) []*goquery.Selection {
	var out []*goquery.Selection
	s.Find("a").Each(func(_ int, a *goquery.Selection) {
		out = append(out, a)
	})
	return out
}

// classifyLinks assigns the first video and the first map link found in
// the collected anchors. Links set earlier are never replaced.
func (r *run) classifyLinks() {
	hrefs := make([]string, 0, len(r.links))
	for _, a := range r.links {
		href, ok := a.Attr("href")
		if !ok {
			continue
		}
		hrefs = append(hrefs, href)
		meetparse.AssignLink(r.meeting, href)
	}
	r.parser.logger.Info("found links", "count", len(r.links), "hrefs", hrefs)
}

// findMissingLinks is where links living outside the title and metadata
// nodes would be recovered. Video links are sometimes placed in unrelated
// chapters; no heuristic for them exists yet, so this does nothing.
func (r *run) findMissingLinks() {}
