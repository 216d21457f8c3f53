package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/meetparse"
)

// looksLikeMetadata applies the label sniffing heuristic to the full text
// of a node and its subtree.
func looksLikeMetadata(s *goquery.Selection) bool {
	return meetparse.LooksLikeMetadata(s.Text())
}

// collectMain reads the title from the main chapter header and splits its
// body into details and metadata. Nodes are diverted to metadata only
// when the main chapter is the first chapter of the page; otherwise the
// whole body is details.
func (r *run) collectMain() {
	main := r.chapters[r.indexes.Main]

	r.meeting.Title = main.HeaderText()
	r.links = append(r.links, anchors(main.Header)...)

	var details strings.Builder
	for _, node := range main.Contents {
		if r.indexes.Main == 0 && looksLikeMetadata(node) {
			r.metadata = append(r.metadata, node)
			continue
		}
		details.WriteString(outerHTML(node))
	}
	r.meeting.Details = details.String()
}

// collectPrefix falls back to the chapters preceding the main chapter
// when the main chapter yielded no metadata. Every sniffed node is kept,
// in chapter then node order.
func (r *run) collectPrefix() {
	if len(r.metadata) > 0 {
		return
	}
	if r.indexes.Main == 0 {
		r.parser.logger.Info("no metadata source in page", "chapters", len(r.chapters))
		return
	}
	for _, ch := range r.chapters[:r.indexes.Main] {
		for _, node := range ch.Contents {
			if looksLikeMetadata(node) {
				r.metadata = append(r.metadata, node)
			}
		}
	}
}

// metadataText joins the text of all metadata nodes, one per line.
func (r *run) metadataText() string {
	texts := make([]string, 0, len(r.metadata))
	for _, node := range r.metadata {
		texts = append(texts, node.Text())
	}
	return strings.Join(texts, "\n")
}

// extractFields runs the field extractors over the metadata text and then
// queues the anchors found inside metadata nodes for classification.
func (r *run) extractFields() {
	text := r.metadataText()

	if r.parser.dates != nil {
		if date, ok := r.parser.dates.ParseDate(text); ok {
			r.meeting.Date = &date
		}
	}
	if t, ok := meetparse.ExtractTime(text); ok {
		r.meeting.Time = t
	}
	if venue, ok := meetparse.ExtractVenue(text); ok {
		r.meeting.Venue = venue
	}

	for _, node := range r.metadata {
		r.links = append(r.links, anchors(node)...)
	}
}

// outerHTML renders a node, including itself, back to markup.
func outerHTML(s *goquery.Selection) string {
	h, err := goquery.OuterHtml(s)
	if err != nil {
		return ""
	}
	return h
}
