// Package goquery implements meeting page parsing on top of goquery.
//
// A page is split into header-delimited chapters, the chapter introduced
// by the level-1 heading becomes the meeting title and details, and
// labelled fields (date, time, venue) are sniffed out of the paragraphs
// around it.
package goquery

import (
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/meetparse"
)

// ContentSelector selects the wiki content root of a page.
const ContentSelector = "#content"

// Ensure Parser implements meetparse.PageParser at compile time.
var _ meetparse.PageParser = (*Parser)(nil)

// Parser extracts meetings from wiki pages. It holds configuration only;
// every call to Parse works on its own state, so one Parser may be used
// from multiple goroutines.
type Parser struct {
	dates  meetparse.DateParser
	logger *slog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithDateParser sets the parser used for the meeting date.
// Without one, Meeting.Date is never set.
func WithDateParser(dp meetparse.DateParser) Option {
	return func(p *Parser) {
		p.dates = dp
	}
}

// WithLogger sets the logger receiving parse diagnostics.
// Diagnostics are discarded by default.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// NewParser creates a new Parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// stage is the point a parse run has reached.
type stage int

const (
	stageInitialized stage = iota
	stageSplit
	stageIndexed
	stageUnclassifiable
	stageClassified
	stageDone
)

var stageNames = [...]string{"initialized", "split", "indexed", "unclassifiable", "classified", "done"}

func (s stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[s]
}

// run holds the working state of a single Parse call.
type run struct {
	parser   *Parser
	stage    stage
	meeting  *meetparse.Meeting
	chapters []Chapter
	indexes  ChapterIndexes
	metadata []*goquery.Selection
	links    []*goquery.Selection
}

// Parse extracts meeting metadata from raw HTML.
func (p *Parser) Parse(html string) (*meetparse.Meeting, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, meetparse.Errorf(meetparse.EINVALID, "failed to parse HTML: %v", err)
	}

	root, wiki := contentRoot(doc)
	if wiki != WikiUnknown {
		p.logger.Debug("content root", "wiki", string(wiki))
	}

	r := &run{parser: p, meeting: &meetparse.Meeting{}}
	r.parse(root)
	return r.meeting, nil
}

func (r *run) parse(root *goquery.Selection) {
	r.chapters = Split(root)
	r.stage = stageSplit

	r.indexes = FindIndexes(r.chapters)
	r.stage = stageIndexed

	if !r.indexes.HasMain() {
		r.stage = stageUnclassifiable
		r.parser.logger.Info("no h1 in page", "chapters", len(r.chapters), "stage", r.stage)
		return
	}

	r.collectMain()
	r.collectPrefix()
	r.extractFields()
	r.classifyLinks()
	r.findMissingLinks()
	r.stage = stageClassified

	r.parser.logger.Debug("page classified",
		"stage", r.stage,
		"main", r.indexes.Main,
		"offered_by", r.indexes.OfferedBy,
		"attendees", r.indexes.Attendees,
		"speaker", r.indexes.Speaker,
		"metadata_nodes", len(r.metadata),
	)
	r.stage = stageDone
}
