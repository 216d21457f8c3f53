package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/meetparse"
)

// Ensure LoggingPageParser implements meetparse.PageParser.
var _ meetparse.PageParser = (*LoggingPageParser)(nil)

// LoggingPageParser wraps a PageParser with logging of what was found.
type LoggingPageParser struct {
	next   meetparse.PageParser
	logger *slog.Logger
}

// NewLoggingPageParser creates a new LoggingPageParser.
func NewLoggingPageParser(next meetparse.PageParser, logger *slog.Logger) *LoggingPageParser {
	return &LoggingPageParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the extracted fields.
func (p *LoggingPageParser) Parse(html string) (m *meetparse.Meeting, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"bytes", len(html),
			"classified", m.Valid(),
			"duration", time.Since(begin),
		}
		if m.Valid() {
			attrs = append(attrs,
				"title", m.Title,
				"date", m.Date != nil,
				"time", m.Time != "",
				"venue", m.Venue != "",
				"video", m.VideoURL != "",
				"map", m.MapURL != "",
			)
		}
		attrs = append(attrs, "err", err)
		p.logger.Info("parse", attrs...)
	}(time.Now())
	return p.next.Parse(html)
}
