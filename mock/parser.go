package mock

import (
	"time"

	"github.com/fwojciec/meetparse"
)

var _ meetparse.PageParser = (*PageParser)(nil)

// PageParser is a mock implementation of meetparse.PageParser.
type PageParser struct {
	ParseFn func(html string) (*meetparse.Meeting, error)
}

func (p *PageParser) Parse(html string) (*meetparse.Meeting, error) {
	return p.ParseFn(html)
}

var _ meetparse.DateParser = (*DateParser)(nil)

// DateParser is a mock implementation of meetparse.DateParser.
type DateParser struct {
	ParseDateFn func(text string) (time.Time, bool)
}

func (p *DateParser) ParseDate(text string) (time.Time, bool) {
	return p.ParseDateFn(text)
}
