// Package dateparser implements meetparse.DateParser with go-dateparser.
// Meeting pages are written in Spanish or English and dates are usually
// day-first ("12/05/2024", "jueves 12 de mayo").
package dateparser

import (
	"time"

	"github.com/fwojciec/meetparse"
	dps "github.com/markusmobius/go-dateparser"
)

// DefaultLanguages are the languages meeting pages are written in.
var DefaultLanguages = []string{"es", "en"}

// Ensure Parser implements meetparse.DateParser at compile time.
var _ meetparse.DateParser = (*Parser)(nil)

// Parser finds the meeting date in labelled metadata text.
type Parser struct {
	languages []string
	now       func() time.Time
	location  *time.Location
}

// Option configures a Parser.
type Option func(*Parser)

// WithLanguages overrides DefaultLanguages.
func WithLanguages(langs ...string) Option {
	return func(p *Parser) {
		p.languages = langs
	}
}

// WithCurrentTime sets the reference time used for relative dates such
// as "next Tuesday". Defaults to time.Now.
func WithCurrentTime(now func() time.Time) Option {
	return func(p *Parser) {
		p.now = now
	}
}

// WithLocation sets the time zone of returned dates. Defaults to UTC.
func WithLocation(loc *time.Location) Option {
	return func(p *Parser) {
		p.location = loc
	}
}

// NewParser creates a new Parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		languages: DefaultLanguages,
		now:       time.Now,
		location:  time.UTC,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseDate returns the date following the first "Fecha:" or "Date:"
// label in text. Only the calendar day is kept. When the whole value is
// not a date, the first date found inside it is used.
func (p *Parser) ParseDate(text string) (time.Time, bool) {
	value, ok := meetparse.ExtractDateText(text)
	if !ok {
		return time.Time{}, false
	}

	cfg := &dps.Configuration{
		Languages:   p.languages,
		DateOrder:   dps.DMY,
		CurrentTime: p.now().In(p.location),
	}

	t, ok := p.parse(cfg, value)
	if !ok {
		t, ok = p.search(cfg, value)
	}
	if !ok {
		return time.Time{}, false
	}

	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, p.location), true
}

func (p *Parser) parse(cfg *dps.Configuration, value string) (time.Time, bool) {
	dt, err := dps.Parse(cfg, value)
	if err != nil || dt.Time.IsZero() {
		return time.Time{}, false
	}
	return dt.Time, true
}

func (p *Parser) search(cfg *dps.Configuration, value string) (time.Time, bool) {
	_, results, err := dps.Search(cfg, value)
	if err != nil {
		return time.Time{}, false
	}
	for _, r := range results {
		if !r.Date.Time.IsZero() {
			return r.Date.Time, true
		}
	}
	return time.Time{}, false
}
