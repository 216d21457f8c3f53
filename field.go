package meetparse

import (
	"regexp"
	"strings"
)

// Field labels that mark a block of text as meeting metadata. Each label
// must be followed by a colon and at least one whitespace character.
// Patterns are matched against lower-cased text.
const (
	FechaLabelPattern = `fecha:\s`
	HoraLabelPattern  = `hora:\s`
	LugarLabelPattern = `lugar:\s`
	DateLabelPattern  = `date:\s`
	TimeLabelPattern  = `time:\s`
	VenueLabelPattern = `venue:\s`
)

// Field value patterns. The value is always the second capture group.
const (
	DateFieldPattern  = `(?i)(fecha|date):\s*(.*)`
	TimeFieldPattern  = `(?i)(hora|time):\s*(\d+:\d+)h?`
	VenueFieldPattern = `(?i)(lugar|venue):\s*(.*)`

	// FieldLabelPattern finds where the next labelled field starts. Text
	// extracted from <br> or <li> separated fields has no line break
	// between them, so no word boundary is required.
	FieldLabelPattern = `(?i)(fecha|date|hora|time|lugar|venue):`

	// MapMarkerPattern matches the "(mapa)" hint people leave next to the
	// venue when the map link follows it.
	MapMarkerPattern = `(?i)\s*\(mapa\)\s*`
)

var (
	metadataLabels = []*regexp.Regexp{
		regexp.MustCompile(FechaLabelPattern),
		regexp.MustCompile(HoraLabelPattern),
		regexp.MustCompile(LugarLabelPattern),
		regexp.MustCompile(DateLabelPattern),
		regexp.MustCompile(TimeLabelPattern),
		regexp.MustCompile(VenueLabelPattern),
	}

	dateFieldRe  = regexp.MustCompile(DateFieldPattern)
	timeFieldRe  = regexp.MustCompile(TimeFieldPattern)
	venueFieldRe = regexp.MustCompile(VenueFieldPattern)
	mapMarkerRe  = regexp.MustCompile(MapMarkerPattern)
	fieldLabelRe = regexp.MustCompile(FieldLabelPattern)
)

// LooksLikeMetadata reports whether text carries labelled meeting fields
// ("Fecha: ...", "Time: ..." and so on) rather than narrative detail.
// False positives and negatives are accepted: a paragraph that happens to
// contain "date: " is treated as metadata.
func LooksLikeMetadata(text string) bool {
	lower := strings.ToLower(text)
	for _, re := range metadataLabels {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}

// ExtractTime returns the first "Hora: 19:30h" style time in text.
// The HH:MM value is returned as written, without validation.
func ExtractTime(text string) (string, bool) {
	m := timeFieldRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[2], true
}

// ExtractVenue returns the rest of the line following the first
// "Lugar:" or "Venue:" label, with any "(mapa)" marker removed.
func ExtractVenue(text string) (string, bool) {
	m := venueFieldRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return mapMarkerRe.ReplaceAllString(m[2], ""), true
}

// ExtractDateText returns the raw text following the first "Fecha:" or
// "Date:" label, up to the end of the line or the next field label, for a
// DateParser to interpret.
func ExtractDateText(text string) (string, bool) {
	m := dateFieldRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	value := m[2]
	if loc := fieldLabelRe.FindStringIndex(value); loc != nil {
		value = value[:loc[0]]
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	return value, true
}
