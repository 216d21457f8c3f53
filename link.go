package meetparse

import "regexp"

// Link patterns, matched anywhere in an href.
const (
	VideoURLPattern = `vimeo\.com`
	MapURLPattern   = `g(oogle)?\.(com|es|co)/maps`
)

var (
	videoURLRe = regexp.MustCompile(VideoURLPattern)
	mapURLRe   = regexp.MustCompile(MapURLPattern)
)

// IsVideoURL reports whether href points at a meeting recording.
func IsVideoURL(href string) bool {
	return videoURLRe.MatchString(href)
}

// IsMapURL reports whether href points at a Google Maps location.
// Both google.com/maps and the short g.co/maps forms are accepted.
func IsMapURL(href string) bool {
	return mapURLRe.MatchString(href)
}

// AssignLink records href on m if it is the first link of its kind.
// Already-set links are never overwritten. Reports whether m changed.
func AssignLink(m *Meeting, href string) bool {
	changed := false
	if m.VideoURL == "" && IsVideoURL(href) {
		m.VideoURL = href
		changed = true
	}
	if m.MapURL == "" && IsMapURL(href) {
		m.MapURL = href
		changed = true
	}
	return changed
}
