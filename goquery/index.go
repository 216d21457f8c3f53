package goquery

// Header texts marking the chapters that list sponsors and attendees.
const (
	OfferedByES = "Ofrecido por"
	OfferedByEN = "Offered by"
	AttendeesES = "Asistentes"
	AttendeesEN = "Attendees"
)

// unset marks a chapter index that was not found.
const unset = -1

// ChapterIndexes locates the meaningful chapters of a page.
// A field is -1 when no chapter qualified.
type ChapterIndexes struct {
	Main      int
	OfferedBy int
	Attendees int
	Speaker   int
}

// HasMain reports whether a level-1 chapter was found.
func (x ChapterIndexes) HasMain() bool {
	return x.Main != unset
}

// FindIndexes scans chapters once, left to right.
//
// Main, OfferedBy and Attendees are reassigned on every qualifying
// chapter, so the last one wins. Speaker is assigned once: the first
// headed chapter at or after Main that is not the offered-by chapter seen
// so far. Note that the main chapter itself usually qualifies as Speaker.
func FindIndexes(chapters []Chapter) ChapterIndexes {
	x := ChapterIndexes{Main: unset, OfferedBy: unset, Attendees: unset, Speaker: unset}

	for i, ch := range chapters {
		if ch.Header == nil {
			continue
		}
		text := ch.HeaderText()

		if ch.IsMain() {
			x.Main = i
		}
		switch text {
		case OfferedByES, OfferedByEN:
			x.OfferedBy = i
		case AttendeesES, AttendeesEN:
			x.Attendees = i
		}
		if x.Speaker == unset && x.Main != unset && i != x.OfferedBy && i != x.Speaker {
			x.Speaker = i
		}
	}

	return x
}
