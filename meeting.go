package meetparse

import (
	"context"
	"time"
)

// Meeting is the metadata extracted from a single meeting page.
// Empty strings and a nil Date mean the field was not found.
type Meeting struct {
	ID          string     `json:"id,omitempty"`
	SourceURL   string     `json:"sourceUrl,omitempty"`
	Title       string     `json:"title"`
	Details     string     `json:"details"` // HTML
	Date        *time.Time `json:"date,omitempty"`
	Time        string     `json:"time,omitempty"` // HH:MM as written on the page
	Venue       string     `json:"venue,omitempty"`
	VideoURL    string     `json:"videoUrl,omitempty"`
	MapURL      string     `json:"mapUrl,omitempty"`
	ContentHash string     `json:"contentHash,omitempty"`
	FetchedAt   time.Time  `json:"fetchedAt,omitzero"`
}

// Valid reports whether the page was classified, i.e. a title was found.
func (m *Meeting) Valid() bool {
	return m != nil && m.Title != ""
}

// Validate returns an error if the meeting cannot be persisted.
func (m *Meeting) Validate() error {
	if m.Title == "" {
		return Errorf(EINVALID, "meeting title required")
	}
	if m.SourceURL == "" {
		return Errorf(EINVALID, "meeting source URL required")
	}
	return nil
}

// PageParser turns the HTML of a meeting page into a Meeting.
type PageParser interface {
	// Parse extracts meeting metadata from raw HTML.
	// A page without a top-level heading is not an error: the returned
	// Meeting is empty and Valid reports false.
	// Returns EINVALID only when the markup cannot be read at all.
	Parse(html string) (*Meeting, error)
}

// DateParser recognizes a meeting date in free text.
type DateParser interface {
	// ParseDate returns the date found in text and whether one was found.
	ParseDate(text string) (time.Time, bool)
}

// MeetingWriter writes meetings to an output sink.
type MeetingWriter interface {
	CreateMeeting(ctx context.Context, m *Meeting) error
}

// MeetingService represents a service for managing stored meetings.
type MeetingService interface {
	// CreateMeeting stores a new meeting and assigns its ID.
	CreateMeeting(ctx context.Context, m *Meeting) error

	// FindMeetingByID retrieves a meeting by ID.
	// Returns ENOTFOUND if the meeting does not exist.
	FindMeetingByID(ctx context.Context, id string) (*Meeting, error)

	// FindMeetings retrieves meetings matching the filter.
	FindMeetings(ctx context.Context, filter MeetingFilter) ([]*Meeting, error)

	// DeleteMeeting permanently removes a meeting.
	// Returns ENOTFOUND if the meeting does not exist.
	DeleteMeeting(ctx context.Context, id string) error
}

// MeetingFilter represents a filter for FindMeetings.
type MeetingFilter struct {
	ID        *string `json:"id"`
	SourceURL *string `json:"sourceUrl"`
	Venue     *string `json:"venue"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
