package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/meetparse"
	"github.com/fwojciec/meetparse/xxhash"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ meetparse.MeetingService = (*MeetingService)(nil)

const meetingColumns = `id, source_url, title, details, meeting_date, meeting_time,
	venue, video_url, map_url, content_hash, fetched_at`

// MeetingService implements meetparse.MeetingService using SQLite.
type MeetingService struct {
	db  *DB
	now func() time.Time
}

// NewMeetingService creates a new MeetingService.
func NewMeetingService(db *DB) *MeetingService {
	return &MeetingService{db: db, now: time.Now}
}

// CreateMeeting stores m, assigning ID and FetchedAt. A meeting whose
// source URL is already stored replaces the stored record and keeps its ID.
func (s *MeetingService) CreateMeeting(ctx context.Context, m *meetparse.Meeting) error {
	if err := m.Validate(); err != nil {
		return err
	}

	id := uuid.New().String()
	fetchedAt := s.now().UTC().Truncate(time.Second)
	hash := m.ContentHash
	if hash == "" {
		hash = xxhash.ContentHash(m.Details)
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO meetings (`+meetingColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(source_url) DO UPDATE SET
			title = excluded.title,
			details = excluded.details,
			meeting_date = excluded.meeting_date,
			meeting_time = excluded.meeting_time,
			venue = excluded.venue,
			video_url = excluded.video_url,
			map_url = excluded.map_url,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
		RETURNING id
	`, id, m.SourceURL, m.Title, m.Details, formatDate(m.Date), m.Time,
		m.Venue, m.VideoURL, m.MapURL, hash, fetchedAt.Format(time.RFC3339),
	).Scan(&id)
	if err != nil {
		return err
	}

	m.ID = id
	m.ContentHash = hash
	m.FetchedAt = fetchedAt
	return nil
}

// FindMeetingByID retrieves a meeting by ID.
func (s *MeetingService) FindMeetingByID(ctx context.Context, id string) (*meetparse.Meeting, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+meetingColumns+` FROM meetings WHERE id = ?`, id)
	m, err := scanMeeting(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, meetparse.Errorf(meetparse.ENOTFOUND, "meeting not found")
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// FindMeetings retrieves meetings matching the filter, oldest meeting first.
// Meetings without a date come last.
func (s *MeetingService) FindMeetings(ctx context.Context, filter meetparse.MeetingFilter) ([]*meetparse.Meeting, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT ` + meetingColumns + ` FROM meetings WHERE 1=1`)

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}
	if filter.Venue != nil {
		query.WriteString(" AND venue LIKE ?")
		args = append(args, "%"+*filter.Venue+"%")
	}

	query.WriteString(" ORDER BY meeting_date IS NULL, meeting_date ASC, title ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	meetings := []*meetparse.Meeting{}
	for rows.Next() {
		m, err := scanMeeting(rows)
		if err != nil {
			return nil, err
		}
		meetings = append(meetings, m)
	}
	return meetings, rows.Err()
}

// DeleteMeeting permanently removes a meeting.
func (s *MeetingService) DeleteMeeting(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM meetings WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return meetparse.Errorf(meetparse.ENOTFOUND, "meeting not found")
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMeeting(row scanner) (*meetparse.Meeting, error) {
	var (
		m         meetparse.Meeting
		date      sql.NullString
		fetchedAt string
	)
	if err := row.Scan(&m.ID, &m.SourceURL, &m.Title, &m.Details, &date, &m.Time,
		&m.Venue, &m.VideoURL, &m.MapURL, &m.ContentHash, &fetchedAt); err != nil {
		return nil, err
	}

	var err error
	if m.Date, err = parseDate(date); err != nil {
		return nil, err
	}
	if m.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at"); err != nil {
		return nil, err
	}
	return &m, nil
}
