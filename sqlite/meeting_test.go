package sqlite_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/fwojciec/meetparse"
	"github.com/fwojciec/meetparse/sqlite"
	"github.com/fwojciec/meetparse/xxhash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func strPtr(s string) *string { return &s }

func TestMeetingService_CreateMeeting(t *testing.T) {
	t.Parallel()

	t.Run("creates meeting with generated ID and timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewMeetingService(db)
		ctx := context.Background()

		m := &meetparse.Meeting{
			SourceURL: "https://madridrb.jottit.com/junio_2024",
			Title:     "Ruby y Rails",
			Details:   "<p>Charla</p>",
		}

		err := svc.CreateMeeting(ctx, m)
		require.NoError(t, err)

		assert.NotEmpty(t, m.ID)
		assert.Equal(t, xxhash.ContentHash("<p>Charla</p>"), m.ContentHash)
		assert.False(t, m.FetchedAt.IsZero())
	})

	t.Run("keeps a precomputed content hash", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewMeetingService(db)

		m := &meetparse.Meeting{SourceURL: "https://example.com/1", Title: "T", ContentHash: "abc123"}
		require.NoError(t, svc.CreateMeeting(context.Background(), m))

		assert.Equal(t, "abc123", m.ContentHash)
	})

	t.Run("returns EINVALID for unclassified meeting", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewMeetingService(db)

		err := svc.CreateMeeting(context.Background(), &meetparse.Meeting{SourceURL: "https://example.com/1"})

		require.Error(t, err)
		assert.Equal(t, meetparse.EINVALID, meetparse.ErrorCode(err))
	})

	t.Run("returns EINVALID without source URL", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewMeetingService(db)

		err := svc.CreateMeeting(context.Background(), &meetparse.Meeting{Title: "T"})

		assert.Equal(t, meetparse.EINVALID, meetparse.ErrorCode(err))
	})

	t.Run("replaces meeting stored from the same page", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewMeetingService(db)
		ctx := context.Background()

		first := &meetparse.Meeting{SourceURL: "https://example.com/1", Title: "Old", Venue: "Bar Foo"}
		require.NoError(t, svc.CreateMeeting(ctx, first))
		second := &meetparse.Meeting{SourceURL: "https://example.com/1", Title: "New", Time: "19:30"}
		require.NoError(t, svc.CreateMeeting(ctx, second))

		assert.Equal(t, first.ID, second.ID)
		all, err := svc.FindMeetings(ctx, meetparse.MeetingFilter{})
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "New", all[0].Title)
		assert.Equal(t, "19:30", all[0].Time)
		assert.Empty(t, all[0].Venue)
	})
}

func TestMeetingService_FindMeetingByID(t *testing.T) {
	t.Parallel()

	t.Run("returns every stored field", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewMeetingService(db)
		ctx := context.Background()

		m := &meetparse.Meeting{
			SourceURL: "https://madridrb.jottit.com/junio_2024",
			Title:     "Ruby y Rails",
			Details:   "<p>Charla</p>",
			Date:      day(2024, time.June, 13),
			Time:      "19:30",
			Venue:     "Bar Foo",
			VideoURL:  "http://vimeo.com/111",
			MapURL:    "http://maps.google.es/maps?q=bar",
		}
		require.NoError(t, svc.CreateMeeting(ctx, m))

		found, err := svc.FindMeetingByID(ctx, m.ID)
		require.NoError(t, err)
		assert.Equal(t, m.ID, found.ID)
		assert.Equal(t, m.SourceURL, found.SourceURL)
		assert.Equal(t, m.Title, found.Title)
		assert.Equal(t, m.Details, found.Details)
		require.NotNil(t, found.Date)
		assert.True(t, m.Date.Equal(*found.Date))
		assert.Equal(t, m.Time, found.Time)
		assert.Equal(t, m.Venue, found.Venue)
		assert.Equal(t, m.VideoURL, found.VideoURL)
		assert.Equal(t, m.MapURL, found.MapURL)
		assert.Equal(t, m.ContentHash, found.ContentHash)
		assert.True(t, m.FetchedAt.Equal(found.FetchedAt))
	})

	t.Run("keeps a missing date nil", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewMeetingService(db)
		ctx := context.Background()

		m := &meetparse.Meeting{SourceURL: "https://example.com/1", Title: "T"}
		require.NoError(t, svc.CreateMeeting(ctx, m))

		found, err := svc.FindMeetingByID(ctx, m.ID)
		require.NoError(t, err)
		assert.Nil(t, found.Date)
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewMeetingService(db)

		_, err := svc.FindMeetingByID(context.Background(), "nonexistent")

		require.Error(t, err)
		assert.Equal(t, meetparse.ENOTFOUND, meetparse.ErrorCode(err))
	})
}

func TestMeetingService_FindMeetings(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T) *sqlite.MeetingService {
		t.Helper()
		db := setupTestDB(t)
		svc := sqlite.NewMeetingService(db)
		ctx := context.Background()
		for _, m := range []*meetparse.Meeting{
			{SourceURL: "https://example.com/c", Title: "Sin fecha", Venue: "Campus"},
			{SourceURL: "https://example.com/b", Title: "Junio", Date: day(2024, time.June, 13), Venue: "Bar Foo"},
			{SourceURL: "https://example.com/a", Title: "Mayo", Date: day(2024, time.May, 12), Venue: "Campus Madrid"},
		} {
			require.NoError(t, svc.CreateMeeting(ctx, m))
		}
		return svc
	}

	titles := func(ms []*meetparse.Meeting) []string {
		out := make([]string, len(ms))
		for i, m := range ms {
			out[i] = m.Title
		}
		return out
	}

	t.Run("orders by meeting date with undated last", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)

		ms, err := svc.FindMeetings(context.Background(), meetparse.MeetingFilter{})

		require.NoError(t, err)
		assert.Equal(t, []string{"Mayo", "Junio", "Sin fecha"}, titles(ms))
	})

	t.Run("filters by source URL", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)

		ms, err := svc.FindMeetings(context.Background(), meetparse.MeetingFilter{SourceURL: strPtr("https://example.com/b")})

		require.NoError(t, err)
		assert.Equal(t, []string{"Junio"}, titles(ms))
	})

	t.Run("filters by venue substring", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)

		ms, err := svc.FindMeetings(context.Background(), meetparse.MeetingFilter{Venue: strPtr("Campus")})

		require.NoError(t, err)
		assert.Equal(t, []string{"Mayo", "Sin fecha"}, titles(ms))
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)
		ctx := context.Background()

		page, err := svc.FindMeetings(ctx, meetparse.MeetingFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		assert.Equal(t, []string{"Junio"}, titles(page))

		rest, err := svc.FindMeetings(ctx, meetparse.MeetingFilter{Offset: 2})
		require.NoError(t, err)
		assert.Equal(t, []string{"Sin fecha"}, titles(rest))
	})

	t.Run("returns empty slice when nothing matches", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)

		ms, err := svc.FindMeetings(context.Background(), meetparse.MeetingFilter{ID: strPtr("missing")})

		require.NoError(t, err)
		assert.NotNil(t, ms)
		assert.Empty(t, ms)
	})

	t.Run("handles many meetings", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewMeetingService(db)
		ctx := context.Background()
		for i := range 25 {
			require.NoError(t, svc.CreateMeeting(ctx, &meetparse.Meeting{
				SourceURL: fmt.Sprintf("https://example.com/%d", i),
				Title:     fmt.Sprintf("Meeting %02d", i),
				Date:      day(2020, time.January, i+1),
			}))
		}

		ms, err := svc.FindMeetings(ctx, meetparse.MeetingFilter{Limit: 10})

		require.NoError(t, err)
		require.Len(t, ms, 10)
		assert.Equal(t, "Meeting 00", ms[0].Title)
	})
}

func TestMeetingService_DeleteMeeting(t *testing.T) {
	t.Parallel()

	t.Run("removes meeting", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewMeetingService(db)
		ctx := context.Background()

		m := &meetparse.Meeting{SourceURL: "https://example.com/1", Title: "T"}
		require.NoError(t, svc.CreateMeeting(ctx, m))

		require.NoError(t, svc.DeleteMeeting(ctx, m.ID))

		_, err := svc.FindMeetingByID(ctx, m.ID)
		assert.Equal(t, meetparse.ENOTFOUND, meetparse.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewMeetingService(db)

		err := svc.DeleteMeeting(context.Background(), "nonexistent")

		assert.Equal(t, meetparse.ENOTFOUND, meetparse.ErrorCode(err))
	})
}
