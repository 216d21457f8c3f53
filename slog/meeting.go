package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/meetparse"
)

// Ensure LoggingMeetingWriter implements meetparse.MeetingWriter.
var _ meetparse.MeetingWriter = (*LoggingMeetingWriter)(nil)

// LoggingMeetingWriter wraps a MeetingWriter with logging.
type LoggingMeetingWriter struct {
	next   meetparse.MeetingWriter
	logger *slog.Logger
}

// NewLoggingMeetingWriter creates a new LoggingMeetingWriter.
func NewLoggingMeetingWriter(next meetparse.MeetingWriter, logger *slog.Logger) *LoggingMeetingWriter {
	return &LoggingMeetingWriter{next: next, logger: logger}
}

// CreateMeeting delegates to the wrapped writer and logs the result.
func (w *LoggingMeetingWriter) CreateMeeting(ctx context.Context, m *meetparse.Meeting) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("store meeting",
			"url", m.SourceURL,
			"id", m.ID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.CreateMeeting(ctx, m)
}
