package mock

import (
	"context"

	"github.com/fwojciec/meetparse"
)

var _ meetparse.MeetingService = (*MeetingService)(nil)

// MeetingService is a mock implementation of meetparse.MeetingService.
type MeetingService struct {
	CreateMeetingFn   func(ctx context.Context, m *meetparse.Meeting) error
	FindMeetingByIDFn func(ctx context.Context, id string) (*meetparse.Meeting, error)
	FindMeetingsFn    func(ctx context.Context, filter meetparse.MeetingFilter) ([]*meetparse.Meeting, error)
	DeleteMeetingFn   func(ctx context.Context, id string) error
}

func (s *MeetingService) CreateMeeting(ctx context.Context, m *meetparse.Meeting) error {
	return s.CreateMeetingFn(ctx, m)
}

func (s *MeetingService) FindMeetingByID(ctx context.Context, id string) (*meetparse.Meeting, error) {
	return s.FindMeetingByIDFn(ctx, id)
}

func (s *MeetingService) FindMeetings(ctx context.Context, filter meetparse.MeetingFilter) ([]*meetparse.Meeting, error) {
	return s.FindMeetingsFn(ctx, filter)
}

func (s *MeetingService) DeleteMeeting(ctx context.Context, id string) error {
	return s.DeleteMeetingFn(ctx, id)
}

var _ meetparse.MeetingWriter = (*MeetingWriter)(nil)

// MeetingWriter is a mock implementation of meetparse.MeetingWriter.
type MeetingWriter struct {
	CreateMeetingFn func(ctx context.Context, m *meetparse.Meeting) error
}

func (w *MeetingWriter) CreateMeeting(ctx context.Context, m *meetparse.Meeting) error {
	return w.CreateMeetingFn(ctx, m)
}
