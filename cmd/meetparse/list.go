package main

import (
	"fmt"

	"github.com/fwojciec/meetparse"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := meetparse.MeetingFilter{Limit: c.Limit}
	if c.Venue != "" {
		filter.Venue = &c.Venue
	}

	meetings, err := deps.Meetings.FindMeetings(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", meetparse.ErrorMessage(err))
		return err
	}

	if len(meetings) == 0 {
		fmt.Fprintln(deps.Stdout, "No meetings found. Use 'meetparse harvest' to add some.")
		return nil
	}

	for _, m := range meetings {
		fmt.Fprintf(deps.Stdout, "%s  %s\n", m.ID, meetparse.FormatMeeting(m))
	}
	return nil
}
