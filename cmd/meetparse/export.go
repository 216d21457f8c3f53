package main

import (
	"fmt"

	"github.com/fwojciec/meetparse"
	"github.com/fwojciec/meetparse/fs"
)

// Run executes the export command. The output directory is replaced only
// when every meeting was written.
func (c *ExportCmd) Run(deps *Dependencies) error {
	filter := meetparse.MeetingFilter{}
	if c.Venue != "" {
		filter.Venue = &c.Venue
	}

	meetings, err := deps.Meetings.FindMeetings(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", meetparse.ErrorMessage(err))
		return err
	}

	export := fs.NewExport(c.Dir)
	if err := export.Begin(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", meetparse.ErrorMessage(err))
		return err
	}
	w := fs.NewWriter(export.Dir(), deps.Converter)
	for _, m := range meetings {
		if err := w.CreateMeeting(deps.Ctx, m); err != nil {
			_ = export.Abort()
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", m.Title, meetparse.ErrorMessage(err))
			return err
		}
	}

	if err := export.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", meetparse.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d meetings to %s\n", len(meetings), c.Dir)
	return nil
}
