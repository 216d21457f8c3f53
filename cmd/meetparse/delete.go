package main

import (
	"fmt"

	"github.com/fwojciec/meetparse"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return meetparse.Errorf(meetparse.EINVALID, "use --force to confirm deletion")
	}

	m, err := deps.Meetings.FindMeetingByID(deps.Ctx, c.ID)
	if err != nil {
		if meetparse.ErrorCode(err) == meetparse.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: meeting %q not found. Use 'meetparse list' to see stored meetings.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", meetparse.ErrorMessage(err))
		return err
	}

	if err := deps.Meetings.DeleteMeeting(deps.Ctx, m.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", meetparse.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted meeting %q\n", m.Title)
	return nil
}
