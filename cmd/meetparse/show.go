package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/meetparse"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	m, err := deps.Meetings.FindMeetingByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", meetparse.ErrorMessage(err))
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}
