package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/meetparse"
)

// Run executes the parse command. An unclassifiable page still prints
// its empty record.
func (c *ParseCmd) Run(deps *Dependencies) error {
	html, err := c.load(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", meetparse.ErrorMessage(err))
		return err
	}

	m, err := deps.Parser.Parse(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", meetparse.ErrorMessage(err))
		return err
	}

	if m.Valid() {
		if isURL(c.Source) {
			m.SourceURL = c.Source
		}
	} else {
		fmt.Fprintln(deps.Stderr, "page is not classifiable")
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}

func (c *ParseCmd) load(deps *Dependencies) (string, error) {
	if isURL(c.Source) {
		return deps.Fetcher.Fetch(deps.Ctx, c.Source)
	}
	b, err := os.ReadFile(c.Source)
	if os.IsNotExist(err) {
		return "", meetparse.Errorf(meetparse.ENOTFOUND, "file %q not found", c.Source)
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
