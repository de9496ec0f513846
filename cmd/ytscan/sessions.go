package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/pkalinowski/ytscan"
)

// Run executes the sessions command.
func (c *SessionsCmd) Run(deps *Dependencies) error {
	sessions, err := deps.Sessions.FindSessions(deps.Ctx, ytscan.SessionFilter{})
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Fprintln(deps.Stdout, "No sessions stored yet. Run 'ytscan scrape <url>' first.")
		return nil
	}

	w := tabwriter.NewWriter(deps.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCHANNEL\tVIDEOS\tCREATED")
	for _, s := range sessions {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", s.ID, s.ChannelURL, s.VideoCount, s.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}
