package main

import (
	"fmt"

	"github.com/pkalinowski/ytscan"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	sessionID := c.SessionID
	if sessionID == "" {
		sessions, err := deps.Sessions.FindSessions(deps.Ctx, ytscan.SessionFilter{Limit: 1})
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			return ytscan.Errorf(ytscan.ENOTFOUND, "no sessions stored yet, run 'ytscan scrape <url>' first")
		}
		sessionID = sessions[0].ID
	}

	videos, err := deps.Sessions.FindVideosBySession(deps.Ctx, sessionID)
	if err != nil {
		return err
	}
	if len(videos) == 0 {
		if _, err := deps.Sessions.FindSessionByID(deps.Ctx, sessionID); err != nil {
			return err
		}
	}

	path, err := deps.Exporter.Export(deps.Ctx, videos)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d videos to %s\n", len(videos), path)
	return nil
}
