package main

import (
	"fmt"
	"os"
	"strings"
)

// Run executes the logs command.
func (c *LogsCmd) Run(deps *Dependencies) error {
	if c.Clear {
		if err := os.Truncate(deps.LogPath, 0); err != nil && !os.IsNotExist(err) {
			return err
		}
		fmt.Fprintln(deps.Stdout, "Log file cleared.")
		return nil
	}

	content, err := os.ReadFile(deps.LogPath)
	if os.IsNotExist(err) {
		fmt.Fprintln(deps.Stdout, "No log file found yet.")
		return nil
	}
	if err != nil {
		return err
	}

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		fmt.Fprintln(deps.Stdout, "Log file is empty.")
		return nil
	}

	if c.Lines > 0 && len(lines) > c.Lines {
		lines = lines[len(lines)-c.Lines:]
	}
	for _, line := range lines {
		fmt.Fprintln(deps.Stdout, line)
	}
	return nil
}
