/*
main.go - calendar command entry point

PURPOSE:
  Runs the calendar command tree. All wiring happens in the cli package;
  this file only maps a failed command to a non-zero exit status.

ENVIRONMENT:
  CALENDAR_CONFIG         yaml config file
  CALENDAR_LOG_LEVEL      debug, info, warn, error
  CALENDAR_METRICS        print collected metrics after the command
  CALENDAR_CATALOG_LIMIT  labels shown by "calendar weeks"

SEE ALSO:
  - cli/root.go: composition root and flags
  - cli/commands.go: subcommands
*/
package main

import (
	"os"

	"github.com/warp/calendar-engine/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
