// Package launcher hands the terminal over to the selected command.
package launcher

import (
	"fmt"
	"io"
)

// Shell interprets every catalog command.
const Shell = "/bin/sh"

// Argv builds the argument vector for running command under Shell.
func Argv(command string) []string {
	return []string{Shell, "-c", command}
}

// Announce echoes the command line and retitles the terminal to the
// item name, so the screen left behind after the handoff names what is
// running.
func Announce(w io.Writer, name, command string) {
	fmt.Fprintf(w, "%s\n\033]2;%s\a", command, name)
}
