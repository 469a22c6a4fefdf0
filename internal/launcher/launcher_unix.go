//go:build !windows

package launcher

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/atomicstack/quickrun/internal/logging/events"
)

// Exec replaces the current process with the shell running command. It
// only returns on failure.
func Exec(name, command string) error {
	events.Launcher.Handoff(name, command)
	return unix.Exec(Shell, Argv(command), os.Environ())
}
