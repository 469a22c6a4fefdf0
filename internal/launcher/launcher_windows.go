//go:build windows

package launcher

import (
	"errors"
	"os"
	"os/exec"

	"github.com/atomicstack/quickrun/internal/logging/events"
)

// Exec runs command through cmd.exe and exits with its status. Windows
// has no execve, so the launcher stays resident until the child
// finishes. It only returns on failure to start.
func Exec(name, command string) error {
	events.Launcher.Handoff(name, command)
	cmd := exec.Command("cmd", "/C", command)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	if err == nil {
		os.Exit(0)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.ExitCode())
	}
	return err
}
