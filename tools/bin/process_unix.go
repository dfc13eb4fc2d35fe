//go:build unix

package bin

import (
	"os"
	"syscall"
)

// The pty makes the command a session leader, so all its children are in
// its process group.
func processGroupKill(p *os.Process) error {
	return syscall.Kill(-p.Pid, syscall.SIGINT)
}
