//go:build !unix

package bin

import "os"

func processGroupKill(p *os.Process) error {
	return p.Kill()
}
