// Package testing provides utilities for running tests on the target.
package testing

import (
	"os"
	"testing"

	_ "github.com/clktmr/ch32v/machine"
)

// TestMain should be used as TestMain for tests running on the target. The
// output goes to the SDI debug print channel and is read by the debug adapter,
// see the bin command of tools/wchgo. On the host it behaves like the default
// TestMain.
func TestMain(m *testing.M) {
	// The test runner decides on success by scanning the output, so always
	// be verbose.
	os.Args = append(os.Args, "-test.v")

	os.Exit(m.Run())
}
