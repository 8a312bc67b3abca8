package common

import (
	"runtime"

	"github.com/devlights/gomy/output"
)

// SH_Assert panics with msg when condition does not hold.
// With EnableDebug the stacks of all goroutines are dumped first.
func SH_Assert(condition bool, msg string) {
	if condition {
		return
	}
	if EnableDebug {
		RuntimeStack()
	}
	ShPrintf(FATAL, "assertion failed: %s\n", msg)
	panic(msg)
}

// RuntimeStack dumps the stacks of all goroutines to stdout
//   - https://pkg.go.dev/runtime#Stack
func RuntimeStack() {
	buf := make([]byte, 1024)
	for {
		n := runtime.Stack(buf, true)
		if n < len(buf) {
			buf = buf[:n]
			break
		}
		buf = make([]byte, 2*len(buf))
	}
	output.Stdoutl("=== stack-all   ", string(buf))
}
