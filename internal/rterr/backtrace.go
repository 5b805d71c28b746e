package rterr

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

// backtraceEnvVar is the environment toggle that gates backtrace collection.
// Capture is skipped entirely unless the variable is set to "1" or "full".
const backtraceEnvVar = "FUNCRT_BACKTRACE"

// backtraceMaxDepth caps the number of stack frames recorded per capture
const backtraceMaxDepth = 32

// Backtrace is an ordered textual capture of the call stack at the point a
// runtime API error was created. Two lines are recorded per frame, the
// function name and its file position, in the order the frames were called.
type Backtrace struct {
	lines []string
}

// backtraceEnabled reports whether the ambient toggle allows stack capture.
// The toggle is read at capture time, not at program start, so tests can
// flip it per scenario.
func backtraceEnabled() bool {
	switch os.Getenv(backtraceEnvVar) {
	case "1", "full":
		return true
	}
	return false
}

// CaptureBacktrace records the call stack of the caller, skipping the given
// number of additional frames. It returns nil when the FUNCRT_BACKTRACE
// toggle is disabled or when no frames could be collected.
func CaptureBacktrace(skip int) *Backtrace {
	if !backtraceEnabled() {
		return nil
	}

	pc := make([]uintptr, backtraceMaxDepth)
	// skip runtime.Callers and CaptureBacktrace itself
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pc[:n])
	lines := make([]string, 0, 2*n)
	for {
		frame, more := frames.Next()
		if frame.Function != "" {
			lines = append(lines, frame.Function)
			lines = append(lines, fmt.Sprintf("\t%s:%d", frame.File, frame.Line))
		}
		if !more {
			break
		}
	}

	if len(lines) == 0 {
		return nil
	}
	return &Backtrace{lines: lines}
}

// Lines returns the captured trace, one element per line, in call order
func (bt *Backtrace) Lines() []string {
	if bt == nil {
		return nil
	}
	return bt.lines
}

// String renders the captured trace as a newline separated block, handy as a
// value in structured logging data bags
func (bt *Backtrace) String() string {
	if bt == nil {
		return ""
	}
	return strings.Join(bt.lines, "\n")
}
