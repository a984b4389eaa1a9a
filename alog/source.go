package alog

import "runtime"

// runtimeFrames resolves the first frame behind a record's program counter.
func runtimeFrames(pc uintptr) runtime.Frame {
	frames := runtime.CallersFrames([]uintptr{pc})
	frame, _ := frames.Next()
	return frame
}
