package ut

import (
	"fmt"
	"runtime"
	"sync"
)

// DebugInfo captures assertion context.
type DebugInfo struct {
	Expr string
	File string
	Line int
}

// AssertionError is the panic value raised by a failed assertion.
type AssertionError struct {
	DebugInfo
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("assertion failed: %s (%s:%d)", e.Expr, e.File, e.Line)
}

var (
	lastMu sync.Mutex
	last   DebugInfo
)

// LastAssertion returns the most recent assertion failure from any goroutine.
func LastAssertion() DebugInfo {
	lastMu.Lock()
	defer lastMu.Unlock()
	return last
}

// Assert panics with an *AssertionError when cond is false.
// Contract violations are not recoverable conditions; callers that want to
// observe them (tests, harnesses) recover the panic.
func Assert(cond bool, format string, args ...any) {
	if cond {
		return
	}
	AssertionFailed(fmt.Sprintf(format, args...), 2)
}

// AssertionFailed records a failed assertion and panics.
func AssertionFailed(expr string, skip int) {
	info := DebugInfo{Expr: expr}
	if _, file, line, ok := runtime.Caller(skip); ok {
		info.File = file
		info.Line = line
	}
	lastMu.Lock()
	last = info
	lastMu.Unlock()
	panic(&AssertionError{DebugInfo: info})
}

// DbgReset clears debug state.
func DbgReset() {
	lastMu.Lock()
	last = DebugInfo{}
	lastMu.Unlock()
}
