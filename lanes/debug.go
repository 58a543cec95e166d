package lanes

import (
	"fmt"
	"sync/atomic"
)

// debugFlag holds the runtime debug-assertion state. Its initial value
// comes from the lanesdebug build tag or the LANES_DEBUG environment
// variable.
var debugFlag atomic.Bool

func init() {
	debugFlag.Store(debugBuild || envBool("LANES_DEBUG"))
}

// DebugAssertions reports whether precondition checks are enabled.
func DebugAssertions() bool {
	return debugFlag.Load()
}

// SetDebugAssertions turns precondition checks on or off and returns the
// previous state. Release code normally leaves them off: checks cost a
// comparison per call and exist to catch caller misuse, not to handle
// runtime conditions.
func SetDebugAssertions(on bool) bool {
	prev := debugFlag.Swap(on)
	if prev != on {
		Logger().Info("lanes: debug assertions", "enabled", on)
	}
	return prev
}

// AssertionError is the panic value of a failed debug assertion.
type AssertionError struct {
	// Op names the operation whose precondition failed, e.g. "proj.Perspective".
	Op  string
	Msg string
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

// Assert panics with an *AssertionError when debug assertions are enabled
// and ok is false. With assertions disabled it does nothing; callers that
// need work to compute ok should check DebugAssertions first.
func Assert(ok bool, op, msg string) {
	if ok || !debugFlag.Load() {
		return
	}
	err := &AssertionError{Op: op, Msg: msg}
	Logger().Error("lanes: assertion failed", "op", op, "msg", msg)
	panic(err)
}
