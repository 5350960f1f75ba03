package lisp

import (
	"fmt"
	"io"
)

// DefaultMaxStackHeight is the stack height limit given to root environments.
const DefaultMaxStackHeight = 10000

// CallStack is a function call stack.
type CallStack struct {
	Frames []CallFrame
	// MaxHeight is the maximum number of frames the stack may hold.  A value
	// of zero means the height is only bounded by the host.
	MaxHeight int
}

// CallFrame is one frame in the CallStack
type CallFrame struct {
	Name  string
	NArgs int
}

// Copy creates a copy of the current stack so that it can be attach to a
// runtime error.
func (s *CallStack) Copy() *CallStack {
	frames := make([]CallFrame, len(s.Frames))
	copy(frames, s.Frames)
	return &CallStack{Frames: frames, MaxHeight: s.MaxHeight}
}

// Height returns the number of frames on the stack.
func (s *CallStack) Height() int {
	if s == nil {
		return 0
	}
	return len(s.Frames)
}

// Top returns the CallFrame at the top of the stack or nil if none exists.
func (s *CallStack) Top() *CallFrame {
	if s == nil || len(s.Frames) == 0 {
		return nil
	}
	return &s.Frames[len(s.Frames)-1]
}

// Push pushes a new stack frame onto s.  Push returns an error and leaves s
// unmodified if the new frame would exceed s.MaxHeight.
func (s *CallStack) Push(name string, nargs int) error {
	if s.MaxHeight > 0 && len(s.Frames) >= s.MaxHeight {
		return Errorf("maximum stack height exceeded")
	}
	s.Frames = append(s.Frames, CallFrame{Name: name, NArgs: nargs})
	return nil
}

// Pop removes the top CallFrame from the stack and returns it.  Pop panics if
// the stack is empty.
func (s *CallStack) Pop() CallFrame {
	if len(s.Frames) < 1 {
		panic("pop called on an empty stack")
	}
	f := s.Frames[len(s.Frames)-1]
	s.Frames[len(s.Frames)-1] = CallFrame{}
	s.Frames = s.Frames[:len(s.Frames)-1]
	return f
}

// DebugPrint prints s
func (s *CallStack) DebugPrint(w io.Writer) (int, error) {
	n, err := fmt.Fprintf(w, "Stack Trace [%d frames -- entrypoint last]:\n", len(s.Frames))
	if err != nil {
		return n, err
	}
	indent := "  "
	for i := len(s.Frames) - 1; i >= 0; i-- {
		f := s.Frames[i]
		_n, err := fmt.Fprintf(w, "%sheight %d: %s (%d args)\n", indent, i, f.Name, f.NArgs)
		n += _n
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
