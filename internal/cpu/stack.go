package cpu

import "errors"

// stackDepth is the maximum number of nested subroutine calls.
const stackDepth = 16

var (
	// ErrStackOverflow is returned when pushing beyond the maximum
	// call depth.
	ErrStackOverflow = errors.New("stack overflow")

	// ErrStackUnderflow is returned when returning with no call active.
	ErrStackUnderflow = errors.New("stack underflow")
)

// Stack is the fixed-depth return address stack. CHIP-8 defines no
// fault handling, overflow and underflow are fatal for the machine.
type Stack struct {
	addrs [stackDepth]uint16
	sp    int
}

// Push appends a return address.
func (s *Stack) Push(addr uint16) error {
	if s.sp >= stackDepth {
		return ErrStackOverflow
	}
	s.addrs[s.sp] = addr
	s.sp++
	return nil
}

// Pop removes and returns the most recently pushed address.
func (s *Stack) Pop() (uint16, error) {
	if s.sp == 0 {
		return 0, ErrStackUnderflow
	}
	s.sp--
	return s.addrs[s.sp], nil
}

// Depth returns the number of active calls.
func (s *Stack) Depth() int {
	return s.sp
}
