package chip8

import "errors"

var (
	// ErrAddressOutOfBounds is returned when an access reaches past the end of memory.
	ErrAddressOutOfBounds = errors.New("address out of bounds")

	// ErrProgramTooLarge is returned when a program image does not fit into program space.
	ErrProgramTooLarge = errors.New("program too large")

	// ErrStackOverflow is returned when a call is made with a full call stack.
	ErrStackOverflow = errors.New("stack overflow")

	// ErrStackUnderflow is returned when a return is made with an empty call stack.
	ErrStackUnderflow = errors.New("stack underflow")
)
