package jigsaw

import "fmt"

// Sink receives pieces as a Cutter produces them, in row-major order.
// Returning an error aborts the run.
type Sink interface {
	Receive(p Piece) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(p Piece) error

// Receive calls f.
func (f SinkFunc) Receive(p Piece) error {
	return f(p)
}

// Slots is a fixed-length Sink: each piece is stored at its Index.
type Slots []Piece

// Receive stores p at s[p.Index].
func (s Slots) Receive(p Piece) error {
	if p.Index < 0 || p.Index >= len(s) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrSlotRange, p.Index, len(s))
	}
	s[p.Index] = p
	return nil
}
