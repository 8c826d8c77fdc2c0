package turtle

import "errors"

var (
	// ErrDetached is returned by every operation on a Turtle that has no
	// canvas, or whose canvas was detached by Close.
	ErrDetached = errors.New("turtle: not attached to a canvas")

	// ErrBusy is returned when a motion is requested while another motion
	// of the same Turtle is still animating.
	ErrBusy = errors.New("turtle: animation in progress")
)
