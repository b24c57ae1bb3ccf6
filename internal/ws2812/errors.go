package ws2812

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument is returned for out of range input, and for operations
	// the device cannot perform at all in its current lifecycle stage, such as
	// an Update before Init.
	ErrInvalidArgument = errors.New("ws2812: invalid argument")

	// ErrInvalidData is returned when an initialized device has nothing to send.
	ErrInvalidData = errors.New("ws2812: invalid data")

	// ErrInvalidState is returned when a well formed request conflicts with the
	// power state, such as powering on twice or updating while off.
	ErrInvalidState = errors.New("ws2812: invalid state")
)
