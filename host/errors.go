package host

import "errors"

var (
	// ErrNotAuthorized indicates the required address did not authorize the call.
	ErrNotAuthorized = errors.New("host: address did not authorize call")

	// ErrInvalidAddress indicates an address could not be parsed.
	ErrInvalidAddress = errors.New("host: invalid address")

	// ErrNoFrame indicates a journal commit or discard without an open frame.
	ErrNoFrame = errors.New("host: no open journal frame")

	// ErrNilParam indicates a required parameter was nil.
	ErrNilParam = errors.New("host: nil parameter")
)
