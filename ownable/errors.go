package ownable

import "errors"

var (
	// ErrNotSet indicates no owner has been recorded for the contract.
	ErrNotSet = errors.New("ownable: owner not set")

	// ErrAlreadySet indicates the owner was already initialized.
	ErrAlreadySet = errors.New("ownable: owner already set")

	// ErrNotOwner indicates the caller is not the authorized owner.
	ErrNotOwner = errors.New("ownable: caller is not the owner")

	// ErrZeroOwner indicates the zero address was given as owner.
	ErrZeroOwner = errors.New("ownable: owner must not be the zero address")
)
