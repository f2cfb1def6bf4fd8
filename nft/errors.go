package nft

import "errors"

var (
	// ErrTokenNotFound indicates the token id was never minted.
	ErrTokenNotFound = errors.New("nft: token not found")

	// ErrNotTokenOwner indicates the claimed owner does not hold the token.
	ErrNotTokenOwner = errors.New("nft: address does not own token")

	// ErrZeroAddress indicates the zero address was used as a party.
	ErrZeroAddress = errors.New("nft: zero address")

	// ErrZeroAmount indicates a mint of zero tokens.
	ErrZeroAmount = errors.New("nft: zero mint amount")
)
