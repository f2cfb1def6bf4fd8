package token

import "errors"

var (
	// ErrInsufficientBalance indicates the source balance cannot cover the
	// transfer.
	ErrInsufficientBalance = errors.New("token: insufficient balance")

	// ErrInsufficientAllowance indicates the spender's allowance cannot cover
	// the transfer.
	ErrInsufficientAllowance = errors.New("token: insufficient allowance")

	// ErrNegativeAmount indicates a negative token amount.
	ErrNegativeAmount = errors.New("token: negative amount")

	// ErrZeroAddress indicates the zero address was used as a party.
	ErrZeroAddress = errors.New("token: zero address")

	// ErrUnknownToken indicates no token contract is registered at the
	// address.
	ErrUnknownToken = errors.New("token: no token at address")
)
