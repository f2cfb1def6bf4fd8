// Package ownable provides the single-owner access-control primitive:
// contracts store one owner address and guard restricted operations with an
// explicit authorization check against it.
package ownable

import (
	"fmt"

	"github.com/minahlabs/libminah-go/host"
)

const ownerKey = "ownable/owner"

// SetOwner records the initial owner. It fails if an owner is already set;
// use TransferOwner to rotate.
func SetOwner(e *host.Env, owner host.Address) error {
	if owner.IsZero() {
		return ErrZeroOwner
	}
	ok, err := e.HasKey(ownerKey)
	if err != nil {
		return err
	}
	if ok {
		return ErrAlreadySet
	}
	return e.PutValue(ownerKey, owner)
}

// Owner returns the current owner.
func Owner(e *host.Env) (host.Address, error) {
	var owner host.Address
	ok, err := e.GetValue(ownerKey, &owner)
	if err != nil {
		return host.ZeroAddress, err
	}
	if !ok {
		return host.ZeroAddress, ErrNotSet
	}
	return owner, nil
}

// RequireOwner demands that the current owner authorized the call.
func RequireOwner(e *host.Env) error {
	owner, err := Owner(e)
	if err != nil {
		return err
	}
	if err := e.RequireAuth(owner); err != nil {
		return fmt.Errorf("%w: %v", ErrNotOwner, err)
	}
	return nil
}

// TransferOwner rotates ownership to newOwner. Only the current owner may
// call it.
func TransferOwner(e *host.Env, newOwner host.Address) error {
	if newOwner.IsZero() {
		return ErrZeroOwner
	}
	if err := RequireOwner(e); err != nil {
		return err
	}
	return e.PutValue(ownerKey, newOwner)
}
