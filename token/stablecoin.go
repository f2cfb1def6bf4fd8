package token

import (
	"fmt"

	"github.com/minahlabs/libminah-go/host"
)

// Stablecoin is a mock USDC-style fungible token contract backed by host
// storage. The deployer receives a premint; further supply can be minted by
// the admin only.
type Stablecoin struct {
	env      *host.Env
	decimals uint32
}

// Compile-time interface check.
var _ Token = (*Stablecoin)(nil)

const (
	keyAdmin = "sc/admin"

	balancePrefix   = "sc/bal/"
	allowancePrefix = "sc/alw/"
)

// DeployStablecoin initializes a stablecoin contract at env's address,
// minting premint base units to admin.
func DeployStablecoin(env *host.Env, admin host.Address, decimals uint32, premint int64) (*Stablecoin, error) {
	if premint < 0 {
		return nil, ErrNegativeAmount
	}
	if admin.IsZero() {
		return nil, ErrZeroAddress
	}
	s := &Stablecoin{env: env, decimals: decimals}
	err := env.Run("stablecoin_deploy", func() error {
		if err := env.PutValue(keyAdmin, admin); err != nil {
			return err
		}
		return s.setBalance(admin, premint)
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// OpenStablecoin attaches to an already-deployed stablecoin.
func OpenStablecoin(env *host.Env, decimals uint32) *Stablecoin {
	return &Stablecoin{env: env, decimals: decimals}
}

// Decimals returns the token's decimal places.
func (s *Stablecoin) Decimals() uint32 { return s.decimals }

// Balance returns the balance of addr, zero for unknown addresses.
func (s *Stablecoin) Balance(addr host.Address) (int64, error) {
	var bal int64
	if _, err := s.env.GetValue(balancePrefix+addr.Hex(), &bal); err != nil {
		return 0, err
	}
	return bal, nil
}

// Allowance returns spender's remaining allowance over owner's balance.
func (s *Stablecoin) Allowance(owner, spender host.Address) (int64, error) {
	var alw int64
	if _, err := s.env.GetValue(allowanceKey(owner, spender), &alw); err != nil {
		return 0, err
	}
	return alw, nil
}

// Mint creates amount new base units for to. Admin only.
func (s *Stablecoin) Mint(to host.Address, amount int64) error {
	return s.env.Run("stablecoin_mint", func() error {
		if amount < 0 {
			return ErrNegativeAmount
		}
		var admin host.Address
		ok, err := s.env.GetValue(keyAdmin, &admin)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("token: admin not set")
		}
		if err := s.env.RequireAuth(admin); err != nil {
			return err
		}
		return s.credit(to, amount)
	})
}

// Transfer moves amount from from to to. from must authorize.
func (s *Stablecoin) Transfer(from, to host.Address, amount int64) error {
	return s.env.Run("stablecoin_transfer", func() error {
		if err := s.env.RequireAuth(from); err != nil {
			return err
		}
		return s.move(from, to, amount)
	})
}

// Approve sets spender's allowance over owner's balance. owner must
// authorize.
func (s *Stablecoin) Approve(owner, spender host.Address, amount int64) error {
	return s.env.Run("stablecoin_approve", func() error {
		if amount < 0 {
			return ErrNegativeAmount
		}
		if err := s.env.RequireAuth(owner); err != nil {
			return err
		}
		return s.env.PutValue(allowanceKey(owner, spender), amount)
	})
}

// TransferFrom moves amount from from to to on spender's authority,
// consuming allowance. A zero amount succeeds without touching state.
func (s *Stablecoin) TransferFrom(spender, from, to host.Address, amount int64) error {
	return s.env.Run("stablecoin_transfer_from", func() error {
		if amount < 0 {
			return ErrNegativeAmount
		}
		if amount == 0 {
			return nil
		}
		alw, err := s.Allowance(from, spender)
		if err != nil {
			return err
		}
		if alw < amount {
			return fmt.Errorf("%w: allowance %d < %d", ErrInsufficientAllowance, alw, amount)
		}
		if err := s.env.PutValue(allowanceKey(from, spender), alw-amount); err != nil {
			return err
		}
		return s.move(from, to, amount)
	})
}

func (s *Stablecoin) move(from, to host.Address, amount int64) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	if amount == 0 {
		return nil
	}
	bal, err := s.Balance(from)
	if err != nil {
		return err
	}
	if bal < amount {
		return fmt.Errorf("%w: balance %d < %d", ErrInsufficientBalance, bal, amount)
	}
	if err := s.setBalance(from, bal-amount); err != nil {
		return err
	}
	return s.credit(to, amount)
}

func (s *Stablecoin) credit(to host.Address, amount int64) error {
	bal, err := s.Balance(to)
	if err != nil {
		return err
	}
	return s.setBalance(to, bal+amount)
}

func (s *Stablecoin) setBalance(addr host.Address, amount int64) error {
	return s.env.PutValue(balancePrefix+addr.Hex(), amount)
}

func allowanceKey(owner, spender host.Address) string {
	return allowancePrefix + owner.Hex() + "/" + spender.Hex()
}
