package minah

import "errors"

var (
	// ErrAlreadyInvestor indicates the address is already registered.
	ErrAlreadyInvestor = errors.New("minah: investor already exists")

	// ErrNotInvestor indicates the address is not a registered investor.
	ErrNotInvestor = errors.New("minah: address is not an investor")

	// ErrFromNotEligible indicates the selling party is neither a registered
	// investor nor the contract owner.
	ErrFromNotEligible = errors.New("minah: from address is not an investor or the owner")

	// ErrToNotEligible indicates the buying party is neither a registered
	// investor nor the contract owner.
	ErrToNotEligible = errors.New("minah: to address is not an investor or the owner")

	// ErrNotInBuyingPhase indicates a primary-sale mint outside the buying
	// phase.
	ErrNotInBuyingPhase = errors.New("minah: investment is not in the buying phase")

	// ErrTransfersDisabled indicates a marketplace trade during the buying
	// phase.
	ErrTransfersDisabled = errors.New("minah: transfers are disabled during the buying phase")

	// ErrAlreadyStarted indicates the chronometer was started twice.
	ErrAlreadyStarted = errors.New("minah: chronometer already started")

	// ErrNotStarted indicates an operation that requires a running
	// chronometer.
	ErrNotStarted = errors.New("minah: chronometer not started")

	// ErrBelowMinimumMint indicates a mint smaller than the minimum batch.
	ErrBelowMinimumMint = errors.New("minah: minimum investment not met")

	// ErrSupplyExceeded indicates a mint beyond the total supply cap.
	ErrSupplyExceeded = errors.New("minah: maximum supply exceeded")

	// ErrInvestorCapExceeded indicates a mint that would push an investor
	// past the per-investor holding cap.
	ErrInvestorCapExceeded = errors.New("minah: maximum units per investor exceeded")

	// ErrInsufficientBalance indicates the paying party holds too little
	// stablecoin.
	ErrInsufficientBalance = errors.New("minah: insufficient stablecoin balance")

	// ErrInsufficientAllowance indicates the paying party approved too
	// little stablecoin to the contract.
	ErrInsufficientAllowance = errors.New("minah: insufficient stablecoin allowance")

	// ErrInsufficientNFTBalance indicates the selling party holds fewer
	// units than offered.
	ErrInsufficientNFTBalance = errors.New("minah: insufficient nft balance")

	// ErrSpenderNotApproved indicates the contract lacks approval-for-all
	// from the selling party.
	ErrSpenderNotApproved = errors.New("minah: contract not approved for all by seller")

	// ErrDistributionNotReady indicates no stage boundary has elapsed yet.
	ErrDistributionNotReady = errors.New("minah: distribution not ready yet")

	// ErrDistributionEnded indicates a distribution after the final stage.
	ErrDistributionEnded = errors.New("minah: distribution already ended")

	// ErrAmountOverflow indicates a payout or cost computation that does not
	// fit in int64.
	ErrAmountOverflow = errors.New("minah: amount overflows")

	// ErrAmountMismatch indicates the released total diverged from the
	// precomputed release amount. Defensive; should be unreachable.
	ErrAmountMismatch = errors.New("minah: distribution amount mismatch")

	// ErrInvalidLedgerTime indicates a ledger timestamp before the
	// chronometer's begin date.
	ErrInvalidLedgerTime = errors.New("minah: ledger time before begin date")

	// ErrNoTokenIDs indicates a marketplace trade with an empty token list.
	ErrNoTokenIDs = errors.New("minah: no token ids")

	// ErrStateNotSet indicates required contract state is missing.
	// Defensive; only reachable on a corrupted or uninitialized deployment.
	ErrStateNotSet = errors.New("minah: contract state not initialized")
)
