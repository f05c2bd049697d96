package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Argument errors
	ErrMsgInvalidArgument = "invalid argument"

	// Purchase errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgUpgradeNotFound   = "upgrade not found"

	// Rebirth errors
	ErrMsgNoGainAvailable     = "no prestige gain available"
	ErrMsgRebirthNotConfirmed = "rebirth not confirmed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors are local and non-fatal: a transaction that returns one leaves state untouched.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInvalidArgument = errors.New(ErrMsgInvalidArgument)

	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrUpgradeNotFound   = errors.New(ErrMsgUpgradeNotFound)

	ErrNoGainAvailable     = errors.New(ErrMsgNoGainAvailable)
	ErrRebirthNotConfirmed = errors.New(ErrMsgRebirthNotConfirmed)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
