package trustlines

import (
	"errors"
)

// validation errors, the request itself is malformed
var (
	ErrBadAccountID   = errors.New("bad account identity, want 32 nonzero bytes")
	ErrSelfPair       = errors.New("trust line to self is not allowed")
	ErrBadAmount      = errors.New("amount must be positive")
	ErrBadLimit       = errors.New("limit must be positive")
	ErrBadQuality     = errors.New("quality out of range (0, 1000000]")
	ErrBadHopCount    = errors.New("hop count out of range [1, 6]")
	ErrDuplicateHop   = errors.New("duplicate participant in ripple path")
	ErrAmountOverflow = errors.New("amount arithmetic overflow")
	ErrAmountTooSmall = errors.New("forwarded amount decays to zero")
)

// state and authorization errors
var (
	ErrTrustLineNotFound  = errors.New("trust line not found")
	ErrTrustLineExists    = errors.New("trust line already exists")
	ErrInsufficientCredit = errors.New("credit limit exceeded")
	ErrRipplingDisabled   = errors.New("rippling disabled on intermediate trust line")
	ErrTrustLineFrozen    = errors.New("trust line is frozen")
	ErrNotAdministrator   = errors.New("caller is not the administrator")
	ErrMissingCosigner    = errors.New("operation requires approval of both parties")
	ErrSettleExceedsDebt  = errors.New("settle amount exceeds outstanding obligation")
	ErrUnknownAsset       = errors.New("unknown asset")
)

// IsValidationError return true if the request was rejected as malformed
// before touching any state
func IsValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrBadAccountID):
	case errors.Is(err, ErrSelfPair):
	case errors.Is(err, ErrBadAmount):
	case errors.Is(err, ErrBadLimit):
	case errors.Is(err, ErrBadQuality):
	case errors.Is(err, ErrBadHopCount):
	case errors.Is(err, ErrDuplicateHop):
	case errors.Is(err, ErrAmountOverflow):
	case errors.Is(err, ErrAmountTooSmall):
	case errors.Is(err, ErrUnknownAsset):
	default:
		return false
	}
	return true
}

// IsAuthorizationError return true if the request failed a signer check
func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrNotAdministrator) || errors.Is(err, ErrMissingCosigner)
}

// IsNotFoundError return true if the addressed trust line does not exist
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrTrustLineNotFound)
}
