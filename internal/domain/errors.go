package domain

import "errors"

// Typed error kinds surfaced by the planner core. Callers match with
// errors.Is; lower layers wrap these with fmt.Errorf("...: %w", ...).
var (
	// ErrInsufficientHistory - not enough price points to estimate drift/vol.
	ErrInsufficientHistory = errors.New("insufficient price history")

	// ErrNonPositivePrice - a price <= 0 appeared in the input series.
	ErrNonPositivePrice = errors.New("non-positive price in history")

	// ErrInvalidParameters - bad threshold bounds, H <= 0, or non-positive
	// window/iteration counts.
	ErrInvalidParameters = errors.New("invalid plan parameters")

	// ErrSymbolNotFound - symbol is not tracked.
	ErrSymbolNotFound = errors.New("symbol not found")

	// ErrInvalidTransition - illegal plan or rung status change.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrConcurrentModification - lost the supersession race; safe to retry.
	ErrConcurrentModification = errors.New("concurrent plan modification")

	// ErrDataUnavailable - the market data provider returned nothing usable.
	ErrDataUnavailable = errors.New("market data unavailable")
)
