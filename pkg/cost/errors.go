package cost

import "errors"

// Sentinel errors raised at construction or assignment time. Numeric
// invalidity (NaN data, non-positive densities) is never reported
// through these; it propagates into the evaluated scalar instead.
var (
	// ErrShape reports mismatched array lengths or dimensions.
	ErrShape = errors.New("cost: shape mismatch")
	// ErrLoss reports an unrecognized loss tag.
	ErrLoss = errors.New("cost: unknown loss")
	// ErrSignature reports an empty or duplicated parameter name.
	ErrSignature = errors.New("cost: bad parameter signature")
)
