package logspace

import "errors"

// ErrNaN indicates a NaN value was produced where a finite log-probability
// (or LogZero) was expected. Validated inputs should make this impossible;
// callers that detect it abort the current operation rather than silently
// propagate the NaN, per the module's no-silent-correction error policy.
var ErrNaN = errors.New("logspace: NaN encountered")

// Check returns ErrNaN if x is NaN, else nil. Solvers call this after each
// LnSum accumulation that folds in caller-supplied weights, so a NaN is
// caught at the point it first appears rather than propagating silently
// through the rest of a trellis solve.
func Check(x float64) error {
	if x != x { // NaN is the only float that is not equal to itself
		return ErrNaN
	}

	return nil
}
