// errors.go — sentinel errors for the hmm package.
//
// Error policy (matches matrix/errors.go and builder/errors.go):
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Sentinels are never wrapped with formatted strings at definition site.
//   • Setters validate and return these; they never panic on bad caller data.
package hmm

import "errors"

var (
	// ErrInvalidSize indicates N < 1 or M < 0 was passed to New.
	ErrInvalidSize = errors.New("hmm: N must be >= 1 and M must be >= 0")

	// ErrDimensionMismatch indicates a setter argument's length does not
	// match the HMM's declared N/M/T.
	ErrDimensionMismatch = errors.New("hmm: dimension mismatch")

	// ErrNotAProbability indicates an entry fell outside [0,1], or a row
	// did not sum to 1 within tolerance.
	ErrNotAProbability = errors.New("hmm: value is not a valid probability")

	// ErrVariantMismatch indicates a discrete setter was called on a
	// continuous HMM (M == 0) or vice versa.
	ErrVariantMismatch = errors.New("hmm: setter does not match discrete/continuous variant")

	// ErrLogZeroEmission indicates a continuous emission entry was
	// logspace.LogZero (or otherwise non-finite); every timepoint must
	// have at least one state with non-zero likelihood for a trellis
	// path to exist at all.
	ErrLogZeroEmission = errors.New("hmm: continuous emission entry must be finite")

	// ErrObservationOutOfRange indicates a discrete observation symbol
	// fell outside [0, M).
	ErrObservationOutOfRange = errors.New("hmm: observation symbol out of range")

	// ErrMissingData indicates HasAllData() is false: training was
	// attempted before init, transition, and emission/observation data
	// were all loaded.
	ErrMissingData = errors.New("hmm: not all required parameters are loaded")
)
