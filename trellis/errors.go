package trellis

import "errors"

// ErrEmptySequence indicates the HMM has zero timepoints: no observations
// (discrete) or no rows in TimeEmissLog (continuous). There is nothing to
// unroll into a trellis.
var ErrEmptySequence = errors.New("trellis: HMM has zero timepoints")
