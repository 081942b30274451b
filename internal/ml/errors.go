// Package ml provides the trained classifier and attribution engine consumed
// by the prediction pipeline. Both are black boxes behind interfaces with a
// fixed five-feature input contract.
package ml

import "errors"

var (
	// ErrModelArtifact indicates the model artifact could not be loaded
	ErrModelArtifact = errors.New("invalid model artifact")

	// ErrFeatureDimension indicates a feature vector of the wrong length
	ErrFeatureDimension = errors.New("feature vector dimension mismatch")

	// ErrExplainFailed indicates attribution computation failed
	ErrExplainFailed = errors.New("attribution computation failed")
)
