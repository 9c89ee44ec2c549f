// Student Decision Support - University Program Recommendation Engine
// Copyright 2026 Ashan R. (ashanr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ashanr/student-decision-support

package recommend

import (
	"errors"
	"fmt"
)

// ErrIndexUnavailable indicates a similarity query was attempted before the
// index finished building. Recommendation requests do not fail on it: the
// engine falls back to unboosted base scores. Similarity-only operations
// surface it to the caller.
var ErrIndexUnavailable = errors.New("similarity index not built")

// ValidationError reports a malformed or missing required profile field.
// The request is rejected; values are never silently defaulted.
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid profile: field %q %s", e.Field, e.Reason)
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// FeatureError reports that a feature dimension could not be derived from
// its source record. It is never retried: the input is deterministic.
type FeatureError struct {
	Dimension string
	Reason    string
}

// Error implements the error interface.
func (e *FeatureError) Error() string {
	return fmt.Sprintf("feature %q: %s", e.Dimension, e.Reason)
}

// IsFeatureError reports whether err is (or wraps) a FeatureError.
func IsFeatureError(err error) bool {
	var fe *FeatureError
	return errors.As(err, &fe)
}
