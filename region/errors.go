// SPDX-License-Identifier: MIT
// Package region: sentinel error set, wrapped with an operation tag via regionErrorf.

package region

import (
	"errors"
	"fmt"
)

var (
	// ErrNilTableau indicates a nil *tableau.Tableau argument.
	ErrNilTableau = errors.New("region: nil tableau")

	// ErrPointOutside is returned when the representative point is not strictly
	// inside the candidate interval.
	ErrPointOutside = errors.New("region: representative point outside interval")

	// ErrAlreadyFinalized is returned by GetExtremes once the endpoints have
	// been written back.
	ErrAlreadyFinalized = errors.New("region: endpoints already computed")

	// ErrEmptyDomain indicates contradictory parameter-space restrictions.
	ErrEmptyDomain = errors.New("region: empty parameter domain")

	// ErrUnboundedDomain indicates the linear restrictions leave x unbounded
	// on at least one side.
	ErrUnboundedDomain = errors.New("region: unbounded parameter domain")
)

const (
	opNew      = "New"
	opExtremes = "GetExtremes"
	opDomain   = "ParamSpace.Domain"
)

// regionErrorf wraps err with an operation tag, preserving it for errors.Is.
func regionErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
