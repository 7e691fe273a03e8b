// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFlag indicates an unknown flag name or an unparsable flag value.
	ErrInvalidFlag = errors.New("config: invalid flag")

	// ErrInvalidConfig indicates a configuration file with out-of-range values.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

const (
	opLoad     = "Load"
	opValidate = "Validate"
	opApply    = "Apply"
)

func configErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
