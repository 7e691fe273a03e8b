// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
)

// ErrNilProblem indicates a nil *problem.Problem or a problem without a tableau.
var ErrNilProblem = errors.New("report: nil problem")

const (
	opWrite     = "Write"
	opWriteFile = "WriteFile"
)

func reportErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
