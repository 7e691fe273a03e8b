package region_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/uplcp/ratfunc"
	"github.com/katalvlaran/uplcp/region"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restriction(rhs int64, lhs ...int64) region.Constraint {
	return region.Constraint{LHS: ratfunc.NewPolyInt(lhs...), RHS: big.NewRat(rhs, 1)}
}

// TestParamSpace_Domain derives the outer interval from linear restrictions.
func TestParamSpace_Domain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		space  region.ParamSpace
		lo, hi string
		err    error
	}{
		{
			name:  "unit bounds",
			space: region.ParamSpace{restriction(0, 0, -1), restriction(10, 0, 1)},
			lo:    "0",
			hi:    "10",
		},
		{
			name:  "scaled and shifted",
			space: region.ParamSpace{restriction(3, 1, -2), restriction(7, 1, 4)},
			lo:    "-1",
			hi:    "3/2",
		},
		{
			name:  "tightest wins, nonlinear ignored",
			space: region.ParamSpace{restriction(0, 0, -1), restriction(10, 0, 1), restriction(8, 0, 1), restriction(1, 0, 0, 1)},
			lo:    "0",
			hi:    "8",
		},
		{
			name:  "missing upper bound",
			space: region.ParamSpace{restriction(0, 0, -1)},
			err:   region.ErrUnboundedDomain,
		},
		{
			name:  "crossed bounds",
			space: region.ParamSpace{restriction(-5, 0, -1), restriction(1, 0, 1)},
			err:   region.ErrEmptyDomain,
		},
		{
			name:  "violated constant restriction",
			space: region.ParamSpace{restriction(0, 0, -1), restriction(10, 0, 1), restriction(1, 2)},
			err:   region.ErrEmptyDomain,
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			lo, hi, err := tc.space.Domain()
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.lo, lo.RatString())
			assert.Equal(t, tc.hi, hi.RatString())
		})
	}
}

// TestParamSpace_Interval returns the domain as exact reals.
func TestParamSpace_Interval(t *testing.T) {
	t.Parallel()

	space := region.ParamSpace{restriction(0, 0, -1), restriction(10, 0, 1)}
	iv, err := space.Interval()
	require.NoError(t, err)
	assert.Equal(t, "0", iv[0].String())
	assert.Equal(t, "10", iv[1].String())

	assert.Equal(t, "-x <= 0", space[0].String())
	assert.Equal(t, "x - 10", space[1].Ineq().String())
}
