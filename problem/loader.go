// SPDX-License-Identifier: MIT

package problem

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"os"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/uplcp/ratfunc"
	"github.com/katalvlaran/uplcp/region"
	"github.com/katalvlaran/uplcp/tableau"
)

// Type is the kind of instance a data file describes.
type Type string

const (
	LCP Type = "LCP"
	LP  Type = "LP"
	QP  Type = "QP"
)

// Problem is a loaded instance ready for partitioning.
type Problem struct {
	Type    Type
	Tableau *tableau.Tableau // [I | -M(x) | q(x)], never mutated by the solver
	Basis   tableau.Basis    // all w basic
	Space   region.ParamSpace
	Numeric bool // M (or A and Q) free of the parameter
	NumVar  int
	NumRow  int // LP/QP only
	NumCol  int // LP/QP only
}

// Option configures Load.
type Option func(*Options)

// Options stores the loader configuration.
type Options struct {
	logger *zap.Logger
}

// WithLogger receives format warnings. nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

func gatherOptions(opts ...Option) Options {
	o := Options{logger: zap.NewNop()}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// numRe matches the numeric fields of a data line.
var numRe = regexp.MustCompile(`[-+]?\d*\.?\d+`)

const missingTypeWarning = "Data file should start with a specification of the type of problem " +
	"you wish to solve. Valid values are 'LCP', 'LP', and 'QP'. Proceeding as if problem type is LCP."

// LoadFile opens path and loads it with Load.
func LoadFile(path string, opts ...Option) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, problemErrorf(opLoadFile, err)
	}
	defer f.Close()

	return Load(f, opts...)
}

// Load parses one instance from r.
//
// Behavior highlights:
//   - A first line other than LCP, LP or QP is logged as a warning and the
//     whole file is read as an LCP.
//   - Coefficients accumulate: repeated entries for the same cell add up.
//   - Restriction rows are created on first use; PARAM_SPACE_RHS fills their
//     right-hand sides in order.
//
// Errors:
//   - ErrMalformed (with the offending line number) for format violations.
//   - ErrMultiParam for a parameter index other than 0 or 1.
//   - I/O errors from r.
func Load(r io.Reader, opts ...Option) (*Problem, error) {
	o := gatherOptions(opts...)

	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, problemErrorf(opLoad, err)
	}

	first := 0
	for first < len(lines) && strings.TrimSpace(lines[first]) == "" {
		first++
	}
	if first == len(lines) {
		return nil, problemErrorf(opLoad, fmt.Errorf("empty file: %w", ErrMalformed))
	}

	ps := &parser{lines: lines, numParam: -1, numRow: -1, numCol: -1}
	var err error
	switch Type(strings.ToUpper(strings.TrimSpace(lines[first]))) {
	case LCP:
		ps.typ = LCP
		err = ps.parse(first + 1)
	case LP, QP:
		ps.typ = Type(strings.ToUpper(strings.TrimSpace(lines[first])))
		err = ps.parse(first + 1)
	default:
		o.logger.Warn(missingTypeWarning)
		ps.typ = LCP
		err = ps.parse(0)
	}
	if err != nil {
		return nil, problemErrorf(opLoad, err)
	}

	return ps.build()
}

// parser is the state of one Load call.
type parser struct {
	lines []string
	i     int
	typ   Type

	numVar, numParam, numRow, numCol int

	grid    [][]ratfunc.RatFunc
	space   region.ParamSpace
	numeric bool
}

// line returns the 1-based number of the current line.
func (ps *parser) line() int { return ps.i + 1 }

// parse walks the keywords from line start until END or the end of input.
func (ps *parser) parse(start int) error {
	for ps.i = start; ps.i < len(ps.lines); ps.i++ {
		kw := strings.ToUpper(strings.TrimSpace(ps.lines[ps.i]))
		if kw == "" {
			continue
		}
		sized, err := ps.size(kw)
		if err != nil {
			return err
		}
		if sized {
			continue
		}
		if err = ps.init(); err != nil {
			return err
		}
		if kw == "END" {
			return nil
		}
		if err = ps.section(kw); err != nil {
			return err
		}
	}

	return nil
}

// size consumes a size keyword and its value line.
func (ps *parser) size(kw string) (bool, error) {
	var dst *int
	switch {
	case ps.typ == LCP && (kw == "H" || kw == "NUM_VAR"):
		dst = &ps.numVar
	case kw == "NUM_PARAM" || (ps.typ == LCP && kw == "K"):
		dst = &ps.numParam
	case ps.typ != LCP && kw == "NUM_COL":
		dst = &ps.numCol
	case ps.typ != LCP && kw == "NUM_ROW":
		dst = &ps.numRow
	default:
		return false, nil
	}
	ps.i++
	if ps.i >= len(ps.lines) {
		return true, lineErrorf(ps.i, ErrMalformed, "%s: missing value", kw)
	}
	v, err := strconv.Atoi(strings.TrimSpace(ps.lines[ps.i]))
	if err != nil || v < 0 {
		return true, lineErrorf(ps.line(), ErrMalformed, "%s: want a non-negative integer, got %q", kw, ps.lines[ps.i])
	}
	*dst = v

	return true, nil
}

// init checks the sizes and allocates the tableau grid on the first data keyword.
func (ps *parser) init() error {
	if ps.grid != nil {
		return nil
	}
	if ps.typ == LCP {
		if ps.numVar <= 0 || ps.numParam <= 0 {
			return lineErrorf(ps.line(), ErrMalformed,
				"the number of variables ('h' or 'num_var') and parameters ('k' or 'num_param') must come first")
		}
	} else {
		if ps.numCol < 0 || ps.numRow < 0 || ps.numParam < 0 {
			return lineErrorf(ps.line(), ErrMalformed,
				"'num_col', 'num_row' and 'num_param' must come first")
		}
		ps.numVar = ps.numCol + ps.numRow
		if ps.numVar == 0 {
			return lineErrorf(ps.line(), ErrMalformed, "num_col + num_row must be positive")
		}
	}

	n := ps.numVar
	ps.grid = make([][]ratfunc.RatFunc, n)
	for i := range ps.grid {
		ps.grid[i] = make([]ratfunc.RatFunc, 2*n+1)
		ps.grid[i][i] = ratfunc.One()
	}
	ps.numeric = true

	return nil
}

// section dispatches one data section keyword.
func (ps *parser) section(kw string) error {
	n := ps.numVar
	switch {
	case ps.typ == LCP && kw == "M_DATA":
		return ps.data(4, func(f []string) error {
			i, j, err := ps.indices(f[:2], n, n)
			if err != nil {
				return err
			}
			t, param, err := ps.term(f[2], f[3])
			if err != nil {
				return err
			}
			ps.add(i, n+j, t.Neg())
			ps.numeric = ps.numeric && !param

			return nil
		})
	case ps.typ == LCP && kw == "Q_DATA":
		return ps.data(3, func(f []string) error {
			i, _, err := ps.indices(f[:1], n, 0)
			if err != nil {
				return err
			}
			t, _, err := ps.term(f[1], f[2])
			if err != nil {
				return err
			}
			ps.add(i, 2*n, t)

			return nil
		})
	case ps.typ != LCP && kw == "A_DATA":
		return ps.data(4, func(f []string) error {
			i, j, err := ps.indices(f[:2], ps.numRow, ps.numCol)
			if err != nil {
				return err
			}
			t, param, err := ps.term(f[2], f[3])
			if err != nil {
				return err
			}
			ps.add(i, n+ps.numRow+j, t)
			ps.add(ps.numRow+j, n+i, t.Neg())
			ps.numeric = ps.numeric && !param

			return nil
		})
	case ps.typ != LCP && kw == "B_DATA":
		return ps.data(3, func(f []string) error {
			i, _, err := ps.indices(f[:1], ps.numRow, 0)
			if err != nil {
				return err
			}
			t, _, err := ps.term(f[1], f[2])
			if err != nil {
				return err
			}
			ps.add(i, 2*n, t)

			return nil
		})
	case ps.typ != LCP && kw == "C_DATA":
		return ps.data(3, func(f []string) error {
			j, _, err := ps.indices(f[:1], ps.numCol, 0)
			if err != nil {
				return err
			}
			t, _, err := ps.term(f[1], f[2])
			if err != nil {
				return err
			}
			ps.add(ps.numRow+j, 2*n, t)

			return nil
		})
	case ps.typ != LCP && kw == "Q_DATA":
		return ps.data(4, func(f []string) error {
			i, j, err := ps.indices(f[:2], ps.numCol, ps.numCol)
			if err != nil {
				return err
			}
			t, param, err := ps.term(f[2], f[3])
			if err != nil {
				return err
			}
			ps.add(ps.numRow+i, n+ps.numRow+j, t.Neg())
			ps.numeric = ps.numeric && !param

			return nil
		})
	case kw == "PARAM_SPACE":
		return ps.data(3, func(f []string) error {
			k, err := strconv.Atoi(f[0])
			if err != nil || k < 1 {
				return lineErrorf(ps.line(), ErrMalformed, "restriction row %q", f[0])
			}
			t, _, err := ps.term(f[1], f[2])
			if err != nil {
				return err
			}
			for len(ps.space) < k {
				ps.space = append(ps.space, region.Constraint{RHS: new(big.Rat)})
			}
			ps.space[k-1].LHS = ps.space[k-1].LHS.Add(t.Num())

			return nil
		})
	case kw == "PARAM_SPACE_RHS":
		return ps.rhsValues()
	default:
		return lineErrorf(ps.line(), ErrMalformed, "unrecognized symbol %q", strings.TrimSpace(ps.lines[ps.i]))
	}
}

// data feeds each following data line (one starting with a digit) to fn.
func (ps *parser) data(want int, fn func(fields []string) error) error {
	for ps.i+1 < len(ps.lines) && isDataLine(ps.lines[ps.i+1]) {
		ps.i++
		f := numRe.FindAllString(ps.lines[ps.i], -1)
		if len(f) < want {
			return lineErrorf(ps.line(), ErrMalformed, "want %d comma delimited values, got %d", want, len(f))
		}
		if err := fn(f); err != nil {
			return err
		}
	}

	return nil
}

// rhsValues adds one value per line to the restriction right-hand sides, in order.
func (ps *parser) rhsValues() error {
	for j := 0; ps.i+1 < len(ps.lines) && isValueLine(ps.lines[ps.i+1]); j++ {
		ps.i++
		v, ok := new(big.Rat).SetString(strings.TrimSpace(ps.lines[ps.i]))
		if !ok {
			return lineErrorf(ps.line(), ErrMalformed, "value %q", strings.TrimSpace(ps.lines[ps.i]))
		}
		if j >= len(ps.space) {
			return lineErrorf(ps.line(), ErrMalformed, "right-hand side %d without a restriction row", j+1)
		}
		ps.space[j].RHS = new(big.Rat).Add(ps.space[j].RHS, v)
	}

	return nil
}

// indices parses one or two 1-based indices and returns them 0-based.
// A zero bound means the index is absent.
func (ps *parser) indices(f []string, maxI, maxJ int) (int, int, error) {
	bounds := [2]int{maxI, maxJ}
	var out [2]int
	for k, s := range f {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 || v > bounds[k] {
			return 0, 0, lineErrorf(ps.line(), ErrMalformed, "index %q outside [1, %d]", s, bounds[k])
		}
		out[k] = v - 1
	}

	return out[0], out[1], nil
}

// term builds coef·x^param and reports whether it depends on x.
func (ps *parser) term(param, coef string) (ratfunc.RatFunc, bool, error) {
	p, err := strconv.Atoi(param)
	if err != nil || p < 0 {
		return ratfunc.RatFunc{}, false, lineErrorf(ps.line(), ErrMalformed, "parameter index %q", param)
	}
	if p > 1 {
		return ratfunc.RatFunc{}, false, lineErrorf(ps.line(), ErrMultiParam, "parameter index %d", p)
	}
	c, ok := new(big.Rat).SetString(coef)
	if !ok {
		return ratfunc.RatFunc{}, false, lineErrorf(ps.line(), ErrMalformed, "coefficient %q", coef)
	}

	return ratfunc.FromPoly(ratfunc.Monomial(c, p)), p == 1, nil
}

func (ps *parser) add(i, j int, t ratfunc.RatFunc) {
	ps.grid[i][j] = ps.grid[i][j].Add(t)
}

// build assembles the Problem once parsing is done.
func (ps *parser) build() (*Problem, error) {
	if ps.grid == nil {
		ps.i = len(ps.lines) - 1
		if err := ps.init(); err != nil {
			return nil, problemErrorf(opLoad, err)
		}
	}
	t, err := tableau.FromRows(ps.grid)
	if err != nil {
		return nil, problemErrorf(opLoad, err)
	}
	p := &Problem{
		Type:    ps.typ,
		Tableau: t,
		Basis:   tableau.InitialBasis(ps.numVar),
		Space:   ps.space,
		Numeric: ps.numeric,
		NumVar:  ps.numVar,
	}
	if ps.typ != LCP {
		p.NumRow, p.NumCol = ps.numRow, ps.numCol
	}

	return p, nil
}

func isDataLine(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && isDigit(s[0])
}

func isValueLine(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if isDigit(s[0]) || s[0] == '.' {
		return true
	}

	return s[0] == '-' && len(s) > 1 && (isDigit(s[1]) || s[1] == '.')
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
