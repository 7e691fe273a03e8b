// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"math"
	"math/big"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/uplcp/problem"
	"github.com/katalvlaran/uplcp/ratfunc"
	"github.com/katalvlaran/uplcp/region"
)

// ---------- Fixed text ----------

const (
	rule = "**************************************************************************************************"

	formLCP = "\tw - M(x)z = q(x)\n\tw'z = 0\n\tw,z >= 0\n"
	formLP  = "\tmin \tc(x)'y\n\ts.t.\tA(x)y <= b(x)\n\t    \ty >= 0\n"
	formQP  = "\tmin \tc(x)'y + (1/2)y'Q(x)y\n\ts.t.\tA(x)y <= b(x)\n\t    \ty >= 0\n"

	restrictionHeader = "subject to the additional restriction that 'x' must satisfy:"

	noteLCP = "Note: The region descriptions above do not include the 'additional restrictions' " +
		"listed at the top of this document, although these restrictions do, of course, apply to all " +
		"regions. Additionally, all omitted variables should be assumed to be zero."
	noteVars = "Note 1: Above, 'y' variables represent the original variables, whereas 's' variables are " +
		"slack variables on the inequality constraints, 'v' variables are duals for the non-negativity " +
		"restrictions on the 'y' variables, and 'u' variables are duals for the inequality constraints. " +
		"Additionally, all omitted variables should be assumed to be zero."
	noteRestrictions = "Note 2: The region descriptions above do not include the 'additional restrictions' " +
		"listed at the top of this document, although these restrictions do, of course, apply to all regions."
)

// Option configures Write.
type Option func(*Options)

// Options stores the report configuration.
type Options struct {
	runID   string
	elapsed time.Duration
}

// WithRunID prints id as the first line of the report.
func WithRunID(id string) Option {
	return func(o *Options) { o.runID = id }
}

// WithElapsed sets the solve time quoted in the header.
func WithElapsed(d time.Duration) Option {
	return func(o *Options) { o.elapsed = d }
}

// WriteFile creates path and writes the report into it.
func WriteFile(path string, p *problem.Problem, regions []*region.Region, opts ...Option) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, reportErrorf(opWriteFile, err)
	}
	n, err := Write(f, p, regions, opts...)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = reportErrorf(opWriteFile, cerr)
	}

	return n, err
}

// Write renders the problem and its non-degenerate regions to w and returns
// the number of regions written. Degenerate regions are skipped; the rest
// are sorted by left endpoint.
func Write(w io.Writer, p *problem.Problem, regions []*region.Region, opts ...Option) (int, error) {
	if p == nil || p.Tableau == nil {
		return 0, reportErrorf(opWrite, ErrNilProblem)
	}
	o := Options{}
	for _, fn := range opts {
		fn(&o)
	}

	var b strings.Builder
	if o.runID != "" {
		b.WriteString("Run ID: " + o.runID + "\n\n")
	}
	if p.Type == problem.LCP {
		writeLCPHeader(&b, p)
	} else {
		writeQPHeader(&b, p)
	}

	b.WriteString("\n\n\n" + rule + "\n\n")
	fmt.Fprintf(&b, "The solution was computed in %s seconds and consists of the following regions.\n\n", seconds(o.elapsed))
	b.WriteString(rule + "\n\n\n")

	pad := 0
	if p.Type != problem.LCP {
		pad = 1
	}
	sorted := nonDegenerate(regions)
	for k, g := range sorted {
		writeRegion(&b, p, k+1, g, pad)
	}

	if p.Type == problem.LCP {
		b.WriteString("\n\n\n\n" + noteLCP + "\n")
	} else {
		b.WriteString("\n\n\n\n" + noteVars + "\n")
		b.WriteString("\n\n" + noteRestrictions + "\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return 0, reportErrorf(opWrite, err)
	}

	return len(sorted), nil
}

func writeLCPHeader(b *strings.Builder, p *problem.Problem) {
	n := p.NumVar
	b.WriteString("The problem entered was an instance of spLCP having the form\n\n")
	b.WriteString(formLCP + "\n")

	b.WriteString("with M(x) =\n\n")
	writeMatrix(b, block(p, 0, n, n, 2*n, true), 0)
	b.WriteString("\nand q(x) =\n\n")
	writeMatrix(b, block(p, 0, n, 2*n, 2*n+1, false), 0)
	writeRestrictions(b, p.Space, 0)
}

func writeQPHeader(b *strings.Builder, p *problem.Problem) {
	n, rows := p.NumVar, p.NumRow
	fmt.Fprintf(b, "The problem entered was an instance of sp%s having the form\n\n", p.Type)
	if p.Type == problem.QP {
		b.WriteString(formQP + "\n")
	} else {
		b.WriteString(formLP + "\n")
	}

	b.WriteString("with c(x) =\n\n")
	writeMatrix(b, block(p, rows, n, 2*n, 2*n+1, false), 1)
	if p.Type == problem.QP {
		b.WriteString("\nand Q(x) =\n\n")
		writeMatrix(b, block(p, rows, n, n+rows, 2*n, true), 1)
	}
	b.WriteString("\nand A(x) =\n\n")
	writeMatrix(b, block(p, 0, rows, n+rows, 2*n, false), 1)
	b.WriteString("\nand b(x) =\n\n")
	writeMatrix(b, block(p, 0, rows, 2*n, 2*n+1, false), 1)
	writeRestrictions(b, p.Space, 1)
}

// block returns the formatted entries of rows [r0,r1) and columns [c0,c1),
// negated when neg is set.
func block(p *problem.Problem, r0, r1, c0, c1 int, neg bool) [][]string {
	out := make([][]string, 0, r1-r0)
	for i := r0; i < r1; i++ {
		row := p.Tableau.Row(i)
		cells := make([]string, 0, c1-c0)
		for _, v := range row[c0:c1] {
			if neg {
				v = v.Neg()
			}
			cells = append(cells, v.String())
		}
		out = append(out, cells)
	}

	return out
}

// writeMatrix prints each row as "\t[ a  b ]" with cells left-aligned to the widest one plus pad.
func writeMatrix(b *strings.Builder, rows [][]string, pad int) {
	width := 0
	for _, row := range rows {
		for _, c := range row {
			width = max(width, len(c))
		}
	}
	width += pad
	for _, row := range rows {
		cells := make([]string, len(row))
		for j, c := range row {
			cells[j] = ljust(c, width)
		}
		b.WriteString("\t[ " + strings.Join(cells, "  ") + " ]\n")
	}
}

func writeRestrictions(b *strings.Builder, space region.ParamSpace, pad int) {
	b.WriteString("\n" + restrictionHeader + "\n\n")
	width := 0
	for _, c := range space {
		width = max(width, len(c.LHS.String()), len(ratString(c.RHS)))
	}
	width += pad
	for _, c := range space {
		b.WriteString("\t" + ljust(c.LHS.String(), width) + " <= " + ljust(ratString(c.RHS), width) + "\n")
	}
}

func writeRegion(b *strings.Builder, p *problem.Problem, k int, g *region.Region, pad int) {
	fmt.Fprintf(b, "\n\nRegion %d:\n\n", k)
	rhs := g.RHS()
	basis := g.Basis()
	width := 0
	for _, f := range rhs {
		width = max(width, len(f.String()))
	}
	width += pad
	for i, f := range rhs {
		b.WriteString("\t" + varName(p, i, basis[i] < p.NumVar) + " = " + ljust(f.String(), width) + " >= 0 \n")
	}
	ep := g.EndPoints()
	fmt.Fprintf(b, "\n\tValid over:\t%.15g <= %s <= %.15g\n", ep[0].Float64(), ratfunc.DefaultVar, ep[1].Float64())
}

// varName names the basic variable of row i; w reports whether it is the
// first member of the row's complementary pair.
func varName(p *problem.Problem, i int, w bool) string {
	if p.Type == problem.LCP {
		if w {
			return "w_" + strconv.Itoa(i+1)
		}
		return "z_" + strconv.Itoa(i+1)
	}
	switch {
	case i < p.NumRow && w:
		return "s_" + strconv.Itoa(i+1)
	case i < p.NumRow:
		return "u_" + strconv.Itoa(i+1)
	case w:
		return "v_" + strconv.Itoa(i+1-p.NumRow)
	default:
		return "y_" + strconv.Itoa(i+1-p.NumRow)
	}
}

func nonDegenerate(regions []*region.Region) []*region.Region {
	out := make([]*region.Region, 0, len(regions))
	for _, g := range regions {
		if g != nil && !g.Degenerate() {
			out = append(out, g)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EndPoints()[0].Cmp(out[j].EndPoints()[0]) < 0
	})

	return out
}

// seconds rounds d to hundredths of a second without trailing zeros.
func seconds(d time.Duration) string {
	return strconv.FormatFloat(math.Round(d.Seconds()*100)/100, 'f', -1, 64)
}

func ratString(r *big.Rat) string {
	if r == nil {
		return "0"
	}

	return r.RatString()
}

func ljust(s string, width int) string {
	if len(s) >= width {
		return s
	}

	return s + strings.Repeat(" ", width-len(s))
}
