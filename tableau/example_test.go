package tableau_test

import (
	"fmt"

	"github.com/katalvlaran/uplcp/ratfunc"
	"github.com/katalvlaran/uplcp/tableau"
)

// ExamplePrincipalPivot pivots the single row w - z = x - 5 onto z.
func ExamplePrincipalPivot() {
	t, _ := tableau.New(1)
	_ = t.Set(0, 0, ratfunc.One())
	_ = t.Set(0, 1, ratfunc.FromInt(-1))
	_ = t.Set(0, 2, ratfunc.FromPoly(ratfunc.NewPolyInt(-5, 1)))

	basis := tableau.InitialBasis(1)
	fmt.Print(t)
	_ = tableau.PrincipalPivot(t, 0, basis.Complement(0))
	basis[0] = basis.Complement(0)
	fmt.Print(t)
	fmt.Println(basis)
	// Output:
	// [1, -1, x - 5]
	// [-1, 1, -x + 5]
	// [z_1]
}
