package dpll_test

import (
	"testing"

	"github.com/arcrouting/tunnelsat/satfacade"
	"github.com/arcrouting/tunnelsat/satfacade/dpll"
	"github.com/stretchr/testify/require"
)

func TestSolveSimpleSatisfiable(t *testing.T) {
	ctx := satfacade.NewContext()
	a := ctx.Var("a")
	b := ctx.Var("b")
	f := satfacade.And(satfacade.Or(a, b), satfacade.Not(a))

	res, model := dpll.New(nil).Solve(ctx, f)
	require.Equal(t, satfacade.Satisfiable, res)
	require.False(t, model.Value(a))
	require.True(t, model.Value(b))
}

func TestSolveUnsatisfiable(t *testing.T) {
	ctx := satfacade.NewContext()
	a := ctx.Var("a")
	f := satfacade.And(a, satfacade.Not(a))

	res, _ := dpll.New(nil).Solve(ctx, f)
	require.Equal(t, satfacade.Unsatisfiable, res)
}

func TestSolveExactlyOne(t *testing.T) {
	ctx := satfacade.NewContext()
	vars := []satfacade.Formula{ctx.Var("x0"), ctx.Var("x1"), ctx.Var("x2")}
	f := satfacade.ExactlyOne(vars...)

	res, model := dpll.New(nil).Solve(ctx, f)
	require.Equal(t, satfacade.Satisfiable, res)

	count := 0
	for _, v := range vars {
		if model.Value(v) {
			count++
		}
	}
	require.Equal(t, 1, count)
}

func TestSolveIff(t *testing.T) {
	ctx := satfacade.NewContext()
	a := ctx.Var("a")
	b := ctx.Var("b")
	f := satfacade.And(satfacade.Iff(a, b), a)

	res, model := dpll.New(nil).Solve(ctx, f)
	require.Equal(t, satfacade.Satisfiable, res)
	require.True(t, model.Value(a))
	require.True(t, model.Value(b))
}

func TestSolveImpliesChain(t *testing.T) {
	ctx := satfacade.NewContext()
	a := ctx.Var("a")
	b := ctx.Var("b")
	c := ctx.Var("c")
	f := satfacade.And(satfacade.Implies(a, b), satfacade.Implies(b, c), a)

	res, model := dpll.New(nil).Solve(ctx, f)
	require.Equal(t, satfacade.Satisfiable, res)
	require.True(t, model.Value(b))
	require.True(t, model.Value(c))
}
