package main

import (
	"fmt"

	"github.com/arcrouting/tunnelsat/satfacade"
)

// dumpModel prints every variable ctx minted and its truth value under
// model, one per line, for the CLI's --dump-model flag.
func dumpModel(ctx *satfacade.Context, model satfacade.Model) {
	for i := 0; i < ctx.NumVars(); i++ {
		name := ctx.VarName(i)
		fmt.Printf("%s = %v\n", name, model.Value(ctx.Var(name)))
	}
}
