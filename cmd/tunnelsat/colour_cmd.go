package main

import (
	"context"
	"fmt"

	"github.com/arcrouting/tunnelsat/colour"
	"github.com/arcrouting/tunnelsat/colour/bruteforce"
	"github.com/arcrouting/tunnelsat/colour/satsolve"
	"github.com/arcrouting/tunnelsat/satfacade/dpll"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var colourCmd = &cobra.Command{
	Use:   "colour GRAPH.dot",
	Short: "Decide the k-colouring problem for GRAPH.dot",
	Args:  cobra.ExactArgs(1),
	RunE:  runColour,
}

func init() {
	rootCmd.AddCommand(colourCmd)
}

func runColour(cmd *cobra.Command, args []string) error {
	if !flagBrute && !flagReduce {
		return fmt.Errorf("tunnelsat: at least one of --brute/-B or --reduce/-R is required")
	}

	g, err := loadGraph(args[0])
	if err != nil {
		return err
	}

	k := resolveBound()
	entry := log.WithFields(logrus.Fields{"problem": "Colouring", "colours": k})

	if flagBrute {
		cg := colour.New(g)
		ok, err := bruteforce.Solve(cg, k, &bruteforce.Options{Ctx: context.Background()})
		if err != nil {
			return fmt.Errorf("tunnelsat: brute force: %w", err)
		}
		reportColouring(entry.WithField("method", "brute"), cg, ok)
		if flagEmitDOT && ok {
			if err := writeColourDOT(cg, flagOutputDir, flagOutput+"-brute"); err != nil {
				return err
			}
		}
	}

	if flagReduce {
		cg := colour.New(g)
		out, err := satsolve.Solve(cg, k, dpll.New(log))
		if err != nil {
			return fmt.Errorf("tunnelsat: SAT reduction: %w", err)
		}
		if flagDumpFormula && out.Ctx != nil {
			fmt.Printf("formula: %d variables\n", out.Ctx.NumVars())
		}
		if flagDumpModel && out.Coloured {
			dumpModel(out.Ctx, out.Model)
		}
		reportColouring(entry.WithField("method", "reduce"), cg, out.Coloured)
		if flagEmitDOT && out.Coloured {
			if err := writeColourDOT(cg, flagOutputDir, flagOutput+"-reduce"); err != nil {
				return err
			}
		}
	}

	return nil
}

func reportColouring(entry *logrus.Entry, cg *colour.Graph, ok bool) {
	if !ok {
		entry.WithField("result", "uncolourable").Info("tunnelsat: no colouring found")
		fmt.Println("no colouring found")
		return
	}
	entry.WithField("result", "coloured").Info("tunnelsat: colouring found")
	for n := 0; n < cg.NumNodes(); n++ {
		fmt.Printf("%s: %d\n", cg.NodeName(n), cg.Colour(n))
	}
}
