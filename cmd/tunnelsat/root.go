package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Flags shared by the solve and colour subcommands, per spec.md §6.
var (
	flagBound       int
	flagBrute       bool
	flagReduce      bool
	flagDumpModel   bool
	flagDumpFormula bool
	flagOutput      string
	flagEmitDOT     bool
	flagOutputDir   string
	flagVerbose     bool
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "tunnelsat",
	Short: "Decide tunnel-network and graph-colouring reachability by brute force or SAT reduction",
	Long: `tunnelsat loads a DOT-like graph description and answers one of two
structurally analogous reachability questions:

  solve   Tunnel:     is there a simple path of length <= L from the
                       "square"-shaped node to the "invtriangle"-shaped node
                       along which the nodes' stack actions carry [4] back
                       to [4]?
  colour  Colouring:  can the graph be properly coloured with k colours?

Both subcommands accept --brute (-B) and/or --reduce (-R) to select the
decision procedure; at least one must be given.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagVerbose {
			log.SetLevel(logrus.DebugLevel)
		}
		flagOutput = viper.GetString("output")
		flagOutputDir = viper.GetString("dot-dir")
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	var pf *pflag.FlagSet = rootCmd.PersistentFlags()
	pf.IntVarP(&flagBound, "bound", "c", 0, "bound L (Tunnel) or colour count k (Colouring)")
	pf.BoolVarP(&flagBrute, "brute", "B", false, "solve via brute-force search")
	pf.BoolVarP(&flagReduce, "reduce", "R", false, "solve via SAT reduction")
	pf.BoolVarP(&flagDumpModel, "dump-model", "M", false, "print the satisfying model, if any")
	pf.BoolVarP(&flagDumpFormula, "dump-formula", "F", false, "print the encoded formula's variable count")
	pf.StringVarP(&flagOutput, "output", "o", "result", "base name for emitted artifacts")
	pf.BoolVarP(&flagEmitDOT, "dot", "f", false, "emit a DOT file under sol/ visualising the result")
	pf.StringVar(&flagOutputDir, "dot-dir", "sol", "directory DOT output is written to")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	_ = viper.BindPFlag("bound", pf.Lookup("bound"))
	_ = viper.BindPFlag("output", pf.Lookup("output"))
	_ = viper.BindPFlag("dot-dir", pf.Lookup("dot-dir"))
}

// initConfig wires the layered-config idiom common across the retrieved
// corpus: flags override environment, which overrides a tunnelsat.yaml
// file in the working directory, which overrides the built-in defaults
// below.
func initConfig() {
	viper.SetDefault("bound", 10)
	viper.SetDefault("output", "result")
	viper.SetDefault("dot-dir", "sol")

	viper.SetConfigName("tunnelsat")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("tunnelsat")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			fmt.Fprintln(os.Stderr, "tunnelsat: error reading config file:", err)
		}
	}
}

// resolveBound returns --bound if explicitly set, else viper's layered
// value (env var or config file), else its default.
func resolveBound() int {
	if flagBound > 0 {
		return flagBound
	}
	return viper.GetInt("bound")
}
