// Package cmd is the golisp CLI command tree, grounded on the teacher's
// cmd/dwscript/cmd package: one file per subcommand, a package-level
// rootCmd, global version variables set by build flags, and a persistent
// --verbose flag.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information; set by build flags (-ldflags), matching the
// teacher's cmd/dwscript/cmd/root.go.
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "golisp",
	Short: "A Lisp interpreter with first-class continuations",
	Long: `golisp is a Go implementation of a small Lisp dialect: integers,
booleans, symbols, cons-cells, closures, and native functions, evaluated by
a stepwise, defunctionalized evaluator over an arena-backed mark-and-sweep
heap. call/cc reifies the evaluator's pending computation as an ordinary,
re-invocable value.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
