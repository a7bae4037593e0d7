package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/golisp-lang/golisp/internal/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-eval-print loop",
	Long: `Start an interactive session: each line is tokenized, parsed, and
evaluated under one interpreter instance, with define persisting across
lines until EOF (Ctrl-D).`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(_ *cobra.Command, _ []string) error {
	interp := repl.New(func(s string) { fmt.Println(s) })
	return repl.Run(interp, os.Stdin, os.Stdout, os.Stderr, os.Stdout)
}
