package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/golisp-lang/golisp/internal/repl"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Lisp program from a file or inline expression",
	Long: `Evaluate every top-level form in a file (or in the expression given
via -e) in order under one interpreter instance, and print the value of the
last form.

Examples:
  golisp run program.lisp
  golisp run -e "(+ 1 2)"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from a file")
}

func runScript(_ *cobra.Command, args []string) error {
	var src, filename string

	switch {
	case evalExpr != "":
		src, filename = evalExpr, "<eval>"
	case len(args) == 1:
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		src = string(content)
	default:
		return fmt.Errorf("either provide a file path or use -e for inline code")
	}

	interp := repl.New(func(s string) { fmt.Println(s) })

	result, err := repl.RunFile(interp, filename, src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	fmt.Println(result)
	return nil
}
