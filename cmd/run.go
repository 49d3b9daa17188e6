package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/urejgi/first-interpreter/lisp"
	"github.com/urejgi/first-interpreter/parser"
	"github.com/urejgi/first-interpreter/repl"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run lisp code",
	Long:  `Run lisp code supplied via the command line or a file.`,
	Run: func(cmd *cobra.Command, args []string) {
		sources, err := runReadSources(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		gc := lisp.NewGC()
		scope := lisp.NewScope(gc)
		reader := parser.NewReader()
		lisp.LoadStdLibrary(gc, &scope, reader)

		var out io.Writer
		if runPrint {
			out = os.Stdout
		}
		for i := range sources {
			repl.EvalSource(gc, &scope, reader, out, sources[i])
		}
	},
}

func runReadSources(args []string) ([]string, error) {
	sources := make([]string, len(args))
	if runExpression {
		copy(sources, args)
		return sources, nil
	}
	for i, path := range args {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		sources[i] = string(b)
	}
	return sources, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Here flags for the run command are defined
	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
}
