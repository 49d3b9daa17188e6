package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/urejgi/first-interpreter/repl"
)

// rootCmd represents the base command when called without any subcommands.
// By default it starts the interactive REPL.
var rootCmd = &cobra.Command{
	Use:   "first-interpreter",
	Short: "An interpreter for a small lisp",
	Long: `An interactive interpreter for a small, dynamically typed lisp with
first-class lambdas, lexical closures and a mark-and-sweep collected heap.`,
	Run: func(cmd *cobra.Command, args []string) {
		repl.RunRepl("> ")
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
