package cmd

import (
	"fmt"
	"os"

	"github.com/jonaylor89/risp/lisp"
	"github.com/spf13/cobra"
)

var (
	rootMaxStackHeight int
	rootDebug          bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "risp",
	Short: "A minimal lisp interpreter",
	Long: `risp evaluates a small lisp with numbers, booleans, symbols, lists,
the special forms if, def, fn and exit, and the builtins + - = > >= < <=.

Without a subcommand risp starts an interactive repl.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl(replPrompt)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main(). It only needs to happen once
// to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// envConfig returns the lisp configuration selected by persistent flags.
func envConfig() []lisp.Config {
	return []lisp.Config{
		lisp.WithMaximumStackHeight(rootMaxStackHeight),
	}
}

func init() {
	rootCmd.PersistentFlags().IntVar(&rootMaxStackHeight, "max-stack-height", lisp.DefaultMaxStackHeight,
		"Maximum depth of nested function calls (0 for no limit)")
	rootCmd.PersistentFlags().BoolVar(&rootDebug, "debug", false,
		"Print a stack trace when evaluation fails")
}
