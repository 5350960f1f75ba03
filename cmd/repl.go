package cmd

import (
	"github.com/jonaylor89/risp/repl"
	"github.com/spf13/cobra"
)

var replPrompt string

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Run an interactive repl",
	Long: `Run an interactive read-eval-print loop.  Each line of input is read as
one expression.  The repl exits on EOF or when (exit) is evaluated.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl(replPrompt)
	},
}

func runRepl(prompt string) error {
	return repl.RunRepl(prompt,
		repl.WithDebug(rootDebug),
		repl.WithConfig(envConfig()...))
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().StringVar(&replPrompt, "prompt", "risp > ",
		"The prompt displayed when reading input")
}
