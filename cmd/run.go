package cmd

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jonaylor89/risp/lisp"
	"github.com/jonaylor89/risp/parser"
	"github.com/spf13/cobra"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run lisp code",
	Long: `Run lisp code provided supplied via the command line or a file.

Files are evaluated one line at a time, each line holding one expression.
Blank lines are skipped.  Evaluation stops at the first error or when (exit)
is evaluated.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exprs, err := runReadExpressions(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		env := lisp.NewEnv(nil)
		config := append([]lisp.Config{lisp.WithReader(parser.NewReader())}, envConfig()...)
		err = lisp.InitializeUserEnv(env, config...)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		err = runEval(env, cmd.OutOrStdout(), exprs)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			if stack := lisp.ErrorStack(err); rootDebug && stack != nil {
				stack.DebugPrint(os.Stderr)
			}
			os.Exit(1)
		}
	},
}

// runEval evaluates exprs in order, printing values to w when runPrint is set.
// Evaluation of (exit) ends the run successfully.
func runEval(env *lisp.LEnv, w io.Writer, exprs []string) error {
	for _, expr := range exprs {
		v, err := env.EvalString(expr)
		if errors.Is(err, lisp.ErrExit) {
			return nil
		}
		if err != nil {
			return err
		}
		if runPrint {
			fmt.Fprintln(w, v)
		}
	}
	return nil
}

func runReadExpressions(args []string) ([]string, error) {
	if runExpression {
		exprs := make([]string, len(args))
		copy(exprs, args)
		return exprs, nil
	}
	var exprs []string
	for _, path := range args {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		lines, err := readLines(bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		exprs = append(exprs, lines...)
	}
	return exprs, nil
}

// readLines returns the non-blank lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Here flags for the run command are defined
	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
}
