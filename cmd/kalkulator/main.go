// Command kalkulator evaluates arithmetic expressions.
//
// With arguments, each argument is evaluated and printed on its own line.
// With no arguments, it starts an interactive calculator in the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	calculator "github.com/programowanie-obiektowe-cpp-classes/projekt-2-michalwysocki17"
)

var (
	resultVerb string
	echoRPN    bool
)

var rootCmd = &cobra.Command{
	Use:   "kalkulator [expression...]",
	Short: "Evaluate arithmetic expressions",
	Long: `Kalkulator evaluates infix arithmetic expressions with the operators
+ - * / % ^, parentheses, and the functions sin, cos, tan and sqrt.

Each argument is one expression. With no arguments, kalkulator starts an
interactive calculator.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return runUI()
		}
		failed := false
		for _, arg := range args {
			if !evalOne(cmd, arg) {
				failed = true
			}
		}
		if failed {
			return fmt.Errorf("some expressions failed")
		}
		return nil
	},
}

var errColor = color.New(color.FgRed)

// evalOne evaluates a single expression and reports whether it succeeded.
// Results go to stdout, errors to stderr in red.
func evalOne(cmd *cobra.Command, src string) bool {
	e, err := calculator.Parse(src)
	if err == nil {
		if echoRPN {
			fmt.Fprintf(cmd.OutOrStdout(), "%v : ", e)
		}
		var r float64
		if r, err = e.Eval(); err == nil {
			fmt.Fprintf(cmd.OutOrStdout(), resultVerb+"\n", r)
			return true
		}
	}
	errColor.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", src, err)
	return false
}

func main() {
	rootCmd.Flags().StringVar(&resultVerb, "fmt", "%g", "result formatting verb")
	rootCmd.Flags().BoolVar(&echoRPN, "echo", false, "print the postfix program before each result")
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
