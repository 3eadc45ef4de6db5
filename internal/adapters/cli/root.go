// Package cli wires the palindrome command tree.
package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/baditaflorin/go_palindrome/internal/adapters/console"
	"github.com/baditaflorin/go_palindrome/internal/adapters/logger"
	"github.com/baditaflorin/go_palindrome/internal/adapters/normalizer"
	"github.com/baditaflorin/go_palindrome/internal/core/palindrome"
	"github.com/baditaflorin/go_palindrome/internal/ports"
)

// newLogger builds the diagnostics logger. Records go to stderr so stdout
// only ever carries the prompt and the verdict.
var newLogger = func(w io.Writer) (ports.Logger, error) {
	return logger.NewStdLogger(w)
}

var rootCmd = &cobra.Command{
	Use:   "palindrome",
	Short: "Check whether a sentence is a palindrome",
	Long: `Reads one sentence from standard input and prints "Palindrome" or
"Not a palindrome". Only letters and digits are compared, case-insensitively;
spaces, punctuation and symbols are ignored.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCheck,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runCheck(cmd *cobra.Command, _ []string) (err error) {
	log, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := log.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	checker, err := palindrome.NewChecker(log, normalizer.NewUnicodeNormalizer())
	if err != nil {
		return err
	}

	session := console.NewSession(cmd.InOrStdin(), cmd.OutOrStdout(), checker, log)
	if _, err := session.Run(cmd.Context()); err != nil {
		log.Error("Palindrome check failed", "error", err)
		return err
	}
	return nil
}
