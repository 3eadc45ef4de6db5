package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/baditaflorin/go_palindrome/internal/adapters/logger"
	"github.com/baditaflorin/go_palindrome/internal/ports"
)

func setupTestLogger() func() {
	original := newLogger
	newLogger = func(io.Writer) (ports.Logger, error) {
		return logger.NewNopLogger(), nil
	}
	return func() { newLogger = original }
}

func runRoot(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "palindrome", rootCmd.Use)
	assert.Contains(t, rootCmd.Long, "Not a palindrome")
}

func TestRootCmd_Palindrome(t *testing.T) {
	defer setupTestLogger()()

	stdout, _, err := runRoot(t, "A man, a plan, a canal: Panama\n")

	assert.NoError(t, err)
	assert.Equal(t, "Enter a sentence: Palindrome\n", stdout)
}

func TestRootCmd_NotPalindrome(t *testing.T) {
	defer setupTestLogger()()

	stdout, _, err := runRoot(t, "hello\n")

	assert.NoError(t, err)
	assert.Equal(t, "Enter a sentence: Not a palindrome\n", stdout)
}

func TestRootCmd_EmptyInput(t *testing.T) {
	defer setupTestLogger()()

	stdout, _, err := runRoot(t, "")

	assert.NoError(t, err)
	assert.Equal(t, "Enter a sentence: Palindrome\n", stdout)
}

func TestRootCmd_RejectsArguments(t *testing.T) {
	defer setupTestLogger()()

	_, _, err := runRoot(t, "", "level")

	assert.Error(t, err)
}

func TestRootCmd_DiagnosticsStayOffStdout(t *testing.T) {
	stdout, _, err := runRoot(t, "Level\n")

	assert.NoError(t, err)
	assert.Equal(t, "Enter a sentence: Palindrome\n", stdout)
}
