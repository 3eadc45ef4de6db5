// Package console implements the interactive prompt around the palindrome checker.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/baditaflorin/go_palindrome/internal/core/domain"
	"github.com/baditaflorin/go_palindrome/internal/ports"
)

// Prompt is written before reading the sentence.
const Prompt = "Enter a sentence: "

// Session reads one sentence and prints its verdict.
type Session struct {
	in      *bufio.Reader
	out     io.Writer
	checker ports.PalindromeChecker
	logger  ports.Logger
}

// NewSession creates a session reading from in and writing to out.
func NewSession(in io.Reader, out io.Writer, checker ports.PalindromeChecker, logger ports.Logger) *Session {
	return &Session{
		in:      bufio.NewReader(in),
		out:     out,
		checker: checker,
		logger:  logger,
	}
}

// Run prompts, reads a single line, and writes exactly one verdict line.
// End of input before any data is treated as an empty sentence.
func (s *Session) Run(ctx context.Context) (domain.Result, error) {
	if _, err := io.WriteString(s.out, Prompt); err != nil {
		return domain.Result{}, fmt.Errorf("write prompt: %w", err)
	}

	line, err := s.readLine()
	if err != nil {
		return domain.Result{}, err
	}

	result := s.checker.Check(ctx, line)
	if _, err := fmt.Fprintln(s.out, result.Verdict()); err != nil {
		return result, fmt.Errorf("write verdict: %w", err)
	}

	s.logger.Debug("Palindrome check finished",
		"palindrome", result.Palindrome,
		"normalized", result.Normalized,
	)
	return result, nil
}

func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			s.logger.Warn("No input available, checking an empty sentence")
		}
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
