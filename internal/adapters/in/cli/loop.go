// Package cli runs the interactive agent loop: a line-oriented prompt that
// feeds staff phrasings to the command interpreter and, for free-text
// questions, to the assistant model.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"concierge/internal/core/domain/services"
	"concierge/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	exitWord  = "exit"
	askPrefix = "ask "
)

// Assistant answers free-text questions that fall outside the command
// grammar.
type Assistant interface {
	Ask(ctx context.Context, prompt string) (string, error)
}

// Loop reads staff commands line by line until the exit word. Each line is
// dispatched to the interpreter; lines prefixed with "ask " go to the
// assistant instead, when one is configured.
type Loop struct {
	interpreter *services.CommandInterpreter
	assistant   Assistant
	logger      *slog.Logger
}

// NewLoop creates an agent loop. The assistant is optional; with a nil
// assistant the "ask" escape reports that free-text questions are disabled.
func NewLoop(interpreter *services.CommandInterpreter, assistant Assistant, logger *slog.Logger) (*Loop, error) {
	if interpreter == nil {
		return nil, errs.NewValueIsRequiredError("interpreter")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	return &Loop{
		interpreter: interpreter,
		assistant:   assistant,
		logger:      logger.With("component", "cli"),
	}, nil
}

// Run processes lines from in until the exit word or EOF, writing responses
// to out. Action failures are reported and the loop continues; only a read
// failure on in ends the loop with an error.
func (l *Loop) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	l.printBanner(out)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, exitWord) {
			fmt.Fprintln(out, "Goodbye!")
			return nil
		}

		correlationID := uuid.NewString()
		l.logger.Debug("processing line", "correlation_id", correlationID)

		if question, ok := strings.CutPrefix(line, askPrefix); ok {
			l.handleQuestion(ctx, out, correlationID, question)
			continue
		}

		result, err := l.interpreter.Interpret(ctx, line)
		if err != nil {
			l.logger.Error("command failed", "correlation_id", correlationID, "error", err)
			fmt.Fprintf(out, "Something went wrong: %s\n", err)
			continue
		}

		fmt.Fprintln(out, result.Message)
	}

	return scanner.Err()
}

func (l *Loop) handleQuestion(ctx context.Context, out io.Writer, correlationID, question string) {
	if l.assistant == nil {
		fmt.Fprintln(out, "Free-text questions are disabled; no assistant is configured.")
		return
	}

	answer, err := l.assistant.Ask(ctx, question)
	if err != nil {
		l.logger.Error("assistant failed", "correlation_id", correlationID, "error", err)
		fmt.Fprintf(out, "The assistant is unavailable: %s\n", err)
		return
	}

	fmt.Fprintln(out, answer)
}

func (l *Loop) printBanner(out io.Writer) {
	fmt.Fprintln(out, "Hotel operations agent. Type a command, or 'exit' to quit.")
	fmt.Fprintln(out, "Examples:")
	for _, example := range services.ExamplePhrasings() {
		fmt.Fprintf(out, "  - %s\n", example)
	}
	fmt.Fprintln(out, "Prefix a free-text question with 'ask '.")
}
