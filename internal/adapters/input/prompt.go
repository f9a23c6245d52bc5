package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/example/koagen/internal/ports/secondary"
)

const (
	promptFirst    = "sql> "
	promptContinue = "...> "
)

// ErrPromptAborted is returned when the user interrupts the prompt.
var ErrPromptAborted = errors.New("input aborted")

// PromptSource reads a multi-line statement interactively. Input ends at a
// line terminated by ";" or at EOF (Ctrl-D).
type PromptSource struct {
	stdin  io.ReadCloser
	stdout io.Writer
	banner string
}

// NewPromptSource creates a prompt on the given terminal streams. Nil
// streams fall back to the process terminal.
func NewPromptSource(stdin io.ReadCloser, stdout io.Writer) *PromptSource {
	return &PromptSource{
		stdin:  stdin,
		stdout: stdout,
		banner: "Paste the CREATE TABLE statement (end with ';' or Ctrl-D):",
	}
}

// Name describes the source.
func (s *PromptSource) Name() string {
	return "prompt"
}

// ReadStatement runs the prompt until the statement is complete.
func (s *PromptSource) ReadStatement(ctx context.Context) (string, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:                 promptFirst,
		Stdin:                  s.stdin,
		Stdout:                 s.stdout,
		InterruptPrompt:        "^C",
		DisableAutoSaveHistory: true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to initialize prompt: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintln(rl.Stdout(), s.banner)

	return collectStatement(ctx, func(continuing bool) (string, error) {
		if continuing {
			rl.SetPrompt(promptContinue)
		} else {
			rl.SetPrompt(promptFirst)
		}
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			return "", ErrPromptAborted
		}
		return line, err
	})
}

// collectStatement accumulates lines from next until one ends with ";"
// after trimming, or next returns io.EOF.
func collectStatement(ctx context.Context, next func(continuing bool) (string, error)) (string, error) {
	var buf strings.Builder
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		line, err := next(buf.Len() > 0)
		if errors.Is(err, io.EOF) {
			buf.WriteString(line)
			return buf.String(), nil
		}
		if err != nil {
			return "", err
		}

		if buf.Len() == 0 && strings.TrimSpace(line) == "" {
			continue
		}
		buf.WriteString(line)
		buf.WriteString("\n")
		if strings.HasSuffix(strings.TrimSpace(line), ";") {
			return buf.String(), nil
		}
	}
}

// Ensure PromptSource implements the interface
var _ secondary.StatementSource = (*PromptSource)(nil)
