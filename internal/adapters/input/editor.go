package input

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/example/koagen/internal/ports/secondary"
)

const editorTemplate = "-- Paste the CREATE TABLE statement below, save and quit.\n"

// EditorSource opens an external editor on a temporary .sql file and reads
// it back once the editor exits.
type EditorSource struct {
	command string
	stdin   *os.File
	stdout  *os.File
	stderr  *os.File
}

// NewEditorSource creates an editor source. An empty command falls back to
// $VISUAL, then $EDITOR, then vi.
func NewEditorSource(command string) *EditorSource {
	return &EditorSource{
		command: command,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
}

// Name describes the source.
func (s *EditorSource) Name() string {
	return "editor:" + s.resolveCommand()
}

// ReadStatement runs the editor and returns what was saved, without the
// instruction header.
func (s *EditorSource) ReadStatement(ctx context.Context) (string, error) {
	args := strings.Fields(s.resolveCommand())
	if len(args) == 0 {
		return "", fmt.Errorf("no editor configured")
	}

	f, err := os.CreateTemp("", "koagen-*.sql")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := f.Name()
	defer os.Remove(tmpPath)

	if _, err := f.WriteString(editorTemplate); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	cmd := exec.CommandContext(ctx, args[0], append(args[1:], tmpPath)...)
	cmd.Stdin = s.stdin
	cmd.Stdout = s.stdout
	cmd.Stderr = s.stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("editor %s failed: %w", args[0], err)
	}

	data, err := os.ReadFile(tmpPath)
	if err != nil {
		return "", fmt.Errorf("failed to read edited file: %w", err)
	}
	return strings.TrimPrefix(string(data), editorTemplate), nil
}

func (s *EditorSource) resolveCommand() string {
	if s.command != "" {
		return s.command
	}
	if v := os.Getenv("VISUAL"); v != "" {
		return v
	}
	if v := os.Getenv("EDITOR"); v != "" {
		return v
	}
	return "vi"
}

// Ensure EditorSource implements the interface
var _ secondary.StatementSource = (*EditorSource)(nil)
