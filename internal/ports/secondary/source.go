package secondary

import "context"

// StatementSource yields the raw CREATE TABLE text to generate from.
type StatementSource interface {
	// ReadStatement blocks until the statement is available.
	ReadStatement(ctx context.Context) (string, error)

	// Name describes the source for logs and messages, e.g. "prompt" or a file path.
	Name() string
}
