// Package primary defines the primary ports (driving adapters) for the application.
package primary

import "context"

// GenerateService defines the primary port for generating koacrab files
// from a CREATE TABLE statement.
type GenerateService interface {
	// Generate parses req.Statement and writes the model, controller and
	// service files that do not exist yet.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// GenerateRequest contains parameters for a generation run.
type GenerateRequest struct {
	Statement string
	DryRun    bool // render and report only; touch nothing
}

// File statuses reported in GenerateResponse.
const (
	FileCreated = "created"
	FileSkipped = "skipped" // already present, left untouched
	FilePlanned = "planned" // dry run
)

// GenerateResponse contains the result of a generation run.
type GenerateResponse struct {
	TableName string
	Folder    string
	FileBase  string
	Fields    []string // filtered fields used by the service
	Files     []FileResult
}

// FileResult describes what happened to one target file.
type FileResult struct {
	Kind    string // model, controller or service
	Path    string
	Status  string
	Content string
}

// Created returns the number of files written.
func (r *GenerateResponse) Created() int {
	n := 0
	for _, f := range r.Files {
		if f.Status == FileCreated {
			n++
		}
	}
	return n
}
