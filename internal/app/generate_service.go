package app

import (
	"context"
	"fmt"
	"path"

	"go.uber.org/zap"

	"github.com/example/koagen/internal/ports/primary"
	"github.com/example/koagen/internal/ports/secondary"
	"github.com/example/koagen/internal/scaffold"
)

// FilesystemError reports a failed directory or file operation. Files
// written before the failure are left in place.
type FilesystemError struct {
	Op   string // mkdir, stat or write
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}

// GenerateServiceImpl implements the GenerateService interface.
type GenerateServiceImpl struct {
	fs        secondary.FileSystem
	generator *scaffold.Generator
	logger    *zap.Logger
}

// NewGenerateService creates a new GenerateService with injected dependencies.
func NewGenerateService(fs secondary.FileSystem, generator *scaffold.Generator, logger *zap.Logger) *GenerateServiceImpl {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GenerateServiceImpl{
		fs:        fs,
		generator: generator,
		logger:    logger,
	}
}

// Generate parses the statement, renders all files, then writes the ones
// that do not exist yet. Input errors surface before any directory is made.
func (s *GenerateServiceImpl) Generate(ctx context.Context, req primary.GenerateRequest) (*primary.GenerateResponse, error) {
	spec, err := scaffold.ParseStatement(req.Statement)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("parsed table statement",
		zap.String("table", spec.TableName),
		zap.String("folder", spec.Parts.Folder),
		zap.String("file", spec.File.Camel),
		zap.Strings("tokens", spec.Fields))

	result, err := s.generator.Generate(spec)
	if err != nil {
		return nil, fmt.Errorf("failed to render files: %w", err)
	}

	resp := &primary.GenerateResponse{
		TableName: spec.TableName,
		Folder:    spec.Parts.Folder,
		FileBase:  spec.Parts.FileBase,
		Fields:    s.generator.ServiceFields(spec),
	}

	if req.DryRun {
		for _, f := range result.Files {
			resp.Files = append(resp.Files, fileResult(f, primary.FilePlanned))
		}
		return resp, nil
	}

	for _, dir := range parentDirs(result.Files) {
		s.logger.Debug("creating directory", zap.String("path", dir))
		if err := s.fs.MakeDirectories(ctx, dir); err != nil {
			return nil, &FilesystemError{Op: "mkdir", Path: dir, Err: err}
		}
	}

	for _, f := range result.Files {
		status, err := s.writeIfAbsent(ctx, f)
		if err != nil {
			return nil, err
		}
		resp.Files = append(resp.Files, fileResult(f, status))
	}

	s.logger.Info("generation finished",
		zap.String("table", spec.TableName),
		zap.Int("created", resp.Created()))
	return resp, nil
}

// writeIfAbsent writes f unless something already exists at its path.
func (s *GenerateServiceImpl) writeIfAbsent(ctx context.Context, f scaffold.GeneratedFile) (string, error) {
	exists, err := s.fs.Exists(ctx, f.Path)
	if err != nil {
		return "", &FilesystemError{Op: "stat", Path: f.Path, Err: err}
	}
	if exists {
		s.logger.Debug("file exists, skipping", zap.String("path", f.Path))
		return primary.FileSkipped, nil
	}

	if err := s.fs.WriteFile(ctx, f.Path, f.Content); err != nil {
		return "", &FilesystemError{Op: "write", Path: f.Path, Err: err}
	}
	s.logger.Debug("wrote file", zap.String("path", f.Path), zap.Int("bytes", len(f.Content)))
	return primary.FileCreated, nil
}

// parentDirs returns the distinct parent directories of files, in order.
func parentDirs(files []scaffold.GeneratedFile) []string {
	seen := make(map[string]bool)
	var dirs []string
	for _, f := range files {
		dir := path.Dir(f.Path)
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

func fileResult(f scaffold.GeneratedFile, status string) primary.FileResult {
	return primary.FileResult{
		Kind:    f.Kind,
		Path:    f.Path,
		Status:  status,
		Content: f.Content,
	}
}

// Ensure GenerateServiceImpl implements the interface
var _ primary.GenerateService = (*GenerateServiceImpl)(nil)
