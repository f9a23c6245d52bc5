// Package wire assembles koagen's services from configuration.
package wire

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/example/koagen/internal/adapters/filesystem"
	"github.com/example/koagen/internal/app"
	"github.com/example/koagen/internal/config"
	"github.com/example/koagen/internal/scaffold"
)

// GenerateService creates the generate service writing under cfg.OutDir.
func GenerateService(cfg *config.Config, logger *zap.Logger) (*app.GenerateServiceImpl, error) {
	fs, err := filesystem.NewFileSystemAdapter(cfg.OutDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize output directory: %w", err)
	}

	generator := scaffold.NewGenerator(
		scaffold.WithExt(cfg.Ext),
		scaffold.WithReservedFields(cfg.ReservedFields),
	)

	logger.Debug("output root resolved", zap.String("root", fs.Root()))
	return app.NewGenerateService(fs, generator, logger), nil
}
