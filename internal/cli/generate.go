package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/example/koagen/internal/adapters/input"
	"github.com/example/koagen/internal/adapters/sqlite"
	"github.com/example/koagen/internal/config"
	"github.com/example/koagen/internal/logging"
	"github.com/example/koagen/internal/ports/primary"
	"github.com/example/koagen/internal/ports/secondary"
	"github.com/example/koagen/internal/wire"
)

const generateLong = `Read a MySQL CREATE TABLE statement and generate the koacrab files for it:
  - Model      (models/<tableCamel>.js)
  - Controller (controllers/<folder>/<fileCamel>.js)
  - Service    (services/<folder>/<fileCamel>.js)

The table name must look like <folder>_<file>, e.g. shop_goods. Existing
files are never overwritten.

The statement is read from --file, --sqlite, --editor, piped stdin, or an
interactive prompt, in that order of preference.

Examples:
  koagen generate --file shop_goods.sql
  mysqldump --no-data shop shop_goods | koagen generate
  koagen generate --sqlite dev.db --table shop_goods --dry-run
  koagen generate --editor`

// GenerateCmd returns the generate command.
func GenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate model, controller and service files from a CREATE TABLE statement",
		Long:    generateLong,
		Args:    cobra.NoArgs,
		RunE:    runGenerate,
	}
	addGenerateFlags(cmd)
	return cmd
}

func addGenerateFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("file", "", "Read the statement from a file ('-' for stdin)")
	f.Bool("editor", false, "Write the statement in an external editor")
	f.String("editor-cmd", "", "Editor command (default $VISUAL, $EDITOR, vi)")
	f.String("sqlite", "", "Read the statement from a SQLite database file")
	f.String("table", "", "Table to read with --sqlite")
	f.String("out", ".", "Output root directory")
	f.String("ext", ".js", "Extension of generated files")
	f.StringSlice("reserved", nil, "Columns left out of the service (default id,delete_time,update_time)")
	f.Bool("dry-run", false, "Preview without writing files")
	f.String("config", "", "Config file (default ./"+config.DefaultFileName+" if present)")
	f.String("log-level", "warn", "Log level: debug, info, warn, error")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(logging.Config{
		Component: "generate",
		Level:     cfg.LogLevel,
		Output:    cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	source, err := selectSource(cmd, cfg)
	if err != nil {
		return err
	}
	logger.Debug("reading statement", zap.String("source", source.Name()))

	ctx := cmd.Context()
	statement, err := source.ReadStatement(ctx)
	if err != nil {
		if errors.Is(err, input.ErrPromptAborted) {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
		return fmt.Errorf("failed to read statement from %s: %w", source.Name(), err)
	}

	svc, err := wire.GenerateService(cfg, logger)
	if err != nil {
		return err
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	resp, err := svc.Generate(ctx, primary.GenerateRequest{Statement: statement, DryRun: dryRun})
	if err != nil {
		return err
	}

	printResult(cmd.OutOrStdout(), resp, dryRun)
	return nil
}

// selectSource picks where the statement comes from.
func selectSource(cmd *cobra.Command, cfg *config.Config) (secondary.StatementSource, error) {
	flags := cmd.Flags()
	file, _ := flags.GetString("file")
	dbPath, _ := flags.GetString("sqlite")
	table, _ := flags.GetString("table")
	useEditor, _ := flags.GetBool("editor")

	chosen := 0
	for _, set := range []bool{file != "", dbPath != "", useEditor} {
		if set {
			chosen++
		}
	}
	if chosen > 1 {
		return nil, fmt.Errorf("--file, --sqlite and --editor are mutually exclusive")
	}
	if table != "" && dbPath == "" {
		return nil, fmt.Errorf("--table requires --sqlite")
	}

	switch {
	case dbPath != "":
		if table == "" {
			return nil, fmt.Errorf("--sqlite requires --table")
		}
		return sqlite.NewDDLSource(dbPath, table), nil
	case file == "-":
		return input.NewStreamSource("stdin", cmd.InOrStdin()), nil
	case file != "":
		return input.NewFileSource(file), nil
	case useEditor:
		return input.NewEditorSource(cfg.Editor), nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return input.NewPromptSource(f, cmd.OutOrStdout()), nil
	}
	return input.NewStreamSource("stdin", in), nil
}

func printResult(out io.Writer, resp *primary.GenerateResponse, dryRun bool) {
	fmt.Fprintf(out, "Table %s -> folder '%s', file '%s'\n", resp.TableName, resp.Folder, resp.FileBase)
	if len(resp.Fields) > 0 {
		fmt.Fprintf(out, "Service fields: %v\n", resp.Fields)
	}
	fmt.Fprintln(out)

	if dryRun {
		fmt.Fprintln(out, "(dry-run mode - no files written)")
		fmt.Fprintln(out)
		for _, f := range resp.Files {
			fmt.Fprintf(out, "--- %s ---\n", f.Path)
			fmt.Fprintln(out, f.Content)
		}
		return
	}

	for _, f := range resp.Files {
		switch f.Status {
		case primary.FileCreated:
			fmt.Fprintf(out, "%s Created %s\n", color.New(color.FgGreen).Sprint("✓"), f.Path)
		case primary.FileSkipped:
			fmt.Fprintf(out, "%s Skipped %s (already exists)\n", color.New(color.FgYellow).Sprint("-"), f.Path)
		}
	}

	fmt.Fprintln(out)
	if resp.Created() == 0 {
		fmt.Fprintln(out, "Nothing to do: all files already exist.")
		return
	}
	fmt.Fprintf(out, "Generated %d of %d files.\n", resp.Created(), len(resp.Files))
}
