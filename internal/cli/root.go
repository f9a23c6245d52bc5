// Package cli contains the cobra commands of the koagen binary.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/koagen/internal/version"
)

// RootCmd returns the koagen root command. Running it without a subcommand
// behaves like "koagen generate".
func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "koagen",
		Short:   "koagen - koacrab CRUD scaffolding from CREATE TABLE statements",
		Version: version.String(),
		Long: `koagen turns a MySQL CREATE TABLE statement into the model, controller and
service files of a koacrab application.`,
		Args:          cobra.NoArgs,
		RunE:          runGenerate,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	addGenerateFlags(rootCmd)

	rootCmd.AddCommand(GenerateCmd())
	return rootCmd
}
