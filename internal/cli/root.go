package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/advkit/internal/config"
	"github.com/roach88/advkit/internal/logger"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "json" | "text"
	DBPath   string // overrides ADVKIT_DB
	WorldDir string // overrides ADVKIT_WORLD

	// Config and Logger are filled from the environment on first use.
	// Tests may set them directly.
	Config *config.Config
	Logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the advkit CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "advkit",
		Short: "advkit - Minecraft advancement toolkit",
		Long: `Build, validate and deploy Minecraft advancements from definition files.

Definitions are YAML, JSON or CUE documents. Rendered advancements can be
saved into a world directory or registered with the local registry, where
criteria are granted and revoked per player.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.DBPath, "db", "", "path to the SQLite registry (default $ADVKIT_DB or advkit.db)")
	cmd.PersistentFlags().StringVar(&opts.WorldDir, "world", "", "world directory (default $ADVKIT_WORLD or world)")

	cmd.AddCommand(NewRenderCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewSaveCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))
	cmd.AddCommand(NewRegisterCommand(opts))
	cmd.AddCommand(NewUnregisterCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewGrantCommand(opts))
	cmd.AddCommand(NewRevokeCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))

	return cmd
}

// resolve loads the environment config, applies flag overrides and sets up
// logging to w.
func (o *RootOptions) resolve(w io.Writer) {
	if o.Config == nil {
		o.Config = config.Load()
	}
	if o.DBPath != "" {
		o.Config.DBPath = o.DBPath
	}
	if o.WorldDir != "" {
		o.Config.WorldDir = o.WorldDir
	}
	if o.Verbose {
		o.Config.LogLevel = slog.LevelDebug
	}
	if o.Logger == nil {
		o.Logger = logger.Setup(o.Config, w)
	}
}

// formatter returns the output formatter for cmd.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   o.Verbose,
	}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}
