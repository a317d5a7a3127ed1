package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/roach88/advkit/internal/host"
)

// FileResult is the JSON payload of save and delete.
type FileResult struct {
	ID   string `json:"id"`
	Path string `json:"path"`
}

// NewSaveCommand creates the save command.
func NewSaveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "save <file>",
		Short: "Write the advancement into the world directory",
		Long: `Compile a definition and write it to
<world>/data/advancements/<namespace>/<key>.json, where the server loads it
on the next reload.

Example:
  advkit save --world ./world first_steps.yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWorldFile(rootOpts, args[0], cmd, true)
		},
	}
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "delete <file>",
		Short:         "Remove the advancement file from the world directory",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWorldFile(rootOpts, args[0], cmd, false)
		},
	}
}

func runWorldFile(opts *RootOptions, path string, cmd *cobra.Command, save bool) error {
	opts.resolve(cmd.ErrOrStderr())
	formatter := opts.formatter(cmd)

	adv, err := loadAdvancement(formatter, path)
	if err != nil {
		return err
	}

	a := newAdapter(opts, adv, nil)
	result := FileResult{ID: adv.ID().String(), Path: host.Path(opts.Config.WorldDir, adv.ID())}

	if save {
		if err := a.Save(opts.Config.WorldDir); err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeWriteFailed, "failed to save advancement", err)
		}
	} else {
		if err := a.Delete(opts.Config.WorldDir); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return formatter.Fail(ExitFailure, ErrCodeNotFound, fmt.Sprintf("no saved file for %s", adv.ID()), nil)
			}
			return formatter.Fail(ExitCommandError, ErrCodeWriteFailed, "failed to delete advancement", err)
		}
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	verb := "Saved"
	if !save {
		verb = "Deleted"
	}
	fmt.Fprintf(formatter.Writer, "✓ %s %s (%s)\n", verb, result.ID, result.Path)
	return nil
}
