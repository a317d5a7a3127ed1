package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

// RenderOptions holds flags for the render command.
type RenderOptions struct {
	*RootOptions
	Compact bool
}

// RenderResult is the JSON payload of the render command.
type RenderResult struct {
	ID       string          `json:"id"`
	Hash     string          `json:"hash"`
	Criteria []string        `json:"criteria"`
	Document json.RawMessage `json:"document"`
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Print the advancement JSON for a definition",
		Long: `Compile a definition file and print the advancement document.

Text output is the document itself, indented as it is written to disk.
JSON output wraps it with the id, content hash and criterion names.

Conditions in a definition file are copied into the document as written.
Descriptor rules such as '#' item tags or namespaced location keys are not
applied to them.

Example:
  advkit render first_steps.yaml
  advkit render --compact first_steps.cue`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Compact, "compact", false, "print the document on one line")

	return cmd
}

func runRender(opts *RenderOptions, path string, cmd *cobra.Command) error {
	opts.resolve(cmd.ErrOrStderr())
	formatter := opts.formatter(cmd)

	adv, err := loadAdvancement(formatter, path)
	if err != nil {
		return err
	}

	doc := adv.Indent()
	if opts.Compact {
		doc = adv.JSON()
	}

	if formatter.Format == "json" {
		return formatter.Success(RenderResult{
			ID:       adv.ID().String(),
			Hash:     adv.Hash(),
			Criteria: adv.Criteria(),
			Document: json.RawMessage(adv.JSON()),
		})
	}

	out := cmd.OutOrStdout()
	if _, err := out.Write(append(doc, '\n')); err != nil {
		return WrapExitError(ExitCommandError, "failed to write output", err)
	}
	return nil
}
