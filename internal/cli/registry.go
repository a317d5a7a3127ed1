package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RegistryResult is the JSON payload of register and unregister.
type RegistryResult struct {
	ID       string   `json:"id"`
	Hash     string   `json:"hash,omitempty"`
	Criteria []string `json:"criteria,omitempty"`
}

// ListEntry is one registered advancement in list output.
type ListEntry struct {
	ID       string   `json:"id"`
	Hash     string   `json:"hash"`
	Criteria []string `json:"criteria"`
	Players  int      `json:"players"`
}

// NewRegisterCommand creates the register command.
func NewRegisterCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "register <file>",
		Short: "Load the advancement into the registry",
		Long: `Compile a definition and load it into the SQLite registry. Registering an
id again replaces the document; player awards for criteria that still exist
are kept.

Example:
  advkit register --db ./advkit.db first_steps.yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegister(rootOpts, args[0], cmd, true)
		},
	}
}

// NewUnregisterCommand creates the unregister command.
func NewUnregisterCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "unregister <file>",
		Short:         "Remove the advancement and its awards from the registry",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegister(rootOpts, args[0], cmd, false)
		},
	}
}

func runRegister(opts *RootOptions, path string, cmd *cobra.Command, register bool) error {
	opts.resolve(cmd.ErrOrStderr())
	formatter := opts.formatter(cmd)

	adv, err := loadAdvancement(formatter, path)
	if err != nil {
		return err
	}

	st, err := openStore(formatter, opts)
	if err != nil {
		return err
	}
	defer closeStore(opts.Logger, st)

	a := newAdapter(opts, adv, st)
	result := RegistryResult{ID: adv.ID().String()}
	verb := "Registered"
	if register {
		if err := a.Add(cmd.Context()); err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeStoreFailed, "failed to register advancement", err)
		}
		rec, err := st.Advancement(cmd.Context(), adv.ID())
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeStoreFailed, "failed to read registered advancement", err)
		}
		result.Hash = rec.Hash
		result.Criteria = rec.Criteria
	} else {
		if err := a.Remove(cmd.Context()); err != nil {
			return hostFailure(formatter, "unregister", adv, err)
		}
		verb = "Unregistered"
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	fmt.Fprintf(formatter.Writer, "✓ %s %s\n", verb, result.ID)
	return nil
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List registered advancements",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	opts.resolve(cmd.ErrOrStderr())
	formatter := opts.formatter(cmd)

	st, err := openStore(formatter, opts)
	if err != nil {
		return err
	}
	defer closeStore(opts.Logger, st)

	records, err := st.List(cmd.Context())
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeStoreFailed, "failed to list advancements", err)
	}

	entries := make([]ListEntry, 0, len(records))
	for _, rec := range records {
		players, err := st.Players(cmd.Context(), rec.Key)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeStoreFailed, "failed to list players", err)
		}
		entries = append(entries, ListEntry{
			ID:       rec.Key.String(),
			Hash:     rec.Hash,
			Criteria: rec.Criteria,
			Players:  len(players),
		})
	}

	if formatter.Format == "json" {
		return formatter.Success(entries)
	}
	if len(entries) == 0 {
		fmt.Fprintln(formatter.Writer, "No advancements registered")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(formatter.Writer, "%s  criteria=%d players=%d  %s\n", e.ID, len(e.Criteria), e.Players, e.Hash[:12])
	}
	return nil
}
