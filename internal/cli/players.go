package cli

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/advkit/internal/host"
)

// PlayersResult is the JSON payload of grant, revoke and show.
type PlayersResult struct {
	ID      string   `json:"id"`
	Action  string   `json:"action"`
	Players []string `json:"players"`
}

// ShowOptions holds flags for the show command.
type ShowOptions struct {
	*RootOptions
	Delay time.Duration
}

// NewGrantCommand creates the grant command.
func NewGrantCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "grant <file> <player-uuid...>",
		Short: "Award every remaining criterion to players",
		Long: `Award every remaining criterion of a registered advancement to each player
that has not completed it.

Example:
  advkit grant first_steps.yaml 069a79f4-44e9-4726-a5be-fca90e38aaf5`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlayers(rootOpts, "grant", args, cmd)
		},
	}
}

// NewRevokeCommand creates the revoke command.
func NewRevokeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "revoke <file> <player-uuid...>",
		Short:         "Revoke every awarded criterion from players that completed it",
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlayers(rootOpts, "revoke", args, cmd)
		},
	}
}

func runPlayers(opts *RootOptions, action string, args []string, cmd *cobra.Command) error {
	opts.resolve(cmd.ErrOrStderr())
	formatter := opts.formatter(cmd)

	players, err := parsePlayers(formatter, args[1:])
	if err != nil {
		return err
	}
	adv, err := loadAdvancement(formatter, args[0])
	if err != nil {
		return err
	}

	st, err := openStore(formatter, opts)
	if err != nil {
		return err
	}
	defer closeStore(opts.Logger, st)

	a := newAdapter(opts, adv, st)
	if action == "grant" {
		err = a.Grant(cmd.Context(), players...)
	} else {
		err = a.Revoke(cmd.Context(), players...)
	}
	if err != nil {
		return hostFailure(formatter, action, adv, err)
	}

	return outputPlayers(formatter, PlayersResult{ID: adv.ID().String(), Action: action, Players: args[1:]})
}

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ShowOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "show <file> <player-uuid...>",
		Short: "Briefly grant an advancement so its toast appears",
		Long: `Register the advancement, grant it to players, then revoke and unregister it
once the delay has passed. Interrupting the command cleans up immediately.

Example:
  advkit show --delay 2s toast.yaml 069a79f4-44e9-4726-a5be-fca90e38aaf5`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(opts, args, cmd)
		},
	}

	cmd.Flags().DurationVar(&opts.Delay, "delay", host.DefaultShowDelay, "how long the advancement stays granted")

	return cmd
}

func runShow(opts *ShowOptions, args []string, cmd *cobra.Command) error {
	opts.resolve(cmd.ErrOrStderr())
	formatter := opts.formatter(cmd)

	players, err := parsePlayers(formatter, args[1:])
	if err != nil {
		return err
	}
	adv, err := loadAdvancement(formatter, args[0])
	if err != nil {
		return err
	}

	st, err := openStore(formatter, opts)
	if err != nil {
		return err
	}
	defer closeStore(opts.Logger, st)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	timer := &cleanupTimer{done: make(chan struct{})}
	a := newAdapter(opts.RootOptions, adv, st, host.WithAfterFunc(timer.afterFunc))

	// The command waits for the cleanup itself, so Show must not race it on
	// cancellation.
	stop, err := a.Show(context.WithoutCancel(ctx), opts.Delay, players...)
	if err != nil {
		return hostFailure(formatter, "show", adv, err)
	}
	formatter.VerboseLog("Granted %s, revoking in %s", adv.ID(), opts.Delay)

	select {
	case <-timer.done:
	case <-ctx.Done():
		if stop() {
			timer.run()
		} else {
			<-timer.done
		}
	}

	return outputPlayers(formatter, PlayersResult{ID: adv.ID().String(), Action: "show", Players: args[1:]})
}

// cleanupTimer runs Show's cleanup on a real timer and signals done once it
// has finished, whether it ran from the timer or early through run.
type cleanupTimer struct {
	fn   func()
	once sync.Once
	done chan struct{}
}

func (t *cleanupTimer) afterFunc(d time.Duration, fn func()) func() bool {
	t.fn = fn
	return time.AfterFunc(d, t.run).Stop
}

func (t *cleanupTimer) run() {
	t.once.Do(func() {
		defer close(t.done)
		t.fn()
	})
}

func outputPlayers(formatter *OutputFormatter, result PlayersResult) error {
	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	verb := map[string]string{"grant": "Granted", "revoke": "Revoked", "show": "Showed"}[result.Action]
	fmt.Fprintf(formatter.Writer, "✓ %s %s for %d player(s)\n", verb, result.ID, len(result.Players))
	return nil
}
