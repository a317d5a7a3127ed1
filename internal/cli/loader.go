package cli

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/google/uuid"

	"github.com/roach88/advkit/internal/compiler"
	"github.com/roach88/advkit/internal/host"
	"github.com/roach88/advkit/internal/store"
	"github.com/roach88/advkit/pkg/advancement"
)

// Error codes for CLI output (E001-E099). Definition problems use the
// compiler's E2xx codes.
const (
	ErrCodeGeneric       = "E001" // Generic/unknown error
	ErrCodeNotFound      = "E005" // Path not found
	ErrCodeWriteFailed   = "E007" // File write or delete error
	ErrCodeInvalidPlayer = "E008" // Player id is not a UUID
	ErrCodeStoreFailed   = "E009" // Registry could not be opened or queried
	ErrCodeNotRegistered = "E010" // Advancement is not in the registry
	ErrCodeHostFailed    = "E011" // Grant, revoke or show failed
)

// loadAdvancement compiles the definition at path, writing any failure
// through f.
func loadAdvancement(f *OutputFormatter, path string) (*advancement.Advancement, error) {
	f.VerboseLog("Compiling %s", path)

	adv, err := compiler.CompileFile(path)
	if err == nil {
		return adv, nil
	}

	var verrs compiler.ValidationErrors
	if errors.As(err, &verrs) {
		return nil, outputValidationErrors(f, []FileValidation{{File: path, Errors: verrs}})
	}
	var verr compiler.ValidationError
	if errors.As(err, &verr) {
		return nil, outputValidationErrors(f, []FileValidation{{File: path, Errors: []compiler.ValidationError{verr}}})
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil, f.Fail(ExitCommandError, ErrCodeNotFound, fmt.Sprintf("definition not found: %s", path), nil)
	}
	return nil, f.Fail(ExitCommandError, ErrCodeGeneric, "failed to compile definition", err)
}

// openStore opens the registry named by the resolved config.
func openStore(f *OutputFormatter, opts *RootOptions) (*store.Store, error) {
	f.VerboseLog("Opening registry %s", opts.Config.DBPath)

	st, err := store.Open(opts.Config.DBPath)
	if err != nil {
		return nil, f.Fail(ExitCommandError, ErrCodeStoreFailed, "failed to open registry", err)
	}
	return st, nil
}

// closeStore closes st, logging a failure.
func closeStore(log *slog.Logger, st *store.Store) {
	if err := st.Close(); err != nil {
		log.Error("error closing registry", "error", err)
	}
}

// parsePlayers parses player UUIDs.
func parsePlayers(f *OutputFormatter, args []string) ([]uuid.UUID, error) {
	players := make([]uuid.UUID, 0, len(args))
	for _, arg := range args {
		id, err := uuid.Parse(arg)
		if err != nil {
			return nil, f.Fail(ExitCommandError, ErrCodeInvalidPlayer, fmt.Sprintf("invalid player id %q", arg), nil)
		}
		players = append(players, id)
	}
	return players, nil
}

// newAdapter binds adv to server with the command's logger.
func newAdapter(opts *RootOptions, adv *advancement.Advancement, server host.Server, extra ...host.AdapterOption) *host.Adapter {
	hostOpts := append([]host.AdapterOption{host.WithLogger(opts.Logger)}, extra...)
	return host.NewAdapter(adv, server, hostOpts...)
}

// hostFailure maps a host or registry error to CLI output.
func hostFailure(f *OutputFormatter, action string, adv *advancement.Advancement, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return f.Fail(ExitFailure, ErrCodeNotRegistered,
			fmt.Sprintf("%s %s: advancement is not registered (run register first)", action, adv.ID()), nil)
	}
	return f.Fail(ExitFailure, ErrCodeHostFailed, fmt.Sprintf("%s %s failed", action, adv.ID()), err)
}
