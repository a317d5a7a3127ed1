package host

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/roach88/advkit/internal/logger"
	"github.com/roach88/advkit/pkg/advancement"
)

// DefaultShowDelay is how long Show keeps an advancement before revoking it
// (one second, twenty server ticks).
const DefaultShowDelay = time.Second

// AfterFunc schedules fn after d and returns a function that cancels it.
type AfterFunc func(d time.Duration, fn func()) (stop func() bool)

func stdAfterFunc(d time.Duration, fn func()) func() bool {
	return time.AfterFunc(d, fn).Stop
}

// Adapter performs server and filesystem operations for one advancement.
type Adapter struct {
	adv       *advancement.Advancement
	server    Server
	log       *slog.Logger
	afterFunc AfterFunc
}

// AdapterOption configures an Adapter.
type AdapterOption func(*Adapter)

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(log *slog.Logger) AdapterOption {
	return func(a *Adapter) {
		a.log = log
	}
}

// WithAfterFunc replaces time.AfterFunc for Show. Tests use a manual timer.
func WithAfterFunc(fn AfterFunc) AdapterOption {
	return func(a *Adapter) {
		a.afterFunc = fn
	}
}

// NewAdapter returns an adapter for adv. server may be nil when only Save and
// Delete are used.
func NewAdapter(adv *advancement.Advancement, server Server, opts ...AdapterOption) *Adapter {
	a := &Adapter{
		adv:       adv,
		server:    server,
		log:       slog.Default(),
		afterFunc: stdAfterFunc,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.log = logger.WithAdvancement(a.log, adv.ID().String())
	return a
}

// Advancement returns the wrapped advancement.
func (a *Adapter) Advancement() *advancement.Advancement {
	return a.adv
}

var errNoServer = errors.New("no server configured")

// Add registers the advancement with the server.
func (a *Adapter) Add(ctx context.Context) error {
	if a.server == nil {
		return errNoServer
	}
	if err := a.server.LoadAdvancement(ctx, a.adv.ID(), a.adv.Indent(), a.adv.Criteria()); err != nil {
		logger.WithError(a.log, err).Error("registering advancement failed")
		return fmt.Errorf("register %s: %w", a.adv.ID(), err)
	}
	a.log.Info("registered advancement")
	return nil
}

// Remove unregisters the advancement.
func (a *Adapter) Remove(ctx context.Context) error {
	if a.server == nil {
		return errNoServer
	}
	if err := a.server.RemoveAdvancement(ctx, a.adv.ID()); err != nil {
		logger.WithError(a.log, err).Error("removing advancement failed")
		return fmt.Errorf("remove %s: %w", a.adv.ID(), err)
	}
	a.log.Info("removed advancement")
	return nil
}

// Grant awards every remaining criterion to each player that has not
// completed the advancement. It keeps going after a failing player and
// returns the joined errors.
func (a *Adapter) Grant(ctx context.Context, players ...uuid.UUID) error {
	return a.eachPlayer(ctx, "grant", players, func(p Progress) error {
		if p.Done() {
			return nil
		}
		for _, c := range p.Remaining() {
			if err := p.Award(ctx, c); err != nil {
				return fmt.Errorf("award %q: %w", c, err)
			}
		}
		return nil
	})
}

// Revoke revokes every awarded criterion from each player that has completed
// the advancement. Partial progress is left alone.
func (a *Adapter) Revoke(ctx context.Context, players ...uuid.UUID) error {
	return a.eachPlayer(ctx, "revoke", players, func(p Progress) error {
		if !p.Done() {
			return nil
		}
		for _, c := range p.Awarded() {
			if err := p.Revoke(ctx, c); err != nil {
				return fmt.Errorf("revoke %q: %w", c, err)
			}
		}
		return nil
	})
}

func (a *Adapter) eachPlayer(ctx context.Context, op string, players []uuid.UUID, fn func(Progress) error) error {
	if a.server == nil {
		return errNoServer
	}
	var errs []error
	for _, player := range players {
		p, err := a.server.Progress(ctx, player, a.adv.ID())
		if err == nil {
			err = fn(p)
		}
		if err != nil {
			logger.WithError(a.log, err).Error(op+" failed", "player", player)
			errs = append(errs, fmt.Errorf("%s %s for %s: %w", op, a.adv.ID(), player, err))
		}
	}
	return errors.Join(errs...)
}

// Show adds the advancement and grants it to players, so the client shows
// its toast, then revokes and removes it after delay. Cancelling ctx before
// the delay runs the cleanup immediately. The returned function cancels the
// pending cleanup and reports whether it was still pending.
func (a *Adapter) Show(ctx context.Context, delay time.Duration, players ...uuid.UUID) (func() bool, error) {
	if err := a.Add(ctx); err != nil {
		return nil, err
	}
	if err := a.Grant(ctx, players...); err != nil {
		// leave nothing registered behind
		_ = a.Remove(context.WithoutCancel(ctx))
		return nil, err
	}

	var (
		once    sync.Once
		mu      sync.Mutex
		stopCtx func() bool
	)
	bg := context.WithoutCancel(ctx)
	cleanup := func() {
		once.Do(func() {
			mu.Lock()
			release := stopCtx
			mu.Unlock()
			if release != nil {
				release()
			}
			if err := a.Revoke(bg, players...); err != nil {
				logger.WithError(a.log, err).Warn("show cleanup: revoke failed")
			}
			if err := a.Remove(bg); err != nil {
				logger.WithError(a.log, err).Warn("show cleanup: remove failed")
			}
		})
	}

	mu.Lock()
	stopTimer := a.afterFunc(delay, cleanup)
	stopCtx = context.AfterFunc(ctx, func() {
		if stopTimer() {
			cleanup()
		}
	})
	mu.Unlock()

	return func() bool {
		stopCtx()
		return stopTimer()
	}, nil
}

// Path returns the advancement file path under worldDir:
// <worldDir>/data/advancements/<namespace>/<key>.json.
func Path(worldDir string, key advancement.Key) string {
	return filepath.Join(worldDir, "data", "advancements", relPath(key))
}

func relPath(key advancement.Key) string {
	return filepath.Join(key.Namespace, filepath.FromSlash(key.Key)+".json")
}

// checkedPath is Path for keys that stay inside the advancements directory.
func checkedPath(worldDir string, key advancement.Key) (string, error) {
	if err := key.Validate(); err != nil {
		return "", err
	}
	if !filepath.IsLocal(relPath(key)) {
		return "", fmt.Errorf("%w: %s leaves the advancements directory", advancement.ErrInvalidKey, key)
	}
	return Path(worldDir, key), nil
}

// Save writes the indented document under worldDir, creating directories as
// needed.
func (a *Adapter) Save(worldDir string) error {
	path, err := checkedPath(worldDir, a.adv.ID())
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		logger.WithError(a.log, err).Error("saving advancement failed", "path", path)
		return fmt.Errorf("create directory for %s: %w", a.adv.ID(), err)
	}
	if err := os.WriteFile(path, a.adv.Indent(), 0o644); err != nil {
		logger.WithError(a.log, err).Error("saving advancement failed", "path", path)
		return fmt.Errorf("write %s: %w", path, err)
	}
	a.log.Info("saved advancement", "path", path)
	return nil
}

// Delete removes the advancement file under worldDir. A missing file is an
// error matching os.ErrNotExist.
func (a *Adapter) Delete(worldDir string) error {
	path, err := checkedPath(worldDir, a.adv.ID())
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		logger.WithError(a.log, err).Error("deleting advancement failed", "path", path)
		return fmt.Errorf("delete %s: %w", a.adv.ID(), err)
	}
	a.log.Info("deleted advancement", "path", path)
	return nil
}
