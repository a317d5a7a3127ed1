package store

import (
	"context"
	"database/sql"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/roach88/advkit/internal/host"
	"github.com/roach88/advkit/pkg/advancement"
)

var _ host.Server = (*Store)(nil)

// Progress is a player's progress on one advancement, read when Store.Progress
// is called and kept current by Award and Revoke.
type Progress struct {
	store    *Store
	player   uuid.UUID
	key      advancement.Key
	criteria []string
	awarded  map[string]bool
}

// Progress implements host.Server.
// Returns an error wrapping sql.ErrNoRows if key is not registered.
func (s *Store) Progress(ctx context.Context, player uuid.UUID, key advancement.Key) (host.Progress, error) {
	p, err := s.progress(ctx, player, key)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Store) progress(ctx context.Context, player uuid.UUID, key advancement.Key) (*Progress, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM advancements WHERE key = ?`, key.String()).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("progress for %s: %w", key, err)
	}

	criteria, err := s.criteria(ctx, s.db, key)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT criterion FROM awards WHERE player = ? AND advancement_key = ?
	`, player.String(), key.String())
	if err != nil {
		return nil, fmt.Errorf("query awards: %w", err)
	}
	defer rows.Close()

	awarded := map[string]bool{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan award: %w", err)
		}
		awarded[c] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate awards: %w", err)
	}

	return &Progress{store: s, player: player, key: key, criteria: criteria, awarded: awarded}, nil
}

// Done reports whether every criterion is awarded. An advancement without
// criteria is never done.
func (p *Progress) Done() bool {
	return len(p.criteria) > 0 && len(p.Remaining()) == 0
}

// Remaining returns criteria not yet awarded, in document order.
func (p *Progress) Remaining() []string {
	out := []string{}
	for _, c := range p.criteria {
		if !p.awarded[c] {
			out = append(out, c)
		}
	}
	return out
}

// Awarded returns awarded criteria, in document order.
func (p *Progress) Awarded() []string {
	out := []string{}
	for _, c := range p.criteria {
		if p.awarded[c] {
			out = append(out, c)
		}
	}
	return out
}

// Award awards criterion. Awarding twice is a no-op.
func (p *Progress) Award(ctx context.Context, criterion string) error {
	if !slices.Contains(p.criteria, criterion) {
		return fmt.Errorf("award %q on %s: %w", criterion, p.key, sql.ErrNoRows)
	}

	tx, err := p.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("award: %w", err)
	}
	defer tx.Rollback()

	seq, err := nextSeq(ctx, tx, "awards")
	if err != nil {
		return fmt.Errorf("award: %w", err)
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO awards (player, advancement_key, criterion, seq)
		VALUES (?, ?, ?, ?)
		ON CONFLICT DO NOTHING
	`, p.player.String(), p.key.String(), criterion, seq)
	if err != nil {
		return fmt.Errorf("award %q: %w", criterion, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("award: %w", err)
	}

	p.awarded[criterion] = true
	return nil
}

// Revoke revokes criterion. Revoking a criterion that is not awarded is a
// no-op.
func (p *Progress) Revoke(ctx context.Context, criterion string) error {
	_, err := p.store.db.ExecContext(ctx, `
		DELETE FROM awards WHERE player = ? AND advancement_key = ? AND criterion = ?
	`, p.player.String(), p.key.String(), criterion)
	if err != nil {
		return fmt.Errorf("revoke %q: %w", criterion, err)
	}
	delete(p.awarded, criterion)
	return nil
}

// Players returns every player with at least one award on key, ordered by
// first award.
func (s *Store) Players(ctx context.Context, key advancement.Key) ([]uuid.UUID, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT player FROM awards WHERE advancement_key = ?
		GROUP BY player
		ORDER BY MIN(seq) ASC, player COLLATE BINARY ASC
	`, key.String())
	if err != nil {
		return nil, fmt.Errorf("query players: %w", err)
	}
	defer rows.Close()

	players := []uuid.UUID{}
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		players = append(players, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate players: %w", err)
	}
	return players, nil
}
