package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/advkit/internal/host"
	"github.com/roach88/advkit/internal/logger"
	"github.com/roach88/advkit/internal/testutil"
	"github.com/roach88/advkit/pkg/advancement"
)

func TestProgress_UnknownAdvancement(t *testing.T) {
	s := createTestStore(t)

	_, err := s.Progress(context.Background(), testutil.PlayerID(1), rootKey)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestProgress_AwardAndRevoke(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	player := testutil.PlayerID(1)
	loadTestAdvancement(t, s, rootKey, "a", "b")

	p, err := s.Progress(ctx, player, rootKey)
	require.NoError(t, err)
	assert.False(t, p.Done())
	assert.Equal(t, []string{"a", "b"}, p.Remaining())
	assert.Empty(t, p.Awarded())

	require.NoError(t, p.Award(ctx, "b"))
	require.NoError(t, p.Award(ctx, "b"))
	assert.Equal(t, []string{"a"}, p.Remaining())
	assert.Equal(t, []string{"b"}, p.Awarded())

	require.NoError(t, p.Award(ctx, "a"))
	assert.True(t, p.Done())

	// A fresh snapshot sees the persisted awards.
	fresh, err := s.Progress(ctx, player, rootKey)
	require.NoError(t, err)
	assert.True(t, fresh.Done())

	require.NoError(t, p.Revoke(ctx, "a"))
	require.NoError(t, p.Revoke(ctx, "a"))
	assert.False(t, p.Done())
	assert.Equal(t, []string{"a"}, p.Remaining())
}

func TestProgress_AwardUnknownCriterion(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	loadTestAdvancement(t, s, rootKey, "a")

	p, err := s.Progress(ctx, testutil.PlayerID(1), rootKey)
	require.NoError(t, err)

	assert.ErrorIs(t, p.Award(ctx, "nope"), sql.ErrNoRows)
}

func TestProgress_NoCriteriaNeverDone(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	loadTestAdvancement(t, s, rootKey)

	p, err := s.Progress(ctx, testutil.PlayerID(1), rootKey)
	require.NoError(t, err)
	assert.False(t, p.Done())
	assert.Empty(t, p.Remaining())
}

func TestProgress_PlayersAreIndependent(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	loadTestAdvancement(t, s, rootKey, "a")

	p1, err := s.Progress(ctx, testutil.PlayerID(1), rootKey)
	require.NoError(t, err)
	require.NoError(t, p1.Award(ctx, "a"))

	p2, err := s.Progress(ctx, testutil.PlayerID(2), rootKey)
	require.NoError(t, err)
	assert.False(t, p2.Done())
}

func TestPlayers_OrderedByFirstAward(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	loadTestAdvancement(t, s, rootKey, "a", "b")

	for _, n := range []int{3, 1, 3, 2} {
		p, err := s.Progress(ctx, testutil.PlayerID(n), rootKey)
		require.NoError(t, err)
		c := "a"
		if len(p.Awarded()) > 0 {
			c = "b"
		}
		require.NoError(t, p.Award(ctx, c))
	}

	players, err := s.Players(ctx, rootKey)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{testutil.PlayerID(3), testutil.PlayerID(1), testutil.PlayerID(2)}, players)
}

func TestAdapter_WithStore(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	players := testutil.PlayerIDs(2)

	adv, err := advancement.New(rootKey).
		Trigger(advancement.NewTrigger(advancement.Impossible, "x")).
		Trigger(advancement.NewTrigger(advancement.Tick, "y")).
		Build()
	require.NoError(t, err)

	timers := &testutil.ManualTimers{}
	a := host.NewAdapter(adv, s, host.WithLogger(logger.Discard()), host.WithAfterFunc(timers.AfterFunc))

	require.NoError(t, a.Add(ctx))
	rec, err := s.Advancement(ctx, rootKey)
	require.NoError(t, err)
	assert.Equal(t, string(adv.Indent()), rec.Document)
	assert.Equal(t, []string{"x", "y"}, rec.Criteria)

	require.NoError(t, a.Grant(ctx, players...))
	for _, player := range players {
		p, err := s.Progress(ctx, player, rootKey)
		require.NoError(t, err)
		assert.True(t, p.Done())
	}

	require.NoError(t, a.Revoke(ctx, players[0]))
	p, err := s.Progress(ctx, players[0], rootKey)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, p.Remaining())

	require.NoError(t, a.Remove(ctx))
	_, err = s.Advancement(ctx, rootKey)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	stop, err := a.Show(ctx, time.Second, players[1])
	require.NoError(t, err)
	assert.Equal(t, []time.Duration{time.Second}, timers.Delays())

	timers.Fire()
	assert.False(t, stop())
	_, err = s.Advancement(ctx, rootKey)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
