package host

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/advkit/internal/logger"
	"github.com/roach88/advkit/internal/testutil"
	"github.com/roach88/advkit/pkg/advancement"
)

// fakeServer is an in-memory Server.
type fakeServer struct {
	mu       sync.Mutex
	docs     map[advancement.Key][]byte
	criteria map[advancement.Key][]string
	awarded  map[uuid.UUID]map[string]bool
	loadErr  error
	awardErr error
	calls    []string
}

func newFakeServer() *fakeServer {
	return &fakeServer{
		docs:     map[advancement.Key][]byte{},
		criteria: map[advancement.Key][]string{},
		awarded:  map[uuid.UUID]map[string]bool{},
	}
}

func (s *fakeServer) record(call string) {
	s.calls = append(s.calls, call)
}

func (s *fakeServer) LoadAdvancement(_ context.Context, key advancement.Key, doc []byte, criteria []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("load")
	if s.loadErr != nil {
		return s.loadErr
	}
	s.docs[key] = doc
	s.criteria[key] = criteria
	return nil
}

func (s *fakeServer) RemoveAdvancement(_ context.Context, key advancement.Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("remove")
	if _, ok := s.docs[key]; !ok {
		return errors.New("not registered")
	}
	delete(s.docs, key)
	return nil
}

func (s *fakeServer) Progress(_ context.Context, player uuid.UUID, key advancement.Key) (Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	criteria, ok := s.criteria[key]
	if !ok {
		return nil, errors.New("unknown advancement")
	}
	if s.awarded[player] == nil {
		s.awarded[player] = map[string]bool{}
	}
	return &fakeProgress{server: s, player: player, criteria: criteria}, nil
}

func (s *fakeServer) registered(key advancement.Key) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.docs[key]
	return ok
}

func (s *fakeServer) awardedTo(player uuid.UUID) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for c, ok := range s.awarded[player] {
		if ok {
			out = append(out, c)
		}
	}
	slices.Sort(out)
	return out
}

type fakeProgress struct {
	server   *fakeServer
	player   uuid.UUID
	criteria []string
}

func (p *fakeProgress) Done() bool {
	return len(p.Remaining()) == 0
}

func (p *fakeProgress) Remaining() []string {
	p.server.mu.Lock()
	defer p.server.mu.Unlock()
	var out []string
	for _, c := range p.criteria {
		if !p.server.awarded[p.player][c] {
			out = append(out, c)
		}
	}
	return out
}

func (p *fakeProgress) Awarded() []string {
	p.server.mu.Lock()
	defer p.server.mu.Unlock()
	var out []string
	for _, c := range p.criteria {
		if p.server.awarded[p.player][c] {
			out = append(out, c)
		}
	}
	return out
}

func (p *fakeProgress) Award(_ context.Context, c string) error {
	p.server.mu.Lock()
	defer p.server.mu.Unlock()
	if p.server.awardErr != nil {
		return p.server.awardErr
	}
	p.server.awarded[p.player][c] = true
	return nil
}

func (p *fakeProgress) Revoke(_ context.Context, c string) error {
	p.server.mu.Lock()
	defer p.server.mu.Unlock()
	delete(p.server.awarded[p.player], c)
	return nil
}

func testAdvancement(t *testing.T) *advancement.Advancement {
	t.Helper()
	adv, err := advancement.New(advancement.NewKey("demo", "story/first")).
		Trigger(
			advancement.NewTrigger(advancement.Tick, "a"),
			advancement.NewTrigger(advancement.Impossible, "b"),
		).
		Build()
	require.NoError(t, err)
	return adv
}

func newTestAdapter(t *testing.T, server Server, opts ...AdapterOption) *Adapter {
	t.Helper()
	opts = append([]AdapterOption{WithLogger(logger.Discard())}, opts...)
	return NewAdapter(testAdvancement(t), server, opts...)
}

func TestAdapter_AddRemove(t *testing.T) {
	server := newFakeServer()
	a := newTestAdapter(t, server)
	ctx := context.Background()

	require.NoError(t, a.Add(ctx))
	key := a.Advancement().ID()
	assert.True(t, server.registered(key))
	assert.Equal(t, []string{"a", "b"}, server.criteria[key])
	assert.JSONEq(t, string(a.Advancement().JSON()), string(server.docs[key]))

	require.NoError(t, a.Remove(ctx))
	assert.False(t, server.registered(key))

	err := a.Remove(ctx)
	assert.ErrorContains(t, err, "remove demo:story/first")
}

func TestAdapter_AddFailureIsWrapped(t *testing.T) {
	server := newFakeServer()
	server.loadErr = errors.New("server offline")
	a := newTestAdapter(t, server)

	err := a.Add(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, server.loadErr)
}

func TestAdapter_NoServer(t *testing.T) {
	a := newTestAdapter(t, nil)
	assert.Error(t, a.Add(context.Background()))
	assert.Error(t, a.Grant(context.Background(), testutil.PlayerID(1)))
}

func TestAdapter_GrantAwardsRemaining(t *testing.T) {
	server := newFakeServer()
	a := newTestAdapter(t, server)
	ctx := context.Background()
	p1, p2 := testutil.PlayerID(1), testutil.PlayerID(2)

	require.NoError(t, a.Add(ctx))
	require.NoError(t, a.Grant(ctx, p1, p2))

	assert.Equal(t, []string{"a", "b"}, server.awardedTo(p1))
	assert.Equal(t, []string{"a", "b"}, server.awardedTo(p2))
}

func TestAdapter_RevokeOnlyWhenDone(t *testing.T) {
	server := newFakeServer()
	a := newTestAdapter(t, server)
	ctx := context.Background()
	done, partial := testutil.PlayerID(1), testutil.PlayerID(2)

	require.NoError(t, a.Add(ctx))
	require.NoError(t, a.Grant(ctx, done))

	// partial progress: award one criterion directly
	p, err := server.Progress(ctx, partial, a.Advancement().ID())
	require.NoError(t, err)
	require.NoError(t, p.Award(ctx, "a"))

	require.NoError(t, a.Revoke(ctx, done, partial))
	assert.Empty(t, server.awardedTo(done))
	assert.Equal(t, []string{"a"}, server.awardedTo(partial))
}

func TestAdapter_GrantContinuesAfterFailure(t *testing.T) {
	server := newFakeServer()
	a := newTestAdapter(t, server)
	ctx := context.Background()

	// not registered: Progress fails for every player
	err := a.Grant(ctx, testutil.PlayerIDs(2)...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), testutil.PlayerID(1).String())
	assert.Contains(t, err.Error(), testutil.PlayerID(2).String())
}

func TestAdapter_GrantAwardError(t *testing.T) {
	server := newFakeServer()
	a := newTestAdapter(t, server)
	ctx := context.Background()
	require.NoError(t, a.Add(ctx))

	server.awardErr = errors.New("kicked")
	err := a.Grant(ctx, testutil.PlayerID(1))
	assert.ErrorIs(t, err, server.awardErr)
}

func TestAdapter_ShowRevokesAfterDelay(t *testing.T) {
	server := newFakeServer()
	timers := testutil.NewManualTimers()
	a := newTestAdapter(t, server, WithAfterFunc(timers.AfterFunc))
	player := testutil.PlayerID(1)

	_, err := a.Show(context.Background(), 3*time.Second, player)
	require.NoError(t, err)

	key := a.Advancement().ID()
	assert.True(t, server.registered(key))
	assert.Equal(t, []string{"a", "b"}, server.awardedTo(player))
	assert.Equal(t, []time.Duration{3 * time.Second}, timers.Delays())

	assert.Equal(t, 1, timers.Fire())
	assert.False(t, server.registered(key))
	assert.Empty(t, server.awardedTo(player))
}

func TestAdapter_ShowStop(t *testing.T) {
	server := newFakeServer()
	timers := testutil.NewManualTimers()
	a := newTestAdapter(t, server, WithAfterFunc(timers.AfterFunc))

	stop, err := a.Show(context.Background(), DefaultShowDelay, testutil.PlayerID(1))
	require.NoError(t, err)

	assert.True(t, stop())
	assert.Equal(t, 0, timers.Fire())
	assert.True(t, server.registered(a.Advancement().ID()))
}

func TestAdapter_ShowCancelledContextCleansUp(t *testing.T) {
	server := newFakeServer()
	timers := testutil.NewManualTimers()
	a := newTestAdapter(t, server, WithAfterFunc(timers.AfterFunc))
	ctx, cancel := context.WithCancel(context.Background())

	_, err := a.Show(ctx, time.Hour, testutil.PlayerID(1))
	require.NoError(t, err)

	cancel()
	assert.Eventually(t, func() bool {
		return !server.registered(a.Advancement().ID())
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 0, timers.Pending())
}

func TestAdapter_ShowAddFailure(t *testing.T) {
	server := newFakeServer()
	server.loadErr = errors.New("nope")
	timers := testutil.NewManualTimers()
	a := newTestAdapter(t, server, WithAfterFunc(timers.AfterFunc))

	stop, err := a.Show(context.Background(), time.Second, testutil.PlayerID(1))
	assert.Error(t, err)
	assert.Nil(t, stop)
	assert.Equal(t, 0, timers.Pending())
}

func TestAdapter_ShowGrantFailureRemoves(t *testing.T) {
	server := newFakeServer()
	server.awardErr = errors.New("kicked")
	timers := testutil.NewManualTimers()
	a := newTestAdapter(t, server, WithAfterFunc(timers.AfterFunc))

	_, err := a.Show(context.Background(), time.Second, testutil.PlayerID(1))
	assert.Error(t, err)
	assert.False(t, server.registered(a.Advancement().ID()))
	assert.Equal(t, []string{"load", "remove"}, server.calls)
}

func TestPath(t *testing.T) {
	got := Path("world", advancement.NewKey("demo", "story/first"))
	assert.Equal(t, filepath.Join("world", "data", "advancements", "demo", "story", "first.json"), got)
}

func TestAdapter_SaveDelete(t *testing.T) {
	world := t.TempDir()
	a := newTestAdapter(t, nil)

	require.NoError(t, a.Save(world))
	path := Path(world, a.Advancement().ID())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, a.Advancement().Indent(), data)

	// saving again overwrites
	require.NoError(t, a.Save(world))

	require.NoError(t, a.Delete(world))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	err = a.Delete(world)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestAdapter_SaveFailure(t *testing.T) {
	world := t.TempDir()
	// a file where the data directory should be
	require.NoError(t, os.WriteFile(filepath.Join(world, "data"), nil, 0o644))

	var buf bytes.Buffer
	a := newTestAdapter(t, nil, WithLogger(slog.New(slog.NewJSONHandler(&buf, nil))))
	assert.Error(t, a.Save(world))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "saving advancement failed", entry["msg"])
	assert.NotEmpty(t, entry["error"])
}

func TestCheckedPath_RejectsEscapingKeys(t *testing.T) {
	world := t.TempDir()
	for _, key := range []advancement.Key{
		advancement.NewKey("demo", "a/../../../../tmp/x"),
		advancement.NewKey("demo", "../x"),
		advancement.NewKey("..", "x"),
		advancement.NewKey("demo", "a//b"),
	} {
		t.Run(key.String(), func(t *testing.T) {
			_, err := checkedPath(world, key)
			assert.ErrorIs(t, err, advancement.ErrInvalidKey)
		})
	}
}

func TestCheckedPath_StaysUnderWorld(t *testing.T) {
	world := t.TempDir()
	path, err := checkedPath(world, advancement.NewKey("demo", "story/first"))
	require.NoError(t, err)

	rel, err := filepath.Rel(world, path)
	require.NoError(t, err)
	assert.True(t, filepath.IsLocal(rel), rel)
}
