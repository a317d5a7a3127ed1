package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/roach88/advkit/pkg/advancement"
)

// createTestStore creates a new store in a temp dir for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// loadTestAdvancement registers key with criteria and a placeholder document.
func loadTestAdvancement(t *testing.T, s *Store, key advancement.Key, criteria ...string) {
	t.Helper()
	if err := s.LoadAdvancement(context.Background(), key, []byte(`{"criteria":{}}`), criteria); err != nil {
		t.Fatalf("LoadAdvancement(%s) failed: %v", key, err)
	}
}
