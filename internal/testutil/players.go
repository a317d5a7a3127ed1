package testutil

import (
	"fmt"

	"github.com/google/uuid"
)

// PlayerID returns a deterministic player id for n, of the form
// 00000000-0000-0000-0000-<n as 12 hex digits>.
//
// The same n always yields the same id, which keeps golden output and
// database rows stable across runs.
func PlayerID(n int) uuid.UUID {
	return uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-%012x", n))
}

// PlayerIDs returns PlayerID(1) through PlayerID(count).
func PlayerIDs(count int) []uuid.UUID {
	ids := make([]uuid.UUID, count)
	for i := range ids {
		ids[i] = PlayerID(i + 1)
	}
	return ids
}
