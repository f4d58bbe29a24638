package store

import (
	"context"
	"errors"
	"testing"

	"personaljournal/internal/models"
)

// A malformed hex id can never match a document, so every id-taking operation
// reports ErrNotFound before touching the database. New(nil) is enough here:
// the id check fails before any collection access.
func TestMalformedIDIsNotFound(t *testing.T) {
	ids := []string{
		"",
		"not-a-hex-id",
		"abc",
		"507f1f77bcf86cd79943901",    // one char short
		"507f1f77bcf86cd7994390zz",   // right length, not hex
		"507f1f77bcf86cd79943901111", // one char long
	}

	s := New(nil)
	ctx := context.Background()

	for _, id := range ids {
		if _, err := s.GetEntryByID(ctx, id); !errors.Is(err, ErrNotFound) {
			t.Errorf("GetEntryByID(%q) err = %v, want ErrNotFound", id, err)
		}
		if err := s.UpdateEntry(ctx, id, models.EntryUpdate{}); !errors.Is(err, ErrNotFound) {
			t.Errorf("UpdateEntry(%q) err = %v, want ErrNotFound", id, err)
		}
		if err := s.DeleteEntry(ctx, id); !errors.Is(err, ErrNotFound) {
			t.Errorf("DeleteEntry(%q) err = %v, want ErrNotFound", id, err)
		}
	}
}
