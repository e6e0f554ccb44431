// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/O957/sort-by-citations/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(types.HistoryConfig{Dir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, Entry{
		Mode:         "keyword",
		Subject:      "machine learning",
		MinCitations: 100,
		ResultCount:  10,
		TopCitations: 50000,
	}))
	require.NoError(t, s.Record(ctx, Entry{
		Mode:           "author",
		Subject:        "Marie Curie",
		MinYear:        1900,
		MaxYear:        1935,
		OpenAccessOnly: true,
		ResultCount:    7,
		TopCitations:   900,
	}))

	entries, err := s.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	assert.Equal(t, "Marie Curie", entries[0].Subject)
	assert.Equal(t, "author", entries[0].Mode)
	assert.True(t, entries[0].OpenAccessOnly)
	assert.Equal(t, 1900, entries[0].MinYear)
	assert.Equal(t, 1935, entries[0].MaxYear)

	assert.Equal(t, "machine learning", entries[1].Subject)
	assert.Equal(t, 100, entries[1].MinCitations)
	assert.Equal(t, 50000, entries[1].TopCitations)
	assert.False(t, entries[1].OpenAccessOnly)
	assert.WithinDuration(t, time.Now(), entries[1].CreatedAt, time.Minute)
}

func TestRecentLimit(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Record(ctx, Entry{Mode: "keyword", Subject: "q"}))
	}

	entries, err := s.Recent(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestRecentEmpty(t *testing.T) {
	s := testStore(t)

	entries, err := s.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStoreReopen(t *testing.T) {
	dir := t.TempDir()
	cfg := types.HistoryConfig{Dir: dir}

	s, err := NewStore(cfg)
	require.NoError(t, err)
	require.NoError(t, s.Record(context.Background(), Entry{Mode: "keyword", Subject: "persisted"}))
	require.NoError(t, s.Close())

	s2, err := NewStore(cfg)
	require.NoError(t, err)
	defer s2.Close()

	entries, err := s2.Recent(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "persisted", entries[0].Subject)
}
