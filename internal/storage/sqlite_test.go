package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kgrange/tagwise/internal/model"
)

func testStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	s, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "tagwise.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestNewSQLiteStorage_EmptyPath(t *testing.T) {
	_, err := NewSQLiteStorage("")
	assert.Error(t, err)
}

func TestReplaceRecords_RoundTrip(t *testing.T) {
	s := testStorage(t)
	ctx := context.Background()

	records := []model.Record{
		{Text: "late fee", ProductID: "P1", Primary: "Credit card", Secondary: "Late fee"},
		{Text: "no statement", ProductID: "P2", Primary: "Checking account", Secondary: ""},
	}
	require.NoError(t, s.ReplaceRecords(ctx, records))

	got, err := s.GetRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, records, got)

	count, err := s.CountRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestReplaceRecords_Replaces(t *testing.T) {
	s := testStorage(t)
	ctx := context.Background()

	first := []model.Record{{Text: "old", ProductID: "P1", Primary: "A"}}
	require.NoError(t, s.ReplaceRecords(ctx, first))

	second := []model.Record{
		{Text: "new one", ProductID: "P2", Primary: "B"},
		{Text: "new two", ProductID: "P3", Primary: "C"},
	}
	require.NoError(t, s.ReplaceRecords(ctx, second))

	got, err := s.GetRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestSaveRun_ListRuns(t *testing.T) {
	s := testStorage(t)
	ctx := context.Background()

	started := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	run := model.Run{
		StartedAt:        started,
		FinishedAt:       started.Add(2 * time.Minute),
		Seed:             13,
		Rows:             21000,
		Labels:           17,
		Features:         10000,
		Accuracy:         0.41,
		WeightedF1:       0.55,
		AveragePrecision: 0.48,
	}

	id, err := s.SaveRun(ctx, run)
	require.NoError(t, err)
	assert.Positive(t, id)

	second := run
	second.Seed = 7
	_, err = s.SaveRun(ctx, second)
	require.NoError(t, err)

	runs, err := s.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	assert.Equal(t, int64(7), runs[0].Seed, "runs must list newest first")
	assert.Equal(t, int64(13), runs[1].Seed)
	assert.Equal(t, 21000, runs[1].Rows)
	assert.InDelta(t, 0.55, runs[1].WeightedF1, 1e-12)
	assert.True(t, runs[1].FinishedAt.Equal(run.FinishedAt))
}

func TestListRuns_Empty(t *testing.T) {
	s := testStorage(t)

	runs, err := s.ListRuns(context.Background())
	require.NoError(t, err)
	assert.Empty(t, runs)
}
