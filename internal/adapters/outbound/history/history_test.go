package history_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/openkraft/skillkraft/internal/adapters/outbound/history"
	"github.com/openkraft/skillkraft/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func score(v int) *int { return &v }

func TestHistory_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	entry := domain.ScoreEntry{
		Timestamp:  "2026-02-25T10:00:00Z",
		CommitHash: "abc1234",
		Mode:       domain.ModeFull,
		Overall:    score(47),
		Band:       "poor",
	}

	err := h.Save(dir, entry)
	require.NoError(t, err)

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 47, *entries[0].Overall)
	assert.Equal(t, "abc1234", entries[0].CommitHash)
	assert.Equal(t, domain.ModeFull, entries[0].Mode)
}

func TestHistory_AppendMultiple(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	require.NoError(t, h.Save(dir, domain.ScoreEntry{Timestamp: "t1", Mode: domain.ModeFull, Overall: score(47)}))
	require.NoError(t, h.Save(dir, domain.ScoreEntry{Timestamp: "t2", Mode: domain.ModeQuick}))
	require.NoError(t, h.Save(dir, domain.ScoreEntry{Timestamp: "t3", Mode: domain.ModeFull, Overall: score(85)}))

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, 47, *entries[0].Overall)
	assert.Nil(t, entries[1].Overall)
	assert.Equal(t, 85, *entries[2].Overall)
}

func TestHistory_LoadEmpty(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	entries, err := h.Load(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHistory_LoadCorruptLine(t *testing.T) {
	dir := t.TempDir()
	h := history.New()
	require.NoError(t, h.Save(dir, domain.ScoreEntry{Timestamp: "t1", Mode: domain.ModeFull}))

	f, err := os.OpenFile(filepath.Join(dir, history.File), os.O_APPEND|os.O_WRONLY, 0644)
	require.NoError(t, err)
	_, err = f.WriteString("not json\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = h.Load(dir)
	assert.ErrorContains(t, err, "line 2")
}

func TestHistory_OneEntryPerLine(t *testing.T) {
	dir := t.TempDir()
	h := history.New()
	require.NoError(t, h.Save(dir, domain.ScoreEntry{Timestamp: "t1", Mode: domain.ModeQuick}))
	require.NoError(t, h.Save(dir, domain.ScoreEntry{Timestamp: "t2", Mode: domain.ModeFull, Overall: score(90)}))

	data, err := os.ReadFile(filepath.Join(dir, history.File))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"timestamp":"t1"`)
	assert.Contains(t, lines[1], `"overall":90`)
}
