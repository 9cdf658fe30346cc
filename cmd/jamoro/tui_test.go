package main

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jusunglee/jamoro/internal/db/sqlite"
	"github.com/jusunglee/jamoro/internal/romanize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typedModel(t *testing.T, m model, text string) model {
	t.Helper()
	m.textInput.SetValue(text)
	var err error
	m.result, err = romanize.Romanize(text)
	require.NoError(t, err)
	return m
}

func TestTUISavesOnEnter(t *testing.T) {
	repo, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	m := typedModel(t, initialModel(repo), "좋아요.")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := updated.(model)
	assert.Equal(t, "saved to history as #1", got.saved)

	rec, err := repo.GetRomanizationByInput(context.Background(), "좋아요.")
	require.NoError(t, err)
	assert.Equal(t, "조아요.", rec.AppliedHangul)
}

func TestTUIEnterWithoutStoreIsNoop(t *testing.T) {
	m := typedModel(t, initialModel(nil), "좋아요.")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := updated.(model)
	assert.Empty(t, got.saved)
	assert.NoError(t, got.err)
}

func TestTUIEnterWithEmptyInputIsNoop(t *testing.T) {
	repo, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	updated, _ := initialModel(repo).Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := updated.(model)
	assert.Empty(t, got.saved)

	count, err := repo.CountRomanizations(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}
