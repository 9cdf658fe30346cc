package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/jusunglee/jamoro/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func seedParams(input string) db.SaveRomanizationParams {
	return db.SaveRomanizationParams{
		Input:         input,
		Roman:         "johayo.",
		Jamo:          "[ᄌ][ᅩ][ᇂ][ᄋ][ᅡ][][ᄋ][ᅭ][].",
		Hangul:        input,
		AppliedRoman:  "joayo.",
		AppliedJamo:   "[ᄌ][ᅩ][][ᄋ][ᅡ][][ᄋ][ᅭ][].",
		AppliedHangul: "조아요.",
	}
}

func TestSaveAndGetRomanization(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	rec, err := repo.SaveRomanization(ctx, seedParams("좋아요."))
	require.NoError(t, err)
	assert.Equal(t, "좋아요.", rec.Input)
	assert.Equal(t, "조아요.", rec.AppliedHangul)

	got, err := repo.GetRomanization(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, rec.Roman, got.Roman)

	byInput, err := repo.GetRomanizationByInput(ctx, "좋아요.")
	require.NoError(t, err)
	assert.Equal(t, rec.ID, byInput.ID)
}

func TestSaveRomanizationUpserts(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first, err := repo.SaveRomanization(ctx, seedParams("좋아요."))
	require.NoError(t, err)

	params := seedParams("좋아요.")
	params.AppliedRoman = "updated"
	second, err := repo.SaveRomanization(ctx, params)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "upsert must keep the row")
	assert.Equal(t, "updated", second.AppliedRoman)

	count, err := repo.CountRomanizations(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSaveRomanizationSetsCreatedAt(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	rec, err := repo.SaveRomanization(ctx, seedParams("좋아요."))
	require.NoError(t, err)
	require.False(t, rec.CreatedAt.IsZero(), "created_at must survive the round trip")
	assert.WithinDuration(t, time.Now().UTC(), rec.CreatedAt, time.Minute)

	list, err := repo.ListRomanizations(ctx, db.ListRomanizationsParams{Limit: 10})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, rec.CreatedAt, list[0].CreatedAt)
}

func TestGetRomanizationNotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetRomanization(context.Background(), 12345)
	assert.True(t, db.IsNoRows(err))

	_, err = repo.GetRomanizationByInput(context.Background(), "없는 입력")
	assert.True(t, db.IsNoRows(err))
}

func TestListRomanizations(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, input := range []string{"하나", "둘", "셋"} {
		_, err := repo.SaveRomanization(ctx, seedParams(input))
		require.NoError(t, err)
	}

	all, err := repo.ListRomanizations(ctx, db.ListRomanizationsParams{Limit: 10, Offset: 0})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	page, err := repo.ListRomanizations(ctx, db.ListRomanizationsParams{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Len(t, page, 1)

	count, err := repo.CountRomanizations(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
