package romanize

import (
	"context"
	"fmt"
	"testing"

	"github.com/jusunglee/jamoro/internal/hangul"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderers(t *testing.T) {
	tests := []struct {
		input string
		roman string
	}{
		{"김치", "gimchi"},
		{"페이커", "peikeo"},
		{"hello", "hello"},
	}
	for _, tt := range tests {
		if got := Roman(tt.input); got != tt.roman {
			t.Errorf("Roman(%q) = %q, want %q", tt.input, got, tt.roman)
		}
		if got := HangulString(tt.input); got != tt.input {
			t.Errorf("HangulString(%q) = %q, want identity", tt.input, got)
		}
	}
}

func TestRomanize(t *testing.T) {
	r, err := Romanize("좋아요.")
	require.NoError(t, err)

	assert.Equal(t, "johayo.", r.Roman)
	assert.Equal(t, "좋아요.", r.Hangul)
	assert.Equal(t, "joayo.", r.AppliedRoman)
	assert.Equal(t, "조아요.", r.AppliedHangul)
}

func TestRomanizeError(t *testing.T) {
	_, err := Romanize("없어")
	assert.ErrorIs(t, err, hangul.ErrUnknownRomanization)
}

func TestApplyRules(t *testing.T) {
	out, err := ApplyRules("합니다")
	require.NoError(t, err)
	assert.Equal(t, "hamnida", out.Roman())
}

func TestBatchKeepsOrder(t *testing.T) {
	texts := make([]string, 50)
	for i := range texts {
		texts[i] = fmt.Sprintf("좋아요 %d", i)
	}

	results, err := Batch(context.Background(), texts)
	require.NoError(t, err)
	require.Len(t, results, len(texts))
	for i, r := range results {
		assert.Equal(t, texts[i], r.Input)
		assert.Equal(t, fmt.Sprintf("조아요 %d", i), r.AppliedHangul)
	}
}

func TestBatchPropagatesError(t *testing.T) {
	_, err := Batch(context.Background(), []string{"좋아요", "없어"})
	assert.ErrorIs(t, err, hangul.ErrUnknownRomanization)
}
