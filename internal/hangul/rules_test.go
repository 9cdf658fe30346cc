package hangul

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applied(t *testing.T, text string) *Sentence {
	t.Helper()
	out, err := New(text).ApplyRules()
	require.NoError(t, err)
	return out
}

func TestHDeletion(t *testing.T) {
	// 좋 tail "h" + 아 lead "" -> both empty.
	out := applied(t, "좋아")

	left := out.Letters()[0].Syllable()
	right := out.Letters()[1].Syllable()
	assert.Equal(t, 0, left.Tail().Code())
	assert.Equal(t, 11, right.Lead().Code(), "right lead should stay the empty lead")
	assert.Equal(t, "조아", out.HangulString())
}

func TestLiaison(t *testing.T) {
	// 발 tail "r" moves into 음's empty lead slot.
	out := applied(t, "발음")
	assert.Equal(t, "바름", out.HangulString())
	assert.Equal(t, "bareum", out.Roman())
}

func TestNasalization(t *testing.T) {
	// 합 tail "b" + 니 lead "n" -> tail "m".
	out := applied(t, "합니다")
	assert.Equal(t, "함니다", out.HangulString())
	assert.Equal(t, "hamnida", out.Roman())
}

func TestHAbsorption(t *testing.T) {
	// 전 tail "n" shifts forward over 화's "h" lead.
	out := applied(t, "전화")
	assert.Equal(t, "저놔", out.HangulString())
	assert.Equal(t, "jeonwa", out.Roman())
}

func TestTailSimplification(t *testing.T) {
	// 없 tail "bs" + non-empty lead -> tail "p", lead unchanged.
	out := applied(t, "없다")
	assert.Equal(t, "엎다", out.HangulString())
	assert.Equal(t, "eopda", out.Roman())
}

// A "bs" tail before a vowel-initial syllable hits liaison first,
// which moves the whole cluster into the lead slot. No lead reads as
// "bs", so the pass must fail loudly instead of corrupting the pair.
func TestCompoundTailLiaisonFails(t *testing.T) {
	_, err := New("없어").ApplyRules()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownRomanization)
}

func TestChainWithinPair(t *testing.T) {
	// 좋아: h-deletion empties the tail, then liaison re-tests the
	// evolving pair and matches the now-empty tail as a no-op. The
	// chain must not restart from the first rule.
	out := applied(t, "좋아요.")
	assert.Equal(t, "조아요.", out.HangulString())
}

func TestRulesSkipPassthroughPairs(t *testing.T) {
	// The space breaks the pair, so 좋 keeps its tail.
	out := applied(t, "좋 아")
	assert.Equal(t, "좋 아", out.HangulString())
}

func TestRuleMatching(t *testing.T) {
	tests := []struct {
		rule  rule
		tail  string
		lead  string
		match bool
	}{
		{rules[0], "h", "", true},
		{rules[0], "h", "n", false},
		{rules[1], "bs", "", true},
		{rules[1], "", "", true},
		{rules[1], "g", "n", false},
		{rules[4], "bs", "d", true},
		{rules[4], "b", "d", false},
	}
	for _, tt := range tests {
		if got := tt.rule.matches(tt.tail, tt.lead); got != tt.match {
			t.Errorf("%s.matches(%q, %q) = %v, want %v", tt.rule.name, tt.tail, tt.lead, got, tt.match)
		}
	}
}
