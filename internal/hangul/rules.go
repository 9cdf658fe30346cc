package hangul

import (
	"errors"
	"fmt"

	"github.com/jusunglee/jamoro/internal/metrics"
)

// ErrUnknownRomanization is returned when a rewrite strategy produces
// a romanization with no entry in the inverse tables. The rule pass
// aborts; no partial sentence is produced.
var ErrUnknownRomanization = errors.New("romanization not in inverse table")

// wildcard matches any romanization in a rule pattern.
const wildcard = "*"

// strategy rewrites the (tail, lead) romanization pair of two adjacent
// syllables.
type strategy func(tail, lead string) (newTail, newLead string)

// rule matches a trailing-sound/leading-sound pair across two adjacent
// Hangul letters. Patterns are literal romanizations or the wildcard.
type rule struct {
	name string
	tail string
	lead string
	run  strategy
}

// Rules fire in order against the evolving pair, so one pair can be
// rewritten by several rules in a single pass. Each encodes one
// assimilation phenomenon.
var rules = []rule{
	{
		// ㅎ before a vowel-initial syllable is silent.
		name: "h-deletion",
		tail: "h", lead: "",
		run: func(_, _ string) (string, string) { return "", "" },
	},
	{
		// 연음화: a trailing consonant attaches to a following
		// vowel-only syllable.
		name: "liaison",
		tail: wildcard, lead: "",
		run: func(tail, _ string) (string, string) { return "", tail },
	},
	{
		// ㅂ nasalizes to ㅁ before ㄴ.
		name: "nasalization",
		tail: "b", lead: "n",
		run: func(_, lead string) (string, string) { return "m", lead },
	},
	{
		// A ㅎ lead absorbs a preceding ㄴ, which shifts forward.
		name: "h-absorption",
		tail: "n", lead: "h",
		run: func(tail, _ string) (string, string) { return "", tail },
	},
	{
		// ㅄ simplifies to ㅍ; its ㅅ survives as the next lead when
		// that slot is empty.
		name: "tail-simplification",
		tail: "bs", lead: wildcard,
		run: func(_, lead string) (string, string) {
			if lead == "" {
				return "p", "s"
			}
			return "p", lead
		},
	},
}

func (r rule) matches(tail, lead string) bool {
	return (r.tail == wildcard || r.tail == tail) && (r.lead == wildcard || r.lead == lead)
}

// applyRules runs the whole rule list, in order, against the pair
// (a.tail, b.lead), rewriting both syllables in place as rules match.
func (c *Context) applyRules(a, b *Syllable) error {
	for _, r := range rules {
		tail := a.tail.Roman()
		lead := b.lead.Roman()
		if !r.matches(tail, lead) {
			continue
		}

		newTail, newLead := r.run(tail, lead)
		tailCode, ok := c.tailIndex[newTail]
		if !ok {
			return fmt.Errorf("rule %s produced tail %q: %w", r.name, newTail, ErrUnknownRomanization)
		}
		leadCode, ok := c.leadIndex[newLead]
		if !ok {
			return fmt.Errorf("rule %s produced lead %q: %w", r.name, newLead, ErrUnknownRomanization)
		}

		a.tail.code = tailCode
		b.lead.code = leadCode
		metrics.RuleMatches.WithLabelValues(r.name).Inc()
	}
	return nil
}
