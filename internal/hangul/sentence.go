package hangul

import (
	"strings"

	"github.com/samber/lo"
)

// Sentence is an ordered sequence of letters sharing one lookup
// context. Rule application never mutates a sentence; it returns a
// rewritten copy.
type Sentence struct {
	letters []Letter
	ctx     *Context
}

// New splits text into letters, decoding each precomposed Hangul
// syllable in the classified range.
func New(text string) *Sentence {
	return &Sentence{
		letters: lo.Map([]rune(text), func(r rune, _ int) Letter {
			return newLetter(r)
		}),
		ctx: defaultContext,
	}
}

// Len returns the number of letters.
func (s *Sentence) Len() int { return len(s.letters) }

// Letters returns the letter sequence in input order.
func (s *Sentence) Letters() []Letter { return s.letters }

// Roman renders the whole sentence as romanized text.
func (s *Sentence) Roman() string {
	return s.render(Letter.Roman)
}

// Jamo renders the whole sentence as bracketed standalone jamo.
func (s *Sentence) Jamo() string {
	return s.render(Letter.Jamo)
}

// HangulString renders the whole sentence with jamo recombined into
// precomposed syllables.
func (s *Sentence) HangulString() string {
	return s.render(Letter.HangulString)
}

func (s *Sentence) render(f func(Letter) string) string {
	var b strings.Builder
	for _, l := range s.letters {
		b.WriteString(f(l))
	}
	return b.String()
}

// ApplyRules returns a new sentence with the phonological rules
// applied. The sequence is swept once, left to right, pair by pair;
// each pair sees the letters as last written by the previous pair, and
// every matching rule in the list rewrites the pair in order. Pairs
// with a passthrough member are skipped. A rewrite that leaves the
// inverse tables aborts the pass with ErrUnknownRomanization.
func (s *Sentence) ApplyRules() (*Sentence, error) {
	letters := lo.Map(s.letters, func(l Letter, _ int) Letter {
		return l.clone()
	})

	for i := 0; i+1 < len(letters); i++ {
		a, b := letters[i].syllable, letters[i+1].syllable
		if a == nil || b == nil {
			continue
		}
		if err := s.ctx.applyRules(a, b); err != nil {
			return nil, err
		}
	}

	return &Sentence{letters: letters, ctx: s.ctx}, nil
}
