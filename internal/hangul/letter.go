package hangul

// Letter is one character of a sentence: either a decoded Hangul
// syllable or a passthrough character (punctuation, spaces, Latin,
// and anything else outside the classified range).
type Letter struct {
	syllable *Syllable
	char     rune
}

func newLetter(r rune) Letter {
	if r >= syllableBase && r < classifyEnd {
		s := decompose(r)
		return Letter{syllable: &s, char: r}
	}
	return Letter{char: r}
}

// IsHangul reports whether the letter carries a decoded syllable.
func (l Letter) IsHangul() bool { return l.syllable != nil }

// Syllable returns the decoded syllable, or nil for passthrough letters.
func (l Letter) Syllable() *Syllable { return l.syllable }

// Roman renders the letter's romanization; passthrough letters render
// as themselves.
func (l Letter) Roman() string {
	if l.syllable != nil {
		return l.syllable.Roman()
	}
	return string(l.char)
}

// Jamo renders the letter as bracketed standalone jamo; passthrough
// letters render as themselves.
func (l Letter) Jamo() string {
	if l.syllable != nil {
		return l.syllable.JamoString()
	}
	return string(l.char)
}

// HangulString renders the letter as a recombined syllable;
// passthrough letters render as themselves.
func (l Letter) HangulString() string {
	if l.syllable != nil {
		return l.syllable.HangulString()
	}
	return string(l.char)
}

// clone copies the letter so a rule pass can rewrite component codes
// without aliasing the original sequence.
func (l Letter) clone() Letter {
	if l.syllable == nil {
		return l
	}
	s := *l.syllable
	return Letter{syllable: &s, char: l.char}
}
