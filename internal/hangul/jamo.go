package hangul

import "fmt"

// Position identifies which slot of a syllable block a jamo occupies.
type Position int

const (
	Lead Position = iota
	Vowel
	Tail
)

func (p Position) String() string {
	switch p {
	case Lead:
		return "lead"
	case Vowel:
		return "vowel"
	case Tail:
		return "tail"
	}
	return fmt.Sprintf("Position(%d)", int(p))
}

// Jamo is one positional sound component of a syllable: a position tag
// plus a code indexing that position's table. Codes come only from
// syllable decomposition or from an inverse-table lookup, so they are
// always in bounds.
type Jamo struct {
	pos  Position
	code int
}

// Code returns the component code within the position's table.
func (j Jamo) Code() int { return j.code }

// Roman returns the romanization of the component. A tail code of 0
// romanizes to the empty string.
func (j Jamo) Roman() string {
	switch j.pos {
	case Lead:
		return leadRoman[j.code]
	case Vowel:
		return vowelRoman[j.code]
	default:
		return tailRoman[j.code]
	}
}

// JamoString returns the standalone jamo character for the component.
// Tail code 0 has no character and yields "".
func (j Jamo) JamoString() string {
	switch j.pos {
	case Lead:
		return string(rune(leadBase + j.code))
	case Vowel:
		return string(rune(vowelBase + j.code))
	default:
		if j.code == 0 {
			return ""
		}
		return string(rune(tailBase + j.code))
	}
}

// Syllable is a decomposed precomposed Hangul syllable.
type Syllable struct {
	lead  Jamo
	vowel Jamo
	tail  Jamo
}

// decompose splits a code point from the precomposed block into its
// three component codes. The caller guarantees the range precondition.
func decompose(r rune) Syllable {
	rem := int(r) - syllableBase
	return Syllable{
		lead:  Jamo{pos: Lead, code: rem / (vowelCount * tailCount)},
		vowel: Jamo{pos: Vowel, code: rem % (vowelCount * tailCount) / tailCount},
		tail:  Jamo{pos: Tail, code: rem % tailCount},
	}
}

// Lead returns the leading consonant component.
func (s Syllable) Lead() Jamo { return s.lead }

// Vowel returns the vowel component.
func (s Syllable) Vowel() Jamo { return s.vowel }

// Tail returns the trailing consonant component.
func (s Syllable) Tail() Jamo { return s.tail }

// Rune recomposes the components into the precomposed code point.
func (s Syllable) Rune() rune {
	return rune(syllableBase + (s.lead.code*vowelCount+s.vowel.code)*tailCount + s.tail.code)
}

// Roman concatenates the three component romanizations.
func (s Syllable) Roman() string {
	return s.lead.Roman() + s.vowel.Roman() + s.tail.Roman()
}

// JamoString renders each component as a bracketed standalone jamo,
// e.g. 좋 -> [ᄌ][ᅩ][ᇂ]. An empty tail renders as [].
func (s Syllable) JamoString() string {
	return "[" + s.lead.JamoString() + "][" + s.vowel.JamoString() + "][" + s.tail.JamoString() + "]"
}

// HangulString renders the syllable with its jamo recombined into the
// precomposed character.
func (s Syllable) HangulString() string {
	return string(s.Rune())
}
