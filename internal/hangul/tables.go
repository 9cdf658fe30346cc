package hangul

// Precomposed syllables live at AC00 + (lead*588 + vowel*28 + tail).
// The standalone jamo blocks start at their own bases; tail 0 means
// "no trailing consonant" and has no standalone character.
const (
	syllableBase = 0xAC00
	leadBase     = 0x1100
	vowelBase    = 0x1161
	tailBase     = 0x11A7

	vowelCount = 21
	tailCount  = 28
)

// Letters at or above this code point are treated as passthrough even
// though the precomposed block runs to D7A3; see DESIGN.md.
const classifyEnd = 0xD74A

var (
	leadRoman = []string{
		"g", "kk", "n", "d", "tt", "r", "m", "b", "pp", "s",
		"ss", "", "j", "tch", "ch", "k", "t", "p", "h",
	}
	vowelRoman = []string{
		"a", "ae", "ya", "yae", "eo", "e", "yeo", "ye", "o", "wa",
		"wae", "oe", "yo", "u", "weo", "we", "wi", "yu", "eu", "eui",
		"i",
	}
	tailRoman = []string{
		"", "g", "gg", "gs", "n", "nj", "nh", "d", "r", "rg",
		"rm", "rb", "rs", "rt", "rb", "rh", "m", "b", "bs", "s",
		"ss", "ng", "j", "ch", "k", "t", "p", "h",
	}
)

// Context holds the inverse romanization tables used to re-encode a
// rewritten jamo back into a component code. It is built once at
// package init and shared read-only by every Sentence and rule pass.
type Context struct {
	leadIndex  map[string]int
	vowelIndex map[string]int
	tailIndex  map[string]int
}

var defaultContext = &Context{
	leadIndex:  invert(leadRoman),
	vowelIndex: invert(vowelRoman),
	tailIndex:  invert(tailRoman),
}

// invert maps each romanization back to its component code. Duplicate
// strings resolve to the highest code, matching insertion order.
func invert(table []string) map[string]int {
	idx := make(map[string]int, len(table))
	for i, s := range table {
		idx[s] = i
	}
	return idx
}
