package lexicon

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Matches is the result of scanning a folded haystack against one category
type Matches struct {
	Terms []string // distinct matched terms in pack order
	Count int      // total occurrences across all terms
}

// Any reports whether at least one term matched
func (m Matches) Any() bool { return m.Count > 0 }

// Distinct returns the number of distinct matched terms
func (m Matches) Distinct() int { return len(m.Terms) }

// Match scans a case-folded haystack and returns every term occurrence.
// Haystacks must already be folded via textnorm.Fold; terms are stored folded
func (c Category) Match(folded string) Matches {
	var out Matches
	if folded == "" || len(c.Terms) == 0 {
		return out
	}
	for _, term := range c.Terms {
		n := c.occurrences(folded, term)
		if n == 0 {
			continue
		}
		out.Count += n
		out.Terms = append(out.Terms, term)
	}
	return out
}

// Count returns the total occurrence count without collecting terms
func (c Category) Count(folded string) int {
	total := 0
	for _, term := range c.Terms {
		total += c.occurrences(folded, term)
	}
	return total
}

// Any reports whether any term occurs in the folded haystack
func (c Category) Any(folded string) bool {
	for _, term := range c.Terms {
		if c.occurrences(folded, term) > 0 {
			return true
		}
	}
	return false
}

// ContainsToken reports whether tok is itself a term (exact set lookup).
// Used by token-stream analyzers that have already split the text
func (c Category) ContainsToken(tok string) bool {
	_, ok := c.set[tok]
	return ok
}

func (c Category) occurrences(haystack, term string) int {
	switch c.Mode {
	case ModeSubstring:
		return strings.Count(haystack, term)
	default:
		return countWordOccurrences(haystack, term)
	}
}

// countWordOccurrences counts occurrences of term bounded by non-word runes.
// Works for single words and multi-word phrases alike
func countWordOccurrences(haystack, term string) int {
	n := 0
	off := 0
	for {
		i := strings.Index(haystack[off:], term)
		if i < 0 {
			return n
		}
		start := off + i
		end := start + len(term)
		if boundaryOK(haystack, start, end) {
			n++
		}
		off = start + 1
	}
}

// boundaryOK reports whether [start,end) sits on word boundaries
func boundaryOK(s string, start, end int) bool {
	var prev, next rune
	if start > 0 {
		prev, _ = utf8.DecodeLastRuneInString(s[:start])
	}
	if end < len(s) {
		next, _ = utf8.DecodeRuneInString(s[end:])
	}
	return !isWord(prev) && !isWord(next)
}

// isWord reports whether r is a word character for boundary checks.
// Letters, numbers, combining marks, and connector punctuation count;
// hyphen and other punctuation do not
func isWord(r rune) bool {
	if r == utf8.RuneError || r == 0 {
		return false
	}
	return unicode.IsLetter(r) ||
		unicode.IsNumber(r) ||
		unicode.In(r, unicode.Mn, unicode.Pc)
}
