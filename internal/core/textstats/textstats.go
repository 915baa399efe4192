// Package textstats provides shared deterministic counting primitives over
// post text: lines, paragraphs, sentences, words, hashtags, numerals, and
// emoji. Every analyzer leans on these instead of rolling its own scans
package textstats

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	numericTokenRe = regexp.MustCompile(`[0-9]+(?:[.,][0-9]+)*%?`)
	hashtagRe      = regexp.MustCompile(`#[\p{L}\p{N}_]+`)
	listMarkerRe   = regexp.MustCompile(`^\s*(?:[-*\x{2022}]|[0-9]{1,3}[.)])\s+`)
	sentenceSplit  = regexp.MustCompile(`[.!?]+`)
)

// Lines splits on newlines, preserving empties so callers can see blank gaps
func Lines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}

// NonEmptyLines returns the lines with visible content
func NonEmptyLines(s string) []string {
	var out []string
	for _, ln := range Lines(s) {
		if strings.TrimSpace(ln) != "" {
			out = append(out, ln)
		}
	}
	return out
}

// ParagraphBreaks counts blank-line gaps between blocks of content
func ParagraphBreaks(s string) int {
	breaks := 0
	inBlank := false
	seenContent := false
	for _, ln := range Lines(s) {
		if strings.TrimSpace(ln) == "" {
			if seenContent {
				inBlank = true
			}
			continue
		}
		if inBlank {
			breaks++
			inBlank = false
		}
		seenContent = true
	}
	return breaks
}

// Sentences splits on terminal punctuation runs and drops empties
func Sentences(s string) []string {
	parts := sentenceSplit.Split(s, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, strings.TrimSpace(p))
		}
	}
	return out
}

// Words splits on whitespace
func Words(s string) []string { return strings.Fields(s) }

// Tokens splits folded text into lowercase word tokens, keeping apostrophes
// and hyphens inside tokens so contractions survive
func Tokens(folded string) []string {
	return strings.FieldsFunc(folded, func(r rune) bool {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return false
		}
		return r != '\'' && r != '-'
	})
}

// QuestionCount counts literal question marks
func QuestionCount(s string) int { return strings.Count(s, "?") }

// NumericTokens counts numeral groups like 90, 3.5, 1,000 or 90%
func NumericTokens(s string) int { return len(numericTokenRe.FindAllString(s, -1)) }

// Hashtags extracts all #tokens, case-folded, in order of appearance
func Hashtags(s string) []string {
	raw := hashtagRe.FindAllString(strings.ToLower(s), -1)
	return raw
}

// IsListLine reports whether a line opens with a bullet or numbered marker
func IsListLine(line string) bool { return listMarkerRe.MatchString(line) }

// ListLineCount counts list-marker lines in the post
func ListLineCount(s string) int {
	n := 0
	for _, ln := range Lines(s) {
		if IsListLine(ln) {
			n++
		}
	}
	return n
}

// CharCountNoSpace counts runes excluding whitespace
func CharCountNoSpace(s string) int {
	n := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}

// Syllables estimates syllables in a word via vowel grouping with a silent-e
// adjustment. Deterministic heuristic, never below 1 for a word with letters
func Syllables(word string) int {
	w := strings.ToLower(strings.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r)
	}))
	if w == "" {
		return 0
	}
	groups := 0
	prevVowel := false
	for _, r := range w {
		v := isVowel(r)
		if v && !prevVowel {
			groups++
		}
		prevVowel = v
	}
	if strings.HasSuffix(w, "e") && !strings.HasSuffix(w, "le") && groups > 1 {
		groups--
	}
	if groups < 1 {
		groups = 1
	}
	return groups
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
