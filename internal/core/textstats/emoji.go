package textstats

import "strings"

// emoji detection uses explicit rune ranges; whatever sits in these blocks is
// treated as an emoji character for density and run analysis
var emojiRanges = [][2]rune{
	{0x1F300, 0x1F5FF}, // symbols and pictographs
	{0x1F600, 0x1F64F}, // emoticons
	{0x1F680, 0x1F6FF}, // transport and map
	{0x1F900, 0x1F9FF}, // supplemental symbols
	{0x1FA70, 0x1FAFF}, // extended-A
	{0x2600, 0x26FF},   // misc symbols
	{0x2700, 0x27BF},   // dingbats
	{0x1F1E6, 0x1F1FF}, // regional indicators
	{0x2B00, 0x2BFF},   // arrows and stars (includes star emoji)
	{0xFE0F, 0xFE0F},   // variation selector used by emoji presentation
}

// IsEmoji reports whether r falls in one of the tracked emoji blocks
func IsEmoji(r rune) bool {
	for _, rng := range emojiRanges {
		if r >= rng[0] && r <= rng[1] {
			return true
		}
	}
	return false
}

// EmojiCount counts emoji runes in s
func EmojiCount(s string) int {
	n := 0
	for _, r := range s {
		if IsEmoji(r) {
			n++
		}
	}
	return n
}

// LongestEmojiRun returns the longest run of consecutive emoji runes,
// ignoring nothing: a single space breaks the run
func LongestEmojiRun(s string) int {
	longest, cur := 0, 0
	for _, r := range s {
		if IsEmoji(r) {
			cur++
			if cur > longest {
				longest = cur
			}
			continue
		}
		cur = 0
	}
	return longest
}

// LinesOpeningWithEmoji counts lines whose first visible rune is an emoji
func LinesOpeningWithEmoji(s string) int {
	n := 0
	for _, ln := range Lines(s) {
		trimmed := strings.TrimSpace(ln)
		for _, r := range trimmed {
			if IsEmoji(r) {
				n++
			}
			break
		}
	}
	return n
}
