package analyze

import (
	"fmt"

	"postpulse/internal/core/textstats"
)

// Emoji density thresholds over emoji-rune count divided by total rune count
const (
	emojiHighRatio    = 0.02
	emojiLowRatio     = 0.005
	emojiRunFlagLen   = 3 // consecutive emoji at or past this reads as clutter
	emojiLedLinesFlag = 5 // more lines than this opening with an emoji
)

// Emoji density labels
const (
	EmojiNone = "none"
	EmojiLow  = "low"
	EmojiGood = "good"
	EmojiHigh = "high"
)

// EmojiResult is qualitative only; the composite proxies its weight through
// the structure score
type EmojiResult struct {
	Density     string   `json:"density"`
	Count       int      `json:"count"`
	Ratio       float64  `json:"ratio"`
	Notes       []string `json:"notes,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

func (e *Engine) emoji(p post) EmojiResult {
	count := textstats.EmojiCount(p.raw)
	totalRunes := len([]rune(p.raw))

	res := EmojiResult{Count: count}
	if totalRunes > 0 {
		res.Ratio = float64(count) / float64(totalRunes)
	}

	switch {
	case count == 0:
		res.Density = EmojiNone
		res.Suggestions = append(res.Suggestions, "One or two emoji can add warmth and catch the eye in a feed")
	case res.Ratio > emojiHighRatio:
		res.Density = EmojiHigh
		res.Suggestions = append(res.Suggestions, "Cut back on emoji; heavy use reads as spam to many audiences")
	case res.Ratio < emojiLowRatio:
		res.Density = EmojiLow
	default:
		res.Density = EmojiGood
	}

	if run := textstats.LongestEmojiRun(p.raw); run >= emojiRunFlagLen {
		res.Notes = append(res.Notes, fmt.Sprintf("a run of %d consecutive emoji", run))
	}
	if led := textstats.LinesOpeningWithEmoji(p.raw); led > emojiLedLinesFlag {
		res.Notes = append(res.Notes, fmt.Sprintf("%d lines open with an emoji", led))
		res.Suggestions = append(res.Suggestions, "Vary your line openers; emoji bullets on every line lose their effect")
	}

	return res
}
