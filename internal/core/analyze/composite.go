package analyze

import "math"

// Composite weights over the eight contributing analyzer scores. The emoji
// weight is intentionally sourced from the structure score: the original
// system shipped that proxy and downstream consumers expect it, so it is
// reproduced here rather than wired to the emoji analyzer
const (
	weightHook         = 0.20
	weightStructure    = 0.15
	weightCTA          = 0.15
	weightHashtags     = 0.10
	weightEmojiProxy   = 0.05
	weightEngagement   = 0.15
	weightStorytelling = 0.10
	weightSentiment    = 0.05
	weightReadability  = 0.05
)

// Explanation tier thresholds
const (
	tierExceptional = 85
	tierStrong      = 75
	tierGood        = 60
	tierFair        = 45
)

// Subscores carries the analyzer scores the aggregator combines
type Subscores struct {
	Hook         int
	Structure    int
	CTA          int
	Hashtags     int
	Engagement   int
	Storytelling int
	Sentiment    int
	Readability  int
}

// CompositeScore is the single 0-100 virality score with a tiered explanation
// and the display breakdown
type CompositeScore struct {
	Score       int            `json:"score"`
	Explanation string         `json:"explanation"`
	Breakdown   map[string]int `json:"breakdown"`
}

// Composite applies the fixed weights and picks the explanation tier
func Composite(s Subscores) CompositeScore {
	weighted := weightHook*float64(s.Hook) +
		weightStructure*float64(s.Structure) +
		weightCTA*float64(s.CTA) +
		weightHashtags*float64(s.Hashtags) +
		weightEmojiProxy*float64(s.Structure) + // emoji proxied by structure
		weightEngagement*float64(s.Engagement) +
		weightStorytelling*float64(s.Storytelling) +
		weightSentiment*float64(s.Sentiment) +
		weightReadability*float64(s.Readability)

	score := clampScore(int(math.Round(weighted)))

	return CompositeScore{
		Score:       score,
		Explanation: explanationFor(score),
		Breakdown: map[string]int{
			"hook":      s.Hook,
			"structure": s.Structure,
			"cta":       s.CTA,
			"hashtags":  s.Hashtags,
			"emoji":     s.Structure,
		},
	}
}

func explanationFor(score int) string {
	switch {
	case score > tierExceptional:
		return "Exceptional post. The hook grabs attention, the structure is scannable, and the call to action lands. Posts in this band routinely outperform their account's baseline several times over."
	case score > tierStrong:
		return "Strong post. Most of the fundamentals are in place; tightening the weakest one or two areas below could push it into the top band."
	case score > tierGood:
		return "Good post with clear room to improve. It will likely perform around or slightly above baseline; the suggestions highlight the highest-leverage fixes."
	case score > tierFair:
		return "Average post. Readers who see it may engage, but nothing in it actively earns reach. Work through the suggestions starting with the hook."
	default:
		return "This post needs work before publishing. It is missing most of the patterns that earn attention: a strong hook, a scannable structure, and a reason for readers to respond."
	}
}
