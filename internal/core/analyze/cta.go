package analyze

import (
	"strings"

	"postpulse/internal/core/lexicon"
)

// CTA scoring constants. Placement matters more than presence: a call to
// action buried mid-post converts worse than one closing the post
const (
	ctaMissingScore = 20
	ctaBaseScore    = 50
	ctaEndBonus     = 45
	ctaEarlyBonus   = 20
	ctaTailLines    = 3
)

// CTAResult reports call-to-action presence and placement
type CTAResult struct {
	Score       int      `json:"score"`
	Exists      bool     `json:"exists"`
	InClosing   bool     `json:"in_closing"`
	Phrases     []string `json:"phrases,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

func (e *Engine) cta(p post) CTAResult {
	cat := e.pack.Category(lexicon.CTAPhrases)
	m := cat.Match(p.folded)
	if !m.Any() {
		return CTAResult{
			Score: ctaMissingScore,
			Suggestions: []string{
				"End with a call to action: ask a question or invite readers to comment",
				"Even a simple \"What do you think?\" doubles the odds of a reply",
			},
		}
	}

	res := CTAResult{Score: ctaBaseScore, Exists: true, Phrases: m.Terms}

	if cat.Any(closingLines(p)) {
		res.Score += ctaEndBonus
		res.InClosing = true
	} else {
		res.Score += ctaEarlyBonus
		res.Suggestions = append(res.Suggestions, "Move your call to action to the final lines where readers decide whether to engage")
	}

	res.Score = clampScore(res.Score)
	return res
}

// closingLines joins the last visible lines of the post (folded)
func closingLines(p post) string {
	n := len(p.foldedLines)
	if n == 0 {
		return ""
	}
	start := maxInt(0, n-ctaTailLines)
	return strings.Join(p.foldedLines[start:], "\n")
}
