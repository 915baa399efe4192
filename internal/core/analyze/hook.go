package analyze

import (
	"fmt"
	"strings"

	"postpulse/internal/core/lexicon"
	"postpulse/internal/core/textnorm"
	"postpulse/internal/core/textstats"
)

// Hook scoring constants. Each is a named tunable so tests can pin exact
// values instead of re-deriving them from the additive chain
const (
	hookLenShortMax = 30  // below this the opener is too thin
	hookLenIdealMax = 100 // 30..100 chars is the sweet spot
	hookLenLongMax  = 220 // beyond this the opener rambles

	hookPtsEmptyish = 0
	hookPtsShort    = 10
	hookPtsIdeal    = 25
	hookPtsLong     = 15
	hookPtsOverlong = 5

	hookPtsPerQuestion = 10
	hookQuestionCap    = 20

	hookPtsPerPowerWord = 5
	hookPowerWordCap    = 15
	hookPowerWordsShown = 3

	hookPtsPerNumber = 6
	hookNumberCap    = 12

	hookPtsPerContrast = 4
	hookContrastCap    = 8

	hookStoryOpenerBonus   = 6
	hookControversyBonus   = 7
	hookFirstPersonBonus   = 5
	hookCuriosityBonus     = 6
	hookStrongStarterBonus = 4

	hookWeakThreshold   = 50
	hookStrongThreshold = 70
)

// HookResult reports how well the opening lines grab attention
type HookResult struct {
	Score       int      `json:"score"`
	HookText    string   `json:"hook_text"`
	Patterns    []string `json:"patterns,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// hook scores only the first two lines of the post
func (e *Engine) hook(p post) HookResult {
	hookText := hookLines(p.raw)
	trimmed := strings.TrimSpace(hookText)
	if trimmed == "" {
		return HookResult{
			Score:       0,
			Suggestions: []string{"Start with a hook: ask a question, share a number, or open a story in your first line"},
		}
	}

	res := HookResult{HookText: hookText}
	folded := textnorm.Fold(hookText)

	power := e.pack.Category(lexicon.PowerWords).Match(folded)
	questions := textstats.QuestionCount(hookText)
	numbers := textstats.NumericTokens(hookText)
	contrast := e.pack.Category(lexicon.ContrastPhrases).Count(folded)

	rules := []scoreRule{
		{tag: "length", points: func() int { return hookLengthPoints(len(trimmed)) }},
		{tag: "question", points: func() int { return capped(questions, hookPtsPerQuestion, hookQuestionCap) }},
		{tag: "power_words", points: func() int { return capped(power.Distinct(), hookPtsPerPowerWord, hookPowerWordCap) }},
		{tag: "numbers", points: func() int { return capped(numbers, hookPtsPerNumber, hookNumberCap) }},
		{tag: "contrast", points: func() int { return capped(contrast, hookPtsPerContrast, hookContrastCap) }},
		{tag: "story_opener", points: func() int {
			if e.pack.Category(lexicon.StoryOpeners).Any(folded) {
				return hookStoryOpenerBonus
			}
			return 0
		}},
		{tag: "controversy", points: func() int {
			if e.pack.Category(lexicon.ControversyWords).Any(folded) {
				return hookControversyBonus
			}
			return 0
		}},
		{tag: "first_person", points: func() int {
			if hasFirstPerson(folded) {
				return hookFirstPersonBonus
			}
			return 0
		}},
		{tag: "curiosity_gap", points: func() int {
			if e.pack.Category(lexicon.CuriosityWords).Any(folded) {
				return hookCuriosityBonus
			}
			return 0
		}},
		{tag: "strong_starter", points: func() int {
			if e.startsStrong(p) {
				return hookStrongStarterBonus
			}
			return 0
		}},
	}

	total := foldRules(rules, func(tag string, _ int) {
		if tag == "length" {
			return // length always contributes; not a pattern
		}
		if tag == "power_words" {
			shown := power.Terms
			if len(shown) > hookPowerWordsShown {
				shown = shown[:hookPowerWordsShown]
			}
			res.Patterns = append(res.Patterns, fmt.Sprintf("power words: %s", strings.Join(shown, ", ")))
			return
		}
		res.Patterns = append(res.Patterns, tag)
	})

	res.Score = clampScore(total)

	if res.Score < hookWeakThreshold {
		res.Suggestions = append(res.Suggestions, weakHookSuggestion(questions, power.Distinct(), numbers, contrast))
	} else if res.Score >= hookStrongThreshold {
		res.Patterns = append(res.Patterns, "strong hook")
	}

	return res
}

// hookLines returns the first two raw lines joined; the hook is judged on
// what a reader sees before the fold
func hookLines(text string) string {
	lines := textstats.Lines(text)
	if len(lines) == 0 {
		return ""
	}
	if len(lines) == 1 {
		return lines[0]
	}
	return strings.TrimRight(lines[0]+"\n"+lines[1], "\n")
}

func hookLengthPoints(n int) int {
	switch {
	case n == 0:
		return hookPtsEmptyish
	case n < hookLenShortMax:
		return hookPtsShort
	case n <= hookLenIdealMax:
		return hookPtsIdeal
	case n <= hookLenLongMax:
		return hookPtsLong
	default:
		return hookPtsOverlong
	}
}

// hasFirstPerson checks "i" or "my" as a standalone token anywhere in the hook
func hasFirstPerson(folded string) bool {
	for _, tok := range textstats.Tokens(folded) {
		if tok == "i" || tok == "my" {
			return true
		}
	}
	return false
}

// startsStrong checks the very first word of the first line against the
// strong-starter set
func (e *Engine) startsStrong(p post) bool {
	if len(p.foldedLines) == 0 {
		return false
	}
	toks := textstats.Tokens(p.foldedLines[0])
	if len(toks) == 0 {
		return false
	}
	return e.pack.Category(lexicon.StrongStarters).ContainsToken(toks[0])
}

// weakHookSuggestion names up to two missing ingredient categories
func weakHookSuggestion(questions, powerWords, numbers, contrast int) string {
	var missing []string
	if questions == 0 {
		missing = append(missing, "a question")
	}
	if powerWords == 0 {
		missing = append(missing, "power words")
	}
	if numbers == 0 {
		missing = append(missing, "a specific number")
	}
	if contrast == 0 {
		missing = append(missing, "a contrast")
	}
	if len(missing) > 2 {
		missing = missing[:2]
	}
	if len(missing) == 0 {
		return "Sharpen the first line so the strongest idea leads"
	}
	return fmt.Sprintf("Strengthen the opening lines by adding %s", strings.Join(missing, " or "))
}
