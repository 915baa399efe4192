package analyze

import (
	"fmt"
	"math"
	"strings"

	"postpulse/internal/core/textstats"
)

// Structure scoring constants
const (
	wallOfTextLineCount = 5 // more visible lines than this without breaks reads as a wall
	wallOfTextPenalty   = 30
	longLineChars       = 120
	longLinePenalty     = 5 // per offending line
	meanLineChars       = 80
	meanLinePenalty     = 10
	sentenceLenLimit    = 20 // average words per sentence above this gets penalized
	sentenceLenPerWord  = 2  // penalty per word over the limit
	listLinesWanted     = 3
	listBonus           = 10

	// display-only readability proxy scale: 100 - avgSentenceLen*4
	readabilityProxyScale = 4
)

// StructureResult reports formatting quality plus a display-only readability
// proxy derived from average sentence length
type StructureResult struct {
	Score            int      `json:"score"`
	ReadabilityScore int      `json:"readability_score"`
	Issues           []string `json:"issues,omitempty"`
	Suggestions      []string `json:"suggestions,omitempty"`
}

func (e *Engine) structure(p post) StructureResult {
	res := StructureResult{Score: 100}
	if strings.TrimSpace(p.raw) == "" {
		res.Score = 0
		res.ReadabilityScore = 0
		res.Suggestions = append(res.Suggestions, "Write something first, then shape it into short scannable blocks")
		return res
	}

	breaks := textstats.ParagraphBreaks(p.raw)
	if len(p.visible) > wallOfTextLineCount && breaks < 2 {
		res.Score -= wallOfTextPenalty
		res.Issues = append(res.Issues, "reads as a wall of text")
		res.Suggestions = append(res.Suggestions, "Break the post into short paragraphs separated by blank lines")
	}

	longLines := 0
	totalLen := 0
	for _, ln := range p.visible {
		n := len([]rune(ln))
		totalLen += n
		if n > longLineChars {
			longLines++
		}
	}
	if longLines > 0 {
		res.Score -= longLines * longLinePenalty
		res.Issues = append(res.Issues, fmt.Sprintf("%d line(s) longer than %d characters", longLines, longLineChars))
	}
	if len(p.visible) > 0 && totalLen/len(p.visible) > meanLineChars {
		res.Score -= meanLinePenalty
		res.Suggestions = append(res.Suggestions, "Shorten your lines; mobile readers skim narrow text")
	}

	avgSentenceLen := averageWordsPerSentence(p.raw)
	if avgSentenceLen > sentenceLenLimit {
		over := int(math.Round(avgSentenceLen)) - sentenceLenLimit
		res.Score -= over * sentenceLenPerWord
		res.Suggestions = append(res.Suggestions, "Split long sentences; aim for under 20 words per sentence")
	}

	if textstats.ListLineCount(p.raw) >= listLinesWanted {
		res.Score += listBonus
	} else {
		res.Suggestions = append(res.Suggestions, "Consider a bulleted or numbered list to make key points scannable")
	}

	res.Score = clampScore(res.Score)
	res.ReadabilityScore = clampScore(100 - int(math.Round(avgSentenceLen))*readabilityProxyScale)
	return res
}

func averageWordsPerSentence(text string) float64 {
	sentences := textstats.Sentences(text)
	if len(sentences) == 0 {
		return 0
	}
	words := 0
	for _, s := range sentences {
		words += len(textstats.Words(s))
	}
	return float64(words) / float64(len(sentences))
}
