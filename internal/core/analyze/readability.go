package analyze

import (
	"math"

	"postpulse/internal/core/lexicon"
	"postpulse/internal/core/textstats"
)

// Readability constants. The ease formula is the Flesch reading-ease shape
// with the standard coefficients
const (
	fleschBase          = 206.835
	fleschSentenceCoeff = 1.015
	fleschSyllableCoeff = 84.6

	varietyScale = 150 // coefficient of variation scaled into a 0..100-ish band

	complexityLongSentenceWords = 20
	complexityLongSentencePts   = 5
	complexityLongWordChars     = 7
	complexityLongWordScale     = 50 // applied to the long-word fraction
	complexityPassivePts        = 3  // per auxiliary occurrence
)

// Readability levels from easiest to hardest
const (
	ReadVeryEasy        = "very_easy"
	ReadEasy            = "easy"
	ReadFairlyEasy      = "fairly_easy"
	ReadStandard        = "standard"
	ReadFairlyDifficult = "fairly_difficult"
	ReadDifficult       = "difficult"
	ReadVeryDifficult   = "very_difficult"
)

// ReadabilityResult reports ease, variety, and complexity measures
type ReadabilityResult struct {
	FleschScore         int      `json:"flesch_score"`
	Level               string   `json:"level"`
	SentenceCount       int      `json:"sentence_count"`
	WordCount           int      `json:"word_count"`
	CharCount           int      `json:"char_count"`
	AvgWordsPerSentence float64  `json:"avg_words_per_sentence"`
	AvgWordLength       float64  `json:"avg_word_length"`
	AvgSyllablesPerWord float64  `json:"avg_syllables_per_word"`
	VarietyScore        int      `json:"variety_score"`
	ComplexityScore     int      `json:"complexity_score"`
	Insights            []string `json:"insights,omitempty"`
}

func (e *Engine) readability(p post) ReadabilityResult {
	sentences := textstats.Sentences(p.raw)
	words := textstats.Words(p.raw)

	if len(sentences) == 0 || len(words) == 0 {
		return ReadabilityResult{
			Level:    ReadVeryDifficult,
			Insights: []string{"not enough text to measure readability"},
		}
	}

	res := ReadabilityResult{
		SentenceCount: len(sentences),
		WordCount:     len(words),
		CharCount:     textstats.CharCountNoSpace(p.raw),
	}

	res.AvgWordsPerSentence = round2(float64(res.WordCount) / float64(res.SentenceCount))
	res.AvgWordLength = round2(float64(res.CharCount) / float64(res.WordCount))

	syllables := 0
	longWords := 0
	for _, w := range words {
		syllables += textstats.Syllables(w)
		if len([]rune(w)) > complexityLongWordChars {
			longWords++
		}
	}
	res.AvgSyllablesPerWord = round2(float64(syllables) / float64(res.WordCount))

	ease := fleschBase -
		fleschSentenceCoeff*res.AvgWordsPerSentence -
		fleschSyllableCoeff*res.AvgSyllablesPerWord
	res.FleschScore = clampScore(int(math.Round(ease)))
	res.Level = readabilityLevel(res.FleschScore)

	res.VarietyScore = sentenceVariety(sentences)
	res.ComplexityScore = e.complexity(p, sentences, longWords, res.WordCount)

	switch {
	case res.FleschScore >= 80:
		res.Insights = append(res.Insights, "very easy to read; great for a broad feed audience")
	case res.FleschScore < 30:
		res.Insights = append(res.Insights, "dense text; shorter words and sentences would widen the audience")
	}
	return res
}

func readabilityLevel(score int) string {
	switch {
	case score >= 80:
		return ReadVeryEasy
	case score >= 70:
		return ReadEasy
	case score >= 60:
		return ReadFairlyEasy
	case score >= 50:
		return ReadStandard
	case score >= 30:
		return ReadFairlyDifficult
	case score >= 10:
		return ReadDifficult
	default:
		return ReadVeryDifficult
	}
}

// sentenceVariety scales the coefficient of variation of per-sentence word
// counts; uniform sentence lengths read as monotone
func sentenceVariety(sentences []string) int {
	if len(sentences) < 2 {
		return 0
	}
	counts := make([]float64, len(sentences))
	mean := 0.0
	for i, s := range sentences {
		counts[i] = float64(len(textstats.Words(s)))
		mean += counts[i]
	}
	mean /= float64(len(counts))
	if mean == 0 {
		return 0
	}
	variance := 0.0
	for _, c := range counts {
		d := c - mean
		variance += d * d
	}
	variance /= float64(len(counts))
	cv := math.Sqrt(variance) / mean
	return minInt(100, int(math.Round(cv*varietyScale)))
}

func (e *Engine) complexity(p post, sentences []string, longWords, wordCount int) int {
	score := 0
	for _, s := range sentences {
		if len(textstats.Words(s)) > complexityLongSentenceWords {
			score += complexityLongSentencePts
		}
	}
	if wordCount > 0 {
		frac := float64(longWords) / float64(wordCount)
		score += int(math.Round(frac * complexityLongWordScale))
	}
	passives := e.pack.Category(lexicon.PassiveAuxiliaries).Count(p.folded)
	score += passives * complexityPassivePts
	return minInt(100, score)
}

func round2(f float64) float64 { return math.Round(f*100) / 100 }
