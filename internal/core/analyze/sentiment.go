package analyze

import (
	"math"
	"strings"

	"postpulse/internal/core/lexicon"
)

// Sentiment constants
const (
	sentimentNeutral    = 50
	sentimentPosWeight  = 50
	sentimentNegWeight  = 30
	sentimentPosCutoff  = 60 // above this the label is positive
	sentimentNegCutoff  = 40 // below this the label is negative
	toneDetectMin       = 2  // matches needed before a tone counts as detected
	balancePersonalMin  = 0.6
	balanceProfessional = 0.4
)

// Sentiment labels and balance classifications
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"

	BalancePersonal     = "personal"
	BalanceProfessional = "professional"
	BalanceMixed        = "balanced"
)

// SentimentResult reports emotional polarity, detected tones, and the
// personal-versus-professional balance of the writing
type SentimentResult struct {
	Score         int      `json:"score"`
	Label         string   `json:"label"`
	PrimaryTone   string   `json:"primary_tone"`
	DetectedTones []string `json:"detected_tones,omitempty"`
	Balance       string   `json:"balance"`
	Insights      []string `json:"insights,omitempty"`
	Suggestions   []string `json:"suggestions,omitempty"`
}

func (e *Engine) sentiment(p post) SentimentResult {
	pos := e.pack.Category(lexicon.SentimentPositive).Count(p.folded)
	neg := e.pack.Category(lexicon.SentimentNegative).Count(p.folded)

	score := sentimentNeutral
	if pos+neg > 0 {
		ratio := float64(pos) / float64(pos+neg)
		score = int(math.Round(float64(sentimentNeutral) + ratio*sentimentPosWeight - (1-ratio)*sentimentNegWeight))
	}
	score = clampScore(score)

	res := SentimentResult{Score: score}

	switch {
	case score > sentimentPosCutoff:
		res.Label = SentimentPositive
	case score < sentimentNegCutoff:
		res.Label = SentimentNegative
	default:
		res.Label = SentimentNeutral
	}

	// tone detection over the eight tone lexicons; precedence order breaks ties
	toneCounts := make(map[string]int, len(lexicon.ToneNames))
	primary := "neutral"
	best := 0
	for _, name := range lexicon.ToneNames {
		n := e.pack.Category(name).Count(p.folded)
		toneCounts[name] = n
		if n < toneDetectMin {
			continue
		}
		short := strings.TrimPrefix(name, "tone_")
		res.DetectedTones = append(res.DetectedTones, short)
		if n > best {
			best = n
			primary = short
		}
	}
	res.PrimaryTone = primary

	personal := toneCounts["tone_personal"]
	professional := toneCounts["tone_professional"]
	res.Balance = classifyBalance(personal, professional)

	if res.Label == SentimentNegative {
		res.Suggestions = append(res.Suggestions, "Reframe the struggle around what it taught you; pure negativity suppresses shares")
	}
	if toneCounts["tone_conversational"] < toneDetectMin && personal < toneDetectMin {
		res.Suggestions = append(res.Suggestions, "Add \"you\" and \"we\" language so the post reads like a conversation, not a press release")
	}
	if res.Label == SentimentPositive && len(res.DetectedTones) > 0 {
		res.Insights = append(res.Insights, "positive tone with a clear voice travels well")
	}

	return res
}

func classifyBalance(personal, professional int) string {
	total := personal + professional
	if total == 0 {
		return BalanceMixed
	}
	ratio := float64(personal) / float64(total)
	switch {
	case ratio > balancePersonalMin:
		return BalancePersonal
	case ratio < balanceProfessional:
		return BalanceProfessional
	default:
		return BalanceMixed
	}
}
