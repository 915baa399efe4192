package analyze

import (
	"sort"
	"strings"

	"postpulse/internal/core/lexicon"
	"postpulse/internal/core/textstats"
)

// Topic constants
const (
	topicMinTokenLen      = 3  // tokens must be longer than this
	topicDetectMin        = 2  // lexicon matches needed to call a topic detected
	topicKeywordCount     = 10
	topicDiversityPerHit  = 15
	topicDiversityFloor   = 30  // no topics at all still scores this
	topicDiversityCeiling = 100 // more than topicDiversityMany topics pins to this
	topicDiversityMany    = 5
)

// TopicResult reports detected subject categories and the most frequent
// meaningful keywords
type TopicResult struct {
	PrimaryTopic   string   `json:"primary_topic"`
	DetectedTopics []string `json:"detected_topics,omitempty"`
	Keywords       []string `json:"keywords,omitempty"`
	DiversityScore int      `json:"diversity_score"`
}

func (e *Engine) topics(p post) TopicResult {
	stop := e.pack.Category(lexicon.StopWords)

	freq := make(map[string]int)
	var ordered []string // first-seen order for deterministic tie handling
	for _, tok := range textstats.Tokens(p.folded) {
		if len(tok) <= topicMinTokenLen {
			continue
		}
		if stop.ContainsToken(tok) {
			continue
		}
		if _, seen := freq[tok]; !seen {
			ordered = append(ordered, tok)
		}
		freq[tok]++
	}

	res := TopicResult{PrimaryTopic: "general"}

	best := 0
	for _, name := range lexicon.TopicNames {
		cat := e.pack.Category(name)
		score := 0
		for tok, n := range freq {
			if cat.ContainsToken(tok) {
				score += n
			}
		}
		if score < topicDetectMin {
			continue
		}
		short := strings.TrimPrefix(name, "topic_")
		res.DetectedTopics = append(res.DetectedTopics, short)
		if score > best {
			best = score
			res.PrimaryTopic = short
		}
	}

	res.Keywords = topKeywords(freq, ordered, topicKeywordCount)

	n := len(res.DetectedTopics)
	switch {
	case n == 0:
		res.DiversityScore = topicDiversityFloor
	case n > topicDiversityMany:
		res.DiversityScore = topicDiversityCeiling
	default:
		res.DiversityScore = minInt(100, n*topicDiversityPerHit)
	}

	return res
}

// topKeywords ranks by raw frequency; frequency ties keep first-seen order so
// identical input always yields identical output
func topKeywords(freq map[string]int, ordered []string, limit int) []string {
	sort.SliceStable(ordered, func(i, j int) bool {
		return freq[ordered[i]] > freq[ordered[j]]
	})
	if len(ordered) > limit {
		ordered = ordered[:limit]
	}
	out := make([]string, len(ordered))
	copy(out, ordered)
	return out
}
