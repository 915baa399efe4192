package analyze

import (
	"fmt"

	"postpulse/internal/core/lexicon"
	"postpulse/internal/core/textstats"
)

// Hashtag scoring constants
const (
	hashtagBaseScore      = 100
	noHashtagScore        = 30
	hashtagIdealMin       = 3
	hashtagIdealMax       = 5
	excessHashtagPenalty  = 10 // per tag beyond the ideal max
	duplicateTagPenalty   = 15
	genericTagThreshold   = 2 // more generic tags than this gets penalized
	genericTagPenaltyEach = 5
	tagPlacementPenalty   = 10
)

// HashtagResult reports hashtag usage quality
type HashtagResult struct {
	Score           int      `json:"score"`
	Tags            []string `json:"tags,omitempty"`
	Count           int      `json:"count"`
	Issues          []string `json:"issues,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}

func (e *Engine) hashtags(p post) HashtagResult {
	tags := textstats.Hashtags(p.raw)
	res := HashtagResult{Score: hashtagBaseScore, Tags: tags, Count: len(tags)}

	if len(tags) == 0 {
		res.Score = noHashtagScore
		res.Issues = append(res.Issues, "no hashtags")
		res.Recommendations = append(res.Recommendations,
			fmt.Sprintf("Add %d-%d specific hashtags so the post surfaces in topic feeds", hashtagIdealMin, hashtagIdealMax))
		return res
	}

	if len(tags) > hashtagIdealMax {
		res.Score -= (len(tags) - hashtagIdealMax) * excessHashtagPenalty
		res.Issues = append(res.Issues, fmt.Sprintf("%d hashtags is too many; keep it to %d-%d", len(tags), hashtagIdealMin, hashtagIdealMax))
	}

	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		seen[t] = struct{}{}
	}
	if len(seen) < len(tags) {
		res.Score -= duplicateTagPenalty
		res.Issues = append(res.Issues, "duplicate hashtags")
	}

	// generic matching is intentionally substring-based so #motivationmonday
	// still counts as generic
	generic := e.pack.Category(lexicon.GenericHashtags)
	genericCount := 0
	for _, t := range tags {
		if generic.Any(t) {
			genericCount++
		}
	}
	if genericCount > genericTagThreshold {
		res.Score -= genericCount * genericTagPenaltyEach
		res.Issues = append(res.Issues, "too many generic hashtags; niche tags reach the right readers")
	}

	if !allTagsTrailing(p, len(tags)) {
		res.Score -= tagPlacementPenalty
		res.Recommendations = append(res.Recommendations, "Group all hashtags on the final line instead of scattering them through the text")
	}

	res.Score = clampScore(res.Score)
	return res
}

// allTagsTrailing reports whether every hashtag occurrence sits on the last
// visible line
func allTagsTrailing(p post, total int) bool {
	if len(p.visible) == 0 {
		return false
	}
	last := p.visible[len(p.visible)-1]
	return len(textstats.Hashtags(last)) == total
}
