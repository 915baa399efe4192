// Package predict maps an analysis record onto concrete engagement estimates:
// reach, per-metric ranges with confidence, performance ratios, and
// plain-language insights. Purely functional; no randomness anywhere
package predict

import (
	"postpulse/internal/core/analyze"
	"postpulse/internal/core/textstats"
)

// Features is the flattened numeric/boolean view the estimators consume,
// derived solely from an analysis record and recomputed each call
type Features struct {
	ViralityScore     int  `json:"virality_score"`
	EngagementScore   int  `json:"engagement_score"`
	HookScore         int  `json:"hook_score"`
	StorytellingScore int  `json:"storytelling_score"`
	HashtagScore      int  `json:"hashtag_score"`
	ReadabilityScore  int  `json:"readability_score"`
	WordCount         int  `json:"word_count"`
	HasQuestion       bool `json:"has_question"`
	HasNumbers        bool `json:"has_numbers"`
	HasPersonalStory  bool `json:"has_personal_story"`
	HasControversy    bool `json:"has_controversy"`
	HashtagCount      int  `json:"hashtag_count"`
	EmojiCount        int  `json:"emoji_count"`
}

// FeaturesFrom flattens a record into the estimator view
func FeaturesFrom(rec analyze.Record) Features {
	return Features{
		ViralityScore:     rec.Composite.Score,
		EngagementScore:   rec.Engagement.Score,
		HookScore:         rec.Hook.Score,
		StorytellingScore: rec.Storytelling.Score,
		HashtagScore:      rec.Hashtags.Score,
		ReadabilityScore:  rec.Readability.FleschScore,
		WordCount:         len(textstats.Words(rec.Text)),
		HasQuestion:       textstats.QuestionCount(rec.Text) > 0,
		HasNumbers:        textstats.NumericTokens(rec.Text) > 0,
		HasPersonalStory:  rec.Storytelling.HasPersonalStory,
		HasControversy:    hasTrigger(rec.Engagement.Triggers, "controversy"),
		HashtagCount:      rec.Hashtags.Count,
		EmojiCount:        rec.Emoji.Count,
	}
}

func hasTrigger(triggers []string, name string) bool {
	for _, t := range triggers {
		if t == name {
			return true
		}
	}
	return false
}
