package analyze

import (
	"postpulse/internal/core/lexicon"
	"postpulse/internal/core/textstats"
)

// Engagement trigger scoring: per-unit points and cap per category. Eleven
// categories feed the overall score; every constant is named so tests can pin
// exact contributions
const (
	engQuestionPts = 5
	engQuestionCap = 20

	engControversyPts = 5
	engControversyCap = 15

	engNumberPts = 4
	engNumberCap = 12

	engListPts = 4
	engListCap = 12

	engDirectPts = 3
	engDirectCap = 12

	engUrgencyPts = 4
	engUrgencyCap = 12

	engSocialProofPts = 4
	engSocialProofCap = 12

	engCuriosityPts = 4
	engCuriosityCap = 12

	engEmotionPts = 3
	engEmotionCap = 12

	engActionPts = 2
	engActionCap = 10

	engPersonalPts = 2
	engPersonalCap = 10

	engDirectAddressMin = 2 // direct-address hits below this draws a suggestion
	engPersonalVoiceMin = 2
	engListSentenceMin  = 6  // suggest a list once the post runs this many sentences
	engWeakOverall      = 50 // below this, curiosity absence is called out
)

// Engagement potential tiers
const (
	PotentialLow      = "low"
	PotentialMedium   = "medium"
	PotentialHigh     = "high"
	PotentialVeryHigh = "very_high"
)

// EngagementResult reports interaction-trigger density and tiered potential
type EngagementResult struct {
	Score       int      `json:"score"`
	Potential   string   `json:"potential"`
	Triggers    []string `json:"triggers,omitempty"`
	Insights    []string `json:"insights,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

func (e *Engine) engagement(p post) EngagementResult {
	questions := textstats.QuestionCount(p.raw)
	numbers := textstats.NumericTokens(p.raw)
	lists := textstats.ListLineCount(p.raw)
	controversy := e.pack.Category(lexicon.ControversyWords).Count(p.folded)
	direct := e.pack.Category(lexicon.DirectAddress).Count(p.folded)
	urgency := e.pack.Category(lexicon.UrgencyWords).Count(p.folded)
	socialProof := e.pack.Category(lexicon.SocialProofWords).Count(p.folded)
	curiosity := e.pack.Category(lexicon.CuriosityWords).Count(p.folded)
	emotion := e.pack.Category(lexicon.EmotionWords).Count(p.folded)
	action := e.pack.Category(lexicon.ActionVerbs).Count(p.folded)
	personal := e.pack.Category(lexicon.PersonalPronouns).Count(p.folded)

	res := EngagementResult{}

	rules := []scoreRule{
		{tag: "questions", points: func() int { return capped(questions, engQuestionPts, engQuestionCap) }},
		{tag: "controversy", points: func() int { return capped(controversy, engControversyPts, engControversyCap) }},
		{tag: "numbers", points: func() int { return capped(numbers, engNumberPts, engNumberCap) }},
		{tag: "lists", points: func() int { return capped(lists, engListPts, engListCap) }},
		{tag: "direct_address", points: func() int { return capped(direct, engDirectPts, engDirectCap) }},
		{tag: "urgency", points: func() int { return capped(urgency, engUrgencyPts, engUrgencyCap) }},
		{tag: "social_proof", points: func() int { return capped(socialProof, engSocialProofPts, engSocialProofCap) }},
		{tag: "curiosity", points: func() int { return capped(curiosity, engCuriosityPts, engCuriosityCap) }},
		{tag: "emotion", points: func() int { return capped(emotion, engEmotionPts, engEmotionCap) }},
		{tag: "action_verbs", points: func() int { return capped(action, engActionPts, engActionCap) }},
		{tag: "personal_voice", points: func() int { return capped(personal, engPersonalPts, engPersonalCap) }},
	}

	res.Score = clampScore(foldRules(rules, func(tag string, _ int) {
		res.Triggers = append(res.Triggers, tag)
	}))

	switch {
	case res.Score < 30:
		res.Potential = PotentialLow
		res.Insights = append(res.Insights, "few interaction triggers; the post gives readers no reason to respond")
	case res.Score < 50:
		res.Potential = PotentialMedium
	case res.Score < 70:
		res.Potential = PotentialHigh
		res.Insights = append(res.Insights, "solid trigger mix; this post invites interaction")
	default:
		res.Potential = PotentialVeryHigh
		res.Insights = append(res.Insights, "packed with interaction triggers across several categories")
	}

	sentenceCount := len(textstats.Sentences(p.raw))
	if questions == 0 {
		res.Suggestions = append(res.Suggestions, "Ask your readers a direct question; questions are the strongest comment driver")
	}
	if numbers == 0 {
		res.Suggestions = append(res.Suggestions, "Add a concrete number; specifics stop the scroll")
	}
	if lists == 0 && sentenceCount > engListSentenceMin {
		res.Suggestions = append(res.Suggestions, "Turn part of this into a list; long prose posts lose skimmers")
	}
	if direct < engDirectAddressMin {
		res.Suggestions = append(res.Suggestions, "Address the reader directly with \"you\"")
	}
	if personal < engPersonalVoiceMin {
		res.Suggestions = append(res.Suggestions, "Write in the first person; personal voice earns trust")
	}
	if curiosity == 0 && res.Score < engWeakOverall {
		res.Suggestions = append(res.Suggestions, "Open a curiosity gap; hint at something readers will want revealed")
	}

	return res
}
