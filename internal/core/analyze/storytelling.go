package analyze

import (
	"postpulse/internal/core/lexicon"
	"postpulse/internal/core/textstats"
)

// Storytelling bonuses per detected narrative element
const (
	storyHookBonus       = 20
	storyPersonalBonus   = 15
	storyConflictBonus   = 15
	storyResolutionBonus = 20
	storyTimeBonus       = 10
	storyEmotionBonus    = 10
	storyDetailBonus     = 10

	storyPersonalMin = 2 // personal pronoun count must exceed this
	storyTimeMin     = 2 // time markers needed for progression
	storyEmotionMin  = 2 // emotion words needed for an arc
)

// Story structure classifications, most specific first
const (
	StoryNarrative      = "narrative"
	StoryCaseStudy      = "case_study"
	StoryLessonLearned  = "lesson_learned"
	StoryTransformation = "transformation"
	StoryMinimal        = "minimal"
)

// StorytellingResult reports which narrative elements the post carries and
// what story shape they add up to
type StorytellingResult struct {
	Score              int      `json:"score"`
	StructureType      string   `json:"structure_type"`
	HasHook            bool     `json:"has_hook"`
	HasPersonalStory   bool     `json:"has_personal_story"`
	HasConflict        bool     `json:"has_conflict"`
	HasResolution      bool     `json:"has_resolution"`
	HasTimeProgression bool     `json:"has_time_progression"`
	HasEmotionalArc    bool     `json:"has_emotional_arc"`
	HasConcreteDetails bool     `json:"has_concrete_details"`
	HasLessons         bool     `json:"has_lessons"`
	HasCompleteArc     bool     `json:"has_complete_arc"`
	Elements           []string `json:"elements,omitempty"`
	Suggestions        []string `json:"suggestions,omitempty"`
}

func (e *Engine) storytelling(p post) StorytellingResult {
	hookCount := e.pack.Category(lexicon.StoryOpeners).Count(p.folded)
	personalCount := e.pack.Category(lexicon.PersonalPronouns).Count(p.folded)
	timeCount := e.pack.Category(lexicon.TimeMarkers).Count(p.folded)
	emotionCount := e.pack.Category(lexicon.EmotionWords).Count(p.folded)
	conflictCount := e.pack.Category(lexicon.ConflictWords).Count(p.folded)
	resolutionCount := e.pack.Category(lexicon.ResolutionWords).Count(p.folded)
	lessonCount := e.pack.Category(lexicon.LessonWords).Count(p.folded)
	detailCount := e.pack.Category(lexicon.DetailWords).Count(p.folded)

	res := StorytellingResult{
		HasHook:            hookCount > 0,
		HasPersonalStory:   personalCount > storyPersonalMin,
		HasConflict:        conflictCount > 0,
		HasLessons:         lessonCount > 0,
		HasTimeProgression: timeCount >= storyTimeMin,
		HasEmotionalArc:    emotionCount >= storyEmotionMin,
		HasConcreteDetails: detailCount > 0 || textstats.NumericTokens(p.raw) > 0,
	}
	res.HasResolution = resolutionCount > 0 || res.HasLessons

	type element struct {
		name  string
		on    bool
		bonus int
	}
	elements := []element{
		{"hook", res.HasHook, storyHookBonus},
		{"personal_story", res.HasPersonalStory, storyPersonalBonus},
		{"conflict", res.HasConflict, storyConflictBonus},
		{"resolution", res.HasResolution, storyResolutionBonus},
		{"time_progression", res.HasTimeProgression, storyTimeBonus},
		{"emotional_arc", res.HasEmotionalArc, storyEmotionBonus},
		{"concrete_details", res.HasConcreteDetails, storyDetailBonus},
	}
	score := 0
	for _, el := range elements {
		if !el.on {
			continue
		}
		score += el.bonus
		res.Elements = append(res.Elements, el.name)
	}
	res.Score = clampScore(score)

	res.StructureType = classifyStory(res)
	res.HasCompleteArc = res.HasHook &&
		(res.HasConflict || timeCount > 0) &&
		(res.HasResolution || res.HasLessons)

	if !res.HasHook {
		res.Suggestions = append(res.Suggestions, "Open with a story beat (\"Last year...\", \"Have you ever...\") to pull readers in")
	}
	if res.HasConflict && !res.HasResolution {
		res.Suggestions = append(res.Suggestions, "You set up a struggle but never land it; close with the outcome or the lesson")
	}
	if !res.HasConcreteDetails {
		res.Suggestions = append(res.Suggestions, "Concrete numbers and specifics make a story believable")
	}

	return res
}

// classifyStory walks the structure decision tree from most to least specific.
// Precedence matters: the narrative check must run before case_study which
// must run before lesson_learned
func classifyStory(r StorytellingResult) string {
	core := r.HasHook && r.HasConflict && r.HasResolution && r.HasPersonalStory
	switch {
	case core && r.HasTimeProgression && r.HasEmotionalArc:
		return StoryNarrative
	case core && r.HasConcreteDetails && r.HasLessons:
		return StoryCaseStudy
	case core:
		return StoryLessonLearned
	case r.HasConflict && r.HasResolution && r.HasPersonalStory:
		return StoryTransformation
	default:
		return StoryMinimal
	}
}
