// Package lexicon loads the compiled-in word lists from the embedded lexicons.json.
// Every analyzer matches against these categories through one shared primitive
package lexicon

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

//go:embed lexicons.json
var embedded []byte

// MatchMode selects the matching semantics for a category.
// Word categories require non-word runes on both sides of an occurrence;
// substring categories match anywhere (e.g. generic hashtag fragments)
type MatchMode string

const (
	// ModeWord matches whole words or whole phrases bounded by non-word runes
	ModeWord MatchMode = "word"
	// ModeSubstring matches raw case-folded substrings
	ModeSubstring MatchMode = "substring"
)

// Category names as wired in lexicons.json. Kept as constants so a typo is a
// compile error rather than a silently empty match
const (
	PowerWords         = "power_words"
	CTAPhrases         = "cta_phrases"
	GenericHashtags    = "generic_hashtags"
	ContrastPhrases    = "contrast_phrases"
	StoryOpeners       = "story_openers"
	ControversyWords   = "controversy_words"
	CuriosityWords     = "curiosity_words"
	StrongStarters     = "strong_starters"
	SentimentPositive  = "sentiment_positive"
	SentimentNegative  = "sentiment_negative"
	StopWords          = "stop_words"
	PersonalPronouns   = "personal_pronouns"
	TimeMarkers        = "time_markers"
	EmotionWords       = "emotion_words"
	ConflictWords      = "conflict_words"
	ResolutionWords    = "resolution_words"
	LessonWords        = "lesson_words"
	DetailWords        = "detail_words"
	UrgencyWords       = "urgency_words"
	SocialProofWords   = "social_proof_words"
	ActionVerbs        = "action_verbs"
	DirectAddress      = "direct_address"
	PassiveAuxiliaries = "passive_auxiliaries"
)

// Tone category names in detection-precedence order (first wins count ties)
var ToneNames = []string{
	"tone_professional",
	"tone_personal",
	"tone_inspirational",
	"tone_analytical",
	"tone_conversational",
	"tone_urgent",
	"tone_confident",
	"tone_humble",
}

// Topic category names in detection-precedence order (first wins count ties)
var TopicNames = []string{
	"topic_business",
	"topic_technology",
	"topic_career",
	"topic_leadership",
	"topic_marketing",
	"topic_personal_growth",
	"topic_finance",
	"topic_health",
	"topic_education",
	"topic_entrepreneurship",
}

type rawCategory struct {
	Name  string   `json:"name"`
	Match string   `json:"match"`
	Terms []string `json:"terms"`
}

type rawPack struct {
	Version    int            `json:"version"`
	Meta       map[string]any `json:"meta"`
	Categories []rawCategory  `json:"categories"`
}

// Category is one compiled word list with fixed matching semantics
type Category struct {
	Name  string
	Mode  MatchMode
	Terms []string // lowercased, deduped, pack order preserved

	set map[string]struct{} // term -> present, for token lookups
}

// Pack holds all compiled categories
type Pack struct {
	Version int
	Meta    map[string]any

	byName map[string]Category
	names  []string
}

// Load parses and compiles the embedded lexicons.json
func Load() (*Pack, error) {
	var rp rawPack
	if err := json.Unmarshal(embedded, &rp); err != nil {
		return nil, fmt.Errorf("lexicon: parse lexicons.json: %w", err)
	}
	if rp.Version != 1 {
		return nil, fmt.Errorf("lexicon: unsupported lexicons.json version %d (want 1)", rp.Version)
	}

	p := &Pack{
		Version: rp.Version,
		Meta:    rp.Meta,
		byName:  make(map[string]Category, len(rp.Categories)),
	}

	for _, rc := range rp.Categories {
		name := strings.TrimSpace(rc.Name)
		if name == "" {
			continue
		}
		mode := ModeWord
		if rc.Match == string(ModeSubstring) {
			mode = ModeSubstring
		}
		c := Category{
			Name: name,
			Mode: mode,
			set:  make(map[string]struct{}, len(rc.Terms)),
		}
		for _, t := range rc.Terms {
			t = strings.ToLower(strings.TrimSpace(t))
			if t == "" {
				continue
			}
			if _, dup := c.set[t]; dup {
				continue
			}
			c.set[t] = struct{}{}
			c.Terms = append(c.Terms, t)
		}
		if _, dup := p.byName[name]; dup {
			return nil, fmt.Errorf("lexicon: duplicate category %q", name)
		}
		p.byName[name] = c
		p.names = append(p.names, name)
	}

	// deterministic iteration for tests/debug
	sort.Strings(p.names)

	return p, nil
}

// Category returns the named category; missing names return an empty category
// that matches nothing (the engine never faults on a bad lookup)
func (p *Pack) Category(name string) Category {
	if p == nil {
		return Category{Name: name, Mode: ModeWord}
	}
	if c, ok := p.byName[name]; ok {
		return c
	}
	return Category{Name: name, Mode: ModeWord}
}

// Has reports whether the pack carries the named category
func (p *Pack) Has(name string) bool {
	_, ok := p.byName[name]
	return ok
}

// Names returns all category names sorted
func (p *Pack) Names() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}
