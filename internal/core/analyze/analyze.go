// Package analyze implements the post analysis engine: nine independent
// heuristic analyzers, a weighted aggregator, and static rewrite templates.
// Everything here is a pure function of the input text; identical input
// always yields identical output and no input ever produces an error
package analyze

import (
	"postpulse/internal/core/lexicon"
	"postpulse/internal/core/textnorm"
	"postpulse/internal/core/textstats"
)

// EngineVersion stamps records so persisted output can be traced to the
// heuristics that produced it
const EngineVersion = 1

// Record is the combined result of one analysis call. It is created fresh on
// every call and crosses the service boundary as plain data
type Record struct {
	Text          string             `json:"text"`
	EngineVersion int                `json:"engine_version"`
	Hook          HookResult         `json:"hook"`
	Structure     StructureResult    `json:"structure"`
	CTA           CTAResult          `json:"cta"`
	Hashtags      HashtagResult      `json:"hashtags"`
	Emoji         EmojiResult        `json:"emoji"`
	Sentiment     SentimentResult    `json:"sentiment"`
	Topics        TopicResult        `json:"topics"`
	Readability   ReadabilityResult  `json:"readability"`
	Storytelling  StorytellingResult `json:"storytelling"`
	Engagement    EngagementResult   `json:"engagement"`
	Composite     CompositeScore     `json:"composite"`
	Rewrites      RewriteStrategy    `json:"rewrites"`
}

// Engine runs the analyzers over post text. Safe for concurrent use; it holds
// only the immutable compiled lexicon pack
type Engine struct {
	pack *lexicon.Pack
}

// New compiles the embedded lexicons and returns a ready engine
func New() (*Engine, error) {
	p, err := lexicon.Load()
	if err != nil {
		return nil, err
	}
	return &Engine{pack: p}, nil
}

// MustNew is New for wiring paths where a broken embedded pack is fatal
func MustNew() *Engine {
	e, err := New()
	if err != nil {
		panic(err)
	}
	return e
}

// Analyze fans the text out to every analyzer and aggregates the composite
// score. Never fails: empty or pathological input degrades to minimal results
func (e *Engine) Analyze(text string) Record {
	p := newPost(text)

	rec := Record{
		Text:          text,
		EngineVersion: EngineVersion,
		Hook:          e.hook(p),
		Structure:     e.structure(p),
		CTA:           e.cta(p),
		Hashtags:      e.hashtags(p),
		Emoji:         e.emoji(p),
		Sentiment:     e.sentiment(p),
		Topics:        e.topics(p),
		Readability:   e.readability(p),
		Storytelling:  e.storytelling(p),
		Engagement:    e.engagement(p),
		Rewrites:      Rewrites(),
	}
	rec.Composite = Composite(Subscores{
		Hook:         rec.Hook.Score,
		Structure:    rec.Structure.Score,
		CTA:          rec.CTA.Score,
		Hashtags:     rec.Hashtags.Score,
		Engagement:   rec.Engagement.Score,
		Storytelling: rec.Storytelling.Score,
		Sentiment:    rec.Sentiment.Score,
		Readability:  rec.Readability.FleschScore,
	})
	return rec
}

// Hook analyzes only the opening lines. Exposed for tests and callers that
// want a single sub-analysis
func (e *Engine) Hook(text string) HookResult { return e.hook(newPost(text)) }

// Structure analyzes paragraphing, line lengths, and list usage
func (e *Engine) Structure(text string) StructureResult { return e.structure(newPost(text)) }

// CTA analyzes call-to-action presence and placement
func (e *Engine) CTA(text string) CTAResult { return e.cta(newPost(text)) }

// Hashtags analyzes hashtag count, uniqueness, genericness, and placement
func (e *Engine) Hashtags(text string) HashtagResult { return e.hashtags(newPost(text)) }

// Emoji classifies emoji density and flags emoji abuse
func (e *Engine) Emoji(text string) EmojiResult { return e.emoji(newPost(text)) }

// Sentiment scores positive/negative balance and detects tones
func (e *Engine) Sentiment(text string) SentimentResult { return e.sentiment(newPost(text)) }

// Topics detects topic categories and top keywords
func (e *Engine) Topics(text string) TopicResult { return e.topics(newPost(text)) }

// Readability computes Flesch-style ease, variety, and complexity
func (e *Engine) Readability(text string) ReadabilityResult { return e.readability(newPost(text)) }

// Storytelling detects narrative elements and classifies the story shape
func (e *Engine) Storytelling(text string) StorytellingResult { return e.storytelling(newPost(text)) }

// Engagement counts interaction triggers and scores engagement potential
func (e *Engine) Engagement(text string) EngagementResult { return e.engagement(newPost(text)) }

// post is the per-call derived view shared by the analyzers so the fold and
// line split happen once
type post struct {
	raw    string
	folded string

	lines       []string // raw lines including empties
	visible     []string // raw lines with content
	foldedLines []string // folded counterpart of visible
}

func newPost(text string) post {
	p := post{
		raw:    text,
		folded: textnorm.Fold(text),
		lines:  textstats.Lines(text),
	}
	p.visible = textstats.NonEmptyLines(text)
	p.foldedLines = make([]string, len(p.visible))
	for i, ln := range p.visible {
		p.foldedLines[i] = textnorm.Fold(ln)
	}
	return p
}
