package predict

import (
	"fmt"
	"math"

	"postpulse/internal/core/analyze"
)

// Reach model. Every multiplier is an affine map from a 0-100 score onto
// its [lo, hi] band; the bands multiply against the follower baseline
const (
	baseReach = 1000

	viralityMulLo = 0.5
	viralityMulHi = 3.0

	engagementMulLo = 0.7
	engagementMulHi = 1.8

	hookMulLo = 0.8
	hookMulHi = 1.5

	hashtagMulLo = 0.9
	hashtagMulHi = 1.3

	storyMulLo = 0.9
	storyMulHi = 1.4

	organicBase  = 0.6
	organicScale = 0.2
)

// Viral potential blend weights
const (
	vpWeightVirality     = 0.40
	vpWeightEngagement   = 0.30
	vpWeightHook         = 0.15
	vpWeightStorytelling = 0.15
)

// Per-metric base rates and feature bonuses, expressed as fractions of reach
const (
	likeBaseRate      = 0.040
	likeQuestionBonus = 0.005
	likeNumbersBonus  = 0.004
	likeStoryBonus    = 0.006
	likeHashtagBonus  = 0.003
	likeVariance      = 0.4

	commentBaseRate         = 0.008
	commentQuestionBonus    = 0.004
	commentControversyBonus = 0.003
	commentVariance         = 0.5

	shareBaseRate       = 0.006
	shareStoryBonus     = 0.004
	shareNumbersBonus   = 0.002
	shareViralBonus     = 0.003
	shareVariance       = 0.6
	shareViralThreshold = 70
	shareStoryThreshold = 60
)

const (
	likeHashtagMin = 3

	confidenceFloor       = 50
	confidenceCeil        = 90
	commentConfStrong     = 75
	commentConfDefault    = 60
	shareConfFloor        = 55
	shareConfCeil         = 85
	breakoutThreshold     = 75
	underperformThreshold = 40
	idealWordCountMin     = 100
	idealWordCountMax     = 500
)

// MetricRange is one engagement metric as an expected value with a
// variance band and the features that drove it
type MetricRange struct {
	Expected   int      `json:"expected"`
	Min        int      `json:"min"`
	Max        int      `json:"max"`
	Confidence int      `json:"confidence"`
	Factors    []string `json:"factors,omitempty"`
}

// Totals is the summed view across metrics. Reactions mirrors likes;
// the two are the same signal under different platform vocabularies
type Totals struct {
	TotalEngagement int `json:"total_engagement"`
	Reactions       int `json:"reactions"`
}

// Ratios normalizes each metric against estimated reach, in percent
type Ratios struct {
	EngagementRate float64 `json:"engagement_rate"`
	CommentRate    float64 `json:"comment_rate"`
	ShareRate      float64 `json:"share_rate"`
}

// Prediction is the full engagement estimate for one post
type Prediction struct {
	Features        Features    `json:"features"`
	EstimatedReach  int         `json:"estimated_reach"`
	OrganicReach    int         `json:"organic_reach"`
	ViralPotential  int         `json:"viral_potential"`
	Likes           MetricRange `json:"likes"`
	Comments        MetricRange `json:"comments"`
	Shares          MetricRange `json:"shares"`
	Expected        Totals      `json:"expected"`
	Performance     Ratios      `json:"performance"`
	Insights        []string    `json:"insights,omitempty"`
	Recommendations []string    `json:"recommendations,omitempty"`
}

// Predictor runs the analysis engine and maps its record onto estimates
type Predictor struct {
	engine *analyze.Engine
}

// New builds a Predictor on top of an analysis engine
func New(e *analyze.Engine) *Predictor {
	return &Predictor{engine: e}
}

// Predict analyzes text and returns the engagement estimate. Total, never
// errors; empty input yields the floor of every band
func (p *Predictor) Predict(text string) Prediction {
	rec := p.engine.Analyze(text)
	return FromRecord(rec)
}

// FromRecord derives the estimate from an existing record without
// re-running the analyzers
func FromRecord(rec analyze.Record) Prediction {
	f := FeaturesFrom(rec)

	reach := estimateReach(f)
	organic := int(math.Round(float64(reach) * (organicBase + float64(f.ViralityScore)/100*organicScale)))
	vp := viralPotential(f)

	likes := likesRange(f, reach)
	comments := commentsRange(f, reach)
	shares := sharesRange(f, reach, vp)

	pred := Prediction{
		Features:       f,
		EstimatedReach: reach,
		OrganicReach:   organic,
		ViralPotential: vp,
		Likes:          likes,
		Comments:       comments,
		Shares:         shares,
		Expected: Totals{
			TotalEngagement: likes.Expected + comments.Expected + shares.Expected,
			Reactions:       likes.Expected,
		},
	}
	pred.Performance = ratios(pred)
	pred.Insights, pred.Recommendations = narrate(pred)
	return pred
}

func estimateReach(f Features) int {
	mul := affine(f.ViralityScore, viralityMulLo, viralityMulHi) *
		affine(f.EngagementScore, engagementMulLo, engagementMulHi) *
		affine(f.HookScore, hookMulLo, hookMulHi) *
		affine(f.HashtagScore, hashtagMulLo, hashtagMulHi) *
		affine(f.StorytellingScore, storyMulLo, storyMulHi)
	return int(math.Round(baseReach * mul))
}

func viralPotential(f Features) int {
	v := vpWeightVirality*float64(f.ViralityScore) +
		vpWeightEngagement*float64(f.EngagementScore) +
		vpWeightHook*float64(f.HookScore) +
		vpWeightStorytelling*float64(f.StorytellingScore)
	return clampPct(int(math.Round(v)))
}

func likesRange(f Features, reach int) MetricRange {
	rate := likeBaseRate
	var factors []string
	if f.HasQuestion {
		rate += likeQuestionBonus
		factors = append(factors, "question invites quick reactions")
	}
	if f.HasNumbers {
		rate += likeNumbersBonus
		factors = append(factors, "concrete numbers build credibility")
	}
	if f.HasPersonalStory {
		rate += likeStoryBonus
		factors = append(factors, "personal stories earn empathy reactions")
	}
	if f.HashtagCount >= likeHashtagMin {
		rate += likeHashtagBonus
		factors = append(factors, "hashtags extend reach beyond followers")
	}

	conf := clampInt(85-absInt(f.ViralityScore-f.EngagementScore)/2, confidenceFloor, confidenceCeil)
	return band(float64(reach)*rate, likeVariance, conf, factors)
}

func commentsRange(f Features, reach int) MetricRange {
	rate := commentBaseRate
	var factors []string
	if f.HasQuestion {
		rate += commentQuestionBonus
		factors = append(factors, "direct question pulls replies")
	}
	if f.HasControversy {
		rate += commentControversyBonus
		factors = append(factors, "contrarian framing sparks debate")
	}

	conf := commentConfDefault
	if f.HasQuestion || f.HasControversy {
		conf = commentConfStrong
	}
	return band(float64(reach)*rate, commentVariance, conf, factors)
}

func sharesRange(f Features, reach, vp int) MetricRange {
	rate := shareBaseRate
	var factors []string
	if f.StorytellingScore >= shareStoryThreshold {
		rate += shareStoryBonus
		factors = append(factors, "complete story arcs get reshared")
	}
	if f.HasNumbers {
		rate += shareNumbersBonus
		factors = append(factors, "data points make the post quotable")
	}
	if vp > shareViralThreshold {
		rate += shareViralBonus
		factors = append(factors, "high viral potential compounds sharing")
	}

	mean := (f.ViralityScore + f.StorytellingScore + f.ReadabilityScore) / 3
	conf := clampInt(mean, shareConfFloor, shareConfCeil)
	return band(float64(reach)*rate, shareVariance, conf, factors)
}

func ratios(p Prediction) Ratios {
	if p.EstimatedReach == 0 {
		return Ratios{}
	}
	reach := float64(p.EstimatedReach)
	return Ratios{
		EngagementRate: round1(float64(p.Expected.TotalEngagement) / reach * 100),
		CommentRate:    round1(float64(p.Comments.Expected) / reach * 100),
		ShareRate:      round1(float64(p.Shares.Expected) / reach * 100),
	}
}

func narrate(p Prediction) (insights, recs []string) {
	switch {
	case p.ViralPotential > breakoutThreshold:
		insights = append(insights, "breakout potential: this post scores well across every driver that feeds shares")
	case p.ViralPotential < underperformThreshold:
		insights = append(insights, "likely to underperform; the hook and engagement drivers are both weak")
	}

	if p.Comments.Expected > 0 && p.Likes.Expected > 5*p.Comments.Expected {
		recs = append(recs, "Likes outpace comments; add a direct question to convert passive readers into commenters")
	} else if p.Comments.Expected == 0 {
		recs = append(recs, "No comment drivers detected; end with a question your readers can answer in one line")
	}
	if p.Features.HashtagCount < likeHashtagMin {
		recs = append(recs, fmt.Sprintf("Add hashtags: %d found, 3-5 niche tags widen distribution", p.Features.HashtagCount))
	}
	if p.Features.WordCount < idealWordCountMin {
		recs = append(recs, "Post is short; 100-500 words gives the algorithm more dwell time to reward")
	} else if p.Features.WordCount > idealWordCountMax {
		recs = append(recs, "Post is long; trim toward 500 words or break it into a series")
	}
	return insights, recs
}

// band turns an expected value into a symmetric min/max range
func band(expected, variance float64, confidence int, factors []string) MetricRange {
	exp := int(math.Round(expected))
	spread := int(math.Round(expected * variance))
	mn := exp - spread
	if mn < 0 {
		mn = 0
	}
	return MetricRange{
		Expected:   exp,
		Min:        mn,
		Max:        exp + spread,
		Confidence: confidence,
		Factors:    factors,
	}
}

// affine maps a 0-100 score onto [lo, hi]
func affine(score int, lo, hi float64) float64 {
	s := float64(clampPct(score)) / 100
	return lo + s*(hi-lo)
}

func clampPct(n int) int { return clampInt(n, 0, 100) }

func clampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func round1(f float64) float64 { return math.Round(f*10) / 10 }
