package analyze

import (
	"strings"
	"testing"
)

func TestHook_EmptyOpening(t *testing.T) {
	e := mustEngine(t)
	res := e.Hook("\n\nbody starts on line three")

	if res.Score != 0 {
		t.Fatalf("score = %d, want 0", res.Score)
	}
	if len(res.Suggestions) != 1 {
		t.Fatalf("suggestions = %v, want exactly one", res.Suggestions)
	}
	if len(res.Patterns) != 0 {
		t.Fatalf("patterns = %v, want none", res.Patterns)
	}
}

func TestHook_StrongOpening(t *testing.T) {
	e := mustEngine(t)
	res := e.Hook("Have you ever wondered why 90% of side projects fail?")

	if res.Score < 50 {
		t.Fatalf("score = %d, want >= 50", res.Score)
	}
	var sawQuestion, sawStory bool
	for _, p := range res.Patterns {
		if p == "question" {
			sawQuestion = true
		}
		if p == "story_opener" {
			sawStory = true
		}
	}
	if !sawQuestion || !sawStory {
		t.Fatalf("patterns = %v, want question and story_opener", res.Patterns)
	}
}

func TestHook_OnlyFirstTwoLinesCount(t *testing.T) {
	e := mustEngine(t)
	// the question lives on line three; the hook must not see it
	res := e.Hook("plain opener\nsecond line\nHave you ever wondered?")

	for _, p := range res.Patterns {
		if p == "question" {
			t.Fatalf("question from line three leaked into the hook: %v", res.Patterns)
		}
	}
}

func TestCTA_PlacementSensitivity(t *testing.T) {
	e := mustEngine(t)

	atEnd := e.CTA("Here is my take on shipping.\nIt held up over a decade.\nWhat do you think?")
	early := e.CTA("What do you think?\nHere is my take on shipping.\nIt held up well.\nMore detail.\nEven more detail.")

	if !atEnd.Exists || !atEnd.InClosing {
		t.Fatalf("closing CTA not detected: %+v", atEnd)
	}
	if !early.Exists || early.InClosing {
		t.Fatalf("early CTA misclassified as closing: %+v", early)
	}
	if atEnd.Score <= early.Score {
		t.Fatalf("closing CTA %d <= early CTA %d", atEnd.Score, early.Score)
	}
	if len(early.Suggestions) == 0 {
		t.Fatalf("early CTA should suggest moving to the end")
	}
}

func TestCTA_Missing(t *testing.T) {
	e := mustEngine(t)
	res := e.CTA("A post with no ask at all.")

	if res.Exists {
		t.Fatalf("no CTA expected")
	}
	if res.Score != 20 {
		t.Fatalf("score = %d, want 20", res.Score)
	}
	if len(res.Suggestions) != 2 {
		t.Fatalf("suggestions = %v, want two", res.Suggestions)
	}
}

func TestHashtags_Monotonicity(t *testing.T) {
	e := mustEngine(t)

	none := e.Hashtags("A post about shipping software.")
	some := e.Hashtags("A post about shipping software.\n#golang #shipping #devlife")

	if none.Score >= some.Score {
		t.Fatalf("no-hashtag score %d >= good-hashtag score %d", none.Score, some.Score)
	}
	if some.Score != 100 {
		t.Fatalf("clean hashtags = %d, want 100", some.Score)
	}
}

func TestHashtags_Penalties(t *testing.T) {
	e := mustEngine(t)

	dupes := e.Hashtags("post body\n#golang #golang #devlife")
	if dupes.Score != 85 {
		t.Fatalf("duplicate penalty: score = %d, want 85", dupes.Score)
	}

	tooMany := e.Hashtags("post body\n#a1 #a2 #a3 #a4 #a5 #a6 #a7")
	if tooMany.Score >= 100 {
		t.Fatalf("seven hashtags should be penalized, got %d", tooMany.Score)
	}

	generic := e.Hashtags("post body\n#love #follow #blessed")
	if generic.Score >= 100 {
		t.Fatalf("generic hashtags should be penalized, got %d", generic.Score)
	}

	scattered := e.Hashtags("#golang in the opener\nreal content here\nmore content")
	var sawPlacement bool
	for _, r := range scattered.Recommendations {
		if strings.Contains(r, "final line") {
			sawPlacement = true
		}
	}
	if !sawPlacement {
		t.Fatalf("scattered hashtags should recommend moving them to the end: %+v", scattered)
	}
}

func TestSentiment_Labels(t *testing.T) {
	e := mustEngine(t)

	pos := e.Sentiment("This is great. Amazing progress and I love the results.")
	if pos.Label != SentimentPositive {
		t.Fatalf("label = %q, want positive (score %d)", pos.Label, pos.Score)
	}

	neg := e.Sentiment("A terrible, awful launch. Everything failed and I hated it.")
	if neg.Label != SentimentNegative {
		t.Fatalf("label = %q, want negative (score %d)", neg.Label, neg.Score)
	}

	neutral := e.Sentiment("The deploy runs at noon on Fridays.")
	if neutral.Label != SentimentNeutral {
		t.Fatalf("label = %q, want neutral (score %d)", neutral.Label, neutral.Score)
	}
	if neutral.Score != 50 {
		t.Fatalf("neutral score = %d, want 50", neutral.Score)
	}
}

func TestSentiment_Balance(t *testing.T) {
	e := mustEngine(t)

	personal := e.Sentiment("I changed my mind. My journey taught me who we are.")
	if personal.Balance != BalancePersonal {
		t.Fatalf("balance = %q, want personal", personal.Balance)
	}

	professional := e.Sentiment("The strategy aligns revenue metrics with quarterly objectives for stakeholders.")
	if professional.Balance != BalanceProfessional {
		t.Fatalf("balance = %q, want professional", professional.Balance)
	}
}

func TestStorytelling_FullArc(t *testing.T) {
	e := mustEngine(t)
	story := `When I started my first company, I struggled for months.
I felt scared and overwhelmed every single day.
Then, finally, we found a solution and overcame the setback.
I learned a lesson I still carry: exactly one thing matters.`

	res := e.Storytelling(story)

	if !res.HasPersonalStory {
		t.Fatalf("personal story not detected: %+v", res)
	}
	if !res.HasConflict {
		t.Fatalf("conflict not detected: %+v", res)
	}
	if !res.HasResolution {
		t.Fatalf("resolution not detected: %+v", res)
	}
	if !res.HasCompleteArc {
		t.Fatalf("complete arc not detected: %+v", res)
	}
	if res.Score < 60 {
		t.Fatalf("full-arc score = %d, want >= 60", res.Score)
	}
}

func TestStorytelling_MinimalText(t *testing.T) {
	e := mustEngine(t)
	res := e.Storytelling("Quarterly metrics update attached.")

	if res.Score > 20 {
		t.Fatalf("non-story score = %d, want <= 20", res.Score)
	}
	if res.HasCompleteArc {
		t.Fatalf("no arc expected: %+v", res)
	}
	if len(res.Suggestions) == 0 {
		t.Fatalf("non-story should carry suggestions")
	}
}

func TestReadability_SimpleBeatsComplex(t *testing.T) {
	e := mustEngine(t)

	simple := e.Readability("The cat sat. The dog ran. We had fun. It was a good day.")
	complex := e.Readability("Notwithstanding the organizational ramifications, the interdepartmental stakeholders continuously recalibrated multidimensional prioritization frameworks throughout protracted deliberations concerning infrastructural modernization initiatives.")

	if simple.FleschScore <= complex.FleschScore {
		t.Fatalf("simple flesch %d <= complex flesch %d", simple.FleschScore, complex.FleschScore)
	}
	if simple.Level == "" || complex.Level == "" {
		t.Fatalf("levels must always be set")
	}
	if complex.ComplexityScore <= simple.ComplexityScore {
		t.Fatalf("complexity %d <= %d for obviously denser text", complex.ComplexityScore, simple.ComplexityScore)
	}
}

func TestReadability_EmptyInput(t *testing.T) {
	e := mustEngine(t)
	res := e.Readability("")

	if res.FleschScore != 0 || res.WordCount != 0 || res.SentenceCount != 0 {
		t.Fatalf("empty input should zero the counts: %+v", res)
	}
	if res.Level != ReadVeryDifficult {
		t.Fatalf("level = %q, want %q", res.Level, ReadVeryDifficult)
	}
}

func TestEngagement_TriggersAndTiers(t *testing.T) {
	e := mustEngine(t)

	flat := e.Engagement("An announcement.")
	if flat.Score != 0 || flat.Potential != PotentialLow {
		t.Fatalf("flat post: score %d potential %q", flat.Score, flat.Potential)
	}

	loaded := e.Engagement(strongPost)
	if loaded.Score <= flat.Score {
		t.Fatalf("loaded post %d <= flat post %d", loaded.Score, flat.Score)
	}
	var sawQuestions bool
	for _, tr := range loaded.Triggers {
		if tr == "questions" {
			sawQuestions = true
		}
	}
	if !sawQuestions {
		t.Fatalf("questions trigger missing: %v", loaded.Triggers)
	}
}

func TestTopics_DetectionAndKeywords(t *testing.T) {
	e := mustEngine(t)
	res := e.Topics(`Marketing your content matters. Marketing wins when your audience
trusts the content. Build an audience before you need the audience.`)

	if res.PrimaryTopic != "marketing" {
		t.Fatalf("primary topic = %q, want marketing", res.PrimaryTopic)
	}
	if len(res.Keywords) == 0 {
		t.Fatalf("keywords missing")
	}
	if res.Keywords[0] != "audience" && res.Keywords[0] != "marketing" {
		t.Fatalf("top keyword = %q, want a repeated term", res.Keywords[0])
	}
}

func TestTopics_NoSignal(t *testing.T) {
	e := mustEngine(t)
	res := e.Topics("zip zap zop")

	if res.PrimaryTopic != "general" {
		t.Fatalf("primary topic = %q, want general", res.PrimaryTopic)
	}
	if res.DiversityScore != 30 {
		t.Fatalf("diversity = %d, want 30 floor", res.DiversityScore)
	}
}

func TestEmoji_DensityBands(t *testing.T) {
	e := mustEngine(t)

	none := e.Emoji("plain text without any symbols at all")
	if none.Density != EmojiNone {
		t.Fatalf("density = %q, want none", none.Density)
	}

	heavy := e.Emoji("🔥🔥🔥🔥 go 🔥🔥🔥🔥")
	if heavy.Density != EmojiHigh {
		t.Fatalf("density = %q, want high (count %d ratio %f)", heavy.Density, heavy.Count, heavy.Ratio)
	}
}

func TestStructure_WallOfText(t *testing.T) {
	e := mustEngine(t)

	wall := e.Structure("one\ntwo\nthree\nfour\nfive\nsix\nseven")
	spaced := e.Structure("one\ntwo\n\nthree\nfour\n\nfive\nsix")

	if wall.Score >= spaced.Score {
		t.Fatalf("wall %d >= spaced %d", wall.Score, spaced.Score)
	}
	if len(wall.Issues) == 0 {
		t.Fatalf("wall of text should report an issue")
	}
}
