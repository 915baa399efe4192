package lexicon

import "testing"

func mustPack(t *testing.T) *Pack {
	t.Helper()
	p, err := Load()
	if err != nil {
		t.Fatalf("load pack: %v", err)
	}
	return p
}

func TestLoad_CoreCategoriesPresent(t *testing.T) {
	p := mustPack(t)

	for _, name := range []string{
		PowerWords, CTAPhrases, GenericHashtags, SentimentPositive,
		SentimentNegative, StopWords, PersonalPronouns, ActionVerbs,
	} {
		if !p.Has(name) {
			t.Fatalf("missing category %q", name)
		}
		if len(p.Category(name).Terms) == 0 {
			t.Fatalf("category %q has no terms", name)
		}
	}
	for _, name := range ToneNames {
		if !p.Has(name) {
			t.Fatalf("missing tone category %q", name)
		}
	}
	for _, name := range TopicNames {
		if !p.Has(name) {
			t.Fatalf("missing topic category %q", name)
		}
	}
}

func TestCategory_WordBoundaries(t *testing.T) {
	p := mustPack(t)
	c := p.Category(PowerWords)

	// "secret" inside "secretary" must not match
	if c.Any("the secretary took notes") {
		t.Fatalf("matched inside a longer word")
	}
	if got := c.Count("the secret is out. another secret."); got != 2 {
		t.Fatalf("count = %d, want 2", got)
	}
	// punctuation is a boundary
	if !c.Any("(secret)") {
		t.Fatalf("parenthesized term should match")
	}
}

func TestCategory_PhraseMatch(t *testing.T) {
	p := mustPack(t)
	c := p.Category(StoryOpeners)

	if !c.Any("have you ever shipped on a friday?") {
		t.Fatalf("multi-word phrase should match")
	}
	if c.Any("have you everest") {
		t.Fatalf("phrase must respect the trailing boundary")
	}
}

func TestCategory_SubstringMode(t *testing.T) {
	p := mustPack(t)
	c := p.Category(GenericHashtags)

	if c.Mode != ModeSubstring {
		t.Fatalf("generic_hashtags mode = %q, want substring", c.Mode)
	}
	// substring categories match inside longer tags
	if !c.Any("#followmeplease") {
		t.Fatalf("substring match expected inside #followmeplease")
	}
}

func TestCategory_MatchCollectsDistinctTerms(t *testing.T) {
	p := mustPack(t)
	m := p.Category(PowerWords).Match("a proven secret and another secret")

	if m.Count != 3 {
		t.Fatalf("count = %d, want 3", m.Count)
	}
	if m.Distinct() != 2 {
		t.Fatalf("distinct = %d, want 2", m.Distinct())
	}
	if !m.Any() {
		t.Fatalf("Any() should be true")
	}
}

func TestPack_MissingCategoryIsEmpty(t *testing.T) {
	p := mustPack(t)
	c := p.Category("no_such_list")

	if c.Any("anything at all") {
		t.Fatalf("missing category must match nothing")
	}
	if c.Count("anything") != 0 {
		t.Fatalf("missing category count must be 0")
	}
}

func TestCategory_ContainsToken(t *testing.T) {
	p := mustPack(t)
	c := p.Category(StopWords)

	if !c.ContainsToken("the") {
		t.Fatalf("expected stopword lookup hit")
	}
	if c.ContainsToken("kubernetes") {
		t.Fatalf("unexpected stopword")
	}
}
