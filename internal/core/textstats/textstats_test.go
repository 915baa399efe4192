package textstats

import "testing"

func TestParagraphBreaks(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"one block only", 0},
		{"para one\n\npara two", 1},
		{"a\n\n\n\nb\n\nc", 2},
		{"\n\nleading blanks\ncontent", 0},
	}
	for _, tc := range cases {
		if got := ParagraphBreaks(tc.in); got != tc.want {
			t.Fatalf("ParagraphBreaks(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestSentences(t *testing.T) {
	got := Sentences("First. Second! Third?? Trailing")
	want := []string{"First", "Second", "Third", "Trailing"}
	if len(got) != len(want) {
		t.Fatalf("sentences = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sentence[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNumericTokens(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"no numbers here", 0},
		{"90% of 1,000 users saved 3.5 hours", 3},
		{"version 2", 1},
	}
	for _, tc := range cases {
		if got := NumericTokens(tc.in); got != tc.want {
			t.Fatalf("NumericTokens(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestHashtags(t *testing.T) {
	got := Hashtags("Shipping day! #BuildInPublic #golang #Build_In_Public")
	want := []string{"#buildinpublic", "#golang", "#build_in_public"}
	if len(got) != len(want) {
		t.Fatalf("hashtags = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("hashtag[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestIsListLine(t *testing.T) {
	yes := []string{"- item", "* item", "1. item", "12) item", "  - indented"}
	no := []string{"plain text", "-nospace", "1.nospace", "a) letter marker"}
	for _, ln := range yes {
		if !IsListLine(ln) {
			t.Fatalf("IsListLine(%q) = false, want true", ln)
		}
	}
	for _, ln := range no {
		if IsListLine(ln) {
			t.Fatalf("IsListLine(%q) = true, want false", ln)
		}
	}
}

func TestTokens(t *testing.T) {
	got := Tokens("don't stop half-way, ok? #tag")
	want := []string{"don't", "stop", "half-way", "ok", "tag"}
	if len(got) != len(want) {
		t.Fatalf("tokens = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSyllables(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"cat", 1},
		{"table", 2},
		{"make", 1},
		{"beautiful", 3},
		{"a", 1},
		{"rhythm", 1},
		{"", 0},
	}
	for _, tc := range cases {
		if got := Syllables(tc.in); got != tc.want {
			t.Fatalf("Syllables(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestCharCountNoSpace(t *testing.T) {
	if got := CharCountNoSpace("a b\nc\t"); got != 3 {
		t.Fatalf("CharCountNoSpace = %d, want 3", got)
	}
}
