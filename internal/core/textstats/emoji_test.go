package textstats

import "testing"

func TestEmojiCount(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"no emoji", 0},
		{"ship it 🚀", 1},
		{"🔥🔥🔥", 3},
		{"mixed 🚀 text ✅ here", 2},
	}
	for _, tc := range cases {
		if got := EmojiCount(tc.in); got != tc.want {
			t.Fatalf("EmojiCount(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestLongestEmojiRun(t *testing.T) {
	if got := LongestEmojiRun("a 🔥🔥🔥 b 🚀🚀"); got != 3 {
		t.Fatalf("LongestEmojiRun = %d, want 3", got)
	}
	if got := LongestEmojiRun("🔥 a 🔥"); got != 1 {
		t.Fatalf("spaced emoji run = %d, want 1", got)
	}
}

func TestLinesOpeningWithEmoji(t *testing.T) {
	in := "🚀 launch day\nplain line\n  ✅ checked\nanother"
	if got := LinesOpeningWithEmoji(in); got != 2 {
		t.Fatalf("LinesOpeningWithEmoji = %d, want 2", got)
	}
}
