package telegram

import (
	"strings"
	"testing"
)

func TestSplitMessage(t *testing.T) {
	if got := splitMessage("short", 10); len(got) != 1 || got[0] != "short" {
		t.Fatalf("got %v", got)
	}

	long := strings.Repeat("ab", 12)
	chunks := splitMessage(long, 10)
	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3", len(chunks))
	}
	if strings.Join(chunks, "") != long {
		t.Fatal("chunks do not reassemble the original")
	}
	for _, c := range chunks[:2] {
		if len([]rune(c)) != 10 {
			t.Fatalf("chunk length %d, want 10", len([]rune(c)))
		}
	}
}

func TestSplitMessageIsRuneSafe(t *testing.T) {
	text := strings.Repeat("日本語テキスト", 4)
	chunks := splitMessage(text, 5)
	if strings.Join(chunks, "") != text {
		t.Fatal("chunks do not reassemble the original")
	}
	for _, c := range chunks {
		for _, r := range c {
			if r == '�' {
				t.Fatalf("chunk split inside a rune: %q", c)
			}
		}
	}
}

func TestSplitMessageNoLimit(t *testing.T) {
	if got := splitMessage("anything", 0); len(got) != 1 {
		t.Fatalf("got %v, want the text untouched", got)
	}
}
