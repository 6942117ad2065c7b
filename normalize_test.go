package fc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func Test_splitLines(t *testing.T) {
	tests := []struct {
		name string
		buf  string
		want []string
	}{
		{name: "lf", buf: "a\nb\nc", want: []string{"a", "b", "c"}},
		{name: "trailing lf no extra line", buf: "a\nb\n", want: []string{"a", "b"}},
		{name: "unterminated trailing line kept", buf: "a\nb", want: []string{"a", "b"}},
		{name: "crlf pair is one break", buf: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "mixed cr lf run collapses", buf: "a\r\r\n\nb", want: []string{"a", "b"}},
		{name: "empty buffer", buf: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitLines([]byte(tt.buf))
			var gotStrs []string
			for _, l := range got {
				gotStrs = append(gotStrs, string(l))
			}
			if diff := cmp.Diff(tt.want, gotStrs); diff != "" {
				t.Errorf("splitLines(%q) mismatch:\n%s", tt.buf, diff)
			}
		})
	}
}

func Test_expandTabs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "no tabs", in: "abc", want: "abc"},
		{name: "leading tab", in: "\tB", want: "    B"},
		{name: "tab not aligned to stop", in: "AB\tC", want: "AB    C"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(expandTabs([]byte(tt.in))); got != tt.want {
				t.Errorf("expandTabs(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func Test_normalizeLines_whitespaceDiscard(t *testing.T) {
	cfg := &Config{Flags: IgnoreWhitespace}
	seq, err := normalizeLines([]byte("a\n   \nb\n"), cfg)
	if err != nil {
		t.Fatalf("normalizeLines: %v", err)
	}
	if seq.Len() != 2 {
		t.Fatalf("got %d lines, want 2 (whitespace-only line must be dropped)", seq.Len())
	}
}
