package fc

import "testing"

func Test_hashLine(t *testing.T) {
	tests := []struct {
		name  string
		a, b  string
		flags Flags
		mode  Mode
		equal bool
	}{
		{name: "identical", a: "hello", b: "hello", equal: true},
		{name: "case differs no flag", a: "Hello", b: "hello", equal: false},
		{name: "case differs with ignore-case ascii", a: "Hello", b: "hello", flags: IgnoreCase, mode: ModeTextASCII, equal: true},
		{name: "whitespace differs no flag", a: "a b", b: "ab", equal: false},
		{name: "whitespace differs with ignore-whitespace", a: "a b", b: "ab", flags: IgnoreWhitespace, equal: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ha := hashLine([]byte(tt.a), tt.flags, tt.mode)
			hb := hashLine([]byte(tt.b), tt.flags, tt.mode)
			if (ha == hb) != tt.equal {
				t.Errorf("hashLine(%q)=%d hashLine(%q)=%d, want equal=%v", tt.a, ha, tt.b, hb, tt.equal)
			}
		})
	}
}

func Test_hashLine_stable(t *testing.T) {
	h1 := hashLine([]byte("the quick brown fox"), 0, ModeTextASCII)
	h2 := hashLine([]byte("the quick brown fox"), 0, ModeTextASCII)
	if h1 != h2 {
		t.Errorf("hashLine not stable across calls: %d != %d", h1, h2)
	}
}
