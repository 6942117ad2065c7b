package fc

import "testing"

func seqOf(strs ...string) *LineSequence {
	s := &LineSequence{}
	for _, str := range strs {
		s.Lines = append(s.Lines, Line{Text: []byte(str), Hash: hashLine([]byte(str), 0, ModeTextASCII)})
	}
	return s
}

func Test_computeLCS(t *testing.T) {
	tests := []struct {
		name    string
		a, b    []string
		wantLen int
	}{
		{name: "both empty", a: nil, b: nil, wantLen: 0},
		{name: "a empty", a: nil, b: []string{"x"}, wantLen: 0},
		{name: "b empty", a: []string{"x"}, b: nil, wantLen: 0},
		{name: "identical", a: []string{"a", "b", "c"}, b: []string{"a", "b", "c"}, wantLen: 3},
		{name: "one change", a: []string{"A", "B", "C"}, b: []string{"A", "X", "C"}, wantLen: 2},
		{name: "insertion", a: []string{"A", "C"}, b: []string{"A", "B", "C"}, wantLen: 2},
		{name: "deletion", a: []string{"A", "B", "C"}, b: []string{"A", "C"}, wantLen: 2},
		{name: "no overlap", a: []string{"A", "B"}, b: []string{"X", "Y"}, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := seqOf(tt.a...), seqOf(tt.b...)
			lcs := computeLCS(a, b)
			if len(lcs.A) != tt.wantLen || len(lcs.B) != tt.wantLen {
				t.Fatalf("computeLCS len = %d, want %d", len(lcs.A), tt.wantLen)
			}
			// Soundness: A indices strictly increasing, B indices strictly
			// increasing, and each pair matches by hash (invariant 3 and 4).
			for i := 1; i < len(lcs.A); i++ {
				if lcs.A[i] <= lcs.A[i-1] || lcs.B[i] <= lcs.B[i-1] {
					t.Fatalf("LCS indices not strictly increasing at %d", i)
				}
			}
			for i := range lcs.A {
				if a.Lines[lcs.A[i]].Hash != b.Lines[lcs.B[i]].Hash {
					t.Fatalf("LCS pair %d does not match by hash", i)
				}
			}
		})
	}
}
