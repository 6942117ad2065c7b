package fc

// hashLine computes the 32-bit rolling hash h <- h*31 + byte over the
// bytes of text that survive the inline filters implied by flags and
// mode. Normalization (tab expansion, whitespace elision, Unicode case
// folding) has already run by the time this is called; the inline
// ASCII-fold and whitespace-skip here are defensive, not load-bearing,
// per the normalizer's contract.
func hashLine(text []byte, flags Flags, mode Mode) uint32 {
	foldASCII := flags.has(IgnoreCase) && mode != ModeTextUnicode
	skipWS := flags.has(IgnoreWhitespace)

	var h uint32
	for _, b := range text {
		if skipWS && (b == ' ' || b == '\t') {
			continue
		}
		if foldASCII && b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		h = h*31 + uint32(b)
	}
	return h
}
