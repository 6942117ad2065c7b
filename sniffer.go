package fc

// sniffPrefixSize is the amount of a file's head the dispatcher samples
// to decide text vs. binary in auto mode.
const sniffPrefixSize = 4096

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// isLikelyText classifies a byte prefix as likely-text (true) or
// likely-binary (false). A recognized BOM is an immediate yes; a zero
// byte is an immediate no; otherwise text wins when at least 90% of
// the bytes are printable ASCII or one of {tab, LF, CR}.
func isLikelyText(buf []byte) bool {
	if len(buf) == 0 {
		return false
	}
	if hasPrefix(buf, bomUTF8) || hasPrefix(buf, bomUTF16LE) || hasPrefix(buf, bomUTF16BE) {
		return true
	}

	printable := 0
	for _, b := range buf {
		if b == 0 {
			return false
		}
		if (b >= 32 && b <= 126) || b == 9 || b == 10 || b == 13 {
			printable++
		}
	}
	return float64(printable)/float64(len(buf)) >= 0.90
}

func hasPrefix(buf, prefix []byte) bool {
	if len(buf) < len(prefix) {
		return false
	}
	for i, b := range prefix {
		if buf[i] != b {
			return false
		}
	}
	return true
}
