package fc

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var unicodeLower = cases.Lower(language.Und)

// splitLines breaks buf into maximal runs of bytes containing neither
// LF nor CR, skipping a single run of mixed LF/CR bytes between lines.
// A trailing terminator does not produce an extra empty line; an
// unterminated trailing non-empty line does.
func splitLines(buf []byte) [][]byte {
	var lines [][]byte
	start := 0
	i := 0
	for i < len(buf) {
		if buf[i] == '\n' || buf[i] == '\r' {
			lines = append(lines, buf[start:i])
			for i < len(buf) && (buf[i] == '\n' || buf[i] == '\r') {
				i++
			}
			start = i
			continue
		}
		i++
	}
	if start < len(buf) {
		lines = append(lines, buf[start:])
	}
	return lines
}

// expandTabs replaces every tab byte with four literal space bytes.
// The expansion is literal, not tab-stop-aligned.
func expandTabs(line []byte) []byte {
	count := 0
	for _, b := range line {
		if b == '\t' {
			count++
		}
	}
	if count == 0 {
		return line
	}
	out := make([]byte, 0, len(line)+count*3)
	for _, b := range line {
		if b == '\t' {
			out = append(out, ' ', ' ', ' ', ' ')
		} else {
			out = append(out, b)
		}
	}
	return out
}

// elideWhitespace removes every space and tab byte.
func elideWhitespace(line []byte) []byte {
	out := make([]byte, 0, len(line))
	for _, b := range line {
		if b == ' ' || b == '\t' {
			continue
		}
		out = append(out, b)
	}
	return out
}

// normalizeLines applies the fixed-order normalization pipeline (tab
// expansion, whitespace elision, empty-line discard, case folding,
// hashing) and returns the resulting LineSequence.
func normalizeLines(buf []byte, cfg *Config) (*LineSequence, error) {
	raw := splitLines(buf)
	seq := &LineSequence{Lines: make([]Line, 0, len(raw))}

	for _, line := range raw {
		text := line
		if !cfg.Flags.has(PreserveRawTabs) {
			text = expandTabs(text)
		}
		if cfg.Flags.has(IgnoreWhitespace) {
			text = elideWhitespace(text)
			if len(text) == 0 {
				continue
			}
		}

		hashText := text
		if cfg.Flags.has(IgnoreCase) && cfg.Mode == ModeTextUnicode {
			hashText = []byte(unicodeLower.String(string(text)))
		}

		seq.Lines = append(seq.Lines, Line{
			Text: text,
			Hash: hashLine(hashText, cfg.Flags, cfg.Mode),
		})
	}

	return seq, nil
}
