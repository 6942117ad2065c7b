package fc

import (
	"errors"
	"unicode/utf8"
)

// Compare is the primary entry point: it compares the two files at
// path1 and path2 under cfg and returns the outcome. Paths are
// whatever string form the caller's filesystem accepts.
func Compare(path1, path2 string, cfg *Config) (Result, error) {
	if cfg == nil || cfg.Callback == nil {
		return ResultInvalidParameter, paramErr("compare", nil)
	}
	// ResyncLines <= 1 (including the spec's otherwise-undefined 0) is a
	// no-op in the resync filter itself; no defaulting needed here.
	effective := *cfg

	var res Result
	var err error
	switch effective.Mode {
	case ModeBinary:
		res, err = runBinary(path1, path2, &effective)
	case ModeAuto:
		res, err = runAuto(path1, path2, &effective)
	default:
		res, err = runText(path1, path2, &effective)
	}
	// Report the code carried by the error (e.g. memory-error for an
	// oversized file) rather than the caller's generic classification.
	var fcErr *Error
	if errors.As(err, &fcErr) {
		res = fcErr.Result
	}
	return res, err
}

// CompareUTF8 delegates to Compare after validating that path1 and
// path2 are well-formed UTF-8. Malformed input surfaces as
// invalid-parameter without ever reaching the filesystem.
func CompareUTF8(path1, path2 string, cfg *Config) (Result, error) {
	if !utf8.ValidString(path1) || !utf8.ValidString(path2) {
		return ResultInvalidParameter, paramErr("compareutf8", nil)
	}
	return Compare(path1, path2, cfg)
}

func runBinary(path1, path2 string, cfg *Config) (Result, error) {
	ctx := &DiffContext{Path1: path1, Path2: path2, UserContext: cfg.UserContext}
	res, err := compareBinary(ctx, cfg, path1, path2)
	if err != nil {
		return res, err
	}
	return res, nil
}

func runAuto(path1, path2 string, cfg *Config) (Result, error) {
	text1, err := sniffFile(path1)
	if err != nil {
		return ResultIOError, err
	}
	text2, err := sniffFile(path2)
	if err != nil {
		return ResultIOError, err
	}
	if text1 && text2 {
		return runText(path1, path2, cfg)
	}
	return runBinary(path1, path2, cfg)
}

func sniffFile(path string) (bool, error) {
	buf, err := Slurp(path)
	if err != nil {
		return false, err
	}
	if len(buf) > sniffPrefixSize {
		buf = buf[:sniffPrefixSize]
	}
	return isLikelyText(buf), nil
}

func runText(path1, path2 string, cfg *Config) (Result, error) {
	buf1, err := Slurp(path1)
	if err != nil {
		return ResultIOError, err
	}
	buf2, err := Slurp(path2)
	if err != nil {
		return ResultIOError, err
	}

	seqA, err := normalizeLines(buf1, cfg)
	if err != nil {
		return ResultMemoryError, err
	}
	seqB, err := normalizeLines(buf2, cfg)
	if err != nil {
		return ResultMemoryError, err
	}

	lcs := computeLCS(seqA, seqB)

	// The unfiltered LCS already covers every line of both sequences,
	// i.e. the two files are position-wise hash-equal: identical
	// inputs must report ok regardless of the resync threshold, so this
	// check must happen before the resync filter can discard anchors.
	if len(lcs.A) == len(seqA.Lines) && len(lcs.A) == len(seqB.Lines) {
		return ResultOk, nil
	}

	filtered := applyResyncFilter(lcs, cfg.ResyncLines)

	ctx := &DiffContext{
		Path1: path1, Path2: path2,
		LineA: seqA, LineB: seqB,
		UserContext: cfg.UserContext,
	}
	return emitLineBlocks(ctx, cfg, seqA, seqB, filtered), nil
}
