package fc

// applyResyncFilter keeps only maximal runs of the LCS where both index
// arrays advance by exactly one per step, discarding runs shorter than
// resyncLines. resyncLines <= 1 returns lcs itself unchanged, per the spec's decision
// to treat an unspecified 0 the same as 1.
func applyResyncFilter(lcs *lcsResult, resyncLines int) *lcsResult {
	if resyncLines <= 1 || len(lcs.A) == 0 {
		return lcs
	}

	n := len(lcs.A)
	out := &lcsResult{A: make([]int, 0, n), B: make([]int, 0, n)}

	runStart := 0
	for i := 1; i <= n; i++ {
		broken := i == n || lcs.A[i] != lcs.A[i-1]+1 || lcs.B[i] != lcs.B[i-1]+1
		if broken {
			runLen := i - runStart
			if runLen >= resyncLines {
				out.A = append(out.A, lcs.A[runStart:i]...)
				out.B = append(out.B, lcs.B[runStart:i]...)
			}
			runStart = i
		}
	}

	return out
}
