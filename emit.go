package fc

// emitLineBlocks walks the filtered LCS and invokes ctx's callback for
// each change/add/delete block. Returns ResultDifferent if any block
// fired, else ResultOk.
func emitLineBlocks(ctx *DiffContext, cfg *Config, a, b *LineSequence, lcs *lcsResult) Result {
	lPrime := len(lcs.A)
	if lPrime == len(a.Lines) && lPrime == len(b.Lines) {
		return ResultOk
	}

	result := ResultOk
	aStart, bStart := 0, 0

	for i := 0; i <= lPrime; i++ {
		aEnd, bEnd := len(a.Lines), len(b.Lines)
		if i < lPrime {
			aEnd, bEnd = lcs.A[i], lcs.B[i]
		}

		switch {
		case aStart < aEnd && bStart < bEnd:
			cfg.Callback(ctx, LineBlock{Kind: BlockChange, StartA: aStart, EndA: aEnd, StartB: bStart, EndB: bEnd})
			result = ResultDifferent
		case bStart < bEnd:
			cfg.Callback(ctx, LineBlock{Kind: BlockAdd, StartA: aStart, EndA: aEnd, StartB: bStart, EndB: bEnd})
			result = ResultDifferent
		case aStart < aEnd:
			cfg.Callback(ctx, LineBlock{Kind: BlockDelete, StartA: aStart, EndA: aEnd, StartB: bStart, EndB: bEnd})
			result = ResultDifferent
		}

		aStart, bStart = aEnd+1, bEnd+1
	}

	return result
}
