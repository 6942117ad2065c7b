package fc

const binaryChunkSize = 64 * 1024

// compareBinary opens both files, short-circuits on a size mismatch,
// and otherwise walks both mappings byte-for-byte, emitting one change
// block per mismatching offset in increasing order.
func compareBinary(ctx *DiffContext, cfg *Config, path1, path2 string) (Result, error) {
	m1, err := Map(path1)
	if err != nil {
		return ResultIOError, err
	}
	defer m1.Close()

	m2, err := Map(path2)
	if err != nil {
		return ResultIOError, err
	}
	defer m2.Close()

	if m1.Len() != m2.Len() {
		cfg.Callback(ctx, SizeBlock{SizeA: m1.Len(), SizeB: m2.Len()})
		return ResultDifferent, nil
	}
	if m1.Len() == 0 {
		return ResultOk, nil
	}

	result := ResultOk
	buf1 := make([]byte, binaryChunkSize)
	buf2 := make([]byte, binaryChunkSize)

	for off := int64(0); off < m1.Len(); off += binaryChunkSize {
		n := binaryChunkSize
		if remaining := m1.Len() - off; remaining < int64(n) {
			n = int(remaining)
		}
		if _, err := m1.ReadAt(buf1[:n], off); err != nil {
			return ResultIOError, ioErr("binary.read", err)
		}
		if _, err := m2.ReadAt(buf2[:n], off); err != nil {
			return ResultIOError, ioErr("binary.read", err)
		}
		for i := 0; i < n; i++ {
			if buf1[i] != buf2[i] {
				cfg.Callback(ctx, ByteBlock{Offset: off + int64(i), ByteA: buf1[i], ByteB: buf2[i]})
				result = ResultDifferent
			}
		}
	}

	return result, nil
}
