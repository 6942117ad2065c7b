// Package fc compares two files, text or binary, and reports their
// differences through a caller-supplied callback. It is the comparison
// core behind the fc command-line driver in cmd/fc.
package fc

// Mode selects how two inputs are compared.
type Mode int

const (
	// ModeTextASCII compares normalized lines with ASCII case folding.
	ModeTextASCII Mode = iota
	// ModeTextUnicode compares normalized lines with full Unicode case folding.
	ModeTextUnicode
	// ModeBinary compares raw bytes.
	ModeBinary
	// ModeAuto sniffs each input and routes to text or binary.
	ModeAuto
)

// Flags is a bitset of comparison options.
type Flags uint8

const (
	// IgnoreCase folds case before hashing and comparing lines.
	IgnoreCase Flags = 1 << iota
	// IgnoreWhitespace strips spaces and tabs before hashing and storing lines.
	IgnoreWhitespace
	// ShowLineNumbers is opaque metadata passed through to the callback.
	ShowLineNumbers
	// PreserveRawTabs disables the tab-to-four-spaces expansion.
	PreserveRawTabs
)

func (f Flags) has(bit Flags) bool { return f&bit != 0 }

// Result is the outcome of a comparison.
type Result int

const (
	ResultOk Result = iota
	ResultDifferent
	ResultIOError
	ResultInvalidParameter
	ResultMemoryError
)

func (r Result) String() string {
	switch r {
	case ResultOk:
		return "ok"
	case ResultDifferent:
		return "different"
	case ResultIOError:
		return "io-error"
	case ResultInvalidParameter:
		return "invalid-parameter"
	case ResultMemoryError:
		return "memory-error"
	default:
		return "unknown"
	}
}

// DiffCallback receives one diff block per invocation, in increasing
// position order. The callback must not retain ctx or block past return.
type DiffCallback func(ctx *DiffContext, block DiffBlock)

// Config controls one comparison call.
type Config struct {
	Mode        Mode
	Flags       Flags
	ResyncLines int // minimum run length kept by the resync filter, defaults to 2
	BufferLines int // reserved hint, defaults to 100
	Callback    DiffCallback
	UserContext any
}

// DefaultConfig returns the configuration fc.exe uses with no mode flag:
// auto mode, no flags, resync threshold 2, buffer-lines hint 100.
func DefaultConfig() *Config {
	return &Config{
		Mode:        ModeAuto,
		Flags:       0,
		ResyncLines: 2,
		BufferLines: 100,
	}
}

// DiffContext is passed to the callback alongside each block. For binary
// comparisons LineA and LineB are nil.
type DiffContext struct {
	Path1, Path2 string
	LineA, LineB *LineSequence
	UserContext  any
}

// DiffBlock is the sum type emitted by the engine. Its three concrete
// implementations are LineBlock, ByteBlock, and SizeBlock.
type DiffBlock interface {
	isDiffBlock()
}

// BlockKind distinguishes the three LineBlock variants.
type BlockKind int

const (
	BlockChange BlockKind = iota
	BlockAdd
	BlockDelete
)

// LineBlock reports a range of lines that differ between A and B.
type LineBlock struct {
	Kind   BlockKind
	StartA int
	EndA   int // exclusive
	StartB int
	EndB   int // exclusive
}

func (LineBlock) isDiffBlock() {}

// ByteBlock reports a single mismatching byte offset in a binary comparison.
type ByteBlock struct {
	Offset int64
	ByteA  byte
	ByteB  byte
}

func (ByteBlock) isDiffBlock() {}

// SizeBlock reports that two files being binary-compared have different sizes.
type SizeBlock struct {
	SizeA int64
	SizeB int64
}

func (SizeBlock) isDiffBlock() {}

// Line is an immutable normalized line produced by the line normalizer.
type Line struct {
	Text []byte
	Hash uint32
}

// LineSequence is an ordered, indexable list of lines produced from one file.
type LineSequence struct {
	Lines []Line
}

func (s *LineSequence) Len() int { return len(s.Lines) }
