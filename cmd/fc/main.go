// Command fc is a thin command-line driver over the fc comparison
// engine, replicating the classic Windows fc.exe flag grammar.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/zbalkan/fc"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: false}).With().Timestamp().Logger()

func usage(prog string) {
	fmt.Printf("Usage: %s [options] file1 file2\n", prog)
	fmt.Println("Options:")
	fmt.Println("  /B    Binary comparison")
	fmt.Println("  /C    Case-insensitive comparison")
	fmt.Println("  /W    Ignore whitespace differences")
	fmt.Println("  /L    ASCII text comparison")
	fmt.Println("  /N    Show line numbers in text mode")
	fmt.Println("  /T    Do not expand tabs")
	fmt.Println("  /U    Unicode text comparison")
	fmt.Println("  /nnnn Set resync line threshold (default 2)")
	fmt.Println("  /LBn  Set internal buffer size for text lines (default 100)")
}

// parseArgs mirrors fc.c's argument loop: options are recognized by a
// '/' or '-' prefix and are case-insensitive; the final two positional
// arguments are always the two file paths.
func parseArgs(args []string) (cfg *fc.Config, path1, path2 string, err error) {
	if len(args) < 2 {
		return nil, "", "", fmt.Errorf("need two file arguments")
	}

	cfg = fc.DefaultConfig()

	for i := 0; i < len(args)-2; i++ {
		opt := args[i]
		if len(opt) < 2 || (opt[0] != '/' && opt[0] != '-') {
			return nil, "", "", fmt.Errorf("invalid argument: %s", opt)
		}
		body := opt[1:]

		switch {
		case body[0] >= '0' && body[0] <= '9':
			n, convErr := strconv.Atoi(body)
			if convErr != nil {
				return nil, "", "", fmt.Errorf("invalid option: %s", opt)
			}
			cfg.ResyncLines = n
		case len(body) >= 2 && strings.EqualFold(body[:2], "lb") && len(body) > 2:
			n, convErr := strconv.Atoi(body[2:])
			if convErr != nil {
				return nil, "", "", fmt.Errorf("invalid option: %s", opt)
			}
			cfg.BufferLines = n
		default:
			switch strings.ToUpper(body)[0] {
			case 'B':
				cfg.Mode = fc.ModeBinary
			case 'C':
				cfg.Flags |= fc.IgnoreCase
			case 'W':
				cfg.Flags |= fc.IgnoreWhitespace
			case 'L':
				cfg.Mode = fc.ModeTextASCII
			case 'N':
				cfg.Flags |= fc.ShowLineNumbers
			case 'T':
				cfg.Flags |= fc.PreserveRawTabs
			case 'U':
				cfg.Mode = fc.ModeTextUnicode
			default:
				return nil, "", "", fmt.Errorf("invalid option: %s", opt)
			}
		}
	}

	return cfg, args[len(args)-2], args[len(args)-1], nil
}

func printBlock(ctx *fc.DiffContext, block fc.DiffBlock) {
	switch b := block.(type) {
	case fc.LineBlock:
		var verb string
		switch b.Kind {
		case fc.BlockAdd:
			verb = "added"
		case fc.BlockDelete:
			verb = "deleted"
		default:
			verb = "changed"
		}
		fmt.Printf("%s lines %d-%d / %d-%d (%s)\n", ctx.Path1, b.StartA+1, b.EndA, b.StartB+1, b.EndB, verb)
	case fc.ByteBlock:
		fmt.Printf("%08X: %02X %02X\n", b.Offset, b.ByteA, b.ByteB)
	case fc.SizeBlock:
		fmt.Printf("size mismatch: %s=%d %s=%d\n", ctx.Path1, b.SizeA, ctx.Path2, b.SizeB)
	}
}

func main() {
	os.Exit(run(os.Args))
}

func run(argv []string) int {
	prog := filepath.Base(argv[0])
	if len(argv) < 3 {
		usage(prog)
		return -1
	}

	cfg, path1, path2, err := parseArgs(argv[1:])
	if err != nil {
		fmt.Println(err)
		usage(prog)
		return -1
	}
	cfg.Callback = printBlock

	result, err := fc.Compare(path1, path2, cfg)
	switch result {
	case fc.ResultOk:
		return 0
	case fc.ResultDifferent:
		return 1
	case fc.ResultIOError, fc.ResultMemoryError:
		log.Error().Err(err).Str("path1", path1).Str("path2", path2).Msg("comparison failed")
		return 2
	default:
		log.Error().Err(err).Msg("invalid parameter")
		return -1
	}
}
