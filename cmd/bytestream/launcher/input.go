package launcher

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/rony4d/go-bytestream/utils/bytesio"
)

var (
	errNoInput      = errors.New("no input: pass a hex payload or --input.file")
	errInputTooLong = errors.New("input exceeds the configured limit")
)

// loadInput resolves the payload described by cfg.Input into a Reader.
func loadInput(cfg Config) (*bytesio.Reader, error) {
	switch {
	case cfg.Input.File != "":
		return loadFile(cfg.Input.File, cfg.Stream.MaxInputBytes)
	case cfg.Input.Hex != "":
		return loadHex(cfg.Input.Hex, cfg.Stream.MaxInputBytes)
	default:
		return nil, errNoInput
	}
}

func loadFile(path string, max int) (*bytesio.Reader, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > int64(max) {
		return nil, fmt.Errorf("%s is %d bytes: %w", path, info.Size(), errInputTooLong)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return bytesio.NewReader(raw), nil
}

// loadHex accepts the payload with or without the 0x prefix.
func loadHex(s string, max int) (*bytesio.Reader, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}
	if (len(s)-2)/2 > max {
		return nil, fmt.Errorf("hex payload of %d bytes: %w", (len(s)-2)/2, errInputTooLong)
	}
	raw, err := hexutil.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex payload: %w", err)
	}
	return bytesio.NewReader(raw), nil
}
