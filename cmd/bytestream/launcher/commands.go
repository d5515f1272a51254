package launcher

import (
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/sirupsen/logrus"
	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-bytestream/flags"
	"github.com/rony4d/go-bytestream/utils/bytesio"
)

// commandFunc is a command body with the merged config and logger resolved.
type commandFunc func(ctx *cli.Context, cfg Config, log *logrus.Logger) error

// withConfig merges the configuration, builds the logger and logs any
// failure before handing it back to cli.
func withConfig(run commandFunc) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		cfg, err := MakeAllConfigs(ctx)
		if err != nil {
			return err
		}
		log, err := newLogger(cfg, ctx.App.ErrWriter)
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"command": ctx.Command.Name,
			"preset":  cfg.Stream.Preset,
		}).Debug("Running command")

		if err := run(ctx, cfg, log); err != nil {
			log.WithError(err).WithField("command", ctx.Command.Name).Error("Command failed")
			return err
		}
		return nil
	}
}

func withFlags(groups ...[]cli.Flag) []cli.Flag {
	var all []cli.Flag
	for _, g := range groups {
		all = append(all, g...)
	}
	return all
}

func commands() []cli.Command {
	return []cli.Command{
		{
			Name:      "decode",
			Usage:     "Decode the payload as text",
			ArgsUsage: "<hex>",
			Flags:     withFlags(flags.InputFlags(), flags.DecodeFlags()),
			Action:    withConfig(decodeCmd),
		},
		{
			Name:      "slice",
			Usage:     "Print a window of the payload as hex",
			ArgsUsage: "<hex>",
			Flags:     withFlags(flags.InputFlags(), flags.SliceFlags()),
			Action:    withConfig(sliceCmd),
		},
		{
			Name:      "stat",
			Usage:     "Print payload size and composition",
			ArgsUsage: "<hex>",
			Flags:     flags.InputFlags(),
			Action:    withConfig(statCmd),
		},
		{
			Name:      "rlp",
			Usage:     "List the top-level RLP items of the payload",
			ArgsUsage: "<hex>",
			Flags:     flags.InputFlags(),
			Action:    withConfig(rlpCmd),
		},
		{
			Name:      "charsets",
			Usage:     "Check charset names against the registry",
			ArgsUsage: "<name> [<name>...]",
			Action:    withConfig(charsetsCmd),
		},
	}
}

// decodeCmd loads the payload into a Writer and decodes it.
func decodeCmd(ctx *cli.Context, cfg Config, log *logrus.Logger) error {
	r, err := loadInput(cfg)
	if err != nil {
		return err
	}
	w := bytesio.NewWriter(cfg.Stream.WriterCapacity)
	n, err := r.TransferTo(w)
	if err != nil {
		return err
	}
	text, err := w.DecodeString(cfg.Stream.Charset)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"bytes": n, "charset": cfg.Stream.Charset}).Debug("Decoded payload")
	_, err = fmt.Fprintln(ctx.App.Writer, text)
	return err
}

// sliceCmd skips and reads a bounded window.
func sliceCmd(ctx *cli.Context, cfg Config, log *logrus.Logger) error {
	r, err := loadInput(cfg)
	if err != nil {
		return err
	}
	skipped := r.Skip(cfg.Slice.Skip)
	window, err := r.ReadN(cfg.Slice.Limit)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"skipped":   skipped,
		"read":      len(window),
		"remaining": r.Available(),
	}).Debug("Sliced payload")
	_, err = fmt.Fprintln(ctx.App.Writer, hexutil.Encode(window))
	return err
}

// statCmd reports size, writer capacity after loading and how much of the
// payload is printable ASCII.
func statCmd(ctx *cli.Context, cfg Config, log *logrus.Logger) error {
	r, err := loadInput(cfg)
	if err != nil {
		return err
	}
	size := r.Available()
	r.Mark(size)

	printable := 0
	for c := r.Next(); c != bytesio.EOF; c = r.Next() {
		if c >= 0x20 && c < 0x7F {
			printable++
		}
	}
	r.Reset()

	w := bytesio.NewWriter(cfg.Stream.WriterCapacity)
	if _, err := r.TransferTo(w); err != nil {
		return err
	}

	ratio := 0.0
	if size > 0 {
		ratio = float64(printable) / float64(size) * 100
	}
	out := ctx.App.Writer
	fmt.Fprintf(out, "size:      %s (%d bytes)\n", humanize.Bytes(uint64(size)), size)
	fmt.Fprintf(out, "capacity:  %s\n", humanize.Bytes(uint64(w.Cap())))
	fmt.Fprintf(out, "printable: %.1f%%\n", ratio)
	return nil
}

// rlpCmd streams top-level RLP items straight from the Reader.
func rlpCmd(ctx *cli.Context, cfg Config, log *logrus.Logger) error {
	r, err := loadInput(cfg)
	if err != nil {
		return err
	}
	s := rlp.NewStream(r, uint64(r.Available()))
	for i := 0; ; i++ {
		kind, size, err := s.Kind()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		raw, err := s.Raw()
		if err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		fmt.Fprintf(ctx.App.Writer, "%d\t%s\t%d\t%s\n", i, kindName(kind), size, hexutil.Encode(raw))
	}
}

func kindName(k rlp.Kind) string {
	switch k {
	case rlp.Byte:
		return "byte"
	case rlp.String:
		return "string"
	case rlp.List:
		return "list"
	default:
		return "unknown"
	}
}

// charsetsCmd reports which of the given names the decoder accepts.
func charsetsCmd(ctx *cli.Context, cfg Config, log *logrus.Logger) error {
	names := []string(ctx.Args())
	if len(names) == 0 {
		names = []string{cfg.Stream.Charset}
	}
	unsupported := 0
	for _, name := range names {
		status := "supported"
		if _, err := bytesio.LookupEncoding(name); err != nil {
			status = "unsupported"
			unsupported++
		}
		fmt.Fprintf(ctx.App.Writer, "%s\t%s\n", name, status)
	}
	if unsupported > 0 {
		return fmt.Errorf("%d of %d charsets: %w", unsupported, len(names), bytesio.ErrUnsupportedEncoding)
	}
	return nil
}
