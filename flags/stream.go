package flags

import (
	"gopkg.in/urfave/cli.v1"
)

// InputFlags select where a command's payload comes from.
func InputFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "input.file",
			Usage: "Read the payload from this file instead of the hex argument",
		},
		cli.IntFlag{
			Name:  "input.max",
			Usage: "Reject payloads larger than this many bytes (0 = preset limit)",
		},
		cli.IntFlag{
			Name:  "writer.cap",
			Usage: "Initial writer capacity in bytes (0 = preset value)",
		},
	}
}

// DecodeFlags configure text decoding.
func DecodeFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "charset",
			Usage: "IANA charset name used to decode the payload",
		},
	}
}

// SliceFlags position the reader window.
func SliceFlags() []cli.Flag {
	return []cli.Flag{
		cli.Int64Flag{
			Name:  "skip",
			Usage: "Bytes to skip before reading",
		},
		cli.IntFlag{
			Name:  "limit",
			Usage: "Maximum bytes to read after skipping (0 = preset limit)",
		},
	}
}
