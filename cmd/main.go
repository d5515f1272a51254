package main

import (
	"fmt"
	"os"

	"github.com/rony4d/go-bytestream/cmd/bytestream/launcher"
)

func main() {
	if err := launcher.Launch(os.Args); err != nil {
		// Report the issue to stderr so it does not mix with command output
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
