package launcher

import (
	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-bytestream/flags"
)

var app = newApp()

func newApp() *cli.App {
	a := flags.NewApp()
	a.Flags = flags.CommonFlags()
	a.Commands = commands()
	return a
}

// Launch parses args and runs the selected command.
func Launch(args []string) error {
	return app.Run(args)
}
