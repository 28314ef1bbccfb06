package main

import (
	"fmt"
	"io"
	"os"

	"github.com/birkland/streamres"
	"github.com/urfave/cli"
)

var check cli.Command = cli.Command{
	Name:      "check",
	Usage:     "Report whether paths resolve",
	ArgsUsage: "path...",
	Action: func(c *cli.Context) error {
		r, err := newResolver(mainOpts.driver)
		if err != nil {
			return err
		}
		defer r.Dispose()

		return checkAction(os.Stdout, r, c.Args())
	},
}

func checkAction(w io.Writer, r streamres.Resolver, paths []string) error {
	for _, path := range paths {
		status := "absent"
		if stream, ok := r.Resolve(path); ok {
			status = "ok"
			_ = stream.Close()
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\n", path, status); err != nil {
			return err
		}
	}
	return nil
}
