package main

import (
	"fmt"
	"io"
	"os"

	"github.com/birkland/streamres/drivers/file"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var ls cli.Command = cli.Command{
	Name:  "ls",
	Usage: "List a directory tree, showing which entries resolve",
	Description: `Walks the given directory (or the current directory) and
	prints every entry underneath it, marked "file" if it resolves to a
	readable stream or "absent" if it does not.

	Directories, devices, and links to anything but a regular file are
	always absent.  ls always uses the local filesystem resolver.`,
	ArgsUsage: "[ dir ]",
	Action: func(c *cli.Context) error {
		return lsAction(os.Stdout, c.Args())
	},
}

func lsAction(w io.Writer, args []string) error {
	var dir string
	switch len(args) {
	case 0:
		pwd, err := os.Getwd()
		if err != nil {
			return errors.Wrapf(err, "could not determine current directory")
		}
		dir = pwd
	case 1:
		dir = args[0]
	default:
		return fmt.Errorf("ls takes zero or one arguments")
	}

	r := file.NewResolver(file.Config{Logger: logrus.WithField("driver", "file")})
	return r.Walk(dir, func(ospath string, _ io.ReadCloser, ok bool) error {
		status := "absent"
		if ok {
			status = "file"
		}
		_, err := fmt.Fprintf(w, "%s\t%s\n", status, ospath)
		return err
	})
}
