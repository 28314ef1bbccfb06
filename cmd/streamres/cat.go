package main

import (
	"fmt"
	"io"
	"os"

	"github.com/birkland/streamres"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"golang.org/x/sync/errgroup"
)

var catOpts = struct {
	parallel int
}{}

var cat cli.Command = cli.Command{
	Name:  "cat",
	Usage: "Print the contents of resolved paths",
	Description: `Resolves each given path and writes its content to stdout,
	in the order the paths were given.

	Paths are resolved and read concurrently.  A path that does not
	resolve (it does not exist, is a directory, cannot be opened, etc)
	is reported, and causes cat to fail once every other path has been
	written.`,
	ArgsUsage: "path...",
	Flags: []cli.Flag{
		cli.IntFlag{
			Name:        "parallel, p",
			Usage:       "Maximum number of paths read at once",
			Value:       10,
			Destination: &catOpts.parallel,
		},
	},

	Action: func(c *cli.Context) error {
		r, err := newResolver(mainOpts.driver)
		if err != nil {
			return err
		}
		defer r.Dispose()

		return catAction(os.Stdout, r, c.Args(), catOpts.parallel)
	},
}

type catResult struct {
	content []byte
	ok      bool
}

func catAction(w io.Writer, r streamres.Resolver, paths []string, parallel int) error {
	if parallel < 1 {
		parallel = 1
	}

	results := make([]catResult, len(paths))
	sem := make(chan struct{}, parallel)

	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			sem <- struct{}{}
			defer func() { <-sem }()

			content, ok, err := streamres.ReadAll(r, path)
			if err != nil {
				return err
			}
			results[i] = catResult{content: content, ok: ok}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return errors.Wrapf(err, "cat failed")
	}

	absent := 0
	for i, res := range results {
		if !res.ok {
			logrus.WithField("path", paths[i]).Warn("path does not resolve")
			absent++
			continue
		}
		if _, err := w.Write(res.content); err != nil {
			return errors.Wrapf(err, "could not write content of %s", paths[i])
		}
	}

	if absent > 0 {
		return fmt.Errorf("%d of %d paths did not resolve", absent, len(paths))
	}
	return nil
}
