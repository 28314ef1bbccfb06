package main

import (
	"fmt"
	"os"

	"github.com/birkland/streamres"
	"github.com/birkland/streamres/drivers/afs"
	"github.com/birkland/streamres/drivers/file"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/urfave/cli"
)

var mainOpts = struct {
	verbose bool
	driver  string
}{}

func main() {
	app := cli.NewApp()
	app.Name = "streamres"
	app.Usage = "Resolve paths to readable streams"
	app.EnableBashCompletion = true
	app.Commands = []cli.Command{
		cat,
		check,
		ls,
	}
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:        "verbose, v",
			Usage:       "Log why paths fail to resolve",
			EnvVar:      "STREAMRES_VERBOSE",
			Destination: &mainOpts.verbose,
		},
		cli.StringFlag{
			Name:        "driver, d",
			Usage:       "Resolver to use {file, afero}",
			Value:       "file",
			EnvVar:      "STREAMRES_DRIVER",
			Destination: &mainOpts.driver,
		},
	}
	app.Before = func(c *cli.Context) error {
		logrus.SetLevel(logrus.InfoLevel)
		if mainOpts.verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
		return nil
	}

	err := app.Run(os.Args)
	if err != nil {
		logrus.Fatal(err)
	}
}

func newResolver(driver string) (streamres.Resolver, error) {
	switch driver {
	case "", "file":
		return file.NewResolver(file.Config{
			Logger: logrus.WithField("driver", "file"),
		}), nil
	case "afero":
		return afs.NewResolver(afs.Config{
			Fs:     afero.NewReadOnlyFs(afero.NewOsFs()),
			Logger: logrus.WithField("driver", "afero"),
		}), nil
	default:
		return nil, fmt.Errorf("unknown driver %s", driver)
	}
}
