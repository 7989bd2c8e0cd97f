// Package main is the entry of the application.
package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/nfbio/mulled/pkg/cmdhelper"
	"github.com/nfbio/mulled/pkg/commands"
	"github.com/nfbio/mulled/pkg/xlog"
)

const (
	appName = "mulled"
)

func main() {
	var debug bool
	app := cli.Command{
		Name:                  appName,
		Usage:                 "Generate BioContainers mulled version 2 image names",
		Suggest:               true,
		EnableShellCompletion: true,
		HideVersion:           true,
		HideHelpCommand:       true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "debug",
				Aliases:     []string{"d"},
				Sources:     cli.EnvVars("MULLED_DEBUG"),
				Usage:       "enable debug mode",
				Destination: &debug,
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if debug {
				xlog.SetLevel(xlog.LevelDebug)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			commands.NewVersionCommand().ToCLI(),
			commands.NewGenerateCommand().ToCLI(),
			commands.NewParseCommand().ToCLI(),
			commands.NewExistsCommand().ToCLI(),
		},
		ExitErrHandler: func(ctx context.Context, c *cli.Command, err error) {
			cli.HandleExitCoder(err)
			cmdhelper.Fprintf(c.ErrWriter, "Error: %+v\n", err)
			os.Exit(1)
		},
	}
	//nolint:errcheck // already checked in root command ExitErrHandler
	_ = app.Run(context.Background(), os.Args)
}
