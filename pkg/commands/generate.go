package commands

import (
	"context"

	"github.com/spf13/cast"
	"github.com/urfave/cli/v3"

	"github.com/nfbio/mulled/pkg/cmdhelper"
	"github.com/nfbio/mulled/pkg/errdefs"
	"github.com/nfbio/mulled/pkg/mulled"
)

// NewGenerateCommand returns a command with default values.
func NewGenerateCommand() *GenerateCommand {
	return &GenerateCommand{
		RegistryOptions: NewRegistryOptions(),
		BuildNumber:     "0",
		Output:          "text",
	}
}

// GenerateCommand generates the mulled version 2 image name for a set of
// tool specifications.
type GenerateCommand struct {
	*RegistryOptions
	BaseImage   string
	BuildNumber string
	Check       bool
	Output      string
}

// ToCLI transforms to a *cli.Command.
func (c *GenerateCommand) ToCLI() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Generate the mulled image name for tool specifications",
		UsageText: `mulled generate [OPTIONS] SPEC [SPEC...]

# Generate the image name for a multi-tool container
$ mulled generate samtools==1.9 bcftools==1.9

# Generate and confirm the image exists on quay.io
$ mulled generate --check samtools==1.9 bcftools==1.9
`,
		ArgsUsage: "SPEC [SPEC...]",
		Flags:     c.Flags(),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return ctx, cmdhelper.MinimumNArgs(1)(ctx, cmd)
		},
		Action:    c.Run,
	}
}

// Flags defines the flags related to the current command.
func (c *GenerateCommand) Flags() []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "base-image",
			Usage:       "base image name overriding the computed name entirely",
			Destination: &c.BaseImage,
			Value:       c.BaseImage,
		},
		&cli.StringFlag{
			Name:        "build-number",
			Aliases:     []string{"n"},
			Usage:       "incremental build number distinguishing rebuilds of the same target set",
			Destination: &c.BuildNumber,
			Value:       c.BuildNumber,
		},
		&cli.BoolFlag{
			Name:        "check",
			Usage:       "check whether the generated image exists in the remote registry",
			Destination: &c.Check,
			Value:       c.Check,
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       `output format, oneof ["text", "json"]`,
			Destination: &c.Output,
			Value:       c.Output,
		},
	}
	return append(flags, c.RegistryOptions.Flags()...)
}

// Run is the main function for the current command.
func (c *GenerateCommand) Run(ctx context.Context, cmd *cli.Command) error {
	targets, err := mulled.ParseTargets(cmd.Args().Slice())
	if err != nil {
		return err
	}
	buildNumber, err := cast.ToIntE(c.BuildNumber)
	if err != nil || buildNumber < 0 {
		return errdefs.Newf(errdefs.ErrInvalidParameter,
			"build number must be a non-negative integer, got %q", c.BuildNumber)
	}

	imageName := mulled.GenerateImageName(targets,
		mulled.WithBaseImage(c.BaseImage),
		mulled.WithBuildNumber(buildNumber),
	)
	registry := c.NewRegistry()

	var exists *bool
	if c.Check {
		found, err := registry.ImageExists(ctx, imageName)
		if err != nil {
			return err
		}
		exists = &found
	}

	if c.Output == "json" {
		result := struct {
			Image  string `json:"image"`
			URL    string `json:"url"`
			Exists *bool  `json:"exists,omitempty"`
		}{
			Image:  imageName,
			URL:    registry.ImageURL(imageName),
			Exists: exists,
		}
		data, err := cmdhelper.PrettifyJSON(result)
		if err != nil {
			return err
		}
		cmdhelper.Fprintf(cmd.Writer, "%s", data)
		return nil
	}

	cmdhelper.Fprintf(cmd.Writer, "%s", imageName)
	cmdhelper.Fprintf(cmd.Writer, "%s", registry.ImageURL(imageName))
	if exists != nil {
		if *exists {
			cmdhelper.Fprintf(cmd.Writer, "image found in the registry")
		} else {
			cmdhelper.Fprintf(cmd.Writer, "image not found in the registry")
		}
	}
	return nil
}
