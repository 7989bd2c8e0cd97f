package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/nfbio/mulled/pkg/cmdhelper"
	"github.com/nfbio/mulled/pkg/errdefs"
)

// NewExistsCommand returns a command with default values.
func NewExistsCommand() *ExistsCommand {
	return &ExistsCommand{
		RegistryOptions: NewRegistryOptions(),
	}
}

// ExistsCommand checks whether an already generated image name:tag exists
// in the remote registry.
type ExistsCommand struct {
	*RegistryOptions
}

// ToCLI transforms to a *cli.Command.
func (c *ExistsCommand) ToCLI() *cli.Command {
	return &cli.Command{
		Name:  "exists",
		Usage: "Check whether an image name:tag exists in the remote registry",
		UsageText: `mulled exists [OPTIONS] IMAGE

# Check an image on quay.io/biocontainers
$ mulled exists mulled-v2-1f09f39f20b1c4ee36581dc81cc323c70e661633:bd74d08a359024829a7aec1638a28607bbcd8a58-0
`,
		ArgsUsage: "IMAGE",
		Flags:     c.Flags(),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return ctx, cmdhelper.ExactArgs(1)(ctx, cmd)
		},
		Action:    c.Run,
	}
}

// Flags defines the flags related to the current command.
func (c *ExistsCommand) Flags() []cli.Flag {
	return c.RegistryOptions.Flags()
}

// Run is the main function for the current command.
func (c *ExistsCommand) Run(ctx context.Context, cmd *cli.Command) error {
	imageName := cmd.Args().First()
	registry := c.NewRegistry()
	found, err := registry.ImageExists(ctx, imageName)
	if err != nil {
		return err
	}
	if !found {
		return errdefs.Newf(errdefs.ErrNotFound, "image %q not found at %s", imageName, registry.ImageURL(imageName))
	}
	cmdhelper.Fprintf(cmd.Writer, "image found: %s", registry.ImageURL(imageName))
	return nil
}
