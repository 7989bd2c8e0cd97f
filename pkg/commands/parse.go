package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/nfbio/mulled/pkg/cmdhelper"
	"github.com/nfbio/mulled/pkg/mulled"
)

// NewParseCommand returns a command with default values.
func NewParseCommand() *ParseCommand {
	return &ParseCommand{
		Output: "text",
	}
}

// ParseCommand validates tool specifications and prints the normalized
// tool, version pairs.
type ParseCommand struct {
	Output string
}

// ToCLI transforms to a *cli.Command.
func (c *ParseCommand) ToCLI() *cli.Command {
	return &cli.Command{
		Name:  "parse",
		Usage: "Validate tool specifications and print the parsed pairs",
		UsageText: `mulled parse [OPTIONS] SPEC [SPEC...]

# Validate specifications
$ mulled parse samtools==1.9 bcftools=1.9
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
func (c *ParseCommand) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       `output format, oneof ["text", "json"]`,
			Destination: &c.Output,
			Value:       c.Output,
		},
	}
}

// Run is the main function for the current command.
func (c *ParseCommand) Run(_ context.Context, cmd *cli.Command) error {
	targets, err := mulled.ParseTargets(cmd.Args().Slice())
	if err != nil {
		return err
	}
	if c.Output == "json" {
		result := make([]struct {
			Tool    string `json:"tool"`
			Version string `json:"version"`
		}, 0, len(targets))
		for _, target := range targets {
			result = append(result, struct {
				Tool    string `json:"tool"`
				Version string `json:"version"`
			}{Tool: target.Name, Version: target.Version})
		}
		data, err := cmdhelper.PrettifyJSON(result)
		if err != nil {
			return err
		}
		cmdhelper.Fprintf(cmd.Writer, "%s", data)
		return nil
	}
	for _, target := range targets {
		cmdhelper.Fprintf(cmd.Writer, "%s\t%s", target.Name, target.Version)
	}
	return nil
}
