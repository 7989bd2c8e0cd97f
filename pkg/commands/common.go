// Package commands defines the cli commands of the application.
package commands

import (
	"time"

	"github.com/urfave/cli/v3"

	"github.com/nfbio/mulled/pkg/appinfo"
	"github.com/nfbio/mulled/pkg/mulled"
	"github.com/nfbio/mulled/pkg/util/xhttp"
)

const (
	// RegistryFlagCategory is the category name for registry lookup flags.
	RegistryFlagCategory = "[Registry]"
)

// NewRegistryOptions returns a *RegistryOptions with default values.
func NewRegistryOptions() *RegistryOptions {
	return &RegistryOptions{
		Registry: mulled.DefaultRegistryBaseURL,
		Timeout:  xhttp.DefaultTimeout,
	}
}

// RegistryOptions defines the registry lookup options shared by commands
// that query the remote registry.
type RegistryOptions struct {
	Registry string        `json:"registry,omitempty" yaml:"registry,omitempty"`
	Timeout  time.Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`
}

// Flags returns the []cli.Flag related to current options.
func (o *RegistryOptions) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "registry",
			Usage:       "registry base URL to check images against",
			Sources:     cli.EnvVars("MULLED_REGISTRY"),
			Destination: &o.Registry,
			Value:       o.Registry,
			Category:    RegistryFlagCategory,
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Usage:       "total timeout for a registry lookup",
			Sources:     cli.EnvVars("MULLED_TIMEOUT"),
			Destination: &o.Timeout,
			Value:       o.Timeout,
			Category:    RegistryFlagCategory,
		},
	}
}

// NewRegistry returns a registry client with options configured.
func (o *RegistryOptions) NewRegistry() *mulled.Registry {
	return mulled.NewRegistry(
		mulled.WithBaseURL(o.Registry),
		mulled.WithHTTPClient(xhttp.NewClient(o.Timeout, "mulled/"+appinfo.ShortVersion())),
	)
}
