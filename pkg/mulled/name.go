package mulled

import (
	"crypto/sha1" //nolint:gosec // image identity per the mulled convention, not security
	"encoding/hex"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// DefaultBuildNumber is the build number used when none is supplied.
const DefaultBuildNumber = 0

// GenerateOption configures GenerateImageName.
type GenerateOption func(*generateOptions)

type generateOptions struct {
	baseImage   string
	buildNumber int
}

// WithBaseImage overrides the computed image name entirely. An empty value
// keeps the default computed name.
func WithBaseImage(name string) GenerateOption {
	return func(o *generateOptions) {
		o.baseImage = name
	}
}

// WithBuildNumber sets the incremental build number distinguishing rebuilds
// of the same target set. Values below zero are treated as zero.
func WithBuildNumber(n int) GenerateOption {
	return func(o *generateOptions) {
		o.buildNumber = n
	}
}

// GenerateImageName composes the BioContainers mulled version 2 image
// name:tag for the given targets.
//
// The result is deterministic for a given target set, base image and build
// number. Multi-target names hash the targets in tool name order, so the
// generated name does not depend on the order distinct tools are supplied
// in; targets sharing a tool name keep their relative input order.
func GenerateImageName(targets []Target, opts ...GenerateOption) string {
	o := generateOptions{buildNumber: DefaultBuildNumber}
	for _, opt := range opts {
		opt(&o)
	}
	build := o.buildNumber
	if build < 0 {
		build = 0
	}
	return v2ImageName(targets, strconv.Itoa(build), o.baseImage)
}

// v2ImageName implements the mulled version 2 naming convention. The
// encoding must stay bit-for-bit compatible with the registry's existing
// scheme: a single target maps to <tool>:<version>--<build>, multiple
// targets map to mulled-v2-<sha1 of tool names>:<sha1 of versions>-<build>
// with both buffers joined by newlines in tool name order. An empty
// imageBuild or nameOverride means "not set".
func v2ImageName(targets []Target, imageBuild, nameOverride string) string {
	if nameOverride != "" {
		return nameOverride
	}

	if len(targets) == 1 {
		target := targets[0]
		name := strings.ToLower(target.Name)
		suffix := ""
		if target.Version != "" {
			suffix = ":" + target.Version
			if imageBuild != "" {
				suffix += "--" + imageBuild
			}
		} else if imageBuild != "" {
			suffix = ":" + imageBuild
		}
		return name + suffix
	}

	// the sort must be stable: duplicate tool names keep their input order
	// in the version buffer
	ordered := slices.Clone(targets)
	slices.SortStableFunc(ordered, func(a, b Target) int {
		return strings.Compare(a.Name, b.Name)
	})

	packageHash := sha1Hex(lo.Map(ordered, func(t Target, _ int) string {
		return t.Name
	}))
	versionHash := ""
	if lo.SomeBy(ordered, func(t Target) bool { return t.Version != "" }) {
		// an unpinned target contributes the literal "null" to the buffer
		versionHash = sha1Hex(lo.Map(ordered, func(t Target, _ int) string {
			if t.Version == "" {
				return "null"
			}
			return t.Version
		}))
	}

	buildSuffix := ""
	if imageBuild != "" {
		if versionHash != "" {
			buildSuffix = "-" + imageBuild
		} else {
			// tagged version is simply the build
			buildSuffix = imageBuild
		}
	}

	name := "mulled-v2-" + packageHash
	if versionHash != "" || buildSuffix != "" {
		name += ":" + versionHash + buildSuffix
	}
	return name
}

func sha1Hex(lines []string) string {
	sum := sha1.Sum([]byte(strings.Join(lines, "\n"))) //nolint:gosec // see import note
	return hex.EncodeToString(sum[:])
}
