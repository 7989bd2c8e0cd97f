// Package mulled generates canonical BioContainers "mulled" version 2 image
// names from tool/version specifications and checks image existence against
// the quay.io/biocontainers registry.
package mulled

import (
	"regexp"
	"strings"

	pep440 "github.com/aquasecurity/go-pep440-version"

	"github.com/nfbio/mulled/pkg/errdefs"
)

// splitPattern matches the specification separator, a single or double
// equals sign. Only the first occurrence splits.
var splitPattern = regexp.MustCompile(`==?`)

// ParseTargets parses tool, version pairs from specification strings of the
// form <tool==version> or <tool=version>.
//
// Both the tool name and the version are trimmed of surrounding whitespace.
// The version must be a valid PEP 440 version string. Input order is
// preserved and duplicate tool names are passed through as-is.
func ParseTargets(specifications []string) ([]Target, error) {
	targets := make([]Target, 0, len(specifications))
	for _, spec := range specifications {
		parts := splitPattern.Split(spec, 2)
		if len(parts) != 2 {
			return nil, errdefs.Newf(ErrBadFormat,
				"the specification %q does not have the expected format <tool==version> or <tool=version>", spec)
		}
		tool := strings.TrimSpace(parts[0])
		version := strings.TrimSpace(parts[1])
		if tool == "" {
			return nil, errdefs.Newf(ErrBadFormat,
				"the specification %q does not name a tool, expected format <tool==version> or <tool=version>", spec)
		}
		if _, err := pep440.Parse(version); err != nil {
			return nil, errdefs.Newf(ErrBadVersion,
				"not a PEP 440 version spec: %q in %q", version, spec)
		}
		targets = append(targets, NewTarget(tool, version))
	}
	return targets, nil
}
