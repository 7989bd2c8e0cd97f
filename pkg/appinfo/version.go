// Package appinfo defines application build informations.
package appinfo

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Pre-defined variables set by LDFLAGS like below:
//
//	go build -ldflags '-X github.com/nfbio/mulled/pkg/appinfo.version=v1.0.0'
var (
	// version value from regexp capture in gitTag
	version = "dev"
	// buildDate output from `date -u +'%Y-%m-%dT%H:%M:%SZ'`
	buildDate = "1970-01-01T00:00:00Z"
	// gitCommit output from `git rev-parse HEAD`
	gitCommit = ""
	// gitTreeState determined from `git status --porcelain`. either 'clean' or 'dirty'
	gitTreeState = ""
)

// Version records the application's version and build information.
type Version struct {
	Version      string `json:"version" yaml:"version"`
	GitCommit    string `json:"git_commit,omitempty" yaml:"git_commit,omitempty"`
	GitTreeState string `json:"git_tree_state,omitempty" yaml:"git_tree_state,omitempty"`
	BuildDate    string `json:"build_date,omitempty" yaml:"build_date,omitempty"`
	GoVersion    string `json:"go_version,omitempty" yaml:"go_version,omitempty"`
	Platform     string `json:"platform,omitempty" yaml:"platform,omitempty"`
}

// GetVersion returns the Version of the application.
func GetVersion() Version {
	return Version{
		Version:      version,
		GitCommit:    gitCommit,
		GitTreeState: gitTreeState,
		BuildDate:    buildDate,
		GoVersion:    runtime.Version(),
		Platform:     fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// ShortVersion returns the short version string.
func ShortVersion() string {
	if len(gitCommit) > 7 {
		return version + "-" + gitCommit[0:8]
	}
	return version
}

// NewVersionWriter returns *VersionWriter which wrapped with Version.
func NewVersionWriter(v Version) *VersionWriter {
	return &VersionWriter{
		version: v,
	}
}

// VersionWriter wraps Version to provides helpful methods.
type VersionWriter struct {
	version Version

	short   bool
	format  string
	appName string
}

// SetShort is a chain methods to set short options.
func (vw *VersionWriter) SetShort(short bool) *VersionWriter {
	vw.short = short
	return vw
}

// SetFormat is a chain methods to set format options.
func (vw *VersionWriter) SetFormat(format string) *VersionWriter {
	vw.format = format
	return vw
}

// SetAppName is a chain methods to set application name options.
func (vw *VersionWriter) SetAppName(name string) *VersionWriter {
	vw.appName = name
	return vw
}

// Version returns wrapped Version object.
func (vw VersionWriter) Version() Version {
	return vw.version
}

// ShortLine returns the one-line short version description.
func (vw VersionWriter) ShortLine() string {
	line := vw.version.Version
	if vw.appName != "" {
		line = vw.appName + " version " + line
	}
	return line
}

// Write will write version information with options into io.Writer
// and return error when failed.
func (vw VersionWriter) Write(w io.Writer) error {
	switch strings.ToLower(vw.format) {
	case "yaml", "yml":
		return yaml.NewEncoder(w).Encode(vw.version)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(vw.version)
	}
	if vw.short {
		_, err := fmt.Fprintln(w, vw.ShortLine())
		return err
	}
	lines := []string{
		vw.ShortLine(),
		fmt.Sprintf("  go version: %s", vw.version.GoVersion),
		fmt.Sprintf("  platform:   %s", vw.version.Platform),
	}
	if vw.version.GitCommit != "" {
		lines = append(lines, fmt.Sprintf("  git commit: %s (%s)", vw.version.GitCommit, vw.version.GitTreeState))
	}
	if vw.version.BuildDate != "" {
		lines = append(lines, fmt.Sprintf("  build date: %s", vw.version.BuildDate))
	}
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}
