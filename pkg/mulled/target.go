package mulled

// NewTarget returns a Target composed of the given tool name and version.
func NewTarget(name, version string) Target {
	return Target{Name: name, Version: version}
}

// Target is a normalized (tool, version) pair used for image name
// construction. A zero Version means the tool is unpinned.
type Target struct {
	Name    string
	Version string
}

// String returns the target in the canonical <tool==version> form.
func (t Target) String() string {
	if t.Version == "" {
		return t.Name
	}
	return t.Name + "==" + t.Version
}
