package manifest

// Document mirrors the YAML shape of an environment manifest. The
// dependencies sequence mixes scalar specs with a single nested pip
// mapping, so it is typed as []any and assembled explicitly.
type Document struct {
	Name         string   `yaml:"name,omitempty"`
	Channels     []string `yaml:"channels"`
	Dependencies []any    `yaml:"dependencies"`
}

// PipGroup is the nested secondary-installer entry inside the
// dependencies sequence.
type PipGroup struct {
	Pip []string `yaml:"pip"`
}

// Field names of the manifest document.
const (
	fieldName         = "name"
	fieldChannels     = "channels"
	fieldDependencies = "dependencies"
	fieldPrefix       = "prefix"
	pipKey            = "pip"
)
