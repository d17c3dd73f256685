// Package manifest provides the YAML codec for environment manifests.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Daisey666/envfile/internal/core/domain"
	"github.com/Daisey666/envfile/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ManifestLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Discover walks up from cwd until it finds an environment.yml or
// environment.yaml, preferring the primary spelling within a directory.
func (l *Loader) Discover(cwd string) (string, error) {
	currentDir := cwd

	for {
		for _, name := range []string{domain.EnvFileName, domain.EnvFileNameAlt} {
			candidate := filepath.Join(currentDir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrManifestNotFound, "cwd", cwd)
}

// Load reads and parses the manifest at the given path.
func (l *Loader) Load(path string) (*domain.Manifest, error) {
	// #nosec G304 -- path comes from CLI arguments or Discover
	data, err := os.ReadFile(path)
	if err != nil {
		err = zerr.Wrap(err, domain.ErrManifestReadFailed.Error())
		return nil, zerr.With(err, "path", path)
	}

	var root yaml.Node
	if parseErr := yaml.Unmarshal(data, &root); parseErr != nil {
		parseErr = zerr.Wrap(parseErr, domain.ErrManifestParseFailed.Error())
		return nil, zerr.With(parseErr, "path", path)
	}

	m, err := l.parseDocument(&root)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	m.Notes = harvestNotes(data)
	return m, nil
}

func (l *Loader) parseDocument(root *yaml.Node) (*domain.Manifest, error) {
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, domain.ErrManifestParseFailed
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, zerr.With(domain.ErrManifestParseFailed, "reason", "document is not a mapping")
	}

	m := &domain.Manifest{}

	for i := 0; i+1 < len(doc.Content); i += 2 {
		key := doc.Content[i]
		value := doc.Content[i+1]

		switch key.Value {
		case fieldName:
			m.Name = value.Value
		case fieldChannels:
			channels, err := parseChannels(value)
			if err != nil {
				return nil, err
			}
			m.Channels = channels
		case fieldDependencies:
			if err := l.parseDependencies(m, value); err != nil {
				return nil, err
			}
		case fieldPrefix:
			// Machine-local install path emitted by some exporters; not part of the model.
			l.Logger.Warn(fmt.Sprintf("ignoring %q field (machine-specific)", fieldPrefix))
		default:
			l.Logger.Warn(fmt.Sprintf("ignoring unknown field %q", key.Value))
		}
	}

	return m, nil
}

func parseChannels(node *yaml.Node) ([]domain.Channel, error) {
	if node.Kind != yaml.SequenceNode {
		err := zerr.With(domain.ErrManifestParseFailed, "reason", "channels must be a sequence")
		return nil, zerr.With(err, "line", node.Line)
	}

	channels := make([]domain.Channel, 0, len(node.Content))
	for _, item := range node.Content {
		if item.Kind != yaml.ScalarNode || item.Value == "" {
			err := zerr.With(domain.ErrManifestParseFailed, "reason", "channel must be a non-empty string")
			return nil, zerr.With(err, "line", item.Line)
		}
		channels = append(channels, domain.Channel(item.Value))
	}
	return channels, nil
}

func (l *Loader) parseDependencies(m *domain.Manifest, node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return zerr.With(domain.ErrMalformedDependencies, "line", node.Line)
	}

	for _, item := range node.Content {
		switch item.Kind {
		case yaml.ScalarNode:
			dep, err := domain.ParseCondaSpec(item.Value)
			if err != nil {
				return zerr.With(err, "line", item.Line)
			}
			m.Dependencies = append(m.Dependencies, dep)
		case yaml.MappingNode:
			if err := l.parsePipGroup(m, item); err != nil {
				return err
			}
		default:
			return zerr.With(domain.ErrUnsupportedEntry, "line", item.Line)
		}
	}

	return nil
}

func (l *Loader) parsePipGroup(m *domain.Manifest, node *yaml.Node) error {
	if len(node.Content) != 2 || node.Content[0].Value != pipKey {
		return zerr.With(domain.ErrUnsupportedEntry, "line", node.Line)
	}

	seq := node.Content[1]
	if seq.Kind != yaml.SequenceNode {
		return zerr.With(domain.ErrMalformedPipGroup, "line", seq.Line)
	}

	for _, item := range seq.Content {
		if item.Kind != yaml.ScalarNode {
			return zerr.With(domain.ErrMalformedPipGroup, "line", item.Line)
		}
		dep, err := domain.ParsePipSpec(item.Value)
		if err != nil {
			return zerr.With(err, "line", item.Line)
		}
		m.Pip = append(m.Pip, dep)
	}

	return nil
}

// harvestNotes extracts operator instructions recorded as comments:
// lines whose comment text reads as a manual install command.
func harvestNotes(data []byte) []string {
	var notes []string
	for line := range strings.Lines(string(data)) {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "#") {
			continue
		}
		text := strings.TrimSpace(strings.TrimPrefix(trimmed, "#"))
		if strings.HasPrefix(text, "pip install") || strings.HasPrefix(text, "conda install") {
			notes = append(notes, text)
		}
	}
	return notes
}
