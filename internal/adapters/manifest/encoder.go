package manifest

import (
	"bytes"
	"os"

	"github.com/Daisey666/envfile/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Encoder serializes a manifest back to YAML text.
type Encoder struct{}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode renders the manifest with 2-space indentation. Channel and
// dependency order is emitted exactly as held in the model; callers
// wanting canonical output run Manifest.Canonicalize first. Notes are
// re-emitted as trailing comment lines so round-trips preserve them.
func (e *Encoder) Encode(m *domain.Manifest) ([]byte, error) {
	doc := Document{
		Name:         m.Name,
		Channels:     make([]string, len(m.Channels)),
		Dependencies: make([]any, 0, len(m.Dependencies)+1),
	}

	for i, c := range m.Channels {
		doc.Channels[i] = string(c)
	}
	for _, dep := range m.Dependencies {
		doc.Dependencies = append(doc.Dependencies, dep.Spec())
	}
	if len(m.Pip) > 0 {
		group := PipGroup{Pip: make([]string, len(m.Pip))}
		for i, dep := range m.Pip {
			group.Pip[i] = dep.Spec()
		}
		doc.Dependencies = append(doc.Dependencies, group)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, zerr.Wrap(err, domain.ErrEncodeFailed.Error())
	}
	if err := enc.Close(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrEncodeFailed.Error())
	}

	for _, note := range m.Notes {
		buf.WriteString("# " + note + "\n")
	}

	return buf.Bytes(), nil
}

// WriteFile encodes the manifest and writes it to path.
func (e *Encoder) WriteFile(path string, m *domain.Manifest) error {
	data, err := e.Encode(m)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		err = zerr.Wrap(err, domain.ErrEncodeFailed.Error())
		return zerr.With(err, "path", path)
	}
	return nil
}
