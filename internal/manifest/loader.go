package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
)

// Load reads and validates package.json from the package root, then fills
// the derived NamespaceOrPublisher and ID fields on the returned copy.
//
// Failure modes, in check order:
//   - the file is missing or not parseable as JSON (wrapped read/parse error)
//   - one or more fields have the wrong shape (joined *FieldError values)
//   - version is not a semantic version (*FieldError)
//   - no publisher or namespace is derivable (identity errors)
func Load(root string) (*Manifest, error) {
	path := filepath.Join(root, FileName)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	issues, err := validateShape(data)
	if err != nil {
		return nil, fmt.Errorf("validating manifest %s: %w", path, err)
	}
	if len(issues) > 0 {
		joined := make([]error, len(issues))
		for i, issue := range issues {
			joined[i] = issue
		}
		return nil, errors.Join(joined...)
	}

	// Shape is valid, so the typed decode cannot fail on field types.
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding manifest %s: %w", path, err)
	}

	if _, err := semver.NewVersion(m.Version); err != nil {
		return nil, &FieldError{Field: "version", Reason: fmt.Sprintf("%q is not a semantic version", m.Version)}
	}

	namespace, _ := ParsePackageName(m.Name)
	if m.Publisher != "" {
		m.NamespaceOrPublisher = m.Publisher
	} else {
		m.NamespaceOrPublisher = namespace
	}

	id, err := ComputeID(&m)
	if err != nil {
		return nil, err
	}
	m.ID = id

	return &m, nil
}
