package manifest

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ReservedPublisher is the placeholder some scaffolds leave in package.json.
// It is rejected wherever a real publisher is required.
const ReservedPublisher = "undefined_publisher"

// maxDirNameLen is the common filesystem limit for a single path component.
const maxDirNameLen = 255

var nonWord = regexp.MustCompile(`[^0-9A-Za-z_]`)

var (
	// ErrMissingPublisher is returned when neither a publisher field nor a
	// scoped-name namespace is available.
	ErrMissingPublisher = errors.New("manifest declares no publisher and the name has no @namespace prefix")

	// ErrInvalidPublisher is returned when the publisher contains no usable
	// characters after normalization.
	ErrInvalidPublisher = errors.New("publisher contains no letters, digits, or underscores")

	// ErrNameTooLong is returned when the derived directory name would exceed
	// the filesystem path-component limit.
	ErrNameTooLong = errors.New("derived directory name exceeds the 255 character limit")
)

// ParsePackageName splits a scoped name of the form "@namespace/name" into
// its namespace and unscoped name. Unscoped names pass through with an
// empty namespace.
func ParsePackageName(name string) (namespace, unscoped string) {
	if strings.HasPrefix(name, "@") {
		if i := strings.Index(name, "/"); i > 1 {
			return name[1:i], name[i+1:]
		}
	}
	return "", name
}

// ComputeID derives the stable, version-independent extension id
// "<normalizedPublisher>.<unscopedName>". The publisher field takes
// precedence over a namespace parsed out of a scoped name.
func ComputeID(m *Manifest) (string, error) {
	namespace, unscoped := ParsePackageName(m.Name)

	publisher := m.Publisher
	if publisher == "" {
		publisher = namespace
	}
	if publisher == "" || publisher == ReservedPublisher {
		return "", fmt.Errorf("computing id for %q: %w", m.Name, ErrMissingPublisher)
	}

	normalized := nonWord.ReplaceAllString(strings.ToLower(publisher), "")
	if normalized == "" {
		return "", fmt.Errorf("computing id for %q: %w", m.Name, ErrInvalidPublisher)
	}

	return normalized + "." + unscoped, nil
}

// DirectoryName derives the on-disk install directory name "<id>-<version>".
func DirectoryName(m *Manifest) (string, error) {
	id, err := ComputeID(m)
	if err != nil {
		return "", err
	}

	name := id + "-" + m.Version
	if len(name) >= maxDirNameLen {
		return "", fmt.Errorf("directory name %q: %w", name[:32]+"...", ErrNameTooLong)
	}
	return name, nil
}
