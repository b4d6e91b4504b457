package manifest

import "fmt"

// FileName is the plugin descriptor read from the package root.
const FileName = "package.json"

// Manifest is the validated plugin descriptor.
type Manifest struct {
	Name      string            `json:"name"`
	Version   string            `json:"version"`
	Main      string            `json:"main"`
	Publisher string            `json:"publisher,omitempty"`
	Homepage  string            `json:"homepage,omitempty"`
	License   string            `json:"license,omitempty"`
	Keywords  []string          `json:"keywords,omitempty"`
	Files     []string          `json:"files,omitempty"`
	Scripts   map[string]string `json:"scripts,omitempty"`

	// Derived at load time, never persisted back to package.json.
	NamespaceOrPublisher string `json:"-"`
	ID                   string `json:"-"`
}

// FieldError reports a single malformed or missing manifest field.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("manifest field %q %s", e.Field, e.Reason)
}
