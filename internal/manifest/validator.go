package manifest

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/package.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// getSchema compiles the embedded JSON schema once and returns it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("package.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("package.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// validateShape validates raw package.json bytes against the embedded schema
// and returns one *FieldError per offending field. The error return is for
// I/O or schema compilation failures, not validation outcomes.
func validateShape(data []byte) ([]*FieldError, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return nil, nil
	}

	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}

	issues := collectFieldErrors(validationErr, nil)
	if len(issues) == 0 {
		issues = []*FieldError{{Field: "", Reason: validationErr.Error()}}
	}
	return dedupeFieldErrors(issues), nil
}

// collectFieldErrors walks the validation error tree and converts leaf
// errors into field-level errors.
func collectFieldErrors(ve *jsonschema.ValidationError, issues []*FieldError) []*FieldError {
	if len(ve.Causes) == 0 {
		field := strings.Join(ve.InstanceLocation, "/")

		keyword := ""
		if ve.ErrorKind != nil {
			kwPath := ve.ErrorKind.KeywordPath()
			if len(kwPath) > 0 {
				keyword = kwPath[len(kwPath)-1]
			}
		}
		// Skip generic container errors that aren't informative.
		if keyword == "oneOf" || keyword == "allOf" || keyword == "$ref" || keyword == "" {
			return issues
		}

		reason := ""
		if ve.ErrorKind != nil {
			reason = ve.ErrorKind.LocalizedString(printer)
		}
		return append(issues, &FieldError{Field: field, Reason: reason})
	}

	for _, cause := range ve.Causes {
		issues = collectFieldErrors(cause, issues)
	}
	return issues
}

// dedupeFieldErrors removes duplicate issues (same field + reason).
func dedupeFieldErrors(issues []*FieldError) []*FieldError {
	seen := make(map[string]bool)
	var result []*FieldError
	for _, issue := range issues {
		key := issue.Field + "|" + issue.Reason
		if !seen[key] {
			seen[key] = true
			result = append(result, issue)
		}
	}
	return result
}
