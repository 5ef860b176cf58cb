// Package schema holds the JSON schema for the output record and
// validates records against it before they are written.
package schema

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/document.json
var schemaFS embed.FS

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// Document returns the compiled output-record schema.
func Document() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		raw, err := schemaFS.ReadFile("schemas/document.json")
		if err != nil {
			compileErr = fmt.Errorf("failed to read embedded schema: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("document.json", bytes.NewReader(raw)); err != nil {
			compileErr = fmt.Errorf("failed to load document schema: %w", err)
			return
		}
		compiled, compileErr = compiler.Compile("document.json")
	})
	return compiled, compileErr
}

// ValidateDocument checks that a record conforms to the output contract.
// The record is round-tripped through JSON so struct and map inputs
// validate identically.
func ValidateDocument(record any) error {
	sch, err := Document()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode record for validation: %w", err)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("failed to decode record for validation: %w", err)
	}

	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("record does not match output schema: %w", err)
	}
	return nil
}
