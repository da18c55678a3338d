package layout

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema/document.schema.json
var documentSchema []byte

const documentSchemaName = "layout-document.json"

// DocumentValidator checks decoded documents against the embedded JSON Schema.
// The schema is compiled once and reused.
type DocumentValidator struct {
	mu       sync.RWMutex
	compiled *jsonschema.Schema
	source   []byte
}

// NewDocumentValidator builds a validator for the embedded document schema.
func NewDocumentValidator() *DocumentValidator {
	return &DocumentValidator{source: documentSchema}
}

// NewDocumentValidatorWithSchema builds a validator for a caller-supplied
// schema, used by tools that extend the document format.
func NewDocumentValidatorWithSchema(schema []byte) *DocumentValidator {
	return &DocumentValidator{source: schema}
}

var defaultDocumentValidator = NewDocumentValidator()

// Validate ensures doc satisfies the schema.
func (v *DocumentValidator) Validate(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}
	schema, err := v.schema()
	if err != nil {
		return err
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("layout: marshal document: %w", err)
	}
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("layout: normalize document: %w", err)
	}
	if err := schema.Validate(payload); err != nil {
		return fmt.Errorf("%w: %s failed schema validation: %w", ErrInvalidDocument, doc.label(), err)
	}
	return nil
}

func (v *DocumentValidator) schema() (*jsonschema.Schema, error) {
	v.mu.RLock()
	schema := v.compiled
	v.mu.RUnlock()
	if schema != nil {
		return schema, nil
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(documentSchemaName, bytes.NewReader(v.source)); err != nil {
		return nil, fmt.Errorf("layout: load document schema: %w", err)
	}
	compiled, err := compiler.Compile(documentSchemaName)
	if err != nil {
		return nil, fmt.Errorf("layout: compile document schema: %w", err)
	}
	v.mu.Lock()
	v.compiled = compiled
	v.mu.Unlock()
	return compiled, nil
}
