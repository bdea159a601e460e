package learnpath

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/learnyst/learnyst/internal/subject"
)

const outlineSchemaURL = "schema://learning-path.json"

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// Validate checks a generated tree against OutlineSchema and verifies that
// node ids are unique. Returns *ErrInvalidOutline on failure.
func Validate(nodes []subject.TopicNode) error {
	raw, err := json.Marshal(nodes)
	if err != nil {
		return &ErrInvalidOutline{Err: fmt.Errorf("marshal outline: %w", err)}
	}
	return ValidateJSON(raw)
}

// ValidateJSON checks a raw JSON learning path.
func ValidateJSON(raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalidOutline{
			Content: raw,
			Err:     fmt.Errorf("invalid JSON: %w", err),
		}
	}

	schema, err := outlineSchema()
	if err != nil {
		return &ErrInvalidOutline{
			Content: raw,
			Err:     fmt.Errorf("compile schema: %w", err),
		}
	}

	if err := schema.Validate(parsed); err != nil {
		return &ErrInvalidOutline{
			Content: raw,
			Err:     fmt.Errorf("schema validation failed: %w", err),
		}
	}

	var nodes []subject.TopicNode
	if err := json.Unmarshal(raw, &nodes); err != nil {
		return &ErrInvalidOutline{Content: raw, Err: err}
	}
	seen := make(map[string]bool)
	if id, ok := firstDuplicate(nodes, seen); ok {
		return &ErrInvalidOutline{
			Content: raw,
			Err:     fmt.Errorf("duplicate topic id %q", id),
		}
	}
	return nil
}

func firstDuplicate(nodes []subject.TopicNode, seen map[string]bool) (string, bool) {
	for _, n := range nodes {
		if seen[n.ID] {
			return n.ID, true
		}
		seen[n.ID] = true
		if id, ok := firstDuplicate(n.Children, seen); ok {
			return id, true
		}
	}
	return "", false
}

func outlineSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a plain decoded JSON value.
		defBytes, err := json.Marshal(OutlineSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(outlineSchemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(outlineSchemaURL)
	})
	return compiledSchema, compileErr
}

// ValidatingGenerator is a decorator that rejects trees failing Validate,
// so retry can see an invalid outline as a failed attempt.
type ValidatingGenerator struct {
	inner Generator
}

// WithValidation wraps a Generator with output validation.
func WithValidation(g Generator) Generator {
	return &ValidatingGenerator{inner: g}
}

func (v *ValidatingGenerator) Generate(ctx context.Context, input Input) ([]subject.TopicNode, error) {
	nodes, err := v.inner.Generate(ctx, input)
	if err != nil {
		return nil, err
	}
	if err := Validate(nodes); err != nil {
		return nil, err
	}
	return nodes, nil
}
