package format

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/iudanet/snipkeeper/internal/models"
)

//go:embed schema/snippet.schema.json
var snippetSchema []byte

const schemaURL = "snippet.schema.json"

// JSONParser разбирает JSON документы: один сниппет, массив
// или объект вида {"snippets": [...]}. Документ сначала проверяется схемой.
type JSONParser struct {
	schema *jsonschema.Schema
}

// NewJSONParser compiles the embedded schema. It panics only if the
// embedded schema itself is broken.
func NewJSONParser() *JSONParser {
	sch, err := compileSchema()
	if err != nil {
		panic(fmt.Sprintf("snippet schema: %v", err))
	}
	return &JSONParser{schema: sch}
}

func compileSchema() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(snippetSchema))
	if err != nil {
		return nil, fmt.Errorf("failed to decode schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	return c.Compile(schemaURL)
}

// Parse implements Parser.
func (p *JSONParser) Parse(name string, data []byte) ([]models.Snippet, error) {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	if err := p.schema.Validate(inst); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	switch {
	case bytes.HasPrefix(trimmed, []byte("[")):
		var list []models.Snippet
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("failed to decode snippet list: %w", err)
		}
		return list, nil
	default:
		var probe struct {
			Snippets []models.Snippet `json:"snippets"`
		}
		if err := json.Unmarshal(trimmed, &probe); err != nil {
			return nil, fmt.Errorf("failed to decode document: %w", err)
		}
		if probe.Snippets != nil {
			return probe.Snippets, nil
		}

		var single models.Snippet
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return nil, fmt.Errorf("failed to decode snippet: %w", err)
		}
		return []models.Snippet{single}, nil
	}
}

// Encode serializes one snippet into the JSON file layout used for uploads.
func Encode(s models.Snippet) (string, []byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", nil, fmt.Errorf("failed to encode snippet: %w", err)
	}
	return FileName(s.ID), append(data, '\n'), nil
}

// FileName returns the file name a snippet is uploaded under.
func FileName(id string) string {
	return id + ".json"
}
