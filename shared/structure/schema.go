package structure

import (
	"bytes"
	"encoding/json"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// documentSchema descreve o formato do documento de estrutura
// (size + palette + blocks). Mantido embutido para o visor validar
// qualquer arquivo antes de tentar materializar.
const documentSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["size", "palette", "blocks"],
  "properties": {
    "size": {
      "type": "array",
      "items": { "type": "integer", "minimum": 1 },
      "minItems": 3,
      "maxItems": 3
    },
    "palette": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name"],
        "properties": {
          "name": { "type": "string", "minLength": 1 },
          "properties": {
            "type": "object",
            "additionalProperties": { "type": "string" }
          }
        }
      }
    },
    "blocks": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["pos", "state"],
        "properties": {
          "pos": {
            "type": "array",
            "items": { "type": "integer", "minimum": 0 },
            "minItems": 3,
            "maxItems": 3
          },
          "state": { "type": "integer", "minimum": 0 }
        }
      }
    }
  }
}`

var compiledSchema = jsonschema.MustCompileString("structure.schema.json", documentSchema)

// ValidateDocument valida os bytes crus de um documento contra o schema.
func ValidateDocument(data []byte) error {
	var v any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return err
	}
	return compiledSchema.Validate(v)
}
