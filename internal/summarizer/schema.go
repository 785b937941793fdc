package summarizer

import (
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const actionItemSchemaURL = "action_items.schema.json"

const actionItemSchemaJSON = `{
  "type": "object",
  "required": ["individual_actions", "team_actions", "entities"],
  "properties": {
    "individual_actions": {
      "type": "object",
      "additionalProperties": {
        "type": "array",
        "items": {"type": "string"}
      }
    },
    "team_actions": {
      "type": "array",
      "items": {"type": "string"}
    },
    "entities": {
      "type": "array",
      "items": {"type": "string"}
    }
  }
}`

var actionItemSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(actionItemSchemaURL, strings.NewReader(actionItemSchemaJSON)); err != nil {
		panic(err)
	}
	schema, err := compiler.Compile(actionItemSchemaURL)
	if err != nil {
		panic(err)
	}
	return schema
}
