package cache

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// FileSchema returns a JSON Schema describing the on-disk cache file, for
// `devscope cache schema` and external consumers of tools.json.
func FileSchema() *jsonschema.Schema {
	r := jsonschema.Reflector{ExpandedStruct: true}
	entrySch := r.Reflect(&Entry{})
	props := jsonschema.NewProperties()
	props.Set("tools", &jsonschema.Schema{
		Type:                 "object",
		Description:          "Map of tool id to cache entry.",
		AdditionalProperties: entrySch,
	})
	props.Set("lastFullScanAt", &jsonschema.Schema{
		Type:        "integer",
		Description: "Epoch milliseconds of the last completed full scan.",
	})
	return &jsonschema.Schema{
		Title:       "devscope tool cache",
		Description: "Last-known tool scan results keyed by tool id.",
		Type:        "object",
		Properties:  props,
	}
}

// MarshalSchema indents the schema to JSON bytes.
func MarshalSchema(sch *jsonschema.Schema) ([]byte, error) {
	return json.MarshalIndent(sch, "", "  ")
}
