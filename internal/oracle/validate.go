package oracle

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/tbruins/stroomadvies/internal/common"
)

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
// A payload that is not JSON at all, or that misses the schema, surfaces
// as ErrOraclePayloadInvalid; it is never parsed leniently into zeroes.
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return common.NewAppError("ORACLE_PAYLOAD", "response is not JSON", common.ErrOraclePayloadInvalid)
	}
	if err := schema.Validate(v); err != nil {
		return common.NewAppError("ORACLE_PAYLOAD", fmt.Sprintf("json does not match schema: %v", err), common.ErrOraclePayloadInvalid)
	}
	return nil
}
