// pkg/registry/validate.go
package registry

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ValidateOutput checks a payload against the activity's declared output
// schema. Activities without an output schema accept anything.
func (a *Activity) ValidateOutput(payload interface{}) error {
	return validateAgainst(a.OutputSchema, payload, "output")
}

// ValidateInput checks a payload against the activity's declared input schema.
func (a *Activity) ValidateInput(payload interface{}) error {
	return validateAgainst(a.InputSchema, payload, "input")
}

func validateAgainst(schema map[string]interface{}, payload interface{}, kind string) error {
	if len(schema) == 0 {
		return nil
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(schema),
		gojsonschema.NewGoLoader(payload),
	)
	if err != nil {
		return fmt.Errorf("validate %s schema: %w", kind, err)
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return fmt.Errorf("%s schema violations: %s", kind, strings.Join(problems, "; "))
}
