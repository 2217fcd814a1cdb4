// internal/common/validation/schema.go
package validation

import (
	"encoding/json"
	"fmt"
)

// JSONSchema defines the structure for worker input/output schemas.
type JSONSchema struct {
	Type                 string              `json:"type"`
	Properties           map[string]Property `json:"properties"`
	Required             []string            `json:"required,omitempty"`
	AdditionalProperties bool                `json:"additionalProperties,omitempty"`
}

type Property struct {
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
	Minimum     *float64 `json:"minimum,omitempty"`
	Maximum     *float64 `json:"maximum,omitempty"`
	Enum        []string `json:"enum,omitempty"`
	MinLength   *int     `json:"minLength,omitempty"`
	MaxLength   *int     `json:"maxLength,omitempty"`
}

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ValidateInput validates input against a schema with detailed errors.
func ValidateInput(input map[string]interface{}, schema JSONSchema) *ValidationResult {
	errs := []ValidationError{}

	for _, requiredField := range schema.Required {
		if _, exists := input[requiredField]; !exists {
			errs = append(errs, ValidationError{
				Field:   requiredField,
				Message: "required field missing",
				Code:    "REQUIRED_FIELD_MISSING",
			})
		}
	}

	for fieldName, value := range input {
		prop, exists := schema.Properties[fieldName]
		if !exists {
			if !schema.AdditionalProperties {
				errs = append(errs, ValidationError{
					Field:   fieldName,
					Message: "field not allowed in schema",
					Code:    "EXTRA_FIELD",
				})
			}
			continue
		}

		errs = append(errs, validateProperty(fieldName, value, prop)...)
	}

	return &ValidationResult{
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}

func validateProperty(field string, value interface{}, prop Property) []ValidationError {
	var errs []ValidationError

	switch prop.Type {
	case "string":
		str, ok := value.(string)
		if !ok {
			return []ValidationError{{Field: field, Message: "expected string", Code: "TYPE_MISMATCH"}}
		}
		if prop.MinLength != nil && len(str) < *prop.MinLength {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("shorter than minimum length %d", *prop.MinLength),
				Code:    "MIN_LENGTH",
			})
		}
		if prop.MaxLength != nil && len(str) > *prop.MaxLength {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("exceeds maximum length %d", *prop.MaxLength),
				Code:    "MAX_LENGTH",
			})
		}
		if len(prop.Enum) > 0 {
			found := false
			for _, allowed := range prop.Enum {
				if str == allowed {
					found = true
					break
				}
			}
			if !found {
				errs = append(errs, ValidationError{
					Field:   field,
					Message: fmt.Sprintf("value %q not in allowed set", str),
					Code:    "ENUM_VIOLATION",
				})
			}
		}

	case "number", "integer":
		num, ok := toFloat(value)
		if !ok {
			return []ValidationError{{Field: field, Message: "expected number", Code: "TYPE_MISMATCH"}}
		}
		if prop.Minimum != nil && num < *prop.Minimum {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("below minimum %v", *prop.Minimum),
				Code:    "MINIMUM",
			})
		}
		if prop.Maximum != nil && num > *prop.Maximum {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("above maximum %v", *prop.Maximum),
				Code:    "MAXIMUM",
			})
		}

	case "boolean":
		if _, ok := value.(bool); !ok {
			errs = append(errs, ValidationError{Field: field, Message: "expected boolean", Code: "TYPE_MISMATCH"})
		}
	}

	return errs
}

func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}

// CreatorProfileSchema returns the schema the input pre-check applies to raw
// creator records, with the deployment's configured bounds.
func CreatorProfileSchema(maxFollowers int64, maxBioLength int) JSONSchema {
	zero := 0.0
	hundred := 100.0
	maxF := float64(maxFollowers)
	return JSONSchema{
		Type: "object",
		Properties: map[string]Property{
			"username":       {Type: "string", MinLength: intPtr(1)},
			"nickname":       {Type: "string"},
			"bio":            {Type: "string", MaxLength: intPtr(maxBioLength)},
			"followers":      {Type: "integer", Minimum: &zero, Maximum: &maxF},
			"engagementRate": {Type: "number", Minimum: &zero, Maximum: &hundred},
			"verified":       {Type: "boolean"},
			"bioLink":        {Type: "string"},
			"commerceUser":   {Type: "boolean"},
			"sellerFlag":     {Type: "boolean"},
		},
		Required:             []string{"username", "followers"},
		AdditionalProperties: true,
	}
}

func intPtr(v int) *int { return &v }
