package callable

// Type tags a schema can declare for a payload field. They correspond to the
// primitive types a decoded JSON object can hold.
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
)

// Schema declares the exact shape of a procedure payload: field name to
// primitive type tag. Payloads are flat; there is no nesting and no optional
// field.
type Schema map[string]string

// Validate checks payload against schema.
//
// The field-count check runs first and rejects any payload whose number of
// fields differs from the schema's, missing and extra alike. Only when the
// counts match does the per-field pass run, rejecting unknown names and
// mistyped values. The two-phase order is part of the contract: a payload
// with one wrong field but the right count fails on the per-field pass, not
// the count check.
func Validate(payload map[string]any, schema Schema) error {
	if len(payload) != len(schema) {
		return InvalidArgument("Data object contains invalid number of properties")
	}

	for key, value := range payload {
		tag, ok := schema[key]
		if !ok || typeTagOf(value) != tag {
			return InvalidArgument("Data object contains invalid properties")
		}
	}

	return nil
}

// typeTagOf reports the primitive type tag of a decoded JSON value.
// encoding/json decodes numbers into float64 and everything else into the
// obvious Go primitive.
func typeTagOf(value any) string {
	switch value.(type) {
	case string:
		return TypeString
	case float64:
		return TypeNumber
	case bool:
		return TypeBoolean
	default:
		return ""
	}
}
