// Package schema performs closed-world structural validation of request
// payloads: a payload is valid only when its field set is exactly the
// declared set and every value has the declared primitive type. Extra
// fields are rejected, not ignored, so unexpected client-supplied state
// is never silently accepted.
package schema

import (
	"fmt"

	"bookclub/internal/domain"
)

// Kind is a primitive type tag a payload field must match.
type Kind string

const (
	String Kind = "string"
	Number Kind = "number"
	Bool   Kind = "bool"
)

// Schema maps field names to the primitive kind each must hold.
type Schema map[string]Kind

// Validate checks payload against the schema. It returns an
// invalid-argument error when the field count differs, a field name is
// unknown, or a value's runtime type does not match its declared kind.
// A nil payload is treated as empty.
func (s Schema) Validate(payload map[string]any) error {
	if len(payload) != len(s) {
		return domain.NewError(domain.CodeInvalidArgument, "Payload contains an invalid number of fields")
	}
	for name, value := range payload {
		kind, ok := s[name]
		if !ok {
			return domain.NewError(domain.CodeInvalidArgument, fmt.Sprintf("Payload contains unexpected field %q", name))
		}
		if !matches(value, kind) {
			return domain.NewError(domain.CodeInvalidArgument, fmt.Sprintf("Payload field %q must be a %s", name, kind))
		}
	}
	return nil
}

// matches reports whether a JSON-decoded value has the given kind.
// encoding/json decodes every JSON number into float64.
func matches(value any, kind Kind) bool {
	switch kind {
	case String:
		_, ok := value.(string)
		return ok
	case Number:
		_, ok := value.(float64)
		return ok
	case Bool:
		_, ok := value.(bool)
		return ok
	default:
		return false
	}
}

// Str returns the named field as a string. Call only after Validate has
// accepted the payload against a schema declaring the field as String.
func Str(payload map[string]any, name string) string {
	v, _ := payload[name].(string)
	return v
}
