package schema_test

import (
	"errors"
	"testing"

	"bookclub/internal/domain"
	"bookclub/internal/schema"
)

var profileSchema = schema.Schema{"username": schema.String}

var commentSchema = schema.Schema{
	"bookId":  schema.String,
	"comment": schema.String,
}

func TestValidate_ExactMatch(t *testing.T) {
	payload := map[string]any{"bookId": "book1", "comment": "great read"}
	if err := commentSchema.Validate(payload); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidate_FieldSetMismatch(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
	}{
		{"superset", map[string]any{"username": "alice", "extra": "x"}},
		{"subset", map[string]any{}},
		{"disjoint", map[string]any{"nickname": "alice"}},
		{"nil payload", nil},
		{"right count wrong key", map[string]any{"user": "alice"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := profileSchema.Validate(tc.payload)
			if !errors.Is(err, domain.ErrInvalidArgument) {
				t.Fatalf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestValidate_TypeMismatch(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
	}{
		{"number for string", map[string]any{"username": 42.0}},
		{"bool for string", map[string]any{"username": true}},
		{"null for string", map[string]any{"username": nil}},
		{"object for string", map[string]any{"username": map[string]any{}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := profileSchema.Validate(tc.payload)
			if !errors.Is(err, domain.ErrInvalidArgument) {
				t.Fatalf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestValidate_NumberAndBoolKinds(t *testing.T) {
	s := schema.Schema{"count": schema.Number, "public": schema.Bool}

	if err := s.Validate(map[string]any{"count": 3.0, "public": true}); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	err := s.Validate(map[string]any{"count": "3", "public": true})
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestStr(t *testing.T) {
	payload := map[string]any{"username": "alice"}
	if got := schema.Str(payload, "username"); got != "alice" {
		t.Fatalf("expected alice, got %q", got)
	}
}
