package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	gen := NewUUIDGenerator()

	id := gen.Generate()
	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("generated id is not a valid UUID: %v", err)
	}
	if parsed.Version() != 7 && parsed.Version() != 4 {
		t.Errorf("expected version 7 (or fallback 4) UUID, got v%d", parsed.Version())
	}
}

func TestUUIDGenerator_Generate_Unique(t *testing.T) {
	gen := NewUUIDGenerator()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := gen.Generate()
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}
