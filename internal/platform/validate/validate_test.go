package validate

import (
	"strings"
	"testing"
)

type sample struct {
	Name   string `json:"name" validate:"max=5"`
	Nested struct {
		Answer string `json:"answer" validate:"max=3"`
	} `json:"nested"`
}

func TestStruct_OK(t *testing.T) {
	if err := Struct(sample{Name: "Milo"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStruct_UsesJSONNames(t *testing.T) {
	s := sample{Name: "Bartholomew"}
	err := Struct(s)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !strings.HasPrefix(err.Error(), "name ") {
		t.Fatalf("expected message to start with json field name, got %q", err.Error())
	}

	s = sample{}
	s.Nested.Answer = "maybe"
	err = Struct(s)
	if err == nil || !strings.HasPrefix(err.Error(), "answer ") {
		t.Fatalf("expected nested json field name, got %v", err)
	}
}
