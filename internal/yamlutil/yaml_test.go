package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

type sample struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	var s sample
	if err := Unmarshal([]byte("title: T\nauthor: A\n"), &s); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if s.Title != "T" || s.Author != "A" {
		t.Errorf("Unmarshal() = %+v", s)
	}
}

func TestUnmarshalInputGuards(t *testing.T) {
	t.Parallel()

	var s sample
	if err := Unmarshal(nil, &s); !errors.Is(err, ErrNoData) {
		t.Errorf("Unmarshal(nil) error = %v, want ErrNoData", err)
	}
	if err := Unmarshal([]byte("a: b"), nil); !errors.Is(err, ErrNilDestination) {
		t.Errorf("Unmarshal(_, nil) error = %v, want ErrNilDestination", err)
	}

	big := []byte(strings.Repeat("a", MaxHeaderSize+1))
	if err := Unmarshal(big, &s); !errors.Is(err, ErrHeaderTooLarge) {
		t.Errorf("Unmarshal(big) error = %v, want ErrHeaderTooLarge", err)
	}
}

func TestUnmarshalStrictRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	var s sample
	err := UnmarshalStrict([]byte("title: T\nunknown: x\n"), &s)
	if err == nil {
		t.Error("UnmarshalStrict() accepted unknown field")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	t.Parallel()

	in := sample{Title: "Report", Author: "sam"}
	data, err := Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var out sample
	if err := Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if out != in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}
