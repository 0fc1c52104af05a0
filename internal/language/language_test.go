package language

import (
	"errors"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		in       string
		wantCode string
		wantName string
	}{
		{"en", "en", "English"},
		{"hi", "hi", "Hindi"},
		{"HI", "hi", "Hindi"},
		{"en-IN", "en", "English"},
		{" ta ", "ta", "Tamil"},
		{"bn", "bn", "Bengali"},
	}
	for _, tt := range tests {
		got, err := Lookup(tt.in)
		if err != nil {
			t.Errorf("Lookup(%q) error = %v", tt.in, err)
			continue
		}
		if got.Code != tt.wantCode || got.Name != tt.wantName {
			t.Errorf("Lookup(%q) = %+v, want %s/%s", tt.in, got, tt.wantCode, tt.wantName)
		}
	}
}

func TestLookupRejectsUnsupported(t *testing.T) {
	for _, in := range []string{"fr", "", "not a tag!"} {
		if _, err := Lookup(in); !errors.Is(err, ErrUnsupported) {
			t.Errorf("Lookup(%q) error = %v, want ErrUnsupported", in, err)
		}
	}
}
