package intake

import (
	"strings"
	"testing"
)

func TestParseYesNo(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
		err      bool
	}{
		{"yes", true, false},
		{"YES", true, false},
		{" Yes ", true, false},
		{"y", true, false},
		{"true", true, false},
		{"1", true, false},
		{"no", false, false},
		{"No", false, false},
		{"n", false, false},
		{"FALSE", false, false},
		{"0", false, false},
		{"", false, true},
		{"   ", false, true},
		{"maybe", false, true},
		{"yess", false, true},
		{"2", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseYesNo(tt.input, "has_life_insurance")
			if (err != nil) != tt.err {
				t.Fatalf("ParseYesNo(%q) error = %v, wantErr %v", tt.input, err, tt.err)
			}
			if !tt.err && got != tt.expected {
				t.Errorf("ParseYesNo(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseYesNoErrorNamesField(t *testing.T) {
	_, err := ParseYesNo("maybe", "has_health_insurance")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "has_health_insurance") {
		t.Errorf("error %q does not name the field", err)
	}
	if !strings.Contains(err.Error(), "maybe") {
		t.Errorf("error %q does not name the rejected input", err)
	}
}
