package intake

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		err      bool
	}{
		// Plain numbers
		{"5000", 5000, false},
		{"12000.50", 12000.50, false},
		{"-100", -100, false},
		{"+250", 250, false},
		{"  42  ", 42, false},
		{".5", 0.5, false},

		// Currency symbols
		{"₹5,000", 5000, false},
		{"$12,000.50", 12000.50, false},
		{"€1 200", 1200, false},
		{"£99", 99, false},

		// Grouping commas, any width
		{"1,20,000", 120000, false},
		{"120,000", 120000, false},
		{"100,000", 100000, false},

		// Magnitude suffixes
		{"5k", 5000, false},
		{"5K", 5000, false},
		{"1.2M", 1200000, false},
		{"1.2m", 1200000, false},
		{"₹2.5k", 2500, false},
		{"-3k", -3000, false},

		// Failures
		{"", 0, true},
		{"   ", 0, true},
		{"abc", 0, true},
		{"12.34.56", 0, true},
		{"k", 0, true},
		{"1e6", 0, true},
		{"--5", 0, true},
		{"5kk", 0, true},
		{"¥100", 0, true}, // not in the default allow-list
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if (err != nil) != tt.err {
				t.Fatalf("ParseAmount(%q) error = %v, wantErr %v", tt.input, err, tt.err)
			}
			if !tt.err && got != tt.expected {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseAmountCustomSymbols(t *testing.T) {
	jpy := NewSymbols("JPY")
	got, err := jpy.ParseAmount("¥9,800")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 9800 {
		t.Errorf("got %v, want 9800", got)
	}

	// The custom list replaces the default one, it does not extend it.
	if _, err := jpy.ParseAmount("₹100"); err == nil {
		t.Error("expected an error for a symbol outside the allow-list")
	}
}

func TestNewSymbolsSkipsUnknownCodes(t *testing.T) {
	sy := NewSymbols("USD", "NOPE")
	if len(sy) != 1 {
		t.Errorf("got %d symbols, want 1", len(sy))
	}
}
