package outline

import (
	"errors"
	"testing"
)

func TestNormalizePathData(t *testing.T) {
	tests := []struct {
		name string
		d    string
		want string
	}{
		{"empty", "", ""},
		{"spaced", "M 0 0 L 10 10", "M 0 0 L 10 10"},
		{"compact", "M0,0L10-5", "M 0 0 L 10 -5"},
		{"stray separators", "  M 1 , 2\tL3 4 \n", "M 1 2 L 3 4"},
		{"leading dot", "M .5 .25 l1.5.5", "M 0.5 0.25 l 1.5 0.5"},
		{"exponent", "M 1e2 2.5E-1", "M 100 0.25"},
		{"repeated groups", "M 0 0 1 1 2 2", "M 0 0 1 1 2 2"},
		{"curve", "m 0 0 c 1 1 2 2 3 3 4 4 5 5 6 6", "m 0 0 c 1 1 2 2 3 3 4 4 5 5 6 6"},
		{"closed", "M 0 0 H 5 V 5 h -5 v -5 Z M 9 9 z", "M 0 0 H 5 V 5 h -5 v -5 Z M 9 9 z"},
		{"generated", "M 0.00 60.00 C 12.00 60.00 29.40 51.20 24.00 48.00", "M 0 60 C 12 60 29.4 51.2 24 48"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizePathData(tt.d)
			if err != nil {
				t.Fatalf("normalizePathData(%q) = %v", tt.d, err)
			}
			if got != tt.want {
				t.Errorf("normalizePathData(%q) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestNormalizePathData_Rejects(t *testing.T) {
	tests := []struct {
		name string
		d    string
		want error
	}{
		{"word arguments", "M 0 0 L abc def", errUnsupportedCmd},
		{"short curve", "M 0 0 C 1 1", errArgumentCount},
		{"odd relative curve", "M 0 0 c 1 1 2 2 3", errArgumentCount},
		{"odd line", "M 0 0 L 1 1 2", errArgumentCount},
		{"bare command", "M 0 0 L", errArgumentCount},
		{"close with arguments", "M 0 0 Z 5", errArgumentCount},
		{"no moveto", "L 1 1", errNoMoveTo},
		{"number first", "5 5 L 1 1", errNoMoveTo},
		{"quadratic", "M 0 0 Q 5 5 9 9", errUnsupportedCmd},
		{"arc", "M 0 0 A 5 5 0 0 1 9 9", errUnsupportedCmd},
		{"lone sign", "M 0 - L 1 1", errBadNumber},
		{"lone dot", "M 0 . L 1 1", errBadNumber},
		{"overflow", "M 0 1e999", errBadNumber},
		{"comma after command", "M , 0 0", errUnexpectedSymbol},
		{"double comma", "M 0,,0", errUnexpectedSymbol},
		{"trailing comma", "M 0 0,", errUnexpectedSymbol},
		{"symbol", "M 0 0 L 1 1 #", errUnexpectedSymbol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizePathData(tt.d)
			if !errors.Is(err, tt.want) {
				t.Errorf("normalizePathData(%q) = %q, %v; want %v", tt.d, got, err, tt.want)
			}
		})
	}
}
