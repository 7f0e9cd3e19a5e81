package ident

import "testing"

func TestNormalizeAlias(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"wall thickness", "wall_thickness"},
		{"123 width", "v123_width"},
		{"  ", "var"},
		{"", "var"},
		{"höhe", "hoehe"},
		{"wand höhe", "wand_hoehe"},
		{"Größe Außen", "groesse_aussen"},
		{"Ölpreis", "oelpreis"},
		{"café crème", "cafe_creme"},
		{"Wall-Thickness", "wall_thickness"},
		{"a -- b", "a_b"},
		{"  __x__  ", "x"},
		{"length (mm)", "length_mm"},
		{"%%%", "var"},
		{"Ω", "var"},
		{"1st", "v1st"},
		{"tab\tseparated", "tab_separated"},
		{"ﬁle", "file"},
	}

	for _, tt := range tests {
		result := NormalizeAlias(tt.input)
		if result != tt.expected {
			t.Errorf("NormalizeAlias(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
		if !IsIdentifier(result) {
			t.Errorf("NormalizeAlias(%q) = %q is not an identifier", tt.input, result)
		}
	}
}

func TestNormalizeAliasDeterministic(t *testing.T) {
	const input = "Wärme-Durchgang  Koeffizient"
	first := NormalizeAlias(input)
	for i := 0; i < 10; i++ {
		if got := NormalizeAlias(input); got != first {
			t.Fatalf("NormalizeAlias not deterministic: %q vs %q", got, first)
		}
	}
}

func TestCamelCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"wall thickness", "wallThickness"},
		{"größe außen", "groesseAussen"},
		{"WALL THICKNESS", "wallThickness"},
		{"wall_thickness-outer", "wallThicknessOuter"},
		{"", "var"},
		{"---", "var"},
		{"x", "x"},
		{"2nd floor", "2ndFloor"},
	}

	for _, tt := range tests {
		result := CamelCase(tt.input)
		if result != tt.expected {
			t.Errorf("CamelCase(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestIsIdentifier(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"wall_thickness", true},
		{"_x", true},
		{"X9", true},
		{"9x", false},
		{"", false},
		{"a-b", false},
		{"höhe", false},
	}

	for _, tt := range tests {
		if got := IsIdentifier(tt.input); got != tt.expected {
			t.Errorf("IsIdentifier(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}
