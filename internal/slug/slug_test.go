package slug

import "testing"

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"accented", "José Álvarez", "jose-alvarez"},
		{"plain", "Alice Smith", "alice-smith"},
		{"umlaut", "Jürgen Müller", "jurgen-muller"},
		{"double acute", "Paul Erdős", "paul-erdos"},
		{"multiple spaces", "A   B", "a-b"},
		{"tabs and newlines", "A\tB\nC", "a-b-c"},
		{"leading and trailing space", "  Jane Doe  ", "jane-doe"},
		{"single token", "Cher", "cher"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Make(tt.in); got != tt.want {
				t.Errorf("Make(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
