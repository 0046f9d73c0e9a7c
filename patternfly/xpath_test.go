package patternfly

import "testing"

func TestQuote(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Add Ipsum", `"Add Ipsum"`},
		{"empty", "", `""`},
		{"single quote", "it's here", `"it's here"`},
		{"double quote", `say "hi"`, `'say "hi"'`},
		{"only double quote", `"`, `'"'`},
		{"mixed quotes", `a"b'c`, `concat("a", '"', "b'c")`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quote(tt.in); got != tt.want {
				t.Errorf("Quote(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}
