package patternfly

import (
	"regexp"
	"strings"
	"testing"
)

func TestButtonLocator(t *testing.T) {
	base := `.//*[(self::a or self::button or (self::input and (@type="button" or @type="submit"))) and contains(@class, "btn")`

	tests := []struct {
		name string
		opts []ButtonOption
		want string
	}{
		{
			"no options",
			nil,
			base + `]`,
		},
		{
			"by text",
			[]ButtonOption{ByText("Default Normal")},
			base + ` and (normalize-space(.)="Default Normal")]`,
		},
		{
			"by partial text",
			[]ButtonOption{ByPartialText("Normal")},
			base + ` and (contains(normalize-space(.), "Normal"))]`,
		},
		{
			"by title",
			[]ButtonOption{ByAttr("title", "noText")},
			base + ` and (@title="noText")]`,
		},
		{
			"text and classes",
			[]ButtonOption{ByText("Save"), WithClasses(BtnPrimary, BtnBlock)},
			base + ` and (normalize-space(.)="Save" and contains(@class, "btn-primary") and contains(@class, "btn-block"))]`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buttonLocator(tt.opts...); got != tt.want {
				t.Errorf("buttonLocator() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestMessageFilterMatches(t *testing.T) {
	tests := []struct {
		name   string
		filter MessageFilter
		text   string
		typ    string
		want   bool
	}{
		{"zero filter matches anything", MessageFilter{}, "whatever", MessageError, true},
		{"exact text", MessageFilter{Text: "Retirement initiated"}, "Retirement initiated", MessageSuccess, true},
		{"exact text mismatch", MessageFilter{Text: "Retirement"}, "Retirement initiated", MessageSuccess, false},
		{"partial text", MessageFilter{Text: "Retirement", Partial: true}, "Retirement initiated", MessageSuccess, true},
		{"pattern", MessageFilter{Pattern: regexp.MustCompile(`^Retirement .* VM`)}, "Retirement initiated for 1 VM", MessageSuccess, true},
		{"pattern mismatch", MessageFilter{Pattern: regexp.MustCompile(`^Snapshot`)}, "Retirement initiated", MessageSuccess, false},
		{"type match", MessageFilter{Types: []string{MessageSuccess, MessageInfo}}, "ok", MessageInfo, true},
		{"type mismatch", MessageFilter{Types: []string{MessageSuccess}}, "broken", MessageError, false},
		{
			"inverse finds errors",
			MessageFilter{Types: []string{MessageSuccess, MessageInfo, MessageWarning}, Inverse: true},
			"Not Configured",
			MessageError,
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.matches(tt.text, tt.typ); got != tt.want {
				t.Errorf("matches(%q, %q) = %v, want %v", tt.text, tt.typ, got, tt.want)
			}
		})
	}
}

func TestSelectItemNotFoundError(t *testing.T) {
	err := &SelectItemNotFoundError{Item: "Steak", Options: []string{"Ham", "Eggs"}}
	msg := err.Error()
	for _, want := range []string{"Steak", "Ham", "Eggs"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message %q does not mention %q", msg, want)
		}
	}
}
