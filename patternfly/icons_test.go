package patternfly

import "testing"

func TestIconFromClasses(t *testing.T) {
	tests := []struct {
		name    string
		classes []string
		want    Icon
	}{
		{"home icon", []string{"pficon", "pficon-home"}, IconHome},
		{"error icon", []string{"pficon", "pficon-error-circle-o"}, IconError},
		{"fa angle", []string{"fa", "fa-angle-down", "expand-icon"}, IconAngleDown},
		{"no icon class", []string{"btn", "btn-default"}, IconNone},
		{"empty", nil, IconNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IconFromClasses(tt.classes); got != tt.want {
				t.Errorf("IconFromClasses(%v) = %q, want %q", tt.classes, got, tt.want)
			}
		})
	}
}
