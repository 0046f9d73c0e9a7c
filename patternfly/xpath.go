package patternfly

import "strings"

// Quote turns an arbitrary string into a valid XPath 1.0 string literal.
//
// XPath 1.0 has no escape sequences inside string literals, so a value that
// contains both quote characters has to be stitched together with concat().
func Quote(s string) string {
	if !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}
	if !strings.Contains(s, `'`) {
		return `'` + s + `'`
	}

	var parts []string
	for _, chunk := range strings.SplitAfter(s, `"`) {
		if chunk == "" {
			continue
		}
		if strings.HasSuffix(chunk, `"`) {
			if body := strings.TrimSuffix(chunk, `"`); body != "" {
				parts = append(parts, `"`+body+`"`)
			}
			parts = append(parts, `'"'`)
		} else {
			parts = append(parts, `"`+chunk+`"`)
		}
	}
	return "concat(" + strings.Join(parts, ", ") + ")"
}
