package utils

import "strings"

// SplitQueryParam flattens repeated and comma separated query values,
// trimming whitespace and dropping empty entries.
func SplitQueryParam(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
