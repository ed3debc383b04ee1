// Package report exports the course list and reads it back.
package report

import (
	"regexp"
	"strings"
)

var spaces = regexp.MustCompile(`\s+`)

func normalizeSpace(s string) string {
	return strings.TrimSpace(spaces.ReplaceAllString(s, " "))
}
