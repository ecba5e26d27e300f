package handler

import "regexp"

var htmlTagPattern = regexp.MustCompile(`<.*?>`)

// stripHTML removes markup tags from rich-text store fields (payment term
// notes are stored as HTML fragments).
func stripHTML(s string) string {
	return htmlTagPattern.ReplaceAllString(s, "")
}
