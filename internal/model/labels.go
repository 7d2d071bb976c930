package model

import (
	"regexp"
	"strings"
)

var (
	splitWordsPattern = regexp.MustCompile(`[_\-\s]+`)
	nonWordPattern    = regexp.MustCompile(`[^a-z0-9]+`)
)

// acronyms keeps well known abbreviations upper-cased when titling kind names.
var acronyms = map[string]string{
	"api": "API",
	"mcp": "MCP",
	"ui":  "UI",
	"cli": "CLI",
}

// FieldName converts a display label ("Steps to Reproduce") into the stable
// snake_case key used by flags, value files and schema properties.
func FieldName(label string) string {
	lower := strings.ToLower(strings.TrimSpace(label))
	if lower == "" {
		return ""
	}
	return strings.Trim(nonWordPattern.ReplaceAllString(lower, "_"), "_")
}

// Title converts an identifier such as "mcp_development" into a human
// friendly title ("MCP Development").
func Title(name string) string {
	if name == "" {
		return ""
	}

	words := splitWordsPattern.Split(name, -1)
	var segments []string
	for _, word := range words {
		if word == "" {
			continue
		}
		if acronym, ok := acronyms[strings.ToLower(word)]; ok {
			segments = append(segments, acronym)
			continue
		}
		segments = append(segments, titleCase(word))
	}
	return strings.TrimSpace(strings.Join(segments, " "))
}

// Tag converts a label into an XML-friendly element name.
func Tag(label string) string {
	return FieldName(label)
}

func titleCase(word string) string {
	if word == "" {
		return ""
	}
	lower := strings.ToLower(word)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
