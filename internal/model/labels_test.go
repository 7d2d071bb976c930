package model

import "testing"

func TestFieldName(t *testing.T) {
	cases := map[string]string{
		"Steps to Reproduce":    "steps_to_reproduce",
		"  Bug Title ":          "bug_title",
		"SDK Language":          "sdk_language",
		"Auth / Security":       "auth_security",
		"bug-report":            "bug_report",
		"":                      "",
		"Tools (name: purpose)": "tools_name_purpose",
	}
	for in, want := range cases {
		if got := FieldName(in); got != want {
			t.Fatalf("FieldName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTitle(t *testing.T) {
	cases := map[string]string{
		"mcp_development": "MCP Development",
		"bug_report":      "Bug Report",
		"feature-request": "Feature Request",
		"api":             "API",
		"":                "",
	}
	for in, want := range cases {
		if got := Title(in); got != want {
			t.Fatalf("Title(%q) = %q, want %q", in, got, want)
		}
	}
}
