// Package tui fills form state from terminal prompts. The PromptDriver
// interface hides survey so prompt flows can be tested with scripted drivers;
// colours and prefixes come from a go-theme manifest and are rendered with
// lipgloss.
package tui
