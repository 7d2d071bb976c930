package main

import (
	"sort"

	"github.com/goliatone/go-ctxgen/pkg/export"
)

func sortedKeys(values map[string]string) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func fileDestination(path string) export.File {
	return export.File{Path: path}
}
