package main

import (
	"path/filepath"
	"strings"
)

// compressedSuffixes are trailing parts that combine with the preceding
// suffix into a two-part extension ("backup.tar.gz" -> ".tar.gz").
var compressedSuffixes = map[string]bool{
	".gz":  true,
	".bz2": true,
	".xz":  true,
	".zst": true,
}

// fileExt returns the lowercased extension of a file name, keeping compound
// suffixes intact so that "x.tar.gz" classifies as ".tar.gz", not ".gz".
func fileExt(name string) string {
	lower := strings.ToLower(name)
	ext := filepath.Ext(lower)
	if compressedSuffixes[ext] {
		if prev := filepath.Ext(strings.TrimSuffix(lower, ext)); prev != "" {
			ext = prev + ext
		}
	}
	return ext
}

// classify maps an extension to its destination category. The lookup is an
// exact match on the lowercased extension; an unknown extension is not an
// error, it just means the file is left alone.
func classify(ext string, table map[string]string) (string, bool) {
	category, ok := table[strings.ToLower(ext)]
	if !ok || category == "" {
		return "", false
	}
	return category, true
}
