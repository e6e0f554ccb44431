// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets resolves the OpenAlex contact email from a directory of
// plain-text files. The file .secrets/openalex-email holds the address sent
// as the mailto parameter when no flag or environment variable supplies one.
package secrets

import (
	"os"
	"path/filepath"
	"strings"
)

// emailFile is the filename holding the contact email.
const emailFile = "openalex-email"

// Email returns the trimmed contents of dir/openalex-email. A missing
// directory or file is not an error; Email returns "" and the caller falls
// through to the next source in its resolution chain.
func Email(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, emailFile))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
