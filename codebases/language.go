package codebases

import (
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var extensionToIdentifier = map[string]string{
	"py":   "python",
	"go":   "go",
	"java": "java",
	"ts":   "typescript",
	"js":   "javascript",
	"html": "html",
	"json": "json",
	"txt":  "plaintext",
}

var sourceExtensions = map[string]bool{
	"py":   true,
	"go":   true,
	"java": true,
	"ts":   true,
	"js":   true,
}

// LanguageIdentifier returns the markdown code fence identifier for a
// file path, falling back to the bare extension.
func LanguageIdentifier(filePath string) string {
	ext := strings.TrimPrefix(path.Ext(filePath), ".")
	if identifier, ok := extensionToIdentifier[ext]; ok {
		return identifier
	}
	return ext
}

// IsSourceFile reports whether a file should go through static analysis:
// it must carry a source extension and its contents must be text, so a
// binary blob pasted into a .py path is not sent to the analyzer.
func IsSourceFile(filePath string, contents string) bool {
	ext := strings.TrimPrefix(path.Ext(filePath), ".")
	if !sourceExtensions[ext] {
		return false
	}
	return IsText([]byte(contents))
}

func IsText(content []byte) bool {
	for m := mimetype.Detect(content); m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}
