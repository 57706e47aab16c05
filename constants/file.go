package constants

import "strings"

// Formats holds the declared input formats for an uploaded filing.
var Formats = []string{"PDF", "TXT"}

// AllowedExtensions maps accepted upload extensions to their document format.
var AllowedExtensions = map[string]string{
	"pdf": "PDF",
	"txt": "TXT",
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat returns the document format for a file extension, or "" when
// the extension is not accepted.
func MapExtToFormat(ext string) string {
	return AllowedExtensions[NormalizeExt(ext)]
}
