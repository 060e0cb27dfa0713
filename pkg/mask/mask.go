// Package mask derives display-safe identifiers from transfer object
// keys. Keys embed a random access token that must not appear verbatim
// in the console output.
package mask

import "strings"

const tokenLength = 8

// Key masks a transfer object key of the form
// <prefix>/<token>__<filename>, keeping only the last two characters of
// the token: docs/AbCdEfGh__report.pdf -> docs/XXXXXXGh__report.pdf.
// Keys that do not match the shape exactly are returned unchanged.
func Key(key string) string {
	if strings.Count(key, "/") != 1 {
		return key
	}

	prefix, rest, _ := strings.Cut(key, "/")
	token, filename, ok := strings.Cut(rest, "__")
	if !ok || len(token) != tokenLength {
		return key
	}

	return prefix + "/XXXXXX" + token[tokenLength-2:] + "__" + filename
}
