package scaffold

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SplitIdentifier splits s on every underscore. An empty s yields one empty part.
func SplitIdentifier(s string) []string {
	return strings.Split(s, "_")
}

// ConvertCase returns the camelCase and PascalCase forms of an
// underscore-delimited identifier. The first part keeps its own casing in the
// camel form; every other part gets its first character upper-cased.
// Empty parts are rejected.
func ConvertCase(s string) (NameVariants, error) {
	parts := SplitIdentifier(s)
	for _, p := range parts {
		if p == "" {
			return NameVariants{}, inputError(ErrMalformedIdentifier, s)
		}
	}

	var camel, pascal strings.Builder
	for i, p := range parts {
		upper := capitalize(p)
		if i == 0 {
			camel.WriteString(p)
		} else {
			camel.WriteString(upper)
		}
		pascal.WriteString(upper)
	}

	return NameVariants{Camel: camel.String(), Pascal: pascal.String()}, nil
}

// SplitFolder splits a table name on its first underscore. Everything after
// it, further underscores included, becomes the file base name.
func SplitFolder(tableName string) (NameParts, error) {
	folder, rest, found := strings.Cut(tableName, "_")
	if !found {
		return NameParts{}, inputError(ErrMissingUnderscore, tableName)
	}
	if folder == "" {
		return NameParts{}, inputError(ErrMalformedIdentifier, tableName)
	}
	return NameParts{Folder: folder, FileBase: rest}, nil
}

// capitalize returns the string with the first letter uppercased.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
