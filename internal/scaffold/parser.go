package scaffold

import (
	"regexp"
	"strings"
)

var (
	// tableNameRe anchors on the exact, case-sensitive phrase.
	tableNameRe = regexp.MustCompile("CREATE TABLE `([^`]+)`")
	// quotedRe matches every backtick-quoted token, column or not.
	quotedRe = regexp.MustCompile("`([^`]+)`")
)

// ParseStatement scans a CREATE TABLE statement and derives the table spec.
// This is a lexical scan, not a SQL parser: Fields holds every backtick token
// in the statement, including the table name and index or key references.
func ParseStatement(raw string) (*TableSpec, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, inputError(ErrEmptyInput, "")
	}

	m := tableNameRe.FindStringSubmatch(raw)
	if m == nil {
		return nil, inputError(ErrTableNameNotFound, "")
	}
	tableName := m[1]

	parts, err := SplitFolder(tableName)
	if err != nil {
		return nil, err
	}

	table, err := ConvertCase(tableName)
	if err != nil {
		return nil, err
	}

	file, err := ConvertCase(parts.FileBase)
	if err != nil {
		return nil, err
	}

	return &TableSpec{
		TableName: tableName,
		Table:     table,
		Parts:     parts,
		File:      file,
		Fields:    ParseFields(raw),
	}, nil
}

// ParseFields returns the contents of every backtick-quoted token in raw.
func ParseFields(raw string) []string {
	matches := quotedRe.FindAllStringSubmatch(raw, -1)
	fields := make([]string, 0, len(matches))
	for _, m := range matches {
		fields = append(fields, m[1])
	}
	return fields
}
