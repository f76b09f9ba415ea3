package postgres

import "github.com/Masterminds/squirrel"

// Builder returns a squirrel statement builder using $1-style placeholders.
// Repos use it for queries whose shape depends on optional filter fields.
func Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
