package db

import (
	"database/sql/driver"
	"strings"

	"modernc.org/sqlite"
)

// FoldFunc lowercases text with Unicode rules. SQLite's built-in lower()
// only folds ASCII.
const FoldFunc = "unicode_lower"

func init() {
	if err := sqlite.RegisterDeterministicScalarFunction(FoldFunc, 1, unicodeLower); err != nil {
		panic(err)
	}
}

func unicodeLower(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	}
	return args[0], nil
}

// ContainsClause returns a predicate matching column case-insensitively
// against the n-th bind argument, a lowercased LIKE pattern escaped with '\'.
func (d Dialect) ContainsClause(column string, n int) string {
	if d == SQLite {
		return FoldFunc + "(" + column + ") LIKE " + d.Placeholder(n) + ` ESCAPE '\'`
	}
	return column + " ILIKE " + d.Placeholder(n) + ` ESCAPE '\'`
}
