package database

import (
	"bytes"
	"database/sql/driver"
	"strings"

	gosqlite "github.com/glebarez/go-sqlite"
)

// SQLite's built-in lower() only folds ASCII, so "AÇÃO" would never match a
// pattern lowered in Go. Overriding it keeps case-insensitive search behaving
// the same on SQLite as on PostgreSQL.
func init() {
	gosqlite.MustRegisterDeterministicScalarFunction("lower", 1, unicodeLower)
}

func unicodeLower(_ *gosqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return bytes.ToLower(v), nil
	default:
		return v, nil
	}
}
