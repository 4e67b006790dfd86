package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholder(t *testing.T) {
	assert.Equal(t, "$1", Postgres.Placeholder(1))
	assert.Equal(t, "$12", Postgres.Placeholder(12))
	assert.Equal(t, "?", SQLite.Placeholder(3))
}

func TestParseDialect(t *testing.T) {
	d, err := ParseDialect("sqlite")
	require.NoError(t, err)
	assert.Equal(t, SQLite, d)

	_, err = ParseDialect("mysql")
	assert.Error(t, err)
}

func TestOpenAndMigrateSQLite(t *testing.T) {
	conn, err := Open(context.Background(), SQLite, "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, RunMigrations(conn, SQLite))
	// a second run finds nothing to do
	require.NoError(t, RunMigrations(conn, SQLite))

	var n int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM customers`).Scan(&n))
	assert.Zero(t, n)
}

func TestContainsClause(t *testing.T) {
	assert.Equal(t, `customer_name ILIKE $2 ESCAPE '\'`, Postgres.ContainsClause("customer_name", 2))
	assert.Equal(t, `unicode_lower(location) LIKE ? ESCAPE '\'`, SQLite.ContainsClause("location", 1))
}

func TestUnicodeLowerFunction(t *testing.T) {
	conn, err := Open(context.Background(), SQLite, "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	defer conn.Close()

	var folded string
	require.NoError(t, conn.QueryRow(`SELECT unicode_lower('ÉLODIE à Île')`).Scan(&folded))
	assert.Equal(t, "élodie à île", folded)

	var isNull bool
	require.NoError(t, conn.QueryRow(`SELECT unicode_lower(NULL) IS NULL`).Scan(&isNull))
	assert.True(t, isNull)
}
