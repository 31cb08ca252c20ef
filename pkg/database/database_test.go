package database_test

import (
	"path/filepath"
	"testing"

	"ats-resume-scorer/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseURL(t *testing.T) {
	cases := []struct {
		in, driver, dsn string
	}{
		{"postgres://u:p@db:5432/ats", database.DriverPostgres, "postgres://u:p@db:5432/ats"},
		{"postgresql://db/ats", database.DriverPostgres, "postgresql://db/ats"},
		{"sqlite://data/ats.db", database.DriverSQLite, "data/ats.db"},
		{"sqlite::memory:", database.DriverSQLite, ":memory:"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			driver, dsn, err := database.ParseURL(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.driver, driver)
			assert.Equal(t, tc.dsn, dsn)
		})
	}

	for _, bad := range []string{"", "mysql://db", "sqlite://"} {
		_, _, err := database.ParseURL(bad)
		assert.Error(t, err, bad)
	}
}

func TestOpenSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "ats.db")
	db, err := database.OpenSQLite(path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE t (id INTEGER PRIMARY KEY)`)
	assert.NoError(t, err)
	assert.FileExists(t, path)
}
