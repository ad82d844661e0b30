package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Driver:         DriverMySQL,
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "files",
			TimeoutSeconds: 1,
		}

		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("Unsupported Driver", func(t *testing.T) {
		db, err := Connect(Config{Driver: "oracle"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported database driver")
		assert.Nil(t, db)
	})
}

func TestDialectorFor(t *testing.T) {
	t.Run("SQLite", func(t *testing.T) {
		d, err := dialectorFor(Config{Driver: DriverSQLite, Name: "test.db"}, 5)
		assert.NoError(t, err)
		assert.Equal(t, "sqlite", d.Name())
	})

	t.Run("MySQLEscapesPassword", func(t *testing.T) {
		d, err := dialectorFor(Config{Driver: DriverMySQL, User: "u", Password: "p@ss/word", Host: "db", Port: 3306, Name: "files"}, 5)
		assert.NoError(t, err)
		assert.Equal(t, "mysql", d.Name())
	})
}
