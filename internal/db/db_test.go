package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laundry-finder-backend/config"
)

func TestInit_SQLite(t *testing.T) {
	gormDB, err := Init(&config.DatabaseConfig{Driver: "sqlite", DSN: "file:dbinit?mode=memory&cache=shared"})
	require.NoError(t, err)
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	assert.True(t, gormDB.Migrator().HasTable("shops"))
	assert.True(t, gormDB.Migrator().HasTable("machines"))
}

func TestInit_RejectsBadConfig(t *testing.T) {
	_, err := Init(&config.DatabaseConfig{Driver: "sqlite"})
	assert.Error(t, err)

	_, err = Init(&config.DatabaseConfig{Driver: "oracle", DSN: "x"})
	assert.Error(t, err)
}
