package database_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"cafedir/database"
	"cafedir/model"
)

func TestInitBootstrapsSchema(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "cafes.db")

	require.NoError(t, database.Init(dsn))
	assert.True(t, database.DB.Migrator().HasTable(&model.Cafe{}))

	// Bootstrap must be idempotent against an existing file.
	require.NoError(t, database.Init(dsn))
}

func TestNameUniquenessTranslated(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "cafes.db")
	require.NoError(t, database.Init(dsn))

	first := model.Cafe{Name: "Abbey", MapURL: "http://x", ImgURL: "http://y", Location: "Camden", Seats: "10"}
	require.NoError(t, database.DB.Create(&first).Error)

	dup := model.Cafe{Name: "Abbey", MapURL: "http://x", ImgURL: "http://y", Location: "Soho", Seats: "5"}
	err := database.DB.Create(&dup).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestOpenSeparateStores(t *testing.T) {
	dir := t.TempDir()

	db1, err := database.Open(filepath.Join(dir, "one.db"))
	require.NoError(t, err)
	db2, err := database.Open(filepath.Join(dir, "two.db"))
	require.NoError(t, err)

	require.NoError(t, db1.AutoMigrate(&model.Cafe{}))
	assert.False(t, db2.Migrator().HasTable(&model.Cafe{}))
}
