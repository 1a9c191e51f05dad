package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/project-dashboard/internal/config"
	"github.com/yukikurage/project-dashboard/internal/models"
	"github.com/yukikurage/project-dashboard/internal/schema"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestDialector(t *testing.T) {
	for driver, name := range map[string]string{
		"mysql":    "mysql",
		"postgres": "postgres",
		"sqlite":   "sqlite",
		"":         "sqlite",
	} {
		d, err := Dialector(&config.Config{DBDriver: driver, DBPath: ":memory:"})
		require.NoError(t, err, driver)
		assert.Equal(t, name, d.Name())
	}

	_, err := Dialector(&config.Config{DBDriver: "oracle"})
	assert.Error(t, err)
}

func TestMigrate_IsRepeatable(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	defer sqlDB.Close()

	SetDB(db)
	defer SetDB(nil)

	require.NoError(t, Migrate())
	require.NoError(t, Migrate())
	assert.True(t, GetDB().Migrator().HasIndex("resource_links", "idx_resource_links_parent"))
}

func TestScopes(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	defer sqlDB.Close()
	require.NoError(t, db.AutoMigrate(schema.All()...))

	for _, a := range []schema.Activity{
		{ProjectID: "p1", Kind: string(models.ActivityIteration), Title: "Sprint 1"},
		{ProjectID: "p1", Kind: string(models.ActivityMilestone), Title: "Beta"},
		{ProjectID: "p2", Kind: string(models.ActivityIteration), Title: "Sprint A"},
	} {
		a := a
		require.NoError(t, db.Create(&a).Error)
	}

	var found []schema.Activity
	require.NoError(t, db.Scopes(InProject("p1"), OfKind(models.ActivityIteration), Ordered("activities")).Find(&found).Error)
	require.Len(t, found, 1)
	assert.Equal(t, "Sprint 1", found[0].Title)

	res := schema.Resource{Title: "Handbook", URL: "https://example.com"}
	require.NoError(t, db.Create(&res).Error)
	require.NoError(t, db.Omit("Resource").Create(&schema.ResourceLink{
		ParentKind: string(models.ParentWorkspace), ParentID: "w1", ResourceID: res.ID,
	}).Error)

	var linked []schema.Resource
	require.NoError(t, db.Scopes(LinkedTo(models.ParentWorkspace, "w1")).Find(&linked).Error)
	require.Len(t, linked, 1)
	require.NoError(t, db.Scopes(LinkedTo(models.ParentProject, "w1")).Find(&linked).Error)
	assert.Empty(t, linked)
}
