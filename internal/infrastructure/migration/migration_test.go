package migration

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"jirant/internal/shared/config"
)

func openMemoryDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return gormDB
}

func TestGooseStrategy_UpAndDown(t *testing.T) {
	gormDB := openMemoryDB(t)
	strategy := NewGooseStrategy(config.DriverSQLite)

	require.NoError(t, strategy.Migrate(gormDB))

	version, err := strategy.GetVersion(gormDB)
	require.NoError(t, err)
	assert.Equal(t, int64(20240601000003), version)

	for _, table := range []string{"tickets", "ticket_templates", "ticket_relationships"} {
		assert.True(t, gormDB.Migrator().HasTable(table), table)
	}

	// running again is a no-op
	require.NoError(t, strategy.Migrate(gormDB))

	require.NoError(t, strategy.MigrateDown(gormDB, 1))
	assert.False(t, gormDB.Migrator().HasTable("ticket_relationships"))
	assert.True(t, gormDB.Migrator().HasTable("tickets"))

	version, err = strategy.GetVersion(gormDB)
	require.NoError(t, err)
	assert.Equal(t, int64(20240601000002), version)
}

func TestGooseStrategy_PairIndexIsUnique(t *testing.T) {
	gormDB := openMemoryDB(t)
	require.NoError(t, NewGooseStrategy(config.DriverSQLite).Migrate(gormDB))

	insert := "INSERT INTO ticket_relationships (sid, ticket1, ticket2, pair_low, pair_high, created_at) VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)"
	require.NoError(t, gormDB.Exec(insert, "rel_1", "tkt_a", "tkt_b", "tkt_a", "tkt_b").Error)
	err := gormDB.Exec(insert, "rel_2", "tkt_b", "tkt_a", "tkt_a", "tkt_b").Error
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNIQUE constraint failed")
}

func TestManager_AutoStrategy(t *testing.T) {
	gormDB := openMemoryDB(t)
	manager := NewManager(&config.DatabaseConfig{Driver: config.DriverSQLite, MigrationStrategy: "auto"})

	assert.Equal(t, "gorm_auto_migrate", manager.GetStrategy().GetName())
	require.NoError(t, manager.Migrate(gormDB))
	assert.True(t, gormDB.Migrator().HasTable("ticket_relationships"))
}

func TestNewManager_DefaultsToGoose(t *testing.T) {
	manager := NewManager(&config.DatabaseConfig{Driver: config.DriverMySQL})
	assert.Equal(t, "goose", manager.GetStrategy().GetName())

	goose, ok := manager.GetStrategy().(*GooseStrategy)
	require.True(t, ok)
	assert.Equal(t, "scripts/mysql", goose.ScriptsDir())
}
