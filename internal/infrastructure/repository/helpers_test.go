package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"jirant/internal/domain/ticket"
	"jirant/internal/infrastructure/persistence/models"
)

// setupTestDB opens a private shared-cache in-memory SQLite database. A single
// connection serializes writers the way a real database serializes commits on
// the same unique index.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, gormDB.AutoMigrate(models.All()...))
	return gormDB
}

func newTestTicket(t *testing.T, ticketType, owner string) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket("Title "+ticketType, "Body", ticketType, "", owner, "input", nil)
	require.NoError(t, err)
	return tk
}
