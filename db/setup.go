package db

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ternurin/paletas-api/internal/models"
)

// Connect opens the database and returns the handle. Callers pass it down
// explicitly; there is no package-global session.
func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// Migrate creates any missing tables.
func Migrate(gdb *gorm.DB) error {
	tables := []interface{}{
		&models.User{},
		&models.Paleta{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	}

	migrator := gdb.Migrator()

	for _, table := range tables {
		if !migrator.HasTable(table) {
			if err := gdb.AutoMigrate(table); err != nil {
				return err
			}
		}
	}

	return nil
}
