package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ternurin/paletas-api/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, gdb.AutoMigrate(
		&models.User{},
		&models.Paleta{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	))

	return gdb
}

func seedPaleta(t *testing.T, gdb *gorm.DB, nombre string, precio float64) *models.Paleta {
	t.Helper()

	paleta := models.Paleta{
		Nombre:       nombre,
		Descripcion:  "Una paleta de prueba",
		Ingredientes: "Fruta, agua, azúcar",
		Precio:       decimal.NewFromFloat(precio),
		ImagenURL:    "/static/images/prueba.png",
	}
	require.NoError(t, gdb.Create(&paleta).Error)
	return &paleta
}

func ptr(v uint) *uint {
	return &v
}

func decimalEqual(t *testing.T, want float64, got decimal.Decimal) {
	t.Helper()
	require.Truef(t, got.Equal(decimal.NewFromFloat(want)), "want %v, got %s", want, got)
}
