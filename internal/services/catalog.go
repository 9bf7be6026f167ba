package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ternurin/paletas-api/internal/apperror"
	"github.com/ternurin/paletas-api/internal/models"
)

func ListPaletas(gdb *gorm.DB) ([]models.Paleta, error) {
	paletas := make([]models.Paleta, 0)
	if err := gdb.Find(&paletas).Error; err != nil {
		return nil, err
	}
	return paletas, nil
}

func GetPaleta(gdb *gorm.DB, id uint) (*models.Paleta, error) {
	var paleta models.Paleta
	if err := gdb.First(&paleta, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Paleta no encontrada")
		}
		return nil, err
	}
	return &paleta, nil
}

func CreatePaleta(gdb *gorm.DB, paleta *models.Paleta) error {
	var existing models.Paleta
	err := gdb.Where("nombre = ?", paleta.Nombre).First(&existing).Error
	if err == nil {
		return apperror.Conflict("Ya existe una paleta con este nombre.")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return gdb.Create(paleta).Error
}

// UpdatePaleta replaces every mutable field of the catalog entry.
func UpdatePaleta(gdb *gorm.DB, id uint, fields models.Paleta) (*models.Paleta, error) {
	paleta, err := GetPaleta(gdb, id)
	if err != nil {
		return nil, err
	}

	paleta.Nombre = fields.Nombre
	paleta.Descripcion = fields.Descripcion
	paleta.Ingredientes = fields.Ingredientes
	paleta.Precio = fields.Precio
	paleta.ImagenURL = fields.ImagenURL
	paleta.TieneOferta = fields.TieneOferta
	paleta.TextoOferta = fields.TextoOferta

	if err := gdb.Save(paleta).Error; err != nil {
		return nil, err
	}
	return paleta, nil
}

func DeletePaleta(gdb *gorm.DB, id uint) error {
	result := gdb.Delete(&models.Paleta{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("Paleta no encontrada")
	}
	return nil
}
