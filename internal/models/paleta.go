package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Paleta struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	Nombre       string          `gorm:"size:255;uniqueIndex;not null" json:"nombre"`
	Descripcion  string          `gorm:"type:text" json:"descripcion"`
	Ingredientes string          `gorm:"type:text" json:"ingredientes"`
	Precio       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"precio"`
	ImagenURL    string          `gorm:"size:255" json:"imagen_url"`
	TieneOferta  bool            `gorm:"not null;default:false" json:"tiene_oferta"`
	TextoOferta  string          `gorm:"size:100" json:"texto_oferta"`
	CreatedAt    time.Time       `json:"fecha_creacion"`
	UpdatedAt    time.Time       `json:"fecha_actualizacion"`
}

func (Paleta) TableName() string {
	return "paletas"
}
