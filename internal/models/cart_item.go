package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is a per-user line item awaiting checkout. PaletaID is nil for
// custom one-off items; the descriptive fields are always a denormalized
// copy taken at add time, so the row survives catalog changes.
type CartItem struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	UserID       uint            `gorm:"not null;index" json:"user_id"`
	PaletaID     *uint           `gorm:"index" json:"paleta_id"`
	Nombre       string          `gorm:"size:255;not null" json:"nombre"`
	Descripcion  string          `gorm:"type:text" json:"descripcion"`
	Ingredientes string          `gorm:"type:text" json:"ingredientes"`
	Precio       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"precio"`
	ImagenURL    string          `gorm:"size:255" json:"imagen_url"`
	TieneOferta  bool            `gorm:"not null;default:false" json:"tiene_oferta"`
	TextoOferta  string          `gorm:"size:100" json:"texto_oferta"`
	Quantity     int             `gorm:"not null" json:"quantity"`
	Subtotal     decimal.Decimal `gorm:"-" json:"subtotal"`
	AddedAt      time.Time       `json:"added_at"`
}

func (CartItem) TableName() string {
	return "cart_items"
}

// ComputeSubtotal fills the serialized Subtotal field (quantity × price).
func (c *CartItem) ComputeSubtotal() {
	c.Subtotal = c.Precio.Mul(decimal.NewFromInt(int64(c.Quantity)))
}
