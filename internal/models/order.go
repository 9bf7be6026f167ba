package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is an immutable snapshot of a cart taken at checkout. Only the
// Attended flag changes afterwards.
type Order struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	UserID    uint        `gorm:"not null;index" json:"user_id"`
	Attended  bool        `gorm:"not null;default:false" json:"attended"`
	Items     []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time   `json:"created_at"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem freezes a cart line item at checkout time. PaletaID is kept for
// traceability but the descriptive fields are what the customer actually saw.
type OrderItem struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	OrderID      uint            `gorm:"not null;index" json:"order_id"`
	PaletaID     *uint           `json:"paleta_id"`
	Nombre       string          `gorm:"size:255;not null" json:"nombre"`
	Descripcion  string          `gorm:"type:text" json:"descripcion"`
	Ingredientes string          `gorm:"type:text" json:"ingredientes"`
	Precio       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"precio"`
	ImagenURL    string          `gorm:"size:255" json:"imagen_url"`
	TieneOferta  bool            `gorm:"not null;default:false" json:"tiene_oferta"`
	TextoOferta  string          `gorm:"size:100" json:"texto_oferta"`
	Quantity     int             `gorm:"not null" json:"quantity"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
