package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ternurin/paletas-api/internal/apperror"
	"github.com/ternurin/paletas-api/internal/models"
)

// AddItemInput describes one add-to-cart request. PaletaID nil means a
// custom item, in which case Nombre and a positive Precio are required.
type AddItemInput struct {
	UserID       uint
	PaletaID     *uint
	Quantity     int
	Nombre       string
	Descripcion  string
	Ingredientes string
	Precio       decimal.Decimal
	ImagenURL    string
	TieneOferta  bool
	TextoOferta  string
}

// AddCartItem adds a line item to the user's cart. Catalog-backed items
// merge with an existing (user, paleta) row: the quantity is incremented and
// the denormalized copy is refreshed from the current catalog state. Custom
// items have no merge key and always insert a fresh row.
func AddCartItem(gdb *gorm.DB, in AddItemInput) (*models.CartItem, error) {
	var item models.CartItem

	err := gdb.Transaction(func(tx *gorm.DB) error {
		if in.PaletaID == nil {
			if in.Nombre == "" || in.Precio.Sign() <= 0 {
				return apperror.Validation("Un ítem personalizado requiere nombre y precio mayor que cero.")
			}
			item = models.CartItem{
				UserID:       in.UserID,
				Nombre:       in.Nombre,
				Descripcion:  in.Descripcion,
				Ingredientes: in.Ingredientes,
				Precio:       in.Precio,
				ImagenURL:    in.ImagenURL,
				TieneOferta:  in.TieneOferta,
				TextoOferta:  in.TextoOferta,
				Quantity:     in.Quantity,
				AddedAt:      time.Now(),
			}
			return tx.Create(&item).Error
		}

		var paleta models.Paleta
		if err := tx.First(&paleta, *in.PaletaID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("Paleta no encontrada.")
			}
			return err
		}

		var existing models.CartItem
		err := tx.Where("user_id = ? AND paleta_id = ?", in.UserID, *in.PaletaID).First(&existing).Error
		switch {
		case err == nil:
			existing.Quantity += in.Quantity
			copyPaletaSnapshot(&existing, paleta)
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			item = existing
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = models.CartItem{
				UserID:   in.UserID,
				PaletaID: in.PaletaID,
				Quantity: in.Quantity,
				AddedAt:  time.Now(),
			}
			copyPaletaSnapshot(&item, paleta)
			return tx.Create(&item).Error
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}

	item.ComputeSubtotal()
	return &item, nil
}

func copyPaletaSnapshot(item *models.CartItem, paleta models.Paleta) {
	item.Nombre = paleta.Nombre
	item.Descripcion = paleta.Descripcion
	item.Ingredientes = paleta.Ingredientes
	item.Precio = paleta.Precio
	item.ImagenURL = paleta.ImagenURL
	item.TieneOferta = paleta.TieneOferta
	item.TextoOferta = paleta.TextoOferta
}

func GetCart(gdb *gorm.DB, userID uint) ([]models.CartItem, error) {
	items := make([]models.CartItem, 0)
	if err := gdb.Where("user_id = ?", userID).Find(&items).Error; err != nil {
		return nil, err
	}
	for i := range items {
		items[i].ComputeSubtotal()
	}
	return items, nil
}

// DecreaseOutcome reports whether the row survived the decrement.
type DecreaseOutcome struct {
	Removed bool
	Item    *models.CartItem
}

// DecreaseCartItem takes one unit off the (user, paleta) line item, removing
// the row entirely when the quantity would reach zero.
func DecreaseCartItem(gdb *gorm.DB, userID, paletaID uint) (*DecreaseOutcome, error) {
	out := &DecreaseOutcome{}

	err := gdb.Transaction(func(tx *gorm.DB) error {
		var item models.CartItem
		err := tx.Where("user_id = ? AND paleta_id = ?", userID, paletaID).First(&item).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("Ítem no encontrado en el carrito.")
			}
			return err
		}

		if item.Quantity > 1 {
			item.Quantity--
			if err := tx.Save(&item).Error; err != nil {
				return err
			}
			item.ComputeSubtotal()
			out.Item = &item
			return nil
		}

		out.Removed = true
		return tx.Delete(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RemoveCartItem deletes a line item by its own id, regardless of quantity.
func RemoveCartItem(gdb *gorm.DB, itemID uint) error {
	result := gdb.Delete(&models.CartItem{}, itemID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("Ítem del carrito no encontrado.")
	}
	return nil
}

// ClearCart deletes every line item for the user. Clearing an already-empty
// cart is a no-op.
func ClearCart(gdb *gorm.DB, userID uint) error {
	return gdb.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
