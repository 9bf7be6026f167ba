package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ternurin/paletas-api/internal/apperror"
	"github.com/ternurin/paletas-api/internal/models"
)

// Checkout converts the user's cart into an order. Order creation, line-item
// snapshots and the cart wipe run in one transaction: a failure anywhere
// rolls back everything.
func Checkout(gdb *gorm.DB, userID uint) (*models.Order, error) {
	var order models.Order

	err := gdb.Transaction(func(tx *gorm.DB) error {
		var cartItems []models.CartItem
		if err := tx.Where("user_id = ?", userID).Find(&cartItems).Error; err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return apperror.InvalidState("El carrito está vacío.")
		}

		order = models.Order{UserID: userID}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		orderItems := make([]models.OrderItem, 0, len(cartItems))
		for _, ci := range cartItems {
			orderItems = append(orderItems, models.OrderItem{
				OrderID:      order.ID,
				PaletaID:     ci.PaletaID,
				Nombre:       ci.Nombre,
				Descripcion:  ci.Descripcion,
				Ingredientes: ci.Ingredientes,
				Precio:       ci.Precio,
				ImagenURL:    ci.ImagenURL,
				TieneOferta:  ci.TieneOferta,
				TextoOferta:  ci.TextoOferta,
				Quantity:     ci.Quantity,
			})
		}
		if err := tx.Create(&orderItems).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}

		order.Items = orderItems
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListOrders returns every order, optionally filtered by fulfillment status.
func ListOrders(gdb *gorm.DB, attended *bool) ([]models.Order, error) {
	query := gdb.Preload("Items")
	if attended != nil {
		query = query.Where("attended = ?", *attended)
	}

	orders := make([]models.Order, 0)
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func GetOrder(gdb *gorm.DB, id uint) (*models.Order, error) {
	var order models.Order
	if err := gdb.Preload("Items").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Orden no encontrada.")
		}
		return nil, err
	}
	return &order, nil
}

func ListUserOrders(gdb *gorm.DB, userID uint) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	if err := gdb.Preload("Items").Where("user_id = ?", userID).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// MarkOrderAttended flags the order as handled. Marking an already-attended
// order succeeds without changing anything.
func MarkOrderAttended(gdb *gorm.DB, id uint) (*models.Order, error) {
	order, err := GetOrder(gdb, id)
	if err != nil {
		return nil, err
	}

	if !order.Attended {
		if err := gdb.Model(order).Update("attended", true).Error; err != nil {
			return nil, err
		}
		order.Attended = true
	}
	return order, nil
}
