package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ternurin/paletas-api/internal/services"
)

type AddCartItemRequest struct {
	UserID   uint  `json:"user_id" binding:"required"`
	PaletaID *uint `json:"paleta_id"`
	Quantity int   `json:"quantity" binding:"required,min=1"`

	// Custom-item fields, used when paleta_id is absent.
	Nombre       string          `json:"nombre"`
	Descripcion  string          `json:"descripcion"`
	Ingredientes string          `json:"ingredientes"`
	Precio       decimal.Decimal `json:"precio"`
	ImagenURL    string          `json:"imagen_url"`
	TieneOferta  bool            `json:"tiene_oferta"`
	TextoOferta  string          `json:"texto_oferta"`
}

func AddCartItem(gdb *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var body AddCartItemRequest
		if err := ctx.BindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"detail": "Cuerpo de la solicitud inválido"})
			return
		}

		item, err := services.AddCartItem(gdb, services.AddItemInput{
			UserID:       body.UserID,
			PaletaID:     body.PaletaID,
			Quantity:     body.Quantity,
			Nombre:       body.Nombre,
			Descripcion:  body.Descripcion,
			Ingredientes: body.Ingredientes,
			Precio:       body.Precio,
			ImagenURL:    body.ImagenURL,
			TieneOferta:  body.TieneOferta,
			TextoOferta:  body.TextoOferta,
		})
		if err != nil {
			respondError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, item)
	}
}

func GetCart(gdb *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, ok := parseUintParam(ctx, "user_id")
		if !ok {
			return
		}

		items, err := services.GetCart(gdb, userID)
		if err != nil {
			respondError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, items)
	}
}

func DecreaseCartItem(gdb *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, ok := parseUintQuery(ctx, "user_id")
		if !ok {
			return
		}
		paletaID, ok := parseUintQuery(ctx, "paleta_id")
		if !ok {
			return
		}

		outcome, err := services.DecreaseCartItem(gdb, userID, paletaID)
		if err != nil {
			respondError(ctx, err)
			return
		}

		if outcome.Removed {
			ctx.JSON(http.StatusOK, gin.H{"message": "Ítem eliminado porque la cantidad llegó a cero."})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"message": "Cantidad actualizada", "item": outcome.Item})
	}
}

func RemoveCartItem(gdb *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		itemID, ok := parseUintParam(ctx, "item_id")
		if !ok {
			return
		}

		if err := services.RemoveCartItem(gdb, itemID); err != nil {
			respondError(ctx, err)
			return
		}
		ctx.Status(http.StatusNoContent)
	}
}

func ClearCart(gdb *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, ok := parseUintParam(ctx, "user_id")
		if !ok {
			return
		}

		if err := services.ClearCart(gdb, userID); err != nil {
			respondError(ctx, err)
			return
		}
		ctx.Status(http.StatusNoContent)
	}
}
