package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ternurin/paletas-api/internal/services"
)

type CheckoutRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

func CheckoutOrder(gdb *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var body CheckoutRequest
		if err := ctx.BindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"detail": "Cuerpo de la solicitud inválido"})
			return
		}

		order, err := services.Checkout(gdb, body.UserID)
		if err != nil {
			respondError(ctx, err)
			return
		}
		ctx.JSON(http.StatusCreated, order)
	}
}

func ListOrders(gdb *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var attended *bool
		if raw := ctx.Query("attended"); raw != "" {
			value, err := strconv.ParseBool(raw)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"detail": "Parámetro attended inválido"})
				return
			}
			attended = &value
		}

		orders, err := services.ListOrders(gdb, attended)
		if err != nil {
			respondError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, orders)
	}
}

func GetOrder(gdb *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		orderID, ok := parseUintParam(ctx, "order_id")
		if !ok {
			return
		}

		order, err := services.GetOrder(gdb, orderID)
		if err != nil {
			respondError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, order)
	}
}

func ListUserOrders(gdb *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, ok := parseUintParam(ctx, "user_id")
		if !ok {
			return
		}

		orders, err := services.ListUserOrders(gdb, userID)
		if err != nil {
			respondError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, orders)
	}
}

func MarkOrderAttended(gdb *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		orderID, ok := parseUintParam(ctx, "order_id")
		if !ok {
			return
		}

		order, err := services.MarkOrderAttended(gdb, orderID)
		if err != nil {
			respondError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, order)
	}
}
