package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ternurin/paletas-api/internal/services"
)

type UserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

type UpdateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"omitempty,min=8"`
	Username string `json:"username"`
}

func ListUsers(gdb *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		users, err := services.ListUsers(gdb)
		if err != nil {
			respondError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, users)
	}
}

func GetUser(gdb *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, ok := parseUintParam(ctx, "user_id")
		if !ok {
			return
		}

		user, err := services.GetUser(gdb, id)
		if err != nil {
			respondError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, user)
	}
}

func CreateUser(gdb *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var body UserRequest
		if err := ctx.BindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"detail": "Cuerpo de la solicitud inválido"})
			return
		}

		user, err := services.CreateUser(gdb, services.UserInput{
			Email:    body.Email,
			Password: body.Password,
			Username: body.Username,
			IsAdmin:  body.IsAdmin,
		})
		if err != nil {
			respondError(ctx, err)
			return
		}
		ctx.JSON(http.StatusCreated, user)
	}
}

func UpdateUser(gdb *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, ok := parseUintParam(ctx, "user_id")
		if !ok {
			return
		}

		var body UpdateUserRequest
		if err := ctx.BindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"detail": "Cuerpo de la solicitud inválido"})
			return
		}

		user, err := services.UpdateUser(gdb, id, services.UserInput{
			Email:    body.Email,
			Password: body.Password,
			Username: body.Username,
		})
		if err != nil {
			respondError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, user)
	}
}

func DeleteUser(gdb *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, ok := parseUintParam(ctx, "user_id")
		if !ok {
			return
		}

		if err := services.DeleteUser(gdb, id); err != nil {
			respondError(ctx, err)
			return
		}
		ctx.Status(http.StatusNoContent)
	}
}
