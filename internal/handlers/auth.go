package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ternurin/paletas-api/internal/auth"
	"github.com/ternurin/paletas-api/internal/services"
	"github.com/ternurin/paletas-api/internal/types"
	"github.com/ternurin/paletas-api/internal/utils"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func Login(gdb *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var body LoginRequest
		if err := ctx.BindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"detail": "Cuerpo de la solicitud inválido"})
			return
		}

		user, err := services.Authenticate(gdb, body.Email, body.Password)
		if err != nil {
			respondError(ctx, err)
			return
		}

		token, err := auth.GenerateJWT(user.ID, user.Email)
		if err != nil {
			log.Printf("failed to generate JWT: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"detail": "Error interno del servidor"})
			return
		}

		ctx.JSON(http.StatusOK, gin.H{
			"token": token,
			"user": types.UserResponse{
				ID:       user.ID,
				Email:    user.Email,
				Username: user.Username,
				IsAdmin:  user.IsAdmin,
			},
		})
	}
}

func Me() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		currentUser, err := utils.GetCurrentUser(ctx)
		if err != nil {
			ctx.JSON(http.StatusUnauthorized, gin.H{"detail": "Usuario no autenticado"})
			return
		}

		ctx.JSON(http.StatusOK, gin.H{
			"user": types.UserResponse{
				ID:       currentUser.ID,
				Email:    currentUser.Email,
				Username: currentUser.Username,
				IsAdmin:  currentUser.IsAdmin,
			},
		})
	}
}
