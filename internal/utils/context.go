package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/ternurin/paletas-api/internal/middleware"
	"github.com/ternurin/paletas-api/internal/types"
)

func GetCurrentUser(ctx *gin.Context) (middleware.AuthenticatedUser, error) {
	value, exists := ctx.Get(types.ContextUserKey)

	if !exists {
		return middleware.AuthenticatedUser{}, fmt.Errorf("user not authenticated")
	}

	user, ok := value.(middleware.AuthenticatedUser)

	if !ok {
		return middleware.AuthenticatedUser{}, fmt.Errorf("invalid user type in context")
	}

	return user, nil
}
