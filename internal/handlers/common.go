package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ternurin/paletas-api/internal/apperror"
)

// respondError translates the service error taxonomy into a status code and
// a {"detail": ...} payload. Anything outside the taxonomy is a 500.
func respondError(ctx *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		ctx.JSON(statusFor(appErr), gin.H{"detail": appErr.Detail})
		return
	}

	log.Printf("internal error: %v", err)
	ctx.JSON(http.StatusInternalServerError, gin.H{"detail": "Error interno del servidor"})
}

func statusFor(err *apperror.AppError) int {
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrForbidden):
		return http.StatusForbidden
	default:
		// Conflict, InvalidState and Validation all surface as 400 to stay
		// wire-compatible with existing clients.
		return http.StatusBadRequest
	}
}

func parseUintParam(ctx *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": "Identificador inválido"})
		return 0, false
	}
	return uint(value), true
}

func parseUintQuery(ctx *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(ctx.Query(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": "Parámetro " + name + " inválido"})
		return 0, false
	}
	return uint(value), true
}
