package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ternurin/paletas-api/internal/apperror"
	"github.com/ternurin/paletas-api/internal/models"
	"github.com/ternurin/paletas-api/internal/services"
)

type PaletaRequest struct {
	Nombre       string          `json:"nombre" binding:"required"`
	Descripcion  string          `json:"descripcion"`
	Ingredientes string          `json:"ingredientes"`
	Precio       decimal.Decimal `json:"precio" binding:"required"`
	ImagenURL    string          `json:"imagen_url"`
	TieneOferta  bool            `json:"tiene_oferta"`
	TextoOferta  string          `json:"texto_oferta"`
}

func (r PaletaRequest) toModel() models.Paleta {
	return models.Paleta{
		Nombre:       r.Nombre,
		Descripcion:  r.Descripcion,
		Ingredientes: r.Ingredientes,
		Precio:       r.Precio,
		ImagenURL:    r.ImagenURL,
		TieneOferta:  r.TieneOferta,
		TextoOferta:  r.TextoOferta,
	}
}

func ListPaletas(gdb *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		paletas, err := services.ListPaletas(gdb)
		if err != nil {
			respondError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, paletas)
	}
}

func GetPaleta(gdb *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, ok := parseUintParam(ctx, "paleta_id")
		if !ok {
			return
		}

		paleta, err := services.GetPaleta(gdb, id)
		if err != nil {
			respondError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, paleta)
	}
}

func CreatePaleta(gdb *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var body PaletaRequest
		if err := ctx.BindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"detail": "Cuerpo de la solicitud inválido"})
			return
		}

		if body.Precio.Sign() <= 0 {
			respondError(ctx, apperror.Validation("El precio debe ser mayor que cero."))
			return
		}

		paleta := body.toModel()
		if err := services.CreatePaleta(gdb, &paleta); err != nil {
			respondError(ctx, err)
			return
		}
		ctx.JSON(http.StatusCreated, paleta)
	}
}

func UpdatePaleta(gdb *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, ok := parseUintParam(ctx, "paleta_id")
		if !ok {
			return
		}

		var body PaletaRequest
		if err := ctx.BindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"detail": "Cuerpo de la solicitud inválido"})
			return
		}

		if body.Precio.Sign() <= 0 {
			respondError(ctx, apperror.Validation("El precio debe ser mayor que cero."))
			return
		}

		paleta, err := services.UpdatePaleta(gdb, id, body.toModel())
		if err != nil {
			respondError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, paleta)
	}
}

func DeletePaleta(gdb *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, ok := parseUintParam(ctx, "paleta_id")
		if !ok {
			return
		}

		if err := services.DeletePaleta(gdb, id); err != nil {
			respondError(ctx, err)
			return
		}
		ctx.Status(http.StatusNoContent)
	}
}
