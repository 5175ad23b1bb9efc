package api

import (
	"errors"
	"net/http"

	"github.com/no0bAuntor/online-voting-system/internal/models"
	"github.com/no0bAuntor/online-voting-system/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SymbolHandlers struct {
	symbolService service.SymbolService
	uploadDir     string
}

func NewSymbolHandlers(symbolService service.SymbolService, uploadDir string) *SymbolHandlers {
	return &SymbolHandlers{
		symbolService: symbolService,
		uploadDir:     uploadDir,
	}
}

func (h *SymbolHandlers) ListSymbols(c *gin.Context) {

	symbols, err := h.symbolService.List(c)
	if err != nil {
		SendError(c, http.StatusInternalServerError, err, models.ErrInvalidOperation)
		return
	}

	SendSuccess(c, http.StatusOK, "", symbols)
}

func (h *SymbolHandlers) AddSymbol(c *gin.Context) {

	name := c.PostForm("name")
	description := c.PostForm("description")

	file, err := c.FormFile("image")
	if err != nil {
		SendError(c, http.StatusBadRequest, service.ErrSymbolImageRequired, models.ErrInvalidRequest)
		return
	}

	imageURL, err := saveImage(c, file, h.uploadDir, "symbols")
	if err != nil {
		SendError(c, http.StatusBadRequest, err, models.ErrInvalidRequest)
		return
	}

	symbol, err := h.symbolService.Add(c, name, description, imageURL)
	switch {
	case err == nil:
		SendSuccess(c, http.StatusCreated, "Symbol added successfully", symbol)
	case errors.Is(err, service.ErrSymbolNameRequired),
		errors.Is(err, service.ErrSymbolImageRequired),
		errors.Is(err, service.ErrSymbolNameTaken):
		SendError(c, http.StatusBadRequest, err, models.ErrInvalidRequest)
	default:
		SendError(c, http.StatusInternalServerError, err, models.ErrInvalidOperation)
	}
}

func (h *SymbolHandlers) UpdateSymbol(c *gin.Context) {

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		SendError(c, http.StatusNotFound, service.ErrSymbolNotFound, models.ErrNotFound)
		return
	}

	name := c.PostForm("name")
	description := c.PostForm("description")

	imageURL := ""
	if file, err := c.FormFile("image"); err == nil {
		imageURL, err = saveImage(c, file, h.uploadDir, "symbols")
		if err != nil {
			SendError(c, http.StatusBadRequest, err, models.ErrInvalidRequest)
			return
		}
	}

	symbol, err := h.symbolService.Update(c, id, name, description, imageURL)
	switch {
	case err == nil:
		SendSuccess(c, http.StatusOK, "Symbol updated successfully", symbol)
	case errors.Is(err, service.ErrSymbolNotFound):
		SendError(c, http.StatusNotFound, err, models.ErrNotFound)
	case errors.Is(err, service.ErrSymbolNameTaken):
		SendError(c, http.StatusBadRequest, err, models.ErrInvalidRequest)
	default:
		SendError(c, http.StatusInternalServerError, err, models.ErrInvalidOperation)
	}
}

func (h *SymbolHandlers) DeleteSymbol(c *gin.Context) {

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		SendError(c, http.StatusNotFound, service.ErrSymbolNotFound, models.ErrNotFound)
		return
	}

	deletedName, err := h.symbolService.Delete(c, id)
	if errors.Is(err, service.ErrSymbolNotFound) {
		SendError(c, http.StatusNotFound, err, models.ErrNotFound)
		return
	}
	if err != nil {
		SendError(c, http.StatusInternalServerError, err, models.ErrInvalidOperation)
		return
	}

	SendSuccess(c, http.StatusOK, "Symbol deleted successfully", gin.H{"deletedSymbol": deletedName})
}
