package handlers

import (
	"errors"
	"net/http"

	"labourmandi/models"
	technicianSvc "labourmandi/services/technician"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TechnicianHandler exposes the technician directory.
type TechnicianHandler struct {
	Svc technicianSvc.TechnicianService
}

func NewTechnicianHandler(svc technicianSvc.TechnicianService) *TechnicianHandler {
	return &TechnicianHandler{Svc: svc}
}

// ListHandler returns technicians filtered by the query parameters
// category, pin, search and online.
func (h *TechnicianHandler) ListHandler(c *gin.Context) {
	filter := technicianSvc.Filter{
		Category:   c.Query("category"),
		Pin:        c.Query("pin"),
		Search:     c.Query("search"),
		OnlineOnly: c.Query("online") == "true",
	}

	technicians, err := h.Svc.List(filter)
	if err != nil {
		getLogger(c).Error("Technician listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch technicians"})
		return
	}
	c.JSON(http.StatusOK, technicians)
}

// GetHandler returns one technician with profile and portfolio.
func (h *TechnicianHandler) GetHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid technician id"})
		return
	}

	detail, err := h.Svc.GetByID(id)
	if err != nil {
		if errors.Is(err, technicianSvc.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Technician not found"})
			return
		}
		getLogger(c).Error("Technician lookup failed", zap.String("id", id.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch technician"})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// CategoriesHandler returns the static service category catalogue.
func (h *TechnicianHandler) CategoriesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.Categories)
}
